package geom

import "math"

// An angle in radians. The type exists mostly so degrees and radians
// can't be mixed up across API boundaries, which is the classic way
// rotation code goes wrong.
//
// Angles grow clockwise on screen, matching the downwards y axis.
type Angle float64

// Common angle constants.
const (
	ZeroAngle   Angle = 0
	RightAngle  Angle = math.Pi/2
	HalfCircle  Angle = math.Pi
	FullCircle  Angle = 2*math.Pi
)

// Creates an angle from a value in degrees.
func Degrees(degrees float64) Angle {
	return Angle(degrees*(math.Pi/180))
}

// Creates the angle of the line that goes from the first point to
// the second one. Coincident points yield a zero angle.
func AngleBetween(from, to Point) Angle {
	return Angle(math.Atan2(to.Y - from.Y, to.X - from.X))
}

// Returns the angle's value in degrees.
func (self Angle) Degrees() float64 {
	return float64(self)*(180/math.Pi)
}

// Returns the angle's value in radians.
func (self Angle) Radians() float64 {
	return float64(self)
}

// Returns the equivalent angle within [0°, 360°).
func (self Angle) Normalized() Angle {
	for self <  0          { self += FullCircle }
	for self >= FullCircle { self -= FullCircle }
	return self
}

// Returns the equivalent angle within [-180°, 180°).
func (self Angle) SignedNormalized() Angle {
	for self < -HalfCircle  { self += FullCircle }
	for self >=  HalfCircle { self -= FullCircle }
	return self
}

// Returns the point at the given distance from the origin point,
// in the direction of the angle.
func (self Angle) PointAt(distance float64, from Point) Point {
	return Point{
		X: from.X + distance*math.Cos(float64(self)),
		Y: from.Y + distance*math.Sin(float64(self)),
	}
}
