package geom

import "image"
import "strconv"

// A pair of float64 coordinates in logical units. Commonly used to
// name a location within a [Rect], like a resolved position or a
// rect's center.
type Point struct {
	X float64
	Y float64
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: float64(x), Y: float64(y) }
}

// Creates a point from an [image.Point].
func FromImagePoint(point image.Point) Point {
	return IntsToPoint(point.X, point.Y)
}

// Returns the result of adding the given vector to the point.
func (self Point) Add(vector Vector) Point {
	self.X += vector.Dx
	self.Y += vector.Dy
	return self
}

// Returns the vector that goes from the given point to the
// current one, so point.Sub(origin).Dx == point.X - origin.X.
func (self Point) Sub(point Point) Vector {
	return Vector{ Dx: self.X - point.X, Dy: self.Y - point.Y }
}

// Returns the point with each coordinate snapped to the pixel
// grid of the given scale. See [RoundToPixel].
func (self Point) RoundToPixel(scale float64) Point {
	self.X = RoundToPixel(self.X, scale)
	self.Y = RoundToPixel(self.Y, scale)
	return self
}

// Returns a textual representation of the point (e.g.: "(0.5, 8)").
func (self Point) String() string {
	return "(" + formatFloat(self.X) + ", " + formatFloat(self.Y) + ")"
}

// A displacement between two points. Unlike [Point], a vector is
// relative: it answers "how far and in which direction", not "where".
type Vector struct {
	Dx float64
	Dy float64
}

// Returns the result of adding both vectors.
func (self Vector) Add(vector Vector) Vector {
	self.Dx += vector.Dx
	self.Dy += vector.Dy
	return self
}

// Returns the vector with both components negated.
func (self Vector) Neg() Vector {
	return Vector{ Dx: -self.Dx, Dy: -self.Dy }
}

// Returns the vector with each component snapped to the pixel
// grid of the given scale. See [RoundToPixel].
func (self Vector) RoundToPixel(scale float64) Vector {
	self.Dx = RoundToPixel(self.Dx, scale)
	self.Dy = RoundToPixel(self.Dy, scale)
	return self
}

// Returns a textual representation of the vector (e.g.: "[2, -6.5]").
func (self Vector) String() string {
	return "[" + formatFloat(self.Dx) + ", " + formatFloat(self.Dy) + "]"
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
