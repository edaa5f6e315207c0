package interp

import "math"

// A curve reshapes a unit interpolation value before it gets mapped
// onto an output range. Curves are expected to map 0 to 0 and 1 to 1;
// what happens in between is the curve's personality. Any function
// with this shape can be used where a Curve is expected.
type Curve func(float64) float64

// The identity curve.
func Linear(t float64) float64 { return t }

// Starts slow, ends at full speed. Trigonometric easing (a quarter
// cosine), gentler than the usual t² polynomial.
func EaseIn(t float64) float64 {
	return 1 - math.Cos(t*(math.Pi/2))
}

// Starts at full speed, ends slow. The mirror of [EaseIn].
func EaseOut(t float64) float64 {
	return math.Sin(t*(math.Pi/2))
}

// Starts and ends slow, fast through the middle (a half cosine).
func EaseInOut(t float64) float64 {
	return (1 - math.Cos(t*math.Pi))/2
}
