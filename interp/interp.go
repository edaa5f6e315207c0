package interp

// A unit interpolation value, conceptually within [0, 1]. Values
// outside the unit range are allowed (overshoot is occasionally
// wanted for springy effects); use [Clamped]() or [Value.Clamp]()
// when it isn't.
type Value float64

// Notable interpolation values.
const (
	Start  Value = 0
	Middle Value = 0.5
	End    Value = 1
)

// Creates a value clamped into [0, 1].
func Clamped(value float64) Value {
	return Value(value).Clamp()
}

// Creates the value that interpolates to the given target within
// [from, to], the reverse operation of [Value.Interpolate]().
// A degenerate range (from == to) yields [Start].
func Of(target, from, to float64) Value {
	if from == to { return Start }
	return Value((target - from)/(to - from))
}

// Returns the value clamped into [0, 1].
func (self Value) Clamp() Value {
	if self < 0 { return 0 }
	if self > 1 { return 1 }
	return self
}

// Maps the value onto the given output range, so [Start] yields
// from, [End] yields to and [Middle] their midpoint.
func (self Value) Interpolate(from, to float64) float64 {
	return from + float64(self)*(to - from)
}

// Returns the value reshaped by the given curve.
func (self Value) Curved(curve Curve) Value {
	return Value(curve(float64(self)))
}

// Renormalizes the value against a sub-range of the unit interval.
// A value equal to subStart becomes [Start] and one equal to subEnd
// becomes [End]; values outside the sub-range extrapolate. Useful
// when one progress value drives multiple staggered effects.
//
// This function panics if subStart == subEnd.
func (self Value) Normalized(subStart, subEnd Value) Value {
	if subStart == subEnd { panic("degenerate sub-range") }
	return (self - subStart)/(subEnd - subStart)
}

// Piecewise interpolation through a midpoint: the first half of the
// unit range maps onto [from, mid] shaped by inCurve, the second
// half onto [mid, to] shaped by outCurve. Nil curves mean [Linear].
func (self Value) InterpolateThrough(from, mid, to float64, inCurve, outCurve Curve) float64 {
	if inCurve  == nil { inCurve  = Linear }
	if outCurve == nil { outCurve = Linear }
	if self <= Middle {
		return self.Normalized(Start, Middle).Curved(inCurve).Interpolate(from, mid)
	}
	return self.Normalized(Middle, End).Curved(outCurve).Interpolate(mid, to)
}
