package geom

import "math"

// Pixel-grid snapping.
//
// Scale factors express device pixels per logical unit. With a scale
// of 3, logical coordinate 0.4 sits at device pixel 1.2 and rounds to
// 1/3 ≈ 0.333. Any scale <= 0 means "no pixel grid": values are
// returned unchanged so code can stay branchless around views that
// have no notion of a display.

// Returns the closest coordinate at or below the given one that
// falls on the pixel grid of the given scale.
func FloorToPixel(value, scale float64) float64 {
	if scale <= 0 { return value }
	return math.Floor(wholeNudge(value*scale))/scale
}

// Returns the closest coordinate at or above the given one that
// falls on the pixel grid of the given scale.
func CeilToPixel(value, scale float64) float64 {
	if scale <= 0 { return value }
	return math.Ceil(wholeNudge(value*scale))/scale
}

// An already snapped coordinate can come back from value*scale a few
// ulps away from a whole device pixel, and a raw floor or ceil would
// then shift it by a full pixel. Snapping must be idempotent, so
// near-whole scaled values are treated as whole. The tolerance is far
// below half a device pixel for any realistic screen coordinate.
func wholeNudge(scaled float64) float64 {
	whole := math.Round(scaled)
	if math.Abs(scaled - whole) < 1e-9 { return whole }
	return scaled
}

// Returns the closest coordinate to the given one that falls on
// the pixel grid of the given scale, rounding half values away
// from zero.
func RoundToPixel(value, scale float64) float64 {
	if scale <= 0 { return value }
	return math.Round(value*scale)/scale
}

// Returns the size with each dimension snapped to the pixel grid
// of the given scale, rounding up. Sizes are typically ceiled so
// content still fits after snapping.
func (self Size) CeilToPixel(scale float64) Size {
	self.Width  = CeilToPixel(self.Width, scale)
	self.Height = CeilToPixel(self.Height, scale)
	return self
}

// Returns the size with each dimension snapped to the closest
// point of the pixel grid of the given scale.
func (self Size) RoundToPixel(scale float64) Size {
	self.Width  = RoundToPixel(self.Width, scale)
	self.Height = RoundToPixel(self.Height, scale)
	return self
}

// Returns the smallest pixel-aligned rect that contains the
// current one: min edges are floored and max edges are ceiled,
// each independently, against the pixel grid of the given scale.
func (self Rect) ExpandToPixel(scale float64) Rect {
	self.Min.X = FloorToPixel(self.Min.X, scale)
	self.Min.Y = FloorToPixel(self.Min.Y, scale)
	self.Max.X = CeilToPixel(self.Max.X, scale)
	self.Max.Y = CeilToPixel(self.Max.Y, scale)
	return self
}

// Returns the biggest pixel-aligned rect contained by the current
// one: min edges are ceiled and max edges are floored, each
// independently, against the pixel grid of the given scale.
func (self Rect) ContractToPixel(scale float64) Rect {
	self.Min.X = CeilToPixel(self.Min.X, scale)
	self.Min.Y = CeilToPixel(self.Min.Y, scale)
	self.Max.X = FloorToPixel(self.Max.X, scale)
	self.Max.Y = FloorToPixel(self.Max.Y, scale)
	return self
}
