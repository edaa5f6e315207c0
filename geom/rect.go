package geom

import "image"

// A width and height pair in logical units. Sizes coming out of
// layout computations can carry fractional values until they are
// snapped to a pixel grid.
type Size struct {
	Width  float64
	Height float64
}

// Returns whether the size has a zero or negative area.
func (self Size) Empty() bool {
	return self.Width <= 0 || self.Height <= 0
}

// Returns the result of reducing the size by the given insets.
// Results can go negative; callers that care must check.
func (self Size) Inset(insets Insets) Size {
	self.Width  -= insets.Horizontal()
	self.Height -= insets.Vertical()
	return self
}

// Returns a textual representation of the size (e.g.: "30x44.5").
func (self Size) String() string {
	return formatFloat(self.Width) + "x" + formatFloat(self.Height)
}

// A pair of [Point] values defining a rectangular region, in the
// manner of [image.Rectangle]. Unlike image rectangles, all the
// coordinates are float64 logical units, since frames routinely sit
// between device pixels until explicitly snapped. The behavior for
// malformed rectangles (Min beyond Max) is undefined.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from an origin and a size.
func XYWH(x, y, width, height float64) Rect {
	return Rect{
		Min: Point{ X: x, Y: y },
		Max: Point{ X: x + width, Y: y + height },
	}
}

// Creates a rect with origin (0, 0) and the given size.
func RectOfSize(size Size) Rect {
	return XYWH(0, 0, size.Width, size.Height)
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return Rect{
		Min: FromImagePoint(rect.Min),
		Max: FromImagePoint(rect.Max),
	}
}

// Returns the width of the rect.
func (self Rect) Width() float64 { return self.Max.X - self.Min.X }

// Returns the height of the rect.
func (self Rect) Height() float64 { return self.Max.Y - self.Min.Y }

// Returns the size of the rect.
func (self Rect) Size() Size {
	return Size{ Width: self.Width(), Height: self.Height() }
}

// Returns the horizontal center of the rect.
func (self Rect) MidX() float64 { return (self.Min.X + self.Max.X)/2 }

// Returns the vertical center of the rect.
func (self Rect) MidY() float64 { return (self.Min.Y + self.Max.Y)/2 }

// Returns the center point of the rect.
func (self Rect) Center() Point {
	return Point{ X: self.MidX(), Y: self.MidY() }
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the result of translating the rect by the given vector.
func (self Rect) Add(vector Vector) Rect {
	self.Min = self.Min.Add(vector)
	self.Max = self.Max.Add(vector)
	return self
}

// Returns the rect translated so its origin becomes the given point.
func (self Rect) MovedTo(origin Point) Rect {
	return self.Add(origin.Sub(self.Min))
}

// Returns a rect with the same origin and the given size.
func (self Rect) Resized(size Size) Rect {
	self.Max.X = self.Min.X + size.Width
	self.Max.Y = self.Min.Y + size.Height
	return self
}

// Returns the result of trimming the rect by the given insets.
// Negative insets grow the rect instead.
func (self Rect) Inset(insets Insets) Rect {
	self.Min.X += insets.Left
	self.Min.Y += insets.Top
	self.Max.X -= insets.Right
	self.Max.Y -= insets.Bottom
	return self
}

// Returns whether the current rect fully contains the given one.
// Empty rects are contained anywhere.
func (self Rect) ContainsRect(rect Rect) bool {
	if rect.Empty() { return true }
	return rect.Min.X >= self.Min.X && rect.Min.Y >= self.Min.Y &&
	       rect.Max.X <= self.Max.X && rect.Max.Y <= self.Max.Y
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}

// Edge spacings used to trim rects and view frames. Positive values
// move edges inwards.
type Insets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// Creates insets with the same value on all four edges.
func UniformInsets(value float64) Insets {
	return Insets{ Top: value, Left: value, Bottom: value, Right: value }
}

// Returns the sum of the left and right insets.
func (self Insets) Horizontal() float64 { return self.Left + self.Right }

// Returns the sum of the top and bottom insets.
func (self Insets) Vertical() float64 { return self.Top + self.Bottom }
