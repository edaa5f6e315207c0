package elayout

import "github.com/tacusan/elayout/geom"

// A width-to-height proportion stored as its two defining dimensions,
// so 16:9 stays 16:9 instead of decaying into 1.7777... and its
// rounding noise. Comparisons cross-multiply and never divide.
//
// Both dimensions must be positive; the constructors panic otherwise.
type AspectRatio struct {
	width  float64
	height float64
}

// Common ratios.
var (
	Square     = Ratio(1, 1)
	Golden     = Ratio(1.618033988749895, 1)
	Widescreen = Ratio(16, 9)
)

// Creates an aspect ratio from a width and height. This function
// panics if either dimension is zero or negative.
func Ratio(width, height float64) AspectRatio {
	if width <= 0 || height <= 0 { panic("aspect ratio dimensions must be positive") }
	return AspectRatio{ width: width, height: height }
}

// Creates the aspect ratio of the given size. This function panics
// on empty sizes.
func RatioOf(size geom.Size) AspectRatio {
	return Ratio(size.Width, size.Height)
}

// Returns the ratio with width and height swapped.
func (self AspectRatio) Inverse() AspectRatio {
	return AspectRatio{ width: self.height, height: self.width }
}

// Returns whether both ratios describe the same proportion,
// regardless of the dimensions used to create them: 16:9 equals
// 32:18.
func (self AspectRatio) Equal(other AspectRatio) bool {
	return self.width*other.height == other.width*self.height
}

// Returns whether the ratio is narrower (taller) than the other.
func (self AspectRatio) Less(other AspectRatio) bool {
	return self.width*other.height < other.width*self.height
}

// Returns the width matching the given height under this ratio,
// rounded to the pixel grid of the given scale (0 = no snapping).
func (self AspectRatio) Width(forHeight, scale float64) float64 {
	return geom.RoundToPixel(forHeight*self.width/self.height, scale)
}

// Returns the height matching the given width under this ratio,
// rounded to the pixel grid of the given scale (0 = no snapping).
func (self AspectRatio) Height(forWidth, scale float64) float64 {
	return geom.RoundToPixel(forWidth*self.height/self.width, scale)
}

// Returns the biggest size with this ratio that fits within the
// given bounding size. Dimensions are floored to the pixel grid of
// the given scale, so the result never exceeds the bound.
func (self AspectRatio) SizeToFit(bound geom.Size, scale float64) geom.Size {
	// pick the constraining dimension by cross-multiplication
	if bound.Width*self.height <= bound.Height*self.width {
		// width constrains
		width := geom.FloorToPixel(bound.Width, scale)
		return geom.Size{
			Width:  width,
			Height: geom.FloorToPixel(width*self.height/self.width, scale),
		}
	}
	height := geom.FloorToPixel(bound.Height, scale)
	return geom.Size{
		Width:  geom.FloorToPixel(height*self.width/self.height, scale),
		Height: height,
	}
}

// Returns the smallest size with this ratio that fully covers the
// given bounding size. Dimensions are ceiled to the pixel grid of
// the given scale, so the result never undershoots the bound.
func (self AspectRatio) SizeToFill(bound geom.Size, scale float64) geom.Size {
	if bound.Width*self.height <= bound.Height*self.width {
		// height constrains, width overflows the bound
		height := geom.CeilToPixel(bound.Height, scale)
		return geom.Size{
			Width:  geom.CeilToPixel(height*self.width/self.height, scale),
			Height: height,
		}
	}
	width := geom.CeilToPixel(bound.Width, scale)
	return geom.Size{
		Width:  width,
		Height: geom.CeilToPixel(width*self.height/self.width, scale),
	}
}

// Returns the rect of this ratio that fits within the given rect,
// placed at the given position (resolved against the given layout
// direction) and snapped to the pixel grid of the given scale.
func (self AspectRatio) RectToFit(bounds geom.Rect, at Position, direction Direction, scale float64) geom.Rect {
	size := self.SizeToFit(bounds.Size(), scale)
	return placeRect(size, bounds, at, direction, scale)
}

// Like [AspectRatio.RectToFit](), but covering the given rect
// instead of fitting within it.
func (self AspectRatio) RectToFill(bounds geom.Rect, at Position, direction Direction, scale float64) geom.Rect {
	size := self.SizeToFill(bounds.Size(), scale)
	return placeRect(size, bounds, at, direction, scale)
}

// Places a rect of the given size so its position point coincides
// with the same position point of the bounds.
func placeRect(size geom.Size, bounds geom.Rect, at Position, direction Direction, scale float64) geom.Rect {
	position := at.Resolve(direction)
	rect := geom.RectOfSize(size)
	offset := position.PointIn(bounds).Sub(position.PointIn(rect))
	return rect.Add(offset.RoundToPixel(scale))
}
