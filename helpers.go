package elayout

import "github.com/tacusan/elayout/geom"

// This file contains the small shared enums and helper types used
// across the package.

// An axis selects which dimension of a rect a layout operation works
// along: [Horizontal] reads widths and left/right edges, [Vertical]
// reads heights and top/bottom edges.
type Axis uint8
const (
	Horizontal Axis = 0
	Vertical   Axis = 1
)

// Returns the length of the given rect along the axis.
func (self Axis) Length(rect geom.Rect) float64 {
	if self == Horizontal { return rect.Width() }
	return rect.Height()
}

// Returns the length of the given size along the axis.
func (self Axis) SizeLength(size geom.Size) float64 {
	if self == Horizontal { return size.Width }
	return size.Height
}

// Returns the sum of the given insets along the axis.
func (self Axis) InsetsLength(insets geom.Insets) float64 {
	if self == Horizontal { return insets.Horizontal() }
	return insets.Vertical()
}

// Returns a textual representation of the axis.
func (self Axis) String() string {
	if self == Horizontal { return "Horizontal" }
	return "Vertical"
}

// Views can have their layout direction configured as left-to-right
// or right-to-left. Direction determines which physical edge "leading"
// refers to on the horizontal axis: in [LeftToRight] layouts leading
// is the left edge, in [RightToLeft] layouts it is the right edge.
// The vertical axis is never mirrored.
type Direction uint8
const (
	LeftToRight Direction = 0
	RightToLeft Direction = 1
)

// Returns a textual representation of the direction.
func (self Direction) String() string {
	if self == LeftToRight { return "LeftToRight" }
	return "RightToLeft"
}
