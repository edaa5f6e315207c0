package elayout

import "github.com/tacusan/elayout/geom"

// The capabilities elayout needs from a layout participant. The
// package ships [Node] and friends as a ready-made implementation,
// but any type exposing these methods can take part in layout; the
// package never reaches into the host toolkit behind your back.
//
// Frame returns the view's untransformed frame in its parent's
// coordinate space: position and size as laid out, ignoring any
// visual transform applied for rendering. All the operations in this
// package read and write untransformed frames only, so a view that
// is mid-animation still gets laid out where it logically belongs.
//
// Scale returns the view's pixel-snapping scale factor in device
// pixels per logical unit. Zero means "no pixel grid" and disables
// snapping for that view.
type View interface {
	Frame() geom.Rect
	SetFrame(frame geom.Rect)
	Parent() View
	LayoutDirection() Direction
	Scale() float64
}

// Optional capability for views that know their natural content
// size, like labels and image boxes. See [SizeToFit]().
type Sizer interface {
	NaturalSize(max geom.Size) geom.Size
}

// Returns the view's bounds: its frame's size at origin (0, 0), the
// rect that children frames and positions are expressed in.
func BoundsOf(view View) geom.Rect {
	return geom.RectOfSize(view.Frame().Size())
}

// Changes the view's frame size, keeping its origin.
func SetFrameSize(view View, size geom.Size) {
	view.SetFrame(view.Frame().Resized(size))
}

// Moves the view so its frame's center lands on the given point in
// the parent's coordinate space, snapped to the view's pixel grid.
func SetCenter(view View, center geom.Point) {
	frame := view.Frame()
	origin := frame.Min.Add(center.Sub(frame.Center())).RoundToPixel(view.Scale())
	view.SetFrame(frame.MovedTo(origin))
}

// Resizes the view to its natural size under the given constraint.
// Views that don't implement [Sizer] are left untouched. The
// resulting size is ceiled to the view's pixel grid so content
// never gets clipped by snapping.
func SizeToFit(view View, max geom.Size) {
	sizer, isSizer := view.(Sizer)
	if !isSizer { return }
	SetFrameSize(view, sizer.NaturalSize(max).CeilToPixel(view.Scale()))
}
