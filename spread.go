package elayout

import "github.com/tacusan/elayout/geom"

// Perpendicular-axis behavior for [Spread](). Unlike distribution,
// spreading may also resize views: the zero value [SpreadFill]
// stretches each view across the bounds on the perpendicular axis.
// The remaining behaviors keep each view's perpendicular size and
// position it like [OrthogonalAlignment] does.
type SpreadBehavior uint8
const (
	SpreadFill     SpreadBehavior = 0
	SpreadLeading  SpreadBehavior = 1
	SpreadCenter   SpreadBehavior = 2
	SpreadTrailing SpreadBehavior = 3
)

// Optional parameters for [SpreadWithOptions]().
type SpreadOptions struct {
	// Space between adjacent slots, in logical units.
	Margin float64

	// Region to spread within, in the container's bounds
	// coordinates. The zero rect means the container's full bounds.
	Bounds geom.Rect

	// Perpendicular-axis behavior; defaults to [SpreadFill].
	Orthogonal SpreadBehavior

	// Inset from the matching edge for leading/trailing behaviors,
	// signed displacement for [SpreadCenter]. Unused by [SpreadFill].
	OrthogonalOffset float64
}

// Divides the container's bounds along the axis into equal slots,
// one per view, with no margin in between. See [SpreadWithOptions]().
func Spread(container View, axis Axis, views []View) {
	SpreadWithOptions(container, axis, views, SpreadOptions{})
}

// Divides the bounds along the axis into len(views) equal slots
// separated by the margin, and sizes/positions each view into its
// slot in order, walking from the leading edge as resolved by the
// container's layout direction.
//
// Each slot's edges are computed from the exact, unrounded running
// position and only snapped to the view's own pixel grid at
// placement; the last view's trailing edge is forced to land exactly
// on the bounds' far edge, so accumulated rounding can never leave a
// residual gap there.
//
// Requesting more total margin than there is space is a programming
// error and panics.
func SpreadWithOptions(container View, axis Axis, views []View, opts SpreadOptions) {
	if len(views) == 0 { return }
	bounds := opts.Bounds
	if bounds == (geom.Rect{}) { bounds = BoundsOf(container) }
	direction := container.LayoutDirection()

	count := float64(len(views))
	slot := (axis.Length(bounds) - opts.Margin*(count - 1))/count
	if slot < 0 { panic("spread margins exceed the available space") }

	cursor, forward := leadingEdge(axis, direction, bounds)
	farEdge := bounds.Min.X
	if axis == Vertical { farEdge = bounds.Max.Y } else if forward { farEdge = bounds.Max.X }

	for i, view := range views {
		lead := cursor
		trail := cursor + slot
		if !forward { trail = cursor - slot }
		if i == len(views) - 1 { trail = farEdge }

		scale := view.Scale()
		lead = geom.RoundToPixel(lead, scale)
		if i < len(views) - 1 { trail = geom.RoundToPixel(trail, scale) }
		min, max := lead, trail
		if max < min { min, max = max, min }

		view.SetFrame(spreadFrame(view, axis, direction, min, max, bounds, opts))

		if forward {
			cursor += slot + opts.Margin
		} else {
			cursor -= slot + opts.Margin
		}
	}
}

// Builds the frame of a spread view from its resolved [min, max]
// extent along the axis and the orthogonal behavior.
func spreadFrame(view View, axis Axis, direction Direction, min, max float64, bounds geom.Rect, opts SpreadOptions) geom.Rect {
	scale := view.Scale()
	size := view.Frame().Size()

	if opts.Orthogonal == SpreadFill {
		if axis == Horizontal {
			return geom.Rect{
				Min: geom.Point{ X: min, Y: geom.RoundToPixel(bounds.Min.Y, scale) },
				Max: geom.Point{ X: max, Y: geom.RoundToPixel(bounds.Max.Y, scale) },
			}
		}
		return geom.Rect{
			Min: geom.Point{ X: geom.RoundToPixel(bounds.Min.X, scale), Y: min },
			Max: geom.Point{ X: geom.RoundToPixel(bounds.Max.X, scale), Y: max },
		}
	}

	alignment := OrthogonalAlignment{
		Align:  OrthogonalAlign(opts.Orthogonal - SpreadLeading),
		Offset: opts.OrthogonalOffset,
	}
	if axis == Horizontal {
		y := geom.RoundToPixel(orthogonalCoord(alignment, size.Height, bounds.Min.Y, bounds.Max.Y), scale)
		return geom.Rect{
			Min: geom.Point{ X: min, Y: y },
			Max: geom.Point{ X: max, Y: y + size.Height },
		}
	}
	if direction == RightToLeft { alignment = alignment.mirrored() }
	x := geom.RoundToPixel(orthogonalCoord(alignment, size.Width, bounds.Min.X, bounds.Max.X), scale)
	return geom.Rect{
		Min: geom.Point{ X: x, Y: min },
		Max: geom.Point{ X: x + size.Width, Y: max },
	}
}
