package elayout

import "github.com/tacusan/elayout/geom"

// An entry in a distribution: a view, a fixed-length spacer or a
// flexible spacer. The three kinds are [Item]() (and
// [ItemWithInsets]()), [Fixed] and [Flexible]; the set is closed.
type DistributionItem interface {
	isDistributionItem()
}

// A spacer of constant length along the distribution axis.
type Fixed float64

// A proportional spacer. Flexible spacers share the space left over
// after views and fixed spacers are accounted for, each receiving
// weight/totalWeight of it. Weights only matter relative to each
// other: [1, 2] splits leftover space the same way [2, 4] does.
type Flexible float64

// A view taking part in a distribution. The insets trim the view's
// effective extent: an inset edge overhangs the slot the view
// occupies instead of consuming distribution space, which is how
// glyph overshoot and shadows are kept from pushing siblings around.
type ViewItem struct {
	View   View
	Insets geom.Insets
}

func (Fixed) isDistributionItem()    {}
func (Flexible) isDistributionItem() {}
func (ViewItem) isDistributionItem() {}

// Creates a distribution item for the given view.
func Item(view View) ViewItem {
	return ViewItem{ View: view }
}

// Creates a distribution item for the given view with insets
// trimming its effective extent.
func ItemWithInsets(view View, insets geom.Insets) ViewItem {
	return ViewItem{ View: view, Insets: insets }
}

// How distributed views are positioned on the axis perpendicular to
// the distribution. See [OrthogonalAlignment].
type OrthogonalAlign uint8
const (
	OrthogonalLeading  OrthogonalAlign = 0 // top, or leading edge per layout direction
	OrthogonalCenter   OrthogonalAlign = 1
	OrthogonalTrailing OrthogonalAlign = 2 // bottom, or trailing edge per layout direction
)

// Positioning of distributed views on the perpendicular axis. For a
// [Horizontal] distribution the perpendicular axis is vertical, so
// leading means top and trailing means bottom. For a [Vertical]
// distribution leading and trailing resolve through the container's
// layout [Direction].
//
// Offset is an inset from the matching edge for leading/trailing
// alignment, and a signed displacement (positive towards trailing)
// for centered alignment.
type OrthogonalAlignment struct {
	Align  OrthogonalAlign
	Offset float64
}

// Optional parameters for [DistributeWithOptions]().
type DistributionOptions struct {
	// Region to distribute within, in the container's bounds
	// coordinates. The zero rect means the container's full bounds.
	Bounds geom.Rect

	// Perpendicular-axis positioning applied to each view. Nil
	// leaves every view's perpendicular coordinate untouched.
	Orthogonal *OrthogonalAlignment
}

// Lays out the given items along the axis within the container's
// bounds, expanding flexible spacers to fill leftover space. See
// [DistributeWithOptions]() for the full contract.
func Distribute(container View, axis Axis, items []DistributionItem) {
	DistributeWithOptions(container, axis, items, DistributionOptions{})
}

// Lays out the given items in order along the axis, from the leading
// edge to the trailing one as resolved by the container's layout
// direction (a [Horizontal] distribution in a [RightToLeft] container
// starts at the right edge and walks leftwards).
//
// Views keep their current size along the axis; fixed spacers consume
// their constant length; flexible spacers share whatever space is
// left, proportionally to their weights. Two convenience rewrites
// apply when the distribution has no flexible spacers:
//   - no fixed spacers either: a weight-1 flexible spacer is implied
//     between each pair of adjacent items, spreading them evenly.
//   - fixed spacers present: weight-1 flexible spacers are implied at
//     both ends, centering the fixed-spaced group.
//
// Overflow is not clamped: when content exceeds the bounds, flexible
// lengths silently go negative. Measure first if that matters.
//
// Each view's final origin is snapped to its own pixel grid. The
// walk itself accumulates unrounded lengths, so rounding error never
// compounds across items.
//
// Listing a view twice, or listing a view that is not a child of the
// container, is a programming error and panics.
func DistributeWithOptions(container View, axis Axis, items []DistributionItem, opts DistributionOptions) {
	if len(items) == 0 { return }
	bounds := opts.Bounds
	if bounds == (geom.Rect{}) { bounds = BoundsOf(container) }
	direction := container.LayoutDirection()

	// measure and validate
	totalLength := 0.0 // fixed spacers plus view lengths
	totalWeight := 0.0
	fixedCount, flexCount := 0, 0
	seen := make(map[View]struct{}, len(items))
	for _, item := range items {
		switch typedItem := item.(type) {
		case Fixed:
			totalLength += float64(typedItem)
			fixedCount += 1
		case Flexible:
			totalWeight += float64(typedItem)
			flexCount += 1
		case ViewItem:
			if typedItem.View.Parent() != container {
				panic("distributed view is not a child of the container")
			}
			if _, dup := seen[typedItem.View]; dup {
				panic("view listed more than once in a distribution")
			}
			seen[typedItem.View] = struct{}{}
			totalLength += viewLength(typedItem, axis)
		default:
			panic("unhandled switch case")
		}
	}

	// imply flexible spacers when the caller gave none
	if flexCount == 0 {
		if fixedCount == 0 && len(items) >= 2 {
			interleaved := make([]DistributionItem, 0, len(items)*2 - 1)
			for i, item := range items {
				if i > 0 { interleaved = append(interleaved, Flexible(1)) }
				interleaved = append(interleaved, item)
			}
			items = interleaved
			totalWeight = float64(len(items)/2)
		} else {
			padded := make([]DistributionItem, 0, len(items) + 2)
			padded = append(padded, Flexible(1))
			padded = append(padded, items...)
			padded = append(padded, Flexible(1))
			items = padded
			totalWeight = 2
		}
	}

	// overflow produces negative flexible lengths
	flexUnit := (axis.Length(bounds) - totalLength)/totalWeight

	// walk from the leading edge
	cursor, forward := leadingEdge(axis, direction, bounds)
	sign := 1.0
	if !forward { sign = -1 }
	for _, item := range items {
		switch typedItem := item.(type) {
		case Fixed:
			cursor += sign*float64(typedItem)
		case Flexible:
			cursor += sign*float64(typedItem)*flexUnit
		case ViewItem:
			placeDistributedView(typedItem, axis, direction, forward, cursor, bounds, opts.Orthogonal)
			cursor += sign*viewLength(typedItem, axis)
		}
	}
}

// Effective length of a view item along the axis: the view's current
// size minus the item's insets on that axis.
func viewLength(item ViewItem, axis Axis) float64 {
	return axis.SizeLength(item.View.Frame().Size()) - axis.InsetsLength(item.Insets)
}

// Returns the starting cursor coordinate and whether the walk moves
// towards increasing coordinates.
func leadingEdge(axis Axis, direction Direction, bounds geom.Rect) (float64, bool) {
	if axis == Horizontal && direction == RightToLeft {
		return bounds.Max.X, false
	}
	if axis == Horizontal { return bounds.Min.X, true }
	return bounds.Min.Y, true
}

// Sets the frame origin of a distributed view: axis coordinate from
// the running cursor (adjusted by the item's insets), perpendicular
// coordinate from the orthogonal alignment, snapped to the view's
// own pixel grid as the very last step.
func placeDistributedView(item ViewItem, axis Axis, direction Direction, forward bool, cursor float64, bounds geom.Rect, orthogonal *OrthogonalAlignment) {
	view := item.View
	frame := view.Frame()
	origin := frame.Min

	if axis == Horizontal {
		if forward {
			origin.X = cursor - item.Insets.Left
		} else {
			origin.X = cursor + item.Insets.Right - frame.Width()
		}
		if orthogonal != nil {
			origin.Y = orthogonalCoord(*orthogonal, frame.Height(), bounds.Min.Y, bounds.Max.Y)
		}
	} else {
		origin.Y = cursor - item.Insets.Top
		if orthogonal != nil {
			aligned := *orthogonal
			if direction == RightToLeft { aligned = aligned.mirrored() }
			origin.X = orthogonalCoord(aligned, frame.Width(), bounds.Min.X, bounds.Max.X)
		}
	}

	view.SetFrame(frame.MovedTo(origin.RoundToPixel(view.Scale())))
}

// Perpendicular-axis coordinate for a view of the given extent
// within [min, max].
func orthogonalCoord(alignment OrthogonalAlignment, extent, min, max float64) float64 {
	switch alignment.Align {
	case OrthogonalLeading  : return min + alignment.Offset
	case OrthogonalCenter   : return (min + max - extent)/2 + alignment.Offset
	case OrthogonalTrailing : return max - alignment.Offset - extent
	default:
		panic("unhandled switch case")
	}
}

// Leading/trailing swap for right-to-left containers; the sign of a
// centered offset flips with the mirroring too.
func (self OrthogonalAlignment) mirrored() OrthogonalAlignment {
	switch self.Align {
	case OrthogonalLeading  : self.Align = OrthogonalTrailing
	case OrthogonalTrailing : self.Align = OrthogonalLeading
	case OrthogonalCenter   : self.Offset = -self.Offset
	}
	return self
}
