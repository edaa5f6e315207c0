package elayout

import "errors"

import "github.com/tacusan/elayout/geom"

// Returned by [AlignmentOffset]() when the two views don't belong to
// the same hierarchy. [Align]() reports it as a diagnostic and leaves
// the source view untouched, since hierarchies are routinely
// disconnected for a frame or two during transitions.
var ErrNoCommonAncestor = errors.New("views don't share a hierarchy")

// Pairs a view with the rect to align against, letting a view be
// aligned by a sub-region of itself — text inset to its cap height,
// an icon minus its shadow padding — instead of its full extent.
// Contexts are throwaway values built per call; see [ContextOf]().
type AlignmentContext struct {
	View   View
	Bounds geom.Rect // in the view's bounds coordinates
}

// Creates the default alignment context for a view: the view paired
// with its whole bounds.
func ContextOf(view View) AlignmentContext {
	return AlignmentContext{ View: view, Bounds: BoundsOf(view) }
}

// Creates an alignment context for the view's bounds trimmed by the
// given insets.
func InsetContextOf(view View, insets geom.Insets) AlignmentContext {
	return AlignmentContext{ View: view, Bounds: BoundsOf(view).Inset(insets) }
}

// Computes the vector that would move the source context's position
// onto the target context's position. Each position is resolved
// against its own view's layout direction, and both points are
// carried into the coordinate space of the views' closest common
// ancestor using untransformed frames only, so visual transforms
// don't skew the result.
//
// Returns [ErrNoCommonAncestor] when the views don't share a
// hierarchy.
//
// Pairing a physical position with a direction-relative one is
// legal but suspicious (it flips meaning under one of the two layout
// directions), so it is reported to the diagnostic handler.
func AlignmentOffset(source AlignmentContext, sourcePosition Position, target AlignmentContext, targetPosition Position) (geom.Vector, error) {
	if sourcePosition.IsRelative() != targetPosition.IsRelative() {
		diag("aligning " + sourcePosition.String() + " with " + targetPosition.String() +
			" mixes physical and direction-relative positions; this likely breaks under layout direction mirroring")
	}

	ancestor := commonAncestor(source.View, target.View)
	if ancestor == nil { return geom.Vector{}, ErrNoCommonAncestor }

	sourcePoint := sourcePosition.Resolve(source.View.LayoutDirection()).PointIn(source.Bounds)
	targetPoint := targetPosition.Resolve(target.View.LayoutDirection()).PointIn(target.Bounds)
	sourcePoint = convertUp(sourcePoint, source.View, ancestor)
	targetPoint = convertUp(targetPoint, target.View, ancestor)
	return targetPoint.Sub(sourcePoint), nil
}

// Moves the source view so its resolved position lands on the target
// view's resolved position, snapping the resulting origin to the
// source view's pixel grid. When the views don't share a hierarchy
// the failure is reported to the diagnostic handler and the source
// view keeps its current frame.
func Align(source View, sourcePosition Position, target View, targetPosition Position) {
	AlignContexts(ContextOf(source), sourcePosition, ContextOf(target), targetPosition)
}

// The context-level variant of [Align]().
func AlignContexts(source AlignmentContext, sourcePosition Position, target AlignmentContext, targetPosition Position) {
	offset, err := AlignmentOffset(source, sourcePosition, target, targetPosition)
	if err != nil {
		diag("alignment skipped: " + err.Error())
		return
	}
	frame := source.View.Frame()
	origin := frame.Min.Add(offset).RoundToPixel(source.View.Scale())
	source.View.SetFrame(frame.MovedTo(origin))
}

// Returns the closest view present in both ancestor chains (either
// view itself may be the ancestor), or nil when the chains never
// meet.
func commonAncestor(a, b View) View {
	seen := make(map[View]struct{})
	for view := a; view != nil; view = view.Parent() {
		seen[view] = struct{}{}
	}
	for view := b; view != nil; view = view.Parent() {
		if _, found := seen[view]; found { return view }
	}
	return nil
}

// Carries a point from a view's bounds coordinates into an
// ancestor's bounds coordinates by accumulating frame origins. The
// ancestor must be in the view's parent chain.
func convertUp(point geom.Point, view View, ancestor View) geom.Point {
	for view != ancestor {
		frame := view.Frame()
		point.X += frame.Min.X
		point.Y += frame.Min.Y
		view = view.Parent()
	}
	return point
}
