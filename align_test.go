package elayout

import "testing"
import "strings"
import "errors"

import "github.com/tacusan/elayout/geom"

func TestAlignmentOffsetConcentric(t *testing.T) {
	container := newTestContainer(100, 100)
	a := addTestChild(container, 20, 20)
	a.SetFrame(geom.XYWH(40, 40, 20, 20))
	b := addTestChild(container, 10, 10)
	b.SetFrame(geom.XYWH(45, 45, 10, 10))

	offset, err := AlignmentOffset(ContextOf(a), Center, ContextOf(b), Center)
	if err != nil { t.Fatalf("unexpected error: %v", err) }
	if offset != (geom.Vector{}) {
		t.Fatalf("concentric views must align with zero offset, got %s", offset.String())
	}
}

func TestAlignMovesSource(t *testing.T) {
	container := newTestContainer(100, 100)
	source := addTestChild(container, 10, 10)
	source.SetFrame(geom.XYWH(3, 7, 10, 10))
	target := addTestChild(container, 40, 40)
	target.SetFrame(geom.XYWH(50, 50, 40, 40))

	Align(source, TopLeft, target, TopLeft)
	if source.Frame().Min != (geom.Point{ X: 50, Y: 50 }) {
		t.Fatalf("expected source at (50, 50), got %s", source.Frame().Min.String())
	}

	Align(source, BottomRight, target, BottomRight)
	if source.Frame().Min != (geom.Point{ X: 80, Y: 80 }) {
		t.Fatalf("expected source at (80, 80), got %s", source.Frame().Min.String())
	}
}

func TestAlignAcrossLevels(t *testing.T) {
	root := newTestContainer(200, 200)
	panel := addTestChild(root, 100, 100)
	panel.SetFrame(geom.XYWH(20, 30, 100, 100))
	nested := addTestChild(panel, 10, 10)
	sibling := addTestChild(root, 10, 10)
	sibling.SetFrame(geom.XYWH(150, 160, 10, 10))

	// the offset is expressed in the source's parent space, so the
	// nested view must end up at the sibling's absolute position
	// minus its panel's origin
	Align(nested, TopLeft, sibling, TopLeft)
	if nested.Frame().Min != (geom.Point{ X: 130, Y: 130 }) {
		t.Fatalf("expected nested view at (130, 130), got %s", nested.Frame().Min.String())
	}
}

func TestAlignSnapsToSourceScale(t *testing.T) {
	container := newTestContainer(100, 100)
	source := addTestChild(container, 10, 10)
	source.SetScale(1)
	target := addTestChild(container, 11, 11)
	target.SetFrame(geom.XYWH(10, 10, 11, 11))

	// unsnapped target center delta puts the source origin at 10.5
	Align(source, Center, target, Center)
	if source.Frame().Min != (geom.Point{ X: 11, Y: 11 }) {
		t.Fatalf("expected snapped origin (11, 11), got %s", source.Frame().Min.String())
	}
}

func TestAlignResolvesDirectionPerView(t *testing.T) {
	container := newTestContainer(100, 100)
	container.SetLayoutDirection(RightToLeft)
	source := addTestChild(container, 10, 10)
	target := addTestChild(container, 50, 50)
	target.SetFrame(geom.XYWH(25, 25, 50, 50))

	// leading resolves to the right edge for both views here
	Align(source, TopLeading, target, TopLeading)
	if source.Frame().Min != (geom.Point{ X: 65, Y: 25 }) {
		t.Fatalf("expected source at (65, 25), got %s", source.Frame().Min.String())
	}
}

func TestAlignWithInsetContext(t *testing.T) {
	container := newTestContainer(100, 100)
	source := addTestChild(container, 10, 10)
	target := addTestChild(container, 50, 50)
	target.SetFrame(geom.XYWH(20, 20, 50, 50))

	AlignContexts(ContextOf(source), TopLeft,
		InsetContextOf(target, geom.UniformInsets(5)), TopLeft)
	if source.Frame().Min != (geom.Point{ X: 25, Y: 25 }) {
		t.Fatalf("expected source at (25, 25), got %s", source.Frame().Min.String())
	}
}

func TestAlignWithoutCommonAncestorIsNoOp(t *testing.T) {
	containerA := newTestContainer(100, 100)
	containerB := newTestContainer(100, 100)
	source := addTestChild(containerA, 10, 10)
	source.SetFrame(geom.XYWH(3, 4, 10, 10))
	target := addTestChild(containerB, 10, 10)

	if _, err := AlignmentOffset(ContextOf(source), Center, ContextOf(target), Center); !errors.Is(err, ErrNoCommonAncestor) {
		t.Fatalf("expected ErrNoCommonAncestor, got %v", err)
	}

	var logged string
	SetDiagnosticHandler(func(message string) { logged = message })
	defer SetDiagnosticHandler(nil)

	Align(source, Center, target, Center)
	if source.Frame().Min != (geom.Point{ X: 3, Y: 4 }) {
		t.Fatalf("alignment across hierarchies must be a no-op, frame moved to %s", source.Frame().Min.String())
	}
	if !strings.Contains(logged, "hierarchy") {
		t.Fatalf("expected a diagnostic about the missing hierarchy, got %q", logged)
	}
}

func TestAlignMixedFamiliesDiagnostic(t *testing.T) {
	container := newTestContainer(100, 100)
	source := addTestChild(container, 10, 10)
	target := addTestChild(container, 10, 10)

	var logged string
	SetDiagnosticHandler(func(message string) { logged = message })
	defer SetDiagnosticHandler(nil)

	// legal, but flagged: looks right in one direction only
	Align(source, RightCenter, target, TrailingCenter)
	if !strings.Contains(logged, "direction-relative") {
		t.Fatalf("expected a family mismatch diagnostic, got %q", logged)
	}

	logged = ""
	Align(source, RightCenter, target, LeftCenter)
	if logged != "" {
		t.Fatalf("physical-only alignments must not be flagged, got %q", logged)
	}
}
