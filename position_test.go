package elayout

import "testing"

import "github.com/tacusan/elayout/geom"

func TestPositionPointIn(t *testing.T) {
	rect := geom.XYWH(10, 20, 30, 40)
	tests := []struct {
		position Position
		point    geom.Point
	}{
		{TopLeft, geom.Point{ X: 10, Y: 20 }},
		{TopCenter, geom.Point{ X: 25, Y: 20 }},
		{TopRight, geom.Point{ X: 40, Y: 20 }},
		{LeftCenter, geom.Point{ X: 10, Y: 40 }},
		{Center, geom.Point{ X: 25, Y: 40 }},
		{RightCenter, geom.Point{ X: 40, Y: 40 }},
		{BottomLeft, geom.Point{ X: 10, Y: 60 }},
		{BottomCenter, geom.Point{ X: 25, Y: 60 }},
		{BottomRight, geom.Point{ X: 40, Y: 60 }},
	}

	for i, test := range tests {
		point := test.position.PointIn(rect)
		if point != test.point {
			t.Fatalf("test #%d: %s of %s expected %s, got %s", i, test.position.String(), rect.String(), test.point.String(), point.String())
		}
	}
}

func TestPositionResolve(t *testing.T) {
	tests := []struct {
		position  Position
		direction Direction
		out       Position
	}{
		{TopLeading, LeftToRight, TopLeft},
		{TopLeading, RightToLeft, TopRight},
		{TopTrailing, LeftToRight, TopRight},
		{TopTrailing, RightToLeft, TopLeft},
		{LeadingCenter, LeftToRight, LeftCenter},
		{LeadingCenter, RightToLeft, RightCenter},
		{TrailingCenter, LeftToRight, RightCenter},
		{TrailingCenter, RightToLeft, LeftCenter},
		{BottomLeading, LeftToRight, BottomLeft},
		{BottomLeading, RightToLeft, BottomRight},
		{BottomTrailing, LeftToRight, BottomRight},
		{BottomTrailing, RightToLeft, BottomLeft},
		{Center, RightToLeft, Center}, // physical positions pass through
		{TopLeft, RightToLeft, TopLeft},
	}

	for i, test := range tests {
		out := test.position.Resolve(test.direction)
		if out != test.out {
			t.Fatalf("test #%d: %s under %s expected %s, got %s", i, test.position.String(), test.direction.String(), test.out.String(), out.String())
		}
	}

	// the property stated in terms of points: TopLeading in a
	// right-to-left layout is the same point as TopRight
	rect := geom.XYWH(0, 0, 100, 50)
	leading := TopLeading.Resolve(RightToLeft).PointIn(rect)
	if leading != TopRight.PointIn(rect) {
		t.Fatalf("TopLeading under RightToLeft should land at TopRight, got %s", leading.String())
	}
}

func TestPositionPointInPanicsUnresolved(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("PointIn on a direction-relative position must panic") }
	}()
	TopLeading.PointIn(geom.XYWH(0, 0, 10, 10))
}

func TestPositionReflected(t *testing.T) {
	tests := []struct {
		position     Position
		horizontally bool
		vertically   bool
		out          Position
	}{
		{TopLeft, true, false, TopRight},
		{TopLeft, false, true, BottomLeft},
		{TopLeft, true, true, BottomRight},
		{Center, true, true, Center},
		{TopCenter, true, false, TopCenter},
		{TopCenter, false, true, BottomCenter},
		{LeftCenter, true, false, RightCenter},
		{TopLeading, true, false, TopTrailing},
		{TopLeading, false, true, BottomLeading},
		{TrailingCenter, true, true, LeadingCenter},
		{BottomTrailing, true, true, TopLeading},
	}

	for i, test := range tests {
		out := test.position.Reflected(test.horizontally, test.vertically)
		if out != test.out {
			t.Fatalf("test #%d: %s reflected (h=%t, v=%t) expected %s, got %s", i, test.position.String(), test.horizontally, test.vertically, test.out.String(), out.String())
		}
		if out.IsRelative() != test.position.IsRelative() {
			t.Fatalf("test #%d: reflection crossed position families", i)
		}
	}
}
