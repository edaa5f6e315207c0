package elayout

import "testing"

import "github.com/tacusan/elayout/geom"

func TestAspectRatioComparisons(t *testing.T) {
	if !Ratio(16, 9).Equal(Ratio(32, 18)) {
		t.Fatal("16:9 must equal 32:18")
	}
	if Ratio(16, 9).Equal(Ratio(4, 3)) {
		t.Fatal("16:9 must differ from 4:3")
	}
	if !Ratio(4, 3).Less(Ratio(16, 9)) {
		t.Fatal("4:3 is narrower than 16:9")
	}
	if Ratio(16, 9).Less(Ratio(16, 9)) {
		t.Fatal("a ratio is not less than itself")
	}
	if !Widescreen.Inverse().Equal(Ratio(9, 16)) {
		t.Fatal("inverse of 16:9 must be 9:16")
	}
}

func TestAspectRatioPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("non-positive dimensions must panic") }
	}()
	Ratio(16, 0)
}

func TestAspectRatioDerivedDimensions(t *testing.T) {
	if width := Widescreen.Width(9, 0); width != 16 {
		t.Fatalf("expected width 16 for height 9, got %f", width)
	}
	if height := Widescreen.Height(32, 0); height != 18 {
		t.Fatalf("expected height 18 for width 32, got %f", height)
	}
	// rounding against the pixel grid
	if height := Widescreen.Height(10, 1); height != 6 { // 5.625 rounds to 6
		t.Fatalf("expected snapped height 6, got %f", height)
	}
}

func TestAspectRatioSizeToFitAndFill(t *testing.T) {
	bound := geom.Size{ Width: 100, Height: 100 }

	fit := Widescreen.SizeToFit(bound, 0)
	if fit.Width != 100 || fit.Height != 56.25 {
		t.Fatalf("expected 100x56.25 fit, got %s", fit.String())
	}
	fill := Widescreen.SizeToFill(bound, 0)
	if fill.Height != 100 || fill.Width < 100 {
		t.Fatalf("fill must cover the bound, got %s", fill.String())
	}

	// snapped fits floor, so they never exceed the bound
	fit = Widescreen.SizeToFit(geom.Size{ Width: 99.7, Height: 200 }, 1)
	if fit.Width != 99 || fit.Height != 55 { // floor(99*9/16) = floor(55.6875)
		t.Fatalf("expected 99x55 snapped fit, got %s", fit.String())
	}

	// snapped fills ceil, so they never undershoot it
	fill = Widescreen.SizeToFill(geom.Size{ Width: 99.7, Height: 200 }, 1)
	if fill.Height != 200 || fill.Width != 356 { // ceil(200*16/9) = ceil(355.55...)
		t.Fatalf("expected 356x200 snapped fill, got %s", fill.String())
	}
}

func TestAspectRatioRectToFit(t *testing.T) {
	bounds := geom.XYWH(0, 0, 100, 100)

	rect := Square.RectToFit(bounds, Center, LeftToRight, 0)
	if rect != geom.XYWH(0, 0, 100, 100) {
		t.Fatalf("square in square should fill it, got %s", rect.String())
	}

	rect = Widescreen.RectToFit(bounds, BottomCenter, LeftToRight, 0)
	if rect.Max.Y != 100 || rect.MidX() != 50 {
		t.Fatalf("expected bottom-centered placement, got %s", rect.String())
	}
	if rect.Height() != 56.25 {
		t.Fatalf("expected fitted height 56.25, got %f", rect.Height())
	}

	// direction-relative placement resolves before placing
	rect = Widescreen.Inverse().RectToFit(bounds, TopLeading, RightToLeft, 0)
	if rect.Max.X != 100 || rect.Min.Y != 0 {
		t.Fatalf("expected top-right placement under RightToLeft, got %s", rect.String())
	}
}
