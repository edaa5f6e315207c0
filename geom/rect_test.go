package geom

import "testing"

func TestRectAccessors(t *testing.T) {
	rect := XYWH(10, 20, 30, 40)
	if rect.Width() != 30 || rect.Height() != 40 {
		t.Fatalf("expected 30x40 size, got %s", rect.Size().String())
	}
	if rect.MidX() != 25 || rect.MidY() != 40 {
		t.Fatalf("expected center (25, 40), got %s", rect.Center().String())
	}

	moved := rect.MovedTo(Point{ X: 0, Y: 0 })
	if moved != XYWH(0, 0, 30, 40) {
		t.Fatalf("expected origin rect, got %s", moved.String())
	}

	inset := rect.Inset(Insets{ Top: 1, Left: 2, Bottom: 3, Right: 4 })
	if inset != XYWH(12, 21, 24, 36) {
		t.Fatalf("unexpected inset result %s", inset.String())
	}
	if !rect.ContainsRect(inset) { t.Fatal("inset rect should remain contained") }
	if inset.ContainsRect(rect)  { t.Fatal("inset rect can't contain the original") }
}

func TestSizeInset(t *testing.T) {
	size := Size{ Width: 10, Height: 10 }
	inset := size.Inset(UniformInsets(3))
	if inset.Width != 4 || inset.Height != 4 {
		t.Fatalf("expected 4x4, got %s", inset.String())
	}
	if size.Inset(UniformInsets(6)).Width != -2 {
		t.Fatal("insets beyond the size must go negative, not clamp")
	}
}
