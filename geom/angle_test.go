package geom

import "testing"
import "math"

func TestAngleDegrees(t *testing.T) {
	tests := []struct {
		degrees float64
		radians Angle
	}{
		{0, 0}, {180, HalfCircle}, {360, FullCircle},
		{90, RightAngle}, {-90, -RightAngle}, {45, math.Pi/4},
	}

	for i, test := range tests {
		angle := Degrees(test.degrees)
		if math.Abs(float64(angle - test.radians)) > 1e-12 {
			t.Fatalf("test #%d: %f degrees expected %f radians, got %f", i, test.degrees, float64(test.radians), float64(angle))
		}
		if math.Abs(angle.Degrees() - test.degrees) > 1e-12 {
			t.Fatalf("test #%d: degrees roundtrip gave %f", i, angle.Degrees())
		}
	}
}

func TestAngleNormalized(t *testing.T) {
	tests := []struct {
		in     float64 // degrees
		out    float64 // degrees, within [0, 360)
		signed float64 // degrees, within [-180, 180)
	}{
		{0, 0, 0}, {90, 90, 90}, {360, 0, 0}, {-90, 270, -90},
		{540, 180, -180}, {180, 180, -180}, {-180, 180, -180},
		{720 + 45, 45, 45}, {-3*360 - 10, 350, -10},
	}

	for i, test := range tests {
		out := Degrees(test.in).Normalized().Degrees()
		if math.Abs(out - test.out) > 1e-9 {
			t.Fatalf("test #%d: %f normalized expected %f, got %f", i, test.in, test.out, out)
		}
		signed := Degrees(test.in).SignedNormalized().Degrees()
		if math.Abs(signed - test.signed) > 1e-9 {
			t.Fatalf("test #%d: %f signed normalized expected %f, got %f", i, test.in, test.signed, signed)
		}
	}
}

func TestAnglePointAt(t *testing.T) {
	origin := Point{ X: 10, Y: 20 }
	point := ZeroAngle.PointAt(5, origin)
	if math.Abs(point.X - 15) > 1e-9 || math.Abs(point.Y - 20) > 1e-9 {
		t.Fatalf("expected (15, 20), got %s", point.String())
	}
	point = RightAngle.PointAt(5, origin) // clockwise, so downwards on screen
	if math.Abs(point.X - 10) > 1e-9 || math.Abs(point.Y - 25) > 1e-9 {
		t.Fatalf("expected (10, 25), got %s", point.String())
	}

	back := AngleBetween(origin, point).Normalized()
	if math.Abs(back.Degrees() - 90) > 1e-9 {
		t.Fatalf("expected 90 degrees between points, got %f", back.Degrees())
	}
}
