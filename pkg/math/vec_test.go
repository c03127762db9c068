package math

import (
	"testing"
)

func TestVec2Sub(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{1, 1}
	got := a.Sub(b)
	want := Vec2{2, 3}
	if got != want {
		t.Errorf("Vec2.Sub() = %v, want %v", got, want)
	}
}

func TestVec2Cross(t *testing.T) {
	got := Vec2{1, 0}.Cross(Vec2{0, 1})
	if got != 1 {
		t.Errorf("Vec2.Cross() = %v, want 1", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); !got.IsZero() {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, 5, -2}
	b := Vec3{3, -1, 0}
	if got, want := a.Min(b), (Vec3{1, -1, -2}); got != want {
		t.Errorf("Vec3.Min() = %v, want %v", got, want)
	}
	if got, want := a.Max(b), (Vec3{3, 5, 0}); got != want {
		t.Errorf("Vec3.Max() = %v, want %v", got, want)
	}
}

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); abs(got-3.1415927) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Degrees(Radians(45)); abs(got-45) > 1e-4 {
		t.Errorf("Degrees(Radians(45)) = %v, want 45", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{-100, -89},
		{-89, -89},
		{0, 0},
		{89, 89},
		{90, 89},
	}
	for _, tc := range tests {
		if got := Clamp(tc.in, -89, 89); got != tc.want {
			t.Errorf("Clamp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
