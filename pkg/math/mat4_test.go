package math

import "testing"

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestTransformVec3(t *testing.T) {
	m := Identity()
	m[12], m[13], m[14] = 10, 20, 30
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	// Eye maps to the origin of view space
	origin := m.TransformVec3(eye)
	if abs(origin.X) > 1e-5 || abs(origin.Y) > 1e-5 || abs(origin.Z) > 1e-5 {
		t.Errorf("LookAt eye: got %v, want origin", origin)
	}

	// Target lies straight ahead on -Z
	ahead := m.TransformVec3(Vec3{0, 0, 0})
	if abs(ahead.X) > 1e-5 || abs(ahead.Y) > 1e-5 || abs(ahead.Z+5) > 1e-5 {
		t.Errorf("LookAt center: got %v, want (0, 0, -5)", ahead)
	}
}

func TestSetLookAtMatchesLookAt(t *testing.T) {
	eye := Vec3{1, 2, 3}
	center := Vec3{4, 0, -2}
	up := Vec3{0, 1, 0}

	var m Mat4
	m.SetLookAt(eye, center, up)
	if m != LookAt(eye, center, up) {
		t.Error("SetLookAt and LookAt disagree")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
