package camera

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/webgl-scenes/pkg/math"
)

const tolerance = 1e-5

func newDefault(t *testing.T) *FlyCamera {
	t.Helper()
	c, err := New(DefaultConfig())
	require.NoError(t, err)
	return c
}

func assertVec3InDelta(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
}

func TestDefaultLooksDownNegativeZ(t *testing.T) {
	c := newDefault(t)

	assert.Equal(t, math.Vec3{X: 0, Y: 1, Z: 3}, c.Position)
	assertVec3InDelta(t, math.Vec3{X: 0, Y: 0, Z: -1}, c.Direction(), tolerance)
	assert.Equal(t, float32(0), c.Pitch())
	assert.Equal(t, float32(-90), c.Yaw())
}

func TestNewClampsInitialPitch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orientation.Pitch = 120
	c, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, MaxPitch, c.Pitch())
}

func TestNewDirectionMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orientation = Orientation{
		Mode:      ModeDirection,
		Direction: math.Vec3{X: 2, Y: 0, Z: 0},
	}
	c, err := New(cfg)
	require.NoError(t, err)

	assertVec3InDelta(t, math.Vec3{X: 1}, c.Direction(), tolerance)
	assert.InDelta(t, 0, c.Pitch(), tolerance)
	assert.InDelta(t, 0, c.Yaw(), tolerance)

	// Rotation continues from the derived angles
	c.Rotate(90, 0)
	assertVec3InDelta(t, math.Vec3{Z: 1}, c.Direction(), tolerance)
}

func TestNewDirectionModeMatchesAngles(t *testing.T) {
	angles := DefaultConfig()
	angles.Orientation = Orientation{Mode: ModeAngles, Pitch: 30, Yaw: 45}
	a, err := New(angles)
	require.NoError(t, err)

	dir := DefaultConfig()
	dir.Orientation = Orientation{Mode: ModeDirection, Direction: a.Direction()}
	d, err := New(dir)
	require.NoError(t, err)

	assert.InDelta(t, a.Pitch(), d.Pitch(), 1e-3)
	assert.InDelta(t, a.Yaw(), d.Yaw(), 1e-3)
	assertVec3InDelta(t, a.Direction(), d.Direction(), tolerance)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{
			name:   "zero up",
			modify: func(c *Config) { c.Up = math.Vec3{} },
			want:   ErrZeroUp,
		},
		{
			name: "zero direction",
			modify: func(c *Config) {
				c.Orientation = Orientation{Mode: ModeDirection}
			},
			want: ErrZeroDirection,
		},
		{
			name:   "unknown mode",
			modify: func(c *Config) { c.Orientation.Mode = "orbit" },
			want:   ErrUnknownMode,
		},
		{
			name: "direction parallel to up",
			modify: func(c *Config) {
				c.Up = math.Vec3{X: 1}
				c.Orientation = Orientation{Mode: ModeAngles, Pitch: 0, Yaw: 0}
			},
			want: ErrDegenerateBasis,
		},
		{
			name: "direction along up",
			modify: func(c *Config) {
				c.Orientation = Orientation{Mode: ModeDirection, Direction: math.Vec3{Y: 1}}
			},
			want: ErrDegenerateBasis,
		},
		{
			name: "direction opposite up",
			modify: func(c *Config) {
				c.Orientation = Orientation{Mode: ModeDirection, Direction: math.Vec3{Y: -3}}
			},
			want: ErrDegenerateBasis,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := New(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestRotatePitchStaysClamped(t *testing.T) {
	c := newDefault(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		c.Rotate(rng.Float32()*400-200, rng.Float32()*400-200)
		require.GreaterOrEqual(t, c.Pitch(), MinPitch)
		require.LessOrEqual(t, c.Pitch(), MaxPitch)
	}
}

func TestRotateDirectionIsUnit(t *testing.T) {
	c := newDefault(t)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 1000; i++ {
		c.Rotate(rng.Float32()*720-360, rng.Float32()*90-45)
		require.InDelta(t, 1, c.Direction().Length(), 1e-6)
	}
}

func TestRotateYawIsUnclamped(t *testing.T) {
	c := newDefault(t)
	c.Rotate(720, 0)
	assert.Equal(t, float32(630), c.Yaw())
	// 630 degrees wraps to 270, the same heading as -90
	assertVec3InDelta(t, math.Vec3{Z: -1}, c.Direction(), tolerance)
}

func TestRotateSphericalConversion(t *testing.T) {
	c := newDefault(t)
	c.Rotate(90, 45) // yaw 0, pitch 45

	h := float32(0.70710677)
	assertVec3InDelta(t, math.Vec3{X: h, Y: h, Z: 0}, c.Direction(), tolerance)
}

func TestMoveForwardBackwardRoundTrip(t *testing.T) {
	c := newDefault(t)
	c.Rotate(33, 12)
	start := c.Position

	for _, s := range []float32{0.016, 1, 7.5, 100} {
		c.MoveForward(s)
		c.MoveBackward(s)
		assertVec3InDelta(t, start, c.Position, 1e-4)
	}
}

func TestMoveForward(t *testing.T) {
	c := newDefault(t)
	c.MoveForward(2)
	assertVec3InDelta(t, math.Vec3{X: 0, Y: 1, Z: 1}, c.Position, tolerance)
}

func TestStrafeIsOrthogonal(t *testing.T) {
	c := newDefault(t)
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 200; i++ {
		c.Rotate(rng.Float32()*360-180, rng.Float32()*60-30)
		right := c.Right()
		require.InDelta(t, 0, right.Dot(c.Direction()), 1e-5)
		require.InDelta(t, 0, right.Dot(c.Up), 1e-5)
		require.InDelta(t, 1, right.Length(), 1e-5)
	}
}

func TestStrafeLeftRight(t *testing.T) {
	c := newDefault(t)

	c.StrafeRight(1)
	assertVec3InDelta(t, math.Vec3{X: 1, Y: 1, Z: 3}, c.Position, tolerance)

	c.StrafeLeft(2)
	assertVec3InDelta(t, math.Vec3{X: -1, Y: 1, Z: 3}, c.Position, tolerance)
}

func TestViewMatrixMapsTargetAhead(t *testing.T) {
	c := newDefault(t)
	c.Rotate(25, -10)
	c.MoveForward(3)

	view := c.ViewMatrix()

	eye := view.TransformVec3(c.Position)
	assertVec3InDelta(t, math.Vec3{}, eye, 1e-4)

	ahead := view.TransformVec3(c.Target())
	assertVec3InDelta(t, math.Vec3{Z: -1}, ahead, 1e-4)
}

func TestUpdateViewMatrixWritesOut(t *testing.T) {
	c := newDefault(t)
	out := math.Identity()
	c.UpdateViewMatrix(&out)
	assert.Equal(t, math.LookAt(c.Position, c.Target(), c.Up), out)
}
