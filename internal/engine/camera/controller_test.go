package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/webgl-scenes/internal/engine/input"
	"github.com/Faultbox/webgl-scenes/pkg/math"
)

func TestControllerMovesWithHeldKeys(t *testing.T) {
	tests := []struct {
		name string
		key  input.Key
		want math.Vec3
	}{
		{"forward", input.KeyW, math.Vec3{X: 0, Y: 1, Z: 2}},
		{"backward", input.KeyS, math.Vec3{X: 0, Y: 1, Z: 4}},
		{"left", input.KeyA, math.Vec3{X: -1, Y: 1, Z: 3}},
		{"right", input.KeyD, math.Vec3{X: 1, Y: 1, Z: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := newDefault(t)
			st := input.NewState()
			st.Apply(input.Event{Type: input.EventKeyDown, Key: tt.key})

			ctl := &Controller{MoveSpeed: 2}
			ctl.Update(cam, st, 0.5)

			assertVec3InDelta(t, tt.want, cam.Position, tolerance)
		})
	}
}

func TestControllerIgnoresMouseOutsideViewMode(t *testing.T) {
	cam := newDefault(t)
	st := input.NewState()
	st.Apply(input.Event{Type: input.EventMouseMove, DX: 50, DY: 50})

	NewController().Update(cam, st, 0.016)

	assert.Equal(t, float32(-90), cam.Yaw())
	assert.Equal(t, float32(0), cam.Pitch())
	// Delta is still consumed so it does not jump once view mode starts
	assert.Zero(t, st.MouseDX)
	assert.Zero(t, st.MouseDY)
}

func TestControllerMouseLook(t *testing.T) {
	cam := newDefault(t)
	st := input.NewState()
	st.ApplyAll([]input.Event{
		{Type: input.EventToggleViewMode},
		{Type: input.EventMouseMove, DX: 100, DY: -50},
	})

	ctl := &Controller{MouseSensitivity: 0.1}
	ctl.Update(cam, st, 0.016)

	assert.InDelta(t, -80, cam.Yaw(), tolerance)
	assert.InDelta(t, 5, cam.Pitch(), tolerance)
}

func TestControllerInvertY(t *testing.T) {
	cam := newDefault(t)
	st := input.NewState()
	st.ApplyAll([]input.Event{
		{Type: input.EventToggleViewMode},
		{Type: input.EventMouseMove, DY: -50},
	})

	ctl := &Controller{MouseSensitivity: 0.1, InvertY: true}
	ctl.Update(cam, st, 0.016)

	assert.InDelta(t, -5, cam.Pitch(), tolerance)
}
