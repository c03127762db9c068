package camera

import "github.com/Faultbox/webgl-scenes/internal/engine/input"

// Controller applies one frame of input to a FlyCamera.
type Controller struct {
	MoveSpeed        float32 // world units per second
	MouseSensitivity float32 // degrees per pixel
	InvertY          bool
}

// NewController creates a controller with the demo's default speeds.
func NewController() *Controller {
	return &Controller{
		MoveSpeed:        2.5,
		MouseSensitivity: 0.1,
	}
}

// Update moves and rotates cam from st. dt is the frame time in seconds.
// The mouse delta in st is consumed.
func (ctl *Controller) Update(cam *FlyCamera, st *input.State, dt float32) {
	speed := ctl.MoveSpeed * dt

	if st.IsHeld(input.KeyW) {
		cam.MoveForward(speed)
	}
	if st.IsHeld(input.KeyS) {
		cam.MoveBackward(speed)
	}
	if st.IsHeld(input.KeyA) {
		cam.StrafeLeft(speed)
	}
	if st.IsHeld(input.KeyD) {
		cam.StrafeRight(speed)
	}

	dx, dy := st.ConsumeMouse()
	if !st.ViewMode || (dx == 0 && dy == 0) {
		return
	}

	// Screen Y grows downward, pitch grows upward
	yOffset := -dy * ctl.MouseSensitivity
	if ctl.InvertY {
		yOffset = -yOffset
	}
	cam.Rotate(dx*ctl.MouseSensitivity, yOffset)
}
