// Package camera provides the free-flying first-person camera and the
// per-frame controller that drives it from input state.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/webgl-scenes/pkg/math"
)

// Pitch limits in degrees. Looking straight up or down would make the
// direction parallel to up and collapse the view basis.
const (
	MinPitch float32 = -89
	MaxPitch float32 = 89
)

// degenerateEpsilon is the smallest |direction x up| accepted at construction.
const degenerateEpsilon = 1e-6

// Camera construction errors.
var (
	ErrUnknownMode     = errors.New("unknown camera mode")
	ErrZeroDirection   = errors.New("camera direction has zero length")
	ErrZeroUp          = errors.New("camera up vector has zero length")
	ErrDegenerateBasis = errors.New("camera direction is parallel to up")
)

// Mode selects how the initial orientation is given.
type Mode string

// Orientation modes.
const (
	ModeAngles    Mode = "angles"
	ModeDirection Mode = "direction"
)

// Orientation is the tagged initial orientation. Pitch and Yaw (degrees) are
// read in ModeAngles, Direction in ModeDirection.
type Orientation struct {
	Mode      Mode
	Pitch     float32
	Yaw       float32
	Direction math.Vec3
}

// Config holds the values a FlyCamera is created from.
type Config struct {
	Position    math.Vec3
	Up          math.Vec3
	Orientation Orientation
}

// DefaultConfig returns a camera at (0, 1, 3) looking down -Z.
func DefaultConfig() Config {
	return Config{
		Position: math.Vec3{X: 0, Y: 1, Z: 3},
		Up:       math.Vec3{X: 0, Y: 1, Z: 0},
		Orientation: Orientation{
			Mode:  ModeAngles,
			Pitch: 0,
			Yaw:   -90,
		},
	}
}

// FlyCamera is a first-person camera. Pitch and yaw are the source of truth;
// direction is recomputed from them on every rotation.
type FlyCamera struct {
	Position math.Vec3
	Up       math.Vec3

	direction math.Vec3
	pitch     float32 // degrees, always within [MinPitch, MaxPitch]
	yaw       float32 // degrees, unbounded
}

// New creates a camera from cfg. Both orientation modes are reduced to
// pitch/yaw so that later rotations behave the same.
func New(cfg Config) (*FlyCamera, error) {
	if cfg.Up.IsZero() {
		return nil, ErrZeroUp
	}

	c := &FlyCamera{
		Position: cfg.Position,
		Up:       cfg.Up.Normalize(),
	}

	switch cfg.Orientation.Mode {
	case ModeAngles, "":
		c.pitch = cfg.Orientation.Pitch
		c.yaw = cfg.Orientation.Yaw
	case ModeDirection:
		d := cfg.Orientation.Direction
		if d.IsZero() {
			return nil, ErrZeroDirection
		}
		d = d.Normalize()
		if d.Cross(c.Up).Length() < degenerateEpsilon {
			return nil, ErrDegenerateBasis
		}
		c.pitch, c.yaw = anglesFromDirection(d)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, cfg.Orientation.Mode)
	}

	c.pitch = math.Clamp(c.pitch, MinPitch, MaxPitch)
	c.updateDirection()

	if c.direction.Cross(c.Up).Length() < degenerateEpsilon {
		return nil, ErrDegenerateBasis
	}
	return c, nil
}

// Direction returns the unit view direction.
func (c *FlyCamera) Direction() math.Vec3 {
	return c.direction
}

// Pitch returns the pitch in degrees.
func (c *FlyCamera) Pitch() float32 {
	return c.pitch
}

// Yaw returns the accumulated yaw in degrees.
func (c *FlyCamera) Yaw() float32 {
	return c.yaw
}

// Target returns the point one unit ahead of the camera.
func (c *FlyCamera) Target() math.Vec3 {
	return c.Position.Add(c.direction)
}

// UpdateViewMatrix writes the view transform for the current state into out.
func (c *FlyCamera) UpdateViewMatrix(out *math.Mat4) {
	out.SetLookAt(c.Position, c.Target(), c.Up)
}

// ViewMatrix returns the view transform for the current state.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	var m math.Mat4
	c.UpdateViewMatrix(&m)
	return m
}

// MoveForward moves the camera along its direction.
func (c *FlyCamera) MoveForward(speed float32) {
	c.Position = c.Position.Add(c.direction.Scale(speed))
}

// MoveBackward moves the camera against its direction.
func (c *FlyCamera) MoveBackward(speed float32) {
	c.Position = c.Position.Sub(c.direction.Scale(speed))
}

// Right returns the unit strafe axis, direction x up. It is the zero vector
// when direction is parallel to up.
func (c *FlyCamera) Right() math.Vec3 {
	return c.direction.Cross(c.Up).Normalize()
}

// StrafeLeft moves the camera against the strafe axis.
func (c *FlyCamera) StrafeLeft(speed float32) {
	c.Position = c.Position.Sub(c.Right().Scale(speed))
}

// StrafeRight moves the camera along the strafe axis.
func (c *FlyCamera) StrafeRight(speed float32) {
	c.Position = c.Position.Add(c.Right().Scale(speed))
}

// Rotate adds the offsets (degrees) to yaw and pitch, clamps pitch and
// recomputes the direction.
func (c *FlyCamera) Rotate(xOffset, yOffset float32) {
	c.yaw += xOffset
	c.pitch = math.Clamp(c.pitch+yOffset, MinPitch, MaxPitch)
	c.updateDirection()
}

func (c *FlyCamera) updateDirection() {
	c.direction = directionFromAngles(c.pitch, c.yaw)
}

// directionFromAngles converts pitch/yaw in degrees to a unit vector.
func directionFromAngles(pitch, yaw float32) math.Vec3 {
	p := math.Radians(pitch)
	y := math.Radians(yaw)
	return math.Vec3{
		X: math32.Cos(y) * math32.Cos(p),
		Y: math32.Sin(p),
		Z: math32.Sin(y) * math32.Cos(p),
	}.Normalize()
}

// anglesFromDirection is the inverse of directionFromAngles for a unit d.
func anglesFromDirection(d math.Vec3) (pitch, yaw float32) {
	pitch = math.Degrees(math32.Asin(math.Clamp(d.Y, -1, 1)))
	yaw = math.Degrees(math32.Atan2(d.Z, d.X))
	return pitch, yaw
}
