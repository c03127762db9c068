// Package config handles configuration loading and management.
package config

import (
	"github.com/Faultbox/webgl-scenes/internal/engine/camera"
	"github.com/Faultbox/webgl-scenes/pkg/formats"
	"github.com/Faultbox/webgl-scenes/pkg/math"
)

// Config holds all settings.
type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CameraConfig holds the initial camera placement.
type CameraConfig struct {
	Position math.Vec3 `yaml:"position"`
	Up       math.Vec3 `yaml:"up"`

	// Mode is "angles" (pitch/yaw in degrees) or "direction".
	Mode      string    `yaml:"mode"`
	Pitch     float32   `yaml:"pitch"`
	Yaw       float32   `yaml:"yaw"`
	Direction math.Vec3 `yaml:"direction"`
}

// ControlsConfig holds input tuning.
type ControlsConfig struct {
	MoveSpeed        float32 `yaml:"move_speed"`        // units per second
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // degrees per pixel
	InvertY          bool    `yaml:"invert_y"`
}

// MeshConfig holds OBJ parsing settings.
type MeshConfig struct {
	Tangents bool `yaml:"tangents"` // emit the 14-float tangent layout
	Strict   bool `yaml:"strict"`   // reject degenerate UV faces
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cam := camera.DefaultConfig()
	return &Config{
		Camera: CameraConfig{
			Position: cam.Position,
			Up:       cam.Up,
			Mode:     string(cam.Orientation.Mode),
			Pitch:    cam.Orientation.Pitch,
			Yaw:      cam.Orientation.Yaw,
		},
		Controls: ControlsConfig{
			MoveSpeed:        2.5,
			MouseSensitivity: 0.1,
			InvertY:          false,
		},
		Mesh: MeshConfig{
			Tangents: false,
			Strict:   false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// CameraConfig converts the camera section for camera.New.
func (c *Config) CameraConfig() camera.Config {
	return camera.Config{
		Position: c.Camera.Position,
		Up:       c.Camera.Up,
		Orientation: camera.Orientation{
			Mode:      camera.Mode(c.Camera.Mode),
			Pitch:     c.Camera.Pitch,
			Yaw:       c.Camera.Yaw,
			Direction: c.Camera.Direction,
		},
	}
}

// Controller builds a camera controller from the controls section.
func (c *Config) Controller() *camera.Controller {
	return &camera.Controller{
		MoveSpeed:        c.Controls.MoveSpeed,
		MouseSensitivity: c.Controls.MouseSensitivity,
		InvertY:          c.Controls.InvertY,
	}
}

// OBJOptions converts the mesh section for formats.ParseOBJ.
func (c *Config) OBJOptions() formats.OBJOptions {
	opts := formats.OBJOptions{Strict: c.Mesh.Strict}
	if c.Mesh.Tangents {
		opts.Layout = formats.LayoutTangent
	}
	return opts
}
