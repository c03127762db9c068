// Package overlay produces the debug text shown over the scene: frame rate,
// camera position and direction, and whether mouse look is active.
package overlay

import (
	"fmt"

	"github.com/Faultbox/webgl-scenes/pkg/math"
)

// fpsWindow is how often, in seconds, the FPS figure is refreshed.
const fpsWindow = 0.5

// Overlay tracks frame timing and formats overlay lines.
type Overlay struct {
	frameCount int
	fps        float64
	frameTime  float64 // ms
	fpsAccum   float64 // seconds since last FPS update
	frameAccum int

	ShowFPS bool
}

// New creates an overlay with FPS display enabled.
func New() *Overlay {
	return &Overlay{ShowFPS: true}
}

// Update records one frame. dt is the frame time in seconds.
func (o *Overlay) Update(dt float64) {
	o.frameCount++
	o.frameTime = dt * 1000
	o.frameAccum++
	o.fpsAccum += dt

	if o.fpsAccum >= fpsWindow {
		o.fps = float64(o.frameAccum) / o.fpsAccum
		o.frameAccum = 0
		o.fpsAccum = 0
	}
}

// FPS returns the frame rate measured over the last full window.
func (o *Overlay) FPS() float64 {
	return o.fps
}

// FrameCount returns the number of frames recorded.
func (o *Overlay) FrameCount() int {
	return o.frameCount
}

// Lines formats the overlay text for a camera position and direction.
func (o *Overlay) Lines(position, direction math.Vec3, viewMode bool) []string {
	var lines []string
	if o.ShowFPS {
		lines = append(lines, fmt.Sprintf("fps: %.1f (%.2f ms)", o.fps, o.frameTime))
	}
	return append(lines,
		"camera position: "+formatVec3(position),
		"camera direction: "+formatVec3(direction),
		"view mode: "+enabled(viewMode),
	)
}

func formatVec3(v math.Vec3) string {
	return fmt.Sprintf("x: %.3f, y: %.3f, z: %.3f", v.X, v.Y, v.Z)
}

func enabled(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// Panel remembers the last rendered lines so that only changed ones need to
// be redrawn.
type Panel struct {
	lines []string
}

// Update stores lines and returns the indices that differ from the previous
// call. Lines past the previous count are always reported.
func (p *Panel) Update(lines []string) []int {
	var changed []int
	for i, l := range lines {
		if i >= len(p.lines) || p.lines[i] != l {
			changed = append(changed, i)
		}
	}
	p.lines = append(p.lines[:0], lines...)
	return changed
}

// Lines returns the last stored lines.
func (p *Panel) Lines() []string {
	return p.lines
}
