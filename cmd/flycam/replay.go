package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/webgl-scenes/internal/engine/camera"
	"github.com/Faultbox/webgl-scenes/internal/engine/input"
	"github.com/Faultbox/webgl-scenes/internal/engine/overlay"
	"github.com/Faultbox/webgl-scenes/internal/logger"
)

// Replay drives cam through the script frame by frame and writes the overlay
// lines that changed on each frame. It returns the number of frames run.
func Replay(w io.Writer, cam *camera.FlyCamera, ctl *camera.Controller, script *Script, showFPS bool) (int, error) {
	log := logger.Named("replay")

	st := input.NewState()
	ov := overlay.New()
	ov.ShowFPS = showFPS
	var panel overlay.Panel

	frame := 0
	for i, f := range script.Frames {
		events, err := f.events()
		if err != nil {
			return frame, fmt.Errorf("frame %d: %w", i, err)
		}
		st.ApplyAll(events)
		log.Debug("applied events",
			zap.Int("frame", frame),
			zap.Int("events", len(events)),
			zap.Stringers("held", st.HeldKeys()))

		for r := 0; r < f.Repeat; r++ {
			ctl.Update(cam, st, f.DT)
			ov.Update(float64(f.DT))

			lines := ov.Lines(cam.Position, cam.Direction(), st.ViewMode)
			for _, idx := range panel.Update(lines) {
				if _, err := fmt.Fprintf(w, "[%05d] %s\n", frame, lines[idx]); err != nil {
					return frame, err
				}
			}
			frame++
		}
	}

	log.Info("replay finished",
		zap.Int("frames", frame),
		zap.Float32("pitch", cam.Pitch()),
		zap.Float32("yaw", cam.Yaw()))
	return frame, nil
}
