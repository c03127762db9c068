// flycam replays a recorded input script through the first-person camera and
// prints the debug overlay as it changes.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/webgl-scenes/internal/config"
	"github.com/Faultbox/webgl-scenes/internal/engine/camera"
	"github.com/Faultbox/webgl-scenes/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: flycam [-config file] [-debug] [-speed N] [-sensitivity N] <script.yaml>")
		os.Exit(1)
	}

	script, err := LoadScript(args[0])
	if err != nil {
		logger.Error("failed to load script", zap.String("path", args[0]), zap.Error(err))
		os.Exit(1)
	}

	cam, err := camera.New(cfg.CameraConfig())
	if err != nil {
		logger.Error("failed to create camera", zap.Error(err))
		os.Exit(1)
	}
	logger.Sugar.Debugf("Camera: %+v", cfg.Camera)

	if _, err := Replay(os.Stdout, cam, cfg.Controller(), script, false); err != nil {
		logger.Error("replay failed", zap.Error(err))
		os.Exit(1)
	}
}
