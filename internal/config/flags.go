package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagTangents    = flag.Bool("tangents", false, "Emit tangent/bitangent vertex layout")
	flagStrict      = flag.Bool("strict", false, "Reject faces with degenerate UVs")
	flagSpeed       = flag.Float64("speed", 0, "Camera move speed (units/s)")
	flagSensitivity = flag.Float64("sensitivity", 0, "Mouse sensitivity (degrees/pixel)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTangents {
		cfg.Mesh.Tangents = true
	}
	if *flagStrict {
		cfg.Mesh.Strict = true
	}
	if *flagSpeed > 0 {
		cfg.Controls.MoveSpeed = float32(*flagSpeed)
	}
	if *flagSensitivity > 0 {
		cfg.Controls.MouseSensitivity = float32(*flagSensitivity)
	}
}
