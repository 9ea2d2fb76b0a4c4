package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMode       = flag.String("mode", "", "Render mode: tube or wire")
	flagPreset     = flag.String("preset", "", "Fibration preset: bands, grid or single")
	flagLatitudes  = flag.Int("latitudes", 0, "Number of evenly spaced latitude bands")
	flagLongitudes = flag.Int("longitudes", 0, "Number of fibers per latitude")
	flagMajor      = flag.Int("major", 0, "Samples along each fiber")
	flagMinor      = flag.Int("minor", 0, "Samples around each tube")
	flagTubeRadius = flag.Float64("tube-radius", 0, "Tube radius")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.View.ShowFPS = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagMode != "" {
		cfg.Fibration.Mode = *flagMode
	}
	if *flagPreset != "" {
		cfg.Fibration.Preset = *flagPreset
	}
	if *flagLatitudes > 0 {
		cfg.Fibration.LatitudeBands = *flagLatitudes
		cfg.Fibration.Latitudes = nil
	}
	if *flagLongitudes > 0 {
		cfg.Fibration.LongitudeBands = *flagLongitudes
	}
	if *flagMajor > 0 {
		cfg.Fibration.MajorRes = *flagMajor
	}
	if *flagMinor > 0 {
		cfg.Fibration.MinorRes = *flagMinor
	}
	if *flagTubeRadius > 0 {
		cfg.Fibration.TubeRadius = float32(*flagTubeRadius)
	}
}
