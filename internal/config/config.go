// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/hopf-fibration/pkg/hopf"
)

// Render modes.
const (
	ModeTube = "tube" // CPU projection, shaded tubes
	ModeWire = "wire" // GPU rotation/projection of 4D line loops
)

// ErrInvalid is wrapped by Validate errors.
var ErrInvalid = errors.New("invalid config")

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Fibration FibrationConfig `yaml:"fibration"`
	View      ViewConfig      `yaml:"view"`
	Controls  ControlsConfig  `yaml:"controls"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// FibrationConfig selects the fibers to draw. Zero values fall back to the
// preset's value.
type FibrationConfig struct {
	Preset         string    `yaml:"preset"`
	Mode           string    `yaml:"mode"`
	MajorRes       int       `yaml:"major_res,omitempty"`
	MinorRes       int       `yaml:"minor_res,omitempty"`
	WireRes        int       `yaml:"wire_res,omitempty"`
	TubeRadius     float32   `yaml:"tube_radius,omitempty"`
	LatitudeBands  int       `yaml:"latitude_bands,omitempty"`
	LongitudeBands int       `yaml:"longitude_bands,omitempty"`
	Latitudes      []float32 `yaml:"latitudes,omitempty"`
	Scale          float32   `yaml:"scale,omitempty"`
	PoleEpsilon    float32   `yaml:"pole_epsilon,omitempty"`
}

// ViewConfig holds colors and presentation toggles. Colors are RGBA.
type ViewConfig struct {
	Background      [4]float32 `yaml:"background,flow"`
	Foreground      [4]float32 `yaml:"foreground,flow"`
	Wireframe       [4]float32 `yaml:"wireframe,flow"`
	Brightness      float32    `yaml:"brightness"`
	ColorAxes       bool       `yaml:"color_axes"`
	AutoRotate      bool       `yaml:"auto_rotate"`
	AutoRotateSpeed float32    `yaml:"auto_rotate_speed"` // radians per second
	ShowFPS         bool       `yaml:"show_fps"`
}

// ControlsConfig holds mouse interaction settings.
type ControlsConfig struct {
	DragSensitivity     float32 `yaml:"drag_sensitivity"` // radians per pixel
	FineFactor          float32 `yaml:"fine_factor"`      // divisor while Shift is held
	ZoomStep            float32 `yaml:"zoom_step"`        // view scale change per wheel notch
	OrthonormalizeEvery int     `yaml:"orthonormalize_every"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Fibration: FibrationConfig{
			Preset: "bands",
			Mode:   ModeTube,
		},
		View: ViewConfig{
			Background:      [4]float32{0.07, 0.09, 0.10, 1},
			Foreground:      [4]float32{0.71, 0.53, 0.94, 1},
			Wireframe:       [4]float32{0.95, 0.95, 0.95, 1},
			Brightness:      1,
			ColorAxes:       true,
			AutoRotate:      false,
			AutoRotateSpeed: 0.3,
			ShowFPS:         false,
		},
		Controls: ControlsConfig{
			DragSensitivity:     1.0 / 200,
			FineFactor:          5,
			ZoomStep:            0.05,
			OrthonormalizeEvery: 64,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Hopf resolves the fibration section against its preset.
func (f FibrationConfig) Hopf() (hopf.Config, error) {
	cfg, err := hopf.Preset(f.Preset)
	if err != nil {
		return hopf.Config{}, err
	}
	if f.MajorRes != 0 {
		cfg.MajorRes = f.MajorRes
	}
	if f.MinorRes != 0 {
		cfg.MinorRes = f.MinorRes
	}
	if f.WireRes != 0 {
		cfg.WireRes = f.WireRes
	}
	if f.TubeRadius != 0 {
		cfg.TubeRadius = f.TubeRadius
	}
	if f.LongitudeBands != 0 {
		cfg.LongitudeBands = f.LongitudeBands
	}
	if len(f.Latitudes) > 0 {
		cfg.Latitudes = append([]float32(nil), f.Latitudes...)
	}
	if f.LatitudeBands != 0 {
		// Explicit band count replaces the preset's latitude list.
		cfg.LatitudeBands = f.LatitudeBands
		if len(f.Latitudes) == 0 {
			cfg.Latitudes = nil
		}
	}
	if f.Scale != 0 {
		cfg.Scale = f.Scale
	}
	if f.PoleEpsilon != 0 {
		cfg.PoleEpsilon = f.PoleEpsilon
	}
	return cfg, cfg.Validate()
}

// Validate reports settings the viewers cannot run with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	}
	switch c.Fibration.Mode {
	case ModeTube, ModeWire:
	default:
		return fmt.Errorf("%w: mode %q (want %q or %q)", ErrInvalid, c.Fibration.Mode, ModeTube, ModeWire)
	}
	if _, err := c.Fibration.Hopf(); err != nil {
		return fmt.Errorf("%w: fibration: %w", ErrInvalid, err)
	}
	if c.Controls.DragSensitivity <= 0 || c.Controls.FineFactor <= 0 {
		return fmt.Errorf("%w: drag sensitivity %g, fine factor %g", ErrInvalid,
			c.Controls.DragSensitivity, c.Controls.FineFactor)
	}
	if c.Controls.ZoomStep <= 0 || c.Controls.ZoomStep >= 1 {
		return fmt.Errorf("%w: zoom step %g must be in (0, 1)", ErrInvalid, c.Controls.ZoomStep)
	}
	if c.Controls.OrthonormalizeEvery < 0 {
		return fmt.Errorf("%w: orthonormalize_every %d", ErrInvalid, c.Controls.OrthonormalizeEvery)
	}
	return nil
}
