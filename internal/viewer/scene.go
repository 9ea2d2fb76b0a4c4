// Package viewer holds the scene state shared by the viewers: the fibration
// configuration, the 4D camera, colors and the rebuild bookkeeping that keeps
// GPU geometry in step with the rotor.
package viewer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/internal/engine/camera"
	"github.com/Faultbox/hopf-fibration/internal/engine/renderer"
	"github.com/Faultbox/hopf-fibration/internal/logger"
	"github.com/Faultbox/hopf-fibration/pkg/hopf"
	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// Uploader receives rebuilt geometry. *renderer.Renderer implements it.
type Uploader interface {
	UploadTubes(m hopf.Mesh) error
	UploadWires(m hopf.LineMesh) error
}

// Stats describes the geometry currently on the GPU.
type Stats struct {
	Mode string
	hopf.BuildStats
	Segments  int
	Rebuilds  int
	BuildTime time.Duration
}

// Scene is the viewer state. Update must run before drawing each frame so
// the uploaded geometry matches the camera.
type Scene struct {
	Camera *camera.RotorCamera

	Background [4]float32
	Foreground [4]float32
	Wireframe  [4]float32
	Brightness float32
	ColorAxes  bool

	// Upright swaps projected Y and Z so the fiber axis points up.
	Upright bool

	AutoRotate      bool
	AutoRotateSpeed float32
	AutoRotatePlane math.Plane

	fib  hopf.Config
	mode string

	built        bool
	builtVersion uint64
	stats        Stats

	log *zap.Logger
}

// New creates a scene from a validated config.
func New(cfg *config.Config) (*Scene, error) {
	fib, err := cfg.Fibration.Hopf()
	if err != nil {
		return nil, fmt.Errorf("fibration: %w", err)
	}

	cam := camera.NewRotorCamera()
	cam.DragSensitivity = cfg.Controls.DragSensitivity
	cam.FineFactor = cfg.Controls.FineFactor
	cam.ZoomStep = cfg.Controls.ZoomStep
	cam.OrthonormalizeEvery = cfg.Controls.OrthonormalizeEvery

	s := &Scene{
		Camera:          cam,
		Background:      cfg.View.Background,
		Foreground:      cfg.View.Foreground,
		Wireframe:       cfg.View.Wireframe,
		Brightness:      cfg.View.Brightness,
		ColorAxes:       cfg.View.ColorAxes,
		AutoRotate:      cfg.View.AutoRotate,
		AutoRotateSpeed: cfg.View.AutoRotateSpeed,
		AutoRotatePlane: math.PlaneXW,
		fib:             fib,
		log:             logger.Named("scene"),
	}
	if err := s.SetMode(cfg.Fibration.Mode); err != nil {
		return nil, err
	}
	return s, nil
}

// Mode returns the current render mode.
func (s *Scene) Mode() string {
	return s.mode
}

// SetMode switches between tube and wire rendering.
func (s *Scene) SetMode(mode string) error {
	switch mode {
	case config.ModeTube, config.ModeWire:
	default:
		return fmt.Errorf("%w: mode %q", config.ErrInvalid, mode)
	}
	if mode != s.mode {
		s.mode = mode
		s.Invalidate()
	}
	return nil
}

// Fibration returns a copy of the fibration config.
func (s *Scene) Fibration() hopf.Config {
	c := s.fib
	c.Latitudes = append([]float32(nil), s.fib.Latitudes...)
	return c
}

// SetFibration replaces the fibration config. Invalid configs are rejected
// and the previous one stays in effect.
func (s *Scene) SetFibration(c hopf.Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	s.fib = c
	s.Invalidate()
	return nil
}

// Invalidate forces a rebuild on the next Update.
func (s *Scene) Invalidate() {
	s.built = false
}

// NeedsRebuild reports whether Update would rebuild geometry.
func (s *Scene) NeedsRebuild() bool {
	if !s.built {
		return true
	}
	// Wire geometry is rotor independent; the shader applies the rotor.
	return s.mode == config.ModeTube && s.builtVersion != s.Camera.Version()
}

// Tick advances auto-rotation by dt seconds.
func (s *Scene) Tick(dt float32) {
	if s.AutoRotate {
		s.Camera.Animate(s.AutoRotatePlane, s.AutoRotateSpeed, dt)
	}
}

// Update rebuilds and uploads geometry when the mode, the fibration or
// (in tube mode) the rotor changed since the last upload.
func (s *Scene) Update(u Uploader) error {
	if !s.NeedsRebuild() {
		return nil
	}

	start := time.Now()
	version := s.Camera.Version()

	var stats Stats
	switch s.mode {
	case config.ModeWire:
		m, err := hopf.BuildWires(s.fib)
		if err != nil {
			return fmt.Errorf("build wires: %w", err)
		}
		if err := u.UploadWires(m); err != nil {
			return err
		}
		stats.Rings = len(hopf.Circles(s.fib))
		stats.Segments = m.SegmentCount()

	default:
		m, bs, err := hopf.BuildTubes(s.fib, s.fib.Projector(s.Camera.Rotor))
		if err != nil {
			return fmt.Errorf("build tubes: %w", err)
		}
		if err := u.UploadTubes(m); err != nil {
			return err
		}
		stats.BuildStats = bs
	}

	stats.Mode = s.mode
	stats.Rebuilds = s.stats.Rebuilds + 1
	stats.BuildTime = time.Since(start)
	s.stats = stats
	s.built = true
	s.builtVersion = version

	if stats.Rebuilds == 1 || s.mode == config.ModeWire {
		s.log.Info("geometry built",
			zap.String("mode", stats.Mode),
			zap.Int("rings", stats.Rings),
			zap.Int("vertices", stats.Vertices),
			zap.Int("triangles", stats.Triangles),
			zap.Int("segments", stats.Segments),
			zap.Duration("took", stats.BuildTime),
		)
	} else {
		s.log.Debug("geometry rebuilt",
			zap.Int("rebuilds", stats.Rebuilds),
			zap.Duration("took", stats.BuildTime),
		)
	}
	if stats.DegenerateRings > 0 || stats.PoleSamples > 0 {
		s.log.Debug("degenerate geometry",
			zap.Int("degenerate_rings", stats.DegenerateRings),
			zap.Int("pole_samples", stats.PoleSamples),
		)
	}
	return nil
}

// Stats returns the statistics of the last rebuild.
func (s *Scene) Stats() Stats {
	return s.stats
}

// Uniforms returns the frame uniforms for a viewport of the given size.
// t is the elapsed time in seconds.
func (s *Scene) Uniforms(width, height int, t float32) renderer.Uniforms {
	view := renderer.ViewMatrix(s.Camera.Zoom)
	if s.Upright {
		view = renderer.UprightViewMatrix(s.Camera.Zoom)
	}
	p := s.fib.Projector(s.Camera.Rotor)
	return renderer.Uniforms{
		Projection:  renderer.ProjectionMatrix(width, height),
		View:        view,
		Rotor:       s.Camera.Rotor,
		Color:       s.Foreground,
		WireColor:   s.Wireframe,
		Brightness:  s.Brightness,
		ColorAxes:   s.ColorAxes,
		Time:        t,
		Wire:        s.mode == config.ModeWire,
		Scale:       p.EffectiveScale(),
		PoleEpsilon: p.EffectivePoleEpsilon(),
	}
}

// ResetView restores the identity rotor and unit zoom.
func (s *Scene) ResetView() {
	s.Camera.Reset()
}
