package main

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/internal/engine/debug"
	"github.com/Faultbox/hopf-fibration/internal/engine/input"
	"github.com/Faultbox/hopf-fibration/internal/engine/renderer"
	"github.com/Faultbox/hopf-fibration/internal/engine/window"
	"github.com/Faultbox/hopf-fibration/internal/logger"
	"github.com/Faultbox/hopf-fibration/internal/viewer"
)

type app struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *viewer.Scene
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	running             bool
	screenshotRequested bool
}

func newApp(cfg *config.Config) (*app, error) {
	a := &app{
		cfg:   cfg,
		input: input.New(),
		shots: debug.NewScreenshotCapture("screenshots", "hopf"),
		log:   logger.Named("hopf"),
	}

	scene, err := viewer.New(cfg)
	if err != nil {
		return nil, err
	}
	scene.Upright = true
	scene.AutoRotate = true
	a.scene = scene

	a.window, err = window.New(window.Config{
		Title:      "Hopf Fibration",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(int(w), int(h))
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return a, nil
}

// Run drives the frame loop until the window closes.
func (a *app) Run() error {
	a.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start

	var minFrame time.Duration
	if a.cfg.Graphics.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(a.cfg.Graphics.FPSLimit)
	}

	a.log.Info("starting render loop", zap.String("mode", a.scene.Mode()))

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		if !a.input.Dragging() {
			a.scene.Tick(float32(dt))
		}
		if err := a.scene.Update(a.renderer); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		w, h := a.renderer.Size()
		a.renderer.Begin(a.scene.Background)
		a.renderer.Draw(a.scene.Uniforms(w, h, float32(time.Since(start).Seconds())))

		// Read back before the swap; the back buffer is undefined afterwards.
		if a.screenshotRequested {
			a.screenshotRequested = false
			a.captureScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			if a.cfg.View.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("Hopf Fibration - %d FPS", frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

func (a *app) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := a.window.DrawableSize()
			a.renderer.Resize(int(w), int(h))
		case input.EventMouseDrag:
			a.scene.Camera.HandleDrag(event.DX, event.DY, event.Mods)
		case input.EventMouseWheel:
			a.scene.Camera.HandleZoom(event.Wheel)
		case input.EventKeyDown:
			a.handleKey(event.Key)
		}
	}
}

func (a *app) handleKey(key sdl.Keycode) {
	switch key {
	case sdl.K_SPACE:
		a.scene.AutoRotate = !a.scene.AutoRotate
	case sdl.K_r:
		a.scene.ResetView()
	case sdl.K_m:
		mode := config.ModeWire
		if a.scene.Mode() == config.ModeWire {
			mode = config.ModeTube
		}
		if err := a.scene.SetMode(mode); err != nil {
			a.log.Warn("mode switch failed", zap.Error(err))
		}
	case sdl.K_c:
		a.scene.ColorAxes = !a.scene.ColorAxes
	case sdl.K_F12:
		a.screenshotRequested = true
	}
}

func (a *app) captureScreenshot() {
	w, h := a.renderer.Size()
	name, err := a.shots.CaptureFromPixels(a.renderer.ReadPixels(), w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", name))
}

// Close releases the renderer and the window.
func (a *app) Close() {
	a.log.Info("closing viewer")
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
