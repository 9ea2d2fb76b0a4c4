package main

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/internal/engine/debug"
	"github.com/Faultbox/hopf-fibration/internal/engine/framebuffer"
	"github.com/Faultbox/hopf-fibration/internal/engine/renderer"
	"github.com/Faultbox/hopf-fibration/internal/engine/ui"
	"github.com/Faultbox/hopf-fibration/internal/logger"
	"github.com/Faultbox/hopf-fibration/internal/viewer"
)

// panelWidth is the width of the control panel docked on the right.
const panelWidth = 300

// App is the overlay viewer state.
type App struct {
	cfg      *config.Config
	backend  *ui.Backend
	renderer *renderer.Renderer
	fb       *framebuffer.Framebuffer
	scene    *viewer.Scene
	overlay  *ui.DebugOverlay
	shots    *debug.ScreenshotCapture
	log      *zap.Logger

	start    time.Time
	lastTime time.Time

	lastMousePos imgui.Vec2
	lastErr      string

	// Pending resolution edits, applied with the Apply button.
	majorRes, minorRes int32
	latBands, lonBands int32
	tubeRadius         float32
	presetName         string

	screenshotRequested bool
	screenshotMsg       string
	screenshotMsgTime   time.Time
}

// NewApp creates the window, the GL resources and the scene.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		cfg:     cfg,
		overlay: ui.NewDebugOverlay(),
		shots:   debug.NewScreenshotCapture("screenshots", "hopfviewer"),
		log:     logger.Named("hopfviewer"),
	}

	scene, err := viewer.New(cfg)
	if err != nil {
		return nil, err
	}
	app.scene = scene
	app.presetName = cfg.Fibration.Preset
	app.loadResolution()

	app.backend, err = ui.NewBackend("Hopf Fibration Viewer",
		int32(cfg.Graphics.Width), int32(cfg.Graphics.Height), cfg.View.Background)
	if err != nil {
		return nil, fmt.Errorf("creating backend: %w", err)
	}
	if cfg.Graphics.FPSLimit > 0 {
		app.backend.SetTargetFPS(uint(cfg.Graphics.FPSLimit))
	}

	app.renderer, err = renderer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	info := app.renderer.Info()
	app.overlay.Renderer = info.Renderer
	app.overlay.Version = info.Version
	app.overlay.Enabled = cfg.View.ShowFPS

	app.fb, err = framebuffer.New(int32(cfg.Graphics.Width), int32(cfg.Graphics.Height))
	if err != nil {
		app.renderer.Close()
		return nil, err
	}

	return app, nil
}

// loadResolution copies the scene's fibration into the panel fields.
func (app *App) loadResolution() {
	fib := app.scene.Fibration()
	app.majorRes = int32(fib.MajorRes)
	app.minorRes = int32(fib.MinorRes)
	app.latBands = int32(fib.LatitudeBands)
	app.lonBands = int32(fib.LongitudeBands)
	app.tubeRadius = fib.TubeRadius
}

// Run starts the main loop.
func (app *App) Run() {
	app.start = time.Now()
	app.lastTime = app.start
	app.backend.Run(app.render)
}

// Close releases GL resources.
func (app *App) Close() {
	if app.fb != nil {
		app.fb.Destroy()
	}
	if app.renderer != nil {
		app.renderer.Close()
	}
}

// render is called each frame to draw the UI.
func (app *App) render() {
	now := time.Now()
	dt := now.Sub(app.lastTime)
	app.lastTime = now
	app.overlay.Update(float64(dt.Microseconds()) / 1000.0)

	if ui.IsKeyPressed(imgui.KeyF12) {
		app.screenshotRequested = true
	}
	if ui.IsKeyPressed(imgui.KeyR) && !imgui.CurrentIO().WantTextInput() {
		app.scene.ResetView()
	}

	app.scene.Tick(float32(dt.Seconds()))

	app.renderScene()
	app.renderControls()
	app.updateOverlay()
	app.overlay.Render()
	app.renderScreenshotMsg()
}

// renderScene draws the fibration into the framebuffer and shows it as an
// image filling the area left of the control panel.
func (app *App) renderScene() {
	posX, posY, width, height := app.backend.GetViewport()
	imgui.SetNextWindowPos(imgui.NewVec2(posX, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(width-panelWidth, height))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoSavedSettings

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		avail := imgui.ContentRegionAvail()
		w, h := int32(avail.X), int32(avail.Y)
		app.fb.Resize(w, h)
		fw, fh := app.fb.Size()
		app.renderer.Resize(int(fw), int(fh))

		if err := app.scene.Update(app.renderer); err != nil {
			app.reportError(err)
		}

		t := float32(time.Since(app.start).Seconds())
		texID := app.fb.Render(func() {
			app.renderer.Begin(app.scene.Background)
			app.renderer.Draw(app.scene.Uniforms(int(fw), int(fh), t))
		})

		if app.screenshotRequested {
			app.screenshotRequested = false
			app.captureScreenshot()
		}

		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(texID))
		bg := app.scene.Background
		imgui.ImageWithBgV(
			*texRef,
			imgui.NewVec2(float32(fw), float32(fh)),
			imgui.NewVec2(0, 1), // UV flipped
			imgui.NewVec2(1, 0),
			imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]),
			imgui.NewVec4(1, 1, 1, 1),
		)

		if imgui.IsItemHovered() {
			mousePos := imgui.MousePos()
			if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
				deltaX := mousePos.X - app.lastMousePos.X
				deltaY := mousePos.Y - app.lastMousePos.Y
				app.scene.Camera.HandleDrag(deltaX, deltaY, ui.Modifiers())
			}
			app.lastMousePos = mousePos

			if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
				app.scene.Camera.HandleZoom(wheel)
			}
		}
	}
	imgui.End()
	imgui.PopStyleVar()
}

func (app *App) updateOverlay() {
	st := app.scene.Stats()
	app.overlay.Mode = st.Mode
	app.overlay.Rings = st.Rings
	app.overlay.Vertices = st.Vertices
	app.overlay.Triangles = st.Triangles
	app.overlay.Segments = st.Segments
	app.overlay.DegenerateRings = st.DegenerateRings
	app.overlay.PoleSamples = st.PoleSamples
	app.overlay.Rebuilds = st.Rebuilds
}

// reportError logs an error once until a different one occurs.
func (app *App) reportError(err error) {
	if msg := err.Error(); msg != app.lastErr {
		app.lastErr = msg
		app.log.Error("scene update failed", zap.Error(err))
	}
}

func (app *App) captureScreenshot() {
	w, h := app.fb.Size()
	name, err := app.shots.CaptureFromPixels(app.fb.ReadPixels(), int(w), int(h))
	if err != nil {
		app.screenshotMsg = fmt.Sprintf("Screenshot failed: %v", err)
		app.log.Warn("screenshot failed", zap.Error(err))
	} else {
		app.screenshotMsg = fmt.Sprintf("Saved: %s", name)
		app.log.Info("screenshot saved", zap.String("path", name))
	}
	app.screenshotMsgTime = time.Now()
}

func (app *App) renderScreenshotMsg() {
	if app.screenshotMsg == "" {
		return
	}
	if time.Since(app.screenshotMsgTime) > 3*time.Second {
		app.screenshotMsg = ""
		return
	}

	_, _, width, height := app.backend.GetViewport()
	imgui.SetNextWindowPos(imgui.NewVec2(10, height-40))
	imgui.SetNextWindowSize(imgui.NewVec2(width-panelWidth-20, 0))
	imgui.SetNextWindowBgAlpha(0.7)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing
	if imgui.BeginV("##ScreenshotMsg", nil, flags) {
		imgui.TextColored(imgui.NewVec4(0.4, 1.0, 0.4, 1.0), app.screenshotMsg)
	}
	imgui.End()
}
