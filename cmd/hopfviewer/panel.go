package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/hopf-fibration/internal/config"
	"github.com/Faultbox/hopf-fibration/pkg/hopf"
)

// renderControls draws the control panel docked on the right.
func (app *App) renderControls() {
	posX, posY, width, height := app.backend.GetViewport()
	imgui.SetNextWindowPos(imgui.NewVec2(posX+width-panelWidth, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, height))

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove | imgui.WindowFlagsNoCollapse
	if imgui.BeginV("Controls", nil, flags) {
		app.renderInfo()
		app.renderViewControls()
		app.renderModeControls()
		app.renderFibrationControls()
		app.overlay.RenderSettings()
		app.renderHelp()
	}
	imgui.End()
}

func (app *App) renderInfo() {
	if !imgui.CollapsingHeaderTreeNodeFlagsV("OpenGL", imgui.TreeNodeFlagsNone) {
		return
	}
	info := app.renderer.Info()
	imgui.Text(fmt.Sprintf("Vendor: %s", info.Vendor))
	imgui.TextWrapped(fmt.Sprintf("Renderer: %s", info.Renderer))
	imgui.Text(fmt.Sprintf("Version: %s", info.Version))
	imgui.Text(fmt.Sprintf("GLSL: %s", info.GLSL))
}

func (app *App) renderViewControls() {
	if !imgui.CollapsingHeaderTreeNodeFlagsV("View", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	s := app.scene

	if imgui.ColorEdit4("Background", &s.Background) {
		app.backend.SetBgColor(s.Background)
	}
	imgui.ColorEdit4("Foreground", &s.Foreground)
	imgui.ColorEdit4("Wireframe", &s.Wireframe)
	imgui.SliderFloatV("Brightness", &s.Brightness, 0.1, 3.0, "%.2f", imgui.SliderFlagsNone)

	imgui.Checkbox("RGBY axis colors", &s.ColorAxes)
	if imgui.IsItemHovered() {
		imgui.SetTooltip("Color each point by its squared 4D coordinates")
	}
	imgui.Checkbox("Upright", &s.Upright)
	imgui.Checkbox("Auto-rotate (XW)", &s.AutoRotate)
	if s.AutoRotate {
		imgui.SliderFloatV("Speed", &s.AutoRotateSpeed, -2, 2, "%.2f rad/s", imgui.SliderFlagsNone)
	}

	imgui.Spacing()
	imgui.Text(fmt.Sprintf("Zoom: %.2fx", s.Camera.Zoom))
	imgui.SameLine()
	if imgui.Button("Reset View") {
		s.ResetView()
	}
}

func (app *App) renderModeControls() {
	if !imgui.CollapsingHeaderTreeNodeFlagsV("Mode", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	for _, mode := range []string{config.ModeTube, config.ModeWire} {
		if imgui.SelectableBoolV(mode, app.scene.Mode() == mode, 0, imgui.NewVec2(0, 0)) {
			if err := app.scene.SetMode(mode); err != nil {
				app.log.Warn("mode switch failed", zap.Error(err))
			}
		}
	}
	if app.scene.Mode() == config.ModeTube {
		imgui.TextDisabled("Tubes are rebuilt on the CPU as the view rotates.")
	} else {
		imgui.TextDisabled("Fibers are rotated and projected on the GPU.")
	}
}

func (app *App) renderFibrationControls() {
	if !imgui.CollapsingHeaderTreeNodeFlagsV("Fibration", imgui.TreeNodeFlagsDefaultOpen) {
		return
	}

	imgui.Text("Preset")
	for _, name := range hopf.PresetNames() {
		imgui.SameLine()
		if imgui.SelectableBoolV(name, app.presetName == name, 0, imgui.NewVec2(60, 0)) {
			app.selectPreset(name)
		}
	}

	imgui.SliderIntV("Major", &app.majorRes, 3, 512, "%d", imgui.SliderFlagsNone)
	imgui.SliderIntV("Minor", &app.minorRes, 3, 64, "%d", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Radius", &app.tubeRadius, 0.001, 0.1, "%.3f", imgui.SliderFlagsNone)
	imgui.SliderIntV("Latitudes", &app.latBands, 1, 32, "%d", imgui.SliderFlagsNone)
	imgui.SliderIntV("Longitudes", &app.lonBands, 1, 128, "%d", imgui.SliderFlagsNone)

	fib := app.scene.Fibration()
	if len(fib.Latitudes) > 0 {
		imgui.TextDisabled(fmt.Sprintf("%d explicit latitudes", len(fib.Latitudes)))
	}

	if imgui.Button("Apply") {
		app.applyResolution()
	}
	imgui.SameLine()
	if imgui.Button("Revert") {
		app.loadResolution()
	}
}

func (app *App) selectPreset(name string) {
	fib, err := hopf.Preset(name)
	if err != nil {
		app.log.Warn("preset failed", zap.String("preset", name), zap.Error(err))
		return
	}
	if err := app.scene.SetFibration(fib); err != nil {
		app.log.Warn("preset rejected", zap.String("preset", name), zap.Error(err))
		return
	}
	app.presetName = name
	app.loadResolution()
}

// applyResolution pushes the slider values into the scene. Changing the
// latitude count drops any explicit latitude list.
func (app *App) applyResolution() {
	fib := app.scene.Fibration()
	fib.MajorRes = int(app.majorRes)
	fib.MinorRes = int(app.minorRes)
	fib.TubeRadius = app.tubeRadius
	fib.LongitudeBands = int(app.lonBands)
	if int(app.latBands) != fib.LatitudeBands {
		fib.LatitudeBands = int(app.latBands)
		fib.Latitudes = nil
	}
	if err := app.scene.SetFibration(fib); err != nil {
		app.log.Warn("resolution rejected", zap.Error(err))
		return
	}
	app.log.Info("fibration changed",
		zap.Int("major", fib.MajorRes),
		zap.Int("minor", fib.MinorRes),
		zap.Int("fibers", len(hopf.Circles(fib))),
	)
}

func (app *App) renderHelp() {
	if !imgui.CollapsingHeaderTreeNodeFlagsV("Help", imgui.TreeNodeFlagsNone) {
		return
	}
	imgui.TextWrapped("Drag: rotate X and Y toward Z")
	imgui.TextWrapped("Ctrl+Drag: rotate X and Y toward W")
	imgui.TextWrapped("Shift: fine rotation")
	imgui.TextWrapped("Wheel: zoom")
	imgui.TextWrapped("R: reset view, F12: screenshot")
}
