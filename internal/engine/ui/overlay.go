package ui

import (
	"fmt"
	"runtime"

	"github.com/AllenDang/cimgui-go/imgui"
)

// DebugOverlay renders frame timing and mesh statistics.
type DebugOverlay struct {
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	memStats      runtime.MemStats
	memUpdateTime float64

	// GL info
	Renderer string
	Version  string

	// Mesh stats
	Mode            string
	Rings           int
	Vertices        int
	Triangles       int
	Segments        int
	DegenerateRings int
	PoleSamples     int
	Rebuilds        int

	ShowFPS    bool
	ShowMesh   bool
	ShowMemory bool
	Enabled    bool
}

// NewDebugOverlay creates a new debug overlay.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{
		ShowFPS:  true,
		ShowMesh: true,
		Enabled:  true,
	}
}

// Update advances frame timing. deltaMs is the frame time in milliseconds.
func (d *DebugOverlay) Update(deltaMs float64) {
	d.frameTime = deltaMs
	d.frameAccum++
	d.fpsUpdateTime += deltaMs / 1000.0

	if d.fpsUpdateTime >= 0.5 {
		d.fps = float64(d.frameAccum) / d.fpsUpdateTime
		d.frameAccum = 0
		d.fpsUpdateTime = 0
	}

	d.memUpdateTime += deltaMs / 1000.0
	if d.memUpdateTime >= 2.0 {
		runtime.ReadMemStats(&d.memStats)
		d.memUpdateTime = 0
	}
}

// FPS returns the last averaged frame rate.
func (d *DebugOverlay) FPS() float64 {
	return d.fps
}

// FrameTime returns the last frame time in milliseconds.
func (d *DebugOverlay) FrameTime() float64 {
	return d.frameTime
}

// Render draws the overlay in the top-left corner.
func (d *DebugOverlay) Render() {
	if !d.Enabled {
		return
	}

	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowSize(imgui.NewVec2(260, 0))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##DebugOverlay", nil, flags) {
		if d.ShowFPS {
			d.renderFPS()
		}
		if d.ShowMesh {
			d.renderMesh()
		}
		if d.ShowMemory {
			d.renderMemory()
		}
	}
	imgui.End()

	imgui.PopStyleVar()
}

func (d *DebugOverlay) renderFPS() {
	imgui.TextColored(fpsColor(d.fps), fmt.Sprintf("FPS: %.1f", d.fps))
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("(%.2f ms)", d.frameTime))
	if d.Renderer != "" {
		imgui.TextDisabled(d.Renderer)
	}
	if d.Version != "" {
		imgui.TextDisabled("GL " + d.Version)
	}
}

func (d *DebugOverlay) renderMesh() {
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Mode: %s", d.Mode))
	if d.Segments > 0 {
		imgui.Text(fmt.Sprintf("  Fibers: %s", formatCount(d.Rings)))
		imgui.Text(fmt.Sprintf("  Segments: %s", formatCount(d.Segments)))
		return
	}
	imgui.Text(fmt.Sprintf("  Rings: %s", formatCount(d.Rings)))
	imgui.Text(fmt.Sprintf("  Vertices: %s", formatCount(d.Vertices)))
	imgui.Text(fmt.Sprintf("  Triangles: %s", formatCount(d.Triangles)))
	imgui.Text(fmt.Sprintf("  Rebuilds: %d", d.Rebuilds))
	if d.DegenerateRings > 0 || d.PoleSamples > 0 {
		imgui.TextColored(imgui.NewVec4(1.0, 1.0, 0.2, 1.0),
			fmt.Sprintf("  Degenerate: %d  Pole: %d", d.DegenerateRings, d.PoleSamples))
	}
}

func (d *DebugOverlay) renderMemory() {
	imgui.Separator()
	imgui.Text("Memory")
	imgui.Text(fmt.Sprintf("  Alloc: %s", formatBytes(int64(d.memStats.Alloc))))
	imgui.Text(fmt.Sprintf("  Sys: %s", formatBytes(int64(d.memStats.Sys))))
	imgui.Text(fmt.Sprintf("  GC: %d", d.memStats.NumGC))
}

// RenderSettings renders the overlay toggles.
func (d *DebugOverlay) RenderSettings() {
	if imgui.CollapsingHeaderTreeNodeFlagsV("Debug Overlay", imgui.TreeNodeFlagsNone) {
		imgui.Checkbox("Enabled", &d.Enabled)
		imgui.Checkbox("Show FPS", &d.ShowFPS)
		imgui.Checkbox("Show Mesh", &d.ShowMesh)
		imgui.Checkbox("Show Memory", &d.ShowMemory)
	}
}

func fpsColor(fps float64) imgui.Vec4 {
	switch {
	case fps < 30:
		return imgui.NewVec4(1.0, 0.2, 0.2, 1.0)
	case fps < 60:
		return imgui.NewVec4(1.0, 1.0, 0.2, 1.0)
	default:
		return imgui.NewVec4(0.2, 1.0, 0.2, 1.0)
	}
}

// formatCount groups thousands: 1234567 -> "1,234,567".
func formatCount(n int) string {
	if n < 0 {
		return "-" + formatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	out := s[:lead]
	for i := lead; i < len(s); i += 3 {
		out += "," + s[i:i+3]
	}
	return out
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
