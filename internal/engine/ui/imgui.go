// Package ui provides ImGui-based user interface components.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hopf-fibration/internal/engine/camera"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	width   int32
	height  int32
}

// NewBackend creates the ImGui window and initializes OpenGL.
func NewBackend(title string, width, height int32, bg [4]float32) (*Backend, error) {
	b := &Backend{
		width:  width,
		height: height,
	}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(applyStyle)
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
	b.backend.CreateWindow(title, int(width), int(height))

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	return b, nil
}

func applyStyle() {
	imgui.StyleColorsDark()
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// SetBgColor changes the clear color behind all ImGui windows.
func (b *Backend) SetBgColor(bg [4]float32) {
	b.backend.SetBgColor(imgui.NewVec4(bg[0], bg[1], bg[2], bg[3]))
}

// SetTargetFPS caps the render loop; zero leaves it uncapped.
func (b *Backend) SetTargetFPS(fps uint) {
	b.backend.SetTargetFPS(fps)
}

// GetViewport returns the main viewport work area.
func (b *Backend) GetViewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

// Modifiers returns the currently held drag modifiers.
func Modifiers() camera.Modifiers {
	return camera.Modifiers{
		Ctrl:  imgui.IsKeyDown(imgui.ModCtrl),
		Shift: imgui.IsKeyDown(imgui.ModShift),
	}
}
