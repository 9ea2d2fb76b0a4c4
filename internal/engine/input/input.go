// Package input translates SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hopf-fibration/internal/engine/camera"
)

// EventType identifies a translated event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseDrag
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Width  int
	Height int
	DX, DY float32
	Wheel  float32
	Mods   camera.Modifiers
}

// Input collects the events of one frame.
type Input struct {
	events   []Event
	dragging bool
	modState func() sdl.Keymod
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:   make([]Event, 0, 16),
		modState: sdl.GetModState,
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if i.Handle(event) {
			quit = true
		}
	}
	return quit
}

// Handle translates a single SDL event. Returns true on quit.
func (i *Input) Handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.events = append(i.events, Event{Type: EventQuit})
		return true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.events = append(i.events, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		}

	case *sdl.KeyboardEvent:
		ev := Event{Key: e.Keysym.Sym, Mods: i.mods()}
		if e.Type == sdl.KEYDOWN {
			ev.Type = EventKeyDown
		} else {
			ev.Type = EventKeyUp
		}
		i.events = append(i.events, ev)
		if ev.Type == EventKeyDown && e.Keysym.Sym == sdl.K_ESCAPE {
			i.events = append(i.events, Event{Type: EventQuit})
			return true
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = e.State == sdl.PRESSED
		}

	case *sdl.MouseMotionEvent:
		if i.dragging && (e.XRel != 0 || e.YRel != 0) {
			i.events = append(i.events, Event{
				Type: EventMouseDrag,
				DX:   float32(e.XRel),
				DY:   float32(e.YRel),
				Mods: i.mods(),
			})
		}

	case *sdl.MouseWheelEvent:
		wheel := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			wheel = -wheel
		}
		if wheel != 0 {
			i.events = append(i.events, Event{Type: EventMouseWheel, Wheel: wheel})
		}
	}
	return false
}

func (i *Input) mods() camera.Modifiers {
	mod := i.modState()
	return camera.Modifiers{
		Ctrl:  mod&sdl.KMOD_CTRL != 0,
		Shift: mod&sdl.KMOD_SHIFT != 0,
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Dragging reports whether the left mouse button is held.
func (i *Input) Dragging() bool {
	return i.dragging
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(key sdl.Keycode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
