// Package camera provides the 4D view transform driven by mouse input.
package camera

import (
	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// Modifiers are the keyboard modifiers held during a drag.
type Modifiers struct {
	Ctrl  bool // rotate through W instead of Z
	Shift bool // fine control
}

// RotorCamera accumulates a 4D rotation and a view zoom. Horizontal drag
// rotates X toward Z (or W with Ctrl), vertical drag rotates Y toward Z
// (or W with Ctrl).
type RotorCamera struct {
	Rotor math.Mat4
	Zoom  float32

	// Constraints
	MinZoom float32
	MaxZoom float32

	// Sensitivity
	DragSensitivity float32 // radians per pixel
	FineFactor      float32 // divisor applied while Shift is held
	ZoomStep        float32 // relative zoom per wheel notch

	// OrthonormalizeEvery re-orthonormalizes the rotor after this many
	// compositions. Zero disables it.
	OrthonormalizeEvery int

	steps   int
	version uint64
}

// NewRotorCamera creates a camera with the identity rotor and default settings.
func NewRotorCamera() *RotorCamera {
	return &RotorCamera{
		Rotor:               math.Identity(),
		Zoom:                1.0,
		MinZoom:             0.05,
		MaxZoom:             50.0,
		DragSensitivity:     1.0 / 200,
		FineFactor:          5,
		ZoomStep:            0.05,
		OrthonormalizeEvery: 64,
	}
}

// HandleDrag rotates the view by a mouse drag delta in pixels.
func (c *RotorCamera) HandleDrag(deltaX, deltaY float32, mods Modifiers) {
	if deltaX == 0 && deltaY == 0 {
		return
	}
	s := c.DragSensitivity
	if mods.Shift && c.FineFactor > 0 {
		s /= c.FineFactor
	}

	ax, ay := -deltaX*s, deltaY*s
	var rx, ry math.Mat4
	if mods.Ctrl {
		rx = math.Rotor(0, 3, ax)
		ry = math.Rotor(1, 3, ay)
	} else {
		rx = math.Rotor(0, 2, ax)
		ry = math.Rotor(1, 2, ay)
	}
	c.Rotate(rx.Mul(ry))
}

// Rotate applies r after the current rotation.
func (c *RotorCamera) Rotate(r math.Mat4) {
	c.Rotor = r.Mul(c.Rotor)
	c.steps++
	if c.OrthonormalizeEvery > 0 && c.steps >= c.OrthonormalizeEvery {
		c.Rotor = c.Rotor.Orthonormalize()
		c.steps = 0
	}
	c.version++
}

// Animate rotates in plane by speed radians per second over dt seconds.
func (c *RotorCamera) Animate(plane math.Plane, speed, dt float32) {
	if speed == 0 || dt <= 0 {
		return
	}
	c.Rotate(plane.Rotor(speed * dt))
}

// HandleZoom scales the view by 1 + delta·ZoomStep per wheel notch.
func (c *RotorCamera) HandleZoom(delta float32) {
	if delta == 0 {
		return
	}
	f := 1 + delta*c.ZoomStep
	if f <= 0 {
		return
	}
	c.Zoom *= f
	if c.Zoom < c.MinZoom {
		c.Zoom = c.MinZoom
	}
	if c.Zoom > c.MaxZoom {
		c.Zoom = c.MaxZoom
	}
}

// Reset restores the identity rotor and unit zoom.
func (c *RotorCamera) Reset() {
	c.Rotor = math.Identity()
	c.Zoom = 1.0
	c.steps = 0
	c.version++
}

// Version changes whenever the rotor changes. Callers compare it against
// the version their geometry was built for.
func (c *RotorCamera) Version() uint64 {
	return c.version
}
