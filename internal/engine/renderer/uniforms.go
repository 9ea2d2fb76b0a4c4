package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/hopf-fibration/pkg/math"
)

// UniformFloats is the float count of the std140 Frame block:
// three mat4 followed by four vec4.
const UniformFloats = 3*16 + 4*4

// Offsets of the Frame block members, in floats.
const (
	offProjection = 0
	offView       = 16
	offRotor      = 32
	offColor      = 48
	offWireColor  = 52
	offParams     = 56
	offStereo     = 60
)

// Uniforms is the per-frame state shared by the tube and wire programs.
type Uniforms struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Rotor      math.Mat4 // only read by the wire program

	Color      [4]float32
	WireColor  [4]float32
	Brightness float32
	ColorAxes  bool
	Time       float32
	Wire       bool

	Scale       float32
	PoleEpsilon float32
}

// Pack lays the uniforms out as the std140 Frame block.
func (u Uniforms) Pack() [UniformFloats]float32 {
	var out [UniformFloats]float32
	copy(out[offProjection:], u.Projection[:])
	copy(out[offView:], u.View[:])
	copy(out[offRotor:], u.Rotor[:])
	copy(out[offColor:], u.Color[:])
	copy(out[offWireColor:], u.WireColor[:])
	out[offParams] = u.Brightness
	out[offParams+1] = boolFloat(u.ColorAxes)
	out[offParams+2] = u.Time
	out[offParams+3] = boolFloat(u.Wire)
	out[offStereo] = u.Scale
	out[offStereo+1] = u.PoleEpsilon
	return out
}

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// ProjectionMatrix fits the unit square to the viewport aspect and flips
// depth so +Z points toward the viewer.
func ProjectionMatrix(width, height int) mgl32.Mat4 {
	if width <= 0 || height <= 0 {
		return mgl32.Ident4()
	}
	return mgl32.Scale3D(float32(height)/float32(width), 1, -0.6)
}

// ViewMatrix scales the scene uniformly by zoom.
func ViewMatrix(zoom float32) mgl32.Mat4 {
	return mgl32.Scale3D(zoom, zoom, zoom)
}

// UprightViewMatrix scales by zoom and swaps Y and Z, so the fiber axis
// (projected Z) points up the screen and projected Y becomes depth.
func UprightViewMatrix(zoom float32) mgl32.Mat4 {
	swap := mgl32.Mat4{
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	}
	return ViewMatrix(zoom).Mul4(swap)
}
