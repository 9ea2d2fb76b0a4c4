// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TubeVertexShader transforms the CPU-projected tube mesh.
//
//go:embed tube.vert
var TubeVertexShader string

// WireVertexShader rotates 4D fiber points and projects them
// stereographically on the GPU.
//
//go:embed wire.vert
var WireVertexShader string

// FiberFragmentShader shades both tubes and wires.
//
//go:embed fiber.frag
var FiberFragmentShader string

// FrameBlock is the name of the per-frame uniform block shared by all programs.
const FrameBlock = "Frame"
