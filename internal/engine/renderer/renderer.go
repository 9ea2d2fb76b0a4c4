// Package renderer provides OpenGL rendering of fibration meshes.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hopf-fibration/internal/engine/shader"
	"github.com/Faultbox/hopf-fibration/internal/engine/shaders"
	"github.com/Faultbox/hopf-fibration/internal/logger"
	"github.com/Faultbox/hopf-fibration/pkg/hopf"
)

// frameBinding is the uniform buffer binding point of the Frame block.
const frameBinding = 1

// Info describes the OpenGL implementation.
type Info struct {
	Vendor   string
	Renderer string
	Version  string
	GLSL     string
}

// Renderer draws an aggregated tube mesh or a set of 4D wire loops.
type Renderer struct {
	log  *zap.Logger
	info Info

	tubeProgram uint32
	wireProgram uint32
	ubo         uint32

	tube gpuMesh
	wire gpuMesh

	width, height int
}

// gpuMesh is one VAO with its vertex and index buffers.
type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// New initializes OpenGL and compiles the fiber programs.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		log:    logger.Named("renderer"),
		width:  width,
		height: height,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.info = Info{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	r.log.Info("OpenGL initialized",
		zap.String("vendor", r.info.Vendor),
		zap.String("renderer", r.info.Renderer),
		zap.String("version", r.info.Version),
		zap.String("glsl", r.info.GLSL),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	var err error
	r.tubeProgram, err = r.createProgram("tube", shaders.TubeVertexShader)
	if err != nil {
		r.Close()
		return nil, err
	}
	r.wireProgram, err = r.createProgram("wire", shaders.WireVertexShader)
	if err != nil {
		r.Close()
		return nil, err
	}

	gl.GenBuffers(1, &r.ubo)
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferData(gl.UNIFORM_BUFFER, UniformFloats*4, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, frameBinding, r.ubo)

	return r, nil
}

func (r *Renderer) createProgram(name, vertexSrc string) (uint32, error) {
	program, err := shader.CompileProgram(vertexSrc, shaders.FiberFragmentShader)
	if err != nil {
		return 0, fmt.Errorf("%s program: %w", name, err)
	}
	if err := shader.BindUniformBlock(program, shaders.FrameBlock, frameBinding); err != nil {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%s program: %w", name, err)
	}
	r.log.Debug("shader program created", zap.String("name", name), zap.Uint32("program", program))
	return program, nil
}

// Info returns the OpenGL vendor, renderer and version strings.
func (r *Renderer) Info() Info {
	return r.info
}

// UploadTubes replaces the tube mesh. The mesh is validated first so a
// dangling index never reaches the GPU.
func (r *Renderer) UploadTubes(m hopf.Mesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload tubes: %w", err)
	}

	r.tube.ensure()
	gl.BindVertexArray(r.tube.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.tube.vbo)
	if len(m.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*hopf.VertexStride, unsafe.Pointer(&m.Vertices[0]), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}

	// Position (location = 0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, hopf.VertexStride, nil)
	gl.EnableVertexAttribArray(0)
	// Normal (location = 1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, hopf.VertexStride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)
	// Source 4D point (location = 2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, hopf.VertexStride, unsafe.Pointer(uintptr(6*4)))
	gl.EnableVertexAttribArray(2)

	r.tube.uploadIndices(m.Indices)
	gl.BindVertexArray(0)

	r.log.Debug("tubes uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}

// UploadWires replaces the wire loops.
func (r *Renderer) UploadWires(m hopf.LineMesh) error {
	if err := m.Validate(); err != nil {
		return fmt.Errorf("upload wires: %w", err)
	}

	r.wire.ensure()
	gl.BindVertexArray(r.wire.vao)

	data := m.Floats()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.wire.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	}

	// Point (location = 0)
	gl.VertexAttribPointer(0, 4, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)

	r.wire.uploadIndices(m.Indices)
	gl.BindVertexArray(0)

	r.log.Debug("wires uploaded",
		zap.Int("points", len(m.Points)),
		zap.Int("segments", m.SegmentCount()),
	)
	return nil
}

func (g *gpuMesh) ensure() {
	if g.vao != 0 {
		return
	}
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)
}

// uploadIndices fills the element buffer; the VAO must be bound.
func (g *gpuMesh) uploadIndices(indices []uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.DYNAMIC_DRAW)
	} else {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	}
	g.count = int32(len(indices))
}

func (g *gpuMesh) destroy() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
	}
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
	}
	*g = gpuMesh{}
}

// Resize handles viewport resize.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Begin clears the current render target.
func (r *Renderer) Begin(background [4]float32) {
	gl.ClearColor(background[0], background[1], background[2], background[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw uploads the frame uniforms and draws the tube mesh, or the wire
// loops when u.Wire is set.
func (r *Renderer) Draw(u Uniforms) {
	block := u.Pack()
	gl.BindBuffer(gl.UNIFORM_BUFFER, r.ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(block)*4, unsafe.Pointer(&block[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	if u.Wire {
		if r.wire.count == 0 {
			return
		}
		gl.UseProgram(r.wireProgram)
		gl.BindVertexArray(r.wire.vao)
		gl.DrawElements(gl.LINES, r.wire.count, gl.UNSIGNED_INT, nil)
	} else {
		if r.tube.count == 0 {
			return
		}
		gl.UseProgram(r.tubeProgram)
		gl.BindVertexArray(r.tube.vao)
		gl.DrawElements(gl.TRIANGLES, r.tube.count, gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels reads the current viewport as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() []byte {
	pixels := make([]byte, r.width*r.height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(r.width), int32(r.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.tube.destroy()
	r.wire.destroy()
	if r.ubo != 0 {
		gl.DeleteBuffers(1, &r.ubo)
		r.ubo = 0
	}
	if r.tubeProgram != 0 {
		gl.DeleteProgram(r.tubeProgram)
		r.tubeProgram = 0
	}
	if r.wireProgram != 0 {
		gl.DeleteProgram(r.wireProgram)
		r.wireProgram = 0
	}
}
