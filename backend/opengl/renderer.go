// Package opengl provides an OpenGL 4.1 core implementation of render.Driver
// and a GLFW window backend: a render.Surface plus keyboard, pointer and
// event queries for the window package.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/window"
	"github.com/go-theft-auto/window/render"
)

var logger = window.Logger("opengl")

// Default shader source. Vertex attributes are bound by location so custom
// shaders can reuse the same layout and uniforms.
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;
layout (location = 2) in vec2 aTexCoord;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;
uniform mat4 modelView;
uniform mat4 textureMatrix;

void main() {
    gl_Position = projection * modelView * vec4(aPos, 0.0, 1.0);
    TexCoord = (textureMatrix * vec4(aTexCoord, 0.0, 1.0)).xy;
    Color = aColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D texture0;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = texture(texture0, TexCoord) * Color;
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// uniforms holds the locations of the matrices a program reads. A location
// of -1 means the program does not use it.
type uniforms struct {
	projection, modelView, textureMatrix int32
	useTexture, sampler                  int32
}

func lookupUniforms(program uint32) uniforms {
	return uniforms{
		projection:    gl.GetUniformLocation(program, gl.Str("projection\x00")),
		modelView:     gl.GetUniformLocation(program, gl.Str("modelView\x00")),
		textureMatrix: gl.GetUniformLocation(program, gl.Str("textureMatrix\x00")),
		useTexture:    gl.GetUniformLocation(program, gl.Str("useTexture\x00")),
		sampler:       gl.GetUniformLocation(program, gl.Str("texture0\x00")),
	}
}

// Driver implements render.Driver on the current OpenGL context. It needs a
// current context from NewDriver on, and must be used from that thread.
type Driver struct {
	program  uint32
	vao, vbo uint32

	// active is the program draws run through: the default one or the
	// shader set by UseShader.
	active   uint32
	locs     uniforms
	defaults uniforms
	custom   map[uint32]uniforms
	useTex   bool
	texMat   render.Transform
	proj     render.Transform
	model    render.Transform
	capacity int

	saved []savedState
}

// NewDriver compiles the default shader and creates the vertex buffers.
func NewDriver() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init OpenGL: %w", err)
	}

	d := &Driver{
		custom: make(map[uint32]uniforms),
		texMat: render.Identity,
		proj:   render.Identity,
		model:  render.Identity,
	}

	var err error
	d.program, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("default shader: %w", err)
	}
	d.defaults = lookupUniforms(d.program)
	d.active, d.locs = d.program, d.defaults

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)

	// Vertex layout: Position (2 floats) + Color (4 bytes) + TexCoords (2 floats)
	stride := int32(unsafe.Sizeof(render.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, unsafe.Offsetof(render.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(render.Vertex{}.Color))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(render.Vertex{}.TexCoords))
	gl.EnableVertexAttribArray(2)

	logger.Info("OpenGL driver ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	return d, nil
}

// Delete releases the driver's OpenGL objects.
func (d *Driver) Delete() {
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}

func (d *Driver) ClearColor(c render.Color) {
	gl.ClearColor(c.Floats())
}

func (d *Driver) ClearStencil(value uint32) {
	gl.ClearStencil(int32(value))
}

func (d *Driver) Clear(mask render.ClearMask) {
	var bits uint32
	if mask&render.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&render.ClearStencilBuffer != 0 {
		bits |= gl.STENCIL_BUFFER_BIT
	}
	gl.Clear(bits)
}

func enable(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (d *Driver) SetSRGB(enabled bool) { enable(gl.FRAMEBUFFER_SRGB, enabled) }

func (d *Driver) SetViewport(r render.IntRect) {
	gl.Viewport(r.Left, r.Top, r.Width, r.Height)
}

func (d *Driver) EnableScissor(enabled bool) { enable(gl.SCISSOR_TEST, enabled) }

func (d *Driver) SetScissor(r render.IntRect) {
	gl.Scissor(r.Left, r.Top, r.Width, r.Height)
}

func (d *Driver) SetProjection(t render.Transform) { d.proj = t }

func (d *Driver) SetModelView(t render.Transform) { d.model = t }

func (d *Driver) SetBlendMode(m render.BlendMode) {
	gl.BlendFuncSeparate(
		blendFactors[m.ColorSrcFactor], blendFactors[m.ColorDstFactor],
		blendFactors[m.AlphaSrcFactor], blendFactors[m.AlphaDstFactor],
	)
	gl.BlendEquationSeparate(blendEquations[m.ColorEquation], blendEquations[m.AlphaEquation])
}

func (d *Driver) EnableStencil(enabled bool) { enable(gl.STENCIL_TEST, enabled) }

func (d *Driver) SetStencil(m render.StencilMode) {
	op := stencilOperations[m.UpdateOperation]
	gl.StencilOp(gl.KEEP, op, op)
	gl.StencilFunc(stencilFunctions[m.Comparison], int32(m.Reference), m.Mask)
}

func (d *Driver) SetColorMask(enabled bool) {
	gl.ColorMask(enabled, enabled, enabled, enabled)
}

// BindTexture binds tex to unit 0. Pixel coordinates are converted by the
// texture matrix; render textures are also flipped vertically since their
// rows are stored bottom-up.
func (d *Driver) BindTexture(tex render.Texture, coords render.CoordinateType) {
	if tex == nil {
		gl.BindTexture(gl.TEXTURE_2D, 0)
		d.texMat = render.Identity
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.NativeHandle())

	sx, sy, ty := float32(1), float32(1), float32(0)
	if coords == render.Pixels {
		size := tex.Size()
		if size.X > 0 && size.Y > 0 {
			sx, sy = 1/float32(size.X), 1/float32(size.Y)
		}
	}
	if tex.FBOAttachment() {
		sy, ty = -sy, 1
	}
	d.texMat = render.NewTransform(sx, 0, 0, 0, sy, ty, 0, 0, 1)
}

// UseShader switches draws to shader, or back to the default program.
func (d *Driver) UseShader(shader render.Shader) {
	if shader == nil {
		d.active, d.locs = d.program, d.defaults
		return
	}
	handle := shader.NativeHandle()
	locs, ok := d.custom[handle]
	if !ok {
		locs = lookupUniforms(handle)
		d.custom[handle] = locs
	}
	d.active = handle
	d.locs = locs
}

func (d *Driver) SetTexCoordsEnabled(enabled bool) { d.useTex = enabled }

func setMatrix(loc int32, t render.Transform) {
	if loc < 0 {
		return
	}
	m := t.Matrix()
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

func (d *Driver) DrawPrimitives(prim render.PrimitiveType, vertices []render.Vertex) {
	if len(vertices) == 0 {
		return
	}
	gl.UseProgram(d.active)
	setMatrix(d.locs.projection, d.proj)
	setMatrix(d.locs.modelView, d.model)
	setMatrix(d.locs.textureMatrix, d.texMat)
	if d.locs.useTexture >= 0 {
		var v int32
		if d.useTex {
			v = 1
		}
		gl.Uniform1i(d.locs.useTexture, v)
	}
	if d.locs.sampler >= 0 {
		gl.Uniform1i(d.locs.sampler, 0)
	}

	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	size := len(vertices) * int(unsafe.Sizeof(render.Vertex{}))
	if size > d.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vertices), gl.STREAM_DRAW)
		d.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	}
	gl.DrawArrays(primitiveModes[prim], 0, int32(len(vertices)))
}

// ResetPersistentState sets up the 2D pipeline: no culling or depth test,
// blending on, scissor and stencil off, every channel writable.
func (d *Driver) ResetPersistentState() {
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.STENCIL_TEST)
	gl.ColorMask(true, true, true, true)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(d.vao)
}

// savedState is the GL state PushState records.
type savedState struct {
	program, vao, arrayBuffer, texture int32
	blendSrcRGB, blendDstRGB           int32
	blendSrcAlpha, blendDstAlpha       int32
	blendEqRGB, blendEqAlpha           int32
	scissorBox, viewport               [4]int32
	colorMask                          [4]bool
	blend, depth, cull                 bool
	scissor, stencil, srgb             bool
}

// PushState saves the GL state so code outside the render target can be
// mixed in, restored by PopState.
func (d *Driver) PushState() {
	var s savedState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	gl.GetIntegerv(gl.ARRAY_BUFFER_BINDING, &s.arrayBuffer)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	gl.GetIntegerv(gl.BLEND_SRC_RGB, &s.blendSrcRGB)
	gl.GetIntegerv(gl.BLEND_DST_RGB, &s.blendDstRGB)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrcAlpha)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDstAlpha)
	gl.GetIntegerv(gl.BLEND_EQUATION_RGB, &s.blendEqRGB)
	gl.GetIntegerv(gl.BLEND_EQUATION_ALPHA, &s.blendEqAlpha)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	gl.GetIntegerv(gl.VIEWPORT, &s.viewport[0])
	gl.GetBooleanv(gl.COLOR_WRITEMASK, &s.colorMask[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissor = gl.IsEnabled(gl.SCISSOR_TEST)
	s.stencil = gl.IsEnabled(gl.STENCIL_TEST)
	s.srgb = gl.IsEnabled(gl.FRAMEBUFFER_SRGB)
	d.saved = append(d.saved, s)
}

// PopState restores the state of the matching PushState.
func (d *Driver) PopState() {
	if len(d.saved) == 0 {
		logger.Warn("PopState without PushState")
		return
	}
	s := d.saved[len(d.saved)-1]
	d.saved = d.saved[:len(d.saved)-1]

	gl.UseProgram(uint32(s.program))
	gl.BindVertexArray(uint32(s.vao))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(s.arrayBuffer))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	gl.BlendFuncSeparate(uint32(s.blendSrcRGB), uint32(s.blendDstRGB), uint32(s.blendSrcAlpha), uint32(s.blendDstAlpha))
	gl.BlendEquationSeparate(uint32(s.blendEqRGB), uint32(s.blendEqAlpha))
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
	gl.Viewport(s.viewport[0], s.viewport[1], s.viewport[2], s.viewport[3])
	gl.ColorMask(s.colorMask[0], s.colorMask[1], s.colorMask[2], s.colorMask[3])
	enable(gl.BLEND, s.blend)
	enable(gl.DEPTH_TEST, s.depth)
	enable(gl.CULL_FACE, s.cull)
	enable(gl.SCISSOR_TEST, s.scissor)
	enable(gl.STENCIL_TEST, s.stencil)
	enable(gl.FRAMEBUFFER_SRGB, s.srgb)

	// the driver's own bindings are reapplied on the next draw
	d.active, d.locs = d.program, d.defaults
}

var _ render.Driver = (*Driver)(nil)
