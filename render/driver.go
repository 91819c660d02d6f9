package render

// ClearMask selects which buffers Driver.Clear resets.
type ClearMask uint8

const (
	ClearColorBuffer ClearMask = 1 << iota
	ClearStencilBuffer
)

// Driver is the graphics API as seen by RenderTarget. Every call a target
// makes to the GPU goes through it, so the target's state cache is the only
// thing deciding what is redundant.
//
// A Driver is used from the thread that owns the active context.
type Driver interface {
	ClearColor(Color)
	ClearStencil(value uint32)
	Clear(ClearMask)

	// SetSRGB enables or disables sRGB encoding on write.
	SetSRGB(enabled bool)

	// SetViewport and SetScissor take rectangles in framebuffer pixels with
	// the origin at the bottom left.
	SetViewport(IntRect)
	EnableScissor(enabled bool)
	SetScissor(IntRect)

	SetProjection(Transform)
	SetModelView(Transform)

	SetBlendMode(BlendMode)
	EnableStencil(enabled bool)
	SetStencil(StencilMode)
	SetColorMask(enabled bool)

	// BindTexture binds tex, or unbinds when tex is nil.
	BindTexture(tex Texture, coords CoordinateType)
	// UseShader binds shader, or unbinds when shader is nil.
	UseShader(shader Shader)
	SetTexCoordsEnabled(enabled bool)

	DrawPrimitives(PrimitiveType, []Vertex)

	// ResetPersistentState puts every state the target never touches
	// afterwards (culling, depth test, ...) into its 2D default and disables
	// scissor and stencil testing.
	ResetPersistentState()
	PushState()
	PopState()
}

// Surface is what a RenderTarget draws into: a window or an offscreen
// buffer, owning (or sharing) a graphics context.
type Surface interface {
	Size() Vector2u
	IsSRGB() bool
	// Activate makes the surface's context current on the calling thread, or
	// releases it. It returns false on failure.
	Activate(active bool) bool
	// ContextID returns the id of the context active on the calling thread,
	// 0 when none is.
	ContextID() uint64
}
