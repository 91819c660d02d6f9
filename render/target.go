// Package render draws vertex arrays through a RenderTarget. A target keeps a
// cache of the driver state it last set (view, blend and stencil mode,
// texture, shader) and skips the calls that would not change anything. The
// cache is only trusted while the same target stays active on its context;
// the Registry records which target that is.
package render

import "log/slog"

// vertexCacheSize is the largest draw whose vertices are transformed on the
// CPU, saving a model-view matrix upload per draw.
const vertexCacheSize = 4

// stateCache mirrors the driver state last set by one target on its context.
// It is only trusted while enable is true.
type stateCache struct {
	enable      bool // cache may be trusted
	glStatesSet bool // persistent states were reset at least once
	viewChanged bool

	scissorEnabled bool
	stencilEnabled bool

	lastBlendMode      BlendMode
	lastStencilMode    StencilMode
	lastTextureID      uint64
	lastCoordinateType CoordinateType

	texCoordsArrayEnabled bool
	useVertexCache        bool
	vertexCache           [vertexCacheSize]Vertex
}

// RenderTarget draws vertices onto a Surface through a Driver, skipping
// state changes its cache knows to be redundant.
//
// A RenderTarget is used from one thread at a time, the one its surface's
// context is current on.
type RenderTarget struct {
	id       uint64
	surface  Surface
	driver   Driver
	registry *Registry
	log      *slog.Logger

	defaultView View
	view        View
	cache       stateCache
}

// TargetOption configures a RenderTarget.
type TargetOption func(*RenderTarget)

// WithRegistry uses r instead of DefaultRegistry. Targets sharing a context
// must share a registry.
func WithRegistry(r *Registry) TargetOption {
	return func(t *RenderTarget) { t.registry = r }
}

// WithLogger replaces the target logger.
func WithLogger(l *slog.Logger) TargetOption {
	return func(t *RenderTarget) { t.log = l }
}

// NewRenderTarget creates a target drawing to surface. Its view covers the
// whole surface, and driver states are reset on first use.
func NewRenderTarget(surface Surface, driver Driver, opts ...TargetOption) *RenderTarget {
	t := &RenderTarget{
		surface:  surface,
		driver:   driver,
		registry: DefaultRegistry,
		log:      logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.id = t.registry.NextTargetID()

	size := surface.Size()
	t.defaultView = NewView(FloatRect{Width: float32(size.X), Height: float32(size.Y)})
	t.view = t.defaultView
	t.cache.viewChanged = true
	return t
}

// ID returns the target's unique id.
func (t *RenderTarget) ID() uint64 { return t.id }

// Size returns the surface size in pixels.
func (t *RenderTarget) Size() Vector2u { return t.surface.Size() }

// SetActive makes the target's context current, or releases it. Activating
// after another target used the same context invalidates the cache.
func (t *RenderTarget) SetActive(active bool) bool {
	if !active {
		ctx := t.surface.ContextID()
		if !t.surface.Activate(false) {
			t.log.Warn("failed to deactivate render target", "target", t.id)
			return false
		}
		if ctx != 0 {
			t.registry.Deactivate(ctx)
		}
		t.cache.enable = false
		return true
	}

	if !t.surface.Activate(true) {
		t.log.Warn("failed to activate render target", "target", t.id)
		return false
	}
	ctx := t.surface.ContextID()
	if ctx == 0 {
		// untracked context: nothing tells us who touched it last
		t.log.Debug("render target has no context id", "target", t.id)
		t.cache.enable = false
		return true
	}

	fresh, changed := t.registry.Activate(ctx, t.id)
	if fresh {
		t.cache.glStatesSet = false
		t.cache.enable = false
	} else if changed {
		t.cache.enable = false
	}
	return true
}

// IsActive reports whether this target is the last one to have used the
// context current on the calling thread.
func (t *RenderTarget) IsActive() bool {
	return t.registry.IsActive(t.surface.ContextID(), t.id)
}

func (t *RenderTarget) activate(op string) bool {
	if t.IsActive() || t.SetActive(true) {
		return true
	}
	t.log.Error("render target activation failed, skipping", "op", op, "target", t.id)
	return false
}

// Clear fills the target with color.
func (t *RenderTarget) Clear(color Color) {
	if !t.activate("clear") {
		return
	}
	t.prepareClear()
	t.driver.ClearColor(color)
	t.driver.Clear(ClearColorBuffer)
}

// ClearStencil fills the target with color and the stencil buffer with
// value.
func (t *RenderTarget) ClearStencil(color Color, value uint32) {
	if !t.activate("clear") {
		return
	}
	t.prepareClear()
	t.driver.ClearColor(color)
	t.driver.ClearStencil(value)
	t.driver.Clear(ClearColorBuffer | ClearStencilBuffer)
}

func (t *RenderTarget) prepareClear() {
	// a bound render texture would keep the clear from reaching the target
	t.applyTexture(nil, Pixels)

	// scissor testing affects clearing
	if !t.cache.enable || t.cache.viewChanged {
		t.applyCurrentView()
	}
}

// SetView changes the camera. It takes effect on the next draw or clear.
func (t *RenderTarget) SetView(v View) {
	t.view = v
	t.cache.viewChanged = true
}

// View returns the current camera.
func (t *RenderTarget) View() View { return t.view }

// DefaultView returns the camera covering the whole surface.
func (t *RenderTarget) DefaultView() View { return t.defaultView }

// Viewport returns the pixel rectangle v draws into, top-left origin.
func (t *RenderTarget) Viewport(v View) IntRect {
	return scaleRound(v.Viewport, t.surface.Size())
}

// Scissor returns the pixel rectangle v clips to, top-left origin.
func (t *RenderTarget) Scissor(v View) IntRect {
	vp, sc := v.Viewport, v.Scissor
	return scaleRound(FloatRect{
		Left:   vp.Left + sc.Left*vp.Width,
		Top:    vp.Top + sc.Top*vp.Height,
		Width:  sc.Width * vp.Width,
		Height: sc.Height * vp.Height,
	}, t.surface.Size())
}

// MapPixelToCoords converts a pixel position to world coordinates through v.
func (t *RenderTarget) MapPixelToCoords(p Vector2i, v View) Vector2f {
	vp := t.Viewport(v)
	normalized := Vector2f{
		X: -1 + 2*(float32(p.X)-float32(vp.Left))/float32(vp.Width),
		Y: 1 - 2*(float32(p.Y)-float32(vp.Top))/float32(vp.Height),
	}
	return v.InverseTransform().TransformPoint(normalized)
}

// MapCoordsToPixel converts world coordinates to a pixel position through v.
func (t *RenderTarget) MapCoordsToPixel(p Vector2f, v View) Vector2i {
	normalized := v.Transform().TransformPoint(p)
	vp := t.Viewport(v)
	return Vector2i{
		X: int32((normalized.X+1)/2*float32(vp.Width) + float32(vp.Left)),
		Y: int32((-normalized.Y+1)/2*float32(vp.Height) + float32(vp.Top)),
	}
}

// Draw renders vertices assembled as prim with the given states.
func (t *RenderTarget) Draw(vertices []Vertex, prim PrimitiveType, states RenderStates) {
	if len(vertices) == 0 {
		return
	}
	if !t.activate("draw") {
		return
	}

	useVertexCache := len(vertices) <= vertexCacheSize
	if useVertexCache {
		for i, v := range vertices {
			t.cache.vertexCache[i] = Vertex{
				Position:  states.Transform.TransformPoint(v.Position),
				Color:     v.Color,
				TexCoords: v.TexCoords,
			}
		}
	}

	t.setupDraw(useVertexCache, states)

	texCoords := states.Texture != nil || states.Shader != nil
	if !t.cache.enable || texCoords != t.cache.texCoordsArrayEnabled {
		t.driver.SetTexCoordsEnabled(texCoords)
	}

	if useVertexCache {
		t.driver.DrawPrimitives(prim, t.cache.vertexCache[:len(vertices)])
	} else {
		t.driver.DrawPrimitives(prim, vertices)
	}

	t.cleanupDraw(states)

	t.cache.useVertexCache = useVertexCache
	t.cache.texCoordsArrayEnabled = texCoords
}

func (t *RenderTarget) setupDraw(useVertexCache bool, states RenderStates) {
	// drivers differ on whether they check the surface format first
	if !t.cache.enable {
		t.driver.SetSRGB(t.surface.IsSRGB())
	}

	if !t.cache.glStatesSet {
		t.ResetGLStates()
	}

	if useVertexCache {
		// vertices are already transformed
		if !t.cache.enable || !t.cache.useVertexCache {
			t.driver.SetModelView(Identity)
		}
	} else {
		t.driver.SetModelView(states.Transform)
	}

	if !t.cache.enable || t.cache.viewChanged {
		t.applyCurrentView()
	}

	if !t.cache.enable || states.BlendMode != t.cache.lastBlendMode {
		t.applyBlendMode(states.BlendMode)
	}

	if !t.cache.enable || states.StencilMode != t.cache.lastStencilMode {
		t.applyStencilMode(states.StencilMode)
	}

	if states.StencilMode.Only {
		t.driver.SetColorMask(false)
	}

	// render textures change behind the cache, so they are always rebound
	if !t.cache.enable || (states.Texture != nil && states.Texture.FBOAttachment()) {
		t.applyTexture(states.Texture, states.CoordinateType)
	} else if textureID(states.Texture) != t.cache.lastTextureID || states.CoordinateType != t.cache.lastCoordinateType {
		t.applyTexture(states.Texture, states.CoordinateType)
	}

	if states.Shader != nil {
		t.driver.UseShader(states.Shader)
	}
}

func (t *RenderTarget) cleanupDraw(states RenderStates) {
	if states.Shader != nil {
		t.driver.UseShader(nil)
	}

	if states.Texture != nil && states.Texture.FBOAttachment() {
		t.applyTexture(nil, Pixels)
	}

	if states.StencilMode.Only {
		t.driver.SetColorMask(true)
	}

	t.cache.enable = true
}

// PushGLStates saves the driver state, then resets it to the target's
// defaults. Use it to mix the target with other code talking to the
// graphics API.
func (t *RenderTarget) PushGLStates() {
	if t.activate("push states") {
		t.driver.PushState()
	}
	t.ResetGLStates()
}

// PopGLStates restores the state saved by PushGLStates. The cache no longer
// describes the restored state, so the next draw sets everything again.
func (t *RenderTarget) PopGLStates() {
	if t.activate("pop states") {
		t.driver.PopState()
		t.cache.enable = false
	}
}

// ResetGLStates sets every driver state the target uses to its default.
// Call it after foreign code changed the state without PushGLStates.
func (t *RenderTarget) ResetGLStates() {
	if !t.activate("reset states") {
		return
	}

	t.driver.ResetPersistentState()
	t.cache.scissorEnabled = false
	t.cache.stencilEnabled = false
	t.cache.glStatesSet = true

	t.applyBlendMode(BlendAlpha)
	t.applyStencilMode(DefaultStencilMode())
	t.applyTexture(nil, Pixels)
	t.driver.UseShader(nil)

	t.cache.texCoordsArrayEnabled = true
	t.cache.useVertexCache = false

	t.SetView(t.view)

	t.cache.enable = true
}

func (t *RenderTarget) applyCurrentView() {
	height := int32(t.surface.Size().Y)

	vp := t.Viewport(t.view)
	vp.Top = height - (vp.Top + vp.Height)
	t.driver.SetViewport(vp)

	if !t.view.Scissored() {
		if !t.cache.enable || t.cache.scissorEnabled {
			t.driver.EnableScissor(false)
			t.cache.scissorEnabled = false
		}
	} else {
		sc := t.Scissor(t.view)
		sc.Top = height - (sc.Top + sc.Height)
		t.driver.SetScissor(sc)
		if !t.cache.enable || !t.cache.scissorEnabled {
			t.driver.EnableScissor(true)
			t.cache.scissorEnabled = true
		}
	}

	t.driver.SetProjection(t.view.Transform())
	t.cache.viewChanged = false
}

func (t *RenderTarget) applyBlendMode(mode BlendMode) {
	t.driver.SetBlendMode(mode)
	t.cache.lastBlendMode = mode
}

func (t *RenderTarget) applyStencilMode(mode StencilMode) {
	if mode.IsDefault() {
		if !t.cache.enable || t.cache.stencilEnabled {
			t.driver.EnableStencil(false)
			t.driver.SetColorMask(true)
			t.cache.stencilEnabled = false
		}
	} else {
		if !t.cache.enable || !t.cache.stencilEnabled {
			t.driver.EnableStencil(true)
			t.cache.stencilEnabled = true
		}
		t.driver.SetStencil(mode)
	}
	t.cache.lastStencilMode = mode
}

func (t *RenderTarget) applyTexture(tex Texture, coords CoordinateType) {
	t.driver.BindTexture(tex, coords)
	t.cache.lastTextureID = textureID(tex)
	t.cache.lastCoordinateType = coords
}

func textureID(tex Texture) uint64 {
	if tex == nil {
		return 0
	}
	return tex.CacheID()
}
