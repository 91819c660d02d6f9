package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/window/render"
)

// countingDriver records how often each driver call was made.
type countingDriver struct {
	calls map[string]int

	viewport    render.IntRect
	scissor     render.IntRect
	blend       render.BlendMode
	stencil     render.StencilMode
	colorMask   []bool
	texture     render.Texture
	drawn       [][]render.Vertex
	modelView   render.Transform
	scissorOn   bool
	stencilOn   bool
	clearMask   render.ClearMask
	clearValue  uint32
	clearColor  render.Color
	texCoordsOn bool
}

func newCountingDriver() *countingDriver {
	return &countingDriver{calls: make(map[string]int)}
}

func (d *countingDriver) reset() {
	d.calls = make(map[string]int)
	d.colorMask = nil
	d.drawn = nil
}

func (d *countingDriver) total() int {
	n := 0
	for _, c := range d.calls {
		n += c
	}
	return n
}

func (d *countingDriver) ClearColor(c render.Color) { d.calls["ClearColor"]++; d.clearColor = c }
func (d *countingDriver) ClearStencil(v uint32)     { d.calls["ClearStencil"]++; d.clearValue = v }
func (d *countingDriver) Clear(m render.ClearMask)  { d.calls["Clear"]++; d.clearMask = m }
func (d *countingDriver) SetSRGB(bool)              { d.calls["SetSRGB"]++ }
func (d *countingDriver) SetViewport(r render.IntRect) {
	d.calls["SetViewport"]++
	d.viewport = r
}
func (d *countingDriver) EnableScissor(on bool) { d.calls["EnableScissor"]++; d.scissorOn = on }
func (d *countingDriver) SetScissor(r render.IntRect) {
	d.calls["SetScissor"]++
	d.scissor = r
}
func (d *countingDriver) SetProjection(render.Transform) { d.calls["SetProjection"]++ }
func (d *countingDriver) SetModelView(t render.Transform) {
	d.calls["SetModelView"]++
	d.modelView = t
}
func (d *countingDriver) SetBlendMode(m render.BlendMode) { d.calls["SetBlendMode"]++; d.blend = m }
func (d *countingDriver) EnableStencil(on bool)           { d.calls["EnableStencil"]++; d.stencilOn = on }
func (d *countingDriver) SetStencil(m render.StencilMode) { d.calls["SetStencil"]++; d.stencil = m }
func (d *countingDriver) SetColorMask(on bool) {
	d.calls["SetColorMask"]++
	d.colorMask = append(d.colorMask, on)
}
func (d *countingDriver) BindTexture(tex render.Texture, _ render.CoordinateType) {
	d.calls["BindTexture"]++
	d.texture = tex
}
func (d *countingDriver) UseShader(render.Shader)     { d.calls["UseShader"]++ }
func (d *countingDriver) SetTexCoordsEnabled(on bool) { d.calls["SetTexCoordsEnabled"]++; d.texCoordsOn = on }
func (d *countingDriver) DrawPrimitives(_ render.PrimitiveType, v []render.Vertex) {
	d.calls["DrawPrimitives"]++
	d.drawn = append(d.drawn, append([]render.Vertex(nil), v...))
}
func (d *countingDriver) ResetPersistentState() { d.calls["ResetPersistentState"]++ }
func (d *countingDriver) PushState()            { d.calls["PushState"]++ }
func (d *countingDriver) PopState()             { d.calls["PopState"]++ }

// fakeContext is a graphics context shared by one or more surfaces.
type fakeContext struct {
	id      uint64
	current uint64
}

type fakeSurface struct {
	ctx  *fakeContext
	size render.Vector2u
	fail bool
}

func (s *fakeSurface) Size() render.Vector2u { return s.size }
func (s *fakeSurface) IsSRGB() bool          { return false }
func (s *fakeSurface) ContextID() uint64     { return s.ctx.current }
func (s *fakeSurface) Activate(active bool) bool {
	if s.fail {
		return false
	}
	if active {
		s.ctx.current = s.ctx.id
	} else {
		s.ctx.current = 0
	}
	return true
}

type fakeTexture struct {
	id  uint64
	fbo bool
}

func (t *fakeTexture) CacheID() uint64       { return t.id }
func (t *fakeTexture) NativeHandle() uint32  { return uint32(t.id) }
func (t *fakeTexture) Size() render.Vector2u { return render.Vector2u{X: 16, Y: 16} }
func (t *fakeTexture) FBOAttachment() bool   { return t.fbo }

func quad() []render.Vertex {
	return []render.Vertex{
		{Position: render.Vector2f{X: 0, Y: 0}, Color: render.ColorWhite},
		{Position: render.Vector2f{X: 10, Y: 0}, Color: render.ColorWhite},
		{Position: render.Vector2f{X: 10, Y: 10}, Color: render.ColorWhite},
		{Position: render.Vector2f{X: 0, Y: 10}, Color: render.ColorWhite},
	}
}

func newTarget(t *testing.T, ctx *fakeContext, reg *render.Registry) (*render.RenderTarget, *countingDriver, *fakeSurface) {
	t.Helper()
	d := newCountingDriver()
	s := &fakeSurface{ctx: ctx, size: render.Vector2u{X: 800, Y: 600}}
	return render.NewRenderTarget(s, d, render.WithRegistry(reg)), d, s
}

func TestTargetIDsAreUnique(t *testing.T) {
	reg := render.NewRegistry()
	ctx := &fakeContext{id: 1}
	a, _, _ := newTarget(t, ctx, reg)
	b, _, _ := newTarget(t, ctx, reg)

	assert.Equal(t, uint64(1), a.ID())
	assert.Equal(t, uint64(2), b.ID())
}

func TestFirstDrawResetsStates(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())

	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())

	assert.Equal(t, 1, d.calls["ResetPersistentState"])
	assert.Equal(t, 1, d.calls["SetSRGB"])
	assert.Equal(t, 1, d.calls["DrawPrimitives"])
	assert.Equal(t, render.BlendAlpha, d.blend)
}

func TestIdenticalDrawsSkipRedundantState(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	target.ResetGLStates()
	d.reset()

	states := render.DefaultRenderStates()
	states.BlendMode = render.BlendAdd
	states.Texture = &fakeTexture{id: 7}

	target.Draw(quad(), render.TriangleFan, states)
	target.Draw(quad(), render.TriangleFan, states)

	assert.Equal(t, 1, d.calls["SetBlendMode"])
	assert.Equal(t, 1, d.calls["BindTexture"])
	assert.Equal(t, 1, d.calls["SetProjection"])
	assert.Equal(t, 1, d.calls["SetModelView"])
	assert.Zero(t, d.calls["SetTexCoordsEnabled"], "reset leaves tex coords enabled")
	assert.Equal(t, 2, d.calls["DrawPrimitives"])
	assert.Zero(t, d.calls["SetSRGB"])
	assert.Zero(t, d.calls["ResetPersistentState"])
}

func TestSmallDrawsArePreTransformed(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())

	states := render.DefaultRenderStates()
	states.Transform = render.Identity.Translate(render.Vector2f{X: 5, Y: 7})
	target.Draw(quad(), render.TriangleFan, states)

	require.Len(t, d.drawn, 1)
	assert.Equal(t, render.Vector2f{X: 5, Y: 7}, d.drawn[0][0].Position)
	assert.Equal(t, render.Identity, d.modelView)
}

func TestLargeDrawsUseModelView(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())

	states := render.DefaultRenderStates()
	states.Transform = render.Identity.Translate(render.Vector2f{X: 5, Y: 7})
	verts := append(quad(), quad()...)
	target.Draw(verts, render.Triangles, states)

	require.Len(t, d.drawn, 1)
	assert.Equal(t, render.Vector2f{}, d.drawn[0][0].Position)
	assert.Equal(t, states.Transform, d.modelView)
}

func TestOtherTargetOnSharedContextInvalidatesCache(t *testing.T) {
	reg := render.NewRegistry()
	ctx := &fakeContext{id: 1}
	a, da, _ := newTarget(t, ctx, reg)
	b, _, _ := newTarget(t, ctx, reg)

	states := render.DefaultRenderStates()
	a.Draw(quad(), render.TriangleFan, states)
	b.Draw(quad(), render.TriangleFan, states)
	assert.Equal(t, b.ID(), reg.Owner(ctx.id))
	assert.False(t, a.IsActive())

	da.reset()
	a.Draw(quad(), render.TriangleFan, states)

	assert.Equal(t, a.ID(), reg.Owner(ctx.id))
	assert.Equal(t, 1, da.calls["SetSRGB"])
	assert.Equal(t, 1, da.calls["SetBlendMode"])
	assert.Equal(t, 1, da.calls["SetProjection"])
	assert.Equal(t, 1, da.calls["BindTexture"])
	assert.Zero(t, da.calls["ResetPersistentState"], "owner change keeps persistent states")

	da.reset()
	a.Draw(quad(), render.TriangleFan, states)
	assert.Zero(t, da.calls["SetBlendMode"])
	assert.Zero(t, da.calls["SetProjection"])
}

func TestDeactivationForgetsContext(t *testing.T) {
	reg := render.NewRegistry()
	ctx := &fakeContext{id: 1}
	target, d, _ := newTarget(t, ctx, reg)

	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())
	require.True(t, target.SetActive(false))
	assert.Zero(t, reg.Owner(ctx.id))

	d.reset()
	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())
	assert.Equal(t, 1, d.calls["ResetPersistentState"])
}

func TestActivationFailureSkipsOperations(t *testing.T) {
	target, d, s := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	s.fail = true

	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())
	target.Clear(render.ColorBlack)
	target.ClearStencil(render.ColorBlack, 1)
	target.ResetGLStates()
	target.PopGLStates()

	assert.Zero(t, d.total())
	assert.False(t, target.SetActive(true))
}

func TestUntrackedContextNeverTrustsCache(t *testing.T) {
	reg := render.NewRegistry()
	target, d, _ := newTarget(t, &fakeContext{id: 0}, reg)

	states := render.DefaultRenderStates()
	target.Draw(quad(), render.TriangleFan, states)
	target.Draw(quad(), render.TriangleFan, states)

	assert.Equal(t, 2, d.calls["DrawPrimitives"])
	assert.Equal(t, 2, d.calls["SetBlendMode"], "every draw reapplies state")
	assert.Equal(t, 2, d.calls["SetSRGB"])
	assert.Zero(t, reg.Owner(0))
}

func TestEmptyDrawDoesNothing(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	target.Draw(nil, render.Points, render.DefaultRenderStates())
	assert.Zero(t, d.total())
}

func TestClear(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())

	target.Clear(render.ColorRed)
	assert.Equal(t, render.ColorRed, d.clearColor)
	assert.Equal(t, render.ClearColorBuffer, d.clearMask)
	assert.Equal(t, 1, d.calls["BindTexture"])
	assert.Nil(t, d.texture)
	assert.Equal(t, 1, d.calls["SetViewport"])

	d.reset()
	target.ClearStencil(render.ColorBlue, 3)
	assert.Equal(t, uint32(3), d.clearValue)
	assert.Equal(t, render.ClearColorBuffer|render.ClearStencilBuffer, d.clearMask)
}

func TestViewportAndScissorAreFlipped(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())

	view := target.DefaultView()
	view.Viewport = render.FloatRect{Left: 0.5, Top: 0, Width: 0.5, Height: 0.5}
	view.Scissor = render.FloatRect{Left: 0, Top: 0, Width: 0.5, Height: 0.5}
	target.SetView(view)

	assert.Equal(t, render.IntRect{Left: 400, Top: 0, Width: 400, Height: 300}, target.Viewport(view))
	assert.Equal(t, render.IntRect{Left: 400, Top: 0, Width: 200, Height: 150}, target.Scissor(view))

	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())

	assert.Equal(t, render.IntRect{Left: 400, Top: 300, Width: 400, Height: 300}, d.viewport)
	assert.Equal(t, render.IntRect{Left: 400, Top: 450, Width: 200, Height: 150}, d.scissor)
	assert.True(t, d.scissorOn)

	target.SetView(target.DefaultView())
	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())
	assert.False(t, d.scissorOn)
}

func TestStencilOnlyMasksColor(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	target.ResetGLStates()
	d.reset()

	states := render.DefaultRenderStates()
	states.StencilMode = render.StencilMode{
		Comparison:      render.StencilAlways,
		UpdateOperation: render.StencilReplace,
		Reference:       1,
		Mask:            0xFF,
		Only:            true,
	}
	target.Draw(quad(), render.TriangleFan, states)

	assert.True(t, d.stencilOn)
	assert.Equal(t, states.StencilMode, d.stencil)
	assert.Equal(t, []bool{false, true}, d.colorMask)

	d.reset()
	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())
	assert.False(t, d.stencilOn)
	assert.Equal(t, 1, d.calls["EnableStencil"])
}

func TestRenderTextureIsAlwaysRebound(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	target.ResetGLStates()
	d.reset()

	states := render.DefaultRenderStates()
	states.Texture = &fakeTexture{id: 9, fbo: true}
	target.Draw(quad(), render.TriangleFan, states)
	target.Draw(quad(), render.TriangleFan, states)

	// bind and unbind on each draw
	assert.Equal(t, 4, d.calls["BindTexture"])
	assert.Nil(t, d.texture)
}

func TestPopGLStatesInvalidatesCache(t *testing.T) {
	target, d, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())

	target.PushGLStates()
	assert.Equal(t, 1, d.calls["PushState"])
	target.PopGLStates()
	assert.Equal(t, 1, d.calls["PopState"])

	d.reset()
	target.Draw(quad(), render.TriangleFan, render.DefaultRenderStates())
	assert.Equal(t, 1, d.calls["SetBlendMode"])
	assert.Equal(t, 1, d.calls["SetProjection"])
}

func TestMapPixelToCoords(t *testing.T) {
	target, _, _ := newTarget(t, &fakeContext{id: 1}, render.NewRegistry())
	view := target.DefaultView()

	p := target.MapPixelToCoords(render.Vector2i{X: 100, Y: 50}, view)
	assert.InDelta(t, 100, p.X, 1e-3)
	assert.InDelta(t, 50, p.Y, 1e-3)

	assert.Equal(t, render.Vector2i{X: 100, Y: 50}, target.MapCoordsToPixel(render.Vector2f{X: 100.5, Y: 50.5}, view))
}

func TestRegistry(t *testing.T) {
	reg := render.NewRegistry()

	fresh, changed := reg.Activate(1, 10)
	assert.True(t, fresh)
	assert.False(t, changed)

	fresh, changed = reg.Activate(1, 10)
	assert.False(t, fresh)
	assert.False(t, changed)

	fresh, changed = reg.Activate(1, 11)
	assert.False(t, fresh)
	assert.True(t, changed)
	assert.True(t, reg.IsActive(1, 11))
	assert.False(t, reg.IsActive(1, 10))

	reg.Deactivate(1)
	assert.False(t, reg.IsActive(1, 11))
}
