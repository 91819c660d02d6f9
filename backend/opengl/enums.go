package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/window/render"
)

var blendFactors = [...]uint32{
	render.FactorZero:             gl.ZERO,
	render.FactorOne:              gl.ONE,
	render.FactorSrcColor:         gl.SRC_COLOR,
	render.FactorOneMinusSrcColor: gl.ONE_MINUS_SRC_COLOR,
	render.FactorDstColor:         gl.DST_COLOR,
	render.FactorOneMinusDstColor: gl.ONE_MINUS_DST_COLOR,
	render.FactorSrcAlpha:         gl.SRC_ALPHA,
	render.FactorOneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
	render.FactorDstAlpha:         gl.DST_ALPHA,
	render.FactorOneMinusDstAlpha: gl.ONE_MINUS_DST_ALPHA,
}

var blendEquations = [...]uint32{
	render.EquationAdd:             gl.FUNC_ADD,
	render.EquationSubtract:        gl.FUNC_SUBTRACT,
	render.EquationReverseSubtract: gl.FUNC_REVERSE_SUBTRACT,
	render.EquationMin:             gl.MIN,
	render.EquationMax:             gl.MAX,
}

var stencilFunctions = [...]uint32{
	render.StencilAlways:       gl.ALWAYS,
	render.StencilNever:        gl.NEVER,
	render.StencilLess:         gl.LESS,
	render.StencilLessEqual:    gl.LEQUAL,
	render.StencilGreater:      gl.GREATER,
	render.StencilGreaterEqual: gl.GEQUAL,
	render.StencilEqual:        gl.EQUAL,
	render.StencilNotEqual:     gl.NOTEQUAL,
}

var stencilOperations = [...]uint32{
	render.StencilKeep:      gl.KEEP,
	render.StencilZero:      gl.ZERO,
	render.StencilReplace:   gl.REPLACE,
	render.StencilIncrement: gl.INCR,
	render.StencilDecrement: gl.DECR,
	render.StencilInvert:    gl.INVERT,
}

var primitiveModes = [...]uint32{
	render.Points:        gl.POINTS,
	render.Lines:         gl.LINES,
	render.LineStrip:     gl.LINE_STRIP,
	render.Triangles:     gl.TRIANGLES,
	render.TriangleStrip: gl.TRIANGLE_STRIP,
	render.TriangleFan:   gl.TRIANGLE_FAN,
}
