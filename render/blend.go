package render

// BlendFactor is a source or destination multiplier in the blend equation.
type BlendFactor int

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorDstColor
	FactorOneMinusDstColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstAlpha
	FactorOneMinusDstAlpha
)

// BlendEquation combines the weighted source and destination.
type BlendEquation int

const (
	EquationAdd BlendEquation = iota
	EquationSubtract
	EquationReverseSubtract
	EquationMin
	EquationMax
)

// BlendMode describes how drawn pixels mix with the pixels already on the
// target. Color and alpha channels blend independently.
type BlendMode struct {
	ColorSrcFactor BlendFactor
	ColorDstFactor BlendFactor
	ColorEquation  BlendEquation
	AlphaSrcFactor BlendFactor
	AlphaDstFactor BlendFactor
	AlphaEquation  BlendEquation
}

// Common blend modes.
var (
	BlendAlpha = BlendMode{
		FactorSrcAlpha, FactorOneMinusSrcAlpha, EquationAdd,
		FactorOne, FactorOneMinusSrcAlpha, EquationAdd,
	}
	BlendAdd = BlendMode{
		FactorSrcAlpha, FactorOne, EquationAdd,
		FactorOne, FactorOne, EquationAdd,
	}
	BlendMultiply = BlendMode{
		FactorDstColor, FactorZero, EquationAdd,
		FactorDstColor, FactorZero, EquationAdd,
	}
	BlendMin = BlendMode{
		FactorOne, FactorOne, EquationMin,
		FactorOne, FactorOne, EquationMin,
	}
	BlendMax = BlendMode{
		FactorOne, FactorOne, EquationMax,
		FactorOne, FactorOne, EquationMax,
	}
	BlendNone = BlendMode{
		FactorOne, FactorZero, EquationAdd,
		FactorOne, FactorZero, EquationAdd,
	}
)

// NewBlendMode creates a mode using the same factors and equation for color
// and alpha.
func NewBlendMode(src, dst BlendFactor, eq BlendEquation) BlendMode {
	return BlendMode{src, dst, eq, src, dst, eq}
}
