package render

// StencilComparison is the test run between the reference value and the
// stencil buffer content.
type StencilComparison int

const (
	StencilAlways StencilComparison = iota
	StencilNever
	StencilLess
	StencilLessEqual
	StencilGreater
	StencilGreaterEqual
	StencilEqual
	StencilNotEqual
)

// StencilUpdateOperation says what happens to the stencil buffer when the
// test passes.
type StencilUpdateOperation int

const (
	StencilKeep StencilUpdateOperation = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilDecrement
	StencilInvert
)

// StencilMode configures stencil testing and updating for a draw.
type StencilMode struct {
	Comparison      StencilComparison
	UpdateOperation StencilUpdateOperation
	Reference       uint32
	Mask            uint32
	// Only writes the stencil buffer and leaves color untouched.
	Only bool
}

// DefaultStencilMode returns the mode that disables stencil testing.
func DefaultStencilMode() StencilMode {
	return StencilMode{
		Comparison:      StencilAlways,
		UpdateOperation: StencilKeep,
		Mask:            0xFFFFFFFF,
	}
}

// IsDefault reports whether m leaves the stencil test disabled.
func (m StencilMode) IsDefault() bool {
	return m == DefaultStencilMode()
}
