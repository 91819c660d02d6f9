package render

// Color is an 8-bit RGBA color. Its memory layout matches the normalized
// uint8x4 vertex attribute the driver uploads.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	ColorBlack       = Color{0, 0, 0, 255}
	ColorWhite       = Color{255, 255, 255, 255}
	ColorRed         = Color{255, 0, 0, 255}
	ColorGreen       = Color{0, 255, 0, 255}
	ColorBlue        = Color{0, 0, 255, 255}
	ColorYellow      = Color{255, 255, 0, 255}
	ColorMagenta     = Color{255, 0, 255, 255}
	ColorCyan        = Color{0, 255, 255, 255}
	ColorTransparent = Color{0, 0, 0, 0}
)

// RGBA creates a color from individual components (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Floats returns the components scaled to 0.0-1.0, the form clear colors
// are passed in.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
