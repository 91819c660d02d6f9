package render

import "math"

// View is a 2D camera: which world rectangle is shown, and where on the
// target it lands. Viewport and Scissor are normalized to the target size.
type View struct {
	Center   Vector2f
	Size     Vector2f
	Rotation float32 // degrees
	Viewport FloatRect
	Scissor  FloatRect
}

// NewView creates a view showing rect over the whole target.
func NewView(rect FloatRect) View {
	return View{
		Center:   Vector2f{X: rect.Left + rect.Width/2, Y: rect.Top + rect.Height/2},
		Size:     Vector2f{X: rect.Width, Y: rect.Height},
		Viewport: FullRect,
		Scissor:  FullRect,
	}
}

// Transform returns the projection mapping world coordinates to clip space.
func (v View) Transform() Transform {
	rad := float64(v.Rotation) * math.Pi / 180
	cosine := float32(math.Cos(rad))
	sine := float32(math.Sin(rad))
	tx := -v.Center.X*cosine - v.Center.Y*sine + v.Center.X
	ty := v.Center.X*sine - v.Center.Y*cosine + v.Center.Y

	a := 2 / v.Size.X
	b := -2 / v.Size.Y
	c := -a * v.Center.X
	d := -b * v.Center.Y

	return NewTransform(
		a*cosine, a*sine, a*tx+c,
		-b*sine, b*cosine, b*ty+d,
		0, 0, 1,
	)
}

// InverseTransform maps clip space back to world coordinates.
func (v View) InverseTransform() Transform {
	return v.Transform().Inverse()
}

// Scissored reports whether the view clips drawing to less than the target.
func (v View) Scissored() bool {
	return v.Scissor != FullRect
}
