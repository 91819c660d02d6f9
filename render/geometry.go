package render

import "math"

// Vector2f is a point in world or normalized coordinates.
type Vector2f struct {
	X, Y float32
}

// Vector2u is a size in pixels.
type Vector2u struct {
	X, Y uint32
}

// Vector2i is a position in pixels.
type Vector2i struct {
	X, Y int32
}

// FloatRect is a rectangle with position and size in float coordinates.
type FloatRect struct {
	Left, Top     float32
	Width, Height float32
}

// FullRect covers the whole target in normalized coordinates.
var FullRect = FloatRect{Width: 1, Height: 1}

// IntRect is a rectangle in pixels.
type IntRect struct {
	Left, Top     int32
	Width, Height int32
}

// Contains returns true if the point is inside the rectangle.
func (r FloatRect) Contains(p Vector2f) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}

// scaleRound maps a normalized rectangle onto a pixel size, rounding each
// edge to the nearest pixel.
func scaleRound(r FloatRect, size Vector2u) IntRect {
	w, h := float64(size.X), float64(size.Y)
	return IntRect{
		Left:   int32(math.Round(w * float64(r.Left))),
		Top:    int32(math.Round(h * float64(r.Top))),
		Width:  int32(math.Round(w * float64(r.Width))),
		Height: int32(math.Round(h * float64(r.Height))),
	}
}
