package window

// Vector2i is an integer position in window or screen pixels.
type Vector2i struct {
	X, Y int
}

// Add returns the sum of two vectors.
func (v Vector2i) Add(other Vector2i) Vector2i {
	return Vector2i{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2i) Sub(other Vector2i) Vector2i {
	return Vector2i{X: v.X - other.X, Y: v.Y - other.Y}
}

// IntRect is an integer rectangle with position and size.
type IntRect struct {
	X, Y int // Top-left position
	W, H int // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r IntRect) Contains(p Vector2i) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Clamp returns p moved to the nearest point inside r. An empty rectangle
// leaves p unchanged.
func (r IntRect) Clamp(p Vector2i) Vector2i {
	if r.W <= 0 || r.H <= 0 {
		return p
	}
	p.X = clampi(p.X, r.X, r.X+r.W-1)
	p.Y = clampi(p.Y, r.Y, r.Y+r.H-1)
	return p
}

// clampi clamps an int value to a range.
func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
