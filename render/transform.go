package render

import "math"

// Transform is a 3x3 affine transform, stored row-major.
type Transform struct {
	m [9]float32
}

// Identity is the transform that changes nothing.
var Identity = Transform{m: [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}}

// NewTransform builds a transform from its nine matrix elements, row by row.
func NewTransform(a00, a01, a02, a10, a11, a12, a20, a21, a22 float32) Transform {
	return Transform{m: [9]float32{a00, a01, a02, a10, a11, a12, a20, a21, a22}}
}

// Matrix returns the transform as a column-major 4x4 matrix, the layout GL
// uniforms expect.
func (t Transform) Matrix() [16]float32 {
	a := t.m
	return [16]float32{
		a[0], a[3], 0, a[6],
		a[1], a[4], 0, a[7],
		0, 0, 1, 0,
		a[2], a[5], 0, a[8],
	}
}

// TransformPoint applies the transform to p.
func (t Transform) TransformPoint(p Vector2f) Vector2f {
	a := t.m
	return Vector2f{
		X: a[0]*p.X + a[1]*p.Y + a[2],
		Y: a[3]*p.X + a[4]*p.Y + a[5],
	}
}

// Combine returns t * other: other is applied first.
func (t Transform) Combine(other Transform) Transform {
	a, b := t.m, other.m
	return NewTransform(
		a[0]*b[0]+a[1]*b[3]+a[2]*b[6], a[0]*b[1]+a[1]*b[4]+a[2]*b[7], a[0]*b[2]+a[1]*b[5]+a[2]*b[8],
		a[3]*b[0]+a[4]*b[3]+a[5]*b[6], a[3]*b[1]+a[4]*b[4]+a[5]*b[7], a[3]*b[2]+a[4]*b[5]+a[5]*b[8],
		a[6]*b[0]+a[7]*b[3]+a[8]*b[6], a[6]*b[1]+a[7]*b[4]+a[8]*b[7], a[6]*b[2]+a[7]*b[5]+a[8]*b[8],
	)
}

// Translate returns t followed by a translation.
func (t Transform) Translate(offset Vector2f) Transform {
	return t.Combine(NewTransform(1, 0, offset.X, 0, 1, offset.Y, 0, 0, 1))
}

// Rotate returns t followed by a rotation around the origin, in degrees.
func (t Transform) Rotate(degrees float32) Transform {
	rad := float64(degrees) * math.Pi / 180
	c, s := float32(math.Cos(rad)), float32(math.Sin(rad))
	return t.Combine(NewTransform(c, -s, 0, s, c, 0, 0, 0, 1))
}

// Scale returns t followed by a scale around the origin.
func (t Transform) Scale(factors Vector2f) Transform {
	return t.Combine(NewTransform(factors.X, 0, 0, 0, factors.Y, 0, 0, 0, 1))
}

// Inverse returns the inverse transform, or Identity if t is singular.
func (t Transform) Inverse() Transform {
	a, b, c := t.m[0], t.m[1], t.m[2]
	d, e, f := t.m[3], t.m[4], t.m[5]
	g, h, i := t.m[6], t.m[7], t.m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Identity
	}
	return NewTransform(
		(e*i-f*h)/det, -(b*i-c*h)/det, (b*f-c*e)/det,
		-(d*i-f*g)/det, (a*i-c*g)/det, -(a*f-c*d)/det,
		(d*h-e*g)/det, -(a*h-b*g)/det, (a*e-b*d)/det,
	)
}
