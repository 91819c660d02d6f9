package render

import "sync/atomic"

// CoordinateType selects how texture coordinates are interpreted.
type CoordinateType int

const (
	// Pixels means texture coordinates are in texels.
	Pixels CoordinateType = iota
	// Normalized means texture coordinates are in [0, 1].
	Normalized
)

// Texture is an image a draw samples from.
type Texture interface {
	// CacheID identifies the texture contents. It changes whenever the
	// texture is recreated or updated in a way that needs a rebind.
	CacheID() uint64
	NativeHandle() uint32
	Size() Vector2u
	// FBOAttachment reports whether the texture backs a render target; such
	// textures are always rebound since their content changes behind the
	// cache.
	FBOAttachment() bool
}

// Shader is a compiled program a draw runs through.
type Shader interface {
	CacheID() uint64
	NativeHandle() uint32
}

var cacheIDs atomic.Uint64

// NewCacheID returns a process-unique, non-zero cache id. Texture and shader
// implementations take a fresh one whenever their content changes.
func NewCacheID() uint64 {
	return cacheIDs.Add(1)
}

// RenderStates are the per-draw parameters. The zero value is not a usable
// default; start from DefaultRenderStates.
type RenderStates struct {
	BlendMode      BlendMode
	StencilMode    StencilMode
	Transform      Transform
	CoordinateType CoordinateType
	Texture        Texture
	Shader         Shader
}

// DefaultRenderStates returns alpha blending, no stencil, the identity
// transform and no texture or shader.
func DefaultRenderStates() RenderStates {
	return RenderStates{
		BlendMode:      BlendAlpha,
		StencilMode:    DefaultStencilMode(),
		Transform:      Identity,
		CoordinateType: Pixels,
	}
}

// PrimitiveType is how vertices are assembled.
type PrimitiveType int

const (
	Points PrimitiveType = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

func (p PrimitiveType) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	default:
		return "Unknown"
	}
}

// Vertex is a point with color and texture coordinates.
type Vertex struct {
	Position  Vector2f
	Color     Color
	TexCoords Vector2f
}
