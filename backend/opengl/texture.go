package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/window/render"
)

// Texture is an RGBA image usable as render.RenderStates.Texture.
type Texture struct {
	handle  uint32
	size    render.Vector2u
	cacheID uint64
	fbo     bool
}

// NewTexture uploads width*height RGBA pixels, rows top first. pixels may be
// nil to leave the content undefined.
func NewTexture(width, height int, pixels []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}
	if pixels != nil && len(pixels) != width*height*4 {
		return nil, fmt.Errorf("texture %dx%d needs %d bytes, got %d", width, height, width*height*4, len(pixels))
	}

	t := &Texture{size: render.Vector2u{X: uint32(width), Y: uint32(height)}}
	gl.GenTextures(1, &t.handle)
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	var ptr unsafe.Pointer
	if pixels != nil {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	t.cacheID = render.NewCacheID()
	return t, nil
}

// Update replaces the whole image. Targets drawing with the texture rebind
// it on their next draw.
func (t *Texture) Update(pixels []byte) error {
	if len(pixels) != int(t.size.X*t.size.Y*4) {
		return fmt.Errorf("texture update needs %d bytes, got %d", t.size.X*t.size.Y*4, len(pixels))
	}
	gl.BindTexture(gl.TEXTURE_2D, t.handle)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.size.X), int32(t.size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	t.cacheID = render.NewCacheID()
	return nil
}

// MarkFBOAttachment records that the texture backs a framebuffer.
func (t *Texture) MarkFBOAttachment() { t.fbo = true }

func (t *Texture) CacheID() uint64       { return t.cacheID }
func (t *Texture) NativeHandle() uint32  { return t.handle }
func (t *Texture) Size() render.Vector2u { return t.size }
func (t *Texture) FBOAttachment() bool   { return t.fbo }

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.handle != 0 {
		gl.DeleteTextures(1, &t.handle)
		t.handle = 0
	}
}
