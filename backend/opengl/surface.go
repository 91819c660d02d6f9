package opengl

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/window/render"
)

// contexts gives every GLFW window's context a stable id for the render
// registry.
var contexts struct {
	sync.Mutex
	ids  map[*glfw.Window]uint64
	next uint64
}

func contextID(w *glfw.Window, create bool) uint64 {
	if w == nil {
		return 0
	}
	contexts.Lock()
	defer contexts.Unlock()
	if id, ok := contexts.ids[w]; ok || !create {
		return id
	}
	if contexts.ids == nil {
		contexts.ids = make(map[*glfw.Window]uint64)
	}
	contexts.next++
	contexts.ids[w] = contexts.next
	return contexts.next
}

func forgetContext(w *glfw.Window) {
	contexts.Lock()
	delete(contexts.ids, w)
	contexts.Unlock()
}

// OpenWindow creates a window with an OpenGL 4.1 core context and makes the
// context current. glfw.Init must have been called, from the main thread.
func OpenWindow(width, height int, title string, srgb bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.StencilBits, 8)
	if srgb {
		glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	}

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync
	return w, nil
}

// Surface is a GLFW window as a render.Surface.
type Surface struct {
	w    *glfw.Window
	srgb bool
}

// NewSurface wraps w. srgb tells whether its framebuffer was created
// sRGB-capable.
func NewSurface(w *glfw.Window, srgb bool) *Surface {
	contextID(w, true)
	return &Surface{w: w, srgb: srgb}
}

// Size returns the framebuffer size in pixels.
func (s *Surface) Size() render.Vector2u {
	width, height := s.w.GetFramebufferSize()
	return render.Vector2u{X: uint32(width), Y: uint32(height)}
}

func (s *Surface) IsSRGB() bool { return s.srgb }

// Activate makes the window's context current on the calling thread, or
// detaches whatever context is current.
func (s *Surface) Activate(active bool) bool {
	if active {
		s.w.MakeContextCurrent()
		return glfw.GetCurrentContext() == s.w
	}
	glfw.DetachCurrentContext()
	return true
}

// ContextID returns the id of the context current on the calling thread.
func (s *Surface) ContextID() uint64 {
	return contextID(glfw.GetCurrentContext(), false)
}

// Close forgets the window's context id. It does not destroy the window.
func (s *Surface) Close() {
	forgetContext(s.w)
}

var _ render.Surface = (*Surface)(nil)
