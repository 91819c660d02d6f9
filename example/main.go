// Example opens a window, draws through a render target and prints every
// input event it receives.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// A textured square follows the mouse and turns red while the key at the
// physical Q position is held, whatever the layout calls it. Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/window"
	"github.com/go-theft-auto/window/backend/opengl"
	"github.com/go-theft-auto/window/render"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "window example"
	squareSize   = 64
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "debug logging")
	srgb := flag.Bool("srgb", false, "request an sRGB framebuffer")
	flag.Parse()
	window.SetVerbose(*verbose)
	render.SetVerbose(*verbose)

	if err := run(*srgb); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(srgb bool) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	w, err := opengl.OpenWindow(windowWidth, windowHeight, windowTitle, srgb)
	if err != nil {
		return err
	}
	defer w.Destroy()

	driver, err := opengl.NewDriver()
	if err != nil {
		return fmt.Errorf("render driver: %w", err)
	}
	defer driver.Delete()

	tex, err := opengl.NewTexture(2, 2, checkerboard())
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	defer tex.Delete()

	surface := opengl.NewSurface(w, srgb)
	defer surface.Close()
	target := render.NewRenderTarget(surface, driver)

	input := window.NewService(opengl.NewGLFWKeyboard(w))
	fmt.Printf("Q position is labelled %q on this layout\n", input.Description(window.ScanQ))

	states := render.DefaultRenderStates()
	states.Texture = tex

	for !w.ShouldClose() {
		for {
			ev, ok := input.PollEvent()
			if !ok {
				break
			}
			fmt.Println(window.FormatEvent(ev))
			if k, ok := ev.(window.KeyPressed); ok && k.Code == window.KeyEscape {
				w.SetShouldClose(true)
			}
		}

		// The view follows the framebuffer so coordinates stay in pixels.
		size := target.Size()
		target.SetView(render.NewView(render.FloatRect{Width: float32(size.X), Height: float32(size.Y)}))
		target.Clear(render.RGBA(30, 30, 36, 255))

		color := render.ColorWhite
		if input.IsScancodePressed(window.ScanQ) {
			color = render.ColorRed
		}
		target.Draw(square(input.MousePosition(), color), render.TriangleStrip, states)

		w.SwapBuffers()
	}
	return nil
}

func square(at window.Vector2i, c render.Color) []render.Vertex {
	x, y := float32(at.X)-squareSize/2, float32(at.Y)-squareSize/2
	return []render.Vertex{
		{Position: render.Vector2f{X: x, Y: y}, Color: c, TexCoords: render.Vector2f{X: 0, Y: 0}},
		{Position: render.Vector2f{X: x + squareSize, Y: y}, Color: c, TexCoords: render.Vector2f{X: 2, Y: 0}},
		{Position: render.Vector2f{X: x, Y: y + squareSize}, Color: c, TexCoords: render.Vector2f{X: 0, Y: 2}},
		{Position: render.Vector2f{X: x + squareSize, Y: y + squareSize}, Color: c, TexCoords: render.Vector2f{X: 2, Y: 2}},
	}
}

func checkerboard() []byte {
	light, dark := []byte{255, 255, 255, 255}, []byte{160, 160, 160, 255}
	var px []byte
	for _, p := range [][]byte{light, dark, dark, light} {
		px = append(px, p...)
	}
	return px
}
