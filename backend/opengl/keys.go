package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/window"
)

// glfwToScan maps GLFW key tokens to positions. GLFW names its tokens after
// the US layout, so a token identifies a position, not a character.
var glfwToScan = map[glfw.Key]window.Scancode{
	glfw.KeySpace:        window.ScanSpace,
	glfw.KeyApostrophe:   window.ScanApostrophe,
	glfw.KeyComma:        window.ScanComma,
	glfw.KeyMinus:        window.ScanHyphen,
	glfw.KeyPeriod:       window.ScanPeriod,
	glfw.KeySlash:        window.ScanSlash,
	glfw.KeySemicolon:    window.ScanSemicolon,
	glfw.KeyEqual:        window.ScanEqual,
	glfw.KeyLeftBracket:  window.ScanLBracket,
	glfw.KeyBackslash:    window.ScanBackslash,
	glfw.KeyRightBracket: window.ScanRBracket,
	glfw.KeyGraveAccent:  window.ScanGrave,
	glfw.KeyWorld1:       window.ScanNonUsBackslash,

	glfw.KeyEscape:      window.ScanEscape,
	glfw.KeyEnter:       window.ScanEnter,
	glfw.KeyTab:         window.ScanTab,
	glfw.KeyBackspace:   window.ScanBackspace,
	glfw.KeyInsert:      window.ScanInsert,
	glfw.KeyDelete:      window.ScanDelete,
	glfw.KeyRight:       window.ScanRight,
	glfw.KeyLeft:        window.ScanLeft,
	glfw.KeyDown:        window.ScanDown,
	glfw.KeyUp:          window.ScanUp,
	glfw.KeyPageUp:      window.ScanPageUp,
	glfw.KeyPageDown:    window.ScanPageDown,
	glfw.KeyHome:        window.ScanHome,
	glfw.KeyEnd:         window.ScanEnd,
	glfw.KeyCapsLock:    window.ScanCapsLock,
	glfw.KeyScrollLock:  window.ScanScrollLock,
	glfw.KeyNumLock:     window.ScanNumLock,
	glfw.KeyPrintScreen: window.ScanPrintScreen,
	glfw.KeyPause:       window.ScanPause,

	glfw.KeyKPDecimal:  window.ScanNumpadDecimal,
	glfw.KeyKPDivide:   window.ScanNumpadDivide,
	glfw.KeyKPMultiply: window.ScanNumpadMultiply,
	glfw.KeyKPSubtract: window.ScanNumpadMinus,
	glfw.KeyKPAdd:      window.ScanNumpadPlus,
	glfw.KeyKPEnter:    window.ScanNumpadEnter,
	glfw.KeyKPEqual:    window.ScanNumpadEqual,

	glfw.KeyLeftShift:    window.ScanLShift,
	glfw.KeyLeftControl:  window.ScanLControl,
	glfw.KeyLeftAlt:      window.ScanLAlt,
	glfw.KeyLeftSuper:    window.ScanLSystem,
	glfw.KeyRightShift:   window.ScanRShift,
	glfw.KeyRightControl: window.ScanRControl,
	glfw.KeyRightAlt:     window.ScanRAlt,
	glfw.KeyRightSuper:   window.ScanRSystem,
	glfw.KeyMenu:         window.ScanMenu,
}

// scanToGLFW is the inverse of glfwToScan, KeyUnknown where GLFW has no
// token.
var scanToGLFW [window.ScancodeCount]glfw.Key

func init() {
	for i := 0; i < 26; i++ {
		glfwToScan[glfw.KeyA+glfw.Key(i)] = window.ScanA + window.Scancode(i)
	}
	for i := 1; i <= 9; i++ {
		glfwToScan[glfw.Key0+glfw.Key(i)] = window.ScanNum1 + window.Scancode(i-1)
		glfwToScan[glfw.KeyKP0+glfw.Key(i)] = window.ScanNumpad1 + window.Scancode(i-1)
	}
	glfwToScan[glfw.Key0] = window.ScanNum0
	glfwToScan[glfw.KeyKP0] = window.ScanNumpad0
	for i := 0; i < 24; i++ {
		glfwToScan[glfw.KeyF1+glfw.Key(i)] = window.ScanF1 + window.Scancode(i)
	}

	for i := range scanToGLFW {
		scanToGLFW[i] = glfw.KeyUnknown
	}
	for g, s := range glfwToScan {
		scanToGLFW[s] = g
	}
}
