package window

// Clipboard abstracts system clipboard access. Backends with a window
// implement it next to Keyboard; NewService picks it up.
type Clipboard interface {
	// ClipboardText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	ClipboardText() string

	// SetClipboardText copies text to the system clipboard.
	SetClipboardText(text string)
}

// NoClipboard is a Clipboard for backends without one. It keeps text
// within the process, so copy and paste still work inside the application.
type NoClipboard struct {
	text string
}

func (c *NoClipboard) ClipboardText() string        { return c.text }
func (c *NoClipboard) SetClipboardText(text string) { c.text = text }
