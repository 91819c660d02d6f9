package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/window"
)

// azerty is a keyboard backend with Q and A swapped.
type azerty struct {
	held  map[window.Scancode]bool
	calls int
}

func (k *azerty) IsKeyPressed(key window.Key) bool {
	k.calls++
	return k.held[k.Delocalize(key)]
}

func (k *azerty) IsScancodePressed(s window.Scancode) bool {
	k.calls++
	return k.held[s]
}

func (k *azerty) Localize(s window.Scancode) window.Key {
	k.calls++
	switch s {
	case window.ScanQ:
		return window.KeyA
	case window.ScanA:
		return window.KeyQ
	}
	if key := window.FixedKey(s); key != window.KeyUnknown {
		return key
	}
	return window.USKey(s)
}

func (k *azerty) Delocalize(key window.Key) window.Scancode {
	k.calls++
	switch key {
	case window.KeyA:
		return window.ScanQ
	case window.KeyQ:
		return window.ScanA
	case window.KeyZ:
		return window.ScanZ
	}
	for s := window.Scancode(0); s < window.ScancodeCount; s++ {
		if window.FixedKey(s) == key {
			return s
		}
	}
	return window.ScanUnknown
}

func (k *azerty) Description(s window.Scancode) string {
	k.calls++
	return window.Describe(s, k.Localize(s).String())
}

type mouse struct{ window.NoPointer }

func (mouse) MousePosition() window.Vector2i { return window.Vector2i{X: 7, Y: 8} }

type queueSource struct{ q *window.EventQueue }

func (s queueSource) PollEvent() (window.Event, bool) { return s.q.Pop() }

func TestServiceLayoutQueries(t *testing.T) {
	kb := &azerty{held: map[window.Scancode]bool{window.ScanQ: true}}
	svc := window.NewService(kb)

	assert.Equal(t, window.KeyA, svc.Localize(window.ScanQ))
	assert.Equal(t, window.ScanQ, svc.Delocalize(window.KeyA))
	assert.Equal(t, "A", svc.Description(window.ScanQ))
	assert.Equal(t, "Enter", svc.Description(window.ScanEnter))

	assert.True(t, svc.IsScancodePressed(window.ScanQ))
	assert.True(t, svc.IsKeyPressed(window.KeyA))
	assert.False(t, svc.IsKeyPressed(window.KeyQ))
	assert.Equal(t, []window.Key{window.KeyA}, svc.PressedKeys())
}

func TestServiceInvalidInput(t *testing.T) {
	kb := &azerty{}
	svc := window.NewService(kb)

	assert.False(t, svc.IsKeyPressed(window.KeyUnknown))
	assert.False(t, svc.IsKeyPressed(window.KeyCount))
	assert.False(t, svc.IsScancodePressed(window.ScanUnknown))
	assert.Equal(t, window.KeyUnknown, svc.Localize(window.ScancodeCount))
	assert.Equal(t, window.ScanUnknown, svc.Delocalize(window.KeyUnknown))
	assert.Equal(t, window.UnknownDescription, svc.Description(window.ScanUnknown))
	assert.False(t, svc.IsMouseButtonPressed(window.MouseButton(-1)))
	assert.Zero(t, kb.calls, "invalid input never reaches the backend")
}

func TestServiceDefaults(t *testing.T) {
	svc := window.NewService(&azerty{})

	assert.Equal(t, window.Vector2i{}, svc.MousePosition())
	assert.False(t, svc.IsTouchDown(0))
	assert.Equal(t, window.Vector2i{}, svc.TouchPosition(3))
	_, ok := svc.PollEvent()
	assert.False(t, ok)
}

func TestServiceOptions(t *testing.T) {
	q := window.NewEventQueue(2)
	q.Push(window.TextEntered{Unicode: 'x'})

	svc := window.NewService(&azerty{}, window.WithPointer(mouse{}), window.WithEvents(queueSource{q}))
	assert.Equal(t, window.Vector2i{X: 7, Y: 8}, svc.MousePosition())

	ev, ok := svc.PollEvent()
	require.True(t, ok)
	assert.Equal(t, window.TextEntered{Unicode: 'x'}, ev)
}

func TestServiceClipboard(t *testing.T) {
	svc := window.NewService(&azerty{})
	assert.Empty(t, svc.ClipboardText())
	svc.SetClipboardText("kept in process")
	assert.Equal(t, "kept in process", svc.ClipboardText())

	other := &window.NoClipboard{}
	other.SetClipboardText("from option")
	svc = window.NewService(&azerty{}, window.WithClipboard(other))
	assert.Equal(t, "from option", svc.ClipboardText())
}
