package window

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonExtra1
	MouseButtonExtra2
	MouseButtonCount
)

// Valid reports whether b is a known button.
func (b MouseButton) Valid() bool {
	return b >= 0 && b < MouseButtonCount
}

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButtonExtra1:
		return "Extra1"
	case MouseButtonExtra2:
		return "Extra2"
	}
	return "Unknown"
}

// Wheel identifies a mouse wheel axis.
type Wheel int

const (
	WheelVertical Wheel = iota
	WheelHorizontal
)

func (w Wheel) String() string {
	if w == WheelHorizontal {
		return "Horizontal"
	}
	return "Vertical"
}
