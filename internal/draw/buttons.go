package draw

// Buttons is the pointer button bitmask carried by mouse events.
type Buttons uint8

const (
	ButtonPrimary Buttons = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// Primary reports whether the primary button is held.
func (b Buttons) Primary() bool { return b&ButtonPrimary != 0 }
