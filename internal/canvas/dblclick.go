package canvas

import "time"

// DefaultDoubleClick is the longest gap between two presses of a double-click.
const DefaultDoubleClick = 400 * time.Millisecond

// DoubleClick pairs presses on the same element into a double-click. Terminals
// report single presses only.
type DoubleClick struct {
	Window time.Duration

	last *Element
	at   time.Time
}

// Press records a press on el (nil for empty canvas) and reports whether it
// completes a double-click.
func (d *DoubleClick) Press(el *Element, now time.Time) bool {
	window := d.Window
	if window <= 0 {
		window = DefaultDoubleClick
	}
	if el != nil && el == d.last && now.Sub(d.at) <= window {
		d.last = nil
		return true
	}
	d.last, d.at = el, now
	return false
}
