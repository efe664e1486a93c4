package draw

import (
	"math/rand/v2"
	"time"
)

// Controller turns pointer events into rectangle lifecycle calls. At most one
// rectangle is being drawn at a time.
type Controller struct {
	surface Surface
	spin    *Spinner
	rng     *rand.Rand
	current *Rectangle
}

// NewController draws onto s and hands finished rectangles to spin. A nil rng
// seeds one from the clock.
func NewController(s Surface, spin *Spinner, rng *rand.Rand) *Controller {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Controller{surface: s, spin: spin, rng: rng}
}

// Drawing reports whether a rectangle is in progress.
func (c *Controller) Drawing() bool { return c.current != nil }

// Current returns the rectangle being drawn, or nil.
func (c *Controller) Current() *Rectangle { return c.current }

// PointerDown starts a rectangle at (x, y). The element stays detached until
// the pointer moves so a plain click leaves nothing behind.
func (c *Controller) PointerDown(x, y int, b Buttons) {
	if !b.Primary() || c.current != nil {
		return
	}
	c.current = newRectangle(c.surface, x, y, RandomColor(c.rng))
	Logger().Debug("draw start", "x", x, "y", y)
}

// PointerMove drags the free corner. A move without the primary button means
// the release happened somewhere we did not see, so the draw ends.
func (c *Controller) PointerMove(x, y int, b Buttons) {
	if c.current == nil {
		return
	}
	if !b.Primary() {
		c.PointerUp(x, y, b)
		return
	}
	c.current.UpdatePosition(x, y)
	if el := c.current.Element(); !c.surface.Attached(el) {
		c.surface.Attach(el)
	}
}

// PointerUp finishes the draw. A release that still reports the primary button
// held is stale and ignored.
func (c *Controller) PointerUp(_, _ int, b Buttons) {
	if c.current == nil {
		return
	}
	if b.Primary() {
		Logger().Debug("stale pointer up ignored")
		return
	}
	r := c.current
	r.Element().OnDoubleActivate(func() { c.spin.StartSpin(r) })
	c.current = nil
	Logger().Debug("draw end", "bounds", r.Bounds())
}

// PointerEnter ends a draw whose release happened outside the surface.
func (c *Controller) PointerEnter(b Buttons) {
	if c.current == nil || b.Primary() {
		return
	}
	c.PointerUp(0, 0, b)
}
