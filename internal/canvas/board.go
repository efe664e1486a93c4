package canvas

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"spinboard/internal/draw"
	"spinboard/internal/geom"
)

// Board is the display container. Children are painted in attach order.
type Board struct {
	now      func() time.Time
	nextID   int
	children []*Element
}

// NewBoard returns an empty board. A nil clock uses time.Now.
func NewBoard(now func() time.Time) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{now: now}
}

var _ draw.Surface = (*Board)(nil)

func (b *Board) NewElement() draw.Element {
	b.nextID++
	return &Element{id: b.nextID}
}

func (b *Board) Attach(e draw.Element) {
	el, ok := e.(*Element)
	if !ok || b.Attached(el) {
		return
	}
	el.board = b
	b.children = append(b.children, el)
}

func (b *Board) Detach(e draw.Element) {
	for i, c := range b.children {
		if c == e {
			b.children = append(b.children[:i], b.children[i+1:]...)
			c.board = nil
			return
		}
	}
}

func (b *Board) Attached(e draw.Element) bool {
	el, ok := e.(*Element)
	return ok && el.board == b
}

// Elements returns the attached elements in paint order.
func (b *Board) Elements() []*Element { return b.children }

func (b *Board) Len() int { return len(b.children) }

// Now returns the board clock.
func (b *Board) Now() time.Time { return b.now() }

// HitTest returns the topmost element covering cell (x, y), or nil.
func (b *Board) HitTest(x, y int) *Element {
	for i := len(b.children) - 1; i >= 0; i-- {
		if el := b.children[i]; el.bounds.Contains(x, y) {
			return el
		}
	}
	return nil
}

// Element is a coloured box on a Board.
type Element struct {
	id        int
	board     *Board
	bounds    geom.BBox
	fill      colorful.Color
	spinning  bool
	spinStart time.Time
	spinDur   time.Duration
	onDouble  func()
}

var _ draw.Element = (*Element)(nil)

func (e *Element) ID() int                  { return e.id }
func (e *Element) Bounds() geom.BBox        { return e.bounds }
func (e *Element) Fill() colorful.Color     { return e.fill }
func (e *Element) Spinning() bool           { return e.spinning }
func (e *Element) SetBounds(b geom.BBox)    { e.bounds = b }
func (e *Element) SetFill(c colorful.Color) { e.fill = c }

// StartSpin tags the element. The board clock marks the start of the turn;
// detached elements use the wall clock.
func (e *Element) StartSpin(d time.Duration) {
	e.spinning = true
	e.spinDur = d
	if e.board != nil {
		e.spinStart = e.board.now()
	} else {
		e.spinStart = time.Now()
	}
}

func (e *Element) OnDoubleActivate(fn func()) { e.onDouble = fn }

// Activate delivers a double-click to the element.
func (e *Element) Activate() {
	if e.onDouble != nil {
		e.onDouble()
	}
}

// Angle is the rotation at now: one full turn over the spin duration, then held.
func (e *Element) Angle(now time.Time) float64 {
	if !e.spinning || e.spinDur <= 0 {
		return 0
	}
	elapsed := now.Sub(e.spinStart)
	if elapsed >= e.spinDur {
		return 2 * math.Pi
	}
	if elapsed < 0 {
		return 0
	}
	return 2 * math.Pi * float64(elapsed) / float64(e.spinDur)
}
