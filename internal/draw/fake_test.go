package draw

import (
	"sort"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"spinboard/internal/geom"
)

type fakeElement struct {
	bounds    geom.BBox
	fill      colorful.Color
	spins     int
	spinDur   time.Duration
	activate  func()
	listeners int
}

func (e *fakeElement) SetBounds(b geom.BBox)    { e.bounds = b }
func (e *fakeElement) SetFill(c colorful.Color) { e.fill = c }
func (e *fakeElement) StartSpin(d time.Duration) {
	e.spins++
	e.spinDur = d
}
func (e *fakeElement) OnDoubleActivate(fn func()) {
	e.activate = fn
	e.listeners++
}

func (e *fakeElement) doubleClick() {
	if e.activate != nil {
		e.activate()
	}
}

type fakeSurface struct {
	children []*fakeElement
	created  int
}

func (s *fakeSurface) NewElement() Element {
	s.created++
	return &fakeElement{}
}

func (s *fakeSurface) Attach(e Element) { s.children = append(s.children, e.(*fakeElement)) }

func (s *fakeSurface) Detach(e Element) {
	for i, c := range s.children {
		if c == e {
			s.children = append(s.children[:i], s.children[i+1:]...)
			return
		}
	}
}

func (s *fakeSurface) Attached(e Element) bool {
	for _, c := range s.children {
		if c == e {
			return true
		}
	}
	return false
}

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

// manualClock is a Scheduler driven by Advance.
type manualClock struct {
	now    time.Duration
	seq    int
	timers []timer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) {
	c.seq++
	c.timers = append(c.timers, timer{at: c.now + d, seq: c.seq, fn: f})
}

// Advance moves time forward by d, firing due timers in order.
func (c *manualClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		sort.SliceStable(c.timers, func(i, j int) bool {
			if c.timers[i].at != c.timers[j].at {
				return c.timers[i].at < c.timers[j].at
			}
			return c.timers[i].seq < c.timers[j].seq
		})
		if len(c.timers) == 0 || c.timers[0].at > end {
			break
		}
		t := c.timers[0]
		c.timers = c.timers[1:]
		c.now = t.at
		t.fn()
	}
	c.now = end
}
