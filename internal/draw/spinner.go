package draw

import "time"

// SpinDuration is the length of one spin.
const SpinDuration = 1500 * time.Millisecond

// Spinner counts spinning rectangles and removes all of them once the last
// spin finishes.
type Spinner struct {
	surface  Surface
	sched    Scheduler
	duration time.Duration
	count    int
	spinning []*Rectangle
	onPurge  func([]*Rectangle)
}

// SpinnerOption configures a Spinner.
type SpinnerOption func(*Spinner)

// WithDuration overrides SpinDuration. Non-positive values are ignored.
func WithDuration(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.duration = d
		}
	}
}

// WithPurgeHook calls fn with the removed rectangles after each purge.
func WithPurgeHook(fn func([]*Rectangle)) SpinnerOption {
	return func(s *Spinner) { s.onPurge = fn }
}

func NewSpinner(surface Surface, sched Scheduler, opts ...SpinnerOption) *Spinner {
	s := &Spinner{surface: surface, sched: sched, duration: SpinDuration}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Spinner) Duration() time.Duration { return s.duration }

// Count returns the number of spins still running.
func (s *Spinner) Count() int { return s.count }

// Spinning returns the rectangles waiting for the purge, in start order.
func (s *Spinner) Spinning() []*Rectangle { return s.spinning }

// StartSpin tags r as spinning and schedules the end of its spin. Spins cannot
// be cancelled. Starting an already spinning rectangle adds another spin to the
// count but the rectangle is purged once.
func (s *Spinner) StartSpin(r *Rectangle) {
	r.Element().StartSpin(s.duration)
	s.count++
	if !s.isSpinning(r) {
		s.spinning = append(s.spinning, r)
	}
	s.sched.AfterFunc(s.duration, s.spinDone)
	Logger().Debug("spin start", "count", s.count, "bounds", r.Bounds())
}

func (s *Spinner) isSpinning(r *Rectangle) bool {
	for _, sp := range s.spinning {
		if sp == r {
			return true
		}
	}
	return false
}

func (s *Spinner) spinDone() {
	if s.count == 0 {
		return
	}
	s.count--
	if s.count > 0 {
		return
	}
	purged := s.spinning
	s.spinning = nil
	for _, r := range purged {
		s.surface.Detach(r.Element())
	}
	Logger().Info("purged spinning rectangles", "n", len(purged))
	if s.onPurge != nil {
		s.onPurge(purged)
	}
}
