package draw

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"spinboard/internal/geom"
)

// Element is the visual handle behind a Rectangle. The host decides how it is
// painted; the core only positions, colours and tags it.
type Element interface {
	SetBounds(b geom.BBox)
	SetFill(c colorful.Color)
	// StartSpin tags the element as spinning for one turn of duration d.
	StartSpin(d time.Duration)
	// OnDoubleActivate registers fn for the double-click gesture on the element.
	OnDoubleActivate(fn func())
}

// Surface is the display container elements are attached to.
type Surface interface {
	NewElement() Element
	Attach(e Element)
	Detach(e Element)
	Attached(e Element) bool
}

// Scheduler runs f once after d. f must be invoked on the loop that delivers
// pointer events.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}
