package draw

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"spinboard/internal/geom"
)

// Rectangle is a box with one anchored corner, drawn by dragging the other.
type Rectangle struct {
	anchor geom.Point
	other  geom.Point
	el     Element
}

func newRectangle(s Surface, x, y int, fill colorful.Color) *Rectangle {
	p := geom.Point{X: x, Y: y}
	r := &Rectangle{anchor: p, other: p, el: s.NewElement()}
	r.el.SetFill(fill)
	return r
}

// Element returns the visual handle.
func (r *Rectangle) Element() Element { return r.el }

// Bounds returns the box spanned by the anchor and the moving corner.
func (r *Rectangle) Bounds() geom.BBox { return geom.Span(r.anchor, r.other) }

// UpdatePosition moves the free corner to (x, y) and resizes the element.
func (r *Rectangle) UpdatePosition(x, y int) {
	r.other = geom.Point{X: x, Y: y}
	r.el.SetBounds(r.Bounds())
}

// RandomColor picks a fill uniformly over the RGB cube.
func RandomColor(rng *rand.Rand) colorful.Color {
	return colorful.Color{R: rng.Float64(), G: rng.Float64(), B: rng.Float64()}
}
