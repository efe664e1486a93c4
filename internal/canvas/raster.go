package canvas

import (
	"math"
	"sort"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"spinboard/internal/geom"
)

// Cell is one painted terminal cell.
type Cell struct {
	Ch    rune
	Fg    colorful.Color
	Bg    colorful.Color
	HasFg bool
	HasBg bool
}

// Frame is a w*h grid of cells, row-major.
type Frame struct {
	W, H  int
	Cells []Cell
}

func newFrame(w, h int) *Frame {
	f := &Frame{W: w, H: h, Cells: make([]Cell, w*h)}
	for i := range f.Cells {
		f.Cells[i].Ch = ' '
	}
	return f
}

func (f *Frame) At(x, y int) Cell { return f.Cells[y*f.W+x] }

func (f *Frame) cell(x, y int) *Cell { return &f.Cells[y*f.W+x] }

// Raster paints the board into a w*h frame at time now. Resting elements fill
// their cells; spinning ones are rotated about their centre and drawn in
// braille dots over whatever lies below.
func Raster(b *Board, w, h int, now time.Time) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f := newFrame(w, h)
	for _, el := range b.Elements() {
		a := el.Angle(now)
		if math.Mod(a, 2*math.Pi) == 0 {
			fillBox(f, el.Bounds(), el.Fill())
			continue
		}
		fillRotated(f, el.Bounds(), a, el.Fill())
	}
	return f
}

func fillBox(f *Frame, b geom.BBox, c colorful.Color) {
	for y := max(0, b.Top); y < min(f.H, b.Bottom()); y++ {
		for x := max(0, b.Left); x < min(f.W, b.Right()); x++ {
			*f.cell(x, y) = Cell{Ch: ' ', Bg: c, HasBg: true}
		}
	}
}

func fillRotated(f *Frame, b geom.BBox, angle float64, c colorful.Color) {
	if b.Empty() {
		return
	}
	br := newBrailleBuf(f.W, f.H)
	pts := geom.Corners(b, angle, 2, 4)

	// even-odd scanline fill on the micro grid
	hMic := f.H * 4
	for yMic := 0; yMic < hMic; yMic++ {
		yc := float64(yMic) + 0.5
		var xs []float64
		for i := range pts {
			a, bb := pts[i], pts[(i+1)%len(pts)]
			if a[1] == bb[1] {
				continue
			}
			if (yc >= a[1] && yc < bb[1]) || (yc >= bb[1] && yc < a[1]) {
				t := (yc - a[1]) / (bb[1] - a[1])
				xs = append(xs, a[0]+t*(bb[0]-a[0]))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xMic := max(0, int(math.Floor(xs[i]))); xMic < int(math.Ceil(xs[i+1])); xMic++ {
				br.setPixel(xMic, yMic)
			}
		}
	}
	// edges keep thin shapes visible
	for i := range pts {
		a, bb := pts[i], pts[(i+1)%len(pts)]
		br.drawLineMicro(int(a[0]), int(a[1]), int(bb[0]), int(bb[1]))
	}

	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			g, ok := br.glyph(x, y)
			if !ok {
				continue
			}
			cl := f.cell(x, y)
			cl.Ch = g
			cl.Fg = c
			cl.HasFg = true
		}
	}
}
