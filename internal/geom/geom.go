package geom

import "math"

// Span returns the box spanned by two opposite corners, in any order.
func Span(a, b Point) BBox {
	return BBox{
		Left:   min(a.X, b.X),
		Top:    min(a.Y, b.Y),
		Width:  abs(b.X - a.X),
		Height: abs(b.Y - a.Y),
	}
}

// Corners returns the four corners of b rotated by angle radians about its centre,
// clockwise from top-left. Coordinates are scaled by sx, sy first so callers can
// work on a finer grid than cells.
func Corners(b BBox, angle, sx, sy float64) [4][2]float64 {
	cx, cy := b.Center()
	cx, cy = cx*sx, cy*sy
	l, t := float64(b.Left)*sx, float64(b.Top)*sy
	r, bt := float64(b.Right())*sx, float64(b.Bottom())*sy
	pts := [4][2]float64{{l, t}, {r, t}, {r, bt}, {l, bt}}
	sin, cos := math.Sincos(angle)
	for i, p := range pts {
		dx, dy := p[0]-cx, p[1]-cy
		pts[i] = [2]float64{cx + dx*cos - dy*sin, cy + dx*sin + dy*cos}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
