package geom

// Point is a viewport cell coordinate.
type Point struct {
	X int
	Y int
}

// BBox is an axis-aligned box in cells. Left/Top are inclusive, Right/Bottom exclusive.
type BBox struct {
	Left   int
	Top    int
	Width  int
	Height int
}

func (b BBox) Right() int  { return b.Left + b.Width }
func (b BBox) Bottom() int { return b.Top + b.Height }

// Empty reports whether the box covers no cells.
func (b BBox) Empty() bool { return b.Width <= 0 || b.Height <= 0 }

func (b BBox) Contains(x, y int) bool {
	return x >= b.Left && x < b.Right() && y >= b.Top && y < b.Bottom()
}

// Center returns the box centre in fractional cells.
func (b BBox) Center() (float64, float64) {
	return float64(b.Left) + float64(b.Width)/2, float64(b.Top) + float64(b.Height)/2
}
