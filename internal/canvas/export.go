package canvas

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
)

// ExportPNG writes the board at time now to path, each cell scaled to
// cellW x cellH pixels.
func ExportPNG(path string, b *Board, w, h int, now time.Time, cellW, cellH int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("export %s: empty canvas %dx%d", path, w, h)
	}
	dc := gg.NewContext(w*cellW, h*cellH)
	defer dc.Close()
	dc.ClearWithColor(gg.Black)

	sx, sy := float64(cellW), float64(cellH)
	for _, el := range b.Elements() {
		bb := el.Bounds()
		if bb.Empty() {
			continue
		}
		cx, cy := bb.Center()
		c := el.Fill()
		dc.Push()
		dc.RotateAbout(el.Angle(now), cx*sx, cy*sy)
		dc.SetRGB(c.R, c.G, c.B)
		dc.DrawRectangle(float64(bb.Left)*sx, float64(bb.Top)*sy, float64(bb.Width)*sx, float64(bb.Height)*sy)
		err := dc.Fill()
		dc.Pop()
		if err != nil {
			return fmt.Errorf("export %s: fill element %d: %w", path, el.ID(), err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}
