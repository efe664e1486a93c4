package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spinboard/internal/canvas"
)

// renderFrame turns a raster frame into styled lines, one style per run of
// identical cells.
func renderFrame(f *canvas.Frame) string {
	var sb strings.Builder
	for y := 0; y < f.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.W; {
			c := f.At(x, y)
			run := []rune{c.Ch}
			j := x + 1
			for ; j < f.W && sameStyle(f.At(j, y), c); j++ {
				run = append(run, f.At(j, y).Ch)
			}
			if c.HasFg || c.HasBg {
				sb.WriteString(cellStyle(c).Render(string(run)))
			} else {
				sb.WriteString(string(run))
			}
			x = j
		}
	}
	return sb.String()
}

func cellStyle(c canvas.Cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.HasFg {
		st = st.Foreground(lipgloss.Color(c.Fg.Hex()))
	}
	if c.HasBg {
		st = st.Background(lipgloss.Color(c.Bg.Hex()))
	}
	return st
}

func sameStyle(a, b canvas.Cell) bool {
	if a.HasFg != b.HasFg || a.HasBg != b.HasBg {
		return false
	}
	if a.HasFg && a.Fg != b.Fg {
		return false
	}
	return !a.HasBg || a.Bg == b.Bg
}
