package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"spinboard/internal/canvas"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	_, _, cw, ch := m.canvasRect()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" spinboard ─ drag to draw, double-click to spin ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, ch)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(ch).Render(m.l.View())
	}

	frame := canvas.Raster(m.s.board, cw, ch, m.s.now())
	canvasView := lipgloss.NewStyle().Width(cw).Height(ch).Render(renderFrame(frame))

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvasView)
	} else {
		body = canvasView
	}

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	if n := m.s.spin.Count(); n > 0 {
		status += spinStyle.Render(fmt.Sprintf(" ⟳ %d ", n))
	}
	var help string
	if m.helpVisible {
		help = "  " + m.help.View(m.keys)
	}
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%d y=%d  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
