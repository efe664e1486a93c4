package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"spinboard/internal/canvas"
	"spinboard/internal/draw"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshShapes()
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight)
			}
			// the canvas moved under the pointer
			m.s.inside = false
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		case key.Matches(msg, m.keys.Export):
			m.exportSnapshot()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case timerMsg:
		msg.fn()
		if m.s.spin.Count() == 0 && m.s.purged > 0 {
			m.status = fmt.Sprintf("purged: %d rectangles", m.s.purged)
			m.s.purged = 0
		}
	case frameMsg:
		m.s.animating = false
	}

	cmds = append(cmds, m.s.sched.drain()...)
	if !m.s.animating && m.s.spin.Count() > 0 {
		m.s.animating = true
		cmds = append(cmds, m.s.sched.frame())
	}
	if m.showSidebar {
		m.refreshShapes()
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// handleMouse translates a terminal mouse event into canvas-local pointer
// events. Terminals send no enter events, so one is synthesised whenever the
// pointer crosses into the canvas.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	ox, oy, cw, ch := m.canvasRect()
	x, y := msg.X-ox, msg.Y-oy
	inside := x >= 0 && y >= 0 && x < cw && y < ch
	b := buttonsOf(msg)

	if inside && !m.s.inside {
		m.s.ctrl.PointerEnter(b)
	}
	m.s.inside = inside
	m.hovering = inside
	if !inside {
		return
	}
	m.hoverX, m.hoverY = x, y

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			el := m.s.board.HitTest(x, y)
			if m.s.dbl.Press(el, m.s.now()) {
				el.Activate()
				if m.s.spin.Count() > 0 {
					m.status = fmt.Sprintf("spinning: %d", m.s.spin.Count())
				}
			}
		}
		m.s.ctrl.PointerDown(x, y, b)
	case tea.MouseActionMotion:
		m.s.ctrl.PointerMove(x, y, b)
		if r := m.s.ctrl.Current(); r != nil {
			bb := r.Bounds()
			m.status = fmt.Sprintf("drawing %dx%d", bb.Width, bb.Height)
		}
	case tea.MouseActionRelease:
		drawing := m.s.ctrl.Drawing()
		m.s.ctrl.PointerUp(x, y, b)
		if drawing && !m.s.ctrl.Drawing() {
			m.status = fmt.Sprintf("rectangles: %d", m.s.board.Len())
		}
	}
}

// buttonsOf reports the buttons held during msg. A release holds nothing.
func buttonsOf(msg tea.MouseMsg) draw.Buttons {
	if msg.Action == tea.MouseActionRelease {
		return 0
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		return draw.ButtonPrimary
	case tea.MouseButtonRight:
		return draw.ButtonSecondary
	case tea.MouseButtonMiddle:
		return draw.ButtonMiddle
	}
	return 0
}

func (m *Model) exportSnapshot() {
	_, _, cw, ch := m.canvasRect()
	now := m.s.now()
	p := filepath.Join(m.exportDir, fmt.Sprintf("spinboard-%s.png", now.Format("20060102-150405")))
	if err := canvas.ExportPNG(p, m.s.board, cw, ch, now, 8, 16); err != nil {
		m.status = "export error: " + err.Error()
		draw.Logger().Error("export failed", "err", err)
		return
	}
	m.status = "saved: " + filepath.Base(p)
}
