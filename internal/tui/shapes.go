package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"spinboard/internal/canvas"
)

// shapeItem is a sidebar row for one rectangle.
type shapeItem struct {
	title, desc string
	id          int
}

func (s shapeItem) Title() string       { return s.title }
func (s shapeItem) Description() string { return s.desc }
func (s shapeItem) FilterValue() string { return s.title + " " + s.desc }

func newShapeItem(el *canvas.Element) shapeItem {
	b := el.Bounds()
	desc := "idle " + el.Fill().Hex()
	if el.Spinning() {
		desc = "spinning " + el.Fill().Hex()
	}
	return shapeItem{
		title: fmt.Sprintf("#%d %dx%d @%d,%d", el.ID(), b.Width, b.Height, b.Left, b.Top),
		desc:  desc,
		id:    el.ID(),
	}
}

// refreshShapes rebuilds the sidebar from the board, newest first.
func (m *Model) refreshShapes() {
	els := m.s.board.Elements()
	items := make([]list.Item, 0, len(els))
	for i := len(els) - 1; i >= 0; i-- {
		items = append(items, newShapeItem(els[i]))
	}
	m.l.SetItems(items)
}
