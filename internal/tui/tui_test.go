package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

// newTestModel returns a sized model whose timers resolve immediately into
// messages instead of sleeping.
func newTestModel(t *testing.T) (Model, *testClock) {
	t.Helper()
	clk := &testClock{t: time.Unix(5000, 0)}
	m := New(Options{Now: clk.now, Seed: 42, ExportDir: t.TempDir()})
	m.s.sched.tick = func(_ time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
		return func() tea.Msg { return fn(clk.t) }
	}
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}), clk
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// updateCollect runs msg and returns the timer messages its command produced.
func updateCollect(t *testing.T, m Model, msg tea.Msg) (Model, []timerMsg) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), collectTimers(cmd)
}

func collectTimers(cmd tea.Cmd) []timerMsg {
	if cmd == nil {
		return nil
	}
	var out []timerMsg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collectTimers(c)...)
		}
	case timerMsg:
		out = append(out, msg)
	}
	return out
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

// dragScreen drags in screen coordinates; the canvas starts below the header.
func dragScreen(t *testing.T, m Model, x1, y1, x2, y2 int) Model {
	t.Helper()
	m = update(t, m, mouse(x1, y1, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(x2, y2, tea.MouseActionMotion, tea.MouseButtonLeft))
	return update(t, m, mouse(x2, y2, tea.MouseActionRelease, tea.MouseButtonNone))
}

func TestDragCreatesRectangle(t *testing.T) {
	m, _ := newTestModel(t)
	m = dragScreen(t, m, 10, 10+headerHeight, 40, 4+headerHeight)
	els := m.Board().Elements()
	if len(els) != 1 {
		t.Fatalf("elements = %d, want 1", len(els))
	}
	b := els[0].Bounds()
	if b.Left != 10 || b.Top != 4 || b.Width != 30 || b.Height != 6 {
		t.Errorf("bounds = %+v", b)
	}
	if !strings.Contains(m.status, "rectangles: 1") {
		t.Errorf("status = %q", m.status)
	}
}

func TestClickCreatesNothing(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, mouse(5, 5, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(5, 5, tea.MouseActionRelease, tea.MouseButtonNone))
	if m.Board().Len() != 0 {
		t.Fatalf("click attached %d elements", m.Board().Len())
	}
}

func TestRightButtonDoesNotDraw(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, mouse(5, 5, tea.MouseActionPress, tea.MouseButtonRight))
	m = update(t, m, mouse(9, 9, tea.MouseActionMotion, tea.MouseButtonRight))
	if m.Board().Len() != 0 || m.s.ctrl.Drawing() {
		t.Fatal("right button drew a rectangle")
	}
}

func TestReleaseOutsideEndsOnEnter(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, mouse(5, 5, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(9, 9, tea.MouseActionMotion, tea.MouseButtonLeft))
	// release over the header, outside the canvas
	m = update(t, m, mouse(9, 0, tea.MouseActionRelease, tea.MouseButtonNone))
	if !m.s.ctrl.Drawing() {
		t.Fatal("release outside the canvas reached the controller")
	}
	m = update(t, m, mouse(9, 3, tea.MouseActionMotion, tea.MouseButtonNone))
	if m.s.ctrl.Drawing() {
		t.Fatal("entering without a button did not end the draw")
	}
	if m.Board().Len() != 1 {
		t.Fatalf("elements = %d, want 1", m.Board().Len())
	}
}

func TestDoubleClickSpinsAndPurges(t *testing.T) {
	m, clk := newTestModel(t)
	m = dragScreen(t, m, 10, 5, 30, 15)
	var timers []timerMsg
	m = update(t, m, mouse(20, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(20, 10, tea.MouseActionRelease, tea.MouseButtonNone))
	clk.t = clk.t.Add(200 * time.Millisecond)
	m, timers = updateCollect(t, m, mouse(20, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(20, 10, tea.MouseActionRelease, tea.MouseButtonNone))

	if m.s.spin.Count() != 1 || len(timers) != 1 {
		t.Fatalf("count = %d timers = %d, want 1 and 1", m.s.spin.Count(), len(timers))
	}
	if !m.Board().Elements()[0].Spinning() {
		t.Fatal("element not tagged spinning")
	}
	if m.Board().Len() != 1 {
		t.Fatalf("double-click left %d elements, want 1", m.Board().Len())
	}

	m = update(t, m, timers[0])
	if m.Board().Len() != 0 || m.s.spin.Count() != 0 {
		t.Fatalf("after timer: elements = %d count = %d", m.Board().Len(), m.s.spin.Count())
	}
	if !strings.Contains(m.status, "purged: 1") {
		t.Errorf("status = %q", m.status)
	}
}

func TestSlowClicksDoNotSpin(t *testing.T) {
	m, clk := newTestModel(t)
	m = dragScreen(t, m, 10, 5, 30, 15)
	m = update(t, m, mouse(20, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(20, 10, tea.MouseActionRelease, tea.MouseButtonNone))
	clk.t = clk.t.Add(time.Second)
	m = update(t, m, mouse(20, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	if m.s.spin.Count() != 0 {
		t.Fatal("slow clicks started a spin")
	}
}

func TestSidebarShiftsCanvas(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showSidebar {
		t.Fatal("tab did not open the sidebar")
	}
	x0 := sidebarWidth + 1
	m = dragScreen(t, m, x0+2, 3, x0+12, 8)
	b := m.Board().Elements()[0].Bounds()
	if b.Left != 2 || b.Top != 2 {
		t.Errorf("bounds = %+v, want origin 2,2", b)
	}
	if n := len(m.l.Items()); n != 1 {
		t.Errorf("sidebar items = %d, want 1", n)
	}
}

func TestViewShowsRectangle(t *testing.T) {
	m, _ := newTestModel(t)
	if v := m.View(); !strings.Contains(v, "spinboard") {
		t.Fatal("header missing from view")
	}
	m = dragScreen(t, m, 2, 2, 12, 6)
	if lines := strings.Split(m.View(), "\n"); len(lines) != 24 {
		t.Errorf("view has %d lines, want 24", len(lines))
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestExportSnapshot(t *testing.T) {
	m, _ := newTestModel(t)
	m = dragScreen(t, m, 2, 2, 12, 6)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if !strings.HasPrefix(m.status, "saved: spinboard-") {
		t.Errorf("status = %q", m.status)
	}
}

func TestButtonsOf(t *testing.T) {
	tests := []struct {
		msg  tea.MouseMsg
		want uint8
	}{
		{mouse(0, 0, tea.MouseActionPress, tea.MouseButtonLeft), 1},
		{mouse(0, 0, tea.MouseActionMotion, tea.MouseButtonLeft), 1},
		{mouse(0, 0, tea.MouseActionMotion, tea.MouseButtonNone), 0},
		{mouse(0, 0, tea.MouseActionRelease, tea.MouseButtonLeft), 0},
		{mouse(0, 0, tea.MouseActionPress, tea.MouseButtonRight), 2},
		{mouse(0, 0, tea.MouseActionPress, tea.MouseButtonWheelUp), 0},
	}
	for _, tt := range tests {
		if got := uint8(buttonsOf(tt.msg)); got != tt.want {
			t.Errorf("buttonsOf(%+v) = %d, want %d", tt.msg, got, tt.want)
		}
	}
}
