package tui

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"spinboard/internal/canvas"
	"spinboard/internal/draw"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	frameRate    = time.Second / 30
)

// Options configures a Model. Zero values pick the defaults.
type Options struct {
	Spin        time.Duration
	DoubleClick time.Duration
	ExportDir   string
	Seed        uint64
	// OnPurge runs after spinning rectangles are removed.
	OnPurge func(n int)
	Now     func() time.Time
}

// session is the drawing state shared by every copy of the Model.
type session struct {
	now   func() time.Time
	board *canvas.Board
	ctrl  *draw.Controller
	spin  *draw.Spinner
	sched *cmdScheduler
	dbl   canvas.DoubleClick

	inside    bool
	animating bool
	purged    int
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status    string
	exportDir string

	// Shapes sidebar
	l list.Model

	keys keyMap
	help help.Model

	// hover state
	hovering bool
	hoverX   int
	hoverY   int

	s *session
}

func New(opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	s := &session{now: now, board: canvas.NewBoard(now), dbl: canvas.DoubleClick{Window: opts.DoubleClick}}
	s.sched = &cmdScheduler{tick: tea.Tick}
	s.spin = draw.NewSpinner(s.board, s.sched,
		draw.WithDuration(opts.Spin),
		draw.WithPurgeHook(func(rs []*draw.Rectangle) {
			s.purged += len(rs)
			if opts.OnPurge != nil {
				opts.OnPurge(len(rs))
			}
		}),
	)
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	s.ctrl = draw.NewController(s.board, s.spin, rng)

	m := Model{
		helpVisible: true,
		status:      "drag to draw, double-click to spin",
		exportDir:   opts.ExportDir,
		keys:        defaultKeys(),
		help:        help.New(),
		s:           s,
	}
	if m.exportDir == "" {
		m.exportDir = "."
	}
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Rectangles"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Board exposes the display container.
func (m Model) Board() *canvas.Board { return m.s.board }

// canvasRect returns the canvas origin and size in screen cells.
func (m Model) canvasRect() (x, y, w, h int) {
	if m.showSidebar {
		x = sidebarWidth + 1
	}
	y = headerHeight
	w = max(10, m.width) - x
	h = max(4, m.height-headerHeight-footerHeight)
	return x, y, w, h
}
