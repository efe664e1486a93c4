// Package term runs the drawing board directly on a tcell screen.
package term

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"spinboard/internal/canvas"
	"spinboard/internal/draw"
)

const frameRate = time.Second / 30

// Options configures Run. Zero values pick the defaults.
type Options struct {
	Spin        time.Duration
	DoubleClick time.Duration
	ExportDir   string
	Seed        uint64
	OnPurge     func(n int)
}

// callback is posted to the event queue so timers run on the poll loop.
type callback func()

type quitSignal struct{}

type frameSignal struct{}

// postScheduler fires callbacks by posting them back into the screen's queue.
type postScheduler struct{ screen tcell.Screen }

func (p postScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() { _ = p.screen.PostEvent(tcell.NewEventInterrupt(callback(f))) })
}

type app struct {
	screen tcell.Screen
	now    func() time.Time
	board  *canvas.Board
	ctrl   *draw.Controller
	spin   *draw.Spinner
	dbl    canvas.DoubleClick
	frames func()

	exportDir string
	status    string
	prev      tcell.ButtonMask
	lastX     int
	lastY     int
	inside    bool
	animating bool
}

func newApp(screen tcell.Screen, opts Options, sched draw.Scheduler) *app {
	a := &app{
		screen:    screen,
		now:       time.Now,
		dbl:       canvas.DoubleClick{Window: opts.DoubleClick},
		exportDir: opts.ExportDir,
		status:    "drag to draw, double-click to spin, s snapshot, q quit",
	}
	if a.exportDir == "" {
		a.exportDir = "."
	}
	a.board = canvas.NewBoard(func() time.Time { return a.now() })
	a.spin = draw.NewSpinner(a.board, sched,
		draw.WithDuration(opts.Spin),
		draw.WithPurgeHook(func(rs []*draw.Rectangle) {
			a.status = fmt.Sprintf("purged: %d rectangles", len(rs))
			if opts.OnPurge != nil {
				opts.OnPurge(len(rs))
			}
		}),
	)
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	a.ctrl = draw.NewController(a.board, a.spin, rng)
	a.frames = func() {
		time.AfterFunc(frameRate, func() { _ = screen.PostEvent(tcell.NewEventInterrupt(frameSignal{})) })
	}
	return a
}

// Run polls screen until the user quits or ctx is done. The caller owns
// screen initialisation and teardown.
func Run(ctx context.Context, screen tcell.Screen, opts Options) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	a := newApp(screen, opts, postScheduler{screen: screen})

	go func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
	}()

	a.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handle(ev) {
			return ctx.Err()
		}
		a.draw()
	}
}

// handle processes one event and reports whether the loop should stop.
func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
			a.export()
		}
	case *tcell.EventMouse:
		a.mouse(ev)
	case *tcell.EventInterrupt:
		switch d := ev.Data().(type) {
		case quitSignal:
			return true
		case callback:
			d()
		case frameSignal:
			a.animating = false
		}
	}
	if !a.animating && a.spin.Count() > 0 {
		a.animating = true
		a.frames()
	}
	return false
}

func (a *app) canvasSize() (int, int) {
	w, h := a.screen.Size()
	return w, max(0, h-1)
}

// mouse derives press, drag and release from successive button masks; tcell
// reports only the current state.
func (a *app) mouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	mask := ev.Buttons()
	b := draw.Buttons(mask & (tcell.Button1 | tcell.Button2 | tcell.Button3))
	w, h := a.canvasSize()
	inside := x >= 0 && y >= 0 && x < w && y < h
	prev := a.prev
	a.prev = mask

	if inside && !a.inside {
		a.ctrl.PointerEnter(b)
	}
	a.inside = inside
	if !inside {
		return
	}

	pressed := mask&tcell.Button1 != 0 && prev&tcell.Button1 == 0
	released := mask&tcell.Button1 == 0 && prev&tcell.Button1 != 0
	moved := x != a.lastX || y != a.lastY
	a.lastX, a.lastY = x, y

	switch {
	case pressed:
		el := a.board.HitTest(x, y)
		if a.dbl.Press(el, a.now()) {
			el.Activate()
		}
		a.ctrl.PointerDown(x, y, b)
	case released:
		a.ctrl.PointerUp(x, y, b)
	case moved:
		a.ctrl.PointerMove(x, y, b)
	}
}

func (a *app) export() {
	w, h := a.canvasSize()
	now := a.now()
	p := filepath.Join(a.exportDir, fmt.Sprintf("spinboard-%s.png", now.Format("20060102-150405")))
	if err := canvas.ExportPNG(p, a.board, w, h, now, 8, 16); err != nil {
		a.status = "export error: " + err.Error()
		draw.Logger().Error("export failed", "err", err)
		return
	}
	a.status = "saved: " + filepath.Base(p)
}

func (a *app) draw() {
	w, h := a.canvasSize()
	f := canvas.Raster(a.board, w, h, a.now())
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.At(x, y)
			st := tcell.StyleDefault
			if c.HasFg {
				st = st.Foreground(rgb(c.Fg))
			}
			if c.HasBg {
				st = st.Background(rgb(c.Bg))
			}
			a.screen.SetContent(x, y, c.Ch, nil, st)
		}
	}
	status := a.status
	if n := a.spin.Count(); n > 0 {
		status = fmt.Sprintf("%s  spinning: %d", status, n)
	}
	dim := tcell.StyleDefault.Foreground(tcell.NewRGBColor(107, 114, 128))
	col := 0
	for _, r := range status {
		if col >= w {
			break
		}
		a.screen.SetContent(col, h, r, nil, dim)
		col++
	}
	for ; col < w; col++ {
		a.screen.SetContent(col, h, ' ', nil, dim)
	}
	a.screen.Show()
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
