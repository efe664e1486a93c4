package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg carries a scheduled callback back onto the update loop.
type timerMsg struct{ fn func() }

type frameMsg time.Time

// cmdScheduler turns AfterFunc calls into tea.Tick commands, collected until
// the current Update returns.
type cmdScheduler struct {
	tick    func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	pending []tea.Cmd
}

func (c *cmdScheduler) AfterFunc(d time.Duration, f func()) {
	c.pending = append(c.pending, c.tick(d, func(time.Time) tea.Msg { return timerMsg{fn: f} }))
}

func (c *cmdScheduler) frame() tea.Cmd {
	return c.tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (c *cmdScheduler) drain() []tea.Cmd {
	cmds := c.pending
	c.pending = nil
	return cmds
}
