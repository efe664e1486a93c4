package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"spinboard/internal/canvas"
	"spinboard/internal/draw"
)

// Config is the validated command line.
type Config struct {
	Backend     string
	LogPath     string
	Debug       bool
	Spin        time.Duration
	DoubleClick time.Duration
	Sound       bool
	ExportDir   string
	Seed        uint64
}

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

func parseFlags(args []string, out io.Writer) (Config, error) {
	var c Config
	fs := flag.NewFlagSet("spinboard", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&c.Backend, "backend", backendTea, "terminal backend: tea or tcell")
	fs.StringVar(&c.LogPath, "log", "", "path to log file for debugging")
	fs.BoolVar(&c.Debug, "debug", false, "log pointer and spin events")
	fs.DurationVar(&c.Spin, "spin", draw.SpinDuration, "length of one spin")
	fs.DurationVar(&c.DoubleClick, "dblclick", canvas.DefaultDoubleClick, "longest gap between the clicks of a double-click")
	fs.BoolVar(&c.Sound, "sound", false, "play a tone when rectangles are purged")
	fs.StringVar(&c.ExportDir, "export-dir", ".", "directory for PNG snapshots")
	fs.Uint64Var(&c.Seed, "seed", 0, "colour seed, 0 for random")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if c.Backend != backendTea && c.Backend != backendTcell {
		return Config{}, fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Spin <= 0 {
		return Config{}, fmt.Errorf("spin must be positive, got %v", c.Spin)
	}
	if c.DoubleClick <= 0 {
		return Config{}, fmt.Errorf("dblclick must be positive, got %v", c.DoubleClick)
	}
	return c, nil
}
