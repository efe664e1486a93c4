package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"spinboard/internal/draw"
	"spinboard/internal/sound"
	"spinboard/internal/term"
	"spinboard/internal/tui"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg Config) error {
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	var onPurge func(int)
	if cfg.Sound {
		p, err := sound.New()
		if err != nil {
			// the board works without sound
			draw.Logger().Warn("sound disabled", "err", err)
		}
		onPurge = p.Pop
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	draw.Logger().Info("starting", "backend", cfg.Backend, "spin", cfg.Spin)
	if cfg.Backend == backendTcell {
		return runTcell(ctx, cfg, onPurge)
	}
	return runTea(ctx, cfg, onPurge)
}

func runTea(ctx context.Context, cfg Config, onPurge func(int)) error {
	m := tui.New(tui.Options{
		Spin:        cfg.Spin,
		DoubleClick: cfg.DoubleClick,
		ExportDir:   cfg.ExportDir,
		Seed:        cfg.Seed,
		OnPurge:     onPurge,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func runTcell(ctx context.Context, cfg Config, onPurge func(int)) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	err = term.Run(ctx, screen, term.Options{
		Spin:        cfg.Spin,
		DoubleClick: cfg.DoubleClick,
		ExportDir:   cfg.ExportDir,
		Seed:        cfg.Seed,
		OnPurge:     onPurge,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setupLogging sends the std logger and the drawing core's slog output to
// cfg.LogPath. Without a path nothing is logged, the terminal is ours.
func setupLogging(cfg Config) (func(), error) {
	if cfg.LogPath == "" {
		return func() {}, nil
	}
	f, err := tea.LogToFile(cfg.LogPath, "spinboard")
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	draw.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() {
		draw.SetLogger(nil)
		_ = f.Close()
	}, nil
}
