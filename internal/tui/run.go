package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/muesli/termenv"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/terminal"
)

// Term is the process terminal as the live loop needs it.
type Term interface {
	display.DimensionSource
	Input() io.Reader
	Output() io.Writer
	EnterRawMode() error
	ExitRawMode() error
	Setup() error
	Restore() error
}

type RunConfig struct {
	Options
	Profile termenv.Profile
	Tick    time.Duration
	Poll    time.Duration
	// Seed builds the starting board for the drawable area.
	Seed func(width, height int) *life.Board
}

// Run drives the live demo until the user quits or ctx is done. The terminal
// is restored on every return path.
func Run(ctx context.Context, t Term, cfg RunConfig) (err error) {
	if err := t.EnterRawMode(); err != nil {
		return err
	}
	defer func() {
		if rerr := t.ExitRawMode(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	if err := t.Setup(); err != nil {
		return err
	}
	defer func() {
		if rerr := t.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	sink := terminal.NewSink(t.Output(), cfg.Profile)
	disp, err := display.New(t, sink)
	if err != nil {
		return err
	}

	w, h := disp.Size()
	if cfg.StatusLine && h > 0 {
		h--
	}
	app := NewApp(disp, cfg.Seed(w, h), cfg.Options)
	slog.Info("live started", "width", w, "height", h, "rule", app.ruleLabel())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan terminal.Key)
	inputErr := make(chan error, 1)
	go func() {
		// stdin reads cannot be interrupted; the goroutine ends with the process.
		inputErr <- terminal.ReadKeys(ctx, t.Input(), keys)
	}()
	resizes := terminal.WatchResize(ctx, t)

	tick := time.NewTicker(positive(cfg.Tick, 20*time.Millisecond))
	defer tick.Stop()
	poll := time.NewTicker(positive(cfg.Poll, 20*time.Millisecond))
	defer poll.Stop()

	if err := app.Draw(); err != nil {
		return err
	}

	dirty := false
	for !app.Quit() {
		select {
		case <-ctx.Done():
			return nil
		case k := <-keys:
			dirty = app.HandleKey(k) || dirty
		case ev, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			app.HandleResize(ev.Width, ev.Height)
			dirty = true
		case err := <-inputErr:
			if err != nil {
				return err
			}
			inputErr = nil
			keys = nil
		case <-tick.C:
			dirty = app.Tick() || dirty
		case <-poll.C:
			if !dirty {
				continue
			}
			if err := app.Draw(); err != nil {
				return err
			}
			dirty = false
		}
	}

	slog.Info("live stopped", "generation", app.Generation(), "population", app.Board().Population())
	return nil
}

func positive(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
