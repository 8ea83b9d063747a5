package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/muesli/termenv"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/theme"
)

func testRunConfig() RunConfig {
	return RunConfig{
		Options: Options{
			Rule:       life.Conway,
			Wrap:       true,
			Theme:      theme.Gray,
			StatusLine: true,
		},
		Profile: termenv.Ascii,
		Tick:    time.Millisecond,
		Poll:    time.Millisecond,
		Seed:    gliderBoard,
	}
}

func TestRunQuitRestoresTerminal(t *testing.T) {
	term := &fakeTerm{w: 10, h: 5, in: strings.NewReader("nq")}

	if err := Run(context.Background(), term, testRunConfig()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := []string{"raw", "setup", "restore", "cooked"}
	if strings.Join(term.calls, ",") != strings.Join(want, ",") {
		t.Errorf("expected calls %v, got %v", want, term.calls)
	}
	if term.raw {
		t.Error("raw mode left enabled")
	}
	if !strings.Contains(term.out.String(), "#") {
		t.Error("expected the board to be drawn")
	}
}

func TestRunSizeFailure(t *testing.T) {
	term := &fakeTerm{sizeErr: errSize, in: strings.NewReader("")}

	err := Run(context.Background(), term, testRunConfig())

	var dimErr *display.DimensionQueryError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected DimensionQueryError, got %v", err)
	}
	if !errors.Is(err, errSize) {
		t.Error("size error should be reachable through the chain")
	}
	if term.raw || !term.restored {
		t.Error("terminal not restored after failure")
	}
}

func TestRunContextCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := &fakeTerm{w: 8, h: 4, in: pr}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, term, testRunConfig()) }()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop after cancel")
	}
	if !term.restored {
		t.Error("terminal not restored after cancel")
	}
}

func TestLiveRendererObserves(t *testing.T) {
	screen := newScreenSink(12, 6)
	disp := display.NewSized(12, 6, screen)
	r := NewLiveRenderer(disp, theme.Gray, "glider", 1000)

	b := gliderBoard(12, 5)
	r.OnGeneration(0, b)

	if r.Err() != nil {
		t.Fatalf("unexpected error: %v", r.Err())
	}
	if r.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", r.Frames())
	}
	if screen.at(1, 0) != '#' {
		t.Errorf("expected live cell, got %q", screen.at(1, 0))
	}
	if !strings.HasPrefix(screen.row(5), " glider | gen 0 | pop 5") {
		t.Errorf("unexpected status %q", screen.row(5))
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	disp := display.NewSized(5, 5, newScreenSink(5, 5))
	r := NewLiveRenderer(disp, theme.Gray, "x", 1)

	b := life.NewBoard(5, 4)
	for gen := 0; gen < 10; gen++ {
		r.OnGeneration(gen, b)
	}
	if r.Frames() != 1 {
		t.Errorf("expected throttling to 1 frame, got %d", r.Frames())
	}
}
