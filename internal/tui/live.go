package tui

import (
	"fmt"
	"time"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/theme"
)

// LiveRenderer is a sim.Observer that draws generations of a headless run,
// at most frameRate times per second.
type LiveRenderer struct {
	disp      *display.Display
	theme     theme.Theme
	label     string
	frameRate int
	lastFrame time.Time
	frames    int
	err       error
}

func NewLiveRenderer(disp *display.Display, th theme.Theme, label string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{disp: disp, theme: th, label: label, frameRate: frameRate}
}

func (r *LiveRenderer) OnGeneration(gen int, b *life.Board) {
	if r.err != nil {
		return
	}
	elapsed := time.Since(r.lastFrame)
	if gen > 0 && elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.err = r.draw(gen, b)
}

func (r *LiveRenderer) draw(gen int, b *life.Board) error {
	w, h := r.disp.Size()
	if h == 0 {
		return nil
	}
	view := b.Resized(w, h-1)
	if err := drawBoard(r.disp, view, r.theme); err != nil {
		return err
	}
	status := fmt.Sprintf(" %s | gen %d | pop %d", r.label, gen, b.Population())
	if err := drawStatus(r.disp, h-1, status, r.theme); err != nil {
		return err
	}
	if err := r.disp.Render(); err != nil {
		return err
	}
	r.frames++
	return nil
}

// Frames returns how many frames were rendered.
func (r *LiveRenderer) Frames() int { return r.frames }

// Err returns the first render failure; drawing stops after it.
func (r *LiveRenderer) Err() error { return r.err }
