package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/terminal"
	"github.com/san-kum/termgrid/internal/theme"
)

// PatternSaver persists snapshots taken with the save key.
type PatternSaver interface {
	SavePattern(p *life.Pattern) (string, error)
}

type Options struct {
	Rule       life.Rule
	RuleName   string
	Wrap       bool
	Theme      theme.Theme
	StatusLine bool
	Auto       bool
	Density    float64
	Seed       int64
	Saver      PatternSaver
}

// App is the interactive board editor. All methods must be called from one
// goroutine.
type App struct {
	disp   *display.Display
	board  *life.Board
	opts   Options
	cx, cy int
	auto   bool
	gen    int
	quit   bool
	msg    string
	now    func() time.Time
}

// NewApp wraps disp. The board is resized to the drawable area.
func NewApp(disp *display.Display, board *life.Board, opts Options) *App {
	a := &App{disp: disp, opts: opts, auto: opts.Auto, now: time.Now}
	w, h := a.boardSize()
	a.board = board.Resized(w, h)
	return a
}

func (a *App) boardSize() (int, int) {
	w, h := a.disp.Size()
	if a.opts.StatusLine && h > 0 {
		h--
	}
	return w, h
}

func (a *App) Board() *life.Board { return a.board }
func (a *App) Cursor() (int, int) { return a.cx, a.cy }
func (a *App) Generation() int { return a.gen }
func (a *App) Auto() bool { return a.auto }
func (a *App) Quit() bool { return a.quit }

// Step advances the board by one generation.
func (a *App) Step() {
	a.board = a.board.Next(a.opts.Rule, a.opts.Wrap)
	a.gen++
}

// Tick steps the board when auto mode is on. It reports whether anything
// changed.
func (a *App) Tick() bool {
	if !a.auto {
		return false
	}
	a.Step()
	return true
}

// HandleKey applies one keypress and reports whether a redraw is needed.
func (a *App) HandleKey(k terminal.Key) bool {
	w, h := a.board.Width(), a.board.Height()
	a.msg = ""

	switch k.Code {
	case terminal.KeyUp:
		a.cy = wrapIndex(a.cy-1, h)
	case terminal.KeyDown:
		a.cy = wrapIndex(a.cy+1, h)
	case terminal.KeyLeft:
		a.cx = wrapIndex(a.cx-1, w)
	case terminal.KeyRight:
		a.cx = wrapIndex(a.cx+1, w)
	case terminal.KeyEnter:
		a.board.Toggle(a.cx, a.cy)
	case terminal.KeyCtrlC:
		a.quit = true
	case terminal.KeyCtrlL:
		if err := a.disp.Reset(); err != nil {
			slog.Warn("redraw failed", "err", err)
		}
	case terminal.KeyRune:
		return a.handleRune(k.Rune)
	default:
		return false
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case ' ':
		a.board.Toggle(a.cx, a.cy)
	case 'n', 'N':
		a.Step()
	case 'a', 'A':
		a.auto = !a.auto
	case 'r', 'R':
		a.opts.Seed++
		a.board = life.Random(a.board.Width(), a.board.Height(), a.opts.Density, a.opts.Seed)
		a.gen = 0
	case 'c', 'C':
		a.board.Clear()
		a.gen = 0
	case 's', 'S':
		a.save()
	case 'q', 'Q':
		a.quit = true
	default:
		return false
	}
	return true
}

func (a *App) save() {
	if a.opts.Saver == nil {
		a.msg = "no pattern store"
		return
	}
	name := "snapshot_" + a.now().Format("20060102_150405")
	path, err := a.opts.Saver.SavePattern(life.FromBoard(name, a.board))
	if err != nil {
		slog.Warn("saving pattern failed", "err", err)
		a.msg = "save failed: " + err.Error()
		return
	}
	slog.Info("pattern saved", "path", path)
	a.msg = "saved " + path
}

// HandleResize resizes the display and the board, keeping the cells that
// still fit. The next Draw is a full repaint.
func (a *App) HandleResize(width, height int) {
	a.disp.Resize(width, height)
	w, h := a.boardSize()
	a.board = a.board.Resized(w, h)
	a.cx = min(a.cx, max(w-1, 0))
	a.cy = min(a.cy, max(h-1, 0))
	slog.Debug("resized", "width", width, "height", height)
}

// Draw composes the frame and renders it.
func (a *App) Draw() error {
	th := a.opts.Theme
	if err := drawBoard(a.disp, a.board, th); err != nil {
		return err
	}

	if a.board.Width() > 0 && a.board.Height() > 0 {
		cursor := display.Cell{Ch: th.CursorGlyph, Fg: th.Cursor, Bg: th.Background, Attr: display.AttrReset}
		if err := a.disp.Write(a.cx, a.cy, cursor); err != nil {
			return err
		}
	}

	if a.opts.StatusLine {
		if _, h := a.disp.Size(); h > 0 {
			if err := drawStatus(a.disp, h-1, a.statusText(), th); err != nil {
				return err
			}
		}
	}

	if err := a.disp.Render(); err != nil {
		return err
	}
	st := a.disp.LastFrame()
	slog.Debug("frame", "gen", a.gen, "full", st.Full, "moves", st.Moves, "cells", st.Cells)
	return nil
}

func (a *App) statusText() string {
	mode := "paused"
	if a.auto {
		mode = "auto"
	}
	parts := []string{
		fmt.Sprintf("gen %d", a.gen),
		fmt.Sprintf("pop %d", a.board.Population()),
		a.ruleLabel(),
		mode,
		fmt.Sprintf("(%d,%d)", a.cx, a.cy),
	}
	if a.msg != "" {
		parts = append(parts, a.msg)
	} else {
		parts = append(parts, "arrows move  space toggle  n step  a auto  r random  c clear  s save  q quit")
	}
	return " " + strings.Join(parts, " | ")
}

func (a *App) ruleLabel() string {
	if a.opts.RuleName != "" {
		return a.opts.RuleName
	}
	return a.opts.Rule.String()
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
