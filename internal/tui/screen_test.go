package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
)

// screenSink applies sink commands to an in-memory screen.
type screenSink struct {
	width, height int
	cells         [][]rune
	x, y          int
	flushes       int
	clears        int
}

func newScreenSink(w, h int) *screenSink {
	s := &screenSink{}
	s.resize(w, h)
	return s
}

func (s *screenSink) resize(w, h int) {
	s.width, s.height = w, h
	s.cells = make([][]rune, h)
	for y := range s.cells {
		s.cells[y] = []rune(strings.Repeat(" ", w))
	}
}

func (s *screenSink) MoveTo(col, row int) error {
	s.x, s.y = col, row
	return nil
}

func (s *screenSink) SetAttribute(display.Attribute) error { return nil }
func (s *screenSink) SetForeground(tcell.Color) error      { return nil }
func (s *screenSink) SetBackground(tcell.Color) error      { return nil }

func (s *screenSink) WriteRune(r rune) error {
	if s.y >= 0 && s.y < s.height && s.x >= 0 && s.x < s.width {
		s.cells[s.y][s.x] = r
	}
	s.x++
	return nil
}

func (s *screenSink) Clear() error {
	s.clears++
	s.resize(s.width, s.height)
	return nil
}

func (s *screenSink) Flush() error {
	s.flushes++
	return nil
}

func (s *screenSink) at(x, y int) rune { return s.cells[y][x] }

func (s *screenSink) row(y int) string { return string(s.cells[y]) }

type fakeSaver struct {
	saved []string
	err   error
}

func (f *fakeSaver) SavePattern(p *life.Pattern) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, p.Name)
	return "patterns/" + p.Name + ".cells", nil
}

// fakeTerm is a Term over in-memory streams.
type fakeTerm struct {
	w, h     int
	sizeErr  error
	in       io.Reader
	out      bytes.Buffer
	raw      bool
	restored bool
	calls    []string
}

func (t *fakeTerm) Size() (int, int, error) {
	if t.sizeErr != nil {
		return 0, 0, t.sizeErr
	}
	return t.w, t.h, nil
}

func (t *fakeTerm) Input() io.Reader  { return t.in }
func (t *fakeTerm) Output() io.Writer { return &t.out }

func (t *fakeTerm) EnterRawMode() error {
	t.raw = true
	t.calls = append(t.calls, "raw")
	return nil
}

func (t *fakeTerm) ExitRawMode() error {
	t.raw = false
	t.calls = append(t.calls, "cooked")
	return nil
}

func (t *fakeTerm) Setup() error {
	t.calls = append(t.calls, "setup")
	return nil
}

func (t *fakeTerm) Restore() error {
	t.restored = true
	t.calls = append(t.calls, "restore")
	return nil
}

var errSize = errors.New("no tty")
