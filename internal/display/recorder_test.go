package display

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var errBoom = errors.New("boom")

type placedCell struct {
	X, Y int
	Cell Cell
}

// recordingSink records every sink call and can fail the nth call of one op.
type recordingSink struct {
	ops     []string
	emitted []placedCell
	flushes int
	clears  int

	failOp string
	failAt int
	calls  map[string]int

	cx, cy  int
	pending Cell
}

func newRecordingSink() *recordingSink {
	return &recordingSink{calls: make(map[string]int)}
}

func (s *recordingSink) hit(op string) error {
	s.calls[op]++
	if op == s.failOp && s.calls[op] == s.failAt {
		return errBoom
	}
	return nil
}

func (s *recordingSink) MoveTo(col, row int) error {
	if err := s.hit("move"); err != nil {
		return err
	}
	s.cx, s.cy = col, row
	s.ops = append(s.ops, fmt.Sprintf("move %d,%d", col, row))
	return nil
}

func (s *recordingSink) SetAttribute(attr Attribute) error {
	if err := s.hit("attr"); err != nil {
		return err
	}
	s.pending.Attr = attr
	s.ops = append(s.ops, "attr "+attr.String())
	return nil
}

func (s *recordingSink) SetForeground(c tcell.Color) error {
	if err := s.hit("fg"); err != nil {
		return err
	}
	s.pending.Fg = c
	s.ops = append(s.ops, "fg")
	return nil
}

func (s *recordingSink) SetBackground(c tcell.Color) error {
	if err := s.hit("bg"); err != nil {
		return err
	}
	s.pending.Bg = c
	s.ops = append(s.ops, "bg")
	return nil
}

func (s *recordingSink) WriteRune(r rune) error {
	if err := s.hit("rune"); err != nil {
		return err
	}
	s.pending.Ch = r
	s.emitted = append(s.emitted, placedCell{X: s.cx, Y: s.cy, Cell: s.pending})
	s.cx++
	s.ops = append(s.ops, "rune "+string(r))
	return nil
}

func (s *recordingSink) Clear() error {
	if err := s.hit("clear"); err != nil {
		return err
	}
	s.clears++
	s.ops = append(s.ops, "clear")
	return nil
}

func (s *recordingSink) Flush() error {
	if err := s.hit("flush"); err != nil {
		return err
	}
	s.flushes++
	s.ops = append(s.ops, "flush")
	return nil
}

func (s *recordingSink) moves() int {
	n := 0
	for _, op := range s.ops {
		if len(op) > 4 && op[:4] == "move" {
			n++
		}
	}
	return n
}

func (s *recordingSink) reset() {
	s.ops = nil
	s.emitted = nil
	s.flushes = 0
	s.clears = 0
	s.failOp = ""
	s.failAt = 0
	s.calls = make(map[string]int)
}

type fixedSize struct {
	w, h int
	err  error
}

func (f fixedSize) Size() (int, int, error) {
	return f.w, f.h, f.err
}
