package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/terminal"
	"github.com/san-kum/termgrid/internal/theme"
)

func gliderBoard(w, h int) *life.Board {
	b := life.NewBoard(w, h)
	b.Set(1, 0, true)
	b.Set(2, 1, true)
	b.Set(0, 2, true)
	b.Set(1, 2, true)
	b.Set(2, 2, true)
	return b
}

func newTestApp(w, h int, opts Options) (*App, *screenSink) {
	sink := newScreenSink(w, h)
	disp := display.NewSized(w, h, sink)
	if opts.Theme.Name == "" {
		opts.Theme = theme.Gray
	}
	if opts.Rule == (life.Rule{}) {
		opts.Rule = life.Conway
	}
	return NewApp(disp, gliderBoard(w, h), opts), sink
}

func runeKey(r rune) terminal.Key { return terminal.Key{Code: terminal.KeyRune, Rune: r} }

func TestDrawBoardAndCursor(t *testing.T) {
	app, screen := newTestApp(10, 5, Options{Wrap: true})

	if err := app.Draw(); err != nil {
		t.Fatalf("draw failed: %v", err)
	}

	if got := screen.at(0, 0); got != '@' {
		t.Errorf("expected cursor at origin, got %q", got)
	}
	for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		if got := screen.at(c[0], c[1]); got != '#' {
			t.Errorf("expected live cell at %v, got %q", c, got)
		}
	}
	if got := screen.at(5, 3); got != ' ' {
		t.Errorf("expected empty cell, got %q", got)
	}
	if screen.flushes != 1 {
		t.Errorf("expected 1 flush, got %d", screen.flushes)
	}
	if !app.disp.LastFrame().Full {
		t.Error("first frame should be a full repaint")
	}
}

func TestStatusLine(t *testing.T) {
	app, screen := newTestApp(30, 6, Options{StatusLine: true, RuleName: "conway"})

	if app.Board().Height() != 5 {
		t.Fatalf("board should leave a row for the status line, got height %d", app.Board().Height())
	}
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}

	status := screen.row(5)
	if !strings.HasPrefix(status, " gen 0 | pop 5 | conway") {
		t.Errorf("unexpected status line %q", status)
	}
	if !strings.HasSuffix(status, "…") {
		t.Errorf("long status should be truncated, got %q", status)
	}
}

func TestCursorWraps(t *testing.T) {
	app, _ := newTestApp(10, 5, Options{})

	app.HandleKey(terminal.Key{Code: terminal.KeyLeft})
	app.HandleKey(terminal.Key{Code: terminal.KeyUp})
	if x, y := app.Cursor(); x != 9 || y != 4 {
		t.Errorf("expected (9,4), got (%d,%d)", x, y)
	}

	app.HandleKey(terminal.Key{Code: terminal.KeyRight})
	app.HandleKey(terminal.Key{Code: terminal.KeyDown})
	if x, y := app.Cursor(); x != 0 || y != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", x, y)
	}
}

func TestToggle(t *testing.T) {
	app, _ := newTestApp(10, 5, Options{})

	app.HandleKey(runeKey(' '))
	if !app.Board().Alive(0, 0) {
		t.Error("space should toggle the cell under the cursor on")
	}
	app.HandleKey(terminal.Key{Code: terminal.KeyEnter})
	if app.Board().Alive(0, 0) {
		t.Error("enter should toggle the cell off again")
	}
}

func TestStepAndAuto(t *testing.T) {
	app, _ := newTestApp(10, 10, Options{Wrap: true})
	want := gliderBoard(10, 10).Next(life.Conway, true)

	if app.Tick() {
		t.Error("tick must not step while paused")
	}
	app.HandleKey(runeKey('n'))
	if app.Generation() != 1 || !app.Board().Equal(want) {
		t.Error("n should advance one generation")
	}

	app.HandleKey(runeKey('a'))
	if !app.Auto() {
		t.Fatal("a should enable auto mode")
	}
	if !app.Tick() || app.Generation() != 2 {
		t.Errorf("tick should step in auto mode, gen %d", app.Generation())
	}
}

func TestClearAndRandom(t *testing.T) {
	app, _ := newTestApp(20, 10, Options{Density: 0.5, Seed: 1})

	app.HandleKey(runeKey('c'))
	if app.Board().Population() != 0 {
		t.Error("c should clear the board")
	}

	app.HandleKey(runeKey('r'))
	if app.Board().Population() == 0 {
		t.Error("r should reseed the board")
	}
	if app.Board().Width() != 20 || app.Board().Height() != 10 {
		t.Error("reseed must keep the board size")
	}
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []terminal.Key{runeKey('q'), runeKey('Q'), {Code: terminal.KeyCtrlC}} {
		app, _ := newTestApp(4, 4, Options{})
		app.HandleKey(k)
		if !app.Quit() {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestUnknownKeyNoRedraw(t *testing.T) {
	app, _ := newTestApp(4, 4, Options{})
	if app.HandleKey(runeKey('z')) {
		t.Error("unbound key should not request a redraw")
	}
	if app.HandleKey(terminal.Key{Code: terminal.KeyTab}) {
		t.Error("tab should not request a redraw")
	}
}

func TestIncrementalFrames(t *testing.T) {
	app, screen := newTestApp(10, 5, Options{})
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}

	app.HandleKey(terminal.Key{Code: terminal.KeyRight})
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}

	st := app.disp.LastFrame()
	if st.Full {
		t.Error("second frame should be a delta repaint")
	}
	if st.Cells != 2 {
		t.Errorf("moving the cursor should repaint 2 cells, got %d", st.Cells)
	}
	if screen.at(0, 0) != ' ' || screen.at(1, 0) != '@' {
		t.Errorf("unexpected row %q", screen.row(0))
	}
}

func TestRedrawKey(t *testing.T) {
	app, screen := newTestApp(10, 5, Options{})
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}

	if !app.HandleKey(terminal.Key{Code: terminal.KeyCtrlL}) {
		t.Error("ctrl+l should request a redraw")
	}
	if screen.clears != 1 {
		t.Errorf("expected screen clear, got %d", screen.clears)
	}
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}
	if !app.disp.LastFrame().Full {
		t.Error("frame after ctrl+l should be a full repaint")
	}
	if screen.at(1, 0) != '#' {
		t.Error("full repaint should restore the board")
	}
}

func TestHandleResize(t *testing.T) {
	app, screen := newTestApp(10, 5, Options{StatusLine: true})
	app.HandleKey(terminal.Key{Code: terminal.KeyLeft})
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}

	screen.resize(6, 3)
	app.HandleResize(6, 3)

	if w, h := app.Board().Width(), app.Board().Height(); w != 6 || h != 2 {
		t.Errorf("expected 6x2 board, got %dx%d", w, h)
	}
	if x, _ := app.Cursor(); x != 5 {
		t.Errorf("cursor should be clamped to 5, got %d", x)
	}
	if !app.Board().Alive(1, 0) || !app.Board().Alive(2, 1) {
		t.Error("resize should keep cells that still fit")
	}

	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}
	if !app.disp.LastFrame().Full {
		t.Error("frame after resize should be a full repaint")
	}
}

func TestSave(t *testing.T) {
	saver := &fakeSaver{}
	app, screen := newTestApp(100, 4, Options{Saver: saver, StatusLine: true})
	app.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	app.HandleKey(runeKey('s'))
	if len(saver.saved) != 1 || saver.saved[0] != "snapshot_20260102_030405" {
		t.Fatalf("unexpected saves %v", saver.saved)
	}
	if err := app.Draw(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(screen.row(3), "saved patterns/snapshot_") {
		t.Errorf("status should report the save, got %q", screen.row(3))
	}

	saver.err = errors.New("disk full")
	app.HandleKey(runeKey('s'))
	if !strings.Contains(app.statusText(), "save failed: disk full") {
		t.Errorf("unexpected status %q", app.statusText())
	}
}

func TestSaveWithoutStore(t *testing.T) {
	app, _ := newTestApp(10, 5, Options{})
	app.HandleKey(runeKey('s'))
	if !strings.Contains(app.statusText(), "no pattern store") {
		t.Errorf("unexpected status %q", app.statusText())
	}
}

func TestZeroSizedDisplay(t *testing.T) {
	app, _ := newTestApp(0, 0, Options{StatusLine: true})
	if err := app.Draw(); err != nil {
		t.Errorf("drawing an empty display should succeed: %v", err)
	}
	app.HandleKey(terminal.Key{Code: terminal.KeyRight})
	if x, y := app.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor should stay at origin, got (%d,%d)", x, y)
	}
}
