package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Terminal is the process terminal: stdin for input, stdout for output.
// It satisfies display.DimensionSource.
type Terminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
	setup    bool
}

// New returns a Terminal over os.Stdin and os.Stdout.
func New() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

// Input returns the reader keys arrive on.
func (t *Terminal) Input() io.Reader {
	return t.in
}

// Output returns the writer frames are rendered to.
func (t *Terminal) Output() io.Writer {
	return t.out
}

// IsTerminal reports whether both ends are attached to a tty.
func (t *Terminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// Size returns the current terminal dimensions.
func (t *Terminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *Terminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the state saved by EnterRawMode.
func (t *Terminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Setup enters the alternate screen, hides the cursor and clears.
func (t *Terminal) Setup() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.setup {
		return nil
	}
	seq := ansi.SetAltScreenSaveCursorMode + ansi.HideCursor + ansi.EraseEntireScreen
	if _, err := io.WriteString(t.out, seq); err != nil {
		return fmt.Errorf("setting up screen: %w", err)
	}
	t.setup = true
	return nil
}

// Restore undoes Setup. Safe to call multiple times.
func (t *Terminal) Restore() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.setup {
		return nil
	}
	seq := ansi.ResetStyle + ansi.ShowCursor + ansi.ResetAltScreenSaveCursorMode
	if _, err := io.WriteString(t.out, seq); err != nil {
		return fmt.Errorf("restoring screen: %w", err)
	}
	t.setup = false
	return nil
}
