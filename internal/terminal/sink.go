package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/x/ansi"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/san-kum/termgrid/internal/display"
)

// sgrAttr maps each display attribute to its SGR parameter.
var sgrAttr = map[display.Attribute]string{
	display.AttrReset:      "0",
	display.AttrBold:       "1",
	display.AttrDim:        "2",
	display.AttrItalic:     "3",
	display.AttrUnderline:  "4",
	display.AttrBlink:      "5",
	display.AttrReverse:    "7",
	display.AttrHidden:     "8",
	display.AttrCrossedOut: "9",
}

const (
	sgrDefaultFg = "39"
	sgrDefaultBg = "49"
)

// Sink writes display commands as ANSI escape sequences. Output is buffered
// until Flush; write errors surface from the call that hits them.
type Sink struct {
	w       *bufio.Writer
	profile termenv.Profile
}

// NewSink wraps w. The profile decides how colors are downsampled; use
// termenv.EnvColorProfile() for the running terminal.
func NewSink(w io.Writer, profile termenv.Profile) *Sink {
	return &Sink{
		w:       bufio.NewWriterSize(w, 64*1024),
		profile: profile,
	}
}

func (s *Sink) MoveTo(col, row int) error {
	// CUP is 1-indexed
	if _, err := s.w.WriteString(ansi.CursorPosition(col+1, row+1)); err != nil {
		return fmt.Errorf("moving cursor: %w", err)
	}
	return nil
}

func (s *Sink) SetAttribute(attr display.Attribute) error {
	code, ok := sgrAttr[attr]
	if !ok {
		return fmt.Errorf("unsupported attribute %d", attr)
	}
	return s.sgr(code)
}

func (s *Sink) SetForeground(c tcell.Color) error {
	return s.sgr(s.colorParams(c, false))
}

func (s *Sink) SetBackground(c tcell.Color) error {
	return s.sgr(s.colorParams(c, true))
}

func (s *Sink) WriteRune(r rune) error {
	if _, err := s.w.WriteRune(r); err != nil {
		return fmt.Errorf("writing rune: %w", err)
	}
	return nil
}

func (s *Sink) Clear() error {
	if _, err := s.w.WriteString(ansi.EraseEntireScreen + ansi.CursorPosition(1, 1)); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}

func (s *Sink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// WriteString passes raw bytes through the same buffer, keeping them ordered
// with rendered frames.
func (s *Sink) WriteString(str string) error {
	if _, err := s.w.WriteString(str); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (s *Sink) sgr(params string) error {
	if params == "" {
		return nil
	}
	if _, err := s.w.WriteString("\x1b[" + params + "m"); err != nil {
		return fmt.Errorf("writing sgr: %w", err)
	}
	return nil
}

// colorParams returns the SGR parameters selecting c. Palette colors keep
// their index so the terminal's own palette applies; RGB colors go through
// the profile. An Ascii profile emits nothing.
func (s *Sink) colorParams(c tcell.Color, bg bool) string {
	if s.profile == termenv.Ascii {
		return ""
	}
	if c == tcell.ColorDefault || !c.Valid() {
		if bg {
			return sgrDefaultBg
		}
		return sgrDefaultFg
	}

	var spec string
	if c.IsRGB() {
		spec = fmt.Sprintf("#%06x", c.Hex())
	} else {
		spec = strconv.Itoa(int(c - tcell.ColorValid))
	}

	tc := s.profile.Color(spec)
	if tc == nil {
		return ""
	}
	return tc.Sequence(bg)
}
