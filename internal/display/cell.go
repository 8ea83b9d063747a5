package display

import "github.com/gdamore/tcell/v2"

// Attribute is a text style applied to a cell.
type Attribute uint8

const (
	AttrReset Attribute = iota
	AttrBold
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrCrossedOut
)

var attrNames = [...]string{
	AttrReset:      "reset",
	AttrBold:       "bold",
	AttrDim:        "dim",
	AttrItalic:     "italic",
	AttrUnderline:  "underline",
	AttrBlink:      "blink",
	AttrReverse:    "reverse",
	AttrHidden:     "hidden",
	AttrCrossedOut: "crossed_out",
}

func (a Attribute) String() string {
	if int(a) < len(attrNames) {
		return attrNames[a]
	}
	return "unknown"
}

// ParseAttribute maps a name produced by String back to its Attribute.
func ParseAttribute(name string) (Attribute, bool) {
	for i, n := range attrNames {
		if n == name {
			return Attribute(i), true
		}
	}
	return AttrReset, false
}

// Default colors of an empty cell.
var (
	DefaultForeground = tcell.ColorWhite
	DefaultBackground = tcell.ColorBlack
)

// Cell is the visual state of one grid position. Cells are values: a Display
// replaces them, it never mutates one in place.
type Cell struct {
	Ch   rune
	Fg   tcell.Color
	Bg   tcell.Color
	Attr Attribute
}

// Empty returns a blank cell on the default background.
func Empty() Cell {
	return EmptyColored(DefaultBackground)
}

// EmptyColored returns a blank cell on the given background.
func EmptyColored(bg tcell.Color) Cell {
	return Cell{
		Ch:   ' ',
		Fg:   DefaultForeground,
		Bg:   bg,
		Attr: AttrReset,
	}
}

// RenderTo emits the cell's attribute, foreground, background and character,
// in that order. The first sink error is returned as is.
func (c Cell) RenderTo(s Sink) error {
	if err := s.SetAttribute(c.Attr); err != nil {
		return err
	}
	if err := s.SetForeground(c.Fg); err != nil {
		return err
	}
	if err := s.SetBackground(c.Bg); err != nil {
		return err
	}
	return s.WriteRune(c.Ch)
}
