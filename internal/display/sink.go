package display

import "github.com/gdamore/tcell/v2"

// Sink is the ordered output stream a Display renders into.
// Calls are issued in the exact order the frame needs them; implementations
// may buffer until Flush.
type Sink interface {
	// MoveTo positions the output cursor (0-indexed).
	MoveTo(col, row int) error
	SetAttribute(attr Attribute) error
	SetForeground(c tcell.Color) error
	SetBackground(c tcell.Color) error
	WriteRune(r rune) error
	// Clear erases the whole output surface.
	Clear() error
	Flush() error
}

// DimensionSource reports the grid size of the output surface.
type DimensionSource interface {
	Size() (width, height int, err error)
}
