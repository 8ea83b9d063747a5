// Package theme holds the colour schemes used to draw boards.
package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Theme struct {
	Name        string
	Background  tcell.Color
	Alive       tcell.Color
	Cursor      tcell.Color
	StatusFg    tcell.Color
	StatusBg    tcell.Color
	AliveGlyph  rune
	DeadGlyph   rune
	CursorGlyph rune
}

var (
	Gray = Theme{
		Name:        "gray",
		Background:  tcell.NewHexColor(0x181818),
		Alive:       tcell.ColorWhite,
		Cursor:      tcell.ColorWhite,
		StatusFg:    tcell.NewHexColor(0xcccccc),
		StatusBg:    tcell.NewHexColor(0x303030),
		AliveGlyph:  '#',
		DeadGlyph:   ' ',
		CursorGlyph: '@',
	}

	Retro = Theme{
		Name:        "retro",
		Background:  tcell.NewHexColor(0x001100),
		Alive:       tcell.NewHexColor(0x00ff00),
		Cursor:      tcell.NewHexColor(0x88ff88),
		StatusFg:    tcell.NewHexColor(0x00ff00),
		StatusBg:    tcell.NewHexColor(0x005500),
		AliveGlyph:  'O',
		DeadGlyph:   ' ',
		CursorGlyph: '@',
	}

	Ocean = Theme{
		Name:        "ocean",
		Background:  tcell.NewHexColor(0x001a33),
		Alive:       tcell.NewHexColor(0x00a8cc),
		Cursor:      tcell.NewHexColor(0xffd700),
		StatusFg:    tcell.NewHexColor(0xe0f0ff),
		StatusBg:    tcell.NewHexColor(0x0077be),
		AliveGlyph:  '█',
		DeadGlyph:   ' ',
		CursorGlyph: '@',
	}

	Sunset = Theme{
		Name:        "sunset",
		Background:  tcell.NewHexColor(0x2d1b2e),
		Alive:       tcell.NewHexColor(0xff6b6b),
		Cursor:      tcell.NewHexColor(0xfeca57),
		StatusFg:    tcell.NewHexColor(0xfff5f5),
		StatusBg:    tcell.NewHexColor(0x8b6b8c),
		AliveGlyph:  '●',
		DeadGlyph:   ' ',
		CursorGlyph: '@',
	}

	Minimal = Theme{
		Name:        "minimal",
		Background:  tcell.ColorBlack,
		Alive:       tcell.ColorWhite,
		Cursor:      tcell.ColorYellow,
		StatusFg:    tcell.ColorBlack,
		StatusBg:    tcell.ColorWhite,
		AliveGlyph:  '#',
		DeadGlyph:   '.',
		CursorGlyph: '@',
	}

	Default = Gray

	all = map[string]Theme{
		Gray.Name:    Gray,
		Retro.Name:   Retro,
		Ocean.Name:   Ocean,
		Sunset.Name:  Sunset,
		Minimal.Name: Minimal,
	}
)

// Get returns the named theme.
func Get(name string) (Theme, error) {
	t, ok := all[strings.ToLower(name)]
	if !ok {
		return Default, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

func Names() []string {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithOverrides replaces the background, alive and cursor colours with any
// non-empty value. Values are "#rrggbb" or a colour name.
func (t Theme) WithOverrides(background, alive, cursor string) (Theme, error) {
	for _, o := range []struct {
		value string
		dst   *tcell.Color
	}{
		{background, &t.Background},
		{alive, &t.Alive},
		{cursor, &t.Cursor},
	} {
		if o.value == "" {
			continue
		}
		c := tcell.GetColor(o.value)
		if c == tcell.ColorDefault {
			return t, fmt.Errorf("unknown colour %q", o.value)
		}
		*o.dst = c
	}
	return t, nil
}

// Hex formats c as "#rrggbb", falling back to black for colours without an
// RGB value.
func Hex(c tcell.Color) string {
	v := c.Hex()
	if v < 0 {
		v = 0
	}
	return fmt.Sprintf("#%06x", v)
}
