package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/san-kum/termgrid/internal/display"
	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/theme"
)

// drawBoard writes the live cells of b into d over the theme background.
func drawBoard(d *display.Display, b *life.Board, th theme.Theme) error {
	d.ClearColored(th.Background)

	if th.DeadGlyph != ' ' {
		dead := display.Cell{Ch: th.DeadGlyph, Fg: th.Alive, Bg: th.Background, Attr: display.AttrDim}
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				if !b.Alive(x, y) {
					if err := d.Write(x, y, dead); err != nil {
						return err
					}
				}
			}
		}
	}

	alive := display.Cell{Ch: th.AliveGlyph, Fg: th.Alive, Bg: th.Background, Attr: display.AttrReset}
	var err error
	b.Each(func(x, y int) {
		if err == nil {
			err = d.Write(x, y, alive)
		}
	})
	return err
}

// drawStatus fills row y with text, truncated to the display width.
func drawStatus(d *display.Display, y int, text string, th theme.Theme) error {
	w, _ := d.Size()
	text = runewidth.Truncate(text, w, "…")

	x := 0
	for _, r := range text {
		if runewidth.RuneWidth(r) != 1 {
			r = '?'
		}
		if err := d.Write(x, y, display.Cell{Ch: r, Fg: th.StatusFg, Bg: th.StatusBg, Attr: display.AttrReset}); err != nil {
			return err
		}
		x++
	}
	pad := display.EmptyColored(th.StatusBg)
	for ; x < w; x++ {
		if err := d.Write(x, y, pad); err != nil {
			return err
		}
	}
	return nil
}
