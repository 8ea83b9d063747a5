package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/termgrid/internal/life"
	"github.com/san-kum/termgrid/internal/theme"
)

// BoardToSVG draws every live cell as a scale×scale square over the theme
// background.
func BoardToSVG(b *life.Board, scale float64, th theme.Theme) string {
	if b == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	width := float64(b.Width()) * scale
	height := float64(b.Height()) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, theme.Hex(th.Background), theme.Hex(th.Alive)))

	b.Each(func(x, y int) {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, float64(x)*scale, float64(y)*scale, scale, scale))
	})

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG plots a population series as a polyline.
func PopulationToSVG(pops []int, width, height int, strokeColor string) string {
	if len(pops) < 2 {
		return ""
	}

	maxPop := 1
	for _, p := range pops {
		maxPop = max(maxPop, p)
	}

	padding := 20.0
	plotW := float64(width) - 2*padding
	plotH := float64(height) - 2*padding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<polyline fill="none" stroke="%s" stroke-width="2" points="`, width, height, width, height, strokeColor))

	for i, p := range pops {
		x := padding + float64(i)/float64(len(pops)-1)*plotW
		y := padding + (1-float64(p)/float64(maxPop))*plotH
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
	}

	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}

func SaveSVG(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
