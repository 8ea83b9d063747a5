package life

import (
	"bufio"
	"fmt"
	"strings"
)

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name        string
	Description string
	Width       int
	Height      int
	Cells       [][2]int // x, y
}

// ParseCells reads the plaintext .cells format: lines starting with '!' are
// comments ("!Name: ..." sets the name), 'O' or '*' is alive, '.' is dead.
func ParseCells(src string) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(strings.NewReader(src))
	y := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			comment := strings.TrimSpace(line[1:])
			if name, ok := strings.CutPrefix(comment, "Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else if p.Description == "" && comment != "" {
				p.Description = comment
			}
			continue
		}

		for x, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, [2]int{x, y})
			case '.':
			default:
				return nil, fmt.Errorf("cells line %d: unexpected %q", y+1, ch)
			}
		}
		p.Width = max(p.Width, len(line))
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading cells: %w", err)
	}
	p.Height = y
	return p, nil
}

// FromBoard captures the live cells of b, trimmed to their bounding box.
func FromBoard(name string, b *Board) *Pattern {
	p := &Pattern{Name: name}
	minX, minY := b.Width(), b.Height()
	maxX, maxY := -1, -1
	b.Each(func(x, y int) {
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	})
	if maxX < 0 {
		return p
	}
	b.Each(func(x, y int) {
		p.Cells = append(p.Cells, [2]int{x - minX, y - minY})
	})
	p.Width = maxX - minX + 1
	p.Height = maxY - minY + 1
	return p
}

// Board returns the pattern on a board of exactly its size.
func (p *Pattern) Board() *Board {
	b := NewBoard(p.Width, p.Height)
	p.Place(b, 0, 0, false)
	return b
}

// Place sets the pattern's cells on b with its corner at (x, y). With wrap,
// cells past an edge continue on the opposite side; otherwise they are
// dropped.
func (p *Pattern) Place(b *Board, x, y int, wrap bool) {
	for _, c := range p.Cells {
		px, py := x+c[0], y+c[1]
		if wrap && b.Width() > 0 && b.Height() > 0 {
			px, py = mod(px, b.Width()), mod(py, b.Height())
		}
		b.Set(px, py, true)
	}
}

// PlaceCentered places the pattern in the middle of b.
func (p *Pattern) PlaceCentered(b *Board, wrap bool) {
	p.Place(b, (b.Width()-p.Width)/2, (b.Height()-p.Height)/2, wrap)
}

// Format renders the pattern in .cells form.
func (p *Pattern) Format() string {
	var sb strings.Builder
	if p.Name != "" {
		sb.WriteString("!Name: " + p.Name + "\n")
	}
	if p.Description != "" {
		sb.WriteString("!" + p.Description + "\n")
	}
	b := p.Board()
	for y := 0; y < b.Height(); y++ {
		row := make([]byte, b.Width())
		for x := range row {
			row[x] = '.'
			if b.Alive(x, y) {
				row[x] = 'O'
			}
		}
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
