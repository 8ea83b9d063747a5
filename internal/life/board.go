package life

import "math/rand"

// Board is a row-major grid of cells.
type Board struct {
	width  int
	height int
	cells  []bool
}

func NewBoard(width, height int) *Board {
	width = max(width, 0)
	height = max(height, 0)
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Random fills a new board so that each cell is alive with the given
// probability.
func Random(width, height int, density float64, seed int64) *Board {
	b := NewBoard(width, height)
	rng := rand.New(rand.NewSource(seed))
	for i := range b.cells {
		b.cells[i] = rng.Float64() < density
	}
	return b
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Alive reports whether (x, y) is alive. Positions outside are dead.
func (b *Board) Alive(x, y int) bool {
	if !b.inside(x, y) {
		return false
	}
	return b.cells[y*b.width+x]
}

// Set changes (x, y); positions outside are ignored.
func (b *Board) Set(x, y int, alive bool) {
	if b.inside(x, y) {
		b.cells[y*b.width+x] = alive
	}
}

// Toggle flips (x, y).
func (b *Board) Toggle(x, y int) {
	if b.inside(x, y) {
		b.cells[y*b.width+x] = !b.cells[y*b.width+x]
	}
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = false
	}
}

func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	c := &Board{width: b.width, height: b.height, cells: make([]bool, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

func (b *Board) Equal(o *Board) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Diff counts positions whose state differs. Boards of different sizes
// compare over their overlap only.
func (b *Board) Diff(o *Board) int {
	w := min(b.width, o.width)
	h := min(b.height, o.height)
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.cells[y*b.width+x] != o.cells[y*o.width+x] {
				n++
			}
		}
	}
	return n
}

// Resized returns a board of the new size holding the overlapping cells.
func (b *Board) Resized(width, height int) *Board {
	r := NewBoard(width, height)
	w := min(b.width, r.width)
	h := min(b.height, r.height)
	for y := 0; y < h; y++ {
		copy(r.cells[y*r.width:y*r.width+w], b.cells[y*b.width:y*b.width+w])
	}
	return r
}

// Each calls fn for every live cell in row-major order.
func (b *Board) Each(fn func(x, y int)) {
	for i, c := range b.cells {
		if c {
			fn(i%b.width, i/b.width)
		}
	}
}

// Neighbors counts live cells among the eight around (x, y).
func (b *Board) Neighbors(x, y int, wrap bool) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if wrap {
				nx = mod(nx, b.width)
				ny = mod(ny, b.height)
			}
			if b.Alive(nx, ny) {
				n++
			}
		}
	}
	return n
}

// Next computes the following generation under rule.
func (b *Board) Next(rule Rule, wrap bool) *Board {
	next := NewBoard(b.width, b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			n := b.Neighbors(x, y, wrap)
			next.cells[y*b.width+x] = rule.Apply(b.cells[y*b.width+x], n)
		}
	}
	return next
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
