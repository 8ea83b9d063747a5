package display

import "github.com/gdamore/tcell/v2"

// grid is a fixed-size row-major frame buffer: cells[y*width + x].
type grid struct {
	width  int
	height int
	cells  []Cell
}

func newGrid(width, height int, fill Cell) *grid {
	g := &grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	g.fill(fill)
	return g
}

func (g *grid) fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

func (g *grid) row(y int) []Cell {
	start := y * g.width
	return g.cells[start : start+g.width]
}

// FrameStats summarises the last successful render.
type FrameStats struct {
	Full  bool // no baseline existed, every cell was emitted
	Moves int  // cursor moves issued
	Cells int  // cells emitted
}

// Display owns the current and previous frame buffers and reconciles them
// against a Sink on Render.
type Display struct {
	sink     Sink
	current  *grid
	previous *grid // nil when no valid baseline exists
	width    int
	height   int
	last     FrameStats
}

// New sizes a Display from src. No Display is produced if the query fails.
func New(src DimensionSource, sink Sink) (*Display, error) {
	w, h, err := src.Size()
	if err != nil {
		return nil, &DimensionQueryError{Wrapped: err}
	}
	return NewSized(w, h, sink), nil
}

// NewSized creates a Display of the given size.
func NewSized(width, height int, sink Sink) *Display {
	d := &Display{sink: sink}
	d.Resize(width, height)
	return d
}

// Size returns the current grid dimensions.
func (d *Display) Size() (width, height int) {
	return d.width, d.height
}

// Resize reallocates the current buffer at the new size and drops the
// baseline, so the next Render is a full repaint. Must not be called while a
// Render is in progress.
func (d *Display) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)

	d.current = newGrid(width, height, Empty())
	d.previous = nil
	d.width = width
	d.height = height
}

// Write replaces the cell at column x, row y of the current frame.
func (d *Display) Write(x, y int, c Cell) error {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return &BoundsError{X: x, Y: y, Width: d.width, Height: d.height}
	}
	d.current.cells[y*d.width+x] = c
	return nil
}

// Cell returns the cell at (x, y) of the frame being assembled.
func (d *Display) Cell(x, y int) (Cell, bool) {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return Cell{}, false
	}
	return d.current.cells[y*d.width+x], true
}

// Clear fills the current frame with empty cells.
func (d *Display) Clear() {
	d.current.fill(Empty())
}

// ClearColored fills the current frame with empty cells on bg.
func (d *Display) ClearColored(bg tcell.Color) {
	d.current.fill(EmptyColored(bg))
}

// HasBaseline reports whether the next Render will be a delta repaint.
func (d *Display) HasBaseline() bool {
	return d.previous != nil
}

// Invalidate drops the baseline so the next Render repaints every cell.
func (d *Display) Invalidate() {
	d.previous = nil
}

// Reset clears the output surface and drops the baseline. Use it when the
// physical screen may no longer match what was last rendered.
func (d *Display) Reset() error {
	if err := d.sink.Clear(); err != nil {
		return &SinkError{Op: "clear", Wrapped: err}
	}
	if err := d.sink.Flush(); err != nil {
		return &SinkError{Op: "flush", Wrapped: err}
	}
	d.previous = nil
	return nil
}

// LastFrame returns statistics for the last successful Render.
func (d *Display) LastFrame() FrameStats {
	return d.last
}

// Render sends the current frame to the sink, emitting only the cells that
// differ from the previous frame, then flushes once. On success the rendered
// buffer becomes the baseline and the current buffer starts over empty. On
// failure nothing rotates and the error is a *SinkError.
func (d *Display) Render() error {
	var (
		stats FrameStats
		err   error
	)
	if d.previous == nil {
		stats, err = d.repaintFull()
	} else {
		stats, err = d.repaintDelta()
	}
	if err != nil {
		return err
	}

	if err := d.sink.Flush(); err != nil {
		return &SinkError{Op: "flush", Wrapped: err}
	}

	d.previous = d.current
	d.current = newGrid(d.width, d.height, Empty())
	d.last = stats
	return nil
}

// repaintFull streams every row after a single cursor move to its start.
func (d *Display) repaintFull() (FrameStats, error) {
	stats := FrameStats{Full: true}
	for y := 0; y < d.height; y++ {
		if err := d.sink.MoveTo(0, y); err != nil {
			return stats, &SinkError{Op: "move", Wrapped: err}
		}
		stats.Moves++

		for _, c := range d.current.row(y) {
			if err := c.RenderTo(d.sink); err != nil {
				return stats, &SinkError{Op: "cell", Wrapped: err}
			}
			stats.Cells++
		}
	}
	return stats, nil
}

// repaintDelta emits a cursor move and the cell for every changed position.
func (d *Display) repaintDelta() (FrameStats, error) {
	var stats FrameStats
	for y := 0; y < d.height; y++ {
		cur := d.current.row(y)
		prev := d.previous.row(y)

		for x, c := range cur {
			if c == prev[x] {
				continue
			}
			if err := d.sink.MoveTo(x, y); err != nil {
				return stats, &SinkError{Op: "move", Wrapped: err}
			}
			stats.Moves++

			if err := c.RenderTo(d.sink); err != nil {
				return stats, &SinkError{Op: "cell", Wrapped: err}
			}
			stats.Cells++
		}
	}
	return stats, nil
}
