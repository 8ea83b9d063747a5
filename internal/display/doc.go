// Package display implements a double-buffered, diff-based renderer for
// character-grid displays.
//
// A [Display] owns two frame buffers: the current frame being assembled by the
// caller and the previous frame, which is exactly what was last sent to the
// [Sink]. Rendering compares the two cell by cell and only emits cursor moves
// and cells for positions that changed:
//
//	d, err := display.New(term, sink)
//	if err != nil {
//	    return err
//	}
//	d.ClearColored(bg)
//	_ = d.Write(1, 0, display.Cell{Ch: '#', Fg: tcell.ColorWhite, Bg: bg, Attr: display.AttrBold})
//	if err := d.Render(); err != nil {
//	    return err
//	}
//
// # Immediate Mode
//
// The current buffer is wiped after every successful render, so callers redraw
// the whole frame every time. Only the cells that differ from the previous
// frame reach the sink.
//
// # Full Repaints
//
// The first render, the first render after [Display.Resize] and the first
// render after [Display.Invalidate] or [Display.Reset] repaint every cell.
//
// A Display is not safe for concurrent use.
package display
