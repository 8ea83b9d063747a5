//go:build !unix

package terminal

import "context"

// ResizeEvent carries the new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

// WatchResize returns a channel that never fires; SIGWINCH is Unix only.
func WatchResize(ctx context.Context, src interface {
	Size() (int, int, error)
}) <-chan ResizeEvent {
	events := make(chan ResizeEvent)
	go func() {
		<-ctx.Done()
		close(events)
	}()
	return events
}
