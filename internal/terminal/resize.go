//go:build unix

package terminal

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ResizeEvent carries the new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

// WatchResize delivers a ResizeEvent for every SIGWINCH until ctx is done.
// Only the latest pending size is kept.
func WatchResize(ctx context.Context, src interface {
	Size() (int, int, error)
}) <-chan ResizeEvent {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, unix.SIGWINCH)

	events := make(chan ResizeEvent, 1)
	go func() {
		defer signal.Stop(sigCh)
		defer close(events)

		for {
			select {
			case <-ctx.Done():
				return
			case <-sigCh:
				w, h, err := src.Size()
				if err != nil {
					slog.Warn("resize query failed", "err", err)
					continue
				}
				sendLatest(events, ResizeEvent{Width: w, Height: h})
			}
		}
	}()
	return events
}

// sendLatest replaces any undelivered event with ev.
func sendLatest(ch chan ResizeEvent, ev ResizeEvent) {
	select {
	case ch <- ev:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- ev:
	default:
	}
}
