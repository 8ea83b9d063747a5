// Package log configures the process-wide slog logger. While the terminal is
// in raw mode stdout and stderr belong to the screen, so records go to a file
// or nowhere.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var level = new(slog.LevelVar)

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func SetLevel(l slog.Level) { level.Set(l) }

func GetLevel() slog.Level { return level.Level() }

// Init installs a text handler writing to path as the default logger. An empty
// path discards all records. The returned closer releases the file.
func Init(path, lvl string) (io.Closer, error) {
	l, err := ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	level.Set(l)

	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})))
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(New(f))
	return f, nil
}

// New returns a logger over w that honours the package level.
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
