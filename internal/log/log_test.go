package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	defer SetLevel(slog.LevelInfo)

	var buf bytes.Buffer
	logger := New(&buf)

	SetLevel(slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("warn record missing")
	}

	SetLevel(slog.LevelDebug)
	logger.Debug("frame", "cells", 3)
	if !strings.Contains(buf.String(), "cells=3") {
		t.Errorf("debug record missing: %q", buf.String())
	}
}

func TestInitFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)
	defer SetLevel(slog.LevelInfo)

	path := filepath.Join(t.TempDir(), "termgrid.log")
	closer, err := Init(path, "info")
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	slog.Info("started", "pattern", "glider")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "pattern=glider") {
		t.Errorf("log file missing record: %q", data)
	}
}

func TestInitRejectsLevel(t *testing.T) {
	if _, err := Init("", "verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}
