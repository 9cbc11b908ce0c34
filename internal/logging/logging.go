package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Open returns a JSON logger appending to path. An empty path discards
// everything; the terminal belongs to the UI while it runs.
func Open(path string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
