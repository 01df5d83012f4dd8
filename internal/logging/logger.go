// Package logging provides the debug log and the per-run analysis report.
// The progress UI owns the terminal, so log output always goes to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// NewDebugLogger opens a text slog logger writing to path at debug level.
// The returned closer flushes and closes the underlying file.
func NewDebugLogger(path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), f.Close, nil
}

// Discard returns a logger that drops everything, for runs without --logs.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
