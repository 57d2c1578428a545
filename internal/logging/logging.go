// Package logging installs the process-wide slog logger. The terminal owns
// stdout while the form is open, so debug output only ever goes to a file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup installs the default logger. With debug off, records are dropped.
// With debug on, they are appended to path and the returned close function
// must be called on exit.
func Setup(debug bool, path string) (func() error, error) {
	if !debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "panseq")
	if err != nil {
		return nil, err
	}
	slog.SetDefault(New(f, slog.LevelDebug))
	return f.Close, nil
}

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
