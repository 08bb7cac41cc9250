// Package logging builds the diagnostic logger shared by every component.
// Records go through log/slog and are printed by pterm.
package logging

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// New returns a logger writing to out. Debug records are only printed when
// verbose is set.
func New(out io.Writer, verbose bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}

	logger := pterm.DefaultLogger.
		WithWriter(out).
		WithLevel(level).
		WithTime(false)

	return slog.New(pterm.NewSlogHandler(logger))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
