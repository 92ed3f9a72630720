// Package applog builds the shared stderr logger. Progress and tallies go
// through slog so downstream pipes only ever see table data on stdout.
package applog

import (
	"io"
	"log/slog"
)

func New(stderr io.Writer, quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}
