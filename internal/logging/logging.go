// Package logging builds the structured logger shared by the function apps.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a slog.Logger backed by a charmbracelet handler. Unknown levels
// fall back to info; format is "text" or "json".
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	formatter := log.TextFormatter
	if format == "json" {
		formatter = log.JSONFormatter
	}
	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
