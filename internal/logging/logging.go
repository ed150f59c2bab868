package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"
)

// New returns a slog logger backed by pterm's handler, writing to w at the
// named level. Unknown levels fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	logger := pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(parseLevel(level))

	return slog.New(pterm.NewSlogHandler(logger))
}

func parseLevel(level string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return pterm.LogLevelTrace
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
