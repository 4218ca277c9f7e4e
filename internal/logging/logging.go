package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/dusted-go/logging/prettylog"
	"github.com/go-logr/logr"
)

// NewJSONLogger returns a logger that writes structured JSON records to
// stdout. Higher verbosity admits more detailed (lower level) records.
func NewJSONLogger(verbosity int) logr.Logger {
	return NewJSONLoggerTo(os.Stdout, verbosity)
}

// NewJSONLoggerTo is like NewJSONLogger, but writes to w.
func NewJSONLoggerTo(w io.Writer, verbosity int) logr.Logger {
	handler := slog.NewJSONHandler(
		w,
		&slog.HandlerOptions{
			Level: slog.Level(verbosity * -1),
		},
	)
	return logr.FromSlogHandler(handler)
}

// NewPrettyLogger returns a human friendly, colorized logger intended for
// interactive use.
func NewPrettyLogger(verbosity int) logr.Logger {
	prettyHandler := prettylog.NewHandler(&slog.HandlerOptions{
		Level:       slog.Level(verbosity * -1),
		AddSource:   false,
		ReplaceAttr: nil,
	})
	return logr.FromSlogHandler(prettyHandler)
}
