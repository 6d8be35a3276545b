// Package cli implements the lielath command-line interface.
//
// # Commands
//
//   - basis: print the elements of a generated basis
//   - constants: print the structure constants or d-coefficients of a basis
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces one line per degenerate decomposition. Loggers are passed
// through context.Context.
//
// # Configuration
//
// An optional TOML file (--config) may set tolerance, workers and
// log_level; flags given on the command line take precedence.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// timestamps formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
