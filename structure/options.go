// SPDX-License-Identifier: MIT

package structure

import (
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lielath/matrix"
)

const panicWorkersInvalid = "structure: WithWorkers: n must be >= 1"

// Option configures the solvers.
type Option func(*Options)

// Options holds the resolved solver configuration.
type Options struct {
	numeric matrix.Options
	workers int
	logger  *log.Logger
	strict  bool
}

// WithTolerance sets the magnitude at or below which a coefficient is
// dropped. Panics on negative, NaN or infinite eps.
func WithTolerance(eps float64) Option {
	set := matrix.WithTolerance(eps)

	return func(o *Options) { set(&o.numeric) }
}

// WithWorkers bounds the number of goroutines solving rows concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger routes diagnostics (one Debug line per degenerate pair, one
// Warn summary) to l. A nil logger keeps the silent default.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrict makes the solvers return a *DegenerateError, alongside the
// complete table, when any degeneracy was recorded.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		numeric: matrix.Resolve(),
		workers: runtime.GOMAXPROCS(0),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
