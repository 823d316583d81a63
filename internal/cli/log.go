package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the logger shared by all gltfx commands. It writes to
// w, filters at level, and stamps each line with "HH:MM:SS.ms" so pipeline
// stages (load, validate, render) can be read against their timings.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command run from construction to done. Commands
// create it before loading a document and report through it after the
// last artifact is written. Single goroutine only.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock for a command run.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to the millisecond,
// e.g. "Rendered 3 formats (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keeps this package's context values from colliding with keys
// defined elsewhere.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the command logger to ctx. The root command does
// this once in its PersistentPreRun so every subcommand, and the HTTP
// handlers under serve, log through the same configured instance.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when the context never passed through the root command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
