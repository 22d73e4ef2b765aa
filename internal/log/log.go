// Package log provides structured logging for confit.
//
// The CLI front configures the global logger once per invocation; every
// other package obtains component-scoped children via WithComponent. The
// pipeline itself never touches process-wide state beyond this logger.
package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", ...); defaults to warn
	JSON    bool      // emit raw JSON instead of the console format
	NoColor bool      // disable ANSI colors in the console format
	Output  io.Writer // optional writer (defaults to os.Stderr)
}

var base = newLogger(Config{})

// Configure replaces the global logger. The CLI calls this once, after
// flag parsing and before any pipeline work.
func Configure(cfg Config) {
	base = newLogger(cfg)
}

func newLogger(cfg Config) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case cfg.Level != "":
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	case os.Getenv("CONFIT_LOG_LEVEL") != "":
		if parsed, err := zerolog.ParseLevel(os.Getenv("CONFIT_LOG_LEVEL")); err == nil {
			level = parsed
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{Out: out, NoColor: cfg.NoColor, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}
