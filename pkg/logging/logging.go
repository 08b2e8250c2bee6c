// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.Setup()                                   // level from LOG_LEVEL
//	logging.Configure(logging.Options{Level: slog.LevelWarn})
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options controls the handler installed by Configure.
type Options struct {
	Level slog.Level

	// Output defaults to os.Stderr.
	Output io.Writer

	// AddSource adds the file:line of the log call.
	AddSource bool
}

// Setup configures colored logging on stderr at the level specified by the
// LOG_LEVEL env var (default: INFO).
func Setup() {
	Configure(Options{Level: LevelFromEnv(), AddSource: true})
}

// Configure installs a tint handler as the slog default and returns the
// logger. Colors are disabled when the output is not a terminal.
func Configure(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger := slog.New(tint.NewHandler(out, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.Kitchen,
		AddSource:  opts.AddSource,
		NoColor:    !isTerminal(out),
	}))
	slog.SetDefault(logger)
	return logger
}

// LevelFromEnv reads LOG_LEVEL.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}

// ParseLevel maps a level name to a slog.Level. Unknown names are INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
