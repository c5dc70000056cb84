package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how loggers created by New render their output.
type Options struct {
	// Level is a zerolog level name such as "debug" or "warn".
	Level string
	// Console switches to human readable output.
	Console bool
	// Out receives log lines. Defaults to stderr so stdout stays free for
	// command results.
	Out io.Writer
}

var (
	optsMu  sync.RWMutex
	current = Options{Level: "info"}
)

// Configure sets the options used by subsequently created loggers. Console
// output is also enabled when APP_ENV is "dev".
func Configure(opts Options) error {
	if opts.Level == "" {
		opts.Level = "info"
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(opts.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	optsMu.Lock()
	current = opts
	optsMu.Unlock()
	return nil
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger. All logs include the provided
// component field.
func NewZerologLogger(component string) Logger {
	optsMu.RLock()
	opts := current
	optsMu.RUnlock()

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Console || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	z := zerolog.New(out).Level(lvl).With().Timestamp().Str("component", component).Logger()
	return &ZerologLogger{log: z}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
