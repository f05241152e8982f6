package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the log level
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
	// FatalLevel logs then exits the process
	FatalLevel LogLevel = "fatal"
)

// Config represents logger configuration
type Config struct {
	Level LogLevel
	// Pretty switches to the human-readable console writer
	Pretty bool
	// Output defaults to os.Stdout
	Output io.Writer
}

var base zerolog.Logger

// ParseLevel converts a config string into a LogLevel, falling back to info.
func ParseLevel(level string) LogLevel {
	switch LogLevel(strings.ToLower(strings.TrimSpace(level))) {
	case DebugLevel:
		return DebugLevel
	case WarnLevel, "warning":
		return WarnLevel
	case ErrorLevel:
		return ErrorLevel
	case FatalLevel:
		return FatalLevel
	default:
		return InfoLevel
	}
}

func (l LogLevel) zerolog() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	case FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Configure replaces the global logger. The zerolog global logger is kept in sync so
// packages logging through github.com/rs/zerolog/log see the same settings.
func Configure(cfg Config) zerolog.Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.Level.zerolog())

	writer := cfg.Output
	if cfg.Pretty {
		writer = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	base = zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = base
	return base
}

// Get returns the configured global logger
func Get() zerolog.Logger {
	return base
}

// Component returns a child logger tagged with the component name
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return base.Debug() }

func Info() *zerolog.Event { return base.Info() }

func Warn() *zerolog.Event { return base.Warn() }

func Error() *zerolog.Event { return base.Error() }

// Fatal logs at fatal level and exits
func Fatal() *zerolog.Event { return base.Fatal() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true, Output: os.Stdout})
}
