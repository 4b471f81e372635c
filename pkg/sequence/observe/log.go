package observe

import (
	"log/slog"

	"github.com/vnykmshr/golazy/pkg/sequence/lazy"
)

// LogLevel represents the severity level for logging messages.
type LogLevel string

const (
	// LogLevelDebug is used for detailed information.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo is used for general information messages.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn is used for warning conditions.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError is used for error conditions.
	LogLevelError LogLevel = "error"
)

// Logger defines an interface for logging at different severity levels.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogConfig holds configuration for the Log adaptor. Zero fields take the
// values from DefaultLogConfig.
type LogConfig struct {
	// Logger receives the messages. Defaults to slog.Default().
	Logger Logger

	// Name identifies the cursor in every message as the "cursor" attribute.
	Name string

	// Args are additional arguments to include in all log messages.
	Args []any

	// LevelValue is the level used for every produced value.
	// Defaults to LogLevelDebug.
	LevelValue LogLevel
	// LevelDone is the level used when the cursor reports done.
	// Defaults to LogLevelDebug.
	LevelDone LogLevel
	// LevelFailure is the level used when Next fails.
	// Defaults to LogLevelError.
	LevelFailure LogLevel

	// MessageValue defaults to "GOLAZY: Value".
	MessageValue string
	// MessageDone defaults to "GOLAZY: Done".
	MessageDone string
	// MessageFailure defaults to "GOLAZY: Failure".
	MessageFailure string
}

// DefaultLogConfig returns the configuration used for unset LogConfig fields.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Logger:         slog.Default(),
		LevelValue:     LogLevelDebug,
		LevelDone:      LogLevelDebug,
		LevelFailure:   LogLevelError,
		MessageValue:   "GOLAZY: Value",
		MessageDone:    "GOLAZY: Done",
		MessageFailure: "GOLAZY: Failure",
	}
}

func (c LogConfig) withDefaults() LogConfig {
	d := DefaultLogConfig()
	if c.Logger == nil {
		c.Logger = d.Logger
	}
	if c.LevelValue == "" {
		c.LevelValue = d.LevelValue
	}
	if c.LevelDone == "" {
		c.LevelDone = d.LevelDone
	}
	if c.LevelFailure == "" {
		c.LevelFailure = d.LevelFailure
	}
	if c.MessageValue == "" {
		c.MessageValue = d.MessageValue
	}
	if c.MessageDone == "" {
		c.MessageDone = d.MessageDone
	}
	if c.MessageFailure == "" {
		c.MessageFailure = d.MessageFailure
	}
	return c
}

func (c LogConfig) log(level LogLevel, msg string, args ...any) {
	args = append(append(args, c.Args...), "cursor", c.Name)
	switch level {
	case LogLevelInfo:
		c.Logger.Info(msg, args...)
	case LogLevelWarn:
		c.Logger.Warn(msg, args...)
	case LogLevelError:
		c.Logger.Error(msg, args...)
	default:
		c.Logger.Debug(msg, args...)
	}
}

// logSource logs each step of its upstream.
type logSource[T any] struct {
	src     *lazy.Cursor[T]
	cfg     LogConfig
	index   int
	wasDone bool
}

// Log passes seq through unchanged, logging every value, the transition to
// done and every failure. Repeated done reports are logged once until a new
// value appears, as happens between Cycle laps.
func Log[T any](seq lazy.Sequence[T], cfg LogConfig) *lazy.Cursor[T] {
	return lazy.New[T](&logSource[T]{src: lazy.Iter(seq), cfg: cfg.withDefaults()})
}

func (s *logSource[T]) Next() (T, bool, error) {
	v, ok, err := s.src.Next()
	switch {
	case err != nil:
		s.cfg.log(s.cfg.LevelFailure, s.cfg.MessageFailure, "error", err)
	case ok:
		s.cfg.log(s.cfg.LevelValue, s.cfg.MessageValue, "index", s.index, "value", v)
		s.index++
		s.wasDone = false
	case !s.wasDone:
		s.cfg.log(s.cfg.LevelDone, s.cfg.MessageDone, "count", s.index)
		s.wasDone = true
	}
	return v, ok, err
}
