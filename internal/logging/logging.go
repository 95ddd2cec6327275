// Package logging provides category-switched structured logging for the
// training engine.
//
// Each category can be toggled as a whole. The configuration is a plain
// value handed to whatever component logs, so there is no process-wide
// state to reset between runs.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Category is a class of log messages that is enabled or disabled as a unit.
type Category int

const (
	Info Category = iota
	Warning
	Error
	Debug
	Training
	numCategories
)

var categoryNames = [numCategories]string{"info", "warning", "error", "debug", "training"}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "unknown"
	}
	return categoryNames[c]
}

func (c Category) level() slog.Level {
	switch c {
	case Warning:
		return slog.LevelWarn
	case Error:
		return slog.LevelError
	case Debug, Training:
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Config selects the output handler and the enabled categories.
type Config struct {
	// Handler receives the records. Nil means a text handler on stderr.
	Handler slog.Handler

	Info     bool
	Warning  bool
	Error    bool
	Debug    bool
	Training bool
}

// DefaultConfig enables info, warning and error messages.
func DefaultConfig() Config {
	return Config{Info: true, Warning: true, Error: true}
}

// Logger writes records for the enabled categories.
type Logger struct {
	base    *slog.Logger
	enabled [numCategories]bool
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	h := cfg.Handler
	if h == nil {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &Logger{
		base:    slog.New(h),
		enabled: [numCategories]bool{cfg.Info, cfg.Warning, cfg.Error, cfg.Debug, cfg.Training},
	}
}

// NewText is a shorthand for a text handler writing to w.
func NewText(w io.Writer, cfg Config) *Logger {
	cfg.Handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return New(cfg)
}

// Discard returns a Logger with every category disabled.
func Discard() *Logger {
	return New(Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

// Enabled reports whether c is switched on.
func (l *Logger) Enabled(c Category) bool {
	return l != nil && c >= 0 && c < numCategories && l.enabled[c]
}

// SetEnabled toggles a whole category.
func (l *Logger) SetEnabled(c Category, on bool) {
	if c >= 0 && c < numCategories {
		l.enabled[c] = on
	}
}

// With returns a Logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	c := *l
	c.base = l.base.With(args...)
	return &c
}

// Log emits msg under category c if it is enabled.
func (l *Logger) Log(c Category, msg string, args ...any) {
	if !l.Enabled(c) {
		return
	}
	l.base.Log(context.Background(), c.level(), msg, append(args, slog.String("category", c.String()))...)
}

func (l *Logger) Info(msg string, args ...any)     { l.Log(Info, msg, args...) }
func (l *Logger) Warning(msg string, args ...any)  { l.Log(Warning, msg, args...) }
func (l *Logger) Error(msg string, args ...any)    { l.Log(Error, msg, args...) }
func (l *Logger) Debug(msg string, args ...any)    { l.Log(Debug, msg, args...) }
func (l *Logger) Training(msg string, args ...any) { l.Log(Training, msg, args...) }
