package logging

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
)

// Level represents logging verbosity
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}

// ParseLevel parses ERROR, WARN, INFO or DEBUG (case-insensitive)
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "", "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	}
	return LevelInfo, errors.Newf("unknown log level %q", s)
}

// Logger provides leveled logging
type Logger struct {
	level Level
	out   *log.Logger
}

// New creates a logger writing to w
func New(w io.Writer, level Level) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewStderr creates a logger writing to standard error
func NewStderr(level Level) *Logger {
	return New(os.Stderr, level)
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return New(io.Discard, LevelError)
}

// Level returns the current log level
func (l *Logger) Level() Level {
	return l.level
}

// SetLevel changes the log level
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if l.level >= level {
		l.out.Printf("["+level.String()+"] "+format, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, format, args...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, format, args...)
}

// Info logs info messages
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, format, args...)
}

// Debug logs debug messages
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, format, args...)
}
