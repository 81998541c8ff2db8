// Package internal holds process-wide helpers shared by the library and CLI.
package internal

import (
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel represents logging verbosity.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel maps ERROR, WARN, INFO or DEBUG (any case) to a level.
// Unknown names yield LogLevelInfo and false.
func ParseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError, true
	case "WARN", "WARNING":
		return LogLevelWarn, true
	case "INFO":
		return LogLevelInfo, true
	case "DEBUG":
		return LogLevelDebug, true
	}
	return LogLevelInfo, false
}

// Logger provides leveled logging over the standard log package.
type Logger struct {
	level LogLevel
	out   *log.Logger
}

// NewLogger creates a logger writing to w at the given level.
func NewLogger(w io.Writer, level LogLevel) *Logger {
	return &Logger{level: level, out: log.New(w, "", log.LstdFlags)}
}

// NewDefaultLogger creates a stderr logger whose level comes from LOG_LEVEL.
func NewDefaultLogger() *Logger {
	level, _ := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	return NewLogger(os.Stderr, level)
}

// SetLevel changes the logger's verbosity.
func (l *Logger) SetLevel(level LogLevel) { l.level = level }

// Level returns the current verbosity.
func (l *Logger) Level() LogLevel { return l.level }

func (l *Logger) Error(format string, args ...any) {
	if l.level >= LogLevelError {
		l.out.Printf("[ERROR] "+format, args...)
	}
}

func (l *Logger) Warn(format string, args ...any) {
	if l.level >= LogLevelWarn {
		l.out.Printf("[WARN] "+format, args...)
	}
}

func (l *Logger) Info(format string, args ...any) {
	if l.level >= LogLevelInfo {
		l.out.Printf("[INFO] "+format, args...)
	}
}

func (l *Logger) Debug(format string, args ...any) {
	if l.level >= LogLevelDebug {
		l.out.Printf("[DEBUG] "+format, args...)
	}
}

// DefaultLogger is the process-wide logger.
var DefaultLogger = NewDefaultLogger()
