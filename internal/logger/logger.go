package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger is the component-tagged logging surface shared by every package.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps LOG_LEVEL style names onto a LogLevel.
func ParseLevel(name string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "info"
	}
}

func (l LogLevel) zerologLevel() zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewStructuredLogger returns the console logger used by the application.
func NewStructuredLogger(level LogLevel) Logger {
	return NewConsoleLogger(level.zerologLevel())
}

// FromEnv resolves the level from LOG_LEVEL, falling back to DEBUG=1.
func FromEnv() LogLevel {
	if level, ok := ParseLevel(os.Getenv("LOG_LEVEL")); ok {
		return level
	}
	if os.Getenv("DEBUG") == "1" {
		return DebugLevel
	}
	return InfoLevel
}

type nopLogger struct{}

// Nop discards everything. Used by tests and by components built without a logger.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, string, map[string]interface{})   {}
func (nopLogger) Info(string, string, map[string]interface{})    {}
func (nopLogger) Warning(string, string, map[string]interface{}) {}
func (nopLogger) Error(string, error, map[string]interface{})    {}
