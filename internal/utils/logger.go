// Package utils provides common utilities shared across packages
package utils

import "fmt"

// Logger defines a common logging interface used throughout the application
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger is a logger implementation that does nothing
type NoopLogger struct{}

func (l NoopLogger) Debug(format string, args ...interface{}) {}
func (l NoopLogger) Info(format string, args ...interface{})  {}
func (l NoopLogger) Warn(format string, args ...interface{})  {}
func (l NoopLogger) Error(format string, args ...interface{}) {}

// RecordingLogger keeps every formatted message, keyed by level. Used in tests
// that assert a warning or decision line was emitted.
type RecordingLogger struct {
	Lines []string
}

func (l *RecordingLogger) record(level, format string, args []interface{}) {
	l.Lines = append(l.Lines, level+": "+fmt.Sprintf(format, args...))
}

func (l *RecordingLogger) Debug(format string, args ...interface{}) { l.record("DEBUG", format, args) }
func (l *RecordingLogger) Info(format string, args ...interface{})  { l.record("INFO", format, args) }
func (l *RecordingLogger) Warn(format string, args ...interface{})  { l.record("WARN", format, args) }
func (l *RecordingLogger) Error(format string, args ...interface{}) { l.record("ERROR", format, args) }
