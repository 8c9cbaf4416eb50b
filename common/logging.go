/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package common

import (
	"fmt"
	"os"
)

// Logger is the interface used for logging in this library.
type Logger interface {
	Error(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Notice(format string, args ...interface{})
	Info(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Trace(format string, args ...interface{})
	IsLogLevel(level LogLevel) bool
}

// LogLevel is the verbosity threshold of a logger.
type LogLevel int

// Log levels, from the most severe to the most verbose.
const (
	LogLevelError   LogLevel = 0
	LogLevelWarning LogLevel = 1
	LogLevelNotice  LogLevel = 2
	LogLevelInfo    LogLevel = 3
	LogLevelDebug   LogLevel = 4
	LogLevelTrace   LogLevel = 5
)

// Log is the logger used by the library. Silent by default.
var Log Logger = DummyLogger{}

// SetLogger sets the logger used by the library.
func SetLogger(logger Logger) {
	Log = logger
}

// DummyLogger does nothing.
type DummyLogger struct{}

// Error does nothing for dummy logger.
func (DummyLogger) Error(format string, args ...interface{}) {}

// Warning does nothing for dummy logger.
func (DummyLogger) Warning(format string, args ...interface{}) {}

// Notice does nothing for dummy logger.
func (DummyLogger) Notice(format string, args ...interface{}) {}

// Info does nothing for dummy logger.
func (DummyLogger) Info(format string, args ...interface{}) {}

// Debug does nothing for dummy logger.
func (DummyLogger) Debug(format string, args ...interface{}) {}

// Trace does nothing for dummy logger.
func (DummyLogger) Trace(format string, args ...interface{}) {}

// IsLogLevel returns false for all levels for dummy logger.
func (DummyLogger) IsLogLevel(level LogLevel) bool {
	return false
}

// ConsoleLogger logs to stdout with a severity prefix.
type ConsoleLogger struct {
	LogLevel LogLevel
}

// NewConsoleLogger creates a new console logger with verbosity `logLevel`.
func NewConsoleLogger(logLevel LogLevel) *ConsoleLogger {
	return &ConsoleLogger{LogLevel: logLevel}
}

// IsLogLevel returns true if the logger is set to output messages at `level` or above.
func (l ConsoleLogger) IsLogLevel(level LogLevel) bool {
	return l.LogLevel >= level
}

// Error logs an error message.
func (l ConsoleLogger) Error(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelError {
		l.output("[ERROR] ", format, args...)
	}
}

// Warning logs a warning message.
func (l ConsoleLogger) Warning(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelWarning {
		l.output("[WARNING] ", format, args...)
	}
}

// Notice logs a notice message.
func (l ConsoleLogger) Notice(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelNotice {
		l.output("[NOTICE] ", format, args...)
	}
}

// Info logs an informational message.
func (l ConsoleLogger) Info(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelInfo {
		l.output("[INFO] ", format, args...)
	}
}

// Debug logs a debug message.
func (l ConsoleLogger) Debug(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelDebug {
		l.output("[DEBUG] ", format, args...)
	}
}

// Trace logs a trace message.
func (l ConsoleLogger) Trace(format string, args ...interface{}) {
	if l.LogLevel >= LogLevelTrace {
		l.output("[TRACE] ", format, args...)
	}
}

func (l ConsoleLogger) output(prefix string, format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, prefix+format+"\n", args...)
}
