package logger

import (
	"sync"

	"github.com/philipp01105/lvlog/core"
)

var (
	defaultLogger *Logger
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
)

// Default returns the default logger, building it from the environment on
// first use unless SetDefault already installed one.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = FromEnv()
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// SetLevel sets the default logger's console threshold
func SetLevel(level Level) {
	Default().SetLevel(level)
}

// GetLevel returns the default logger's console threshold
func GetLevel() Level {
	return Default().Level()
}

// SetLogFile points the default logger's file sink at path
func SetLogFile(path string) error {
	return Default().SetLogFile(path)
}

// Package-level entry points. Each calls log/logf directly so the recorded
// caller is the line that called it.

// Log logs a message at the specified level using the default logger
func Log(level Level, args ...interface{}) {
	Default().log(level, args...)
}

// Logf logs a formatted message at the specified level using the default logger
func Logf(level Level, format string, args ...interface{}) {
	Default().logf(level, format, args...)
}

// Trace logs a trace message using the default logger
func Trace(args ...interface{}) {
	Default().log(core.TraceLevel, args...)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...interface{}) {
	Default().logf(core.TraceLevel, format, args...)
}

// Debug logs a debug message using the default logger
func Debug(args ...interface{}) {
	Default().log(core.DebugLevel, args...)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...interface{}) {
	Default().logf(core.DebugLevel, format, args...)
}

// Info logs an info message using the default logger
func Info(args ...interface{}) {
	Default().log(core.InfoLevel, args...)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...interface{}) {
	Default().logf(core.InfoLevel, format, args...)
}

// Critical logs a critical message using the default logger
func Critical(args ...interface{}) {
	Default().log(core.CriticalLevel, args...)
}

// Criticalf logs a formatted critical message using the default logger
func Criticalf(format string, args ...interface{}) {
	Default().logf(core.CriticalLevel, format, args...)
}

// Warning logs a warning message using the default logger
func Warning(args ...interface{}) {
	Default().log(core.WarningLevel, args...)
}

// Warningf logs a formatted warning message using the default logger
func Warningf(format string, args ...interface{}) {
	Default().logf(core.WarningLevel, format, args...)
}

// Warn is an alias for Warning
func Warn(args ...interface{}) {
	Default().log(core.WarningLevel, args...)
}

// Warnf is an alias for Warningf
func Warnf(format string, args ...interface{}) {
	Default().logf(core.WarningLevel, format, args...)
}

// Error logs an error message using the default logger
func Error(args ...interface{}) {
	Default().log(core.ErrorLevel, args...)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...interface{}) {
	Default().logf(core.ErrorLevel, format, args...)
}

// Fatal logs a fatal message using the default logger. It does not exit.
func Fatal(args ...interface{}) {
	Default().log(core.FatalLevel, args...)
}

// Fatalf logs a formatted fatal message using the default logger. It does not exit.
func Fatalf(format string, args ...interface{}) {
	Default().logf(core.FatalLevel, format, args...)
}
