package logger

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/lvlog/core"
	"github.com/philipp01105/lvlog/formatter"
	"github.com/philipp01105/lvlog/handler"
	"github.com/philipp01105/lvlog/handler/consolehandler"
	"github.com/philipp01105/lvlog/handler/filehandler"
	"github.com/philipp01105/lvlog/handler/multihandler"
)

// callerSkip is the runtime.Caller depth of the user's call site as seen
// from GetCaller: GetCaller, log/logf, the public entry point, the caller.
// Every public entry point must call log or logf directly.
const callerSkip = 3

// ColorMode Re-export type and constants for convenience
type ColorMode = consolehandler.ColorMode

const (
	ColorAuto   = consolehandler.ColorAuto
	ColorAlways = consolehandler.ColorAlways
	ColorNever  = consolehandler.ColorNever
)

// Logger writes leveled lines to a console sink, filtered by a threshold,
// and to an optional file sink that receives every line.
type Logger struct {
	level   *AtomicLevel
	console *handler.LevelFilter
	fmtCfg  formatter.Config

	mu      sync.RWMutex // guards file and sinks
	file    *filehandler.FileHandler
	sinks   *multihandler.MultiHandler
	hasFile atomic.Bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	level     core.Level
	writer    io.Writer
	noConsole bool
	color     ColorMode
	filePath  string
	fmtCfg    formatter.Config
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithLevel sets the console threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithConsole sets the console writer (default: stdout)
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.writer = w
	b.noConsole = false
	return b
}

// WithoutConsole disables the console sink
func (b *Builder) WithoutConsole() *Builder {
	b.noConsole = true
	return b
}

// WithColor sets when console lines are colour-coded
func (b *Builder) WithColor(mode ColorMode) *Builder {
	b.color = mode
	return b
}

// WithFile sets the log file path; empty means no file sink
func (b *Builder) WithFile(path string) *Builder {
	b.filePath = path
	return b
}

// WithFormatter sets the line layout options shared by both sinks
func (b *Builder) WithFormatter(cfg formatter.Config) *Builder {
	b.fmtCfg = cfg
	return b
}

// Build creates the Logger instance. A log file that cannot be opened
// leaves the logger with an inert file sink; see LogFileErr.
func (b *Builder) Build() *Logger {
	l := &Logger{
		level:  NewAtomicLevel(b.level),
		fmtCfg: b.fmtCfg,
	}
	if !b.noConsole {
		ch := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    b.writer,
			Formatter: formatter.NewTextFormatter(b.fmtCfg),
			Color:     b.color,
		})
		l.console = handler.NewLevelFilter(ch, l.level)
	}
	_ = l.SetLogFile(b.filePath)
	return l
}

// Level returns the console threshold
func (l *Logger) Level() Level {
	return l.level.Level()
}

// SetLevel changes the console threshold. It applies to calls made after
// it returns.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level)
}

// SetLogFile opens path in append mode and makes it the file sink,
// closing the previous one. An empty path removes the file sink.
//
// If path cannot be opened the previous sink is still closed and the
// logger keeps running with an inert file sink; the error is returned but
// may be ignored.
func (l *Logger) SetLogFile(path string) error {
	var next *filehandler.FileHandler
	var err error
	if path != "" {
		next, err = filehandler.Open(filehandler.FileConfig{
			Filename:  path,
			Formatter: formatter.NewTextFormatter(l.fmtCfg),
		})
	}

	l.mu.Lock()
	prev := l.file
	l.file = next
	l.hasFile.Store(next != nil)
	l.rebuildSinks()
	l.mu.Unlock()

	if prev != nil {
		err = multierr.Append(err, prev.Close())
	}
	return err
}

// rebuildSinks must be called with mu held.
func (l *Logger) rebuildSinks() {
	var hs []handler.Handler
	if l.console != nil {
		hs = append(hs, l.console)
	}
	if l.file != nil {
		hs = append(hs, l.file)
	}
	l.sinks = multihandler.New(hs...)
}

// LogFile returns the configured log file path, or "" when there is none.
func (l *Logger) LogFile() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.file == nil {
		return ""
	}
	return l.file.Filename()
}

// LogFileErr returns the error that left the file sink inert, or nil.
func (l *Logger) LogFileErr() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.file == nil {
		return nil
	}
	return l.file.Err()
}

// ConsoleStats returns the console sink's write statistics
func (l *Logger) ConsoleStats() handler.Snapshot {
	if l.console == nil {
		return handler.Snapshot{}
	}
	return l.console.Stats()
}

// FileStats returns the current file sink's write statistics
func (l *Logger) FileStats() handler.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.file == nil {
		return handler.Snapshot{}
	}
	return l.file.Stats()
}

// Close closes the logger's sinks
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.sinks.Close()
	l.file = nil
	l.hasFile.Store(false)
	l.sinks = multihandler.New()
	return err
}

// wants reports whether a record at level would reach any sink.
func (l *Logger) wants(level core.Level) bool {
	return (l.console != nil && l.level.Enabled(level)) || l.hasFile.Load()
}

func (l *Logger) logf(level core.Level, format string, args ...interface{}) {
	// Exit before rendering or walking the stack when nothing would be written.
	if !l.wants(level) {
		return
	}
	caller := core.GetCaller(callerSkip)
	l.dispatch(level, formatter.Render(format, args...), caller)
}

func (l *Logger) log(level core.Level, args ...interface{}) {
	if !l.wants(level) {
		return
	}
	caller := core.GetCaller(callerSkip)
	l.dispatch(level, formatter.RenderArgs(args...), caller)
}

// dispatch fans the record out to the sinks. Sink errors are dropped:
// log calls have no error channel, and Stats records the failures.
func (l *Logger) dispatch(level core.Level, msg string, caller core.CallerInfo) {
	entry := core.GetEntry()
	entry.Time = time.Now()
	entry.Level = level
	entry.Message = msg
	entry.Caller = caller

	l.mu.RLock()
	_ = l.sinks.Handle(entry)
	l.mu.RUnlock()

	core.PutEntry(entry)
}

// Log logs a message built from args at the specified level
func (l *Logger) Log(level core.Level, args ...interface{}) {
	l.log(level, args...)
}

// Logf logs a formatted message at the specified level
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) {
	l.logf(level, format, args...)
}

// Trace logs a trace message
func (l *Logger) Trace(args ...interface{}) {
	l.log(core.TraceLevel, args...)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(core.TraceLevel, format, args...)
}

// Debug logs a debug message
func (l *Logger) Debug(args ...interface{}) {
	l.log(core.DebugLevel, args...)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.DebugLevel, format, args...)
}

// Info logs an info message
func (l *Logger) Info(args ...interface{}) {
	l.log(core.InfoLevel, args...)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.InfoLevel, format, args...)
}

// Critical logs a critical message
func (l *Logger) Critical(args ...interface{}) {
	l.log(core.CriticalLevel, args...)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.logf(core.CriticalLevel, format, args...)
}

// Warning logs a warning message
func (l *Logger) Warning(args ...interface{}) {
	l.log(core.WarningLevel, args...)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(core.WarningLevel, format, args...)
}

// Warn is an alias for Warning
func (l *Logger) Warn(args ...interface{}) {
	l.log(core.WarningLevel, args...)
}

// Warnf is an alias for Warningf
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logf(core.WarningLevel, format, args...)
}

// Error logs an error message
func (l *Logger) Error(args ...interface{}) {
	l.log(core.ErrorLevel, args...)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.ErrorLevel, format, args...)
}

// Fatal logs a fatal message. It does not exit the program.
func (l *Logger) Fatal(args ...interface{}) {
	l.log(core.FatalLevel, args...)
}

// Fatalf logs a fatal message with formatting. It does not exit the program.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logf(core.FatalLevel, format, args...)
}
