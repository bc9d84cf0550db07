package logger

import (
	"sync/atomic"

	"github.com/philipp01105/lvlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	CriticalLevel = core.CriticalLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	FatalLevel    = core.FatalLevel
)

// ParseLevel converts a level name to a Level. Unrecognized names yield
// InfoLevel.
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}

// AtomicLevel is a threshold that can be changed while other goroutines
// are logging.
type AtomicLevel struct {
	v atomic.Int32
}

// NewAtomicLevel returns an AtomicLevel set to l.
func NewAtomicLevel(l Level) *AtomicLevel {
	a := &AtomicLevel{}
	a.SetLevel(l)
	return a
}

// Level returns the current threshold.
func (a *AtomicLevel) Level() Level {
	return Level(a.v.Load())
}

// SetLevel changes the threshold for all subsequent checks.
func (a *AtomicLevel) SetLevel(l Level) {
	a.v.Store(int32(l))
}

// Enabled reports whether l passes the threshold.
func (a *AtomicLevel) Enabled(l Level) bool {
	return l.Enabled(a.Level())
}
