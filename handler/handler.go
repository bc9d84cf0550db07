package handler

import (
	"github.com/philipp01105/lvlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle writes a log entry. The entry is only valid for the duration
	// of the call.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// LevelEnabler decides whether a level passes a filter.
type LevelEnabler interface {
	Enabled(level core.Level) bool
}

// LevelFilter forwards only the entries whose level is enabled.
type LevelFilter struct {
	Handler Handler
	Enabler LevelEnabler
}

// NewLevelFilter wraps h so that it only sees entries enabled by e.
func NewLevelFilter(h Handler, e LevelEnabler) *LevelFilter {
	return &LevelFilter{Handler: h, Enabler: e}
}

// Handle forwards the entry if its level is enabled
func (f *LevelFilter) Handle(entry *core.Entry) error {
	if f.Handler == nil || !f.Enabler.Enabled(entry.Level) {
		return nil
	}
	return f.Handler.Handle(entry)
}

// Close closes the wrapped handler
func (f *LevelFilter) Close() error {
	if f.Handler == nil {
		return nil
	}
	return f.Handler.Close()
}

// Stats returns the wrapped handler's statistics, if it keeps any.
func (f *LevelFilter) Stats() Snapshot {
	if sp, ok := f.Handler.(StatsProvider); ok {
		return sp.Stats()
	}
	return Snapshot{}
}
