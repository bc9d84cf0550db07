package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/lvlog/core"
	"github.com/philipp01105/lvlog/handler"
)

// MultiHandler sends every entry to each of its handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// New creates a new multi-handler. Nil handlers are skipped.
func New(handlers ...handler.Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]handler.Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Len returns the number of child handlers
func (m *MultiHandler) Len() int {
	return len(m.handlers)
}

// Handle passes the entry to every handler. A failing handler does not
// stop the others; all errors are combined.
func (m *MultiHandler) Handle(entry *core.Entry) error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Handle(entry))
	}
	return err
}

// Close closes all handlers
func (m *MultiHandler) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}
