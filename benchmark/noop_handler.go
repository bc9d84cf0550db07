package benchmark

import (
	"github.com/philipp01105/lvlog/core"
	"github.com/philipp01105/lvlog/handler"
)

// noopHandler consumes entries without formatting them, isolating the
// cost of the dispatch path from the cost of a sink.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
