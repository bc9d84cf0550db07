package consolehandler

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/lvlog/core"
	"github.com/philipp01105/lvlog/formatter"
	"github.com/philipp01105/lvlog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: stdout, ANSI-capable on Windows)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Color selects when lines are colour-coded (default: ColorAuto)
	Color ColorMode
}

// ConsoleHandler writes one line per entry to a console-like writer.
type ConsoleHandler struct {
	out       zapcore.WriteSyncer
	formatter formatter.Formatter
	colorize  bool
	stats     *handler.Stats
	closed    atomic.Bool
}

// applyConsoleDefaults fills in zero-value fields with defaults and
// returns the writer whose file descriptor decides ColorAuto.
func applyConsoleDefaults(cfg *ConsoleConfig) io.Writer {
	tty := cfg.Writer
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStdout()
		tty = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	return tty
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	tty := applyConsoleDefaults(&cfg)
	return &ConsoleHandler{
		out:       zapcore.Lock(zapcore.AddSync(cfg.Writer)),
		formatter: cfg.Formatter,
		colorize:  cfg.Color.enabled(tty),
		stats:     handler.NewStats(),
	}
}

// Colorized reports whether this handler emits ANSI colour codes.
func (h *ConsoleHandler) Colorized() bool {
	return h.colorize
}

// Handle formats and writes an entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.closed.Load() {
		return handler.ErrClosed
	}

	buf := formatter.GetBuffer()
	defer buf.Free()

	h.formatter.Format(entry, buf)
	if h.colorize {
		line := buf.String()
		buf.Reset()
		buf.AppendString(colorFor(entry.Level).Sprint(line))
	}
	buf.AppendByte('\n')

	_, err := h.out.Write(buf.Bytes())
	h.stats.Record(err)
	return err
}

// Sync flushes the underlying writer if it supports it.
func (h *ConsoleHandler) Sync() error {
	return h.out.Sync()
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The underlying writer is left open: it usually
// is stdout, which the process owns.
func (h *ConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}
