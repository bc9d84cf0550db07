package filehandler

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/lvlog/core"
	"github.com/philipp01105/lvlog/formatter"
	"github.com/philipp01105/lvlog/handler"
)

// ErrNoFilename is returned by NewFileHandler when FileConfig.Filename is empty.
var ErrNoFilename = errors.New("filename is required")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the log file
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// FileHandler appends one plain-text line per entry to a file. Every
// entry is a single unbuffered write.
//
// A FileHandler built by NewInertFileHandler has no file: it accepts
// entries, discards them and counts them as failed.
type FileHandler struct {
	filename  string
	file      *os.File
	formatter formatter.Formatter
	openErr   error
	mu        sync.Mutex
	stats     *handler.Stats
	closed    bool
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// NewFileHandler opens cfg.Filename for appending, creating it and its
// parent directory if needed.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, ErrNoFilename
	}
	applyFileDefaults(&cfg)

	dir := filepath.Dir(cfg.Filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create log directory %s", dir)
	}

	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "open log file %s", cfg.Filename)
	}

	return &FileHandler{
		filename:  cfg.Filename,
		file:      file,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}, nil
}

// NewInertFileHandler returns a handler standing in for a file that could
// not be opened. err is reported by Err.
func NewInertFileHandler(filename string, err error) *FileHandler {
	return &FileHandler{
		filename: filename,
		openErr:  err,
		stats:    handler.NewStats(),
	}
}

// Open is NewFileHandler that never fails: when the file cannot be opened
// it returns an inert handler together with the error.
func Open(cfg FileConfig) (*FileHandler, error) {
	h, err := NewFileHandler(cfg)
	if err != nil {
		return NewInertFileHandler(cfg.Filename, err), err
	}
	return h, nil
}

// Filename returns the path this handler was configured with.
func (h *FileHandler) Filename() string {
	return h.filename
}

// Err returns the error that prevented the file from being opened, or nil.
func (h *FileHandler) Err() error {
	return h.openErr
}

// Handle formats the entry and appends it, newline-terminated, to the file.
func (h *FileHandler) Handle(entry *core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return handler.ErrClosed
	}
	if h.file == nil {
		h.stats.IncrementFailed()
		return nil
	}

	buf := formatter.GetBuffer()
	h.formatter.Format(entry, buf)
	buf.AppendByte('\n')
	_, err := h.file.Write(buf.Bytes())
	buf.Free()

	h.stats.Record(err)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close syncs and closes the underlying file. It is safe to call more
// than once.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if h.file == nil {
		return nil
	}

	syncErr := h.file.Sync()
	closeErr := h.file.Close()
	h.file = nil
	if syncErr != nil {
		return errors.Wrapf(syncErr, "sync log file %s", h.filename)
	}
	return closeErr
}
