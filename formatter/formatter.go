package formatter

import (
	"go.uber.org/zap/buffer"

	"github.com/philipp01105/lvlog/core"
)

// Formatter defines the interface for log line formatters
type Formatter interface {
	// Format appends one rendered line for entry to buf, without a
	// trailing newline. Handlers own newlines and colour codes.
	Format(entry *core.Entry, buf *buffer.Buffer)
}

// DefaultTimestampFormat is local wall-clock time with the zone abbreviation.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000 MST"

// Config holds formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat)
	TimestampFormat string
	// LongFile prints the full source path instead of the base name
	LongFile bool
	// UTC renders timestamps in UTC instead of local time
	UTC bool
}

var bufferPool = buffer.NewPool()

// GetBuffer returns an empty buffer from the shared pool. Call Free when
// done with it.
func GetBuffer() *buffer.Buffer {
	return bufferPool.Get()
}
