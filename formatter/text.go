package formatter

import (
	"go.uber.org/zap/buffer"

	"github.com/philipp01105/lvlog/core"
)

// TextFormatter formats log entries as
//
//	<timestamp> <file>:<line> [<level>] <message>
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// pre-formatted level strings to avoid multiple AppendString calls
var levelBrackets = func() []string {
	levels := core.AllLevels()
	out := make([]string, len(levels))
	for _, l := range levels {
		out[l] = " [" + l.String() + "] "
	}
	return out
}()

// Format appends the rendered entry to buf
func (f *TextFormatter) Format(entry *core.Entry, buf *buffer.Buffer) {
	t := entry.Time
	if f.UTC {
		t = t.UTC()
	}
	buf.AppendTime(t, f.TimestampFormat)
	buf.AppendByte(' ')

	if entry.Caller.Defined {
		if f.LongFile {
			buf.AppendString(entry.Caller.File)
		} else {
			buf.AppendString(entry.Caller.ShortFile)
		}
		buf.AppendByte(':')
		buf.AppendInt(int64(entry.Caller.Line))
	} else {
		buf.AppendString("???:0")
	}

	if entry.Level.Valid() {
		buf.AppendString(levelBrackets[entry.Level])
	} else {
		buf.AppendString(" [unknown] ")
	}

	buf.AppendString(entry.Message)
}
