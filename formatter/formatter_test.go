package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lvlog/core"
)

func format(f Formatter, e *core.Entry) string {
	buf := GetBuffer()
	defer buf.Free()
	f.Format(e, buf)
	return buf.String()
}

func TestRender_Deterministic(t *testing.T) {
	a := Render("%d + %d = %d", 2, 2, 4)
	b := Render("%d + %d = %d", 2, 2, 4)
	assert.Equal(t, "2 + 2 = 4", a)
	assert.Equal(t, a, b)
}

func TestRender_NoArgs(t *testing.T) {
	assert.Equal(t, "plain", Render("plain"))
	assert.Equal(t, "100%", Render("100%%"))
	assert.NotContains(t, Render("no newline"), "\n")
}

func TestRenderArgs(t *testing.T) {
	assert.Equal(t, "hello", RenderArgs("hello"))
	assert.Equal(t, "x=1", RenderArgs("x=", 1))
	assert.Equal(t, "1 2", RenderArgs(1, 2))
	assert.Equal(t, "", RenderArgs())
}

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{UTC: true})

	entry := &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "test message",
		Caller: core.CallerInfo{
			File:      "/path/to/file.go",
			ShortFile: "file.go",
			Line:      123,
			Function:  "main.main",
			Defined:   true,
		},
	}

	assert.Equal(t, "2026-02-18 13:00:00.000 UTC file.go:123 [info] test message", format(f, entry))
}

func TestTextFormatter_LongFile(t *testing.T) {
	f := NewTextFormatter(Config{LongFile: true})

	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.ErrorLevel,
		Message: "boom",
		Caller:  core.CallerInfo{File: "/path/to/file.go", ShortFile: "file.go", Line: 7, Defined: true},
	}

	out := format(f, entry)
	assert.Contains(t, out, " /path/to/file.go:7 [error] boom")
}

func TestTextFormatter_UndefinedCaller(t *testing.T) {
	f := NewTextFormatter(Config{})

	out := format(f, &core.Entry{Time: time.Now(), Level: core.WarningLevel, Message: "m"})
	assert.Contains(t, out, " ???:0 [warning] m")
}

func TestTextFormatter_AllLevels(t *testing.T) {
	f := NewTextFormatter(Config{})
	for _, l := range core.AllLevels() {
		out := format(f, &core.Entry{Time: time.Now(), Level: l, Message: "m"})
		assert.Contains(t, out, "["+l.String()+"]")
	}

	out := format(f, &core.Entry{Time: time.Now(), Level: core.Level(50), Message: "m"})
	assert.Contains(t, out, "[unknown]")
}

func TestTextFormatter_TimestampFormat(t *testing.T) {
	f := NewTextFormatter(Config{TimestampFormat: time.RFC3339})
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, time.FixedZone("X", 3600))

	out := format(f, &core.Entry{Time: ts, Level: core.InfoLevel, Message: "m"})
	require.True(t, strings.HasPrefix(out, "2026-01-15T12:00:00+01:00 "), out)
}

func TestTextFormatter_DefaultTimestampHasZone(t *testing.T) {
	f := NewTextFormatter(Config{})
	zone := time.FixedZone("ABC", -5*3600)
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, zone)

	out := format(f, &core.Entry{Time: ts, Level: core.InfoLevel, Message: "m"})
	assert.True(t, strings.HasPrefix(out, "2026-01-15 12:00:00.000 ABC "), out)
}

func TestTextFormatter_NoTrailingNewline(t *testing.T) {
	f := NewTextFormatter(Config{})
	out := format(f, &core.Entry{Time: time.Now(), Level: core.InfoLevel, Message: "m"})
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	entry := &core.Entry{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		Message: "test message",
		Caller:  core.CallerInfo{File: "/a/b.go", ShortFile: "b.go", Line: 10, Defined: true},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := GetBuffer()
		f.Format(entry, buf)
		buf.Free()
	}
}

func BenchmarkRender(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Render("%d + %d = %d", 2, 2, 4)
	}
}
