//go:build !lvlog_nocolor

package consolehandler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/lvlog/core"
)

func TestConsoleHandler_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorAlways})
	require.True(t, h.Colorized())

	e := newEntry(core.InfoLevel, "green")
	defer core.PutEntry(e)
	require.NoError(t, h.Handle(e))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b[32m"), "%q", out)
	assert.True(t, strings.HasSuffix(out, "m\n"), "newline must follow the reset sequence: %q", out)
	assert.Contains(t, out, "[info] green\x1b[")
}

func TestConsoleHandler_PalettePerLevel(t *testing.T) {
	seen := map[string]core.Level{}
	for _, l := range core.AllLevels() {
		var buf bytes.Buffer
		h := NewConsoleHandler(ConsoleConfig{Writer: &buf, Color: ColorAlways})
		e := newEntry(l, "m")
		require.NoError(t, h.Handle(e))
		core.PutEntry(e)

		prefix := buf.String()[:strings.Index(buf.String(), "m")+1]
		if other, dup := seen[prefix]; dup {
			t.Errorf("levels %s and %s share colour %q", l, other, prefix)
		}
		seen[prefix] = l
	}
}

func TestColorAuto_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorAuto.enabled(&bytes.Buffer{}))
	assert.True(t, ColorAlways.enabled(&bytes.Buffer{}))
}
