package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "trace"},
		{DebugLevel, "debug"},
		{InfoLevel, "info"},
		{CriticalLevel, "critical"},
		{WarningLevel, "warning"},
		{ErrorLevel, "error"},
		{FatalLevel, "fatal"},
		{Level(-1), "unknown"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLevel_Order(t *testing.T) {
	levels := AllLevels()
	require.Len(t, levels, 7)
	assert.Equal(t, TraceLevel, levels[0])
	assert.Equal(t, FatalLevel, levels[len(levels)-1])

	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i], "%s should sort before %s", levels[i-1], levels[i])
	}
	assert.Less(t, InfoLevel, CriticalLevel)
	assert.Less(t, CriticalLevel, WarningLevel)
}

func TestLevel_Enabled(t *testing.T) {
	for _, threshold := range AllLevels() {
		for _, l := range AllLevels() {
			assert.Equal(t, l >= threshold, l.Enabled(threshold), "level %s threshold %s", l, threshold)
		}
	}
}

func TestLookupLevel(t *testing.T) {
	for _, l := range AllLevels() {
		got, ok := LookupLevel(l.String())
		assert.True(t, ok, l.String())
		assert.Equal(t, l, got)
	}

	got, ok := LookupLevel("warn")
	assert.True(t, ok)
	assert.Equal(t, WarningLevel, got)

	for _, name := range []string{"", "verbose", "INFO", "Error", " info"} {
		got, ok := LookupLevel(name)
		assert.False(t, ok, name)
		assert.Equal(t, InfoLevel, got, name)
	}
}

func TestParseLevel_FallsBackToInfo(t *testing.T) {
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, InfoLevel, ParseLevel(""))
}

func TestLevel_Text(t *testing.T) {
	b, err := CriticalLevel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "critical", string(b))

	_, err = Level(99).MarshalText()
	assert.Error(t, err)

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("fatal")))
	assert.Equal(t, FatalLevel, l)

	assert.Error(t, l.UnmarshalText([]byte("verbose")))
	assert.Equal(t, FatalLevel, l, "failed unmarshal must not modify the level")
}
