package core

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPool(t *testing.T) {
	e1 := GetEntry()
	require.NotNil(t, e1)

	e1.Time = time.Now()
	e1.Level = ErrorLevel
	e1.Message = "test"
	e1.Caller = CallerInfo{File: "a.go", Line: 3, Defined: true}

	PutEntry(e1)

	e2 := GetEntry()
	require.NotNil(t, e2, "GetEntry() returned nil after PutEntry()")

	assert.Empty(t, e2.Message)
	assert.False(t, e2.Caller.Defined)
	assert.True(t, e2.Time.IsZero())
	assert.Equal(t, InfoLevel, e2.Level)
}

func TestPutEntry_Nil(t *testing.T) {
	assert.NotPanics(t, func() { PutEntry(nil) })
}

func TestGetCaller(t *testing.T) {
	_, _, wantLine, _ := runtime.Caller(0)
	caller := GetCaller(1)
	wantLine++

	require.True(t, caller.Defined, "GetCaller() returned undefined CallerInfo")
	assert.Equal(t, "entry_test.go", caller.ShortFile)
	assert.Equal(t, "entry_test.go", filepath.Base(caller.File))
	assert.Equal(t, wantLine, caller.Line)
	assert.Contains(t, caller.Function, "TestGetCaller")
}

func TestGetCaller_OutOfRange(t *testing.T) {
	caller := GetCaller(10000)
	assert.False(t, caller.Defined)
	assert.Zero(t, caller.Line)
}

func BenchmarkGetEntry(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := GetEntry()
		PutEntry(e)
	}
}

func BenchmarkGetCaller(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = GetCaller(1)
	}
}
