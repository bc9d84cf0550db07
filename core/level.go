package core

import (
	"fmt"
)

// Level represents the severity level of a log entry.
// Declaration order is the comparison order.
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// CriticalLevel for conditions that need attention but are not failures
	CriticalLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for unrecoverable conditions. Logging at this level does not exit.
	FatalLevel
)

// levelNames is the single source of the level set. Everything that needs
// to enumerate, name or parse levels derives from this table.
var levelNames = [...]string{
	TraceLevel:    "trace",
	DebugLevel:    "debug",
	InfoLevel:     "info",
	CriticalLevel: "critical",
	WarningLevel:  "warning",
	ErrorLevel:    "error",
	FatalLevel:    "fatal",
}

// levelAliases are accepted by LookupLevel in addition to the canonical names.
var levelAliases = map[string]Level{
	"warn": WarningLevel,
}

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	levels := make([]Level, len(levelNames))
	for i := range levelNames {
		levels[i] = Level(i)
	}
	return levels
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= 0 && int(l) < len(levelNames)
}

// String returns the canonical lowercase name of the level
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Enabled reports whether l passes the given threshold.
func (l Level) Enabled(threshold Level) bool {
	return l >= threshold
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid level %d", int8(l))
	}
	return []byte(levelNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike ParseLevel it
// rejects unknown names.
func (l *Level) UnmarshalText(text []byte) error {
	lvl, ok := LookupLevel(string(text))
	if !ok {
		return fmt.Errorf("unrecognized level %q", text)
	}
	*l = lvl
	return nil
}

// LookupLevel returns the level with the given name. Matching is
// case-sensitive.
func LookupLevel(name string) (Level, bool) {
	for i, n := range levelNames {
		if n == name {
			return Level(i), true
		}
	}
	if lvl, ok := levelAliases[name]; ok {
		return lvl, true
	}
	return InfoLevel, false
}

// ParseLevel converts a name to a Level, falling back to InfoLevel when the
// name is not recognized.
func ParseLevel(name string) Level {
	lvl, _ := LookupLevel(name)
	return lvl
}
