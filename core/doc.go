// Package core defines the shared types used across lvlog.
//
// It provides the Level type with its fixed ordering
// (trace < debug < info < critical < warning < error < fatal), the Entry
// type that carries one log record from the logger to the handlers, and
// CallerInfo/GetCaller for call-site capture.
//
// The level set is declared once in a name table; String, LookupLevel,
// ParseLevel and AllLevels all derive from it, so adding a level means
// touching one constant block and one table.
//
// Entry objects are pooled via sync.Pool. The logger gets an Entry with
// GetEntry and returns it with PutEntry once every handler has consumed
// it. Handlers must not retain an Entry past Handle.
package core
