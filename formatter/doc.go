// Package formatter turns log records into text.
//
// Render and RenderArgs produce the message part from a printf-style
// template or from plain operands. They are pure functions; timestamps and
// caller locations are never embedded at this stage. Because the logger's
// ...f entry points forward their template to Render, go vet's printf
// analyzer treats them as printf wrappers and rejects mismatched verbs and
// arguments before the program runs.
//
// A Formatter composes the full line around the message. TextFormatter
// writes
//
//	2026-01-15 12:00:00.000 CET main.go:42 [info] server started
//
// into a pooled zap buffer and never appends a newline; handlers add the
// terminator and, on a terminal, the colour codes.
package formatter
