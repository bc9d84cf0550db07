// Package consolehandler provides the console sink: it writes one
// formatted line per entry to stdout or any io.Writer.
//
// With ColorAuto (the default) lines are wrapped in a per-level ANSI
// colour sequence when the writer is a terminal, NO_COLOR is unset and
// TERM is not "dumb". ColorAlways and ColorNever force the choice. The
// newline is written after the reset sequence.
//
// Building with the lvlog_nocolor tag compiles colour support out; every
// mode then behaves like ColorNever.
//
// Writes go through zapcore.Lock, so concurrent Handle calls never
// interleave within a line.
package consolehandler
