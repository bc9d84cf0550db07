// Package handler provides the Handler interface that every log sink
// implements, plus the small pieces shared between sinks.
//
// Handlers are synchronous: Handle writes before it returns, and no
// handler starts goroutines or buffers lines in memory.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler writes to stdout (or any io.Writer), colour-coding
//     lines by level when the destination is a terminal.
//   - filehandler appends to a log file.
//   - multihandler fans one entry out to several handlers.
//
// LevelFilter gates a handler on a live threshold. The logger wraps its
// console sink in one and leaves its file sink unfiltered, so the console
// shows the filtered view while the file keeps every record.
//
// Concrete handlers count processed and failed writes in a Stats value,
// queryable through StatsProvider.
package handler
