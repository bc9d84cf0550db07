// Package filehandler provides the file sink: an append-only log file
// that receives one plain-text, newline-terminated line per entry.
//
// There is no rotation and no in-memory buffering; each entry is written
// with a single write call on a file opened with O_APPEND, and Close
// syncs before closing.
//
// When a file cannot be opened, Open returns an inert handler alongside
// the error. The inert handler swallows entries so that callers who
// ignore the error keep a working, if silent, logger.
package filehandler
