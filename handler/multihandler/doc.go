// Package multihandler provides the fan-out handler that dispatches each
// log entry to several child handlers independently of each other.
package multihandler
