// Package logger is the public API of lvlog. Most users only need to
// import this package.
//
// The package-level functions log through a default Logger that is built
// on first use from the environment:
//
//	LVLOG_LEVEL  console threshold: trace, debug, info, critical, warning
//	             (or warn), error, fatal. Unset or unrecognized: info.
//	LVLOG_FILE   append every line to this file. Unset: no file.
//	LVLOG_COLOR  auto (default), always or never.
//
// so simple programs can log without any setup:
//
//	logger.Infof("%d + %d = %d", 2, 2, 4)
//
// which prints
//
//	2026-01-15 12:00:00.000 CET main.go:9 [info] 2 + 2 = 4
//
// The console only shows lines at or above the threshold; the log file,
// when configured, receives every line regardless of level. Both can be
// changed at runtime with SetLevel and SetLogFile.
//
// Every ...f function is a printf wrapper, so go vet reports format
// strings that do not match their arguments. The file and line recorded
// are those of the call, with no extra arguments at the call site.
//
// When a level is below the threshold and no file is configured, a call
// returns before formatting its arguments or looking up its caller.
//
// Logging never fails from the caller's point of view: sink errors are
// absorbed, counted in ConsoleStats and FileStats, and Fatal does not exit.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithLevel(logger.DebugLevel).
//	    WithFile("/var/log/app.log").
//	    WithColor(logger.ColorNever).
//	    Build()
//	defer log.Close()
package logger
