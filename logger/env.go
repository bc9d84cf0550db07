package logger

import (
	"os"

	"github.com/philipp01105/lvlog/core"
	"github.com/philipp01105/lvlog/handler/consolehandler"
)

// Environment variables read when the default logger is first used.
const (
	// EnvLevel names the console threshold (e.g. "debug"). Unset or
	// unrecognized values mean "info".
	EnvLevel = "LVLOG_LEVEL"
	// EnvFile is the path of the log file. Unset or empty means no file.
	EnvFile = "LVLOG_FILE"
	// EnvColor is "auto", "always" or "never". Anything else means "auto".
	EnvColor = "LVLOG_COLOR"
)

// EnvConfig is the logger configuration carried by the environment.
type EnvConfig struct {
	Level Level
	File  string
	Color ColorMode
}

// LoadEnvConfig reads the configuration through lookup, which has the
// signature of os.LookupEnv.
func LoadEnvConfig(lookup func(string) (string, bool)) EnvConfig {
	cfg := EnvConfig{Level: core.InfoLevel, Color: ColorAuto}
	if v, ok := lookup(EnvLevel); ok {
		cfg.Level = core.ParseLevel(v)
	}
	if v, ok := lookup(EnvFile); ok {
		cfg.File = v
	}
	if v, ok := lookup(EnvColor); ok {
		cfg.Color = consolehandler.ParseColorMode(v)
	}
	return cfg
}

// Builder returns a Builder preloaded with this configuration.
func (c EnvConfig) Builder() *Builder {
	return NewBuilder().
		WithLevel(c.Level).
		WithFile(c.File).
		WithColor(c.Color)
}

// FromEnv builds a stdout logger configured from LVLOG_LEVEL, LVLOG_FILE
// and LVLOG_COLOR.
func FromEnv() *Logger {
	return LoadEnvConfig(os.LookupEnv).Builder().Build()
}
