//go:build lvlog_nocolor

package consolehandler

const colorCompiled = false
