package formatter

import "fmt"

// Render formats a message from a printf-style template. It is pure: the
// same template and arguments always yield the same text, and nothing
// (time, caller, newline) is added.
//
// Every ...f entry point in this module forwards here, which makes go vet's
// printf check apply to their call sites.
func Render(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// RenderArgs formats a message from operands the way fmt.Sprint does.
func RenderArgs(args ...interface{}) string {
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(args...)
}
