package consolehandler

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/lvlog/core"
)

// ColorMode selects when console output is colour-coded.
type ColorMode int

const (
	// ColorAuto colours output only when writing to a terminal that
	// accepts colour.
	ColorAuto ColorMode = iota
	// ColorAlways colours output regardless of the destination.
	ColorAlways
	// ColorNever never colours output.
	ColorNever
)

// String returns the lowercase name of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode converts a name to a ColorMode, falling back to ColorAuto.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "always", "true", "on":
		return ColorAlways
	case "never", "false", "off":
		return ColorNever
	default:
		return ColorAuto
	}
}

func (m ColorMode) enabled(w io.Writer) bool {
	if !colorCompiled {
		return false
	}
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isColorTerminal(w)
	}
}

type fdWriter interface {
	Fd() uintptr
}

// isColorTerminal reports whether w is a terminal and the environment has
// not opted out of colour (NO_COLOR, TERM=dumb).
func isColorTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var palette = func() []*color.Color {
	attrs := map[core.Level][]color.Attribute{
		core.TraceLevel:    {color.FgHiBlack},
		core.DebugLevel:    {color.FgCyan},
		core.InfoLevel:     {color.FgGreen},
		core.CriticalLevel: {color.FgMagenta},
		core.WarningLevel:  {color.FgYellow},
		core.ErrorLevel:    {color.FgRed},
		core.FatalLevel:    {color.FgHiRed, color.Bold},
	}
	levels := core.AllLevels()
	p := make([]*color.Color, len(levels))
	for _, l := range levels {
		c := color.New(attrs[l]...)
		// The handler has already decided to colour; don't let the
		// package-wide stdout detection in fatih/color override that.
		c.EnableColor()
		p[l] = c
	}
	return p
}()

var plain = func() *color.Color {
	c := color.New(color.Reset)
	c.EnableColor()
	return c
}()

func colorFor(l core.Level) *color.Color {
	if !l.Valid() {
		return plain
	}
	return palette[l]
}
