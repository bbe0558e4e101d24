package logger

import (
	"io"
	"os"

	"github.com/fatih/color" // Colored, Printf-style level writers
)

// Diagnostics go to stderr so they never interleave with the plan preview,
// which the launcher writes to stdout.

// Info logs informational messages in green.
var Info = newLevel(color.FgGreen, os.Stderr)

// Warn logs warnings in bright magenta.
var Warn = newLevel(color.FgHiMagenta, os.Stderr)

// Error logs errors in red.
var Error = newLevel(color.FgRed, os.Stderr)

// Debug logs debug messages in cyan once enabled through Init.
// Until then it is a no-op, so packages may call it unconditionally.
var Debug = func(format string, a ...any) {}

// Init wires the level writers to out (stderr when nil) and toggles debug output.
func Init(enableDebug bool, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	Info = newLevel(color.FgGreen, out)
	Warn = newLevel(color.FgHiMagenta, out)
	Error = newLevel(color.FgRed, out)

	if enableDebug {
		Debug = newLevel(color.FgCyan, out)
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// newLevel builds a Printf-style function writing attr-colored text to out.
func newLevel(attr color.Attribute, out io.Writer) func(format string, a ...any) {
	c := color.New(attr)
	return func(format string, a ...any) {
		_, _ = c.Fprintf(out, format, a...)
	}
}
