package log

import (
	"fmt"
	"io"
	"os"
)

var (
	CrashOnError = false
	Trace        = false

	// Output is where diagnostics and traces are written
	Output io.Writer = os.Stderr
)

// Err prints a diagnostic to the standard error according to format.  It also
// prepends the program name and appends a newline.  This is much like the
// errx(3) function from C unless CrashOnError is false in which case this will
// act like warnx(3).
func Err(format string, args ...any) {
	fmt.Fprintf(Output, "logo: "+format+"\n", args...)

	if CrashOnError {
		os.Exit(1)
	}
}

// Tracef is like Err but prints nothing unless Trace is set, and never exits.
func Tracef(format string, args ...any) {
	if Trace {
		fmt.Fprintf(Output, "logo: trace: "+format+"\n", args...)
	}
}
