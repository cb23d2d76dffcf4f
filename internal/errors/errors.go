// Package errors is the exit path for fatal CLI failures. A fatal
// error is written to the diagnostic log, echoed to stderr in the
// user-facing "Error: ..." shape, and the process exits non-zero.
package errors

import (
	"fmt"
	"os"

	"github.com/jotapp/jot/internal/logger"
)

// Format renders err as the single line shown on stderr. Nil yields
// the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a message built from a format string.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs err, echoes it to stderr, and exits with status 1.
// A nil err is a no-op so call sites can pass errors through unchecked.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Fatal", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// Fatalf is Fatal with a formatted message. Unlike Fatal it always
// exits.
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Fatal", "error", msg)
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	os.Exit(1)
}
