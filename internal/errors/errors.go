// Package errors holds the terminal error reporting helpers shared by the
// command layer.
package errors

import (
	"fmt"
	"os"

	"github.com/presently-app/presently/internal/logger"
)

// Format renders err with the "Error: " prefix used on stderr. A nil error
// renders as the empty string.
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

// Fatal logs err, prints it to stderr, and exits with status 1. A nil error
// is a no-op so callers can pass command results straight through.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}

// Fatalf logs and prints a formatted message, then exits with status 1.
func Fatalf(format string, args ...interface{}) {
	logger.Error("command failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintln(os.Stderr, Formatf(format, args...))
	os.Exit(1)
}
