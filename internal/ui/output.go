// Package ui handles colored terminal output for argbind diagnostics.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	// Color/style functions
	Bold   = color.New(color.Bold).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()

	// Output destination (defaults to stderr so diagnostics stay out of
	// piped program output)
	Out io.Writer = os.Stderr
)

// Warn prints a non-fatal diagnostic with a yellow WARNING prefix.
func Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "%s %s\n", Yellow("WARNING:"), msg)
}

// Fail prints an error message with a red ERROR prefix.
func Fail(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "%s %s\n", Red("ERROR:"), msg)
}

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "%s %s\n", Cyan("→"), msg)
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(Out, "%s %s\n", Green("✔"), msg)
}
