// Package console prints human-readable diagnostics. These messages go
// to stdout and are kept separate from the data report, which is only
// ever written to the output file.
package console

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	infoColor      = color.New(color.FgCyan).SprintFunc()
	successColor   = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor     = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor      = color.New(color.FgYellow).SprintFunc()
	highlightColor = color.New(color.FgMagenta, color.Bold).SprintFunc()
)

// Infof prints an informational message.
func Infof(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[INFO]:"), fmt.Sprintf(format, args...))
}

// Successf prints a success message.
func Successf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[OK]:"), fmt.Sprintf(format, args...))
}

// Warnf prints a warning message.
func Warnf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warnColor("[WARNING]:"), fmt.Sprintf(format, args...))
}

// Errorf prints an error message.
func Errorf(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", errorColor("[ERROR]:"), fmt.Sprintf(format, args...))
}

// Highlight marks a value (file name, count) inside a message.
func Highlight(s string) string {
	return highlightColor(s)
}
