package errors

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
)

// ErrorReporter writes user-facing error messages to an output stream
type ErrorReporter struct {
	out     io.Writer
	noColor bool
}

// NewErrorReporter creates a reporter that writes to out. Colour is left to
// fatih/color's terminal detection unless noColor is set.
func NewErrorReporter(out io.Writer, noColor bool) *ErrorReporter {
	return &ErrorReporter{out: out, noColor: noColor}
}

// Report prints the error's message on its own line. Only the message is
// shown; codes and causes are for logs and callers.
func (er *ErrorReporter) Report(err *InputError) error {
	c := er.getLevelColor(err.Level)
	if er.noColor {
		c.DisableColor()
	}
	if _, werr := c.Fprintln(er.out, err.Message); werr != nil {
		return fmt.Errorf("write %s report: %w", err.Code, werr)
	}
	return nil
}

// getLevelColor returns the appropriate color for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) *color.Color {
	switch level {
	case Warning:
		return color.New(color.FgYellow)
	case Note:
		return color.New(color.FgBlue)
	default:
		return color.New(color.FgRed)
	}
}
