package registry

import (
	"fmt"
	"io"
)

// Reporter receives the progress and result lines of an operation.
// The CLI supplies a styled implementation; TextReporter writes plain text.
type Reporter interface {
	// Action announces an operation, e.g. Action("installing", "module from <url>").
	Action(verb, detail string)
	// Value prints a labelled value, e.g. Value("module name", "foo").
	Value(label, value string)
	// Info prints a non-fatal notice.
	Info(msg string)
	// Success prints the final result line.
	Success(msg string)
	// Line prints s verbatim followed by a newline.
	Line(s string)
}

// TextReporter is a Reporter that writes unstyled text to W.
type TextReporter struct {
	W io.Writer
}

func (t TextReporter) Action(verb, detail string) {
	fmt.Fprintln(t.W)
	fmt.Fprintf(t.W, "%s %s\n", verb, detail)
	fmt.Fprintln(t.W)
}

func (t TextReporter) Value(label, value string) {
	fmt.Fprintf(t.W, "%s: %s\n", label, value)
}

func (t TextReporter) Info(msg string) {
	fmt.Fprintf(t.W, "Info: %s\n", msg)
}

func (t TextReporter) Success(msg string) {
	fmt.Fprintln(t.W, msg)
}

func (t TextReporter) Line(s string) {
	fmt.Fprintln(t.W, s)
}
