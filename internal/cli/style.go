package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/tsmm-dev/tsmm/internal/registry"
)

type styles struct {
	action  lipgloss.Style
	success lipgloss.Style
	err     lipgloss.Style
}

// newStyles returns styles rendered for w. Writers that are not terminals
// get plain text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		action:  r.NewStyle().Foreground(lipgloss.Color("3")),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// styledReporter is the terminal registry.Reporter.
type styledReporter struct {
	w  io.Writer
	st styles
}

func newStyledReporter(w io.Writer) *styledReporter {
	return &styledReporter{w: w, st: newStyles(w)}
}

func (s *styledReporter) Action(verb, detail string) {
	fmt.Fprintln(s.w)
	fmt.Fprintf(s.w, "%s %s\n", s.st.action.Render(verb), detail)
	fmt.Fprintln(s.w)
}

func (s *styledReporter) Value(label, value string) {
	fmt.Fprintf(s.w, "%s: %s\n", label, s.st.action.Render(value))
}

func (s *styledReporter) Info(msg string) {
	fmt.Fprintln(s.w, s.st.action.Render("Info: "+msg))
}

func (s *styledReporter) Success(msg string) {
	fmt.Fprintln(s.w, s.st.success.Render(msg))
}

func (s *styledReporter) Line(line string) {
	fmt.Fprintln(s.w, line)
}

// printError writes err the way every command reports failure: a blank line,
// the hint if the error carries one, then the message in red. The wrapped
// cause of a registry error goes to logger at debug level.
func printError(w io.Writer, logger *slog.Logger, err error) {
	st := newStyles(w)

	fmt.Fprintln(w)
	msg := err.Error()
	var re *registry.Error
	if errors.As(err, &re) {
		msg = re.Msg
		if re.Hint != "" {
			fmt.Fprintln(w, st.action.Render(re.Hint))
			if re.Kind == registry.KindUsage {
				fmt.Fprintln(w)
			}
		}
		if re.Err != nil {
			logger.Debug("command failed", "kind", re.Kind.String(), "error", re.Msg, "cause", re.Err)
		}
	}
	fmt.Fprintln(w, st.err.Render("Error: "+msg))
}
