package demo

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
)

// Reporter prints one line per result to standard output.
type Reporter struct {
	w     io.Writer
	color bool
}

// NewReporter creates a reporter. With color set, markup lines are
// syntax-highlighted for a 256-color terminal.
func NewReporter(w io.Writer, color bool) *Reporter {
	return &Reporter{w: w, color: color}
}

// Markup prints element markup.
func (r *Reporter) Markup(markup string) error {
	if r.color {
		if err := quick.Highlight(r.w, markup, "html", "terminal256", "monokai"); err == nil {
			_, err = fmt.Fprintln(r.w)
			return err
		}
		// Fall through to plain output if highlighting fails
	}
	_, err := fmt.Fprintln(r.w, markup)
	return err
}

// Value prints a labelled value, e.g. "Selected option value: alfa".
func (r *Reporter) Value(label, value string) error {
	_, err := fmt.Fprintf(r.w, "%s: %s\n", label, value)
	return err
}
