package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Failure kinds. Every error returned by this package matches exactly one
// of these with errors.Is.
var (
	ErrLaunch           = errors.New("browser launch failed")
	ErrSession          = errors.New("browser session unavailable")
	ErrNavigation       = errors.New("navigation failed")
	ErrElementNotFound  = errors.New("element not found")
	ErrAmbiguousElement = errors.New("selector matched more than one element")
	ErrNotEditable      = errors.New("element is not an editable control")
	ErrNotCheckable     = errors.New("element is not a checkbox or radio")
	ErrNotSelectable    = errors.New("element is not a select control")
	ErrOptionNotFound   = errors.New("no option matches")
)

// Error describes a failed browser operation.
type Error struct {
	// Op is the operation that failed (e.g. "fill", "navigate")
	Op string

	// Target is the selector or URL the operation was applied to
	Target string

	// Kind is one of the package sentinels
	Kind error

	// Err is the underlying cause, usually a Playwright error; may be nil
	Err error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Target != "" {
		msg += " " + e.Target
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(op, target string, kind, cause error) *Error {
	return &Error{Op: op, Target: target, Kind: kind, Err: cause}
}

// elementError classifies a Playwright failure raised while acting on an
// element. A timeout means the element never resolved inside the wait
// window; anything else keeps the caller-supplied kind.
func elementError(op, target string, kind, cause error) *Error {
	if errors.Is(cause, playwright.ErrTimeout) {
		kind = ErrElementNotFound
	}
	return newError(op, target, kind, cause)
}

// Trace returns the browser-side stack trace carried by err, if any.
func Trace(err error) string {
	var pwErr *playwright.Error
	if errors.As(err, &pwErr) && pwErr.Stack != "" {
		return pwErr.Stack
	}
	return ""
}

// Describe renders err with its failure kind spelled out, for log lines.
func Describe(err error) string {
	var be *Error
	if errors.As(err, &be) {
		return fmt.Sprintf("%s (op=%s target=%q)", err.Error(), be.Op, be.Target)
	}
	return err.Error()
}
