// Package demo runs the form-interaction demonstration: launch a browser,
// open a page, walk a fixed list of element lookups and interactions while
// printing what it finds, and always release the browser at the end.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/entrhq/formdemo/pkg/browser"
	"github.com/entrhq/formdemo/pkg/config"
	"github.com/entrhq/formdemo/pkg/logging"
)

// selectedOption finds the currently selected option inside a select.
var selectedOption = browser.ByCSS("option:checked")

// Runner executes one demo run. A Runner is single use.
type Runner struct {
	driver   Driver
	cfg      *config.Config
	steps    []Step
	reporter *Reporter
	logger   *logging.Logger

	state   State
	history []State
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithSteps replaces the default step sequence.
func WithSteps(steps []Step) RunnerOption {
	return func(r *Runner) { r.steps = steps }
}

// WithReporter sets where results are printed (default stdout, no color).
func WithReporter(rep *Reporter) RunnerOption {
	return func(r *Runner) { r.reporter = rep }
}

// WithLogger sets the diagnostic logger (default discards).
func WithLogger(l *logging.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// NewRunner creates a runner over driver using cfg.
func NewRunner(driver Driver, cfg *config.Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		driver:   driver,
		cfg:      cfg,
		steps:    DefaultSteps(),
		reporter: NewReporter(os.Stdout, false),
		logger:   logging.NewWriterLogger("runner", io.Discard),
		state:    StateNotStarted,
		history:  []State{StateNotStarted},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// History returns every state the runner has been in, in order.
func (r *Runner) History() []State {
	return append([]State(nil), r.history...)
}

func (r *Runner) transition(next State) error {
	if next <= r.state {
		return fmt.Errorf("%w: %s -> %s", ErrBackwardTransition, r.state, next)
	}
	r.logger.Debugf("state %s -> %s", r.state, next)
	r.state = next
	r.history = append(r.history, next)
	return nil
}

// Run executes the whole sequence. Teardown runs exactly once on every
// path out of Run, including failures before the browser started.
func (r *Runner) Run(ctx context.Context) (err error) {
	if r.state != StateNotStarted {
		return fmt.Errorf("runner already used (state %s)", r.state)
	}

	defer func() {
		if closeErr := r.teardown(); closeErr != nil {
			r.logger.Warnf("teardown: %v", closeErr)
			if err == nil {
				err = closeErr
			}
		}
	}()

	r.logger.Infof("launching %s (headless=%t)", r.cfg.Browser.Type, r.cfg.Browser.Headless)
	if err := r.driver.Launch(r.cfg.LaunchOptions()); err != nil {
		return err
	}
	if err := r.transition(StateLaunched); err != nil {
		return err
	}

	page, err := r.driver.OpenSession(r.cfg.SessionOptions())
	if err != nil {
		return err
	}
	if err := r.transition(StateSessionOpen); err != nil {
		return err
	}

	r.logger.Infof("navigating to %s", r.cfg.URL)
	if err := page.Navigate(r.cfg.URL, r.cfg.NavigateOptions()); err != nil {
		return err
	}
	if err := r.transition(StateNavigated); err != nil {
		return err
	}

	for _, step := range r.steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run interrupted before step %q: %w", step.Name, err)
		}
		if r.state == StateNavigated {
			if err := r.transition(StateInteracting); err != nil {
				return err
			}
		}
		if err := r.runStep(page, step); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}

	r.logger.Infof("completed %d steps", len(r.steps))
	return nil
}

func (r *Runner) teardown() error {
	if r.state == StateClosed {
		return nil
	}
	r.logger.Infof("closing browser")
	err := r.driver.Close()
	// Closed is reachable from every state
	r.state = StateClosed
	r.history = append(r.history, StateClosed)
	return err
}

func (r *Runner) runStep(page Page, step Step) error {
	el := page.Locate(step.Selector)

	markup, err := el.OuterHTML()
	if err != nil {
		return err
	}
	r.logger.Debugf("%s: resolved %s", step.Name, browser.Summarize(markup))
	if err := r.reporter.Markup(markup); err != nil {
		return err
	}

	switch step.Action {
	case ActionRead:
		return nil
	case ActionFill:
		return r.fill(el, step)
	case ActionCheck:
		return r.check(el, step)
	case ActionSelect:
		return r.selectOption(el, step)
	}
	return fmt.Errorf("unknown action %q", step.Action)
}

func (r *Runner) fill(el Element, step Step) error {
	if err := el.Fill(step.Value); err != nil {
		return err
	}
	value, err := el.InputValue()
	if err != nil {
		return err
	}
	if value != step.Value {
		r.logger.Warnf("%s: filled %q but control reads %q", step.Name, step.Value, value)
	}
	return nil
}

func (r *Runner) check(el Element, step Step) error {
	if err := el.Check(); err != nil {
		return err
	}
	checked, err := el.IsChecked()
	if err != nil {
		return err
	}
	if !checked {
		return errors.New("control did not report checked after check")
	}
	r.logger.Debugf("%s: checked", step.Name)
	return nil
}

func (r *Runner) selectOption(el Element, step Step) error {
	if _, err := el.SelectOption(step.Option); err != nil {
		return err
	}

	value, err := el.InputValue()
	if err != nil {
		return err
	}
	if err := r.reporter.Value("Selected option value", value); err != nil {
		return err
	}

	markup, err := el.Locate(selectedOption).OuterHTML()
	if err != nil {
		return err
	}
	return r.reporter.Markup(markup)
}
