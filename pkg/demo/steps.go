package demo

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/entrhq/formdemo/pkg/browser"
	"github.com/entrhq/formdemo/pkg/config"
)

// Action is what a step does after printing the element's markup.
type Action string

const (
	ActionRead   Action = "read"
	ActionFill   Action = "fill"
	ActionCheck  Action = "check"
	ActionSelect Action = "select"
)

// Step is one lookup, optionally followed by an interaction.
type Step struct {
	Name     string
	Selector browser.Selector
	Action   Action
	Value    string
	Option   browser.OptionChoice
}

// DefaultSteps is the fixed demo sequence for testingexamples.github.io.
func DefaultSteps() []Step {
	return []Step{
		{Name: "find-by-id", Selector: browser.ByID("id-example-1"), Action: ActionRead},
		{Name: "find-by-name", Selector: browser.ByAttribute("name", "name-example-1"), Action: ActionRead},
		{Name: "find-by-class", Selector: browser.ByClass("class-example-1"), Action: ActionRead},
		{Name: "find-by-link-text", Selector: browser.ByText("a", "Link Example 1"), Action: ActionRead},
		{Name: "find-by-xpath", Selector: browser.ByXPath(`//input[@type="submit"]`), Action: ActionRead},
		{Name: "fill-text", Selector: browser.ByID("text-example-1-id"), Action: ActionFill, Value: "hello"},
		{Name: "check-checkbox", Selector: browser.ByID("checkbox-example-1-id"), Action: ActionCheck},
		{Name: "check-radio", Selector: browser.ByID("radio-example-1-option-1-id"), Action: ActionCheck},
		{Name: "select-option", Selector: browser.ByID("select-example-1-id"), Action: ActionSelect, Option: browser.OptionIndex(0)},
	}
}

// StepsFromConfig converts configured steps.
func StepsFromConfig(configured []config.StepConfig) ([]Step, error) {
	steps := make([]Step, 0, len(configured))
	for _, sc := range configured {
		sel, err := browser.ParseSelector(sc.Selector)
		if err != nil {
			return nil, fmt.Errorf("step %q: %w", sc.Name, err)
		}

		action := Action(sc.Action)
		switch action {
		case "":
			action = ActionRead
		case ActionRead, ActionFill, ActionCheck, ActionSelect:
		default:
			return nil, fmt.Errorf("step %q: unknown action %q (must be 'read', 'fill', 'check', or 'select')", sc.Name, sc.Action)
		}

		steps = append(steps, Step{
			Name:     sc.Name,
			Selector: sel,
			Action:   action,
			Value:    sc.Value,
			Option:   sc.Option.Choice(),
		})
	}
	return steps, nil
}

// FilterSteps keeps the steps whose name matches the glob pattern. An empty
// pattern keeps everything.
func FilterSteps(steps []Step, pattern string) ([]Step, error) {
	if pattern == "" {
		return steps, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid step filter '%s': %w", pattern, err)
	}

	var kept []Step
	for _, s := range steps {
		if g.Match(s.Name) {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("step filter '%s' matches no steps", pattern)
	}
	return kept, nil
}
