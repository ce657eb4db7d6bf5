// Package demotest provides an in-memory demo.Driver for tests.
package demotest

import (
	"fmt"
	"strings"

	"github.com/entrhq/formdemo/pkg/browser"
	"github.com/entrhq/formdemo/pkg/demo"
)

// FakeDriver records calls and serves elements from a map keyed by the
// rendered selector string.
type FakeDriver struct {
	LaunchErr   error
	SessionErr  error
	NavigateErr error
	CloseErr    error

	Elements map[string]*FakeElement

	Calls      []string
	CloseCalls int
	LastLaunch browser.LaunchOptions
	LastURL    string
}

// NewFakeDriver returns a driver serving the demo site's form elements.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{Elements: DemoElements()}
}

// DemoElements mirrors the elements the default steps look up.
func DemoElements() map[string]*FakeElement {
	return map[string]*FakeElement{
		"#id-example-1":                   {HTML: `<p id="id-example-1">Lorem Ipsum</p>`},
		`[name="name-example-1"]`:         {HTML: `<p name="name-example-1">Lorem Ipsum</p>`},
		".class-example-1":                {HTML: `<p class="class-example-1">Lorem Ipsum</p>`},
		`a:has-text("Link Example 1")`:    {HTML: `<a href="https://example.com">Link Example 1</a>`},
		`xpath=//input[@type="submit"]`:   {HTML: `<input type="submit">`},
		"#text-example-1-id":              {HTML: `<input type="text" id="text-example-1-id">`, Editable: true},
		"#checkbox-example-1-id":          {HTML: `<input type="checkbox" id="checkbox-example-1-id">`, Checkable: true},
		"#radio-example-1-option-1-id":    {HTML: `<input type="radio" id="radio-example-1-option-1-id">`, Checkable: true},
		"#select-example-1-id": {
			HTML:    `<select id="select-example-1-id"><option>alfa</option><option>bravo</option><option>charlie</option></select>`,
			Options: []string{"alfa", "bravo", "charlie"},
			Value:   "bravo",
		},
	}
}

func (d *FakeDriver) Launch(opts browser.LaunchOptions) error {
	d.Calls = append(d.Calls, "launch")
	d.LastLaunch = opts
	return d.LaunchErr
}

func (d *FakeDriver) OpenSession(opts browser.SessionOptions) (demo.Page, error) {
	d.Calls = append(d.Calls, "open-session")
	if d.SessionErr != nil {
		return nil, d.SessionErr
	}
	return &fakePage{driver: d}, nil
}

func (d *FakeDriver) Close() error {
	d.Calls = append(d.Calls, "close")
	d.CloseCalls++
	return d.CloseErr
}

type fakePage struct {
	driver *FakeDriver
}

func (p *fakePage) Navigate(url string, opts browser.NavigateOptions) error {
	p.driver.Calls = append(p.driver.Calls, "navigate")
	p.driver.LastURL = url
	return p.driver.NavigateErr
}

func (p *fakePage) Locate(sel browser.Selector) demo.Element {
	key := sel.String()
	if el, ok := p.driver.Elements[key]; ok {
		el.selector = key
		return el
	}
	return &FakeElement{selector: key, missing: true}
}

// FakeElement is an element with just enough state for the demo actions.
type FakeElement struct {
	HTML      string
	Editable  bool
	Checkable bool
	Options   []string
	Value     string
	Checked   bool

	selector string
	missing  bool
}

func (e *FakeElement) notFound(op string) error {
	return &browser.Error{Op: op, Target: e.selector, Kind: browser.ErrElementNotFound}
}

func (e *FakeElement) OuterHTML() (string, error) {
	if e.missing {
		return "", e.notFound("read")
	}
	return e.HTML, nil
}

func (e *FakeElement) Fill(value string) error {
	if e.missing {
		return e.notFound("fill")
	}
	if !e.Editable {
		return &browser.Error{Op: "fill", Target: e.selector, Kind: browser.ErrNotEditable}
	}
	e.Value = value
	return nil
}

func (e *FakeElement) Check() error {
	if e.missing {
		return e.notFound("check")
	}
	if !e.Checkable {
		return &browser.Error{Op: "check", Target: e.selector, Kind: browser.ErrNotCheckable}
	}
	e.Checked = true
	return nil
}

func (e *FakeElement) IsChecked() (bool, error) {
	if e.missing {
		return false, e.notFound("is checked")
	}
	return e.Checked, nil
}

func (e *FakeElement) InputValue() (string, error) {
	if e.missing {
		return "", e.notFound("read value")
	}
	return e.Value, nil
}

func (e *FakeElement) SelectOption(choice browser.OptionChoice) ([]string, error) {
	if e.missing {
		return nil, e.notFound("select")
	}
	if e.Options == nil {
		return nil, &browser.Error{Op: "select", Target: e.selector, Kind: browser.ErrNotSelectable}
	}

	options := make([]browser.Option, len(e.Options))
	for i, o := range e.Options {
		options[i] = browser.Option{Index: i, Value: o, Label: o}
	}
	index, err := browser.MatchOption(options, choice)
	if err != nil {
		return nil, &browser.Error{Op: "select", Target: e.selector, Kind: browser.ErrOptionNotFound, Err: err}
	}
	e.Value = e.Options[index]
	return []string{e.Value}, nil
}

// Locate supports the one child query the runner makes: the selected option.
func (e *FakeElement) Locate(sel browser.Selector) demo.Element {
	key := e.selector + " >> " + sel.String()
	if e.missing || sel.String() != "option:checked" || e.Value == "" {
		return &FakeElement{selector: key, missing: true}
	}
	return &FakeElement{selector: key, HTML: fmt.Sprintf("<option>%s</option>", e.Value)}
}

// CallString joins the recorded calls for compact assertions.
func (d *FakeDriver) CallString() string {
	return strings.Join(d.Calls, ",")
}
