package demo

import (
	"github.com/entrhq/formdemo/pkg/browser"
)

// Driver is the browser surface the runner needs.
type Driver interface {
	Launch(opts browser.LaunchOptions) error
	OpenSession(opts browser.SessionOptions) (Page, error)
	Close() error
}

// Page is one loaded document.
type Page interface {
	Navigate(url string, opts browser.NavigateOptions) error
	Locate(sel browser.Selector) Element
}

// Element is a deferred element reference; every call resolves it anew.
type Element interface {
	OuterHTML() (string, error)
	Fill(value string) error
	Check() error
	IsChecked() (bool, error)
	InputValue() (string, error)
	SelectOption(choice browser.OptionChoice) ([]string, error)
	Locate(sel browser.Selector) Element
}

// NewPlaywrightDriver adapts a browser.Manager to Driver.
func NewPlaywrightDriver(m *browser.Manager) Driver {
	return &playwrightDriver{manager: m}
}

type playwrightDriver struct {
	manager *browser.Manager
}

func (d *playwrightDriver) Launch(opts browser.LaunchOptions) error {
	return d.manager.Launch(opts)
}

func (d *playwrightDriver) OpenSession(opts browser.SessionOptions) (Page, error) {
	session, err := d.manager.OpenSession(opts)
	if err != nil {
		return nil, err
	}
	return &playwrightPage{session: session}, nil
}

func (d *playwrightDriver) Close() error {
	return d.manager.Close()
}

type playwrightPage struct {
	session *browser.Session
}

func (p *playwrightPage) Navigate(url string, opts browser.NavigateOptions) error {
	return p.session.Navigate(url, opts)
}

func (p *playwrightPage) Locate(sel browser.Selector) Element {
	return &playwrightElement{Locator: p.session.Locate(sel)}
}

type playwrightElement struct {
	*browser.Locator
}

func (e *playwrightElement) Locate(sel browser.Selector) Element {
	return &playwrightElement{Locator: e.Locator.Locate(sel)}
}
