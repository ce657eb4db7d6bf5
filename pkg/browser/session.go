package browser

import (
	"github.com/playwright-community/playwright-go"
)

// Session is the isolated context and page of a run.
type Session struct {
	// Context is the browser context (isolated cookie and storage jar)
	Context playwright.BrowserContext

	// Page is the active page
	Page playwright.Page

	// Timeout is the element wait window in milliseconds
	Timeout float64

	// Strict rejects selectors matching more than one element
	Strict bool

	// CurrentURL is the URL of the current page
	CurrentURL string
}

// Navigate loads url and waits for the requested load state.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	if opts.WaitUntil == "" {
		opts.WaitUntil = DefaultWaitUntil
	}

	waitUntil := playwright.WaitUntilState(opts.WaitUntil)
	playwrightOpts := playwright.PageGotoOptions{
		WaitUntil: &waitUntil,
	}
	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if _, err := s.Page.Goto(url, playwrightOpts); err != nil {
		return newError("navigate", url, ErrNavigation, err)
	}

	s.CurrentURL = s.Page.URL()
	return nil
}

// Locate returns a deferred reference to the elements matching sel.
// Nothing is queried until an action or read is performed on it.
func (s *Session) Locate(sel Selector) *Locator {
	return &Locator{sel: sel, session: s}
}
