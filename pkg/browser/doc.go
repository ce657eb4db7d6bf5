// Package browser wraps Playwright for a single scripted browser run.
//
// A run owns exactly one browser, one isolated context and one page. The
// Manager launches and tears them down; the Session navigates; a Locator is
// a deferred element reference that is resolved against the page's current
// DOM each time an action or read is performed on it.
//
// # Lifecycle
//
//  1. Launch: start the Playwright driver and a browser process
//  2. OpenSession: create an isolated context and a page inside it
//  3. Navigate and Locate: load a document and act on its elements
//  4. Close: release page, context, browser and driver (exactly once)
//
// # Errors
//
// Failures are reported as *Error values that unwrap both to one of the
// package sentinels (ErrLaunch, ErrNavigation, ErrElementNotFound, ...) and
// to the underlying Playwright error, so callers can use errors.Is against
// either.
//
// # Example Usage
//
//	m := NewManager()
//	defer m.Close()
//
//	if err := m.Launch(LaunchOptions{Browser: BrowserChromium, Headless: true}); err != nil {
//	    return err
//	}
//	s, err := m.OpenSession(SessionOptions{})
//	if err != nil {
//	    return err
//	}
//	if err := s.Navigate("https://example.com", NavigateOptions{}); err != nil {
//	    return err
//	}
//	markup, err := s.Locate(ByID("main")).OuterHTML()
package browser
