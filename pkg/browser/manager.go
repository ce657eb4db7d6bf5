package browser

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// Manager owns the Playwright driver and the single browser of a run.
type Manager struct {
	mu        sync.Mutex
	pw        *playwright.Playwright
	browser   playwright.Browser
	session   *Session
	output    io.Writer
	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// NewManager creates a manager. Driver output is discarded unless
// SetOutput is called.
func NewManager() *Manager {
	return &Manager{output: io.Discard}
}

// SetOutput routes Playwright driver stdout/stderr to w.
func (m *Manager) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.output = w
}

// Launch starts the Playwright driver and a browser process.
func (m *Manager) Launch(opts LaunchOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return newError("launch", "", ErrLaunch, errors.New("manager is closed"))
	}
	if m.browser != nil {
		return newError("launch", "", ErrLaunch, errors.New("browser already launched"))
	}

	if opts.Browser == "" {
		opts.Browser = BrowserChromium
	}
	if !opts.Browser.Valid() {
		return newError("launch", string(opts.Browser), ErrLaunch, fmt.Errorf("unsupported browser %q", opts.Browser))
	}

	runOpts := &playwright.RunOptions{
		Browsers: []string{string(opts.Browser)},
		Verbose:  false,
		Stdout:   m.output,
		Stderr:   m.output,
	}

	if opts.Install {
		if err := playwright.Install(runOpts); err != nil {
			return newError("install", string(opts.Browser), ErrLaunch, err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return newError("start driver", "", ErrLaunch, err)
	}
	m.pw = pw

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args:     opts.Args,
	}
	if opts.ExecutablePath != "" {
		launchOpts.ExecutablePath = playwright.String(opts.ExecutablePath)
	}
	if opts.Timeout > 0 {
		launchOpts.Timeout = playwright.Float(opts.Timeout)
	}

	browser, err := m.browserType(opts.Browser).Launch(launchOpts)
	if err != nil {
		return newError("launch", string(opts.Browser), ErrLaunch, err)
	}
	m.browser = browser
	return nil
}

func (m *Manager) browserType(t BrowserType) playwright.BrowserType {
	switch t {
	case BrowserFirefox:
		return m.pw.Firefox
	case BrowserWebKit:
		return m.pw.WebKit
	default:
		return m.pw.Chromium
	}
}

// OpenSession creates an isolated context and a page within it.
func (m *Manager) OpenSession(opts SessionOptions) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.browser == nil || !m.browser.IsConnected() {
		return nil, newError("open session", "", ErrSession, errors.New("browser is not running"))
	}
	if m.session != nil {
		return nil, newError("open session", "", ErrSession, errors.New("session already open"))
	}

	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	contextOpts := playwright.BrowserNewContextOptions{
		AcceptDownloads: playwright.Bool(opts.AcceptDownloads),
	}
	if opts.Viewport != nil {
		contextOpts.Viewport = &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		}
	}

	context, err := m.browser.NewContext(contextOpts)
	if err != nil {
		return nil, newError("new context", "", ErrSession, err)
	}

	page, err := context.NewPage()
	if err != nil {
		_ = context.Close() // Ignore errors, the page error is the one to report
		return nil, newError("new page", "", ErrSession, err)
	}

	page.SetDefaultTimeout(opts.Timeout)
	page.SetDefaultNavigationTimeout(opts.Timeout)

	m.session = &Session{
		Context:    context,
		Page:       page,
		Timeout:    opts.Timeout,
		Strict:     opts.Strict,
		CurrentURL: "about:blank",
	}
	return m.session, nil
}

// Close releases the page, context, browser and driver. Only the first call
// does any work; later calls return the first call's result.
func (m *Manager) Close() error {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		var errs []error
		if m.session != nil {
			if err := m.session.Page.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close page: %w", err))
			}
			if err := m.session.Context.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close context: %w", err))
			}
			m.session = nil
		}
		if m.browser != nil {
			if err := m.browser.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close browser: %w", err))
			}
			m.browser = nil
		}
		if m.pw != nil {
			if err := m.pw.Stop(); err != nil {
				errs = append(errs, fmt.Errorf("stop playwright: %w", err))
			}
			m.pw = nil
		}
		m.closed = true
		m.closeErr = errors.Join(errs...)
	})
	return m.closeErr
}

// Closed reports whether Close has run.
func (m *Manager) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
