package browser

// BrowserType names the Playwright browser engine to launch.
type BrowserType string

const (
	BrowserChromium BrowserType = "chromium"
	BrowserFirefox  BrowserType = "firefox"
	BrowserWebKit   BrowserType = "webkit"
)

// Valid reports whether t is an engine Playwright can launch.
func (t BrowserType) Valid() bool {
	switch t {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
		return true
	}
	return false
}

// LaunchOptions configures the browser process.
type LaunchOptions struct {
	// Browser selects the engine (default chromium)
	Browser BrowserType

	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Args are extra command line switches passed to the browser
	Args []string

	// ExecutablePath overrides the bundled browser binary
	ExecutablePath string

	// Install downloads the driver and browser before launching
	Install bool

	// Timeout for the launch itself in milliseconds (0 means default)
	Timeout float64
}

// SessionOptions configures the isolated context and its page.
type SessionOptions struct {
	// AcceptDownloads allows the context to save downloads
	AcceptDownloads bool

	// Viewport sets the page viewport; nil keeps the browser default
	Viewport *Viewport

	// Timeout is the default timeout for page operations in milliseconds.
	// It bounds the element wait window used by every Locator action.
	Timeout float64

	// Strict makes element resolution fail with ErrAmbiguousElement when a
	// selector matches more than one element instead of taking the first.
	Strict bool
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful
	// Valid values: "load", "domcontentloaded", "networkidle", "commit"
	WaitUntil string

	// Timeout in milliseconds (0 means session default)
	Timeout float64
}

// Default values for various operations
const (
	DefaultTimeout   = 30000.0 // 30 seconds in milliseconds
	DefaultWaitUntil = "load"
)

// DefaultLaunchArgs mirror a desktop run with verbose logging and no
// notification prompts.
var DefaultLaunchArgs = []string{
	"--verbose",
	"--disable-notifications",
}

// ValidWaitUntil reports whether s is a load state Playwright accepts.
func ValidWaitUntil(s string) bool {
	switch s {
	case "load", "domcontentloaded", "networkidle", "commit":
		return true
	}
	return false
}
