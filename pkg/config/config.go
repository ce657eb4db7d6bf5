// Package config holds the run configuration for formdemo. Every field has
// a default, so running without a config file reproduces the fixed demo.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/formdemo/pkg/browser"
)

// DefaultURL is the demo site whose DOM the default steps target.
const DefaultURL = "https://testingexamples.github.io"

// Config represents the configuration of one demo run
type Config struct {
	// Page to open
	URL string `yaml:"url" json:"url"`

	// Browser process settings
	Browser BrowserConfig `yaml:"browser" json:"browser"`

	// Context and page settings
	Session SessionConfig `yaml:"session" json:"session"`

	// Navigation load condition
	Navigation NavigationConfig `yaml:"navigation" json:"navigation"`

	// Steps replaces the built-in demo sequence when non-empty
	Steps []StepConfig `yaml:"steps" json:"steps"`

	// StepFilter is a glob; only steps whose name matches run
	StepFilter string `yaml:"step_filter" json:"step_filter"`

	// Output formatting
	Output OutputConfig `yaml:"output" json:"output"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// BrowserConfig configures the browser process
type BrowserConfig struct {
	Type           string   `yaml:"type" json:"type"`
	Headless       bool     `yaml:"headless" json:"headless"`
	Args           []string `yaml:"args" json:"args"`
	ExecutablePath string   `yaml:"executable_path" json:"executable_path"`
	Install        bool     `yaml:"install" json:"install"`
}

// SessionConfig configures the isolated context and its page
type SessionConfig struct {
	AcceptDownloads bool          `yaml:"accept_downloads" json:"accept_downloads"`
	ViewportWidth   int           `yaml:"viewport_width" json:"viewport_width"`
	ViewportHeight  int           `yaml:"viewport_height" json:"viewport_height"`
	Timeout         time.Duration `yaml:"timeout" json:"timeout"` // Element wait window and navigation timeout
	Strict          bool          `yaml:"strict" json:"strict"`   // Fail on selectors matching several elements
}

// NavigationConfig configures page loads
type NavigationConfig struct {
	// WaitUntil: load, domcontentloaded, networkidle or commit
	WaitUntil string `yaml:"wait_until" json:"wait_until"`
}

// StepConfig describes one lookup or interaction
type StepConfig struct {
	Name     string        `yaml:"name" json:"name"`
	Selector string        `yaml:"selector" json:"selector"` // kind:expression, see browser.ParseSelector
	Action   string        `yaml:"action" json:"action"`     // read, fill, check or select
	Value    string        `yaml:"value" json:"value"`       // Text for fill
	Option   *OptionConfig `yaml:"option" json:"option"`     // Choice for select
}

// OptionConfig picks a select option by index, value or label
type OptionConfig struct {
	Index *int   `yaml:"index" json:"index"`
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Choice converts the option config to a browser.OptionChoice.
func (o *OptionConfig) Choice() browser.OptionChoice {
	if o == nil {
		return browser.OptionIndex(0)
	}
	return browser.OptionChoice{Index: o.Index, Value: o.Value, Label: o.Label}
}

// OutputConfig configures standard output
type OutputConfig struct {
	// Color syntax-highlights markup lines
	Color bool `yaml:"color" json:"color"`
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Verbosity controls logging level: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity" json:"verbosity"`

	// Dir overrides the log directory (default ~/.formdemo/logs)
	Dir string `yaml:"dir" json:"dir"`
}

// DefaultConfig returns the configuration of the fixed demo
func DefaultConfig() *Config {
	return &Config{
		URL: DefaultURL,
		Browser: BrowserConfig{
			Type:     string(browser.BrowserChromium),
			Headless: false,
			Args:     append([]string(nil), browser.DefaultLaunchArgs...),
		},
		Session: SessionConfig{
			AcceptDownloads: false,
			Timeout:         time.Duration(browser.DefaultTimeout) * time.Millisecond,
		},
		Navigation: NavigationConfig{
			WaitUntil: browser.DefaultWaitUntil,
		},
		Logging: LoggingConfig{
			Verbosity: "normal",
		},
	}
}

// LoadFile reads a YAML file over the defaults. Fields absent from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}

	if !browser.BrowserType(c.Browser.Type).Valid() {
		return fmt.Errorf("invalid browser type: %s (must be 'chromium', 'firefox', or 'webkit')", c.Browser.Type)
	}

	if c.Session.Timeout <= 0 {
		return fmt.Errorf("session timeout must be positive")
	}

	if (c.Session.ViewportWidth == 0) != (c.Session.ViewportHeight == 0) {
		return fmt.Errorf("viewport_width and viewport_height must be set together")
	}
	if c.Session.ViewportWidth < 0 || c.Session.ViewportHeight < 0 {
		return fmt.Errorf("viewport dimensions cannot be negative")
	}

	if c.Navigation.WaitUntil == "" {
		c.Navigation.WaitUntil = browser.DefaultWaitUntil
	}
	if !browser.ValidWaitUntil(c.Navigation.WaitUntil) {
		return fmt.Errorf("invalid wait_until: %s (must be 'load', 'domcontentloaded', 'networkidle', or 'commit')", c.Navigation.WaitUntil)
	}

	// Set default verbosity if not specified
	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = "normal"
	}
	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	if !validLevels[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	for i, step := range c.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i+1)
		}
		if _, err := browser.ParseSelector(step.Selector); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}

	return nil
}

// LaunchOptions converts the browser section for browser.Manager.Launch.
func (c *Config) LaunchOptions() browser.LaunchOptions {
	return browser.LaunchOptions{
		Browser:        browser.BrowserType(c.Browser.Type),
		Headless:       c.Browser.Headless,
		Args:           c.Browser.Args,
		ExecutablePath: c.Browser.ExecutablePath,
		Install:        c.Browser.Install,
	}
}

// SessionOptions converts the session section for browser.Manager.OpenSession.
func (c *Config) SessionOptions() browser.SessionOptions {
	opts := browser.SessionOptions{
		AcceptDownloads: c.Session.AcceptDownloads,
		Timeout:         float64(c.Session.Timeout / time.Millisecond),
		Strict:          c.Session.Strict,
	}
	if c.Session.ViewportWidth > 0 {
		opts.Viewport = &browser.Viewport{
			Width:  c.Session.ViewportWidth,
			Height: c.Session.ViewportHeight,
		}
	}
	return opts
}

// NavigateOptions converts the navigation section for browser.Session.Navigate.
func (c *Config) NavigateOptions() browser.NavigateOptions {
	return browser.NavigateOptions{WaitUntil: c.Navigation.WaitUntil}
}
