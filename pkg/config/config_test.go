package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entrhq/formdemo/pkg/browser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "formdemo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultURL, cfg.URL)
	assert.Equal(t, "chromium", cfg.Browser.Type)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, []string{"--verbose", "--disable-notifications"}, cfg.Browser.Args)
	assert.False(t, cfg.Session.AcceptDownloads)
	assert.Equal(t, 30*time.Second, cfg.Session.Timeout)
	assert.Empty(t, cfg.Steps)
}

func TestDefaultConfig_ArgsAreCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browser.Args[0] = "--changed"
	assert.Equal(t, "--verbose", browser.DefaultLaunchArgs[0])
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
url: http://localhost:8080/form.html
browser:
  type: firefox
  headless: true
session:
  timeout: 5s
  viewport_width: 800
  viewport_height: 600
steps:
  - name: select-bravo
    selector: id:select-example-1-id
    action: select
    option:
      label: bravo
logging:
  verbosity: debug
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "http://localhost:8080/form.html", cfg.URL)
	assert.Equal(t, "firefox", cfg.Browser.Type)
	assert.True(t, cfg.Browser.Headless)
	// Untouched sections keep defaults
	assert.Equal(t, []string{"--verbose", "--disable-notifications"}, cfg.Browser.Args)
	assert.Equal(t, "load", cfg.Navigation.WaitUntil)
	assert.Equal(t, 5*time.Second, cfg.Session.Timeout)

	require.Len(t, cfg.Steps, 1)
	assert.Equal(t, browser.OptionLabel("bravo"), cfg.Steps[0].Option.Choice())

	opts := cfg.SessionOptions()
	assert.Equal(t, 5000.0, opts.Timeout)
	require.NotNil(t, opts.Viewport)
	assert.Equal(t, 800, opts.Viewport.Width)

	launch := cfg.LaunchOptions()
	assert.Equal(t, browser.BrowserFirefox, launch.Browser)
	assert.True(t, launch.Headless)
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = LoadFile(writeConfig(t, "url: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError string
	}{
		{name: "missing url", mutate: func(c *Config) { c.URL = "" }, expectError: "url is required"},
		{name: "bad browser", mutate: func(c *Config) { c.Browser.Type = "lynx" }, expectError: "invalid browser type"},
		{name: "zero timeout", mutate: func(c *Config) { c.Session.Timeout = 0 }, expectError: "timeout must be positive"},
		{name: "half viewport", mutate: func(c *Config) { c.Session.ViewportWidth = 800 }, expectError: "must be set together"},
		{name: "bad wait state", mutate: func(c *Config) { c.Navigation.WaitUntil = "idle" }, expectError: "invalid wait_until"},
		{name: "bad verbosity", mutate: func(c *Config) { c.Logging.Verbosity = "loud" }, expectError: "invalid logging verbosity"},
		{
			name:        "unnamed step",
			mutate:      func(c *Config) { c.Steps = []StepConfig{{Selector: "id:x"}} },
			expectError: "step 1: name is required",
		},
		{
			name:        "bad step selector",
			mutate:      func(c *Config) { c.Steps = []StepConfig{{Name: "s", Selector: "attr:name"}} },
			expectError: `step "s"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidate_FillsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation.WaitUntil = ""
	cfg.Logging.Verbosity = ""

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "load", cfg.Navigation.WaitUntil)
	assert.Equal(t, "normal", cfg.Logging.Verbosity)
}

func TestOptionConfig_ChoiceDefaultsToFirst(t *testing.T) {
	var o *OptionConfig
	assert.Equal(t, browser.OptionIndex(0), o.Choice())
}
