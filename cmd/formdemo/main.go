// Package main provides the formdemo command: it drives a real browser
// through the form controls of testingexamples.github.io, printing the
// markup of every element it finds.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/entrhq/formdemo/pkg/browser"
	"github.com/entrhq/formdemo/pkg/config"
	"github.com/entrhq/formdemo/pkg/demo"
	"github.com/entrhq/formdemo/pkg/logging"
)

const version = "0.1.0"

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigFile  string
	URL         string
	Browser     string
	Headless    bool
	Timeout     time.Duration
	Steps       string
	Install     bool
	Color       bool
	Verbosity   string
	LogDir      string
	ShowVersion bool

	// set records which flags appeared on the command line
	set map[string]bool
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)

func main() {
	cli, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if cli.ShowVersion {
		fmt.Printf("formdemo v%s\n", version)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cli, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// parseFlags parses command line flags
func parseFlags(args []string, stderr io.Writer) (*CLIConfig, error) {
	cli := &CLIConfig{set: make(map[string]bool)}

	fs := flag.NewFlagSet("formdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cli.ConfigFile, "config", "", "Path to configuration file (YAML)")
	fs.StringVar(&cli.URL, "url", config.DefaultURL, "Page to open")
	fs.StringVar(&cli.Browser, "browser", string(browser.BrowserChromium), "Browser engine: chromium, firefox or webkit")
	fs.BoolVar(&cli.Headless, "headless", false, "Run the browser without a window")
	fs.DurationVar(&cli.Timeout, "timeout", time.Duration(browser.DefaultTimeout)*time.Millisecond, "Element wait and navigation timeout")
	fs.StringVar(&cli.Steps, "steps", "", "Glob selecting which steps run, e.g. 'check-*'")
	fs.BoolVar(&cli.Install, "install", false, "Download the driver and browser before launching")
	fs.BoolVar(&cli.Color, "color", false, "Syntax-highlight printed markup")
	fs.StringVar(&cli.Verbosity, "verbosity", "normal", "Log verbosity: quiet, normal, verbose or debug")
	fs.StringVar(&cli.LogDir, "log-dir", "", "Log directory (default ~/.formdemo/logs)")
	fs.BoolVar(&cli.ShowVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "formdemo - browser form interaction demo\n\n")
		fmt.Fprintf(stderr, "Usage: formdemo [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  # Run the full demo in a visible Chromium window\n")
		fmt.Fprintf(stderr, "  formdemo\n\n")
		fmt.Fprintf(stderr, "  # Only the checkbox and radio steps, headless Firefox\n")
		fmt.Fprintf(stderr, "  formdemo -browser firefox -headless -steps 'check-*'\n\n")
		fmt.Fprintf(stderr, "  # Custom steps from a file\n")
		fmt.Fprintf(stderr, "  formdemo -config formdemo.yaml\n\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { cli.set[f.Name] = true })
	return cli, nil
}

// loadConfig reads the config file if one was given and applies the flags
// that were set explicitly on top of it.
func loadConfig(cli *CLIConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if cli.ConfigFile != "" {
		loaded, err := config.LoadFile(cli.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cli.set["url"] {
		cfg.URL = cli.URL
	}
	if cli.set["browser"] {
		cfg.Browser.Type = cli.Browser
	}
	if cli.set["headless"] {
		cfg.Browser.Headless = cli.Headless
	}
	if cli.set["install"] {
		cfg.Browser.Install = cli.Install
	}
	if cli.set["timeout"] {
		cfg.Session.Timeout = cli.Timeout
	}
	if cli.set["steps"] {
		cfg.StepFilter = cli.Steps
	}
	if cli.set["color"] {
		cfg.Output.Color = cli.Color
	}
	if cli.set["verbosity"] {
		cfg.Logging.Verbosity = cli.Verbosity
	}
	if cli.set["log-dir"] {
		cfg.Logging.Dir = cli.LogDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// resolveSteps picks configured or default steps and applies the filter.
func resolveSteps(cfg *config.Config) ([]demo.Step, error) {
	steps := demo.DefaultSteps()
	if len(cfg.Steps) > 0 {
		configured, err := demo.StepsFromConfig(cfg.Steps)
		if err != nil {
			return nil, err
		}
		steps = configured
	}
	return demo.FilterSteps(steps, cfg.StepFilter)
}

// run wires config, logging and the browser driver, and returns the exit code.
func run(ctx context.Context, cli *CLIConfig, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(cli)
	if err != nil {
		reportFailure(stderr, nil, err)
		return 1
	}

	logging.SetLogDirectory(cfg.Logging.Dir)
	logger, _ := logging.NewLogger("formdemo")
	defer logger.Close()
	if level, levelErr := logging.ParseVerbosity(cfg.Logging.Verbosity); levelErr == nil {
		logger.SetLevel(level)
	}
	logger.Infof("formdemo v%s session %s", version, logger.SessionID())

	manager := browser.NewManager()
	manager.SetOutput(logger.Writer())

	if err := execute(ctx, cfg, demo.NewPlaywrightDriver(manager), logger, stdout); err != nil {
		reportFailure(stderr, logger, err)
		return 1
	}
	return 0
}

// execute runs the demo over driver. Teardown has happened by the time it returns.
func execute(ctx context.Context, cfg *config.Config, driver demo.Driver, logger *logging.Logger, stdout io.Writer) error {
	steps, err := resolveSteps(cfg)
	if err != nil {
		return err
	}

	runner := demo.NewRunner(driver, cfg,
		demo.WithSteps(steps),
		demo.WithReporter(demo.NewReporter(stdout, cfg.Output.Color)),
		demo.WithLogger(logger.With("runner")),
	)
	return runner.Run(ctx)
}

// reportFailure prints err to stderr and writes it with a stack trace to the log.
func reportFailure(stderr io.Writer, logger *logging.Logger, err error) {
	msg := fmt.Sprintf("formdemo: %v", err)
	if isTerminal(stderr) {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(stderr, msg)

	if logger == nil {
		return
	}
	logger.Errorf("run failed: %s", browser.Describe(err))
	if trace := browser.Trace(err); trace != "" {
		logger.Errorf("browser stack:\n%s", trace)
	} else {
		logger.Errorf("stack:\n%s", debug.Stack())
	}
	if path := logger.LogPath(); path != "" {
		fmt.Fprintf(stderr, "details logged to %s\n", path)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
