// Package main is the entry point for the monthcal terminal calendar.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/monthcal/internal/calendar"
	"github.com/hy4ri/monthcal/internal/config"
	"github.com/hy4ri/monthcal/internal/log"
	"github.com/hy4ri/monthcal/internal/tui"
)

const version = "0.1.0"

const helpText = `monthcal - Month-view terminal calendar

USAGE:
    monthcal [OPTIONS]

OPTIONS:
    -h, --help        Show this help message
    -v, --version     Show version information
    --init            Create a template config file
    --config <path>   Use a config file other than the default

CONFIGURATION:
    Config file: ~/.config/monthcal/config.yaml

KEYBINDINGS:
    h/l or ←/→      Previous/next day
    k/j or ↑/↓      Previous/next week
    [ / ]           Previous/next month
    t               Go to today
    a, Enter        Add event (up to 3 per day)
    yy              Copy the selected day's events
    E               Export all events to .ics
    ?               Show help
    q               Quit

Events live in memory only and are gone when monthcal exits.
Supported dates: 1970-01-01 to 2200-01-01.
`

const configTemplate = `# monthcal configuration
# Location: ~/.config/monthcal/config.yaml

ui:
  # h/j/k/l in addition to the arrow keys (default: true)
  vim_mode: true
  # Also raise notices as desktop notifications
  desktop_notices: false
  # Width of a day cell in the month grid (6-30)
  cell_width: 14

export:
  # Where "E" writes the .ics export (default: ~/monthcal-export.ics)
  # ics_path: ""

log:
  # Debug log file; leave empty to disable logging
  # debug_file: ""
  level: info
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Path to config file")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("monthcal version %s\n", version)
		return nil
	}

	if configPath == "" {
		path, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		configPath = path
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	return runApp(configPath)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the calendar TUI.
func runApp(configPath string) error {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := log.Setup(cfg.Log.DebugFile, log.ParseLevel(cfg.Log.Level)); err != nil {
		// Non-fatal: just warn
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer log.Close()

	store := calendar.NewStore()
	log.Info("starting", "version", version, "today", store.Today(), "config", configPath)

	app := tui.NewApp(store, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	log.Info("exiting", "events", store.Count())
	return nil
}
