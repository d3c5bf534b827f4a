// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Cell width limits for the expanded grid.
const (
	MinCellWidth     = 6
	MaxCellWidth     = 30
	DefaultCellWidth = 14
)

// Config represents the application configuration.
type Config struct {
	UI     UIConfig     `yaml:"ui"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode        bool `yaml:"vim_mode"`
	DesktopNotices bool `yaml:"desktop_notices"`
	CellWidth      int  `yaml:"cell_width,omitempty"`
}

// ExportConfig controls the ICS export.
type ExportConfig struct {
	// ICSPath is where "E" writes the calendar. Defaults to ~/monthcal-export.ics
	ICSPath string `yaml:"ics_path,omitempty"`
}

// LogConfig controls the debug log. An empty DebugFile disables logging.
type LogConfig struct {
	DebugFile string `yaml:"debug_file,omitempty"`
	Level     string `yaml:"level,omitempty"` // "debug", "info" or "error"
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:   true,
			CellWidth: DefaultCellWidth,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "monthcal")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path.
// If the file doesn't exist, returns a default configuration.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveFile writes the configuration to path.
func SaveFile(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ICSPath returns the export destination, falling back to the home directory.
func (c *Config) ICSPath() (string, error) {
	if c.Export.ICSPath != "" {
		return c.Export.ICSPath, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, "monthcal-export.ics"), nil
}

func (c *Config) normalize() {
	switch {
	case c.UI.CellWidth == 0:
		c.UI.CellWidth = DefaultCellWidth
	case c.UI.CellWidth < MinCellWidth:
		c.UI.CellWidth = MinCellWidth
	case c.UI.CellWidth > MaxCellWidth:
		c.UI.CellWidth = MaxCellWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
