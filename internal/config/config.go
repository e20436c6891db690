package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Cache   CacheConfig   `json:"cache"`
}

// DisplayConfig holds chart preferences
type DisplayConfig struct {
	Colormap    string  `json:"colormap"`
	ChartWidth  float64 `json:"chart_width"`  // inches
	ChartHeight float64 `json:"chart_height"` // inches
}

// CacheConfig holds decode-cache preferences
type CacheConfig struct {
	Disabled bool `json:"disabled"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// validColormaps mirrors the palettes the renderer knows about.
var validColormaps = []string{"inferno", "jet", "magma", "plasma", "viridis"}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Colormap:    "viridis",
			ChartWidth:  12,
			ChartHeight: 6,
		},
	}
}

// Load reads the configuration from ~/.trailprofile/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.Colormap == "" {
		cfg.Display.Colormap = defaults.Display.Colormap
	}
	if cfg.Display.ChartWidth == 0 {
		cfg.Display.ChartWidth = defaults.Display.ChartWidth
	}
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.trailprofile/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has usable values
func (c *Config) Validate() error {
	if c.Display.Colormap != "" && !isValidColormap(c.Display.Colormap) {
		return fmt.Errorf("display.colormap must be one of %v, got %q", validColormaps, c.Display.Colormap)
	}
	if c.Display.ChartWidth <= 0 {
		return fmt.Errorf("display.chart_width must be positive, got %v", c.Display.ChartWidth)
	}
	if c.Display.ChartHeight <= 0 {
		return fmt.Errorf("display.chart_height must be positive, got %v", c.Display.ChartHeight)
	}
	return nil
}

func isValidColormap(name string) bool {
	for _, v := range validColormaps {
		if v == name {
			return true
		}
	}
	return false
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".trailprofile", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".trailprofile"), nil
}
