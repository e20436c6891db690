package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.Colormap != "viridis" {
		t.Errorf("Display.Colormap = %q, want %q", cfg.Display.Colormap, "viridis")
	}
	if cfg.Display.ChartWidth != 12 {
		t.Errorf("Display.ChartWidth = %v, want 12", cfg.Display.ChartWidth)
	}
	if cfg.Display.ChartHeight != 6 {
		t.Errorf("Display.ChartHeight = %v, want 6", cfg.Display.ChartHeight)
	}
	if cfg.Cache.Disabled {
		t.Error("cache should be enabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name:        "defaults are valid",
			config:      DefaultConfig(),
			expectError: false,
		},
		{
			name: "empty colormap is allowed",
			config: Config{
				Display: DisplayConfig{ChartWidth: 12, ChartHeight: 6},
			},
			expectError: false,
		},
		{
			name: "zero chart width",
			config: Config{
				Display: DisplayConfig{Colormap: "plasma", ChartWidth: 0, ChartHeight: 6},
			},
			expectError: true,
			errContains: "chart_width",
		},
		{
			name: "zero chart height",
			config: Config{
				Display: DisplayConfig{Colormap: "plasma", ChartWidth: 12, ChartHeight: 0},
			},
			expectError: true,
			errContains: "chart_height",
		},
		{
			name: "unknown colormap",
			config: Config{
				Display: DisplayConfig{Colormap: "rainbowroad"},
			},
			expectError: true,
			errContains: "colormap",
		},
		{
			name: "negative chart width",
			config: Config{
				Display: DisplayConfig{Colormap: "plasma", ChartWidth: -1, ChartHeight: 6},
			},
			expectError: true,
			errContains: "chart_width",
		},
		{
			name: "negative chart height",
			config: Config{
				Display: DisplayConfig{Colormap: "plasma", ChartWidth: 12, ChartHeight: -2},
			},
			expectError: true,
			errContains: "chart_height",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Fatal("Validate() succeeded, want error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not mention %q", err, tt.errContains)
				}
			} else if err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// No file yet.
	if _, err := Load(); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("Load() with no file error = %v, want ErrNoConfig", err)
	}

	cfg := DefaultConfig()
	cfg.Display.Colormap = "plasma"
	cfg.Display.ChartWidth = 16
	cfg.Cache.Disabled = true
	if err := Save(&cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Display.Colormap != "plasma" {
		t.Errorf("Display.Colormap = %q, want %q", got.Display.Colormap, "plasma")
	}
	if got.Display.ChartWidth != 16 {
		t.Errorf("Display.ChartWidth = %v, want 16", got.Display.ChartWidth)
	}
	if !got.Cache.Disabled {
		t.Error("Cache.Disabled should survive the round trip")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// A sparse hand-written file: unset values fall back to defaults.
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	sparse := []byte(`{"display": {"colormap": "jet"}}`)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), sparse, 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Display.Colormap != "jet" {
		t.Errorf("Display.Colormap = %q, want %q", got.Display.Colormap, "jet")
	}
	if got.Display.ChartWidth != 12 || got.Display.ChartHeight != 6 {
		t.Errorf("chart size = %v x %v, want defaults 12 x 6", got.Display.ChartWidth, got.Display.ChartHeight)
	}
}

func TestCreateExample(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() after CreateExample() error = %v", err)
	}
	if *got != DefaultConfig() {
		t.Errorf("example config = %+v, want defaults %+v", *got, DefaultConfig())
	}

	// An existing config is never overwritten.
	got.Display.Colormap = "magma"
	if err := Save(got); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := CreateExample(); err != nil {
		t.Fatalf("second CreateExample() error = %v", err)
	}
	again, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again.Display.Colormap != "magma" {
		t.Errorf("Display.Colormap = %q, want %q (CreateExample must not overwrite)", again.Display.Colormap, "magma")
	}
}

func TestValidColormapsSorted(t *testing.T) {
	// Keep the list alphabetical so the error message reads well.
	for i := 1; i < len(validColormaps); i++ {
		if validColormaps[i-1] >= validColormaps[i] {
			t.Errorf("validColormaps not sorted: %q before %q", validColormaps[i-1], validColormaps[i])
		}
	}
}
