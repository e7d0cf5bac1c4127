package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"homefinder/internal/listing"
)

// Config holds all homefinder configuration.
type Config struct {
	// Listing source and state container
	Listings ListingsConfig `yaml:"listings"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ListingsConfig configures the repository and the state container.
type ListingsConfig struct {
	// Simulated fetch latency before each recompute ("600ms", "0s").
	Latency string `yaml:"latency"`

	// Optional YAML listings file; empty means the embedded mock dataset.
	DataFile string `yaml:"data_file"`

	// Category selected when the list opens.
	DefaultCategory string `yaml:"default_category"`
}

// UIConfig configures the interactive browser.
type UIConfig struct {
	Theme          string `yaml:"theme"` // auto, light, dark
	AltScreen      bool   `yaml:"alt_screen"`
	SearchDebounce string `yaml:"search_debounce"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listings: ListingsConfig{
			Latency:         "600ms",
			DefaultCategory: string(listing.CategoryVerified),
		},
		UI: UIConfig{
			Theme:          "auto",
			AltScreen:      true,
			SearchDebounce: "150ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "homes.log",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields defaults.
// A .env file in the working directory is loaded before env overrides apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("HOMES_LATENCY"); v != "" {
		c.Listings.Latency = v
	}
	if v := os.Getenv("HOMES_DATA_FILE"); v != "" {
		c.Listings.DataFile = v
	}
	if v := os.Getenv("HOMES_CATEGORY"); v != "" {
		c.Listings.DefaultCategory = v
	}
	if v := os.Getenv("HOMES_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("HOMES_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("HOMES_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// GetLatency returns the simulated fetch latency. Unparseable values fall
// back to 600ms.
func (c *Config) GetLatency() time.Duration {
	d, err := time.ParseDuration(c.Listings.Latency)
	if err != nil {
		return 600 * time.Millisecond
	}
	return d
}

// GetSearchDebounce returns the keystroke debounce for the search bar.
func (c *Config) GetSearchDebounce() time.Duration {
	d, err := time.ParseDuration(c.UI.SearchDebounce)
	if err != nil {
		return 150 * time.Millisecond
	}
	return d
}

// GetDefaultCategory returns the configured initial category, or Verified.
func (c *Config) GetDefaultCategory() listing.Category {
	cat, err := listing.ParseCategory(c.Listings.DefaultCategory)
	if err != nil {
		return listing.CategoryVerified
	}
	return cat
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// ValidLogFormats lists the accepted logging.format values.
var ValidLogFormats = []string{"console", "json"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Listings.Latency != "" {
		d, err := time.ParseDuration(c.Listings.Latency)
		if err != nil {
			return fmt.Errorf("invalid listings.latency %q: %w", c.Listings.Latency, err)
		}
		if d < 0 {
			return fmt.Errorf("listings.latency must not be negative (got %s)", d)
		}
	}

	if c.Listings.DefaultCategory != "" {
		if _, err := listing.ParseCategory(c.Listings.DefaultCategory); err != nil {
			return fmt.Errorf("invalid listings.default_category: %w", err)
		}
	}

	if c.UI.SearchDebounce != "" {
		d, err := time.ParseDuration(c.UI.SearchDebounce)
		if err != nil {
			return fmt.Errorf("invalid ui.search_debounce %q: %w", c.UI.SearchDebounce, err)
		}
		if d < 0 {
			return fmt.Errorf("ui.search_debounce must not be negative (got %s)", d)
		}
	}

	if c.UI.Theme != "" && !slices.Contains(ValidThemes, strings.ToLower(c.UI.Theme)) {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	if c.Logging.Format != "" && !slices.Contains(ValidLogFormats, strings.ToLower(c.Logging.Format)) {
		return fmt.Errorf("invalid logging.format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}

	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}

	return nil
}
