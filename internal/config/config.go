package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ppiankov/plugintriage/internal/updatecenter"
	"github.com/spf13/viper"
)

// Config holds all configuration for plugintriage
type Config struct {
	// Update center snapshot URL
	UpdateCenterURL string `mapstructure:"update_center_url"`

	// Local input files
	IssuesFile  string `mapstructure:"issues_file"`
	ScannerFile string `mapstructure:"scanner_file"`
	NotesFile   string `mapstructure:"notes_file"`

	// Report output path
	OutputFile string `mapstructure:"output_file"`

	// Years without a release before a plugin counts as unmaintained
	StaleYears int `mapstructure:"stale_years"`

	// Timeout for the update center fetch, in seconds
	HTTPTimeoutSeconds int `mapstructure:"http_timeout_seconds"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		UpdateCenterURL:    updatecenter.DefaultURL,
		IssuesFile:         "resources/issues.yaml",
		ScannerFile:        "resources/csp-scanner.yaml",
		NotesFile:          "resources/plugin-notes.yaml",
		OutputFile:         "output/plugin_report.json",
		StaleYears:         5,
		HTTPTimeoutSeconds: 60,
		Verbose:            false,
		Debug:              false,
	}
}

// Load loads configuration with the following precedence (lowest to highest):
// 1. Default values
// 2. Config file (~/.plugintriage.yaml or ./plugintriage.yaml)
// 3. Environment variables (PLUGINTRIAGE_*)
// 4. CLI flags (handled by caller)
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path
// If path is empty, it searches for config in standard locations
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("update_center_url", defaults.UpdateCenterURL)
	v.SetDefault("issues_file", defaults.IssuesFile)
	v.SetDefault("scanner_file", defaults.ScannerFile)
	v.SetDefault("notes_file", defaults.NotesFile)
	v.SetDefault("output_file", defaults.OutputFile)
	v.SetDefault("stale_years", defaults.StaleYears)
	v.SetDefault("http_timeout_seconds", defaults.HTTPTimeoutSeconds)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	// Set config file settings
	v.SetConfigName("plugintriage")
	v.SetConfigType("yaml")

	if configPath != "" {
		// Use explicit config file path
		v.SetConfigFile(configPath)
	} else {
		// Search for config in standard locations
		// 1. Current directory
		v.AddConfigPath(".")

		// 2. Home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}

		// 3. XDG config directory
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "plugintriage"))
		}
	}

	// Enable environment variable support
	v.SetEnvPrefix("PLUGINTRIAGE")
	v.AutomaticEnv()

	// Try to read config file (ignore error if not found)
	if err := v.ReadInConfig(); err != nil {
		// Only return error if it's not a "file not found" error
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	// Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.UpdateCenterURL == "" {
		return fmt.Errorf("update_center_url cannot be empty")
	}
	if c.IssuesFile == "" {
		return fmt.Errorf("issues_file cannot be empty")
	}
	if c.ScannerFile == "" {
		return fmt.Errorf("scanner_file cannot be empty")
	}
	if c.NotesFile == "" {
		return fmt.Errorf("notes_file cannot be empty")
	}
	if c.OutputFile == "" {
		return fmt.Errorf("output_file cannot be empty")
	}
	if c.StaleYears <= 0 {
		return fmt.Errorf("stale_years must be positive")
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("http_timeout_seconds must be positive")
	}

	return nil
}

// GenerateSampleConfig generates a sample configuration file content
func GenerateSampleConfig() string {
	return `# plugintriage Configuration
# Save this file as ~/.plugintriage.yaml or ./plugintriage.yaml

# Update center snapshot to fetch plugin metadata from
update_center_url: https://mirrors.updates.jenkins.io/current/update-center.actual.json

# Local findings and annotation files
issues_file: resources/issues.yaml
scanner_file: resources/csp-scanner.yaml
notes_file: resources/plugin-notes.yaml

# Where the generated report is written
output_file: output/plugin_report.json

# Years without a release before a plugin counts as unmaintained
stale_years: 5

# Timeout for the update center fetch, in seconds
http_timeout_seconds: 60

# Enable verbose output
verbose: false

# Enable debug mode
debug: false
`
}
