package config

import (
	"fmt"
	"os"

	"github.com/harrison/fstools/internal/logger"
	"gopkg.in/yaml.v3"
)

// Color modes
const (
	ColorAuto   = "auto"   // color only when stdout is a terminal
	ColorAlways = "always" // always emit ANSI codes
	ColorNever  = "never"  // plain text only
)

// FindConfig holds findfile defaults
type FindConfig struct {
	// Absolute prints absolute paths regardless of how the root was given
	Absolute bool `yaml:"absolute"`
}

// Config represents fstools configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir enables per-run log files in this directory (empty = disabled)
	LogDir string `yaml:"log_dir"`

	// Color controls ANSI output: auto, always, never
	Color string `yaml:"color"`

	// Find contains findfile settings
	Find FindConfig `yaml:"find"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		LogDir:   "",
		Color:    ColorAuto,
		Find: FindConfig{
			Absolute: false,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogDir != "" {
		cfg.LogDir = fileCfg.LogDir
	}
	if fileCfg.Color != "" {
		cfg.Color = fileCfg.Color
	}

	// Booleans are only taken from the file when the key is present
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err == nil {
		if findSection, exists := rawMap["find"]; exists && findSection != nil {
			findMap, _ := findSection.(map[string]interface{})
			if _, exists := findMap["absolute"]; exists {
				cfg.Find.Absolute = fileCfg.Find.Absolute
			}
		}
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, color *string, absolute *bool) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if color != nil {
		c.Color = *color
	}
	if absolute != nil {
		c.Find.Absolute = *absolute
	}
}

// Validate validates the configuration values.
// The log level is normalized to lowercase so "INFO" is accepted.
func (c *Config) Validate() error {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	c.LogLevel = level.String()

	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	return nil
}
