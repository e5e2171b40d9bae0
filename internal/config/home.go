package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the directory that holds config.yaml
const HomeEnv = "FSTOOLS_HOME"

// GetHome returns the fstools home directory
// Priority order:
//  1. FSTOOLS_HOME environment variable (if set)
//  2. <user config dir>/fstools
//
// The directory is not created; a missing config file just means defaults.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config directory: %w", err)
	}

	return filepath.Join(configDir, "fstools"), nil
}

// DefaultConfigPath returns $FSTOOLS_HOME/config.yaml
func DefaultConfigPath() (string, error) {
	home, err := GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// Load reads the config at path, or at DefaultConfigPath when path is empty
func Load(path string) (*Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	return LoadConfig(path)
}
