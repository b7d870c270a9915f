package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates no config file exists in any search location.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./tunecopy.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tunecopy", "config.toml")
}

// DefaultHistoryPath returns the XDG-compliant default history database path.
func DefaultHistoryPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./tunecopy-history.db"
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tunecopy", "history.db")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. TUNECOPY_CONFIG environment variable
//  2. ./tunecopy.toml (current directory)
//  3. $XDG_CONFIG_HOME/tunecopy/config.toml
//
// Returns ErrNotFound when none exists.
func Discover() (string, error) {
	if envPath := os.Getenv("TUNECOPY_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("TUNECOPY_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./tunecopy.toml",
		DefaultPath(),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
