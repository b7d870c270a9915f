package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validNormalizeModes = map[string]bool{
	"none": true, "nfc": true, "nfd": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if c.Library.Path == "" {
		errs = append(errs, "library.path: required")
	}
	for i, name := range c.Library.Ignore {
		if name == "" {
			errs = append(errs, fmt.Sprintf("library.ignore[%d]: empty playlist name", i))
		}
	}

	if c.Sync.Anchor == "" {
		errs = append(errs, "sync.anchor: required")
	}
	if !validNormalizeModes[c.Sync.Normalize] {
		errs = append(errs, fmt.Sprintf("sync.normalize: must be one of none, nfc, nfd; got %q", c.Sync.Normalize))
	}

	return errs
}
