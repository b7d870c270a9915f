// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Library LibraryConfig `toml:"library"`
	Sync    SyncConfig    `toml:"sync"`
	History HistoryConfig `toml:"history"`
	Metrics MetricsConfig `toml:"metrics"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type LibraryConfig struct {
	Path   string   `toml:"path"`
	Ignore []string `toml:"ignore,omitempty"` // nil uses the built-in system playlist names
}

type SyncConfig struct {
	Destination string `toml:"destination"`
	Anchor      string `toml:"anchor"`
	Normalize   string `toml:"normalize"`
	Extended    bool   `toml:"extended"`
}

type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type MetricsConfig struct {
	Textfile string `toml:"textfile"`
}

// Load reads the configuration file at path over the built-in defaults,
// substitutes environment variables and validates the result.
// An empty path loads the defaults alone.
// Returns *Error for unresolved variables or validation failures.
func Load(path string) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &Error{Path: path, Errors: errs}
	}
	return cfg, nil
}

// LoadWithoutValidation is Load without the validation step.
func LoadWithoutValidation(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	cfg := &Config{}

	content, missing := substituteEnvVars(defaultConfig)
	if len(missing) > 0 {
		return nil, &Error{Path: "(defaults)", Missing: missing}
	}
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, fmt.Errorf("parsing default config: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}

		content, missing := substituteEnvVars(string(data))
		if len(missing) > 0 {
			return nil, &Error{Path: path, Missing: missing}
		}

		if _, err := toml.Decode(content, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.Library.Path = ExpandHome(cfg.Library.Path)
	cfg.Sync.Destination = ExpandHome(cfg.Sync.Destination)
	cfg.History.Path = ExpandHome(cfg.History.Path)
	cfg.Metrics.Textfile = ExpandHome(cfg.Metrics.Textfile)
	if cfg.History.Path == "" {
		cfg.History.Path = DefaultHistoryPath()
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Sync.Normalize = strings.ToLower(cfg.Sync.Normalize)

	return cfg, nil
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
// ${VAR:-default} falls back to default when VAR is unset or empty.
// ${VAR:?message} reports message when VAR is unset or empty.
// Unresolved references are left in place and returned in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]

		value, ok := os.LookupEnv(name)
		switch op {
		case ":-":
			if value == "" {
				return arg
			}
			return value
		case ":?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, arg))
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}
