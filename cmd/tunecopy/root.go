package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vmunix/tunecopy/internal/config"
)

var version = "dev"

var (
	configPath string
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "tunecopy",
	Short: "Copy iTunes playlists to a folder or player",
	Long: `tunecopy - copy iTunes playlists to a folder or player

Reads iTunes Library.xml, copies the media files of the selected
playlists under a destination root and writes <dest>/<playlist>.m3u8
for each one.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDotenv(".env")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("tunecopy {{.Version}}\n")
}

// loadDotenv loads environment variables from path. A missing file is not
// an error; variables already set in the environment win.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadConfig loads the --config file, or the discovered one, or the
// built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		discovered, err := config.Discover()
		switch {
		case err == nil:
			path = discovered
		case errors.Is(err, config.ErrNotFound):
		default:
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) && configErr.HasErrors() {
			printConfigErrors(os.Stderr, configErr)
			return nil, fmt.Errorf("configuration invalid")
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger logs to stderr so stdout stays free for progress output.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}
