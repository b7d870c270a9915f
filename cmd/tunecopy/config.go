package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/tunecopy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration file",
	Long:  "Validates config syntax, required fields, and environment variable substitution without syncing anything.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

var (
	configInitForce    bool
	configInitResolved bool
)

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long: `Writes the default config to path, or to the XDG config location when no path is given.

With --resolved, writes the current configuration instead: the --config file,
the discovered file or the built-in defaults, with environment references
substituted and ~ expanded.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configInitCmd.Flags().BoolVar(&configInitResolved, "resolved", false, "Write the current configuration with variables resolved")
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		discovered, err := config.Discover()
		if err != nil {
			return err
		}
		path = discovered
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.Error
		if errors.As(err, &configErr) && configErr.HasErrors() {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	if configInitResolved {
		if err := writeResolvedConfig(path); err != nil {
			return err
		}
	} else if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// writeResolvedConfig snapshots the active configuration. Validation is
// skipped so an incomplete setup can still be written out and edited.
func writeResolvedConfig(path string) error {
	source := configPath
	if source == "" {
		discovered, err := config.Discover()
		switch {
		case err == nil:
			source = discovered
		case errors.Is(err, config.ErrNotFound):
		default:
			return err
		}
	}

	cfg, err := config.LoadWithoutValidation(source)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Write(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func printConfigErrors(w io.Writer, e *config.Error) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Library:     %s\n", cfg.Library.Path)

	dest := cfg.Sync.Destination
	if dest == "" {
		dest = "(prompted)"
	}
	fmt.Fprintf(w, "  Destination: %s\n", dest)
	fmt.Fprintf(w, "  Anchor:      %s (normalize: %s, extended: %t)\n", cfg.Sync.Anchor, cfg.Sync.Normalize, cfg.Sync.Extended)

	if len(cfg.Library.Ignore) > 0 {
		fmt.Fprintf(w, "  Ignoring:    %s\n", strings.Join(cfg.Library.Ignore, ", "))
	}

	if cfg.History.Enabled {
		fmt.Fprintf(w, "  History:     %s\n", cfg.History.Path)
	} else {
		fmt.Fprintln(w, "  History:     disabled")
	}
	if cfg.Metrics.Textfile != "" {
		fmt.Fprintf(w, "  Metrics:     %s\n", cfg.Metrics.Textfile)
	}
	fmt.Fprintf(w, "  Log level:   %s\n", cfg.Log.Level)
}
