package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/tunecopy/internal/config"
	"github.com/vmunix/tunecopy/internal/history"
	"github.com/vmunix/tunecopy/internal/layout"
	"github.com/vmunix/tunecopy/internal/library"
	"github.com/vmunix/tunecopy/internal/metrics"
	"github.com/vmunix/tunecopy/internal/syncer"
)

type syncFlags struct {
	library   string
	dest      string
	selection string
	dryRun    bool
	extended  bool
	noInput   bool
	noHistory bool
}

var syncOpts syncFlags

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy selected playlists to the destination",
	Long: `Copy the media files of one or more playlists under the destination
root and write <dest>/<playlist>.m3u8 for each.

Values not given by flag are prompted for, with the configured value
offered as the default. Files already present at the destination are
left alone, so an interrupted sync can simply be run again.`,
	Example: `  tunecopy sync
  tunecopy sync --dest /media/player --select 0,2
  tunecopy sync --select 3 --dry-run --no-input`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	f := syncCmd.Flags()
	f.StringVar(&syncOpts.library, "library", "", "Path to iTunes Library.xml")
	f.StringVar(&syncOpts.dest, "dest", "", "Destination root")
	f.StringVar(&syncOpts.selection, "select", "", "Comma-separated playlist numbers from the listing")
	f.BoolVar(&syncOpts.dryRun, "dry-run", false, "Show what would be copied without touching the destination")
	f.BoolVar(&syncOpts.extended, "extended", false, "Write #EXTM3U/#EXTINF lines (overrides config)")
	f.BoolVar(&syncOpts.noInput, "no-input", false, "Never prompt; use flags and config values")
	f.BoolVar(&syncOpts.noHistory, "no-history", false, "Don't record this run in the history database")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if syncOpts.extended {
		cfg.Sync.Extended = true
	}
	log := newLogger(cfg)

	return syncPlaylists(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, syncOpts, log)
}

func syncPlaylists(in io.Reader, out io.Writer, cfg *config.Config, opts syncFlags, log *slog.Logger) error {
	p := newPrompter(in, out)
	ask := func(value, label, defaultVal string) string {
		if value != "" {
			return value
		}
		if opts.noInput {
			return defaultVal
		}
		return p.promptWithDefault(label, defaultVal)
	}

	libPath := config.ExpandHome(ask(opts.library, "Library path", cfg.Library.Path))
	lib, err := library.LoadFile(libPath)
	if err != nil {
		return err
	}
	log.Debug("library loaded", "path", libPath, "tracks", lib.Len())

	dest := config.ExpandHome(ask(opts.dest, "Copy files to", cfg.Sync.Destination))
	if dest == "" {
		return errors.New("destination required: set --dest, SYNC_FOLDER or sync.destination")
	}

	names := lib.PlaylistNames(cfg.Library.Ignore)
	if len(names) == 0 {
		return errors.New("library has no playlists to copy")
	}
	selection := opts.selection
	if selection == "" {
		if opts.noInput {
			return errors.New("--select required with --no-input")
		}
		printPlaylistListing(out, names)
		selection, err = p.promptRequired("Which playlists to copy? (comma-separated)")
		if err != nil {
			return err
		}
	}
	indices, err := parseSelection(selection, len(names))
	if err != nil {
		return err
	}

	sopts := syncer.Options{
		DryRun:   opts.dryRun,
		Extended: cfg.Sync.Extended,
	}
	if !jsonOutput {
		sopts.Reporter = &consoleReporter{out: out}
	}
	if cfg.History.Enabled && !opts.noHistory {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			log.Warn("history unavailable, run not recorded", "path", cfg.History.Path, "error", err)
		} else {
			defer store.Close()
			sopts.Recorder = store
		}
	}
	var m *metrics.Sync
	if cfg.Metrics.Textfile != "" {
		m = metrics.New()
		sopts.Metrics = m
	}

	resolver := layout.NewResolver(cfg.Sync.Anchor, cfg.Sync.Normalize)
	s := syncer.New(resolver, sopts, log.With("component", "syncer"))

	var (
		results []*syncer.Result
		failed  int
	)
	for _, i := range indices {
		name := names[i]
		pl, err := lib.Playlist(name)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", name, err)
			log.Error("playlist unavailable", "playlist", name, "error", err)
			failed++
			continue
		}

		res, err := s.CopyPlaylist(dest, lib.Tracks(pl), pl.Name)
		if res != nil {
			results = append(results, res)
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", name, err)
			failed++
			continue
		}
		if !jsonOutput {
			printResult(out, res, opts.dryRun)
		}
	}

	if m != nil && !opts.dryRun {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			log.Warn("metrics textfile not written", "path", cfg.Metrics.Textfile, "error", err)
		}
	}

	if jsonOutput {
		if err := printJSON(out, syncResultsJSON(results)); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d playlists had errors", failed, len(indices))
	}
	return nil
}

func printPlaylistListing(w io.Writer, names []string) {
	for i, name := range names {
		fmt.Fprintf(w, "%d) %s\n", i, name)
	}
	fmt.Fprintln(w, strings.Repeat("=", 15))
}

type trackErrorJSON struct {
	Position int    `json:"position"`
	TrackKey int    `json:"track_key"`
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	Error    string `json:"error"`
}

type syncResultJSON struct {
	RunID     string           `json:"run_id,omitempty"`
	Playlist  string           `json:"playlist"`
	IndexPath string           `json:"index_path"`
	Entries   []string         `json:"entries"`
	Copied    int              `json:"copied"`
	Skipped   int              `json:"skipped"`
	Planned   int              `json:"planned"`
	Failed    int              `json:"failed"`
	Bytes     int64            `json:"bytes"`
	Errors    []trackErrorJSON `json:"errors,omitempty"`
}

func syncResultsJSON(results []*syncer.Result) []syncResultJSON {
	out := make([]syncResultJSON, 0, len(results))
	for _, r := range results {
		j := syncResultJSON{
			RunID:     r.RunID,
			Playlist:  r.Playlist,
			IndexPath: r.IndexPath,
			Entries:   r.Entries,
			Copied:    r.Copied,
			Skipped:   r.Skipped,
			Planned:   r.Planned,
			Failed:    r.Failed,
			Bytes:     r.Bytes,
		}
		for _, te := range r.Errors {
			j.Errors = append(j.Errors, trackErrorJSON{
				Position: te.Position,
				TrackKey: te.Track.Key,
				Artist:   te.Track.Artist,
				Title:    te.Track.Name,
				Error:    te.Err.Error(),
			})
		}
		out = append(out, j)
	}
	return out
}
