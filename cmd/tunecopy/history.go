package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/vmunix/tunecopy/internal/history"
)

var (
	historyLimit    int
	historyPlaylist string
	historyStatus   string
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show past sync runs",
	Long:  "Without arguments lists recent runs. With a run ID shows the outcome of every track in that run.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum runs to list")
	historyCmd.Flags().StringVar(&historyPlaylist, "playlist", "", "Only runs of this playlist")
	historyCmd.Flags().StringVar(&historyStatus, "status", "", "Only runs with this status (running, complete, failed)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		return showRun(out, store, args[0])
	}

	filter := history.RunFilter{Limit: historyLimit}
	if historyPlaylist != "" {
		filter.Playlist = &historyPlaylist
	}
	if historyStatus != "" {
		filter.Status = &historyStatus
	}
	return listRuns(out, store, filter)
}

func listRuns(w io.Writer, store *history.Store, filter history.RunFilter) error {
	runs, err := store.ListRuns(filter)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-20s  %-9s  %6s  %6s  %6s  %9s  %s\n",
		"ID", "PLAYLIST", "STATUS", "COPIED", "SKIP", "FAILED", "SIZE", "STARTED")
	for _, r := range runs {
		status := r.Status
		if r.DryRun {
			status += "*"
		}
		fmt.Fprintf(w, "%-36s  %-20s  %-9s  %6d  %6d  %6d  %9s  %s\n",
			r.ID, truncatePath(r.Playlist, 20), status, r.Copied, r.Skipped, r.Failed,
			humanize.Bytes(uint64(r.Bytes)), humanize.Time(r.StartedAt))
	}
	return nil
}

func showRun(w io.Writer, store *history.Store, id string) error {
	run, err := store.GetRun(id)
	if err != nil {
		return err
	}
	tracks, err := store.RunTracks(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(w, struct {
			Run    *history.Run           `json:"run"`
			Tracks []*history.TrackRecord `json:"tracks"`
		}{run, tracks})
	}

	fmt.Fprintf(w, "Run:         %s\n", run.ID)
	fmt.Fprintf(w, "Playlist:    %s\n", run.Playlist)
	fmt.Fprintf(w, "Destination: %s\n", run.Destination)
	fmt.Fprintf(w, "Status:      %s", run.Status)
	if run.DryRun {
		fmt.Fprint(w, " (dry run)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Started:     %s\n", run.StartedAt.Local().Format(time.DateTime))
	if run.FinishedAt != nil {
		fmt.Fprintf(w, "Duration:    %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))
	}
	if run.Error != "" {
		fmt.Fprintf(w, "Error:       %s\n", run.Error)
	}
	fmt.Fprintln(w)

	for _, t := range tracks {
		fmt.Fprintf(w, "%4d  %-8s  %s - %s\n", t.Position, t.Outcome, t.Artist, t.Title)
		if t.Error != "" {
			fmt.Fprintf(w, "      %s\n", t.Error)
		} else if t.DestPath != "" {
			fmt.Fprintf(w, "      %s\n", truncatePath(t.DestPath, 72))
		}
	}
	return nil
}
