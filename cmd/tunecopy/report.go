package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/vmunix/tunecopy/internal/library"
	"github.com/vmunix/tunecopy/internal/syncer"
)

// consoleReporter prints per-track progress for interactive runs.
type consoleReporter struct {
	out io.Writer
}

func (r *consoleReporter) Progress(position, total int, t library.Track) {
	line := fmt.Sprintf("%d Copying %s - %s", position, t.Artist, t.Name)
	if t.Size != nil {
		line += fmt.Sprintf(" (%s)", humanize.Bytes(uint64(*t.Size)))
	}
	fmt.Fprintln(r.out, line)
}

func (r *consoleReporter) TrackFailed(position int, t library.Track, err error) {
	fmt.Fprintf(r.out, "  ! %d %s - %s: %v\n", position, t.Artist, t.Name, err)
}

func (r *consoleReporter) IndexWritten(playlist, path string, entries int) {
	fmt.Fprintf(r.out, "Writing playlist %s (%d entries) -> %s\n", playlist, entries, path)
}

func printResult(w io.Writer, res *syncer.Result, dryRun bool) {
	if dryRun {
		fmt.Fprintf(w, "%s: %d to copy, %d already present, %d failed (dry run)\n",
			res.Playlist, res.Planned, res.Skipped, res.Failed)
		return
	}
	fmt.Fprintf(w, "%s: %d copied (%s), %d already present, %d failed\n",
		res.Playlist, res.Copied, humanize.Bytes(uint64(res.Bytes)), res.Skipped, res.Failed)
}
