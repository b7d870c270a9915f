// Package syncer copies playlist tracks into a destination tree and writes
// the playlist index files.
package syncer

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/vmunix/tunecopy/internal/history"
	"github.com/vmunix/tunecopy/internal/layout"
	"github.com/vmunix/tunecopy/internal/library"
)

// Track outcomes.
const (
	OutcomeCopied  = "copied"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
	OutcomePlanned = "planned"
)

//go:generate mockgen -source=syncer.go -destination=mocks/mock_syncer.go -package=mocks

// Reporter receives user-facing progress.
type Reporter interface {
	Progress(position, total int, t library.Track)
	TrackFailed(position int, t library.Track, err error)
	IndexWritten(playlist, path string, entries int)
}

// Recorder persists run history.
type Recorder interface {
	StartRun(r *history.Run) error
	RecordTrack(t *history.TrackRecord) error
	FinishRun(r *history.Run) error
}

// Metrics counts track outcomes.
type Metrics interface {
	ObserveTrack(playlist, outcome string, bytes int64)
	ObserveRun(playlist string, at time.Time)
}

// Options configures a Syncer. Nil Reporter, Recorder and Metrics are skipped.
type Options struct {
	Reporter Reporter
	Recorder Recorder
	Metrics  Metrics
	DryRun   bool // resolve and report, but copy and write nothing
	Extended bool // write #EXTM3U/#EXTINF lines
}

// TrackError is a per-track failure that didn't stop the playlist.
type TrackError struct {
	Position int
	Track    library.Track
	Err      error
}

func (e *TrackError) Error() string {
	return fmt.Sprintf("track %d (%s - %s): %v", e.Position, e.Track.Artist, e.Track.Name, e.Err)
}

func (e *TrackError) Unwrap() error { return e.Err }

// Result summarizes one CopyPlaylist call.
type Result struct {
	RunID     string
	Playlist  string
	IndexPath string
	Entries   []string
	Copied    int
	Skipped   int
	Planned   int
	Failed    int
	Bytes     int64
	Errors    []*TrackError
}

// Syncer copies playlists. It runs one track at a time.
type Syncer struct {
	resolver *layout.Resolver
	opts     Options
	log      *slog.Logger
}

// New creates a syncer.
func New(resolver *layout.Resolver, opts Options, log *slog.Logger) *Syncer {
	return &Syncer{resolver: resolver, opts: opts, log: log}
}

// CopyPlaylist copies tracks, in order, below destRoot and then writes
// destRoot/<name>.m3u8 listing every resolvable track.
//
// Tracks already present at their destination are skipped. A track that
// can't be resolved or copied is reported and recorded in Result.Errors;
// the remaining tracks still run. The returned error is non-nil only when
// the index file can't be written.
func (s *Syncer) CopyPlaylist(destRoot string, tracks []library.Track, name string) (*Result, error) {
	res := &Result{
		Playlist:  name,
		IndexPath: filepath.Join(destRoot, layout.IndexFileName(name)),
		Entries:   []string{},
	}
	run := s.startRun(name, destRoot)
	if run != nil {
		res.RunID = run.ID
	}
	log := s.log.With("playlist", name)
	log.Info("sync started", "tracks", len(tracks), "dest", destRoot, "dry_run", s.opts.DryRun)

	lines := make([]IndexLine, 0, len(tracks))
	for i, t := range tracks {
		pos := i + 1
		if s.opts.Reporter != nil {
			s.opts.Reporter.Progress(pos, len(tracks), t)
		}

		target, outcome, size, err := s.copyTrack(destRoot, t)
		if target.Entry != "" {
			res.Entries = append(res.Entries, target.Entry)
			lines = append(lines, IndexLine{Entry: target.Entry, Artist: t.Artist, Title: t.Name, Duration: t.TotalTime})
		}

		switch outcome {
		case OutcomeCopied:
			res.Copied++
			res.Bytes += size
		case OutcomeSkipped:
			res.Skipped++
		case OutcomePlanned:
			res.Planned++
		case OutcomeFailed:
			res.Failed++
			te := &TrackError{Position: pos, Track: t, Err: err}
			res.Errors = append(res.Errors, te)
			log.Warn("track failed", "position", pos, "track_key", t.Key, "path", t.Path, "error", err)
			if s.opts.Reporter != nil {
				s.opts.Reporter.TrackFailed(pos, t, err)
			}
		}
		log.Debug("track processed", "position", pos, "outcome", outcome, "dest", target.Dest)

		s.recordTrack(run, pos, t, target.Dest, outcome, err)
		if s.opts.Metrics != nil {
			s.opts.Metrics.ObserveTrack(name, outcome, size)
		}
	}

	if s.opts.DryRun {
		s.finishRun(run, res, nil)
		log.Info("dry run complete", "entries", len(res.Entries), "failed", res.Failed)
		return res, nil
	}

	if err := WriteIndex(res.IndexPath, lines, s.opts.Extended); err != nil {
		s.finishRun(run, res, err)
		return res, fmt.Errorf("playlist %q: %w", name, err)
	}
	if s.opts.Reporter != nil {
		s.opts.Reporter.IndexWritten(name, res.IndexPath, len(res.Entries))
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.ObserveRun(name, time.Now())
	}
	s.finishRun(run, res, nil)

	log.Info("sync complete", "index", res.IndexPath, "copied", res.Copied, "skipped", res.Skipped, "failed", res.Failed)
	return res, nil
}

// copyTrack resolves and copies one track. The returned target has an
// empty Entry when the track couldn't be resolved.
func (s *Syncer) copyTrack(destRoot string, t library.Track) (layout.Target, string, int64, error) {
	if t.Path == "" {
		return layout.Target{}, OutcomeFailed, 0, ErrNoLocation
	}

	target, err := s.resolver.Resolve(layout.AbsPath(t.Path), destRoot)
	if err != nil {
		return layout.Target{}, OutcomeFailed, 0, err
	}

	if s.opts.DryRun {
		if exists(target.Dest) {
			return target, OutcomeSkipped, 0, nil
		}
		return target, OutcomePlanned, 0, nil
	}

	size, err := CopyFile(target.Source, target.Dest)
	if errors.Is(err, ErrDestinationExists) {
		return target, OutcomeSkipped, 0, nil
	}
	if err != nil {
		return target, OutcomeFailed, 0, err
	}
	return target, OutcomeCopied, size, nil
}

func (s *Syncer) startRun(name, destRoot string) *history.Run {
	if s.opts.Recorder == nil {
		return nil
	}
	run := &history.Run{Playlist: name, Destination: destRoot, DryRun: s.opts.DryRun}
	if err := s.opts.Recorder.StartRun(run); err != nil {
		s.log.Warn("history unavailable", "error", err)
		return nil
	}
	return run
}

func (s *Syncer) recordTrack(run *history.Run, pos int, t library.Track, dest, outcome string, err error) {
	if run == nil {
		return
	}
	rec := &history.TrackRecord{
		RunID:    run.ID,
		Position: pos,
		TrackKey: t.Key,
		Artist:   t.Artist,
		Title:    t.Name,
		DestPath: dest,
		Outcome:  outcome,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	if err := s.opts.Recorder.RecordTrack(rec); err != nil {
		s.log.Warn("record track failed", "run_id", run.ID, "position", pos, "error", err)
	}
}

func (s *Syncer) finishRun(run *history.Run, res *Result, err error) {
	if run == nil {
		return
	}
	run.Status = history.StatusComplete
	if err != nil {
		run.Status = history.StatusFailed
		run.Error = err.Error()
	}
	run.Copied, run.Skipped, run.Failed, run.Bytes = res.Copied, res.Skipped, res.Failed, res.Bytes
	if err := s.opts.Recorder.FinishRun(run); err != nil {
		s.log.Warn("finish run failed", "run_id", run.ID, "error", err)
	}
}
