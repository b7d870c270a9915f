// Package history records sync runs and per-track outcomes in SQLite.
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmunix/tunecopy/internal/migrations"

	_ "modernc.org/sqlite"
)

var (
	// ErrNotFound indicates the requested run doesn't exist.
	ErrNotFound = errors.New("run not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
)

// Run statuses.
const (
	StatusRunning  = "running"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Run is one CopyPlaylist invocation.
type Run struct {
	ID          string
	Playlist    string
	Destination string
	DryRun      bool
	Status      string
	Copied      int
	Skipped     int
	Failed      int
	Bytes       int64
	Error       string
	StartedAt   time.Time
	FinishedAt  *time.Time
}

// TrackRecord is the outcome of one track within a run.
type TrackRecord struct {
	RunID    string
	Position int
	TrackKey int
	Artist   string
	Title    string
	DestPath string
	Outcome  string
	Error    string
}

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Playlist *string
	Status   *string
	Limit    int
}

// Store persists sync history.
type Store struct {
	db *sql.DB
}

// NewStore creates a history store on an open database.
// The schema must already be applied; see Open.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens (creating if needed) the history database at path and applies
// the schema. Use ":memory:" for a throwaway database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(migrations.HistorySQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return NewStore(db), nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// mapSQLiteError converts SQLite errors to package error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	if strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	return err
}

// StartRun inserts a run in running state. Sets ID and StartedAt when empty.
func (s *Store) StartRun(r *Run) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	r.Status = StatusRunning

	_, err := s.db.Exec(`
		INSERT INTO runs (id, playlist, destination, dry_run, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID, r.Playlist, r.Destination, r.DryRun, r.Status, r.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", mapSQLiteError(err))
	}
	return nil
}

// RecordTrack inserts a per-track outcome.
func (s *Store) RecordTrack(t *TrackRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO run_tracks (run_id, position, track_key, artist, title, dest_path, outcome, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Position, t.TrackKey, t.Artist, t.Title, t.DestPath, t.Outcome, t.Error,
	)
	if err != nil {
		return fmt.Errorf("insert run track: %w", mapSQLiteError(err))
	}
	return nil
}

// FinishRun stores the final counters and status of a run.
// Sets FinishedAt.
func (s *Store) FinishRun(r *Run) error {
	now := time.Now()
	result, err := s.db.Exec(`
		UPDATE runs SET status = ?, copied = ?, skipped = ?, failed = ?, bytes = ?, error = ?, finished_at = ?
		WHERE id = ?`,
		r.Status, r.Copied, r.Skipped, r.Failed, r.Bytes, r.Error, now, r.ID,
	)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	r.FinishedAt = &now
	return nil
}

// GetRun returns a run by ID.
func (s *Store) GetRun(id string) (*Run, error) {
	r := &Run{}
	err := s.db.QueryRow(`
		SELECT id, playlist, destination, dry_run, status, copied, skipped, failed, bytes, error, started_at, finished_at
		FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Playlist, &r.Destination, &r.DryRun, &r.Status, &r.Copied, &r.Skipped, &r.Failed, &r.Bytes, &r.Error, &r.StartedAt, &r.FinishedAt)
	if err != nil {
		return nil, fmt.Errorf("get run %s: %w", id, mapSQLiteError(err))
	}
	return r, nil
}

// ListRuns returns runs matching the filter, most recent first.
func (s *Store) ListRuns(f RunFilter) ([]*Run, error) {
	var conditions []string
	var args []any

	if f.Playlist != nil {
		conditions = append(conditions, "playlist = ?")
		args = append(args, *f.Playlist)
	}
	if f.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *f.Status)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, playlist, destination, dry_run, status, copied, skipped, failed, bytes, error, started_at, finished_at
		FROM runs ` + whereClause + ` ORDER BY started_at DESC, rowid DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.ID, &r.Playlist, &r.Destination, &r.DryRun, &r.Status, &r.Copied, &r.Skipped, &r.Failed, &r.Bytes, &r.Error, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return results, nil
}

// RunTracks returns the per-track outcomes of a run in playlist order.
func (s *Store) RunTracks(runID string) ([]*TrackRecord, error) {
	rows, err := s.db.Query(`
		SELECT run_id, position, track_key, artist, title, dest_path, outcome, error
		FROM run_tracks WHERE run_id = ? ORDER BY position, id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list run tracks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*TrackRecord
	for rows.Next() {
		t := &TrackRecord{}
		if err := rows.Scan(&t.RunID, &t.Position, &t.TrackKey, &t.Artist, &t.Title, &t.DestPath, &t.Outcome, &t.Error); err != nil {
			return nil, fmt.Errorf("scan run track: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run tracks: %w", err)
	}
	return results, nil
}
