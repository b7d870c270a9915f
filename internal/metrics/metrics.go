// Package metrics exposes per-run sync counters for the node_exporter
// textfile collector.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sync holds the counters for one process. Each Sync has its own registry.
type Sync struct {
	registry *prometheus.Registry

	TracksTotal *prometheus.CounterVec
	BytesCopied *prometheus.CounterVec
	LastRun     *prometheus.GaugeVec
}

// New creates and registers the sync metrics.
func New() *Sync {
	s := &Sync{
		registry: prometheus.NewRegistry(),
		TracksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tunecopy_tracks_total",
				Help: "Tracks processed, by playlist and outcome",
			},
			[]string{"playlist", "outcome"},
		),
		BytesCopied: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tunecopy_bytes_copied_total",
				Help: "Bytes copied to the destination, by playlist",
			},
			[]string{"playlist"},
		),
		LastRun: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tunecopy_last_run_timestamp_seconds",
				Help: "Unix time the playlist index was last written",
			},
			[]string{"playlist"},
		),
	}
	s.registry.MustRegister(s.TracksTotal, s.BytesCopied, s.LastRun)
	return s
}

// ObserveTrack counts one track outcome.
func (s *Sync) ObserveTrack(playlist, outcome string, bytes int64) {
	s.TracksTotal.WithLabelValues(playlist, outcome).Inc()
	if bytes > 0 {
		s.BytesCopied.WithLabelValues(playlist).Add(float64(bytes))
	}
}

// ObserveRun records the completion time of a playlist.
func (s *Sync) ObserveRun(playlist string, at time.Time) {
	s.LastRun.WithLabelValues(playlist).Set(float64(at.Unix()))
}

// WriteTextfile writes all metrics in text exposition format to path.
func (s *Sync) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
