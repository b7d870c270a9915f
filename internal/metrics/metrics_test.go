package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSync_ObserveTrack(t *testing.T) {
	s := New()

	s.ObserveTrack("Favorites", "copied", 100)
	s.ObserveTrack("Favorites", "copied", 50)
	s.ObserveTrack("Favorites", "skipped", 0)

	assert.Equal(t, float64(2), testutil.ToFloat64(s.TracksTotal.WithLabelValues("Favorites", "copied")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.TracksTotal.WithLabelValues("Favorites", "skipped")))
	assert.Equal(t, float64(150), testutil.ToFloat64(s.BytesCopied.WithLabelValues("Favorites")))
}

func TestSync_ObserveRun(t *testing.T) {
	s := New()
	at := time.Unix(1700000000, 0)

	s.ObserveRun("Favorites", at)

	assert.Equal(t, float64(1700000000), testutil.ToFloat64(s.LastRun.WithLabelValues("Favorites")))
}

func TestSync_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveTrack("X", "copied", 1)

	assert.Equal(t, 1, testutil.CollectAndCount(a.TracksTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(b.TracksTotal))
}

func TestSync_WriteTextfile(t *testing.T) {
	s := New()
	s.ObserveTrack("Favorites", "copied", 10)

	path := filepath.Join(t.TempDir(), "textfile", "tunecopy.prom")
	require.NoError(t, s.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tunecopy_tracks_total{outcome="copied",playlist="Favorites"} 1`)
	assert.Contains(t, string(data), `tunecopy_bytes_copied_total{playlist="Favorites"} 10`)
}
