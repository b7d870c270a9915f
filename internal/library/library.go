// Package library builds an in-memory catalog of tracks and playlists from
// a decoded manifest.
package library

import (
	"slices"
)

// DefaultIgnore lists the system playlists hidden from PlaylistNames.
var DefaultIgnore = []string{
	"Library", "Music", "Movies", "TV Shows", "Purchased", "iTunes DJ", "Podcasts",
}

// Track is a single catalog entry.
type Track struct {
	Key       int    // Tracks dictionary key
	ID        *int   // "Track ID", nil when absent or not numeric
	Name      string
	Artist    string
	Album     string
	Size      *int64 // bytes
	TotalTime *int64 // milliseconds
	Location  string // URI-escaped, as stored in the manifest
	Path      string // decoded, leading separator stripped
}

// Entry is a track's slot in one playlist.
type Entry struct {
	Position int // 1-based
	Track    int // arena index into the library
}

// Playlist is a materialized playlist.
type Playlist struct {
	Name               string
	Entries            []Entry
	Folder             bool
	PersistentID       string
	ParentPersistentID string
}

// Library is the catalog loaded from one manifest. It is not modified
// after Load returns.
type Library struct {
	tracks    []Track
	index     map[int]int
	playlists []map[string]any
}

// Len returns the number of tracks in the catalog.
func (l *Library) Len() int { return len(l.tracks) }

// Track returns the track an entry points at.
func (l *Library) Track(e Entry) Track { return l.tracks[e.Track] }

// Tracks returns the playlist's tracks in playlist order.
func (l *Library) Tracks(p *Playlist) []Track {
	out := make([]Track, 0, len(p.Entries))
	for _, e := range p.Entries {
		out = append(out, l.Track(e))
	}
	return out
}

// PlaylistNames returns playlist names in manifest order, skipping any name
// in ignore. A nil ignore uses DefaultIgnore. Duplicate names are kept.
func (l *Library) PlaylistNames(ignore []string) []string {
	if ignore == nil {
		ignore = DefaultIgnore
	}
	names := []string{}
	for _, p := range l.playlists {
		name, _ := p["Name"].(string)
		if slices.Contains(ignore, name) {
			continue
		}
		names = append(names, name)
	}
	return names
}
