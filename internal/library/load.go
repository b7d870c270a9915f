package library

import (
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/vmunix/tunecopy/internal/manifest"
)

// Manifest keys read by Load. Other keys are ignored.
const (
	keyTracks        = "Tracks"
	keyPlaylists     = "Playlists"
	keyTrackID       = "Track ID"
	keyName          = "Name"
	keyArtist        = "Artist"
	keyAlbum         = "Album"
	keySize          = "Size"
	keyTotalTime     = "Total Time"
	keyLocation      = "Location"
	keyFolder        = "Folder"
	keyPersistentID  = "Playlist Persistent ID"
	keyParentID      = "Parent Persistent ID"
	keyPlaylistItems = "Playlist Items"
)

// LoadFile decodes the manifest at path and builds a library from it.
func LoadFile(path string) (*Library, error) {
	tree, err := manifest.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Load(tree)
}

// Load builds a library from a decoded manifest.
// Returns ErrParse if the tree has no Tracks dictionary.
func Load(tree manifest.Tree) (*Library, error) {
	raw, ok := tree.Dict(keyTracks)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q dictionary", ErrParse, keyTracks)
	}

	keys := make([]int, 0, len(raw))
	attrs := make(map[int]map[string]any, len(raw))
	for k, v := range raw {
		key, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: track key %q is not an integer", ErrParse, k)
		}
		if _, dup := attrs[key]; dup {
			return nil, fmt.Errorf("%w: track key %q duplicates track %d", ErrParse, k, key)
		}
		a, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: track %d is not a dictionary", ErrParse, key)
		}
		keys = append(keys, key)
		attrs[key] = a
	}
	slices.Sort(keys)

	lib := &Library{
		tracks: make([]Track, 0, len(keys)),
		index:  make(map[int]int, len(keys)),
	}
	for _, key := range keys {
		lib.index[key] = len(lib.tracks)
		lib.tracks = append(lib.tracks, newTrack(key, attrs[key]))
	}

	if items, ok := tree.Array(keyPlaylists); ok {
		for i, item := range items {
			p, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: playlist %d is not a dictionary", ErrParse, i)
			}
			lib.playlists = append(lib.playlists, p)
		}
	}

	return lib, nil
}

func newTrack(key int, a map[string]any) Track {
	t := Track{
		Key:    key,
		Name:   stringValue(a[keyName]),
		Artist: stringValue(a[keyArtist]),
		Album:  stringValue(a[keyAlbum]),
	}
	if id, ok := intValue(a[keyTrackID]); ok {
		v := int(id)
		t.ID = &v
	}
	if size, ok := intValue(a[keySize]); ok && size >= 0 {
		t.Size = &size
	}
	if ms, ok := intValue(a[keyTotalTime]); ok && ms >= 0 {
		t.TotalTime = &ms
	}
	if loc := stringValue(a[keyLocation]); loc != "" {
		t.Location = loc
		t.Path = DecodeLocation(loc)
	}
	return t
}

// DecodeLocation converts a file URI into a filesystem path with the
// leading separator removed. Returns "" if the URI cannot be parsed.
func DecodeLocation(loc string) string {
	u, err := url.Parse(loc)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(u.Path, "/")
}

func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

// intValue accepts the integer types the plist decoder produces plus
// strings holding a base-10 integer.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}
