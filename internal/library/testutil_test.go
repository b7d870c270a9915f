package library

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/tunecopy/internal/manifest"
)

// testTree builds a manifest tree with the given tracks and playlists.
// Each playlist maps a name to the track ids it lists.
func testTree(tracks map[int]map[string]any, playlists ...map[string]any) manifest.Tree {
	dict := make(map[string]any, len(tracks))
	for id, attrs := range tracks {
		dict[strconv.Itoa(id)] = attrs
	}
	items := make([]any, 0, len(playlists))
	for _, p := range playlists {
		items = append(items, p)
	}
	return manifest.Tree{"Tracks": dict, "Playlists": items}
}

func testPlaylist(name string, ids ...int) map[string]any {
	p := map[string]any{"Name": name}
	if ids == nil {
		return p
	}
	list := make([]any, 0, len(ids))
	for _, id := range ids {
		list = append(list, map[string]any{"Track ID": uint64(id)})
	}
	p["Playlist Items"] = list
	return p
}

func testTrack(id int, name string) map[string]any {
	return map[string]any{
		"Track ID": uint64(id),
		"Name":     name,
		"Artist":   "Artist " + name,
		"Location": "file:///Users/test/Music/iTunes/iTunes%20Media/Music/Artist/Album/" + name + ".mp3",
	}
}

func mustLoad(t *testing.T, tree manifest.Tree) *Library {
	t.Helper()
	lib, err := Load(tree)
	require.NoError(t, err, "Load")
	return lib
}

// trackByKey looks a track up through the catalog index.
func trackByKey(lib *Library, key int) (Track, bool) {
	i, ok := lib.index[key]
	if !ok {
		return Track{}, false
	}
	return lib.tracks[i], true
}
