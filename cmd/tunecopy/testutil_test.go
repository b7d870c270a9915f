package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmunix/tunecopy/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixtureTrack struct {
	id     int
	name   string
	artist string
	path   string // absolute
}

// writeLibrary creates media files and an iTunes Library.xml referencing
// them. Playlists after ignoring "Library": 0 Favorites, 1 Outside, 2 Broken.
func writeLibrary(t *testing.T) (libPath, root string) {
	t.Helper()
	base := t.TempDir()
	music := filepath.Join(base, "iTunes", "iTunes Media", "Music")

	tracks := []fixtureTrack{
		{1, "Hot Blood", "Kaleo", filepath.Join(music, "Kaleo", "A_B", "05 Hot Blood.mp3")},
		{2, "CH.P.X.", "Leningrad", filepath.Join(music, "Leningrad", "Hleb", "CH.P.X..mp3")},
		{3, "Voice Note", "Me", filepath.Join(base, "Downloads", "note.mp3")},
	}
	for _, tr := range tracks {
		require.NoError(t, os.MkdirAll(filepath.Dir(tr.path), 0755))
		require.NoError(t, os.WriteFile(tr.path, []byte("audio:"+tr.name), 0644))
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple Computer//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Tracks</key>
	<dict>
`)
	for _, tr := range tracks {
		loc := (&url.URL{Scheme: "file", Host: "localhost", Path: filepath.ToSlash(tr.path)}).String()
		fmt.Fprintf(&b, `		<key>%d</key>
		<dict>
			<key>Track ID</key><integer>%d</integer>
			<key>Name</key><string>%s</string>
			<key>Artist</key><string>%s</string>
			<key>Total Time</key><integer>200000</integer>
			<key>Location</key><string>%s</string>
		</dict>
`, tr.id, tr.id, tr.name, tr.artist, loc)
	}
	b.WriteString("\t</dict>\n\t<key>Playlists</key>\n\t<array>\n")
	writePlaylist(&b, "Library", 1, 2, 3)
	writePlaylist(&b, "Favorites", 1, 2)
	writePlaylist(&b, "Outside", 3, 1)
	writePlaylist(&b, "Broken", 1, 999)
	b.WriteString("\t</array>\n</dict>\n</plist>\n")

	libPath = filepath.Join(base, "iTunes", "iTunes Library.xml")
	require.NoError(t, os.WriteFile(libPath, []byte(b.String()), 0644))
	return libPath, music
}

func writePlaylist(b *strings.Builder, name string, ids ...int) {
	fmt.Fprintf(b, "\t\t<dict>\n\t\t\t<key>Name</key><string>%s</string>\n\t\t\t<key>Playlist Items</key>\n\t\t\t<array>\n", name)
	for _, id := range ids {
		fmt.Fprintf(b, "\t\t\t\t<dict><key>Track ID</key><integer>%d</integer></dict>\n", id)
	}
	b.WriteString("\t\t\t</array>\n\t\t</dict>\n")
}

func testConfig(t *testing.T, libPath string) *config.Config {
	t.Helper()
	return &config.Config{
		Log:     config.LogConfig{Level: "info"},
		Library: config.LibraryConfig{Path: libPath},
		Sync:    config.SyncConfig{Anchor: "iTunes Media/Music", Normalize: "none"},
		History: config.HistoryConfig{Enabled: false},
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
