package syncer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// IndexLine is one track in a playlist index file.
type IndexLine struct {
	Entry    string
	Artist   string
	Title    string
	Duration *int64 // milliseconds
}

// WriteIndex writes the playlist index at path, one entry per line,
// replacing any existing file. The file is written to a temporary name
// first so an interrupted write never leaves a truncated index.
// With extended set, #EXTM3U headers and #EXTINF lines are included.
func WriteIndex(path string, lines []IndexLine, extended bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrIndexWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".tunecopy-*.m3u8")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrIndexWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	w := bufio.NewWriter(tmp)
	if extended {
		fmt.Fprintln(w, "#EXTM3U")
	}
	for _, l := range lines {
		if extended {
			fmt.Fprintf(w, "#EXTINF:%d,%s - %s\n", durationSeconds(l.Duration), l.Artist, l.Title)
		}
		fmt.Fprintln(w, l.Entry)
	}

	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %v", ErrIndexWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrIndexWrite, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrIndexWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %v", ErrIndexWrite, err)
	}
	return nil
}

// durationSeconds converts milliseconds to whole seconds, -1 when unknown.
func durationSeconds(ms *int64) int64 {
	if ms == nil {
		return -1
	}
	return *ms / 1000
}
