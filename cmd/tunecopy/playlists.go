package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vmunix/tunecopy/internal/library"
)

var playlistsLibrary string

var playlistsCmd = &cobra.Command{
	Use:   "playlists",
	Short: "List playlists available to sync",
	Long:  "Lists the library's playlists, numbered as the sync command's --select expects. System playlists are left out.",
	Args:  cobra.NoArgs,
	RunE:  runPlaylists,
}

func init() {
	playlistsCmd.Flags().StringVar(&playlistsLibrary, "library", "", "Path to iTunes Library.xml (default: from config)")
	rootCmd.AddCommand(playlistsCmd)
}

type playlistJSON struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Tracks int    `json:"tracks"`
	Folder bool   `json:"folder,omitempty"`
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := playlistsLibrary
	if path == "" {
		path = cfg.Library.Path
	}

	lib, err := library.LoadFile(path)
	if err != nil {
		return err
	}
	return listPlaylists(cmd.OutOrStdout(), lib, cfg.Library.Ignore)
}

func listPlaylists(w io.Writer, lib *library.Library, ignore []string) error {
	names := lib.PlaylistNames(ignore)
	items := make([]playlistJSON, 0, len(names))
	for i, name := range names {
		item := playlistJSON{Index: i, Name: name}
		// Listed names always exist; a failure here is an integrity problem
		// that sync will report in full.
		if p, err := lib.Playlist(name); err == nil {
			item.Tracks = len(p.Entries)
			item.Folder = p.Folder
		}
		items = append(items, item)
	}

	if jsonOutput {
		return printJSON(w, items)
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No playlists found.")
		return nil
	}
	for _, it := range items {
		suffix := ""
		if it.Folder {
			suffix = " [folder]"
		}
		fmt.Fprintf(w, "%3d) %-40s %5d tracks%s\n", it.Index, it.Name, it.Tracks, suffix)
	}
	return nil
}
