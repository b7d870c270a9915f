// Command tunecopy copies iTunes playlists and their media files to a
// destination folder, writing one .m3u8 index per playlist.
package main

func main() {
	Execute()
}
