package syncer

import "errors"

var (
	// ErrNoLocation indicates a track has no file on disk.
	ErrNoLocation = errors.New("track has no location")

	// ErrCopyFailed indicates the file copy operation failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrDestinationExists indicates the destination file already exists.
	ErrDestinationExists = errors.New("destination file already exists")

	// ErrIndexWrite indicates the playlist index file could not be written.
	ErrIndexWrite = errors.New("failed to write playlist index")
)
