package library

import "errors"

var (
	// ErrParse indicates the manifest lacks the structure a library needs.
	ErrParse = errors.New("invalid manifest")

	// ErrNotFound indicates no playlist has the requested name.
	ErrNotFound = errors.New("playlist not found")

	// ErrIntegrity indicates a playlist references a track missing from the catalog.
	ErrIntegrity = errors.New("manifest integrity")
)
