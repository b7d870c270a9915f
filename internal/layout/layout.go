// Package layout maps library source paths onto a destination tree.
package layout

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultAnchor is the media folder inside an iTunes library that
// library-relative paths are measured from.
const DefaultAnchor = "iTunes Media/Music"

// ErrAnchorNotFound indicates a source path lies outside the media folder.
var ErrAnchorNotFound = errors.New("media root anchor not found")

// ErrUnsafePath indicates a relative path that would leave the destination root.
var ErrUnsafePath = errors.New("path escapes destination root")

// Normalization modes for relative paths.
const (
	NormalizeNone = "none"
	NormalizeNFC  = "nfc"
	NormalizeNFD  = "nfd"
)

// Target describes where one track is copied from and to.
type Target struct {
	Source   string // absolute source path
	Relative string // portion after the anchor, begins with a separator
	Dest     string // sanitized destination path
	Entry    string // sanitized playlist entry, relative to the destination root
}

// Resolver derives destination paths from source paths.
type Resolver struct {
	Anchor    string
	Normalize string
}

// NewResolver creates a resolver. An empty anchor uses DefaultAnchor.
func NewResolver(anchor, normalize string) *Resolver {
	if anchor == "" {
		anchor = DefaultAnchor
	}
	return &Resolver{Anchor: anchor, Normalize: normalize}
}

// Resolve computes the copy target for an absolute source path.
// Returns ErrAnchorNotFound if the anchor isn't part of the path.
func (r *Resolver) Resolve(source, destRoot string) (Target, error) {
	rel, err := Relative(source, r.Anchor)
	if err != nil {
		return Target{}, err
	}
	rel = r.normalize(rel)
	if escapes(rel) {
		return Target{}, fmt.Errorf("%w: %s", ErrUnsafePath, source)
	}

	return Target{
		Source:   source,
		Relative: rel,
		Dest:     filepath.FromSlash(SanitizeStem(strings.TrimRight(destRoot, "/") + rel)),
		Entry:    SanitizeStem("." + rel),
	}, nil
}

func (r *Resolver) normalize(s string) string {
	switch r.Normalize {
	case NormalizeNFC:
		return norm.NFC.String(s)
	case NormalizeNFD:
		return norm.NFD.String(s)
	default:
		return s
	}
}

// Relative returns everything after the first occurrence of anchor in p.
func Relative(p, anchor string) (string, error) {
	_, rel, ok := strings.Cut(p, anchor)
	if !ok || anchor == "" {
		return "", fmt.Errorf("%w: %q not in %s", ErrAnchorNotFound, anchor, p)
	}
	return rel, nil
}

// escapes reports whether rel has a ".." element under either separator.
func escapes(rel string) bool {
	for _, elem := range strings.FieldsFunc(rel, func(r rune) bool { return r == '/' || r == '\\' }) {
		if elem == ".." {
			return true
		}
	}
	return false
}

// SanitizeStem removes every period from the stem of the final path
// component, keeping the extension:
//
//	/Leningrad/CH.P.X./CH.P.X..mp3 -> /Leningrad/CH.P.X./CHPX.mp3
//
// Directory components and names without an extension are left alone.
func SanitizeStem(p string) string {
	dir, base := path.Split(p)
	dot := strings.LastIndex(base, ".")
	if dot <= 0 {
		return p
	}
	stem, ext := base[:dot], base[dot:]
	return dir + strings.ReplaceAll(stem, ".", "") + ext
}

// IndexFileName returns the playlist index file name for a playlist.
// Path separators in the name are replaced so the file stays in the
// destination root.
func IndexFileName(playlist string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(playlist)
	return name + ".m3u8"
}

// AbsPath turns a stored track path (leading separator stripped) back into
// an absolute path. Paths that start with a drive letter are returned as-is.
func AbsPath(stored string) string {
	if hasDriveLetter(stored) {
		return stored
	}
	return "/" + stored
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
