// Package manifest decodes iTunes-style library property lists into a
// generic tree of dictionaries and arrays.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"howett.net/plist"
)

// ErrDecode indicates the document is not a readable property list.
var ErrDecode = errors.New("decode manifest")

// Tree is the decoded top-level dictionary of a manifest.
// Values are map[string]any, []any, string, bool, uint64, int64,
// float64, time.Time or []byte as produced by the plist decoder.
type Tree map[string]any

// Decode parses a property list document (XML, binary or OpenStep).
func Decode(data []byte) (Tree, error) {
	var tree Tree
	if err := plist.NewDecoder(bytes.NewReader(data)).Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if tree == nil {
		tree = Tree{}
	}
	return tree, nil
}

// Open reads and decodes the manifest at path.
func Open(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Decode(data)
}

// Dict returns the dictionary stored under key, if any.
func (t Tree) Dict(key string) (map[string]any, bool) {
	v, ok := t[key].(map[string]any)
	return v, ok
}

// Array returns the array stored under key, if any.
func (t Tree) Array(key string) ([]any, bool) {
	v, ok := t[key].([]any)
	return v, ok
}
