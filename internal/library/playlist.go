package library

import (
	"fmt"
)

// Playlist returns the first playlist named exactly name, with its items
// resolved against the catalog. Ignored names can still be looked up here.
//
// Returns ErrNotFound if no playlist has that name, or ErrIntegrity if an
// item references a track the catalog doesn't contain.
func (l *Library) Playlist(name string) (*Playlist, error) {
	for _, raw := range l.playlists {
		if n, _ := raw[keyName].(string); n != name {
			continue
		}
		return l.materialize(name, raw)
	}

	if suggestion, ok := l.Suggest(name, []string{}); ok {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrNotFound, name, suggestion)
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func (l *Library) materialize(name string, raw map[string]any) (*Playlist, error) {
	p := &Playlist{
		Name:               name,
		Entries:            []Entry{},
		PersistentID:       stringValue(raw[keyPersistentID]),
		ParentPersistentID: stringValue(raw[keyParentID]),
	}
	if folder, ok := raw[keyFolder].(bool); ok {
		p.Folder = folder
	}

	items, _ := raw[keyPlaylistItems].([]any)
	for i, item := range items {
		ref, _ := item.(map[string]any)
		id, ok := intValue(ref[keyTrackID])
		if !ok {
			return nil, fmt.Errorf("%w: playlist %q item %d has no track id", ErrIntegrity, name, i+1)
		}
		idx, ok := l.index[int(id)]
		if !ok {
			return nil, fmt.Errorf("%w: playlist %q item %d references unknown track %d", ErrIntegrity, name, i+1, id)
		}
		p.Entries = append(p.Entries, Entry{Position: len(p.Entries) + 1, Track: idx})
	}

	return p, nil
}
