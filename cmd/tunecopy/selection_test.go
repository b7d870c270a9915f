package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		n       int
		want    []int
		wantErr string
	}{
		{"single", "0", 3, []int{0}, ""},
		{"multiple keeps order", "2,0", 3, []int{2, 0}, ""},
		{"spaces", " 1 , 2 ", 3, []int{1, 2}, ""},
		{"duplicates", "1,1,0,1", 3, []int{1, 0}, ""},
		{"empty", "", 3, nil, "no playlists selected"},
		{"blank", "   ", 3, nil, "no playlists selected"},
		{"not a number", "0,x", 3, nil, `invalid selection "x"`},
		{"trailing comma", "0,", 3, nil, `invalid selection ""`},
		{"negative", "-1", 3, nil, "invalid selection -1"},
		{"out of range", "3", 3, nil, "invalid selection 3: must be between 0 and 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.input, tt.n)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
