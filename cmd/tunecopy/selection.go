package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errEmptySelection = errors.New("no playlists selected")

// parseSelection turns "0, 2,5" into indices into a listing of n names.
// Repeated indices are kept once, in first-seen order.
func parseSelection(s string, n int) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errEmptySelection
	}

	var out []int
	seen := make(map[int]bool)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		i, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid selection %q: not a number", field)
		}
		if i < 0 || i >= n {
			return nil, fmt.Errorf("invalid selection %d: must be between 0 and %d", i, n-1)
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out, nil
}
