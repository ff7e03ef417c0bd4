package analysis

import (
	"fmt"
	"sort"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

// TopN returns the n rows with the largest col, highest first. Ties keep table
// order. Asking for more rows than exist returns all of them.
func TopN(t *dataset.Table, col dataset.Column, n int) ([]RankedTrack, error) {
	if n < 0 {
		return nil, fmt.Errorf("top %s: n must not be negative, got %d", col, n)
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("top %s: %w", col, ErrInsufficientData)
	}

	ranked := make([]RankedTrack, t.Len())
	for i := range ranked {
		tr := t.At(i)
		ranked[i] = RankedTrack{SongTitle: tr.SongTitle, Artist: tr.Artist, Value: tr.Value(col)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// MostBy returns the first row holding the maximum of col. Which of several
// tied rows is returned is not part of the contract.
func MostBy(t *dataset.Table, col dataset.Column) (dataset.Track, error) {
	if t.Len() == 0 {
		return dataset.Track{}, fmt.Errorf("most %s: %w", col, ErrInsufficientData)
	}

	best := 0
	for i := 1; i < t.Len(); i++ {
		if t.At(i).Value(col) > t.At(best).Value(col) {
			best = i
		}
	}
	return t.At(best), nil
}
