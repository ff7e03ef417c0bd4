package analysis

import (
	"fmt"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

const (
	msPerMinute = 60000
	msPerSecond = 1000
)

// MostCommonDuration finds the modal duration_ms. Ties go to the shortest
// duration.
func MostCommonDuration(t *dataset.Table) (DurationBucket, error) {
	if t.Len() == 0 {
		return DurationBucket{}, fmt.Errorf("most common duration: %w", ErrInsufficientData)
	}

	counts := make(map[int64]int)
	for i := 0; i < t.Len(); i++ {
		counts[t.At(i).DurationMs]++
	}

	var best DurationBucket
	for d, c := range counts {
		if c > best.Count || (c == best.Count && d < best.DurationMs) {
			best = DurationBucket{DurationMs: d, Count: c}
		}
	}
	best.Minutes, best.Seconds = SplitDuration(best.DurationMs)
	return best, nil
}

// SplitDuration breaks ms into whole minutes and the remaining whole seconds.
func SplitDuration(ms int64) (minutes, seconds int64) {
	return ms / msPerMinute, (ms % msPerMinute) / msPerSecond
}
