package analysis

import (
	"fmt"
	"sort"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

// ValueCounts ranks the values of col by how many rows carry them. Ties keep
// the order in which values were first seen. k <= 0 returns every value.
func ValueCounts(t *dataset.Table, col dataset.Column, k int) ([]CategoryCount, error) {
	if t.Len() == 0 {
		return nil, fmt.Errorf("counts of %s: %w", col, ErrInsufficientData)
	}

	index := make(map[string]int)
	var counts []CategoryCount
	for i := 0; i < t.Len(); i++ {
		label := t.At(i).Label(col)
		pos, ok := index[label]
		if !ok {
			pos = len(counts)
			index[label] = pos
			counts = append(counts, CategoryCount{Category: label})
		}
		counts[pos].Count++
	}

	total := float64(t.Len())
	for i := range counts {
		counts[i].Share = float64(counts[i].Count) / total
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if k > 0 && k < len(counts) {
		counts = counts[:k]
	}
	return counts, nil
}

// MostFrequent returns a value of col with the highest count. When several
// values tie, any one of them may be returned.
func MostFrequent(t *dataset.Table, col dataset.Column) (CategoryCount, error) {
	counts, err := ValueCounts(t, col, 1)
	if err != nil {
		return CategoryCount{}, err
	}
	return counts[0], nil
}
