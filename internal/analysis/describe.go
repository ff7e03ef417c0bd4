package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

// DefaultBins is the histogram resolution used when none is given.
const DefaultBins = 30

// Describe summarizes cols, or every numeric column when cols is empty. Std is
// the sample standard deviation, so it is NaN for a single row.
func Describe(t *dataset.Table, cols []dataset.Column) ([]ColumnSummary, error) {
	if len(cols) == 0 {
		cols = dataset.NumericColumns
	}
	if t.Len() == 0 {
		return nil, fmt.Errorf("describe: %w", ErrInsufficientData)
	}

	summaries := make([]ColumnSummary, 0, len(cols))
	for _, c := range cols {
		x := t.Values(c)
		sort.Float64s(x)

		mean, std := stat.MeanStdDev(x, nil)
		summaries = append(summaries, ColumnSummary{
			Column: c,
			Count:  len(x),
			Mean:   mean,
			Std:    std,
			Min:    x[0],
			Q25:    stat.Quantile(0.25, stat.Empirical, x, nil),
			Median: stat.Quantile(0.5, stat.Empirical, x, nil),
			Q75:    stat.Quantile(0.75, stat.Empirical, x, nil),
			Max:    x[len(x)-1],
		})
	}
	return summaries, nil
}

// Distribution bins col into equal-width intervals spanning its range. When
// every value is equal the range is widened by half a unit on each side.
func Distribution(t *dataset.Table, col dataset.Column, bins int) (Histogram, error) {
	if bins <= 0 {
		bins = DefaultBins
	}
	if t.Len() == 0 {
		return Histogram{}, fmt.Errorf("distribution of %s: %w", col, ErrInsufficientData)
	}

	x := t.Values(col)
	sort.Float64s(x)
	lo, hi := x[0], x[len(x)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	edges[bins] = hi
	// The histogram's last divider is exclusive, nudge it so the maximum lands
	// in the last bin.
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, x, nil)

	h := Histogram{Column: col, Bins: make([]Bin, bins)}
	for i := range h.Bins {
		h.Bins[i] = Bin{Lower: edges[i], Upper: edges[i+1], Count: int(counts[i])}
	}
	return h, nil
}
