package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

// Correlation computes the Pearson correlation matrix over cols, or over every
// numeric column when cols is empty. A column whose values are all equal has no
// defined correlation: its whole row and column, diagonal included, are NaN.
func Correlation(t *dataset.Table, cols []dataset.Column) (CorrelationMatrix, error) {
	if len(cols) == 0 {
		cols = dataset.NumericColumns
	}
	if t.Len() == 0 {
		return CorrelationMatrix{}, fmt.Errorf("correlation: %w", ErrInsufficientData)
	}

	series := make([][]float64, len(cols))
	constant := make([]bool, len(cols))
	for i, c := range cols {
		series[i] = t.Values(c)
		constant[i] = isConstant(series[i])
	}

	m := CorrelationMatrix{
		Columns: append([]dataset.Column(nil), cols...),
		Values:  make([][]float64, len(cols)),
	}
	for i := range m.Values {
		m.Values[i] = make([]float64, len(cols))
	}

	for i := range cols {
		for j := i; j < len(cols); j++ {
			var r float64
			switch {
			case constant[i] || constant[j]:
				r = math.NaN()
			case i == j:
				r = 1
			default:
				r = clamp(stat.Correlation(series[i], series[j], nil))
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

// clamp pulls rounding error back into [-1, 1].
func clamp(r float64) float64 {
	return math.Max(-1, math.Min(1, r))
}
