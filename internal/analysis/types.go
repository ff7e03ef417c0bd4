package analysis

import (
	"errors"
	"math"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

// ErrInsufficientData is returned by every aggregation over an empty table.
var ErrInsufficientData = errors.New("insufficient data")

// RankedTrack is one row of a top-N listing.
type RankedTrack struct {
	SongTitle string  `yaml:"song_title"`
	Artist    string  `yaml:"artist"`
	Value     float64 `yaml:"value"`
}

// CategoryCount is the number of rows sharing one categorical value.
type CategoryCount struct {
	Category string  `yaml:"category"`
	Count    int     `yaml:"count"`
	Share    float64 `yaml:"share"`
}

// DurationBucket is the modal track length.
type DurationBucket struct {
	DurationMs int64 `yaml:"duration_ms"`
	Minutes    int64 `yaml:"minutes"`
	Seconds    int64 `yaml:"seconds"`
	Count      int   `yaml:"count"`
}

// CorrelationMatrix holds Pearson coefficients. Values[i][j] is the correlation
// of Columns[i] with Columns[j]; NaN marks an undefined coefficient.
type CorrelationMatrix struct {
	Columns []dataset.Column `yaml:"columns"`
	Values  [][]float64      `yaml:"values"`
}

// IsUndefined reports whether the coefficient at (i, j) could not be computed
// because one of the columns has zero variance.
func (m CorrelationMatrix) IsUndefined(i, j int) bool {
	return math.IsNaN(m.Values[i][j])
}

// at looks a coefficient up by column name.
func (m CorrelationMatrix) at(a, b dataset.Column) (float64, bool) {
	i, j := -1, -1
	for k, c := range m.Columns {
		if c == a {
			i = k
		}
		if c == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

// ColumnSummary mirrors a dataframe describe() row.
type ColumnSummary struct {
	Column dataset.Column `yaml:"column"`
	Count  int            `yaml:"count"`
	Mean   float64        `yaml:"mean"`
	Std    float64        `yaml:"std"`
	Min    float64        `yaml:"min"`
	Q25    float64        `yaml:"q25"`
	Median float64        `yaml:"median"`
	Q75    float64        `yaml:"q75"`
	Max    float64        `yaml:"max"`
}

type Bin struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper"`
	Count int     `yaml:"count"`
}

// Histogram is an equal-width binning of one column. Every bin is half-open
// except the last, which includes its upper edge.
type Histogram struct {
	Column dataset.Column `yaml:"column"`
	Bins   []Bin          `yaml:"bins"`
}
