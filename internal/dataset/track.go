package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Column is a normalized column name of the track table.
type Column string

const (
	ColSongTitle        Column = "song_title"
	ColArtist           Column = "artist"
	ColAcousticness     Column = "acousticness"
	ColDanceability     Column = "danceability"
	ColEnergy           Column = "energy"
	ColInstrumentalness Column = "instrumentalness"
	ColLiveness         Column = "liveness"
	ColLoudness         Column = "loudness"
	ColSpeechiness      Column = "speechiness"
	ColTempo            Column = "tempo"
	ColValence          Column = "valence"
	ColDurationMs       Column = "duration_ms"
	ColKey              Column = "key"
	ColMode             Column = "mode"
	ColTimeSignature    Column = "time_signature"
)

// Features are the audio feature columns, in the order the dashboard offers them.
var Features = []Column{
	ColEnergy,
	ColValence,
	ColTempo,
	ColLoudness,
	ColAcousticness,
	ColDanceability,
	ColInstrumentalness,
	ColLiveness,
	ColSpeechiness,
}

// NumericColumns is every numeric column, in file order.
var NumericColumns = []Column{
	ColAcousticness,
	ColDanceability,
	ColDurationMs,
	ColEnergy,
	ColInstrumentalness,
	ColKey,
	ColLiveness,
	ColLoudness,
	ColMode,
	ColSpeechiness,
	ColTempo,
	ColTimeSignature,
	ColValence,
}

// Categoricals are the columns that value counts can be taken over.
var Categoricals = []Column{
	ColArtist,
	ColKey,
	ColMode,
	ColTimeSignature,
}

// Track is one row of the dataset.
type Track struct {
	SongTitle string `yaml:"song_title"`
	Artist    string `yaml:"artist"`

	Acousticness     float64 `yaml:"acousticness"`
	Danceability     float64 `yaml:"danceability"`
	Energy           float64 `yaml:"energy"`
	Instrumentalness float64 `yaml:"instrumentalness"`
	Liveness         float64 `yaml:"liveness"`
	Loudness         float64 `yaml:"loudness"`
	Speechiness      float64 `yaml:"speechiness"`
	Tempo            float64 `yaml:"tempo"`
	Valence          float64 `yaml:"valence"`

	DurationMs    int64 `yaml:"duration_ms"`
	Key           int   `yaml:"key"`
	Mode          int   `yaml:"mode"`
	TimeSignature int   `yaml:"time_signature"`
}

// Value returns the numeric value of col. It panics on a non-numeric column,
// callers are expected to pass a column validated by ParseColumn.
func (t Track) Value(col Column) float64 {
	switch col {
	case ColAcousticness:
		return t.Acousticness
	case ColDanceability:
		return t.Danceability
	case ColEnergy:
		return t.Energy
	case ColInstrumentalness:
		return t.Instrumentalness
	case ColLiveness:
		return t.Liveness
	case ColLoudness:
		return t.Loudness
	case ColSpeechiness:
		return t.Speechiness
	case ColTempo:
		return t.Tempo
	case ColValence:
		return t.Valence
	case ColDurationMs:
		return float64(t.DurationMs)
	case ColKey:
		return float64(t.Key)
	case ColMode:
		return float64(t.Mode)
	case ColTimeSignature:
		return float64(t.TimeSignature)
	}
	panic(fmt.Sprintf("dataset: %q is not a numeric column", col))
}

// Label renders a categorical value for display and grouping.
func (t Track) Label(col Column) string {
	switch col {
	case ColArtist:
		return t.Artist
	case ColSongTitle:
		return t.SongTitle
	case ColKey:
		return strconv.Itoa(t.Key)
	case ColMode:
		return ModeName(t.Mode)
	case ColTimeSignature:
		return strconv.Itoa(t.TimeSignature)
	}
	return strconv.FormatFloat(t.Value(col), 'g', -1, 64)
}

// ModeName maps the mode flag to "Major" or "Minor".
func ModeName(mode int) string {
	if mode == 1 {
		return "Major"
	}
	return "Minor"
}

// NormalizeName trims and lower-cases a raw column name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func parseFrom(name string, allowed []Column, kind string) (Column, error) {
	n := Column(NormalizeName(name))
	for _, c := range allowed {
		if c == n {
			return c, nil
		}
	}
	names := make([]string, len(allowed))
	for i, c := range allowed {
		names[i] = string(c)
	}
	return "", fmt.Errorf("unknown %s %q, expected one of: %s", kind, name, strings.Join(names, ", "))
}

// ParseColumn validates name against the numeric columns.
func ParseColumn(name string) (Column, error) {
	return parseFrom(name, NumericColumns, "column")
}

// ParseFeature validates name against the audio features.
func ParseFeature(name string) (Column, error) {
	return parseFrom(name, Features, "feature")
}

// ParseCategorical validates name against the categorical columns.
func ParseCategorical(name string) (Column, error) {
	return parseFrom(name, Categoricals, "categorical column")
}
