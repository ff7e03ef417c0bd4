package analysis

import (
	"errors"
	"fmt"
	"time"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

// Report is every dashboard section for one artist selection.
type Report struct {
	Metadata ReportMetadata `yaml:"metadata"`

	Preview []dataset.Track `yaml:"preview,omitempty"`
	Summary []ColumnSummary `yaml:"summary,omitempty"`

	ModeDistribution          []CategoryCount `yaml:"mode_distribution,omitempty"`
	TimeSignatureDistribution []CategoryCount `yaml:"time_signature_distribution,omitempty"`
	KeyDistribution           []CategoryCount `yaml:"key_distribution,omitempty"`
	TopArtists                []CategoryCount `yaml:"top_artists,omitempty"`

	TopTracks []TopList `yaml:"top_tracks,omitempty"`

	FeatureDistribution *Histogram         `yaml:"feature_distribution,omitempty"`
	Correlation         *CorrelationMatrix `yaml:"correlation,omitempty"`
	PopularArtists      []CategoryCount    `yaml:"popular_artists,omitempty"`

	MostDanceable      *dataset.Track  `yaml:"most_danceable,omitempty"`
	MostCommonDuration *DurationBucket `yaml:"most_common_duration,omitempty"`
	MostTrendingArtist *CategoryCount  `yaml:"most_trending_artist,omitempty"`

	// Sections that had no rows to work with.
	Notes []string `yaml:"notes,omitempty"`
}

type ReportMetadata struct {
	GeneratedDate string `yaml:"generated_date"`
	Source        string `yaml:"source"`
	Artist        string `yaml:"artist"`
	Tracks        int    `yaml:"tracks"`
}

// TopList is a top-N listing for one feature.
type TopList struct {
	Feature dataset.Column `yaml:"feature"`
	Tracks  []RankedTrack  `yaml:"tracks"`
}

type ReportConfig struct {
	Source string
	Artist string

	PreviewRows    int
	TopArtists     int
	PopularArtists int
	// Feature shown in the distribution section.
	Feature dataset.Column
	Bins    int
}

// topSections lists the top-N tables of the dashboard, in display order.
var topSections = []struct {
	feature dataset.Column
	n       int
}{
	{dataset.ColLoudness, 5},
	{dataset.ColInstrumentalness, 10},
	{dataset.ColEnergy, 10},
	{dataset.ColValence, 10},
	{dataset.ColLiveness, 10},
	{dataset.ColAcousticness, 10},
	{dataset.ColSpeechiness, 10},
}

// GenerateReport runs every dashboard section over t. Sections without data are
// left out and listed in Notes; any other failure aborts the report.
func GenerateReport(t *dataset.Table, config ReportConfig) (*Report, error) {
	if config.PreviewRows == 0 {
		config.PreviewRows = 20
	}
	if config.TopArtists == 0 {
		config.TopArtists = 10
	}
	if config.PopularArtists == 0 {
		config.PopularArtists = 5
	}
	if config.Feature == "" {
		config.Feature = dataset.ColEnergy
	}
	if config.Artist == "" {
		config.Artist = dataset.AllArtists
	}

	report := &Report{
		Metadata: ReportMetadata{
			GeneratedDate: time.Now().Format("2006-01-02"),
			Source:        config.Source,
			Artist:        config.Artist,
			Tracks:        t.Len(),
		},
		Preview: t.Head(config.PreviewRows).Rows(),
	}

	summary, err := Describe(t, nil)
	if err := report.skip("summary", err); err != nil {
		return nil, err
	}
	report.Summary = summary

	distributions := []struct {
		name string
		col  dataset.Column
		dst  *[]CategoryCount
		k    int
	}{
		{"mode distribution", dataset.ColMode, &report.ModeDistribution, 0},
		{"time signature distribution", dataset.ColTimeSignature, &report.TimeSignatureDistribution, 0},
		{"key distribution", dataset.ColKey, &report.KeyDistribution, 0},
		{"top artists", dataset.ColArtist, &report.TopArtists, config.TopArtists},
	}
	for _, d := range distributions {
		counts, err := ValueCounts(t, d.col, d.k)
		if err := report.skip(d.name, err); err != nil {
			return nil, err
		}
		*d.dst = counts
	}

	for _, s := range topSections {
		tracks, err := TopN(t, s.feature, s.n)
		if err := report.skip(fmt.Sprintf("top %s", s.feature), err); err != nil {
			return nil, err
		}
		if tracks != nil {
			report.TopTracks = append(report.TopTracks, TopList{Feature: s.feature, Tracks: tracks})
		}
	}

	hist, err := Distribution(t, config.Feature, config.Bins)
	if err := report.skip("feature distribution", err); err != nil {
		return nil, err
	} else if hist.Bins != nil {
		report.FeatureDistribution = &hist
	}

	corr, err := Correlation(t, nil)
	if err := report.skip("correlation", err); err != nil {
		return nil, err
	} else if corr.Values != nil {
		report.Correlation = &corr
	}

	popular, err := ValueCounts(t, dataset.ColArtist, config.PopularArtists)
	if err := report.skip("popular artists", err); err != nil {
		return nil, err
	}
	report.PopularArtists = popular

	if track, err := MostBy(t, dataset.ColDanceability); err == nil {
		report.MostDanceable = &track
	} else if err := report.skip("most danceable", err); err != nil {
		return nil, err
	}

	if bucket, err := MostCommonDuration(t); err == nil {
		report.MostCommonDuration = &bucket
	} else if err := report.skip("most common duration", err); err != nil {
		return nil, err
	}

	if artist, err := MostFrequent(t, dataset.ColArtist); err == nil {
		report.MostTrendingArtist = &artist
	} else if err := report.skip("most trending artist", err); err != nil {
		return nil, err
	}

	return report, nil
}

// skip records a section that had no data and passes every other error through.
func (r *Report) skip(section string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInsufficientData) {
		r.Notes = append(r.Notes, fmt.Sprintf("%s: no data", section))
		return nil
	}
	return fmt.Errorf("%s: %w", section, err)
}
