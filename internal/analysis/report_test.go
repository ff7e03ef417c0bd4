package analysis

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

func TestGenerateReport(t *testing.T) {
	report, err := GenerateReport(testTable(), ReportConfig{Source: "data.csv", Bins: 5})
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if report.Metadata.Tracks != 6 || report.Metadata.Artist != dataset.AllArtists {
		t.Errorf("metadata = %+v", report.Metadata)
	}
	if len(report.Preview) != 6 {
		t.Errorf("preview has %d rows, want 6", len(report.Preview))
	}
	if len(report.Notes) != 0 {
		t.Errorf("unexpected notes: %v", report.Notes)
	}
	if len(report.TopTracks) != len(topSections) {
		t.Fatalf("expected %d top lists, got %d", len(topSections), len(report.TopTracks))
	}
	if report.TopTracks[0].Feature != dataset.ColLoudness || len(report.TopTracks[0].Tracks) != 5 {
		t.Errorf("first top list = %s with %d tracks, want loudness with 5", report.TopTracks[0].Feature, len(report.TopTracks[0].Tracks))
	}
	if report.TopTracks[0].Tracks[0].SongTitle != "Xanny Family" {
		t.Errorf("loudest track = %q, want Xanny Family", report.TopTracks[0].Tracks[0].SongTitle)
	}
	if len(report.PopularArtists) != 5 || report.PopularArtists[0].Category != "Future" || report.PopularArtists[0].Count != 2 {
		t.Errorf("popular artists = %+v, want 5 entries led by Future with 2 tracks", report.PopularArtists)
	}
	if report.MostTrendingArtist == nil || report.MostTrendingArtist.Category != "Future" {
		t.Errorf("most trending artist = %+v", report.MostTrendingArtist)
	}
	if report.MostDanceable == nil || report.MostDanceable.SongTitle != "Xanny Family" {
		t.Errorf("most danceable = %+v", report.MostDanceable)
	}
	if report.FeatureDistribution == nil || report.FeatureDistribution.Column != dataset.ColEnergy || len(report.FeatureDistribution.Bins) != 5 {
		t.Errorf("feature distribution = %+v", report.FeatureDistribution)
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("yaml.Marshal: %v", err)
	}
	// time_signature is constant, so its correlations are undefined.
	if !strings.Contains(string(out), ".nan") {
		t.Errorf("expected undefined correlations to be encoded as .nan")
	}
}

func TestGenerateReportEmptySubset(t *testing.T) {
	report, err := GenerateReport(testTable().FilterArtist("Nobody"), ReportConfig{Artist: "Nobody"})
	if err != nil {
		t.Fatalf("GenerateReport on an empty subset should not fail: %v", err)
	}
	if report.Metadata.Tracks != 0 {
		t.Errorf("tracks = %d, want 0", report.Metadata.Tracks)
	}
	if report.Correlation != nil || report.MostDanceable != nil || report.MostCommonDuration != nil {
		t.Errorf("empty report should have no computed sections")
	}
	// summary, 4 distributions, top lists, histogram, correlation, popular artists, 3 extremes
	want := 1 + 4 + len(topSections) + 1 + 1 + 1 + 3
	if len(report.Notes) != want {
		t.Errorf("got %d notes, want %d: %v", len(report.Notes), want, report.Notes)
	}
}
