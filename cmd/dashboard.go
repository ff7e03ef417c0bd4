/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

var dashboardFeature string
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Prints every summary, one section after another",
	Long:  `Runs the preview, distributions, top lists, correlation matrix and highlights for the selected artist.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		feature, err := dataset.ParseFeature(dashboardFeature)
		if err != nil {
			return err
		}
		table, err := current.selection()
		if err != nil {
			return err
		}
		return printDashboard(cmd.OutOrStdout(), table, current.artist, feature)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringVar(&dashboardFeature, "feature", string(dataset.ColEnergy), "feature whose distribution is shown")
}

type section struct {
	title    string
	analyser Analyser
}

func dashboardSections(feature dataset.Column) []section {
	top := func(f dataset.Column, n int) Analyser {
		return TopTracksAnalyser{Feature: f}.SetConfig(AnalyserConfig{NumToReturn: n})
	}
	return []section{
		{"Dataset Preview", PreviewAnalyser{}.SetConfig(AnalyserConfig{NumToReturn: 20})},
		{"Descriptive Statistics", DescribeAnalyser{}},
		{"Mode Distribution (Major/Minor)", CountsAnalyser{Column: dataset.ColMode}},
		{"Time Signature Distribution", CountsAnalyser{Column: dataset.ColTimeSignature}},
		{"Key Distribution", CountsAnalyser{Column: dataset.ColKey}},
		{"Top 10 Artists by Track Count", CountsAnalyser{Column: dataset.ColArtist}.SetConfig(AnalyserConfig{NumToReturn: 10})},
		{"Top 5 Loudest Tracks", top(dataset.ColLoudness, 5)},
		{"Top 10 Instrumental Tracks", top(dataset.ColInstrumentalness, 10)},
		{"Feature Distribution", HistogramAnalyser{Feature: feature}},
		{"Correlation Heatmap (Numeric Features)", CorrelationAnalyser{}},
		{"Top 5 Popular Artists", CountsAnalyser{Column: dataset.ColArtist}.SetConfig(AnalyserConfig{NumToReturn: 5})},
		{"Artist with Most Danceable Song", MostAnalyser{Feature: dataset.ColDanceability}},
		{"Most Common Track Duration", DurationAnalyser{}},
		{"Most Trending Artist", TrendingAnalyser{}},
		{"Top 10 Energetic Tracks", top(dataset.ColEnergy, 10)},
		{"Top 10 Tracks with Most Valence", top(dataset.ColValence, 10)},
		{"Top 10 Tracks by Liveness", top(dataset.ColLiveness, 10)},
		{"Top 10 Tracks by Acousticness", top(dataset.ColAcousticness, 10)},
		{"Top 10 Tracks by Speechiness", top(dataset.ColSpeechiness, 10)},
	}
}

func printDashboard(out io.Writer, table *dataset.Table, artist string, feature dataset.Column) error {
	fmt.Fprintf(out, "# Track Dashboard (%s)\n\n", artistLabel(artist))
	for _, s := range dashboardSections(feature) {
		fmt.Fprintf(out, "## %s\n", s.title)
		if err := printAnalysis(out, s.analyser, table, artist); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func artistLabel(artist string) string {
	if artist == "" || artist == dataset.AllArtists {
		return "all artists"
	}
	return artist
}
