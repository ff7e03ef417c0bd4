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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-eda/internal/analysis"
	"github.com/ademuri/spotify-eda/internal/dataset"
)

var topTracksNumber int
var topTracksCmd = &cobra.Command{
	Use:   "top <feature>",
	Short: "Lists the tracks with the highest value of an audio feature",
	Long:  `<feature> is one of: energy, valence, tempo, loudness, acousticness, danceability, instrumentalness, liveness, speechiness.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		feature, err := dataset.ParseFeature(args[0])
		if err != nil {
			return err
		}
		table, err := current.selection()
		if err != nil {
			return err
		}
		a := TopTracksAnalyser{Feature: feature}.SetConfig(AnalyserConfig{NumToReturn: topTracksNumber})
		return printAnalysis(cmd.OutOrStdout(), a, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(topTracksCmd)

	topTracksCmd.Flags().IntVarP(&topTracksNumber, "number", "n", 10, "number of results to return")
}

type TopTracksAnalyser struct {
	Feature dataset.Column
	Config  AnalyserConfig
}

func (t TopTracksAnalyser) SetConfig(config AnalyserConfig) TopTracksAnalyser {
	t.Config = config
	return t
}

func (t TopTracksAnalyser) GetName() string {
	return fmt.Sprintf("Top %d tracks by %s", t.Config.NumToReturn, t.Feature)
}

func (t TopTracksAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	n := t.Config.NumToReturn
	if n == 0 {
		n = table.Len()
	}
	tracks, err := analysis.TopN(table, t.Feature, n)
	if err != nil {
		return
	}

	result.results = [][]string{{"#", "Song Title", "Artist", string(t.Feature)}}
	for i, track := range tracks {
		result.results = append(result.results, []string{
			strconv.Itoa(i + 1),
			track.SongTitle,
			track.Artist,
			formatValue(track.Value),
		})
	}
	result.summary = fmt.Sprintf("Showing %d of %d tracks", len(tracks), table.Len())
	return
}
