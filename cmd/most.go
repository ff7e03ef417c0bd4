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

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-eda/internal/analysis"
	"github.com/ademuri/spotify-eda/internal/dataset"
)

var mostCmd = &cobra.Command{
	Use:   "most <feature>",
	Short: "Shows the track with the highest value of an audio feature",
	Long:  `For example 'most danceability' shows the most danceable song and its artist.`,
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
		return printAnalysis(cmd.OutOrStdout(), MostAnalyser{Feature: feature}, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(mostCmd)
}

type MostAnalyser struct {
	Feature dataset.Column
}

func (m MostAnalyser) GetName() string {
	return fmt.Sprintf("Track with the most %s", m.Feature)
}

func (m MostAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	track, err := analysis.MostBy(table, m.Feature)
	if err != nil {
		return
	}
	result.results = [][]string{
		{"Artist", "Song Title", string(m.Feature)},
		{track.Artist, track.SongTitle, formatValue(track.Value(m.Feature))},
	}
	return
}
