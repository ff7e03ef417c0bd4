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

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Shows the artist with the most tracks",
	Long:  `When several artists share the highest track count, any one of them is shown.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := current.selection()
		if err != nil {
			return err
		}
		return printAnalysis(cmd.OutOrStdout(), TrendingAnalyser{}, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(trendingCmd)
}

type TrendingAnalyser struct{}

func (TrendingAnalyser) GetName() string {
	return "Most trending artist"
}

func (TrendingAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	top, err := analysis.MostFrequent(table, dataset.ColArtist)
	if err != nil {
		return
	}
	result.summary = fmt.Sprintf("The most trending artist is %s with %d tracks in the dataset.", top.Category, top.Count)
	return
}
