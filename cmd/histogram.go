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
	"strings"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-eda/internal/analysis"
	"github.com/ademuri/spotify-eda/internal/dataset"
)

var histogramBins int
var histogramCmd = &cobra.Command{
	Use:   "histogram <feature>",
	Short: "Shows the distribution of an audio feature",
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
		return printAnalysis(cmd.OutOrStdout(), HistogramAnalyser{Feature: feature, Bins: histogramBins}, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(histogramCmd)

	histogramCmd.Flags().IntVar(&histogramBins, "bins", analysis.DefaultBins, "number of bins")
}

type HistogramAnalyser struct {
	Feature dataset.Column
	Bins    int
}

func (h HistogramAnalyser) GetName() string {
	return fmt.Sprintf("%s distribution", h.Feature)
}

// Bars are scaled so the fullest bin is this wide.
const histogramWidth = 40

func (h HistogramAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	hist, err := analysis.Distribution(table, h.Feature, h.Bins)
	if err != nil {
		return
	}

	largest := 0
	for _, b := range hist.Bins {
		largest = max(largest, b.Count)
	}

	result.results = [][]string{{"From", "To", "Tracks", ""}}
	for _, b := range hist.Bins {
		bar := 0
		if largest > 0 {
			bar = b.Count * histogramWidth / largest
		}
		result.results = append(result.results, []string{
			formatStat(b.Lower),
			formatStat(b.Upper),
			strconv.Itoa(b.Count),
			strings.Repeat("#", bar),
		})
	}
	result.summary = fmt.Sprintf("%s distribution over %d tracks", h.Feature, table.Len())
	return
}
