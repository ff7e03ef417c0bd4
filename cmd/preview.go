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

var previewNumber int
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Prints the first rows of the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := current.selection()
		if err != nil {
			return err
		}
		a := PreviewAnalyser{}.SetConfig(AnalyserConfig{NumToReturn: previewNumber})
		return printAnalysis(cmd.OutOrStdout(), a, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVarP(&previewNumber, "number", "n", 20, "number of rows to show")
}

type PreviewAnalyser struct {
	Config AnalyserConfig
}

func (p PreviewAnalyser) SetConfig(config AnalyserConfig) PreviewAnalyser {
	p.Config = config
	return p
}

func (PreviewAnalyser) GetName() string {
	return "Dataset preview"
}

func (p PreviewAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	if table.Len() == 0 {
		err = fmt.Errorf("preview: %w", analysis.ErrInsufficientData)
		return
	}

	header := []string{string(dataset.ColSongTitle), string(dataset.ColArtist)}
	for _, c := range dataset.NumericColumns {
		header = append(header, string(c))
	}
	result.results = [][]string{header}

	head := table
	if p.Config.NumToReturn > 0 {
		head = table.Head(p.Config.NumToReturn)
	}
	for i := 0; i < head.Len(); i++ {
		track := head.At(i)
		row := []string{track.SongTitle, track.Artist}
		for _, c := range dataset.NumericColumns {
			row = append(row, formatValue(track.Value(c)))
		}
		result.results = append(result.results, row)
	}
	result.summary = fmt.Sprintf("Showing %d of %d tracks", head.Len(), table.Len())
	return
}
