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

var countsNumber int
var countsCmd = &cobra.Command{
	Use:   "counts <column>",
	Short: "Counts tracks per artist, key, mode or time signature",
	Long:  `<column> is one of: artist, key, mode, time_signature. Mode is shown as Major/Minor.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		column, err := dataset.ParseCategorical(args[0])
		if err != nil {
			return err
		}
		table, err := current.selection()
		if err != nil {
			return err
		}
		a := CountsAnalyser{Column: column}.SetConfig(AnalyserConfig{NumToReturn: countsNumber})
		return printAnalysis(cmd.OutOrStdout(), a, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(countsCmd)

	countsCmd.Flags().IntVarP(&countsNumber, "number", "n", 0, "number of results to return, 0 for all")
}

type CountsAnalyser struct {
	Column dataset.Column
	Config AnalyserConfig
}

func (c CountsAnalyser) SetConfig(config AnalyserConfig) CountsAnalyser {
	c.Config = config
	return c
}

func (c CountsAnalyser) GetName() string {
	return fmt.Sprintf("Tracks per %s", c.Column)
}

func (c CountsAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	counts, err := analysis.ValueCounts(table, c.Column, c.Config.NumToReturn)
	if err != nil {
		return
	}

	result.results = [][]string{{string(c.Column), "Tracks", "Share"}}
	for _, count := range counts {
		result.results = append(result.results, []string{
			count.Category,
			strconv.Itoa(count.Count),
			formatShare(count.Share),
		})
	}
	result.summary = fmt.Sprintf("Found %d tracks", table.Len())
	return
}
