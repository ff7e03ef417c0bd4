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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ademuri/spotify-eda/internal/analysis"
	"github.com/ademuri/spotify-eda/internal/dataset"
)

var describeColumns []string
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Prints descriptive statistics of the numeric columns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, err := parseColumns(describeColumns)
		if err != nil {
			return err
		}
		table, err := current.selection()
		if err != nil {
			return err
		}
		return printAnalysis(cmd.OutOrStdout(), DescribeAnalyser{Columns: columns}, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringSliceVar(&describeColumns, "columns", nil, "numeric columns to describe (default all)")
}

type DescribeAnalyser struct {
	Columns []dataset.Column
}

func (DescribeAnalyser) GetName() string {
	return "Descriptive statistics"
}

func (d DescribeAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	summaries, err := analysis.Describe(table, d.Columns)
	if err != nil {
		return
	}

	result.results = [][]string{{"Column", "Count", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"}}
	for _, s := range summaries {
		result.results = append(result.results, []string{
			string(s.Column),
			strconv.Itoa(s.Count),
			formatStat(s.Mean),
			formatStat(s.Std),
			formatStat(s.Min),
			formatStat(s.Q25),
			formatStat(s.Median),
			formatStat(s.Q75),
			formatStat(s.Max),
		})
	}
	return
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
