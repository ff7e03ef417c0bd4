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

var correlationColumns []string
var correlationCmd = &cobra.Command{
	Use:   "correlation",
	Short: "Prints the Pearson correlation matrix of the numeric columns",
	Long: `Columns whose values are all equal have no defined correlation and are shown as NaN.
Use --columns to restrict the matrix, e.g. --columns energy,loudness,valence.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, err := parseColumns(correlationColumns)
		if err != nil {
			return err
		}
		table, err := current.selection()
		if err != nil {
			return err
		}
		return printAnalysis(cmd.OutOrStdout(), CorrelationAnalyser{Columns: columns}, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(correlationCmd)

	correlationCmd.Flags().StringSliceVar(&correlationColumns, "columns", nil, "numeric columns to correlate (default all)")
}

func parseColumns(names []string) ([]dataset.Column, error) {
	var columns []dataset.Column
	for _, name := range names {
		c, err := dataset.ParseColumn(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}

type CorrelationAnalyser struct {
	Columns []dataset.Column
}

func (CorrelationAnalyser) GetName() string {
	return "Correlation heatmap"
}

func (c CorrelationAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	m, err := analysis.Correlation(table, c.Columns)
	if err != nil {
		return
	}

	header := []string{""}
	for _, col := range m.Columns {
		header = append(header, string(col))
	}
	result.results = [][]string{header}

	undefined := 0
	for i, col := range m.Columns {
		row := []string{string(col)}
		for j := range m.Columns {
			if m.IsUndefined(i, j) {
				undefined++
				row = append(row, "NaN")
				continue
			}
			row = append(row, fmt.Sprintf("%.2f", m.Values[i][j]))
		}
		result.results = append(result.results, row)
	}
	if undefined > 0 {
		result.summary = fmt.Sprintf("%d coefficients are undefined (zero-variance columns)", undefined)
	}
	return
}
