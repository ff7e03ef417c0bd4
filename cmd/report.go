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
	"gopkg.in/yaml.v3"

	"github.com/ademuri/spotify-eda/internal/analysis"
	"github.com/ademuri/spotify-eda/internal/dataset"
)

var reportFeature string
var reportBins int

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates the full dashboard as YAML",
	Long:  `Runs every summary for the selected artist and writes them as one YAML document. Sections without data are listed under notes.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		feature, err := dataset.ParseFeature(reportFeature)
		if err != nil {
			return err
		}
		table, err := current.selection()
		if err != nil {
			return err
		}
		config := analysis.ReportConfig{
			Source:  current.source,
			Artist:  current.artist,
			Feature: feature,
			Bins:    reportBins,
		}
		return runReport(cmd.OutOrStdout(), table, config)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(&reportFeature, "feature", string(dataset.ColEnergy), "feature whose distribution is included")
	reportCmd.Flags().IntVar(&reportBins, "bins", analysis.DefaultBins, "number of distribution bins")
}

func runReport(out io.Writer, table *dataset.Table, config analysis.ReportConfig) error {
	report, err := analysis.GenerateReport(table, config)
	if err != nil {
		return fmt.Errorf("analyzing data: %w", err)
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
