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

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Shows the most common track duration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := current.selection()
		if err != nil {
			return err
		}
		return printAnalysis(cmd.OutOrStdout(), DurationAnalyser{}, table, current.artist)
	},
}

func init() {
	rootCmd.AddCommand(durationCmd)
}

type DurationAnalyser struct{}

func (DurationAnalyser) GetName() string {
	return "Most common track duration"
}

func (DurationAnalyser) GetResults(table *dataset.Table) (result Analysis, err error) {
	bucket, err := analysis.MostCommonDuration(table)
	if err != nil {
		return
	}
	result.summary = fmt.Sprintf("The most common track duration is %d minutes and %d seconds (%d ms), shared by %d tracks.",
		bucket.Minutes, bucket.Seconds, bucket.DurationMs, bucket.Count)
	return
}
