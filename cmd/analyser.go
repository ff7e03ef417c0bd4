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
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/spotify-eda/internal/analysis"
	"github.com/ademuri/spotify-eda/internal/dataset"
)

type Analysis struct {
	results [][]string
	summary string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int
}

type Analyser interface {
	GetResults(table *dataset.Table) (Analysis, error)

	GetName() string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	if len(a.results) > 0 {
		table := tablewriter.NewWriter(out)
		table.Header(a.results[0])
		for _, row := range a.results[1:] {
			if err := table.Append(row); err != nil {
				return fmt.Sprintf("Error rendering table: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if a.summary != "" {
		fmt.Fprintf(out, "%s\n", a.summary)
	}
	return out.String()
}

// printAnalysis renders one analyser. An empty selection prints a placeholder
// instead of failing.
func printAnalysis(out io.Writer, a Analyser, table *dataset.Table, artist string) error {
	result, err := a.GetResults(table)
	if errors.Is(err, analysis.ErrInsufficientData) {
		fmt.Fprintln(out, noDataMessage(artist))
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", a.GetName(), err)
	}
	fmt.Fprint(out, result)
	return nil
}

func noDataMessage(artist string) string {
	if artist == "" || artist == dataset.AllArtists {
		return "No data available."
	}
	return fmt.Sprintf("No data for artist %q.", artist)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatShare(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}
