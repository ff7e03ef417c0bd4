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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

const testCSV = `acousticness,danceability,duration_ms,energy,instrumentalness,key,liveness,loudness,mode,speechiness,tempo,time_signature,valence,song_title,artist
0.0102,0.833,204600,0.434,0.0219,2,0.165,-8.795,1,0.431,150.062,4,0.286,Mask Off,Future
0.199,0.743,326933,0.359,0.00611,1,0.137,-10.401,1,0.0794,160.083,4,0.588,Redbone,Childish Gambino
0.0344,0.838,185707,0.412,0.000234,2,0.159,-7.148,1,0.289,75.044,4,0.173,Xanny Family,Future
0.604,0.494,199413,0.338,0.51,5,0.0922,-15.236,1,0.0261,86.468,4,0.23,Master Of None,Beach House
0.18,0.678,392893,0.561,0.512,5,0.439,-11.648,0,0.0694,174.004,4,0.904,Parallel Lines,Junior Boys
`

func writeTestCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// run executes the root command. Persistent flags keep their values between
// runs, so every call sets them explicitly.
func run(t *testing.T, dataPath string, artist string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append(args, "--data", dataPath, "--artist", artist))
	err := execute()
	return out.String(), err
}

func TestTopCommand(t *testing.T) {
	path := writeTestCSV(t)

	out, err := run(t, path, dataset.AllArtists, "top", "energy", "-n", "2")
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if !strings.Contains(out, "Parallel Lines") || !strings.Contains(out, "Mask Off") {
		t.Errorf("top energy output missing the two most energetic tracks:\n%s", out)
	}
	if strings.Contains(out, "Redbone") {
		t.Errorf("top energy -n 2 should not list Redbone:\n%s", out)
	}
}

func TestTopCommandWithArtist(t *testing.T) {
	path := writeTestCSV(t)

	out, err := run(t, path, "Future", "top", "danceability", "-n", "10")
	if err != nil {
		t.Fatalf("top failed: %v", err)
	}
	if !strings.Contains(out, "Xanny Family") || strings.Contains(out, "Redbone") {
		t.Errorf("filtered output should only list Future's tracks:\n%s", out)
	}
	if !strings.Contains(out, "Showing 2 of 2 tracks") {
		t.Errorf("expected summary line for two tracks:\n%s", out)
	}
}

func TestUnknownArtistPrintsPlaceholder(t *testing.T) {
	path := writeTestCSV(t)

	for _, args := range [][]string{
		{"top", "energy"},
		{"duration"},
		{"trending"},
		{"correlation"},
		{"most", "danceability"},
		{"preview"},
	} {
		out, err := run(t, path, "Nobody", args...)
		if err != nil {
			t.Fatalf("%v failed: %v", args, err)
		}
		if !strings.Contains(out, `No data for artist "Nobody".`) {
			t.Errorf("%v should print the no-data placeholder, got:\n%s", args, out)
		}
	}
}

func TestMissingDataIsFatal(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "missing.csv"), dataset.AllArtists, "trending")
	if !errors.Is(err, dataset.ErrDataUnavailable) {
		t.Fatalf("trending with a missing file: error = %v, want ErrDataUnavailable", err)
	}
}

func TestFailedCommandEndsSession(t *testing.T) {
	path := writeTestCSV(t)

	if _, err := run(t, path, dataset.AllArtists, "most", "popularity"); err == nil {
		t.Fatalf("most popularity should fail")
	}
	if current != nil {
		t.Errorf("session still open after a failed command")
	}
}

func TestInvalidFeature(t *testing.T) {
	path := writeTestCSV(t)

	_, err := run(t, path, dataset.AllArtists, "top", "popularity")
	if err == nil || !strings.Contains(err.Error(), "danceability") {
		t.Errorf("top popularity error = %v, want the list of features", err)
	}
}

func TestDurationAndTrending(t *testing.T) {
	path := writeTestCSV(t)

	out, err := run(t, path, dataset.AllArtists, "trending")
	if err != nil {
		t.Fatalf("trending failed: %v", err)
	}
	if !strings.Contains(out, "The most trending artist is Future with 2 tracks") {
		t.Errorf("unexpected trending output:\n%s", out)
	}

	out, err = run(t, path, dataset.AllArtists, "duration")
	if err != nil {
		t.Fatalf("duration failed: %v", err)
	}
	// Every duration is unique, so the shortest wins the tie.
	if !strings.Contains(out, "3 minutes and 5 seconds (185707 ms)") {
		t.Errorf("unexpected duration output:\n%s", out)
	}
}

func TestReportCommand(t *testing.T) {
	path := writeTestCSV(t)

	out, err := run(t, path, "Future", "report", "--feature", "valence", "--bins", "3")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	for _, want := range []string{"artist: Future", "tracks: 2", "column: valence", "most_trending_artist:"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestArtistsCommand(t *testing.T) {
	path := writeTestCSV(t)

	out, err := run(t, path, "Future", "artists")
	if err != nil {
		t.Fatalf("artists failed: %v", err)
	}
	want := "All\nFuture\nChildish Gambino\nBeach House\nJunior Boys\n"
	if out != want {
		t.Errorf("artists output = %q, want %q", out, want)
	}
}
