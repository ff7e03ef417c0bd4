package dataset

import (
	"strings"
	"testing"
)

func testTable() *Table {
	return NewTable([]Track{
		{SongTitle: "Mask Off", Artist: "Future", Energy: 0.434},
		{SongTitle: "Redbone", Artist: "Childish Gambino", Energy: 0.359},
		{SongTitle: "Xanny Family", Artist: "Future", Energy: 0.412},
	})
}

func TestFilterArtist(t *testing.T) {
	table := testTable()

	tests := []struct {
		selector string
		want     []string
	}{
		{AllArtists, []string{"Mask Off", "Redbone", "Xanny Family"}},
		{"", []string{"Mask Off", "Redbone", "Xanny Family"}},
		{"Future", []string{"Mask Off", "Xanny Family"}},
		{"future", nil},
		{"Nobody", nil},
	}

	for _, tc := range tests {
		got := table.FilterArtist(tc.selector)
		if got.Len() != len(tc.want) {
			t.Errorf("FilterArtist(%q) has %d rows, want %d", tc.selector, got.Len(), len(tc.want))
			continue
		}
		for i, title := range tc.want {
			if got.At(i).SongTitle != title {
				t.Errorf("FilterArtist(%q)[%d] = %q, want %q", tc.selector, i, got.At(i).SongTitle, title)
			}
			if tc.selector != AllArtists && tc.selector != "" && got.At(i).Artist != tc.selector {
				t.Errorf("FilterArtist(%q)[%d] has artist %q", tc.selector, i, got.At(i).Artist)
			}
		}
	}

	if table.Len() != 3 {
		t.Errorf("filtering mutated the source table: %d rows", table.Len())
	}
}

func TestRowsIsACopy(t *testing.T) {
	table := testTable()
	rows := table.Rows()
	rows[0].SongTitle = "changed"
	if table.At(0).SongTitle != "Mask Off" {
		t.Errorf("Rows() exposed the table's backing slice")
	}
}

func TestArtistsAndHead(t *testing.T) {
	table := testTable()
	if got := strings.Join(table.Artists(), "|"); got != "Future|Childish Gambino" {
		t.Errorf("Artists() = %q", got)
	}
	if got := table.Head(2).Len(); got != 2 {
		t.Errorf("Head(2).Len() = %d", got)
	}
	if got := table.Head(10).Len(); got != 3 {
		t.Errorf("Head(10).Len() = %d", got)
	}
}

func TestParseColumn(t *testing.T) {
	if c, err := ParseFeature(" Energy "); err != nil || c != ColEnergy {
		t.Errorf("ParseFeature(\" Energy \") = %q, %v", c, err)
	}
	if _, err := ParseFeature("duration_ms"); err == nil {
		t.Errorf("ParseFeature(duration_ms) should fail, it is not an audio feature")
	}
	if c, err := ParseColumn("duration_ms"); err != nil || c != ColDurationMs {
		t.Errorf("ParseColumn(duration_ms) = %q, %v", c, err)
	}
	if _, err := ParseCategorical("energy"); err == nil || !strings.Contains(err.Error(), "artist") {
		t.Errorf("ParseCategorical(energy) error = %v, want list of allowed columns", err)
	}
}

func TestLabel(t *testing.T) {
	tr := Track{Artist: "Future", Key: 2, Mode: 0, TimeSignature: 4}
	for col, want := range map[Column]string{
		ColArtist:        "Future",
		ColKey:           "2",
		ColMode:          "Minor",
		ColTimeSignature: "4",
	} {
		if got := tr.Label(col); got != want {
			t.Errorf("Label(%s) = %q, want %q", col, got, want)
		}
	}
}
