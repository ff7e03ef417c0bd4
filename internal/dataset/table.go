package dataset

import "slices"

// AllArtists selects every row in FilterArtist.
const AllArtists = "All"

// Table is an immutable, ordered set of tracks. Filtering derives a new Table.
type Table struct {
	tracks []Track
}

// NewTable copies tracks into a Table.
func NewTable(tracks []Track) *Table {
	return &Table{tracks: slices.Clone(tracks)}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.tracks)
}

func (t *Table) At(i int) Track {
	return t.tracks[i]
}

// Rows returns a copy of the tracks.
func (t *Table) Rows() []Track {
	if t == nil {
		return nil
	}
	return slices.Clone(t.tracks)
}

// Head returns a table with at most n leading rows.
func (t *Table) Head(n int) *Table {
	if n < 0 || n >= t.Len() {
		return t
	}
	return &Table{tracks: t.tracks[:n:n]}
}

// Artists lists distinct artists in first-seen order.
func (t *Table) Artists() []string {
	seen := make(map[string]bool)
	var artists []string
	for _, tr := range t.tracks {
		if !seen[tr.Artist] {
			seen[tr.Artist] = true
			artists = append(artists, tr.Artist)
		}
	}
	return artists
}

// FilterArtist returns the rows whose artist equals selector exactly. AllArtists
// and the empty string return the receiver unchanged. No match yields an empty
// table, not an error.
func (t *Table) FilterArtist(selector string) *Table {
	if selector == "" || selector == AllArtists {
		return t
	}
	out := &Table{tracks: []Track{}}
	for _, tr := range t.tracks {
		if tr.Artist == selector {
			out.tracks = append(out.tracks, tr)
		}
	}
	return out
}

// Values returns col for every row, in row order.
func (t *Table) Values(col Column) []float64 {
	values := make([]float64, t.Len())
	for i := range values {
		values[i] = t.tracks[i].Value(col)
	}
	return values
}
