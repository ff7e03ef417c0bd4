package store

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/ademuri/spotify-eda/internal/dataset"
)

const createTracks = `
CREATE TABLE tracks (
  id INTEGER PRIMARY KEY,
  acousticness REAL,
  danceability REAL,
  duration_ms INTEGER,
  energy REAL,
  instrumentalness REAL,
  "key" INTEGER,
  liveness REAL,
  loudness REAL,
  mode INTEGER,
  speechiness REAL,
  tempo REAL,
  time_signature INTEGER,
  valence REAL,
  song_title TEXT,
  artist TEXT
);
`

func createTestDb(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tracks.db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("sql.Open(%s) error: %v", dbPath, err)
	}
	defer db.Close()

	if _, err := db.Exec(createTracks); err != nil {
		t.Fatalf("creating tracks table: %v", err)
	}

	insert := `INSERT INTO tracks (acousticness, danceability, duration_ms, energy, instrumentalness, "key",
		liveness, loudness, mode, speechiness, tempo, time_signature, valence, song_title, artist)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	rows := [][]any{
		{0.0102, 0.833, 204600, 0.434, 0.0219, 2, 0.165, -8.795, 1, 0.431, 150.062, 4, 0.286, "Mask Off", "Future"},
		{0.199, 0.743, 326933, 0.359, 0.00611, 1, 0.137, -10.401, 1, 0.0794, 160.083, 4, 0.588, "Redbone", "Childish Gambino"},
	}
	for _, r := range rows {
		if _, err := db.Exec(insert, r...); err != nil {
			t.Fatalf("inserting %v: %v", r, err)
		}
	}
	return dbPath
}

func TestReadRecords(t *testing.T) {
	dbPath := createTestDb(t)

	s, err := Open(dbPath, "tracks")
	if err != nil {
		t.Fatalf("Open(%s) error: %v", dbPath, err)
	}
	defer s.Close()

	records, err := s.ReadRecords()
	if err != nil {
		t.Fatalf("ReadRecords() error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("ReadRecords() returned %d records, want header + 2", len(records))
	}
	if records[0][len(records[0])-1] != "artist" {
		t.Errorf("last header = %q, want artist", records[0][len(records[0])-1])
	}
	if records[2][len(records[2])-2] != "Redbone" {
		t.Errorf("second row title = %q, want Redbone", records[2][len(records[2])-2])
	}
}

func TestLoadThroughDataset(t *testing.T) {
	dbPath := createTestDb(t)

	s, err := Open(dbPath, "tracks")
	if err != nil {
		t.Fatalf("Open(%s) error: %v", dbPath, err)
	}
	defer s.Close()

	table, err := dataset.NewLoader(dataset.Records{Label: dbPath, Reader: s}, dataset.Options{}, nil).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Load() returned %d rows, want 2", table.Len())
	}
	if got := table.At(0); got.Artist != "Future" || got.DurationMs != 204600 || got.Loudness != -8.795 {
		t.Errorf("first row = %+v", got)
	}
}

func TestOpenMissingTable(t *testing.T) {
	dbPath := createTestDb(t)

	if _, err := Open(dbPath, "songs"); err == nil {
		t.Fatalf("Open with a missing table should have errored")
	}
}
