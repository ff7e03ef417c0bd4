package dataset

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-gota/gota/dataframe"
	"go.uber.org/zap"
)

// Source produces the raw table a Loader normalizes.
type Source interface {
	Name() string
	Read() (dataframe.DataFrame, error)
}

// No NaN markers: an artist named "NA" stays "NA". Numeric cells that do not
// parse are rejected later.
var loadOptions = []dataframe.LoadOption{
	dataframe.HasHeader(true),
	dataframe.NaNValues(nil),
}

// CSVFile reads a comma-delimited file with a header row.
type CSVFile struct {
	Path string
}

func (c CSVFile) Name() string {
	return c.Path
}

func (c CSVFile) Read() (dataframe.DataFrame, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening %s: %w", c.Path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f, loadOptions...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parsing %s: %w", c.Path, df.Err)
	}
	return df, nil
}

// RecordReader returns string records, header first.
type RecordReader interface {
	ReadRecords() ([][]string, error)
}

// Records adapts a RecordReader to a Source.
type Records struct {
	Label  string
	Reader RecordReader
}

func (r Records) Name() string {
	return r.Label
}

func (r Records) Read() (dataframe.DataFrame, error) {
	records, err := r.Reader.ReadRecords()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading %s: %w", r.Label, err)
	}
	df := dataframe.LoadRecords(records, loadOptions...)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parsing %s: %w", r.Label, df.Err)
	}
	return df, nil
}

type Options struct {
	// Drop rows repeating an earlier (song_title, artist) pair.
	Dedupe bool
}

// Loader reads its source at most once. Every Load after the first returns the
// same table, or the same error.
type Loader struct {
	src    Source
	opts   Options
	logger *zap.SugaredLogger

	once  sync.Once
	table *Table
	err   error
}

func NewLoader(src Source, opts Options, logger *zap.SugaredLogger) *Loader {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Loader{src: src, opts: opts, logger: logger}
}

func (l *Loader) Load() (*Table, error) {
	l.once.Do(func() {
		l.table, l.err = l.load()
	})
	return l.table, l.err
}

func (l *Loader) load() (*Table, error) {
	df, err := l.src.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	tracks, err := tracksFromFrame(df)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDataUnavailable, l.src.Name(), err)
	}

	read := len(tracks)
	if l.opts.Dedupe {
		tracks = dedupe(tracks)
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w: %s has no rows", ErrDataUnavailable, l.src.Name())
	}

	l.logger.Infow("loaded tracks",
		"source", l.src.Name(),
		"rows", len(tracks),
		"duplicates_dropped", read-len(tracks))
	return &Table{tracks: tracks}, nil
}

var requiredColumns = append([]Column{ColSongTitle, ColArtist}, NumericColumns...)

func tracksFromFrame(df dataframe.DataFrame) ([]Track, error) {
	// normalized name -> name as it appears in the frame
	names := make(map[Column]string)
	for _, raw := range df.Names() {
		n := Column(NormalizeName(raw))
		if _, ok := names[n]; !ok {
			names[n] = raw
		}
	}
	for _, c := range requiredColumns {
		if _, ok := names[c]; !ok {
			return nil, fmt.Errorf("missing column %q", c)
		}
	}

	rows := df.Nrow()
	tracks := make([]Track, rows)

	titles := df.Col(names[ColSongTitle]).Records()
	artists := df.Col(names[ColArtist]).Records()
	for i := range tracks {
		tracks[i].SongTitle = titles[i]
		tracks[i].Artist = artists[i]
	}

	for _, c := range NumericColumns {
		values := df.Col(names[c]).Float()
		for i, v := range values {
			if math.IsNaN(v) {
				return nil, fmt.Errorf("row %d: %s is not a number", i+1, c)
			}
			setValue(&tracks[i], c, v)
		}
	}
	return tracks, nil
}

func setValue(t *Track, col Column, v float64) {
	switch col {
	case ColAcousticness:
		t.Acousticness = v
	case ColDanceability:
		t.Danceability = v
	case ColEnergy:
		t.Energy = v
	case ColInstrumentalness:
		t.Instrumentalness = v
	case ColLiveness:
		t.Liveness = v
	case ColLoudness:
		t.Loudness = v
	case ColSpeechiness:
		t.Speechiness = v
	case ColTempo:
		t.Tempo = v
	case ColValence:
		t.Valence = v
	case ColDurationMs:
		t.DurationMs = int64(v)
	case ColKey:
		t.Key = int(v)
	case ColMode:
		t.Mode = int(v)
	case ColTimeSignature:
		t.TimeSignature = int(v)
	}
}

type trackKey struct {
	title  string
	artist string
}

func dedupe(tracks []Track) []Track {
	seen := make(map[trackKey]bool, len(tracks))
	out := tracks[:0]
	for _, t := range tracks {
		k := trackKey{t.SongTitle, t.Artist}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}
