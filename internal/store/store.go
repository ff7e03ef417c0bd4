package store

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Store reads a track table out of a SQLite database. It never writes.
type Store struct {
	db    *sql.DB
	table string
}

// Open opens dbPath read-only. The table must already exist.
func Open(dbPath string, table string) (*Store, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	exists, err := tableExists(db, table)
	if err != nil {
		db.Close()
		return nil, err
	}
	if !exists {
		db.Close()
		return nil, fmt.Errorf("table %q doesn't exist in %s", table, dbPath)
	}

	return &Store{db: db, table: table}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func tableExists(db *sql.DB, table string) (bool, error) {
	row := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table)
	var name string
	err := row.Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking table %q: %w", table, err)
	}
	return true, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// ReadRecords returns every row of the table as strings, header first, in rowid
// order. NULL becomes "NaN".
func (s *Store) ReadRecords() ([][]string, error) {
	rows, err := s.db.Query("SELECT * FROM " + quoteIdent(s.table))
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	records := [][]string{columns}
	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", s.table, err)
		}
		record := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			} else {
				record[i] = "NaN"
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
