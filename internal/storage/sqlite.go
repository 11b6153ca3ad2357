// Package storage persists bibliographic records in a SQLite database.
//
// The canonical BibTeX text is the source of truth for each stored
// record; the remaining columns exist so list and lookup queries do not
// need to re-parse every entry.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tillbiskup/bibrecord/internal/record"
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates a citation key with no stored record.
var ErrNotFound = errors.New("record not found")

// DB wraps a SQLite database holding bibliographic records.
type DB struct {
	db *sql.DB
}

// Summary is the listing view of a stored record.
type Summary struct {
	Key     string   `json:"key"`
	Type    string   `json:"type"`
	Title   string   `json:"title,omitempty"`
	Year    string   `json:"year,omitempty"`
	Authors []string `json:"authors,omitempty"`
}

// OpenDB opens or creates a record database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			type TEXT NOT NULL,
			title TEXT,
			year TEXT,
			authors_json TEXT NOT NULL,
			bib TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_records_type ON records(type);
	`

	_, err := db.Exec(schema)
	return err
}

// Put stores a record under its citation key, replacing any previous
// record with the same key.
func (d *DB) Put(rec *record.Record) error {
	if rec.Key == "" {
		return fmt.Errorf("record has no citation key")
	}

	bib, err := rec.Bib()
	if err != nil {
		return fmt.Errorf("serializing %s: %w", rec.Key, err)
	}

	authors := rec.Names("author")
	if len(authors) == 0 {
		authors = rec.Names("editor")
	}
	authorsJSON, err := json.Marshal(authors)
	if err != nil {
		return fmt.Errorf("encoding authors: %w", err)
	}

	_, err = d.db.Exec(`
		INSERT OR REPLACE INTO records (key, type, title, year, authors_json, bib)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Key, rec.Type(), rec.Field("title"), rec.Field("year"),
		string(authorsJSON), bib)
	if err != nil {
		return fmt.Errorf("storing %s: %w", rec.Key, err)
	}

	return nil
}

// GetByKey loads the record stored under a citation key, rebuilding it
// from its BibTeX text through the record registry.
func (d *DB) GetByKey(key string) (*record.Record, error) {
	var typeName, bib string
	err := d.db.QueryRow(`SELECT type, bib FROM records WHERE key = ?`, key).
		Scan(&typeName, &bib)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", key, err)
	}

	rec, ok := record.ForType(strings.ToLower(typeName))
	if !ok {
		return nil, fmt.Errorf("stored record %s has unregistered type %s", key, typeName)
	}
	if err := rec.FromBib(bib); err != nil {
		return nil, fmt.Errorf("parsing stored record %s: %w", key, err)
	}

	return rec, nil
}

// List returns summaries of all stored records, ordered by key.
func (d *DB) List() ([]Summary, error) {
	rows, err := d.db.Query(`
		SELECT key, type, title, year, authors_json
		FROM records ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		var authorsJSON string
		if err := rows.Scan(&s.Key, &s.Type, &s.Title, &s.Year, &authorsJSON); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if err := json.Unmarshal([]byte(authorsJSON), &s.Authors); err != nil {
			return nil, fmt.Errorf("decoding authors for %s: %w", s.Key, err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// Count returns the number of stored records.
func (d *DB) Count() (int, error) {
	var count int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}

// DeleteByKey removes the record stored under a citation key.
func (d *DB) DeleteByKey(key string) error {
	result, err := d.db.Exec(`DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", key, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return nil
}
