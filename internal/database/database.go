// Package database collects typed records built from a bibliography.
//
// Entries are dispatched to record constructors through the record
// registry. Entries with unregistered types or duplicate keys are skipped
// with a warning rather than aborting the whole bibliography; the caller
// decides where the warnings go.
package database

import (
	"fmt"

	"github.com/tillbiskup/bibrecord/internal/bibtex"
	"github.com/tillbiskup/bibrecord/internal/record"
)

// Database holds bibliographic records indexed by citation key.
type Database struct {
	// Records maps citation keys to records.
	Records map[string]*record.Record

	// Keys lists the keys in insertion order.
	Keys []string
}

// New returns an empty database.
func New() *Database {
	return &Database{Records: make(map[string]*record.Record)}
}

// FromBibliography populates the database from parsed entries.
//
// Each entry's type is looked up in the record registry; the matching
// record is built from the entry's source text and stored under the
// entry's key. Unknown types and duplicate keys are skipped, never
// overwriting an existing record, and reported in the returned warning
// slice. A record that fails to parse aborts with an error.
func (d *Database) FromBibliography(entries []bibtex.Entry) ([]string, error) {
	var warnings []string
	for _, entry := range entries {
		rec, ok := record.ForType(entry.Type)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown record type %s", entry.Type))
			continue
		}
		if _, exists := d.Records[entry.Key]; exists {
			warnings = append(warnings, fmt.Sprintf("duplicate key %s", entry.Key))
			continue
		}
		if err := rec.FromBib(entry.Source); err != nil {
			return warnings, fmt.Errorf("record %s: %w", entry.Key, err)
		}
		d.Records[entry.Key] = rec
		d.Keys = append(d.Keys, entry.Key)
	}
	return warnings, nil
}

// FromFile reads a BibTeX file and populates the database from it.
func (d *Database) FromFile(path string) ([]string, error) {
	entries, err := bibtex.Load(path)
	if err != nil {
		return nil, err
	}
	return d.FromBibliography(entries)
}

// Get returns the record stored under a citation key.
func (d *Database) Get(key string) (*record.Record, bool) {
	rec, ok := d.Records[key]
	return rec, ok
}

// Len returns the number of stored records.
func (d *Database) Len() int {
	return len(d.Records)
}
