package bibtex

import (
	"fmt"
	"os"
	"strings"
)

// Parse splits a bibliography text into its entries, in input order.
//
// Entries are delimited by an "@" at the start of a line; an "@" anywhere
// else (say, in an email address inside a value) does not split. Returns
// ErrEmptyBibliography for empty input. A malformed entry aborts the
// whole parse; no partial result is returned.
func Parse(text string) ([]Entry, error) {
	if text == "" {
		return nil, ErrEmptyBibliography
	}

	var entries []Entry
	for _, block := range strings.Split(text, "\n@") {
		if block == "" {
			continue
		}
		if !strings.HasPrefix(block, "@") {
			block = "@" + block
		}
		entry, err := ParseEntry(block)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", len(entries)+1, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Load reads a UTF-8 BibTeX file and parses it with Parse.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path given", ErrEmptyBibliography)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bibliography: %w", err)
	}
	return Parse(string(data))
}
