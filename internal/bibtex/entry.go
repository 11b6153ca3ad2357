// Package bibtex parses BibTeX bibliographies into entries.
//
// The parser targets well-formatted entries: type and key on the first
// line, one field per line. It makes no attempt at full BibTeX grammar
// compliance (no @string macros, no crossref, no value concatenation).
package bibtex

import (
	"fmt"
	"regexp"
	"strings"
)

// headerRe matches the opening line of an entry: @TYPE{KEY,
var headerRe = regexp.MustCompile(`@([A-Za-z]+)\{([^,]+),`)

// valueRe strips one optional layer of {} or "" wrapping plus an optional
// trailing comma from a field value.
var valueRe = regexp.MustCompile(`^[{"]?(.+?)[}"]?,?$`)

// nameSeparatorRe splits author/editor lists on the word "and".
// The split is a literal case-insensitive match with no word-boundary
// check, so a surname containing "and" is mis-split. Known limitation,
// kept for compatibility with existing bibliographies.
var nameSeparatorRe = regexp.MustCompile(`(?i)and`)

// nameFields are the entry fields holding person lists.
var nameFields = []string{"author", "editor"}

// Entry is one raw BibTeX entry: type, key, and fields, before it is
// mapped to a typed record.
type Entry struct {
	// Type is the entry type ("article", "book", ...), always lowercase
	// regardless of how the source was written.
	Type string

	// Key is the citation key.
	Key string

	// Fields holds all scalar fields. Author and editor never appear
	// here; see Names.
	Fields map[string]string

	// Names holds the author and editor fields, split on "and" into
	// individual name strings.
	Names map[string][]string

	// Source is the original entry text.
	Source string
}

// ParseEntry parses a single BibTeX entry from its source text.
//
// Values may be wrapped in braces or quotation marks and may carry a
// trailing comma; neither affects the parsed value. Only the first "="
// on a line separates field name from value, so values containing "="
// are preserved intact. Lines without "=" (such as the closing brace)
// are ignored.
func ParseEntry(text string) (Entry, error) {
	m := headerRe.FindStringSubmatch(text)
	if m == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedHeader, firstLine(text))
	}

	entry := Entry{
		Type:   strings.ToLower(m[1]),
		Key:    m[2],
		Fields: make(map[string]string),
		Names:  make(map[string][]string),
		Source: text,
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines[1:] {
		field, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		if vm := valueRe.FindStringSubmatch(strings.TrimSpace(value)); vm != nil {
			entry.Fields[strings.TrimSpace(field)] = vm[1]
		}
	}

	for _, field := range nameFields {
		raw, ok := entry.Fields[field]
		if !ok {
			continue
		}
		delete(entry.Fields, field)
		var names []string
		for _, name := range nameSeparatorRe.Split(raw, -1) {
			names = append(names, strings.TrimSpace(name))
		}
		entry.Names[field] = names
	}

	return entry, nil
}

// firstLine returns the first line of text, for error messages.
func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return line
}
