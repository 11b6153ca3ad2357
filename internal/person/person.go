// Package person parses and formats personal names in BibTeX convention.
//
// A name consists of up to four parts: first (given names), last (family
// name), particle (e.g. "van", "von"), and suffix (e.g. "Jr.", "III").
package person

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnsplittableName indicates a name string that cannot be separated
// into first and last name.
var ErrUnsplittableName = errors.New("cannot split name into first and last")

// whitespaceRe collapses runs of whitespace during normalization.
var whitespaceRe = regexp.MustCompile(`\s{2,}`)

// Person represents the parts of a person's name.
type Person struct {
	First    string
	Last     string
	Particle string
	Suffix   string

	// Reverse controls whether String outputs "Last, First" instead of
	// "First Last".
	Reverse bool
}

// Parse decomposes a raw name string into its parts.
//
// Supported shapes:
//
//	FIRST LAST
//	LAST, FIRST
//	PARTICLE LAST, FIRST
//	LAST, SUFFIX, FIRST
//	PARTICLE LAST, SUFFIX, FIRST
//
// Particle and suffix default to empty when not present.
func Parse(raw string) (Person, error) {
	var p Person

	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	parts := strings.Split(name, ",")
	if len(parts) > 2 {
		// The middle comma part is the suffix: "LAST, SUFFIX, FIRST".
		p.Suffix = strings.TrimSpace(parts[1])
		parts = append(parts[:1], parts[2:]...)
	}
	if len(parts) > 1 {
		p.First = strings.TrimSpace(parts[1])
		lastParts := splitLastSpace(strings.TrimSpace(parts[0]))
		if len(lastParts) > 1 {
			p.Particle = lastParts[0]
			p.Last = lastParts[1]
		} else {
			p.Last = lastParts[0]
		}
		return p, nil
	}

	tokens := splitLastSpace(name)
	if len(tokens) < 2 {
		return Person{}, fmt.Errorf("%w: %q", ErrUnsplittableName, raw)
	}
	p.First = tokens[0]
	p.Last = tokens[1]
	return p, nil
}

// splitLastSpace splits s on its last space, returning one or two pieces.
func splitLastSpace(s string) []string {
	idx := strings.LastIndex(s, " ")
	if idx < 0 {
		return []string{s}
	}
	return []string{s[:idx], s[idx+1:]}
}

// String returns the plain-text representation of a name.
//
// Depending on Reverse, the name is rendered as "First Last" or
// "Last, First", with particle prefixed to the last name and suffix
// appended after a comma:
//
//	FIRST LAST
//	FIRST PARTICLE LAST
//	FIRST LAST, SUFFIX
//	PARTICLE LAST, SUFFIX, FIRST   (reversed)
func (p Person) String() string {
	last := p.Last
	if p.Particle != "" {
		last = p.Particle + " " + p.Last
	}
	if p.Suffix != "" {
		last = last + ", " + p.Suffix
	}
	if p.Reverse {
		return last + ", " + p.First
	}
	return p.First + " " + last
}

// Bib returns the BibTeX-compatible representation of a name.
//
// The output matches String, except that names carrying a particle or
// suffix are always rendered in reversed order: "First van Last" is
// ambiguous to BibTeX, "van Last, First" is not. The receiver is a value,
// so the override never leaks into the caller's Person.
func (p Person) Bib() string {
	if p.Particle != "" || p.Suffix != "" {
		p.Reverse = true
	}
	return p.String()
}
