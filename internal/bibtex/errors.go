package bibtex

import "errors"

// Common errors returned by the parser.
var (
	// ErrEmptyBibliography indicates an empty bibliography text or path.
	ErrEmptyBibliography = errors.New("empty bibliography")

	// ErrMalformedHeader indicates an entry missing the @TYPE{KEY, header.
	ErrMalformedHeader = errors.New("malformed entry header")
)
