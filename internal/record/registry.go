package record

import "sort"

// registry maps lowercase BibTeX type names to record constructors.
// Variants register themselves at init; no reflection, no scanning.
var registry = map[string]func() *Record{}

// Register adds a constructor for a record type. The name is matched
// case-insensitively against entry types, so register lowercase names.
func Register(name string, constructor func() *Record) {
	registry[name] = constructor
}

// ForType returns a fresh record for a lowercase type name, or false
// when the type is not registered.
func ForType(name string) (*Record, bool) {
	constructor, ok := registry[name]
	if !ok {
		return nil, false
	}
	return constructor(), true
}

// Types returns the registered type names, sorted.
func Types() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("record", func() *Record { return NewRecord() })
	Register("article", func() *Record { return NewArticle() })
	Register("book", func() *Record { return NewBook() })
	Register("dataset", func() *Record { return NewDataset() })
}
