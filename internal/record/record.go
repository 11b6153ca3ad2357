// Package record defines typed bibliographic records and their rendering.
//
// Records follow the types known from BibTeX. Each variant declares its
// type tag, its fields in output order, and a default citation template.
// A record renders either as a plain-text citation (Cite) governed by its
// template, or as a BibTeX entry (Bib); both treat author and editor
// fields specially so names come out properly formatted.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tillbiskup/bibrecord/internal/bibtex"
	"github.com/tillbiskup/bibrecord/internal/person"
)

// ErrTypeMismatch indicates a BibTeX entry whose type does not match the
// record it is being read into.
var ErrTypeMismatch = errors.New("entry type does not match record type")

// Record is a bibliographic record of some variant (Article, Book, ...).
//
// The zero value is not usable; construct records with NewRecord or one
// of the variant constructors.
type Record struct {
	// Key is the citation key used to refer to the record.
	Key string

	// Reverse controls whether names render as "Last, First" in the
	// citation output.
	Reverse bool

	// Format is the citation template used by Cite. Field names appearing
	// in the template are replaced by the field values; the per-variant
	// default can be overridden freely.
	Format string

	typeTag     string
	editorSubst bool // list editors with an "(Ed.)" marker when present
	order       []string
	fields      map[string]string
	names       map[string][]string
}

// Option configures a record on construction.
type Option func(*Record)

// WithKey sets the citation key.
func WithKey(key string) Option {
	return func(r *Record) { r.Key = key }
}

// WithAuthors sets the author name list.
func WithAuthors(names ...string) Option {
	return func(r *Record) { r.SetNames("author", names) }
}

// WithEditors sets the editor name list.
func WithEditors(names ...string) Option {
	return func(r *Record) { r.SetNames("editor", names) }
}

// WithField sets a scalar field.
func WithField(name, value string) Option {
	return func(r *Record) { r.SetField(name, value) }
}

// newRecord builds a record for a variant with the given tag, declared
// field order, and default template.
func newRecord(typeTag string, editorSubst bool, order []string, format string, opts ...Option) *Record {
	r := &Record{
		Format:      format,
		typeTag:     typeTag,
		editorSubst: editorSubst,
		order:       order,
		fields:      make(map[string]string),
		names:       make(map[string][]string),
	}
	for _, name := range order {
		if name == "author" || name == "editor" {
			r.names[name] = []string{}
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewRecord returns a bare record with no declared fields and an empty
// template, serializing as @Record{...}. Fields set on it become part of
// the record in the order they were first set.
func NewRecord(opts ...Option) *Record {
	return newRecord("Record", false, nil, "", opts...)
}

// NewArticle returns a record for an article published in a journal.
//
// Declared fields: author, title, journal, year, volume, pages, doi.
func NewArticle(opts ...Option) *Record {
	return newRecord("Article", false,
		[]string{"author", "title", "journal", "year", "volume", "pages", "doi"},
		"author: title. journal volume:pages, year. doi",
		opts...)
}

// NewBook returns a record for a book.
//
// Declared fields: author, editor, title, publisher, year, address,
// edition. Provide either authors or editors; when editors are present,
// the citation lists them with an "(Ed.)" marker in place of the authors.
func NewBook(opts ...Option) *Record {
	return newRecord("Book", true,
		[]string{"author", "editor", "title", "publisher", "year", "address", "edition"},
		"author: title. publisher, address year.",
		opts...)
}

// NewDataset returns a record for a published dataset. Editors substitute
// for authors the same way they do for books.
func NewDataset(opts ...Option) *Record {
	return newRecord("Dataset", true,
		[]string{"author", "editor", "title", "publisher", "year", "doi"},
		"author: title. publisher, year. doi",
		opts...)
}

// Type returns the record's type tag, e.g. "Article".
func (r *Record) Type() string {
	return r.typeTag
}

// Fields returns the record's declared field names in output order.
func (r *Record) Fields() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Field returns the value of a scalar field, or "" when unset.
func (r *Record) Field(name string) string {
	return r.fields[name]
}

// SetField sets a scalar field. Setting a field the variant does not
// declare appends it to the field order, so bare records can carry
// arbitrary fields.
func (r *Record) SetField(name, value string) {
	r.declare(name)
	r.fields[name] = value
}

// Names returns the name list of a name-valued field ("author" or
// "editor"); never nil for declared name fields.
func (r *Record) Names(field string) []string {
	return r.names[field]
}

// SetNames sets the name list of a name-valued field.
func (r *Record) SetNames(field string, names []string) {
	r.declare(field)
	if names == nil {
		names = []string{}
	}
	r.names[field] = names
}

// declare adds a field to the order unless already declared.
func (r *Record) declare(name string) {
	for _, existing := range r.order {
		if existing == name {
			return
		}
	}
	r.order = append(r.order, name)
}

// declared reports whether the variant knows the field.
func (r *Record) declared(name string) bool {
	for _, existing := range r.order {
		if existing == name {
			return true
		}
	}
	return false
}

// isNameField reports whether a field holds a name list.
func isNameField(name string) bool {
	return name == "author" || name == "editor"
}

// Cite renders the record as a citation string, substituting field values
// into the template in declared field order.
//
// Author and editor fields render as a comma-joined list of formatted
// names; the doi field renders as "doi:<value>", or disappears when
// empty. Substitution is a literal replacement of each field name inside
// the template, so field names are assumed not to be substrings of one
// another or of substituted values in well-formed templates.
func (r *Record) Cite() (string, error) {
	output := r.Format
	if r.editorSubst && len(r.names["editor"]) > 0 {
		output = strings.ReplaceAll(output, "author", "editor (Ed.)")
	}
	for _, name := range r.order {
		value, err := r.renderField(name, false)
		if err != nil {
			return "", err
		}
		if value != "" || name == "doi" {
			output = strings.ReplaceAll(output, name, value)
		}
	}
	return output, nil
}

// Bib renders the record as a BibTeX entry: one tab-indented
// "name = {value}" line per non-empty field in declared order, wrapped in
// "@Type{key,...}". Empty fields are omitted; author and editor lists are
// joined with " AND ".
func (r *Record) Bib() (string, error) {
	var items []string
	for _, name := range r.order {
		value, err := r.renderField(name, true)
		if err != nil {
			return "", err
		}
		if value == "" {
			continue
		}
		items = append(items, fmt.Sprintf("\t%s = {%s}", name, value))
	}
	return fmt.Sprintf("@%s{%s,\n%s\n}", r.typeTag, r.Key, strings.Join(items, ",\n")), nil
}

// renderField renders one field for output. In bib mode names use their
// BibTeX form and the doi value stays bare; in citation mode names use
// their display form and the doi gains a "doi:" prefix.
func (r *Record) renderField(name string, bib bool) (string, error) {
	if isNameField(name) {
		return r.renderNames(name, bib)
	}
	value := r.fields[name]
	if !bib && name == "doi" && value != "" {
		value = "doi:" + value
	}
	return value, nil
}

// renderNames formats a name list, honoring the record's Reverse flag.
func (r *Record) renderNames(field string, bib bool) (string, error) {
	var rendered []string
	for _, raw := range r.names[field] {
		p, err := person.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("%s %q: %w", field, raw, err)
		}
		p.Reverse = r.Reverse
		if bib {
			rendered = append(rendered, p.Bib())
		} else {
			rendered = append(rendered, p.String())
		}
	}
	sep := ", "
	if bib {
		sep = " AND "
	}
	return strings.Join(rendered, sep), nil
}

// FromBib populates the record from a BibTeX entry text.
//
// The entry's type must match the record's own type; the key and all
// parsed fields the variant declares are assigned. Parsed fields the
// variant does not know are silently ignored.
func (r *Record) FromBib(text string) error {
	entry, err := bibtex.ParseEntry(text)
	if err != nil {
		return err
	}
	if entry.Type != strings.ToLower(r.typeTag) {
		return fmt.Errorf("%w: got @%s, want @%s", ErrTypeMismatch, entry.Type, r.typeTag)
	}
	r.Key = entry.Key
	for name, value := range entry.Fields {
		if r.declared(name) && !isNameField(name) {
			r.fields[name] = value
		}
	}
	for field, names := range entry.Names {
		if r.declared(field) {
			r.names[field] = names
		}
	}
	return nil
}
