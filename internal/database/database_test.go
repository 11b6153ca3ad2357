package database

import (
	"strings"
	"testing"

	"github.com/tillbiskup/bibrecord/internal/bibtex"
)

const bibliography = `@Article{doe-foo-1-1,
	author = {John Doe},
	title = {Lorem ipsum},
	journal = {Foo},
	year = {2024}
}

@Book{doe-j-2024,
	author = {John Doe},
	title = {Lorem ipsum},
	publisher = {Foo},
	year = {2024}
}`

func parseBibliography(t *testing.T, text string) []bibtex.Entry {
	t.Helper()
	entries, err := bibtex.Parse(text)
	if err != nil {
		t.Fatalf("bibtex.Parse() error = %v", err)
	}
	return entries
}

func TestFromBibliography(t *testing.T) {
	db := New()
	warnings, err := db.FromBibliography(parseBibliography(t, bibliography))
	if err != nil {
		t.Fatalf("FromBibliography() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}

	if db.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", db.Len())
	}
	article, ok := db.Get("doe-foo-1-1")
	if !ok {
		t.Fatal("doe-foo-1-1 not found")
	}
	if article.Type() != "Article" {
		t.Errorf("Type() = %q, want Article", article.Type())
	}
	book, ok := db.Get("doe-j-2024")
	if !ok {
		t.Fatal("doe-j-2024 not found")
	}
	if book.Type() != "Book" {
		t.Errorf("Type() = %q, want Book", book.Type())
	}
}

func TestFromBibliography_UnknownType(t *testing.T) {
	text := "@Unknown{hut-p-2024,\n\tauthor = {Pizza Hut},\n\ttitle = {Eat!}\n}"
	db := New()
	warnings, err := db.FromBibliography(parseBibliography(t, text))
	if err != nil {
		t.Fatalf("FromBibliography() error = %v", err)
	}

	if db.Len() != 0 {
		t.Errorf("Len() = %d, want 0", db.Len())
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "unknown record type unknown") {
		t.Errorf("warnings = %v, want unknown record type warning", warnings)
	}
}

func TestFromBibliography_DuplicateKeysKeepFirst(t *testing.T) {
	db := New()
	entries := parseBibliography(t, bibliography)

	if _, err := db.FromBibliography(entries); err != nil {
		t.Fatalf("FromBibliography() error = %v", err)
	}
	first, _ := db.Get("doe-foo-1-1")
	first.SetField("title", "Changed")

	warnings, err := db.FromBibliography(entries)
	if err != nil {
		t.Fatalf("FromBibliography() error = %v", err)
	}

	if len(warnings) != 2 {
		t.Fatalf("warnings = %v, want one per repeated key", warnings)
	}
	for _, w := range warnings {
		if !strings.Contains(w, "duplicate key") {
			t.Errorf("warning %q, want duplicate key warning", w)
		}
	}

	// First record wins: the stored record is untouched by the re-import.
	got, _ := db.Get("doe-foo-1-1")
	if got.Field("title") != "Changed" {
		t.Errorf("title = %q, want the first record kept", got.Field("title"))
	}
	if db.Len() != 2 {
		t.Errorf("Len() = %d, want 2", db.Len())
	}
}

func TestFromBibliography_OrderPreserved(t *testing.T) {
	db := New()
	if _, err := db.FromBibliography(parseBibliography(t, bibliography)); err != nil {
		t.Fatalf("FromBibliography() error = %v", err)
	}
	want := []string{"doe-foo-1-1", "doe-j-2024"}
	for i, key := range want {
		if db.Keys[i] != key {
			t.Errorf("Keys[%d] = %q, want %q", i, db.Keys[i], key)
		}
	}
}
