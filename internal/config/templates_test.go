package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tillbiskup/bibrecord/internal/record"
)

func writeTemplates(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "templates.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTemplates(t *testing.T) {
	path := writeTemplates(t, "templates:\n  article: \"author (year): title.\"\n")

	templates, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}
	if got := templates.Templates["article"]; got != "author (year): title." {
		t.Errorf("article template = %q", got)
	}
}

func TestLoadTemplates_MissingFileIsEmpty(t *testing.T) {
	templates, err := LoadTemplates(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}
	if len(templates.Templates) != 0 {
		t.Errorf("Templates = %v, want empty", templates.Templates)
	}
}

func TestLoadTemplates_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "templates: [unclosed"},
		{"uppercase type", "templates:\n  Article: \"title\"\n"},
		{"empty template", "templates:\n  article: \"  \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTemplates(writeTemplates(t, tt.content)); err == nil {
				t.Error("LoadTemplates() expected error")
			}
		})
	}
}

func TestApply(t *testing.T) {
	path := writeTemplates(t, "templates:\n  article: \"title (year)\"\n")
	templates, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}

	article := record.NewArticle()
	if !templates.Apply(article) {
		t.Error("Apply() = false, want true for configured type")
	}
	if article.Format != "title (year)" {
		t.Errorf("Format = %q, want override", article.Format)
	}

	book := record.NewBook()
	defaultFormat := book.Format
	if templates.Apply(book) {
		t.Error("Apply() = true, want false for unconfigured type")
	}
	if book.Format != defaultFormat {
		t.Errorf("Format = %q, want default untouched", book.Format)
	}
}
