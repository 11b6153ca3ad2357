// Package config loads citation template overrides.
//
// A templates.yaml file maps lowercase record type names to citation
// templates, letting users restyle output without touching code:
//
//	templates:
//	  article: "author (year): title. journal volume, pages."
//	  book: "author: title. publisher year."
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tillbiskup/bibrecord/internal/record"
)

// Templates holds per-type citation template overrides.
type Templates struct {
	Templates map[string]string `yaml:"templates"`
}

// LoadTemplates reads and validates a templates.yaml file. A missing
// file is not an error; it yields an empty override set.
func LoadTemplates(path string) (*Templates, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Templates{Templates: make(map[string]string)}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var t Templates
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if t.Templates == nil {
		t.Templates = make(map[string]string)
	}

	for name, template := range t.Templates {
		if name != strings.ToLower(name) {
			return nil, fmt.Errorf("template type %q must be lowercase", name)
		}
		if strings.TrimSpace(template) == "" {
			return nil, fmt.Errorf("template for %q is empty", name)
		}
	}

	return &t, nil
}

// Apply overrides a record's citation template when one is configured
// for its type. Returns true when an override was applied.
func (t *Templates) Apply(rec *record.Record) bool {
	template, ok := t.Templates[strings.ToLower(rec.Type())]
	if !ok {
		return false
	}
	rec.Format = template
	return true
}
