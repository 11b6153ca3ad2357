package doi

import (
	"net/http"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()

	if c.baseURL != BaseURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, BaseURL)
	}
	if c.httpClient == nil {
		t.Fatal("httpClient should not be nil")
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, DefaultTimeout)
	}
	if c.limiter == nil {
		t.Error("limiter should not be nil")
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	customURL := "http://localhost:8080"
	customClient := &http.Client{Timeout: 5 * time.Second}

	c := NewClient(
		WithBaseURL(customURL),
		WithHTTPClient(customClient),
		WithMailto("doe@example.org"),
	)

	if c.baseURL != customURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, customURL)
	}
	if c.httpClient != customClient {
		t.Error("httpClient option not applied")
	}
	if c.mailto != "doe@example.org" {
		t.Errorf("mailto = %s, want doe@example.org", c.mailto)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare", "10.1234/foo", "10.1234/foo"},
		{"https URL", "https://doi.org/10.1234/foo", "10.1234/foo"},
		{"http URL", "http://doi.org/10.1234/foo", "10.1234/foo"},
		{"host only", "doi.org/10.1234/foo", "10.1234/foo"},
		{"doi prefix", "doi:10.1234/foo", "10.1234/foo"},
		{"uppercase prefix", "DOI:10.1234/Foo", "10.1234/foo"},
		{"whitespace", "  10.1234/foo ", "10.1234/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseResponse(t *testing.T) {
	body := []byte("@article{Timmer_1995,\n" +
		"\tauthor = {Timmer, J. and König, M.},\n" +
		"\ttitle = {On generating power law noise},\n" +
		"\tyear = {1995}\n}")

	entry, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if entry.Type != "article" {
		t.Errorf("Type = %q, want article", entry.Type)
	}
	if entry.Key != "Timmer_1995" {
		t.Errorf("Key = %q, want Timmer_1995", entry.Key)
	}
	if len(entry.Names["author"]) != 2 {
		t.Errorf("authors = %v, want 2 names", entry.Names["author"])
	}
}

func TestParseResponse_SingleLine(t *testing.T) {
	body := []byte(`@article{Timmer_1995, title = {On generating power law noise}, year = {1995}, journal = {Astronomy and Astrophysics}}`)

	entry, err := ParseResponse(body)
	if err != nil {
		t.Fatalf("ParseResponse() error = %v", err)
	}
	if entry.Fields["title"] != "On generating power law noise" {
		t.Errorf("title = %q", entry.Fields["title"])
	}
	if entry.Fields["year"] != "1995" {
		t.Errorf("year = %q", entry.Fields["year"])
	}
	if entry.Fields["journal"] != "Astronomy and Astrophysics" {
		t.Errorf("journal = %q", entry.Fields["journal"])
	}
}

func TestParseResponse_Malformed(t *testing.T) {
	if _, err := ParseResponse([]byte("not bibtex at all")); err == nil {
		t.Error("ParseResponse() expected error for malformed body")
	}
}
