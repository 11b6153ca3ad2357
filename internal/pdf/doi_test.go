package pdf

import "testing"

func TestMatchDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare DOI", "doi: 10.1234/foo.bar", "10.1234/foo.bar"},
		{"DOI in sentence", "Available at https://doi.org/10.1051/aas:1995100.", "10.1051/aas:1995100"},
		{"trailing punctuation stripped", "see 10.1234/foo.bar;", "10.1234/foo.bar"},
		{"no DOI", "just some page text", ""},
		{"too short", "10.1/x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchDOI(tt.text); got != tt.want {
				t.Errorf("matchDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPlausibleDOI(t *testing.T) {
	tests := []struct {
		doi  string
		want bool
	}{
		{"10.1234/foo.bar", true},
		{"10.1234/", false},
		{"10.1/x", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := plausibleDOI(tt.doi); got != tt.want {
			t.Errorf("plausibleDOI(%q) = %v, want %v", tt.doi, got, tt.want)
		}
	}
}
