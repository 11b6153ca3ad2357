// Package pdf extracts DOIs from article PDFs.
package pdf

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// doiRe matches DOIs of the form 10.NNNN/suffix.
var doiRe = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// maxPages bounds the scan; the DOI is almost always on the first page.
const maxPages = 3

// FindDOI scans the leading pages of a PDF for a DOI. An unreadable page
// is skipped; a PDF without any DOI returns an empty string, not an
// error.
func FindDOI(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPages {
		pages = maxPages
	}

	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if doi := matchDOI(text); doi != "" {
			return doi, nil
		}
	}

	return "", nil
}

// matchDOI returns the first plausible DOI in text.
func matchDOI(text string) string {
	for _, candidate := range doiRe.FindAllString(text, -1) {
		candidate = strings.TrimRight(candidate, ".,;:)")
		if plausibleDOI(candidate) {
			return candidate
		}
	}
	return ""
}

// plausibleDOI rejects matches too short or truncated to be real DOIs.
func plausibleDOI(doi string) bool {
	if len(doi) < 10 {
		return false
	}
	slash := strings.Index(doi, "/")
	return slash > 0 && slash < len(doi)-1
}
