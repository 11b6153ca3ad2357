// Package doi resolves DOIs to BibTeX entries via doi.org content
// negotiation.
package doi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/tillbiskup/bibrecord/internal/bibtex"
)

const (
	// BaseURL is the DOI resolver endpoint.
	BaseURL = "https://doi.org"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// RateLimit keeps requests well under the Crossref guideline of
	// 50 requests per second for anonymous clients.
	RateLimit = 5.0

	// acceptBibTeX asks the resolver for a BibTeX rendition of the
	// record instead of a redirect to the landing page.
	acceptBibTeX = "application/x-bibtex"
)

// Client is a rate-limited client for the doi.org resolver.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom resolver URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMailto sets a contact address sent in the User-Agent, which moves
// requests into the resolver's polite pool.
func WithMailto(mailto string) Option {
	return func(c *Client) {
		c.mailto = mailto
	}
}

// NewClient creates a DOI resolver client. A contact address is picked
// up from the BIBRECORD_MAILTO environment variable unless set
// explicitly.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
	}

	if mailto := os.Getenv("BIBRECORD_MAILTO"); mailto != "" {
		c.mailto = mailto
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch resolves a DOI to a parsed BibTeX entry.
func (c *Client) Fetch(ctx context.Context, doi string) (bibtex.Entry, error) {
	doi = Normalize(doi)
	if doi == "" {
		return bibtex.Entry{}, fmt.Errorf("empty DOI")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return bibtex.Entry{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+doi, nil)
	if err != nil {
		return bibtex.Entry{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", acceptBibTeX)
	userAgent := "bibrecord"
	if c.mailto != "" {
		userAgent = fmt.Sprintf("bibrecord (mailto:%s)", c.mailto)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return bibtex.Entry{}, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return bibtex.Entry{}, fmt.Errorf("%w: %s", ErrNotFound, doi)
	case resp.StatusCode == http.StatusTooManyRequests:
		return bibtex.Entry{}, ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return bibtex.Entry{}, fmt.Errorf("resolver returned status %d for %s", resp.StatusCode, doi)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return bibtex.Entry{}, fmt.Errorf("reading response: %w", err)
	}

	return ParseResponse(body)
}

// headerLineRe matches the @TYPE{KEY, header at the start of a response.
var headerLineRe = regexp.MustCompile(`^(@[A-Za-z]+\{[^,]+,)\s*`)

// ParseResponse parses a BibTeX response body into an entry.
//
// Resolvers occasionally emit the whole entry on a single line; the
// entry parser expects the header and each field on their own line, so
// line breaks are restored first when needed.
func ParseResponse(body []byte) (bibtex.Entry, error) {
	text := strings.TrimSpace(string(body))
	if !strings.Contains(text, "\n") {
		text = strings.ReplaceAll(text, "}, ", "},\n")
		text = headerLineRe.ReplaceAllString(text, "$1\n")
		// Detach the entry's closing brace from the last field value.
		if strings.HasSuffix(text, "}}") {
			text = text[:len(text)-1] + "\n}"
		}
	}
	return bibtex.ParseEntry(text)
}

// Normalize strips URL and scheme prefixes from a DOI and lowercases it,
// so equal DOIs compare equal regardless of how they were written.
func Normalize(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}
