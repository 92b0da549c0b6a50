// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/research-summarizer/internal/httputil"
	"github.com/pdiddy/research-summarizer/pkg/types"
)

// arxivAPIBase is the arXiv search endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivAPIBase = "https://export.arxiv.org/api/query"

// defaultCategories is the subject filter applied when none is configured.
var defaultCategories = []string{"cs.LG", "cs.AI"}

// ArxivSource queries the arXiv API.
type ArxivSource struct {
	Client *http.Client
	Config types.SearchConfig
}

// NewArxivSource builds an arXiv source from configuration.
func NewArxivSource(cfg types.SearchConfig) *ArxivSource {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &ArxivSource{
		Client: &http.Client{Timeout: timeout},
		Config: cfg,
	}
}

// Name returns the source identifier.
func (s *ArxivSource) Name() string { return "arxiv" }

// Search queries the arXiv API, sorted by submission date descending, and
// parses the Atom feed into paper records. On network failure, non-success
// status, or a malformed feed it returns a single placeholder record so
// retrieval never aborts the pipeline.
func (s *ArxivSource) Search(ctx context.Context, query string, maxResults int) []types.PaperRecord {
	if maxResults <= 0 {
		maxResults = 12
	}

	params := url.Values{}
	params.Set("search_query", buildArxivQuery(query, s.categories()))
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivAPIBase+"?"+params.Encode(), nil)
	if err != nil {
		return placeholderRecords()
	}
	req.Header.Set("User-Agent", s.Config.UserAgent)

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, s.Config.MaxRetries)
	if err != nil {
		return placeholderRecords()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return placeholderRecords()
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return placeholderRecords()
	}

	records := make([]types.PaperRecord, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		records = append(records, entry.toRecord())
	}
	return records
}

// categories returns the configured category filter or the default set.
func (s *ArxivSource) categories() []string {
	if len(s.Config.Categories) > 0 {
		return s.Config.Categories
	}
	return defaultCategories
}

// buildArxivQuery constructs the field-qualified boolean search_query:
// a quoted all-fields match AND'd with the category filter. An empty query
// falls back to a broad default so the request stays well-formed.
func buildArxivQuery(query string, categories []string) string {
	if strings.TrimSpace(query) == "" {
		query = "machine learning"
	}
	q := fmt.Sprintf("all:%q", query)
	if len(categories) == 0 {
		return q
	}
	cats := make([]string, 0, len(categories))
	for _, c := range categories {
		cats = append(cats, "cat:"+c)
	}
	return fmt.Sprintf("(%s) AND (%s)", q, strings.Join(cats, " OR "))
}

// placeholderRecords is the offline fallback: a single synthetic record
// that keeps downstream stages fed when the API is unreachable.
func placeholderRecords() []types.PaperRecord {
	return []types.PaperRecord{{
		Title:    "Mock arXiv Paper",
		Authors:  []string{"Author A"},
		Year:     2024,
		Abstract: "Mock abstract when offline.",
		URL:      "http://arxiv.org/abs/0000.00000",
		Source:   "arxiv",
	}}
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string        `xml:"title"`
	Summary   string        `xml:"summary"`
	Published string        `xml:"published"`
	Authors   []arxivAuthor `xml:"author"`
	Links     []arxivLink   `xml:"link"`
}

type arxivAuthor struct {
	Name string `xml:"name"`
}

type arxivLink struct {
	Href string `xml:"href,attr"`
	Type string `xml:"type,attr"`
}

// toRecord converts one feed entry into a uniform paper record. The title
// is whitespace-collapsed, the URL is the text/html link (not the PDF),
// and a malformed publication timestamp yields year 0 rather than an error.
func (e arxivEntry) toRecord() types.PaperRecord {
	r := types.PaperRecord{
		Title:    strings.Join(strings.Fields(e.Title), " "),
		Abstract: strings.TrimSpace(e.Summary),
		Source:   "arxiv",
	}

	for _, l := range e.Links {
		if l.Type == "text/html" {
			r.URL = l.Href
			break
		}
	}

	for _, a := range e.Authors {
		r.Authors = append(r.Authors, strings.TrimSpace(a.Name))
	}

	if t, err := time.Parse(time.RFC3339, e.Published); err == nil {
		r.Year = t.Year()
	}
	return r
}
