// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/research-summarizer/pkg/types"
)

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Federated   Learning
 at Scale</title>
    <summary>  An abstract about federated learning.  </summary>
    <published>2024-03-15T10:30:00Z</published>
    <author><name> Alice Smith </name></author>
    <author><name>Bob Jones</name></author>
    <link href="http://arxiv.org/abs/2403.00001v1" rel="alternate" type="text/html"/>
    <link href="http://arxiv.org/pdf/2403.00001v1" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <title>Paper With Bad Date</title>
    <summary>Second abstract.</summary>
    <published>not-a-timestamp</published>
    <author><name>Carol White</name></author>
    <link href="http://arxiv.org/abs/2403.00002v1" rel="alternate" type="text/html"/>
  </entry>
</feed>`

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   5 * time.Second,
			UserAgent: "test/0.1",
		},
		Categories: []string{"cs.LG", "cs.AI"},
	}
}

func withTestServer(t *testing.T, handler http.HandlerFunc) *ArxivSource {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := arxivAPIBase
	arxivAPIBase = ts.URL
	t.Cleanup(func() { arxivAPIBase = old })

	src := NewArxivSource(testSearchCfg())
	src.Client = ts.Client()
	return src
}

func TestArxivSearchParsesFeed(t *testing.T) {
	src := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(atomFixture))
	})

	got := src.Search(context.Background(), "federated learning", 10)
	if len(got) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(got))
	}

	first := got[0]
	if first.Title != "Federated Learning at Scale" {
		t.Errorf("Title = %q, want whitespace-normalized title", first.Title)
	}
	if first.Abstract != "An abstract about federated learning." {
		t.Errorf("Abstract = %q, want trimmed abstract", first.Abstract)
	}
	if first.URL != "http://arxiv.org/abs/2403.00001v1" {
		t.Errorf("URL = %q, want the text/html link, not the PDF", first.URL)
	}
	if first.Year != 2024 {
		t.Errorf("Year = %d, want 2024", first.Year)
	}
	if len(first.Authors) != 2 || first.Authors[0] != "Alice Smith" {
		t.Errorf("Authors = %v, want trimmed author names", first.Authors)
	}
	if first.Source != "arxiv" {
		t.Errorf("Source = %q, want arxiv", first.Source)
	}

	// Malformed timestamp yields year 0, not a parse failure.
	if got[1].Year != 0 {
		t.Errorf("Year = %d for malformed timestamp, want 0", got[1].Year)
	}
}

func TestArxivSearchRequestShape(t *testing.T) {
	var gotQuery string
	var gotSort string
	src := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		gotSort = r.URL.Query().Get("sortBy")
		w.Write([]byte(atomFixture))
	})

	src.Search(context.Background(), "graph neural networks", 7)

	if !strings.Contains(gotQuery, `all:"graph neural networks"`) {
		t.Errorf("search_query = %q, want quoted all-fields term", gotQuery)
	}
	if !strings.Contains(gotQuery, "cat:cs.LG OR cat:cs.AI") {
		t.Errorf("search_query = %q, want category filter", gotQuery)
	}
	if gotSort != "submittedDate" {
		t.Errorf("sortBy = %q, want submittedDate", gotSort)
	}
}

func TestArxivSearchEmptyQueryFallsBack(t *testing.T) {
	var gotQuery string
	src := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("search_query")
		w.Write([]byte(atomFixture))
	})

	src.Search(context.Background(), "   ", 5)

	if !strings.Contains(gotQuery, `all:"machine learning"`) {
		t.Errorf("search_query = %q, want default query for empty input", gotQuery)
	}
}

func TestArxivSearchHTTPErrorReturnsPlaceholder(t *testing.T) {
	src := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	got := src.Search(context.Background(), "anything", 5)
	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want single placeholder", len(got))
	}
	if got[0].Source != "arxiv" || got[0].Title == "" {
		t.Errorf("placeholder record = %+v, want well-formed synthetic record", got[0])
	}
}

func TestArxivSearchNetworkFailureReturnsPlaceholder(t *testing.T) {
	old := arxivAPIBase
	arxivAPIBase = "http://127.0.0.1:1" // nothing listening
	defer func() { arxivAPIBase = old }()

	src := NewArxivSource(testSearchCfg())
	src.Client = &http.Client{Timeout: 200 * time.Millisecond}

	got := src.Search(context.Background(), "anything", 5)
	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want single placeholder", len(got))
	}
}

func TestArxivSearchMalformedXMLReturnsPlaceholder(t *testing.T) {
	src := withTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not XML at all <<<"))
	})

	got := src.Search(context.Background(), "anything", 5)
	if len(got) != 1 {
		t.Fatalf("len(results) = %d, want single placeholder", len(got))
	}
}
