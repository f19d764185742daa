package collector

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/iWorld-y/startup_radar/pkg/search"
)

// mockSearcher 模拟搜索服务
type mockSearcher struct {
	resp    *search.Response
	err     error
	lastReq *search.Request
}

func (m *mockSearcher) Search(ctx context.Context, req *search.Request) (*search.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func longContent(n int) string {
	return strings.Repeat("startup news content ", n/20+1)[:n]
}

func TestCollectReturnsSnippets(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{Results: []search.Result{
		{Title: "Chip funding round", URL: "https://example.com/a", Content: longContent(600), PublishedDate: "2026-08-28"},
		{Title: "New accelerator", URL: "https://example.com/b", Content: longContent(700), PublishedDate: "2026-08-29"},
	}}}

	c := New(searcher, 6, 3)
	snippets, err := c.Collect(context.Background(), "AI Hardware")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(snippets) != 2 {
		t.Fatalf("Collect() returned %d snippets, want 2", len(snippets))
	}
	if snippets[0].Title != "Chip funding round" || snippets[0].Source != "AI Hardware" {
		t.Errorf("snippet[0] = %+v", snippets[0])
	}
	if snippets[0].RetrievedAt.IsZero() {
		t.Error("RetrievedAt not set")
	}
	if !strings.Contains(searcher.lastReq.Query, "AI Hardware") {
		t.Errorf("query %q does not mention the domain", searcher.lastReq.Query)
	}
	if searcher.lastReq.Topic != "news" {
		t.Errorf("Topic = %q, want news", searcher.lastReq.Topic)
	}
}

func TestCollectSearchUnavailable(t *testing.T) {
	searcher := &mockSearcher{err: errors.New("connection refused")}

	c := New(searcher, 6, 3)
	_, err := c.Collect(context.Background(), "FinTech")
	if !errors.Is(err, ErrSearchUnavailable) {
		t.Errorf("Collect() error = %v, want ErrSearchUnavailable", err)
	}
}

func TestCollectNoResultsIsNotError(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{}}

	c := New(searcher, 6, 3)
	snippets, err := c.Collect(context.Background(), "EdTech")
	if err != nil {
		t.Fatalf("Collect() error = %v, want nil for empty results", err)
	}
	if len(snippets) != 0 {
		t.Errorf("Collect() returned %d snippets, want 0", len(snippets))
	}
}

func TestCollectBoundsSnippetCount(t *testing.T) {
	var results []search.Result
	for i := 0; i < 10; i++ {
		results = append(results, search.Result{Title: "t", URL: "https://example.com", Content: longContent(600)})
	}
	searcher := &mockSearcher{resp: &search.Response{Results: results}}

	c := New(searcher, 3, 3)
	snippets, err := c.Collect(context.Background(), "Robotics")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(snippets) != 3 {
		t.Errorf("Collect() returned %d snippets, want bounded 3", len(snippets))
	}
}

func TestCollectUpgradesShortExcerpts(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{Results: []search.Result{
		{Title: "short excerpt", URL: "https://example.com/full", Content: longContent(150)},
	}}}

	c := New(searcher, 6, 3)
	c.fetchFull = func(url string) (string, error) {
		if url != "https://example.com/full" {
			t.Errorf("fetchFull url = %q", url)
		}
		return longContent(2000), nil
	}

	snippets, err := c.Collect(context.Background(), "SpaceTech")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(snippets) != 1 || len(snippets[0].Content) != 2000 {
		t.Errorf("expected upgraded content, got %d snippets", len(snippets))
	}
}

func TestCollectFiltersAndTruncates(t *testing.T) {
	searcher := &mockSearcher{resp: &search.Response{Results: []search.Result{
		{Title: "too short", URL: "https://example.com/1", Content: "tiny"},
		{Title: "too long", URL: "https://example.com/2", Content: longContent(9000)},
	}}}

	c := New(searcher, 6, 3)
	c.fetchFull = func(url string) (string, error) { return "", errors.New("unreachable") }

	snippets, err := c.Collect(context.Background(), "CleanTech")
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("Collect() returned %d snippets, want 1 (short one dropped)", len(snippets))
	}
	if len(snippets[0].Content) != maxContentLen {
		t.Errorf("content length = %d, want truncated to %d", len(snippets[0].Content), maxContentLen)
	}
}
