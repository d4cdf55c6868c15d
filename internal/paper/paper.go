// Package paper talks to the arXiv API and shapes its results for the
// generation pipeline.
package paper

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
)

const defaultBaseURL = "http://export.arxiv.org/api/query"

// Paper is a candidate for article generation, as returned by arXiv.
type Paper struct {
	ID           string // arXiv identifier, version suffix stripped
	Title        string
	Authors      []string
	Abstract     string
	Published    time.Time
	CategorySlug string
	URL          string
}

// Client queries the arXiv Atom API.
type Client struct {
	parser  *gofeed.Parser
	baseURL string
}

func NewClient() *Client {
	return &Client{parser: gofeed.NewParser(), baseURL: defaultBaseURL}
}

// NewClientWithBaseURL is used by tests to point at a local server.
func NewClientWithBaseURL(base string) *Client {
	return &Client{parser: gofeed.NewParser(), baseURL: base}
}

// Search runs a query against arXiv, most relevant first. An optional
// category restricts the search (e.g. "cs.LG").
func (c *Client) Search(ctx context.Context, query string, max int, category string) ([]Paper, error) {
	if category != "" {
		query = fmt.Sprintf("cat:%s AND %s", category, query)
	}

	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", fmt.Sprintf("%d", max))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")

	feed, err := c.parser.ParseURLWithContext(c.baseURL+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("searching arxiv: %w", err)
	}
	return fromFeed(feed), nil
}

// SearchResult collects the outcome of concurrent category searches.
type SearchResult struct {
	Papers []Paper
	Errors []error
}

// Recent fetches the latest papers across several arXiv categories
// concurrently and merges them newest first, capped at max.
func (c *Client) Recent(ctx context.Context, categories []string, max int) SearchResult {
	if len(categories) == 0 {
		categories = []string{"cs.LG", "cs.CL", "cs.CV", "cs.AI"}
	}

	var (
		mu     sync.Mutex
		result SearchResult
		wg     sync.WaitGroup
	)

	for _, cat := range categories {
		wg.Add(1)
		go func(category string) {
			defer wg.Done()
			papers, err := c.Search(ctx, "cat:"+category, 20, "")
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, err)
				return
			}
			result.Papers = append(result.Papers, papers...)
		}(cat)
	}
	wg.Wait()

	sort.SliceStable(result.Papers, func(i, j int) bool {
		return result.Papers[i].Published.After(result.Papers[j].Published)
	})
	if max > 0 && len(result.Papers) > max {
		result.Papers = result.Papers[:max]
	}
	return result
}

func fromFeed(feed *gofeed.Feed) []Paper {
	papers := make([]Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		p, ok := fromItem(item)
		if ok {
			papers = append(papers, p)
		}
	}
	return papers
}

func fromItem(item *gofeed.Item) (Paper, bool) {
	id := ArxivID(item.GUID)
	if id == "" {
		return Paper{}, false
	}

	var authors []string
	for _, a := range item.Authors {
		if a != nil && a.Name != "" {
			authors = append(authors, a.Name)
		}
	}

	var published time.Time
	if item.PublishedParsed != nil {
		published = *item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		published = *item.UpdatedParsed
	}

	return Paper{
		ID:           id,
		Title:        collapseWhitespace(item.Title),
		Authors:      authors,
		Abstract:     collapseWhitespace(item.Description),
		Published:    published,
		CategorySlug: SlugForArxivCategories(item.Categories),
		URL:          "https://arxiv.org/abs/" + id,
	}, true
}

// ArxivID extracts the bare identifier from an abs URL or raw id,
// stripping any version suffix ("1706.03762v5" -> "1706.03762").
func ArxivID(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.LastIndex(raw, "/abs/"); i >= 0 {
		raw = raw[i+len("/abs/"):]
	}
	if i := strings.LastIndex(raw, "v"); i > 0 {
		version := raw[i+1:]
		if version != "" && strings.IndexFunc(version, func(r rune) bool { return r < '0' || r > '9' }) < 0 {
			raw = raw[:i]
		}
	}
	return raw
}

// Whitespace in arXiv titles and abstracts includes hard newlines.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
