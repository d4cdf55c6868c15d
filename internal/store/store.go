// Package store holds the article store: an ordered, immutable sequence of
// pre-generated articles loaded once at startup. All queries are pure reads
// over that sequence, so a Store is safe for any number of concurrent readers.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultFeatured is how many articles the featured view shows.
const DefaultFeatured = 3

type Store struct {
	articles []Article
}

// New builds a store from a slice of articles. IDs must be unique; the
// articles are stable-sorted newest first so featured/latest selection never
// depends on the order of the input file.
func New(articles []Article) (*Store, error) {
	seen := make(map[string]bool, len(articles))
	for _, a := range articles {
		if a.ID == "" {
			return nil, fmt.Errorf("article %q: missing id", a.Title)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate article id %q", a.ID)
		}
		seen[a.ID] = true
	}

	sorted := make([]Article, len(articles))
	copy(sorted, articles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt().After(sorted[j].PublishedAt())
	})

	return &Store{articles: sorted}, nil
}

// Load reads a JSON array of articles.
func Load(r io.Reader) (*Store, error) {
	var articles []Article
	if err := json.NewDecoder(r).Decode(&articles); err != nil {
		return nil, fmt.Errorf("parsing articles: %w", err)
	}
	return New(articles)
}

// LoadFile reads the store from an articles.json on disk.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return s, nil
}

// Open loads the store from path if it exists, falling back to the embedded
// default content otherwise. An empty path always uses the embedded content.
func Open(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default()
	}
	return LoadFile(path)
}

// Len returns the number of articles in the store.
func (s *Store) Len() int { return len(s.articles) }

// All returns every article in store order (newest first). The returned
// slice is a copy; callers may not mutate the store through it.
func (s *Store) All() []Article {
	out := make([]Article, len(s.articles))
	copy(out, s.articles)
	return out
}

// ByID looks up an article by its identifier. Absence is not an error:
// the second return is false and callers render a not-found state.
func (s *Store) ByID(id string) (Article, bool) {
	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// ByCategory returns the articles whose category slug matches, preserving
// store order. No match yields an empty slice, never an error.
func (s *Store) ByCategory(slug string) []Article {
	var out []Article
	for _, a := range s.articles {
		if a.CategorySlug == slug {
			out = append(out, a)
		}
	}
	return out
}

// Featured returns the first limit articles in store order. A store with
// fewer records returns all of them; limit <= 0 returns none.
func (s *Store) Featured(limit int) []Article {
	if limit <= 0 {
		return nil
	}
	if limit > len(s.articles) {
		limit = len(s.articles)
	}
	out := make([]Article, limit)
	copy(out, s.articles[:limit])
	return out
}

// Categories derives one summary per distinct slug, in first-seen store
// order, each counting its matching articles. Recomputed on every call;
// the store never changes, so there is nothing to invalidate.
func (s *Store) Categories() []Category {
	index := make(map[string]int)
	var out []Category
	for _, a := range s.articles {
		i, ok := index[a.CategorySlug]
		if !ok {
			index[a.CategorySlug] = len(out)
			out = append(out, Category{Name: a.Category, Slug: a.CategorySlug})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}

// Search returns articles whose title, subtitle or summary contains the
// query, case-insensitively, preserving store order.
func (s *Store) Search(query string) []Article {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.All()
	}
	var out []Article
	for _, a := range s.articles {
		if matches(a, query) {
			out = append(out, a)
		}
	}
	return out
}

// Query combines category, search and limit restrictions in one pass.
func (s *Store) Query(opts QueryOpts) []Article {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	var out []Article
	for _, a := range s.articles {
		if opts.Category != "" && a.CategorySlug != opts.Category {
			continue
		}
		if search != "" && !matches(a, search) {
			continue
		}
		out = append(out, a)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out
}

func matches(a Article, lowered string) bool {
	return strings.Contains(strings.ToLower(a.Title), lowered) ||
		strings.Contains(strings.ToLower(a.Subtitle), lowered) ||
		strings.Contains(strings.ToLower(a.Summary), lowered)
}
