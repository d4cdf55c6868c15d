// Package pipeline orchestrates one content-generation run: find candidate
// papers, draft articles for the new ones, and write the updated store file.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/TokuyuSou/AI-paper-blog/internal/draft"
	"github.com/TokuyuSou/AI-paper-blog/internal/paper"
	"github.com/TokuyuSou/AI-paper-blog/internal/store"
)

// Searcher is the paper-discovery side of the pipeline.
type Searcher interface {
	Recent(ctx context.Context, categories []string, max int) paper.SearchResult
}

// Options configures one generation run.
type Options struct {
	Store      *store.Store // existing articles, for dedup and merge
	StorePath  string       // where the merged store is written
	Searcher   Searcher
	Drafter    draft.Drafter
	Categories []string // arXiv categories to scan
	DaysBack   int      // recency window for candidates
	Max        int      // most articles drafted in one run
	Classics   bool     // draft the classic seed list instead of searching
	Logf       func(format string, args ...any)
}

// Result reports what one run did.
type Result struct {
	Drafted []store.Article
	Skipped int // candidates already covered by the store
	Errors  []error
}

// Run executes the pipeline. Per-paper drafting failures are collected in
// Result.Errors; only store I/O aborts the run.
func Run(ctx context.Context, opts Options) (Result, error) {
	logf := opts.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	if opts.Max <= 0 {
		opts.Max = 2
	}

	var candidates []paper.Paper
	var result Result

	if opts.Classics {
		candidates = paper.Classics()
	} else {
		sr := opts.Searcher.Recent(ctx, opts.Categories, 40)
		result.Errors = append(result.Errors, sr.Errors...)
		candidates = withinWindow(sr.Papers, opts.DaysBack)
		candidates = paper.Rank(candidates)
	}
	logf("Found %d candidate papers", len(candidates))

	known := knownPapers(opts.Store)
	fresh := candidates[:0:0]
	for _, p := range candidates {
		if known[p.ID] || known[draft.Slugify(p.Title)] {
			result.Skipped++
			continue
		}
		fresh = append(fresh, p)
	}
	logf("%d already covered, %d new", result.Skipped, len(fresh))

	if len(fresh) > opts.Max {
		fresh = fresh[:opts.Max]
	}

	for _, p := range fresh {
		logf("Drafting: %s", p.Title)
		a, err := opts.Drafter.Draft(ctx, p)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("drafting %q: %w", p.Title, err))
			continue
		}
		result.Drafted = append(result.Drafted, a)
	}

	if len(result.Drafted) == 0 {
		return result, nil
	}

	merged := Merge(opts.Store.All(), result.Drafted)
	if err := WriteStore(opts.StorePath, merged); err != nil {
		return result, err
	}
	logf("Wrote %d articles to %s", len(merged), opts.StorePath)
	return result, nil
}

// knownPapers indexes the store by arXiv id and by article slug so a paper
// is never drafted twice, whichever identifier survives in the record.
func knownPapers(s *store.Store) map[string]bool {
	known := make(map[string]bool)
	if s == nil {
		return known
	}
	for _, a := range s.All() {
		known[a.ID] = true
		if id := paper.ArxivID(a.PaperURL); id != "" {
			known[id] = true
		}
	}
	return known
}

func withinWindow(papers []paper.Paper, days int) []paper.Paper {
	if days <= 0 {
		days = 7
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	var out []paper.Paper
	for _, p := range papers {
		if p.Published.After(cutoff) {
			out = append(out, p)
		}
	}
	return out
}

// Merge combines existing and newly drafted articles, newest first. The
// store constructor re-sorts, so Merge only needs to concatenate and hand
// the result back in a valid order.
func Merge(existing, drafted []store.Article) []store.Article {
	merged := make([]store.Article, 0, len(existing)+len(drafted))
	merged = append(merged, drafted...)
	merged = append(merged, existing...)

	if s, err := store.New(merged); err == nil {
		return s.All()
	}

	// Duplicate or empty slug in a draft; keep existing articles and only
	// the drafts that do not collide.
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.ID] = true
	}
	deduped := make([]store.Article, 0, len(merged))
	deduped = append(deduped, existing...)
	for _, a := range drafted {
		if a.ID != "" && !seen[a.ID] {
			seen[a.ID] = true
			deduped = append(deduped, a)
		}
	}
	s, err := store.New(deduped)
	if err != nil {
		return existing
	}
	return s.All()
}

// WriteStore writes the article sequence as JSON, atomically: the new file
// is staged next to the target and renamed into place.
func WriteStore(path string, articles []store.Article) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding articles: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}
