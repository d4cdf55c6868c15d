package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/TokuyuSou/AI-paper-blog/internal/paper"
	"github.com/TokuyuSou/AI-paper-blog/internal/store"
)

type fakeSearcher struct {
	papers []paper.Paper
	errs   []error
}

func (f fakeSearcher) Recent(context.Context, []string, int) paper.SearchResult {
	return paper.SearchResult{Papers: f.papers, Errors: f.errs}
}

type fakeDrafter struct {
	fail map[string]bool
}

func (f fakeDrafter) Draft(_ context.Context, p paper.Paper) (store.Article, error) {
	if f.fail[p.ID] {
		return store.Article{}, errors.New("provider down")
	}
	return store.Article{
		ID:           "explained-" + p.ID,
		Title:        "Paper Explained: " + p.Title,
		Category:     paper.CategoryName(p.CategorySlug),
		CategorySlug: p.CategorySlug,
		PaperURL:     p.URL,
		PublishDate:  time.Now().Format("2006-01-02"),
	}, nil
}

func emptyStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(nil)
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return s
}

func storeWith(t *testing.T, articles ...store.Article) *store.Store {
	t.Helper()
	s, err := store.New(articles)
	if err != nil {
		t.Fatalf("building store: %v", err)
	}
	return s
}

func recentPaper(id, title string) paper.Paper {
	return paper.Paper{
		ID:           id,
		Title:        title,
		Abstract:     "An abstract about transformer attention scaling.",
		Published:    time.Now().Add(-24 * time.Hour),
		CategorySlug: "foundation-models",
		URL:          "https://arxiv.org/abs/" + id,
	}
}

func TestRunDraftsNewPapers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "articles.json")

	res, err := Run(context.Background(), Options{
		Store:     emptyStore(t),
		StorePath: path,
		Searcher:  fakeSearcher{papers: []paper.Paper{recentPaper("2501.00001", "Paper One"), recentPaper("2501.00002", "Paper Two")}},
		Drafter:   fakeDrafter{},
		Max:       2,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Drafted) != 2 {
		t.Fatalf("expected 2 drafted, got %d", len(res.Drafted))
	}

	s, err := store.LoadFile(path)
	if err != nil {
		t.Fatalf("loading written store: %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 articles in store, got %d", s.Len())
	}
}

func TestRunSkipsKnownPapers(t *testing.T) {
	existing := store.Article{
		ID:          "explained-2501.00001",
		PaperURL:    "https://arxiv.org/abs/2501.00001",
		PublishDate: "2025-01-05",
	}
	res, err := Run(context.Background(), Options{
		Store:     storeWith(t, existing),
		StorePath: filepath.Join(t.TempDir(), "articles.json"),
		Searcher:  fakeSearcher{papers: []paper.Paper{recentPaper("2501.00001", "Known Paper"), recentPaper("2501.00002", "New Paper")}},
		Drafter:   fakeDrafter{},
		Max:       5,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", res.Skipped)
	}
	if len(res.Drafted) != 1 || res.Drafted[0].ID != "explained-2501.00002" {
		t.Errorf("expected only the new paper drafted, got %v", res.Drafted)
	}
}

func TestRunRespectsMax(t *testing.T) {
	papers := []paper.Paper{
		recentPaper("2501.00001", "One"),
		recentPaper("2501.00002", "Two"),
		recentPaper("2501.00003", "Three"),
	}
	res, err := Run(context.Background(), Options{
		Store:     emptyStore(t),
		StorePath: filepath.Join(t.TempDir(), "articles.json"),
		Searcher:  fakeSearcher{papers: papers},
		Drafter:   fakeDrafter{},
		Max:       1,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Drafted) != 1 {
		t.Errorf("expected max 1 drafted, got %d", len(res.Drafted))
	}
}

func TestRunCollectsDraftErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	res, err := Run(context.Background(), Options{
		Store:     emptyStore(t),
		StorePath: path,
		Searcher:  fakeSearcher{papers: []paper.Paper{recentPaper("2501.00001", "Bad"), recentPaper("2501.00002", "Good")}},
		Drafter:   fakeDrafter{fail: map[string]bool{"2501.00001": true}},
		Max:       5,
	})
	if err != nil {
		t.Fatalf("run should not abort on a single draft failure: %v", err)
	}
	if len(res.Errors) != 1 {
		t.Errorf("expected 1 collected error, got %d", len(res.Errors))
	}
	if len(res.Drafted) != 1 {
		t.Errorf("expected the good paper drafted, got %d", len(res.Drafted))
	}
}

func TestRunNothingDraftedWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	_, err := Run(context.Background(), Options{
		Store:     emptyStore(t),
		StorePath: path,
		Searcher:  fakeSearcher{},
		Drafter:   fakeDrafter{},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("store file should not be written when nothing was drafted")
	}
}

func TestRunClassicsSkipsSearch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	res, err := Run(context.Background(), Options{
		Store:     emptyStore(t),
		StorePath: path,
		Searcher:  fakeSearcher{errs: []error{errors.New("should not be called")}},
		Drafter:   fakeDrafter{},
		Classics:  true,
		Max:       10,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(res.Errors) != 0 {
		t.Errorf("classics mode must not search: %v", res.Errors)
	}
	if len(res.Drafted) != len(paper.Classics()) {
		t.Errorf("expected all classics drafted, got %d", len(res.Drafted))
	}
}

func TestMergeNewestFirst(t *testing.T) {
	existing := []store.Article{
		{ID: "old", PublishDate: "2025-01-01"},
	}
	drafted := []store.Article{
		{ID: "new", PublishDate: "2025-06-01"},
	}
	merged := Merge(existing, drafted)
	if len(merged) != 2 {
		t.Fatalf("expected 2 merged, got %d", len(merged))
	}
	if merged[0].ID != "new" {
		t.Errorf("expected newest first, got %s", merged[0].ID)
	}
}

func TestMergeDropsCollidingDraft(t *testing.T) {
	existing := []store.Article{
		{ID: "same-slug", Title: "Original", PublishDate: "2025-01-01"},
	}
	drafted := []store.Article{
		{ID: "same-slug", Title: "Redraft", PublishDate: "2025-06-01"},
	}
	merged := Merge(existing, drafted)
	if len(merged) != 1 {
		t.Fatalf("expected 1 article after collision, got %d", len(merged))
	}
	if merged[0].Title != "Original" {
		t.Errorf("existing article should win a slug collision, got %q", merged[0].Title)
	}
}

func TestWriteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "articles.json")
	articles := []store.Article{{ID: "a", Title: "A", PublishDate: "2025-06-24"}}

	if err := WriteStore(path, articles); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := store.LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 article, got %d", s.Len())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not remain after rename")
	}
}
