package paper

import (
	"strings"
	"testing"

	"github.com/mmcdole/gofeed"
)

const sampleAtom = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query: search_query=cat:cs.LG</title>
  <entry>
    <id>http://arxiv.org/abs/2501.01234v2</id>
    <title>Efficient Attention for Long
 Sequences</title>
    <summary>We propose an efficient attention mechanism that scales
 linearly with sequence length.</summary>
    <published>2025-01-03T18:00:00Z</published>
    <updated>2025-01-05T18:00:00Z</updated>
    <author><name>Alice Example</name></author>
    <author><name>Bob Sample</name></author>
    <category term="cs.LG" scheme="http://arxiv.org/schemas/atom"/>
    <category term="cs.CL" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
  <entry>
    <id>http://arxiv.org/abs/2501.05678v1</id>
    <title>A Robotics Benchmark</title>
    <summary>A benchmark suite for robot manipulation.</summary>
    <published>2025-01-02T12:00:00Z</published>
    <author><name>Carol Test</name></author>
    <category term="cs.RO" scheme="http://arxiv.org/schemas/atom"/>
  </entry>
</feed>`

func parseSample(t *testing.T) []Paper {
	t.Helper()
	feed, err := gofeed.NewParser().Parse(strings.NewReader(sampleAtom))
	if err != nil {
		t.Fatalf("parsing sample feed: %v", err)
	}
	return fromFeed(feed)
}

func TestFromFeed(t *testing.T) {
	papers := parseSample(t)
	if len(papers) != 2 {
		t.Fatalf("expected 2 papers, got %d", len(papers))
	}

	p := papers[0]
	if p.ID != "2501.01234" {
		t.Errorf("expected version-stripped id, got %q", p.ID)
	}
	if p.Title != "Efficient Attention for Long Sequences" {
		t.Errorf("expected collapsed whitespace in title, got %q", p.Title)
	}
	if !strings.Contains(p.Abstract, "scales linearly") {
		t.Errorf("expected collapsed abstract, got %q", p.Abstract)
	}
	if len(p.Authors) != 2 || p.Authors[0] != "Alice Example" {
		t.Errorf("unexpected authors: %v", p.Authors)
	}
	if p.CategorySlug != "foundation-models" {
		t.Errorf("expected foundation-models from cs.LG, got %q", p.CategorySlug)
	}
	if p.URL != "https://arxiv.org/abs/2501.01234" {
		t.Errorf("unexpected url: %q", p.URL)
	}
	if p.Published.IsZero() {
		t.Error("expected published date")
	}

	if papers[1].CategorySlug != "applications" {
		t.Errorf("expected applications from cs.RO, got %q", papers[1].CategorySlug)
	}
}

func TestArxivID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"http://arxiv.org/abs/1706.03762v5", "1706.03762"},
		{"https://arxiv.org/abs/1706.03762", "1706.03762"},
		{"1706.03762v1", "1706.03762"},
		{"1706.03762", "1706.03762"},
		{"cs/0112017v2", "cs/0112017"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ArxivID(tt.input); got != tt.want {
			t.Errorf("ArxivID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugForArxivCategories(t *testing.T) {
	tests := []struct {
		cats []string
		want string
	}{
		{[]string{"cs.LG"}, "foundation-models"},
		{[]string{"stat.ML", "cs.LG"}, "foundation-models"},
		{[]string{"cs.CV"}, "basic-concepts"},
		{[]string{"cs.RO"}, "applications"},
		{[]string{"math.CO"}, "basic-concepts"},
		{nil, "basic-concepts"},
	}
	for _, tt := range tests {
		if got := SlugForArxivCategories(tt.cats); got != tt.want {
			t.Errorf("SlugForArxivCategories(%v) = %q, want %q", tt.cats, got, tt.want)
		}
	}
}

func TestCategoryName(t *testing.T) {
	if got := CategoryName("generative-models"); got != "Generative Models" {
		t.Errorf("expected Generative Models, got %q", got)
	}
	if got := CategoryName("unknown"); got != "Basic Concepts" {
		t.Errorf("expected fallback Basic Concepts, got %q", got)
	}
}

func TestClassics(t *testing.T) {
	classics := Classics()
	if len(classics) != 5 {
		t.Fatalf("expected 5 classic papers, got %d", len(classics))
	}
	seen := map[string]bool{}
	for _, p := range classics {
		if p.ID == "" || p.Title == "" || p.Abstract == "" || len(p.Authors) == 0 {
			t.Errorf("classic paper %q missing fields", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate classic paper id %q", p.ID)
		}
		seen[p.ID] = true
		if CategoryName(p.CategorySlug) == "" {
			t.Errorf("classic paper %q has unknown category %q", p.ID, p.CategorySlug)
		}
	}
}
