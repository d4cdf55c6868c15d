package paper

import (
	"strings"
	"testing"
	"time"
)

func TestScoreRange(t *testing.T) {
	p := Paper{
		Title:     "Efficient Attention for Transformer Scaling",
		Abstract:  strings.Repeat("attention transformer scaling efficient model training ", 25),
		Published: time.Now().Add(-24 * time.Hour),
	}
	s := Score(p)
	if s < 0 || s > 10 {
		t.Errorf("score out of range: %.2f", s)
	}
	if s == 0 {
		t.Error("expected non-zero score for a fresh keyword-dense paper")
	}
}

func TestRecencyDecay(t *testing.T) {
	fresh := Paper{Title: "x", Published: time.Now()}
	stale := Paper{Title: "x", Published: time.Now().Add(-60 * 24 * time.Hour)}

	if ScoreWithBreakdown(fresh).Recency <= ScoreWithBreakdown(stale).Recency {
		t.Error("fresher paper should have higher recency component")
	}
	if ScoreWithBreakdown(Paper{}).Recency != 0 {
		t.Error("zero publish date should score zero recency")
	}
}

func TestKeywordDensity(t *testing.T) {
	dense := keywordScore("Attention and Diffusion", "transformer attention diffusion scaling")
	sparse := keywordScore("A Study", "we study a thing and report findings about it")
	if dense <= sparse {
		t.Errorf("expected dense (%.2f) > sparse (%.2f)", dense, sparse)
	}
	if got := keywordScore("", ""); got != 0 {
		t.Errorf("empty input should score 0, got %.2f", got)
	}
}

func TestDepthScore(t *testing.T) {
	long := depthScore(strings.Repeat("word ", 150))
	mid := depthScore(strings.Repeat("word ", 60))
	short := depthScore("tiny abstract")
	if !(long > mid && mid > short) {
		t.Errorf("expected monotonic depth scores: %.1f %.1f %.1f", long, mid, short)
	}
}

func TestRankOrdersByScore(t *testing.T) {
	now := time.Now()
	papers := []Paper{
		{ID: "weak", Title: "Notes", Abstract: "short", Published: now.Add(-90 * 24 * time.Hour)},
		{ID: "strong", Title: "Transformer Attention Scaling", Abstract: strings.Repeat("attention transformer scaling retrieval alignment reasoning ", 25), Published: now},
	}
	ranked := Rank(papers)
	if ranked[0].ID != "strong" {
		t.Errorf("expected strong paper first, got %s", ranked[0].ID)
	}
	// Rank must not mutate its input.
	if papers[0].ID != "weak" {
		t.Error("Rank mutated input slice")
	}
}
