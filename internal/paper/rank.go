package paper

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"
)

// Relevance scoring for generation candidates. Recent papers with
// keyword-dense, substantial abstracts get drafted first.

const (
	weightRecency  = 0.35
	weightKeywords = 0.40
	weightDepth    = 0.25
)

// Breakdown shows how each component contributed to a paper's score.
type Breakdown struct {
	Recency  float64
	Keywords float64
	Depth    float64
	Final    float64
}

// Score computes a relevance score (0.0-10.0) for a paper.
func Score(p Paper) float64 {
	return ScoreWithBreakdown(p).Final
}

// ScoreWithBreakdown computes the score with component details.
func ScoreWithBreakdown(p Paper) Breakdown {
	b := Breakdown{
		Recency:  recencyScore(p),
		Keywords: keywordScore(p.Title, p.Abstract),
		Depth:    depthScore(p.Abstract),
	}
	raw := b.Recency*weightRecency + b.Keywords*weightKeywords + b.Depth*weightDepth
	b.Final = math.Round(raw*100) / 10 // scale to 0.0-10.0
	return b
}

// Rank sorts papers by relevance score descending, stably.
func Rank(papers []Paper) []Paper {
	out := make([]Paper, len(papers))
	copy(out, papers)
	sort.SliceStable(out, func(i, j int) bool {
		return Score(out[i]) > Score(out[j])
	})
	return out
}

// recencyScore decays with a one-week half-life. Preprints age slower
// than news; a paper from last month is still worth covering.
func recencyScore(p Paper) float64 {
	if p.Published.IsZero() {
		return 0.0
	}
	days := time.Since(p.Published).Hours() / 24
	if days < 0 {
		days = 0
	}
	// ln(0.5)/7 per day
	return math.Exp(-0.09902 * days)
}

// topicKeywords are the terms the blog's audience cares about.
var topicKeywords = map[string]bool{
	"transformer": true, "attention": true, "pretraining": true,
	"language": true, "multimodal": true, "diffusion": true,
	"generative": true, "adversarial": true, "reinforcement": true,
	"alignment": true, "instruction": true, "reasoning": true,
	"embedding": true, "retrieval": true, "finetuning": true,
	"scaling": true, "efficient": true, "distillation": true,
	"quantization": true, "benchmark": true, "agent": true,
	"vision": true, "speech": true, "robustness": true,
}

// keywordScore returns the density of topic keywords (0.0-1.0).
func keywordScore(title, abstract string) float64 {
	text := strings.ToLower(title + " " + abstract)
	var words []string
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return 0.0
	}

	hits := 0
	for _, w := range words {
		if topicKeywords[w] {
			hits++
		}
	}
	// 8%+ keyword density saturates the component.
	score := float64(hits) / float64(len(words)) * 12.5
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// depthScore prefers abstracts with enough substance to draft from.
func depthScore(abstract string) float64 {
	words := len(strings.Fields(abstract))
	switch {
	case words >= 120:
		return 1.0
	case words >= 50:
		return 0.6
	default:
		return 0.2
	}
}
