// Package draft turns arXiv papers into beginner-friendly blog articles
// using a language-model provider.
package draft

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/TokuyuSou/AI-paper-blog/internal/config"
	"github.com/TokuyuSou/AI-paper-blog/internal/paper"
	"github.com/TokuyuSou/AI-paper-blog/internal/store"
)

// Drafter writes a complete article for one paper.
type Drafter interface {
	Draft(ctx context.Context, p paper.Paper) (store.Article, error)
}

// completer is one round-trip to a language model.
type completer interface {
	complete(ctx context.Context, prompt string) (string, error)
}

const systemPrompt = "You are an expert at explaining complex AI research papers in simple, beginner-friendly terms. You use analogies, examples, and clear language to make technical concepts accessible to university students new to AI."

// New creates a Drafter from the given AI config.
func New(cfg *config.AIConfig, apiKey string) (Drafter, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("AI not configured")
	}

	client := &http.Client{Timeout: 60 * time.Second}

	var llm completer
	switch cfg.Provider {
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		llm = &claudeProvider{apiKey: apiKey, model: model, client: client}
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		llm = &openaiProvider{apiKey: apiKey, model: model, client: client}
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: claude, openai)", cfg.Provider)
	}

	return &drafter{llm: llm, now: time.Now}, nil
}

type drafter struct {
	llm completer
	now func() time.Time
}

const backgroundPrompt = `Write a beginner-friendly explanation of why the research in this paper was needed.

Paper Title: %s
Abstract: %s

Requirements:
- Explain in simple terms what problems existed before this research
- Use analogies and everyday examples where possible
- Avoid technical jargon
- Write 2-3 paragraphs
- Target audience: university students new to AI

Focus on the motivation and context, not the solution.`

const methodologyPrompt = `Explain the key innovation and methodology of this research paper in beginner-friendly terms.

Paper Title: %s
Abstract: %s

Requirements:
- Break down the main approach into simple steps
- Use analogies and metaphors to explain complex concepts
- Avoid mathematical formulas and technical details
- Write 3-4 paragraphs
- Target audience: university students new to AI

Focus on WHAT they did and HOW it works conceptually, not the technical implementation.`

const resultsPrompt = `Explain the results and achievements of this research paper in beginner-friendly terms.

Paper Title: %s
Abstract: %s

Requirements:
- Explain what the research achieved
- Compare to previous methods if relevant
- Write 2-3 paragraphs
- Use simple language and avoid technical metrics
- Target audience: university students new to AI

Focus on the practical impact and what made this work significant.`

const significancePrompt = `Explain why this research paper matters today and its long-term significance in AI.

Paper Title: %s
Abstract: %s

Requirements:
- Explain how this research influenced later developments
- Connect to modern AI systems people know
- Write 2-3 paragraphs
- Use simple language
- Target audience: university students new to AI

Focus on the lasting impact and why someone should care about this paper today.`

const conceptTitlePrompt = `Identify the single most important technical concept introduced or used in this paper that a beginner should understand.

Paper Title: %s
Abstract: %s

Return only the name of the concept (2-4 words maximum). Examples:
- "Self-Attention Mechanism"
- "Convolutional Neural Networks"
- "Adversarial Training"`

const conceptBodyPrompt = `Provide a detailed, beginner-friendly explanation of "%s" as it relates to the paper "%s".

Paper Abstract: %s

Requirements:
- Start with a simple analogy or real-world example
- Explain how it works step by step
- Write 4-5 paragraphs
- Use simple language and avoid jargon
- Target audience: university students new to AI

Make this explanation comprehensive enough that a beginner could explain the concept to someone else.`

const summaryPrompt = `Write a single, clear sentence that summarizes the main contribution of this research paper.

Paper Title: %s
Abstract: %s

Requirements:
- One sentence only
- Simple language
- Capture the essence of what this paper achieved`

const subtitlePrompt = `Create an engaging subtitle for a beginner-friendly explanation of this research paper.

Paper Title: %s
Abstract: %s

Requirements:
- 5-10 words
- Capture the main innovation or impact
- Avoid technical jargon

Respond with ONLY the subtitle, no quotes.`

// Draft generates every section of the article, in order. Any single
// failed call aborts the draft; partial articles are worse than none.
func (d *drafter) Draft(ctx context.Context, p paper.Paper) (store.Article, error) {
	background, err := d.section(ctx, backgroundPrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("background: %w", err)
	}
	methodology, err := d.section(ctx, methodologyPrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("methodology: %w", err)
	}
	results, err := d.section(ctx, resultsPrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("results: %w", err)
	}
	significance, err := d.section(ctx, significancePrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("significance: %w", err)
	}

	concept, err := d.section(ctx, conceptTitlePrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("concept title: %w", err)
	}
	concept = strings.Trim(concept, `"`)

	conceptBody, err := d.llm.complete(ctx, fmt.Sprintf(conceptBodyPrompt, concept, p.Title, p.Abstract))
	if err != nil {
		return store.Article{}, fmt.Errorf("concept explanation: %w", err)
	}

	summary, err := d.section(ctx, summaryPrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("summary: %w", err)
	}
	subtitle, err := d.section(ctx, subtitlePrompt, p)
	if err != nil {
		return store.Article{}, fmt.Errorf("subtitle: %w", err)
	}

	content := store.Content{
		Background:   strings.TrimSpace(background),
		Methodology:  strings.TrimSpace(methodology),
		Results:      strings.TrimSpace(results),
		Significance: strings.TrimSpace(significance),
	}

	return Assemble(p, content, concept, strings.TrimSpace(conceptBody),
		strings.TrimSpace(summary), strings.Trim(strings.TrimSpace(subtitle), `"`), d.now()), nil
}

func (d *drafter) section(ctx context.Context, prompt string, p paper.Paper) (string, error) {
	text, err := d.llm.complete(ctx, fmt.Sprintf(prompt, p.Title, p.Abstract))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Assemble builds the final article record from generated parts.
func Assemble(p paper.Paper, content store.Content, concept, conceptBody, summary, subtitle string, published time.Time) store.Article {
	return store.Article{
		ID:               Slugify(p.Title),
		Title:            fmt.Sprintf("Paper Explained: %s - A Beginner's Guide", p.Title),
		Subtitle:         subtitle,
		Category:         paper.CategoryName(p.CategorySlug),
		CategorySlug:     p.CategorySlug,
		Authors:          p.Authors,
		PaperURL:         p.URL,
		ReadTime:         ReadTime(content.Background, content.Methodology, content.Results, content.Significance, conceptBody),
		PublishDate:      published.Format("2006-01-02"),
		ConceptExplained: concept,
		Content:          content,
		ConceptExplanation: store.ConceptExplanation{
			Title:   ConceptHeading(concept, p.Title),
			Content: conceptBody,
		},
		Summary: summary,
		Excerpt: Excerpt(content.Background),
	}
}

var nonSlug = regexp.MustCompile(`[^a-z0-9 -]+`)
var slugSpaces = regexp.MustCompile(`[-\s]+`)

// Slugify derives a URL-friendly article id from a paper title.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlug.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// ReadTime estimates reading time at 200 words per minute, floored at one.
func ReadTime(sections ...string) string {
	words := 0
	for _, s := range sections {
		words += len(strings.Fields(s))
	}
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// Excerpt takes the first two sentences of the background section.
func Excerpt(background string) string {
	background = strings.TrimSpace(background)
	if background == "" {
		return ""
	}
	sentences := strings.SplitAfter(background, ". ")
	if len(sentences) >= 2 {
		return strings.TrimSpace(sentences[0] + sentences[1])
	}
	runes := []rune(background)
	if len(runes) > 200 {
		return string(runes[:200]) + "..."
	}
	return background
}

// ConceptHeading titles the concept-explanation box. The paper title is
// shortened at its first colon, matching the house style.
func ConceptHeading(concept, paperTitle string) string {
	if i := strings.Index(paperTitle, ":"); i > 0 {
		paperTitle = paperTitle[:i]
	}
	return fmt.Sprintf("Understanding %s: The Heart of %s", concept, paperTitle)
}
