package store

import "time"

// Content holds the four prose sections of a generated article.
type Content struct {
	Background   string `json:"background"`
	Methodology  string `json:"methodology"`
	Results      string `json:"results"`
	Significance string `json:"significance"`
}

// ConceptExplanation is the deep-dive box attached to each article.
type ConceptExplanation struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Article is one record of the store. The JSON field names are the
// interchange format produced by the generation pipeline; do not rename.
type Article struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Subtitle           string             `json:"subtitle"`
	Category           string             `json:"category"`
	CategorySlug       string             `json:"categorySlug"`
	Authors            []string           `json:"authors"`
	PaperURL           string             `json:"paperUrl"`
	ReadTime           string             `json:"readTime"`
	PublishDate        string             `json:"publishDate"`
	ConceptExplained   string             `json:"conceptExplained"`
	Content            Content            `json:"content"`
	ConceptExplanation ConceptExplanation `json:"conceptExplanation"`
	Summary            string             `json:"summary"`
	Excerpt            string             `json:"excerpt"`
}

// PublishedAt parses PublishDate (YYYY-MM-DD). Returns the zero time when
// the field is empty or malformed; such articles sort after dated ones.
func (a Article) PublishedAt() time.Time {
	t, err := time.Parse("2006-01-02", a.PublishDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Category is a derived grouping summary. It is never stored; Categories
// recomputes it from the articles on every call.
type Category struct {
	Name  string
	Slug  string
	Count int
}

// QueryOpts narrows a listing. Zero values mean "no restriction".
type QueryOpts struct {
	Category string // category slug
	Search   string // case-insensitive match on title, subtitle, summary
	Limit    int    // 0 = unlimited
}
