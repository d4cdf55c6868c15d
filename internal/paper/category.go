package paper

// The blog's fixed category vocabulary. Slug and display name map 1:1;
// everything the mapping does not know falls back to basic-concepts.

const DefaultSlug = "basic-concepts"

var categoryNames = map[string]string{
	"foundation-models": "Foundation Models",
	"generative-models": "Generative Models",
	"optimization":      "Optimization",
	"applications":      "Applications",
	"basic-concepts":    "Basic Concepts",
}

// CategoryName returns the display name for a blog category slug.
func CategoryName(slug string) string {
	if name, ok := categoryNames[slug]; ok {
		return name
	}
	return categoryNames[DefaultSlug]
}

// arXiv subject classes mapped onto blog categories.
var arxivSlugs = map[string]string{
	"cs.LG":   "foundation-models",
	"cs.CL":   "foundation-models",
	"cs.AI":   "foundation-models",
	"stat.ML": "foundation-models",
	"cs.CV":   "basic-concepts",
	"cs.NE":   "basic-concepts",
	"cs.RO":   "applications",
	"cs.HC":   "applications",
	"q-bio":   "applications",
}

// SlugForArxivCategories picks the blog category for a paper from its arXiv
// subject classes, first match wins.
func SlugForArxivCategories(categories []string) string {
	for _, c := range categories {
		if slug, ok := arxivSlugs[c]; ok {
			return slug
		}
	}
	return DefaultSlug
}
