package tui

import (
	"strings"

	"github.com/TokuyuSou/AI-paper-blog/internal/store"
)

// renderReader lays out a full article as a scrollable column of text.
func renderReader(a store.Article, width, height, scroll int) string {
	contentWidth := width - 6
	if contentWidth < 20 {
		contentWidth = 20
	}

	var lines []string
	add := func(s string) {
		lines = append(lines, s)
	}
	addWrapped := func(styled func(...string) string, text string) {
		for _, l := range strings.Split(wrapText(text, contentWidth), "\n") {
			add(styled(l))
		}
	}

	add("")
	addWrapped(readerTitleStyle.Render, a.Title)
	if a.Subtitle != "" {
		addWrapped(readerSubtitleStyle.Render, a.Subtitle)
	}
	add("")
	add(previewMetaStyle.Render(a.Category + " · " + shortDate(a) + " · " + a.ReadTime))
	if len(a.Authors) > 0 {
		addWrapped(itemTimeStyle.Render, "By "+authorLine(a.Authors))
	}
	add("")

	section := func(heading, body string) {
		if body == "" {
			return
		}
		add(readerHeadingStyle.Render(heading))
		addWrapped(readerBodyStyle.Render, body)
		add("")
	}

	section("Background", a.Content.Background)
	section("Methodology", a.Content.Methodology)
	section("Results", a.Content.Results)
	section("Significance", a.Content.Significance)

	if a.ConceptExplanation.Content != "" {
		box := readerHeadingStyle.Render(a.ConceptExplanation.Title) + "\n" +
			readerBodyStyle.Render(wrapText(a.ConceptExplanation.Content, contentWidth-4))
		for _, l := range strings.Split(conceptBoxStyle.Width(contentWidth).Render(box), "\n") {
			add(l)
		}
		add("")
	}

	if a.Summary != "" {
		add(readerHeadingStyle.Render("In One Sentence"))
		addWrapped(readerBodyStyle.Render, a.Summary)
		add("")
	}

	add(previewLinkStyle.Render("Paper: " + a.PaperURL))

	// Indent the whole column
	for i := range lines {
		lines[i] = "  " + lines[i]
	}

	// Clamp scroll so the last page stays on screen
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll > 0 {
		lines = lines[scroll:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// readerMaxScroll reports how far the reader view can scroll for an
// article at the given size.
func readerMaxScroll(a store.Article, width, height int) int {
	content := renderReader(a, width, 1<<20, 0)
	n := strings.Count(content, "\n") + 1 - height
	if n < 0 {
		return 0
	}
	return n
}

// renderNotFound is the fallback view for an id or slug with no match.
func renderNotFound(what, key string, width, height int) string {
	title := notFoundTitleStyle.Render("Not found")
	body := helpDimStyle.Render("No " + what + " matches \"" + key + "\".")
	hint := helpDimStyle.Render("esc to go back · q to quit")
	content := title + "\n\n" + body + "\n\n" + hint

	lines := strings.Split(content, "\n")
	pad := (height - len(lines)) / 3
	if pad < 0 {
		pad = 0
	}
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", pad))
	for i, l := range lines {
		b.WriteString("  " + l)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
