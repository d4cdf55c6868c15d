package tui

import (
	"strings"

	"github.com/TokuyuSou/AI-paper-blog/internal/store"
	"github.com/charmbracelet/lipgloss"
)

func renderPreview(article *store.Article, width, height, scroll int) string {
	if article == nil {
		return centerText("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(article.Title)
	meta := previewMetaStyle.Render(
		article.Category + " · " + shortDate(*article) + " · " + article.ReadTime,
	)

	var parts []string
	parts = append(parts, title, meta)

	if article.Subtitle != "" {
		parts = append(parts, readerSubtitleStyle.Width(contentWidth).Render(article.Subtitle), "")
	}

	excerpt := article.Excerpt
	if excerpt == "" {
		excerpt = article.Summary
	}
	if excerpt == "" {
		excerpt = "(No excerpt available)"
	}
	parts = append(parts, previewBodyStyle.Width(contentWidth).Render(wrapText(excerpt, contentWidth)))

	if len(article.Authors) > 0 {
		parts = append(parts, "", itemTimeStyle.Render(wrapText("By "+authorLine(article.Authors), contentWidth)))
	}

	parts = append(parts, previewLinkStyle.Width(contentWidth).Render("Paper: "+article.PaperURL))
	parts = append(parts, itemTimeStyle.Render("enter to read the full article"))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// authorLine shows up to three authors before collapsing to et al.
func authorLine(authors []string) string {
	if len(authors) <= 3 {
		return strings.Join(authors, ", ")
	}
	return strings.Join(authors[:3], ", ") + " et al."
}
