package tui

import (
	"fmt"

	"github.com/TokuyuSou/AI-paper-blog/internal/store"
	"github.com/charmbracelet/lipgloss"
)

// filterBar is a single-select row of category tabs. Position 0 is the
// implicit "All" tab; positions 1..n map to store categories.
type filterBar struct {
	categories   []store.Category
	selected     string // category slug, "" = all
	filterMode   bool
	filterCursor int
}

func newFilterBar(categories []store.Category) filterBar {
	return filterBar{categories: categories}
}

func (f *filterBar) selectAt(i int) {
	if i == 0 {
		f.selected = ""
		return
	}
	if i-1 < len(f.categories) {
		f.selected = f.categories[i-1].Slug
	}
}

func (f *filterBar) selectCurrent() {
	f.selectAt(f.filterCursor)
}

func (f *filterBar) tabCount() int {
	return len(f.categories) + 1
}

func (f *filterBar) activeLabel() string {
	for _, c := range f.categories {
		if c.Slug == f.selected {
			return c.Name
		}
	}
	return "All"
}

func (f *filterBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string

	label := "All"
	if f.filterMode && f.filterCursor == 0 {
		label = "[All]"
	}
	if f.selected == "" {
		parts = append(parts, tabActiveStyle.Render(label))
	} else {
		parts = append(parts, tabInactiveStyle.Render(label))
	}

	for i, c := range f.categories {
		style := tabInactiveStyle
		if c.Slug == f.selected {
			style = tabActiveStyle
		}
		label := fmt.Sprintf("%s %d", c.Name, c.Count)
		if f.filterMode && f.filterCursor == i+1 {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
