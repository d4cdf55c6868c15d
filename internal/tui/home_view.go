package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`██████╗  █████╗ ██████╗ ███████╗██████╗ ██████╗ ██╗      ██████╗  ██████╗ `,
	`██╔══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██║     ██╔═══██╗██╔════╝ `,
	`██████╔╝███████║██████╔╝█████╗  ██████╔╝██████╔╝██║     ██║   ██║██║  ███╗`,
	`██╔═══╝ ██╔══██║██╔═══╝ ██╔══╝  ██╔══██╗██╔══██╗██║     ██║   ██║██║   ██║`,
	`██║     ██║  ██║██║     ███████╗██║  ██║██████╔╝███████╗╚██████╔╝╚██████╔╝`,
	`╚═╝     ╚═╝  ╚═╝╚═╝     ╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝ `,
}

func renderHomeScreen(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	taglineStyle := lipgloss.NewStyle().Foreground(colorDim)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "")
	lines = append(lines, taglineStyle.Render("AI research papers, explained for everyone"))
	lines = append(lines, "")
	lines = append(lines, "")

	lines = append(lines, "          "+keyStyle.Render("[f]")+"  "+labelStyle.Render("Featured Articles"))
	lines = append(lines, "          "+keyStyle.Render("[e]")+"  "+labelStyle.Render("Browse / Explore"))
	lines = append(lines, "")
	lines = append(lines, "          "+keyStyle.Render("[q]")+"  "+labelStyle.Render("Quit"))

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	// Center horizontally
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
