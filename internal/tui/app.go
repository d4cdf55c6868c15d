package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/TokuyuSou/AI-paper-blog/internal/browser"
	"github.com/TokuyuSou/AI-paper-blog/internal/store"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeHome mode = iota
	modeBrowse
	modeReader
	modeSearch
	modeFilter
	modeHelp
	modeNotFound
)

type App struct {
	st       *store.Store
	articles []store.Article
	cursor   int
	focus    focusPane
	mode     mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	filterBar   filterBar

	// State
	featuredOnly  bool
	featuredCount int
	previewScroll int
	readerScroll  int
	currentDate   string
	notFoundKey   string
	err           error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Store         *store.Store
	FeaturedCount int
	StartCategory string
	StartArticle  string
	BrowseMode    bool
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	featured := opts.FeaturedCount
	if featured <= 0 {
		featured = store.DefaultFeatured
	}

	a := &App{
		st:            opts.Store,
		filterBar:     newFilterBar(opts.Store.Categories()),
		searchInput:   ti,
		featuredCount: featured,
		currentDate:   time.Now().Format("Jan 2"),
		mode:          modeHome,
	}

	if opts.StartCategory != "" {
		a.filterBar.selected = opts.StartCategory
		a.mode = modeBrowse
	}
	if opts.BrowseMode {
		a.mode = modeBrowse
	}
	a.reload()

	if opts.StartArticle != "" {
		idx := a.indexOf(opts.StartArticle)
		if idx < 0 {
			// Not in the current listing; retry against the whole store.
			a.filterBar.selected = ""
			a.featuredOnly = false
			a.reload()
			idx = a.indexOf(opts.StartArticle)
		}
		if idx >= 0 {
			a.cursor = idx
			a.mode = modeReader
		} else {
			a.notFoundKey = opts.StartArticle
			a.mode = modeNotFound
		}
	}

	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// reload re-runs the current query against the store. The store is
// in-memory so this is synchronous, unlike a network refresh.
func (a *App) reload() {
	if a.featuredOnly {
		a.articles = a.st.Featured(a.featuredCount)
	} else {
		a.articles = a.st.Query(store.QueryOpts{
			Category: a.filterBar.selected,
			Search:   a.searchInput.Value(),
		})
	}
	if a.cursor >= len(a.articles) {
		a.cursor = max(0, len(a.articles)-1)
	}
}

func (a *App) indexOf(id string) int {
	for i, art := range a.articles {
		if art.ID == id {
			return i
		}
	}
	return -1
}

func (a *App) selected() *store.Article {
	if len(a.articles) == 0 || a.cursor >= len(a.articles) {
		return nil
	}
	return &a.articles[a.cursor]
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return browserErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case browserErrMsg:
		a.err = msg.err
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	}

	// Mode-specific handling
	switch a.mode {
	case modeHome:
		return a.handleHomeKey(msg)
	case modeReader:
		return a.handleReaderKey(msg)
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeBrowse
		}
		return a, nil
	case modeNotFound:
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "esc", "h":
			a.mode = modeHome
		case "e":
			a.mode = modeBrowse
			a.reload()
		}
		return a, nil
	}

	// Browse mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.articles)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return a, nil
	case "enter", "l":
		if a.selected() != nil {
			a.mode = modeReader
			a.readerScroll = 0
		}
		return a, nil
	case "o":
		if art := a.selected(); art != nil {
			return a, openBrowserCmd(art.PaperURL)
		}
		return a, nil
	case "/":
		a.featuredOnly = false
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "c", "f":
		a.mode = modeFilter
		a.filterBar.filterMode = true
		return a, nil
	case "F":
		a.featuredOnly = !a.featuredOnly
		a.cursor = 0
		a.reload()
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "f", "1":
		a.featuredOnly = true
		a.cursor = 0
		a.mode = modeBrowse
		a.reload()
		return a, nil
	case "e", "2", "enter":
		a.featuredOnly = false
		a.cursor = 0
		a.mode = modeBrowse
		a.reload()
		return a, nil
	case "q":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	art := a.selected()
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "backspace":
		a.mode = modeBrowse
		return a, nil
	case "j", "down":
		if art != nil && a.readerScroll < readerMaxScroll(*art, a.width, a.contentHeight()) {
			a.readerScroll++
		}
		return a, nil
	case "k", "up":
		if a.readerScroll > 0 {
			a.readerScroll--
		}
		return a, nil
	case "n", "right":
		if a.cursor < len(a.articles)-1 {
			a.cursor++
			a.readerScroll = 0
		}
		return a, nil
	case "p", "left":
		if a.cursor > 0 {
			a.cursor--
			a.readerScroll = 0
		}
		return a, nil
	case "o":
		if art != nil {
			return a, openBrowserCmd(art.PaperURL)
		}
		return a, nil
	case "h":
		a.mode = modeHome
		return a, nil
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeBrowse
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.cursor = 0
		a.reload()
		return a, nil
	case "enter":
		a.mode = modeBrowse
		a.searchInput.Blur()
		a.cursor = 0
		a.reload()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	a.cursor = 0
	a.reload()
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "c", "f":
		a.mode = modeBrowse
		a.filterBar.filterMode = false
		return a, nil
	case "left", "h":
		if a.filterBar.filterCursor > 0 {
			a.filterBar.filterCursor--
		}
		return a, nil
	case "right", "l":
		if a.filterBar.filterCursor < a.filterBar.tabCount()-1 {
			a.filterBar.filterCursor++
		}
		return a, nil
	case " ", "enter":
		a.filterBar.selectCurrent()
		a.featuredOnly = false
		a.cursor = 0
		a.mode = modeBrowse
		a.filterBar.filterMode = false
		a.reload()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx < a.filterBar.tabCount() {
			a.filterBar.selectAt(idx)
			a.featuredOnly = false
			a.cursor = 0
			a.reload()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) contentHeight() int {
	h := a.height - 3 // header + filter + status
	if h < 3 {
		h = 3
	}
	return h
}

func (a *App) withBottomBar(content string, hints string) string {
	bar := renderBottomBar(hints, a.width)
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  paperblog")
	}

	switch a.mode {
	case modeHome:
		return a.withBottomBar(renderHomeScreen(a.width, a.height), "f featured  e browse  q quit")
	case modeHelp:
		return a.withBottomBar(a.renderHelp(), "? close  h home  q quit")
	case modeNotFound:
		return a.withBottomBar(
			renderNotFound("article", a.notFoundKey, a.width, a.height),
			"e browse  h home  q quit",
		)
	case modeReader:
		if art := a.selected(); art != nil {
			return a.withBottomBar(
				renderReader(*art, a.width, a.contentHeight(), a.readerScroll),
				"j/k scroll  n/p article  o paper  esc back  q quit",
			)
		}
		a.mode = modeBrowse
	}

	// Layout calculations
	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := a.height - headerHeight - filterHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.35)
	previewWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLabel := "paperblog"
	if a.featuredOnly {
		headerLabel = "paperblog · featured"
	}
	headerLeft := headerStyle.Render(headerLabel)
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Filter bar (replaced by the search input while searching)
	filter := a.filterBar.render(a.width)
	if a.mode == modeSearch {
		filter = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(a.articles, a.cursor, contentHeight, innerListW)

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Preview pane
	innerPreviewW := previewWidth - 4
	previewContent := renderPreview(a.selected(), innerPreviewW, contentHeight, a.previewScroll)

	var previewPane string
	if a.focus == focusPreview {
		previewPane = previewPaneActiveStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	} else {
		previewPane = previewPaneStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)
	}

	// Join panes
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	// Status bar
	status := renderStatusBar(
		len(a.articles),
		a.filterBar.activeLabel(),
		a.width,
		a.mode == modeSearch,
	)

	// Error display
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("paperblog")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Navigate article list\n" +
		"  tab           Switch focus between list and preview\n" +
		"  enter         Read the selected article\n\n" +
		dim.Render("Reader") + "\n" +
		"  j/k           Scroll\n" +
		"  n/p           Next / previous article\n" +
		"  esc           Back to the list\n\n" +
		dim.Render("Actions") + "\n" +
		"  o             Open the paper in a browser\n" +
		"  /             Search articles\n" +
		"  c             Pick a category\n" +
		"  F             Toggle featured articles\n\n" +
		dim.Render("General") + "\n" +
		"  h             Go to home screen\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
