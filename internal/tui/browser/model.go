package browser

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookdeck/internal/browse"
	"github.com/alexisbeaulieu97/bookdeck/internal/catalog"
	"github.com/alexisbeaulieu97/bookdeck/internal/components"
	"github.com/alexisbeaulieu97/bookdeck/internal/logger"
)

// Model is the interactive browser. It coordinates the filter/paginate
// engine, the theme manager and the overlay controls; all of its listeners
// are bound once here and live for the whole session.
type Model struct {
	browser *browse.Browser
	catalog *catalog.Catalog
	log     *logger.Logger

	// UI state
	viewMode     ViewMode
	cursor       int
	scrollOffset int
	visible      []catalog.Book
	lastPage     browse.Page
	criteria     browse.Criteria

	// Search overlay controls
	titleInput textinput.Model
	genreSel   *components.Selector
	authorSel  *components.Selector
	focus      searchField

	// Settings overlay control
	themeSel *components.Selector

	// Detail overlay
	detail    catalog.Book
	hasDetail bool

	// Theme
	themes *components.ThemeManager
	styles styleSet

	// Dimensions
	width  int
	height int
}

// NewModel creates a browser model over the given catalog, starting in the
// given theme mode with the open filter applied.
func NewModel(c *catalog.Catalog, mode components.Mode, log *logger.Logger) Model {
	engine := browse.NewBrowser(c)

	ti := textinput.New()
	ti.Placeholder = "Title contains..."
	ti.CharLimit = 120
	ti.Width = 32

	genres := make([]components.Option, 0, len(c.Genres()))
	for _, g := range c.Genres() {
		genres = append(genres, components.Option{ID: g.ID, Label: g.Name})
	}
	authors := make([]components.Option, 0, len(c.Authors()))
	for _, a := range c.Authors() {
		authors = append(authors, components.Option{ID: a.ID, Label: a.Name})
	}

	themeSel := components.NewSelector("Theme", components.ModeDay.String(), "Day", []components.Option{
		{ID: components.ModeNight.String(), Label: "Night"},
	})
	if mode == components.ModeNight {
		themeSel.Next()
	}

	themes := components.NewThemeManager(mode)

	m := Model{
		browser:    engine,
		catalog:    c,
		log:        log,
		viewMode:   ViewList,
		titleInput: ti,
		genreSel:   components.NewSelector("Genre", browse.Any, "All Genres", genres),
		authorSel:  components.NewSelector("Author", browse.Any, "All Authors", authors),
		themeSel:   themeSel,
		themes:     themes,
		width:      80,
		height:     24,
	}
	m.styles = newStyleSet(themes.Theme(), m.width)

	// The engine starts with the open filter applied; mirror its first page.
	m.lastPage = engine.ApplyFilter(browse.Criteria{})
	m.visible = m.lastPage.Books
	m.criteria = browse.Criteria{}.Normalize()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedBook returns the book under the cursor.
func (m *Model) SelectedBook() (catalog.Book, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return catalog.Book{}, false
	}
	return m.visible[m.cursor], true
}

// Theme returns the active theme mode.
func (m *Model) Theme() components.Mode {
	return m.themes.Mode()
}

// GetViewMode returns the current view mode.
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// VisibleCount returns how many previews are currently revealed.
func (m *Model) VisibleCount() int {
	return len(m.visible)
}

// MoveCursorUp moves the cursor up with wrapping.
func (m *Model) MoveCursorUp() {
	if len(m.visible) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.visible) - 1
	}
	m.ensureCursorVisible()
}

// MoveCursorDown moves the cursor down with wrapping.
func (m *Model) MoveCursorDown() {
	if len(m.visible) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// listWindow returns how many preview cards fit on screen at once.
func (m *Model) listWindow() int {
	rows := (m.height - chromeHeight) / cardHeight
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) ensureCursorVisible() {
	window := m.listWindow()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+window {
		m.scrollOffset = m.cursor - window + 1
	}
}

// applyCriteria runs the current overlay control values through the engine
// and resets the rendered window.
func (m *Model) applyCriteria() {
	criteria := browse.Criteria{
		Title:  m.titleInput.Value(),
		Genre:  m.genreSel.Selected().ID,
		Author: m.authorSel.Selected().ID,
	}

	m.lastPage = m.browser.ApplyFilter(criteria)
	m.criteria = criteria.Normalize()
	m.visible = m.lastPage.Books
	m.cursor = 0
	m.scrollOffset = 0

	if m.log != nil {
		m.log.WithFields(map[string]any{
			"matches": m.browser.MatchCount(),
			"title":   m.criteria.Title,
			"genre":   m.criteria.Genre,
			"author":  m.criteria.Author,
		}).Debug("filter applied")
	}
}

// showMore reveals the next page. A no-op once exhausted; the footer renders
// the action as disabled in that state.
func (m *Model) showMore() {
	if m.lastPage.Exhausted {
		return
	}
	m.lastPage = m.browser.AdvancePage()
	m.visible = append(m.visible, m.lastPage.Books...)
}

// openDetail resolves the cursor's book through the engine; a lookup miss
// leaves the list untouched.
func (m *Model) openDetail() {
	selected, ok := m.SelectedBook()
	if !ok {
		return
	}
	book, found := m.browser.LookupByID(selected.ID)
	if !found {
		return
	}
	m.detail = book
	m.hasDetail = true
	m.viewMode = ViewDetail
}

// setTheme switches the theme unconditionally and rebuilds every style.
func (m *Model) setTheme(mode components.Mode) {
	m.themes.SetMode(mode)
	m.styles = newStyleSet(m.themes.Theme(), m.width)
}
