package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookdeck/internal/browse"
	"github.com/alexisbeaulieu97/bookdeck/internal/catalog"
	"github.com/alexisbeaulieu97/bookdeck/internal/components"
)

// View renders the current model state.
func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderOverlay(m.renderDetailBox())
	case ViewSearch:
		return m.renderOverlay(m.renderSearchBox())
	case ViewSettings:
		return m.renderOverlay(m.renderSettingsBox())
	case ViewHelp:
		return m.renderOverlay(m.renderHelpBox())
	default:
		return m.renderListView()
	}
}

// renderListView renders the paginated preview list.
func (m Model) renderListView() string {
	if m.width == 0 || m.height == 0 {
		return "Loading catalog..."
	}

	var content strings.Builder
	content.WriteString(m.renderHeader())
	content.WriteString("\n")
	content.WriteString(m.renderPreviewList())
	content.WriteString("\n")
	content.WriteString(m.renderFooter())

	return content.String()
}

// renderHeader renders the title bar with the match summary and the active
// filter, if any.
func (m Model) renderHeader() string {
	title := m.styles.title.Render("📚 Bookdeck")

	summary := fmt.Sprintf("%d of %d books", m.VisibleCount(), m.browser.MatchCount())
	if filter := describeCriteria(m.criteria, m.catalog); filter != "" {
		summary += "  ·  " + filter
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.styles.summary.Render(summary),
	)
	return m.styles.header.Width(m.width - 2).Render(header)
}

// describeCriteria summarises a non-open filter for the header.
func describeCriteria(c browse.Criteria, cat *catalog.Catalog) string {
	var parts []string
	if c.Title != "" {
		parts = append(parts, fmt.Sprintf("title ~ %q", c.Title))
	}
	if c.Genre != "" && c.Genre != browse.Any {
		name := c.Genre
		if resolved, ok := cat.GenreName(c.Genre); ok {
			name = resolved
		}
		parts = append(parts, "genre: "+name)
	}
	if c.Author != "" && c.Author != browse.Any {
		name := c.Author
		if resolved, ok := cat.AuthorName(c.Author); ok {
			name = resolved
		}
		parts = append(parts, "author: "+name)
	}
	return strings.Join(parts, ", ")
}

// renderPreviewList renders the visible preview cards inside the scroll
// window.
func (m Model) renderPreviewList() string {
	if len(m.visible) == 0 {
		message := "No books match the current filter.\n\nPress / to change the search."
		return m.styles.emptyState.Width(m.width - 2).Render(message)
	}

	window := m.listWindow()
	start := m.scrollOffset
	end := start + window
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var items []string
	if start > 0 {
		items = append(items, m.styles.scrollHint.Render("▲ more above"))
	}
	for i := start; i < end; i++ {
		items = append(items, m.renderPreview(m.visible[i], i == m.cursor))
	}
	if end < len(m.visible) {
		items = append(items, m.styles.scrollHint.Render("▼ more below"))
	}

	return components.Stack(items...)
}

// renderPreview renders one preview card: title, resolved author and a
// year/genre footer.
func (m Model) renderPreview(b catalog.Book, selected bool) string {
	author, ok := m.catalog.AuthorName(b.Author)
	if !ok {
		// Unresolved author ids are a catalog integrity gap, not an error;
		// show the raw id.
		author = b.Author
	}

	style := m.styles.card
	if selected {
		style = m.styles.cardActive
	}

	card := components.NewCard(components.CardData{
		Title:    b.Title,
		Subtitle: author,
		Footer:   fmt.Sprintf("%d · %s", b.Year(), m.genreNames(b)),
	})
	return card.WithStyle(style).Render()
}

func (m Model) genreNames(b catalog.Book) string {
	names := make([]string, 0, len(b.Genres))
	for _, id := range b.Genres {
		if name, ok := m.catalog.GenreName(id); ok {
			names = append(names, name)
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}

// renderFooter renders key hints and the show-more state.
func (m Model) renderFooter() string {
	showMore := fmt.Sprintf("m show %d more", m.lastPage.Remaining)
	if m.lastPage.Exhausted {
		showMore = "all matches shown"
	}

	hints := strings.Join([]string{
		"↑/↓ navigate",
		"enter details",
		showMore,
		"/ search",
		"s settings",
		"? help",
		"q quit",
	}, "  ·  ")

	return m.styles.footer.Width(m.width - 2).Render(hints)
}

// renderOverlay centres a modal box over the full terminal.
func (m Model) renderOverlay(box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderDetailBox renders the modal detail view for the selected book.
func (m Model) renderDetailBox() string {
	if !m.hasDetail {
		return m.styles.overlayBox.Render(m.styles.muted.Render("Nothing selected"))
	}
	b := m.detail

	author, ok := m.catalog.AuthorName(b.Author)
	if !ok {
		author = b.Author
	}

	width := m.width * 3 / 4
	if width < 40 {
		width = 40
	}
	if width > 72 {
		width = 72
	}
	textWidth := width - 10

	rows := []string{
		m.styles.overlayName.Render(b.Title),
		m.styles.detailLabel.Render("Author") + m.styles.detailValue.Render(author),
		m.styles.detailLabel.Render("Published") + m.styles.detailValue.Render(b.Published.Format("2 January 2006")),
		m.styles.detailLabel.Render("Genres") + m.styles.detailValue.Render(m.genreNames(b)),
	}
	if b.Image != "" {
		rows = append(rows, m.styles.detailLabel.Render("Cover")+m.styles.muted.Render(b.Image))
	}
	if b.Description != "" {
		rows = append(rows,
			"",
			m.styles.detailValue.Width(textWidth).Render(b.Description),
		)
	}
	rows = append(rows, "", m.styles.muted.Render("esc close"))

	return m.styles.overlayBox.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderSearchBox renders the search overlay.
func (m Model) renderSearchBox() string {
	theme := m.themes.Theme()

	titleLabel := lipgloss.NewStyle().Foreground(theme.Palette.Surface.Muted).Width(8).Render("Title")

	rows := []string{
		m.styles.overlayName.Render("Search the catalog"),
		titleLabel + " " + m.titleInput.View(),
		m.genreSel.View(theme, m.focus == fieldGenre),
		m.authorSel.View(theme, m.focus == fieldAuthor),
		"",
		m.styles.muted.Render("tab next field · enter apply · ctrl+r clear · esc cancel"),
	}

	return m.styles.overlayBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderSettingsBox renders the settings overlay.
func (m Model) renderSettingsBox() string {
	theme := m.themes.Theme()

	rows := []string{
		m.styles.overlayName.Render("Settings"),
		m.themeSel.View(theme, true),
		"",
		m.styles.muted.Render("←/→ choose · enter apply · esc cancel"),
	}

	return m.styles.overlayBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHelpBox renders the key binding overlay.
func (m Model) renderHelpBox() string {
	bindings := []struct {
		key  string
		desc string
	}{
		{"↑/k ↓/j", "move between previews"},
		{"enter", "open detail view"},
		{"m", "show more results"},
		{"/", "search by title, genre, author"},
		{"s", "settings (day/night theme)"},
		{"esc", "close overlay"},
		{"q", "quit"},
	}

	rows := []string{m.styles.overlayName.Render("Keys")}
	for _, b := range bindings {
		rows = append(rows, m.styles.helpKey.Render(b.key)+m.styles.helpDesc.Render(b.desc))
	}

	return m.styles.overlayBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
