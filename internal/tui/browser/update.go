package browser

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookdeck/internal/components"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styles = newStyleSet(m.themes.Theme(), m.width)
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress dispatches keyboard input based on the current view mode.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewSearch:
		return m.handleSearchKeys(msg)
	case ViewSettings:
		return m.handleSettingsKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleListKeys handles keys in the preview list.
func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()
		return m, nil

	case "down", "j":
		m.MoveCursorDown()
		return m, nil

	// Reveal the next page. Ignored once the match set is exhausted; the
	// footer renders the action as unavailable in that state.
	case "m":
		m.showMore()
		return m, nil

	case "enter", " ":
		m.openDetail()
		return m, nil

	case "/":
		m.viewMode = ViewSearch
		m.focus = fieldTitle
		cmd := m.titleInput.Focus()
		return m, cmd

	case "s":
		m.viewMode = ViewSettings
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// handleDetailKeys handles keys in the detail overlay.
func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "backspace", "enter":
		m.hasDetail = false
		m.viewMode = ViewList
		return m, nil

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}
	return m, nil
}

// handleSearchKeys handles keys in the search overlay. Tab cycles the three
// controls; enter submits the filter; esc cancels without touching the
// engine.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.titleInput.Blur()
		m.viewMode = ViewList
		return m, nil

	case "enter":
		m.titleInput.Blur()
		m.applyCriteria()
		m.viewMode = ViewList
		return m, nil

	case "tab", "down":
		m.setSearchFocus((m.focus + 1) % searchFieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setSearchFocus((m.focus + searchFieldCount - 1) % searchFieldCount)
		return m, nil

	case "left":
		switch m.focus {
		case fieldGenre:
			m.genreSel.Prev()
			return m, nil
		case fieldAuthor:
			m.authorSel.Prev()
			return m, nil
		}

	case "right":
		switch m.focus {
		case fieldGenre:
			m.genreSel.Next()
			return m, nil
		case fieldAuthor:
			m.authorSel.Next()
			return m, nil
		}

	case "ctrl+r":
		m.titleInput.Reset()
		m.genreSel.Reset()
		m.authorSel.Reset()
		return m, nil
	}

	if m.focus == fieldTitle {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setSearchFocus(f searchField) {
	m.focus = f
	if f == fieldTitle {
		m.titleInput.Focus()
	} else {
		m.titleInput.Blur()
	}
}

// handleSettingsKeys handles keys in the settings overlay.
func (m Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Cancel: snap the selector back to the active theme.
		m.syncThemeSelector()
		m.viewMode = ViewList
		return m, nil

	case "left", "right", "tab", "up", "down":
		if msg.String() == "left" || msg.String() == "up" {
			m.themeSel.Prev()
		} else {
			m.themeSel.Next()
		}
		return m, nil

	case "enter":
		mode, err := components.ParseMode(m.themeSel.Selected().ID)
		if err == nil {
			m.setTheme(mode)
		}
		m.viewMode = ViewList
		return m, nil
	}
	return m, nil
}

// syncThemeSelector aligns the settings selector with the active theme.
func (m *Model) syncThemeSelector() {
	m.themeSel.Reset()
	if m.themes.Mode() == components.ModeNight {
		m.themeSel.Next()
	}
}

// handleHelpKeys handles keys in the help overlay.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q", "enter":
		if m.hasDetail {
			m.viewMode = ViewDetail
		} else {
			m.viewMode = ViewList
		}
		return m, nil
	}
	return m, nil
}
