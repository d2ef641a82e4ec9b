package browser

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookdeck/internal/components"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(key(k))
		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}
	return m
}

func TestWindowSizeRebuildsLayout(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestEnterOpensAndClosesDetail(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "enter")
	assert.Equal(t, ViewDetail, m.GetViewMode())
	assert.Equal(t, "Pride and Prejudice", m.detail.Title)

	m = press(t, m, "esc")
	assert.Equal(t, ViewList, m.GetViewMode())
	assert.False(t, m.hasDetail)
}

func TestShowMoreKey(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "m")
	assert.Equal(t, 4, m.VisibleCount())

	m = press(t, m, "m", "m", "m")
	assert.Equal(t, 5, m.VisibleCount())
}

func TestSearchFlowFiltersAndResets(t *testing.T) {
	m := newTestModel(t)

	// Open search, pick the scifi genre (first option after "any"... second
	// press lands on scifi), submit.
	m = press(t, m, "/")
	assert.Equal(t, ViewSearch, m.GetViewMode())

	m = press(t, m, "tab", "right", "right", "enter")
	assert.Equal(t, ViewList, m.GetViewMode())
	assert.Equal(t, 2, m.VisibleCount())

	book, _ := m.SelectedBook()
	assert.Equal(t, "b2", book.ID)
	assert.True(t, m.lastPage.Exhausted)
}

func TestSearchTitleTyping(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/", "e", "m", "m", "a", "enter")
	assert.Equal(t, 1, m.VisibleCount())

	book, _ := m.SelectedBook()
	assert.Equal(t, "b3", book.ID)
}

func TestSearchEscCancelsWithoutFiltering(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "/", "tab", "right", "esc")
	assert.Equal(t, ViewList, m.GetViewMode())
	// Engine untouched: still the open filter's first page.
	assert.Equal(t, 2, m.VisibleCount())
	assert.Equal(t, 5, m.browser.MatchCount())
}

func TestNewFilterResetsPagination(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "m", "m") // reveal everything
	assert.Equal(t, 5, m.VisibleCount())

	m = press(t, m, "/", "tab", "right", "enter") // genre: romance
	assert.Equal(t, 2, m.VisibleCount())
	assert.Equal(t, 3, m.browser.MatchCount())
	assert.Equal(t, 1, m.lastPage.Remaining)
}

func TestSettingsAppliesTheme(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, components.ModeDay, m.Theme())

	m = press(t, m, "s")
	assert.Equal(t, ViewSettings, m.GetViewMode())

	m = press(t, m, "right", "enter")
	assert.Equal(t, ViewList, m.GetViewMode())
	assert.Equal(t, components.ModeNight, m.Theme())
}

func TestSettingsEscKeepsTheme(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "s", "right", "esc")
	assert.Equal(t, components.ModeDay, m.Theme())

	// The selector snapped back; re-opening and applying keeps day.
	m = press(t, m, "s", "enter")
	assert.Equal(t, components.ModeDay, m.Theme())
}

func TestExplicitSelectionOverridesDetectedTheme(t *testing.T) {
	// Startup signal said night; the user picks day anyway.
	m := NewModel(testCatalog(t), components.ModeNight, nil)
	require.Equal(t, components.ModeNight, m.Theme())

	m = press(t, m, "s", "left", "enter")
	assert.Equal(t, components.ModeDay, m.Theme())
}

func TestHelpOverlayReturnsToPreviousView(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.GetViewMode())
	m = press(t, m, "esc")
	assert.Equal(t, ViewList, m.GetViewMode())

	m = press(t, m, "enter", "?")
	assert.Equal(t, ViewHelp, m.GetViewMode())
	m = press(t, m, "esc")
	assert.Equal(t, ViewDetail, m.GetViewMode())
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
