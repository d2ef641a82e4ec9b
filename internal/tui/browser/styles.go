package browser

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookdeck/internal/components"
)

const (
	// cardHeight is the rendered height of one preview card, frame included.
	cardHeight = 5
	// chromeHeight reserves rows for the header and footer around the list.
	chromeHeight = 8

	minCardWidth = 30
	maxCardWidth = 76
)

// styleSet holds every style the browser renders with, built from the active
// theme. Rebuilt whenever the theme or the terminal width changes.
type styleSet struct {
	title       lipgloss.Style
	summary     lipgloss.Style
	header      lipgloss.Style
	footer      lipgloss.Style
	muted       lipgloss.Style
	emptyState  lipgloss.Style
	scrollHint  lipgloss.Style
	card        components.CardStyle
	cardActive  components.CardStyle
	overlayBox  lipgloss.Style
	overlayName lipgloss.Style
	helpKey     lipgloss.Style
	helpDesc    lipgloss.Style
	detailLabel lipgloss.Style
	detailValue lipgloss.Style
}

func newStyleSet(theme components.Theme, width int) styleSet {
	p := theme.Palette

	cardWidth := width - 4
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}

	card := components.CardStyleFor(theme)
	card.Width = cardWidth

	cardActive := card
	cardActive.BorderStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.Primary.Base).
		Padding(0, 1)
	cardActive.TitleStyle = cardActive.TitleStyle.Foreground(p.Accent.Base)

	return styleSet{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			PaddingLeft(2).
			PaddingRight(2),

		summary: lipgloss.NewStyle().
			Foreground(p.Surface.On).
			PaddingLeft(2),

		header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Surface.Muted).
			PaddingBottom(1).
			MarginBottom(1),

		footer: lipgloss.NewStyle().
			Foreground(p.Surface.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Surface.Muted).
			PaddingTop(1).
			MarginTop(1),

		muted: lipgloss.NewStyle().
			Foreground(p.Surface.Muted),

		emptyState: lipgloss.NewStyle().
			Foreground(p.Surface.Muted).
			Italic(true).
			Align(lipgloss.Center).
			PaddingTop(4).
			PaddingBottom(4),

		scrollHint: lipgloss.NewStyle().
			Foreground(p.Surface.Muted),

		card:       card,
		cardActive: cardActive,

		overlayBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary.Base).
			Background(p.Surface.Base).
			Padding(1, 3),

		overlayName: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base).
			MarginBottom(1),

		helpKey: lipgloss.NewStyle().
			Foreground(p.Accent.Base).
			Bold(true).
			Width(12),

		helpDesc: lipgloss.NewStyle().
			Foreground(p.Surface.On),

		detailLabel: lipgloss.NewStyle().
			Foreground(p.Surface.Muted).
			Bold(true).
			Width(12),

		detailValue: lipgloss.NewStyle().
			Foreground(p.Surface.On),
	}
}
