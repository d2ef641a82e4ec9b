package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card component.
type CardStyle struct {
	// BorderStyle applies to the card's outer frame
	BorderStyle lipgloss.Style
	// TitleStyle applies to the card's title line
	TitleStyle lipgloss.Style
	// SubtitleStyle applies to the line under the title
	SubtitleStyle lipgloss.Style
	// ContentStyle applies to the card's body lines
	ContentStyle lipgloss.Style
	// FooterStyle applies to the trailing metadata line
	FooterStyle lipgloss.Style
	// Width is the maximum width of the card in characters
	Width int
}

// DefaultCardStyle returns a card style built from the current theme.
func DefaultCardStyle() CardStyle {
	return CardStyleFor(GetTheme())
}

// CardStyleFor returns a card style built from the given theme.
func CardStyleFor(theme Theme) CardStyle {
	p := theme.Palette
	return CardStyle{
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Surface.Muted).
			Padding(0, 1),
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary.Base),
		SubtitleStyle: lipgloss.NewStyle().
			Foreground(p.Accent.Base),
		ContentStyle: lipgloss.NewStyle().
			Foreground(p.Surface.On),
		FooterStyle: lipgloss.NewStyle().
			Foreground(p.Surface.Muted),
		Width: 60,
	}
}

// CardData represents the content of a card.
type CardData struct {
	// Title is the main heading
	Title string
	// Subtitle is rendered under the title (author name for previews)
	Subtitle string
	// Lines is the body content
	Lines []string
	// Footer is a trailing metadata line
	Footer string
}

// Card is a bordered block of styled text. It renders detached; callers place
// the result with Stack or a layout join.
type Card struct {
	data  CardData
	style CardStyle
}

// NewCard creates a new card with the given data and the default style.
func NewCard(data CardData) *Card {
	return &Card{data: data, style: DefaultCardStyle()}
}

// WithStyle sets a custom style for the card.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth sets the card width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithBorderStyle sets a custom frame style.
func (c *Card) WithBorderStyle(style lipgloss.Style) *Card {
	c.style.BorderStyle = style
	return c
}

// Render produces the card as a detached block.
func (c *Card) Render() string {
	inner := c.style.Width - 4 // frame and padding
	if inner < 10 {
		inner = 10
	}

	var rows []string
	if c.data.Title != "" {
		rows = append(rows, c.style.TitleStyle.Render(truncate(c.data.Title, inner)))
	}
	if c.data.Subtitle != "" {
		rows = append(rows, c.style.SubtitleStyle.Render(truncate(c.data.Subtitle, inner)))
	}
	for _, line := range c.data.Lines {
		rows = append(rows, c.style.ContentStyle.Width(inner).Render(line))
	}
	if c.data.Footer != "" {
		rows = append(rows, c.style.FooterStyle.Render(truncate(c.data.Footer, inner)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return c.style.BorderStyle.Width(c.style.Width - 2).Render(body)
}

// Stack joins rendered elements vertically in one batch.
func Stack(elements ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, elements...)
}

func truncate(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= 3 {
		return s
	}
	for len(runes) > 3 && lipgloss.Width(string(runes))+1 > max {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
