package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Option is one selectable entry.
type Option struct {
	ID    string
	Label string
}

// Selector is a cycling option control: a default entry first, followed by
// the supplied options in their given order.
type Selector struct {
	label   string
	options []Option
	index   int
}

// NewSelector builds a selector. The default option (with the given id and
// label) always comes first; the remaining options keep their order.
func NewSelector(label, defaultID, defaultLabel string, options []Option) *Selector {
	all := make([]Option, 0, len(options)+1)
	all = append(all, Option{ID: defaultID, Label: defaultLabel})
	all = append(all, options...)
	return &Selector{label: label, options: all}
}

// Next advances to the following option, wrapping at the end.
func (s *Selector) Next() {
	s.index = (s.index + 1) % len(s.options)
}

// Prev moves to the preceding option, wrapping at the start.
func (s *Selector) Prev() {
	s.index--
	if s.index < 0 {
		s.index = len(s.options) - 1
	}
}

// Reset returns the selector to the default option.
func (s *Selector) Reset() {
	s.index = 0
}

// Selected returns the current option.
func (s *Selector) Selected() Option {
	return s.options[s.index]
}

// Options returns the full option sequence, default first.
func (s *Selector) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Label returns the selector's caption.
func (s *Selector) Label() string {
	return s.label
}

// View renders the selector as a single line. When focused the current value
// is highlighted and flanked with cycle arrows.
func (s *Selector) View(theme Theme, focused bool) string {
	p := theme.Palette

	labelStyle := lipgloss.NewStyle().Foreground(p.Surface.Muted).Width(8)
	valueStyle := lipgloss.NewStyle().Foreground(p.Surface.On)
	if focused {
		valueStyle = lipgloss.NewStyle().
			Foreground(p.Primary.On).
			Background(p.Primary.Base).
			Padding(0, 1)
	}

	value := s.Selected().Label
	if focused {
		value = "◂ " + value + " ▸"
	}
	return labelStyle.Render(s.label) + " " + valueStyle.Render(value)
}
