package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Mode identifies one of the two theme states.
type Mode int

const (
	ModeDay Mode = iota
	ModeNight
)

func (m Mode) String() string {
	if m == ModeNight {
		return "night"
	}
	return "day"
}

// ParseMode converts a user-supplied mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "day", "light":
		return ModeDay, nil
	case "night", "dark":
		return ModeNight, nil
	default:
		return ModeDay, fmt.Errorf("unknown theme %q (want day or night)", s)
	}
}

// DetectMode resolves the startup theme from the terminal's reported
// background: a dark background selects night, anything else day.
func DetectMode() Mode {
	if lipgloss.HasDarkBackground() {
		return ModeNight
	}
	return ModeDay
}

// ColourSet is a semantic colour slot: the colour itself, the colour for
// text drawn on it, and a muted variant.
type ColourSet struct {
	Base  lipgloss.Color
	On    lipgloss.Color
	Muted lipgloss.Color
}

// Palette holds the semantic colour slots the browser styles draw from. The
// day and night palettes swap the dark and light triplets between foreground
// and surface roles.
type Palette struct {
	Surface ColourSet
	Primary ColourSet
	Accent  ColourSet
	Danger  ColourSet
}

// Theme is the complete styling state for one mode.
type Theme struct {
	Mode    Mode
	Palette Palette
}

const (
	// The two triplets the modes swap between surface and text roles.
	darkBase  = "#10141f"
	darkSoft  = "#1e2433"
	darkMuted = "#3a4258"

	lightBase  = "#f6f1e7"
	lightSoft  = "#ece4d4"
	lightMuted = "#c9bfa8"
)

// DayTheme returns the light theme: dark text triplet on light surfaces.
func DayTheme() Theme {
	return Theme{
		Mode: ModeDay,
		Palette: Palette{
			Surface: ColourSet{
				Base:  lipgloss.Color(lightBase),
				On:    lipgloss.Color(darkBase),
				Muted: lipgloss.Color(lightMuted),
			},
			Primary: ColourSet{
				Base:  lipgloss.Color("#1d4ed8"),
				On:    lipgloss.Color(lightBase),
				Muted: lipgloss.Color("#93b4f5"),
			},
			Accent: ColourSet{
				Base:  lipgloss.Color("#9a3412"),
				On:    lipgloss.Color(lightBase),
				Muted: lipgloss.Color("#d9a38a"),
			},
			Danger: ColourSet{
				Base:  lipgloss.Color("#b91c1c"),
				On:    lipgloss.Color(lightBase),
				Muted: lipgloss.Color("#e0a5a5"),
			},
		},
	}
}

// NightTheme returns the dark theme: light text triplet on dark surfaces.
func NightTheme() Theme {
	return Theme{
		Mode: ModeNight,
		Palette: Palette{
			Surface: ColourSet{
				Base:  lipgloss.Color(darkBase),
				On:    lipgloss.Color(lightBase),
				Muted: lipgloss.Color(darkMuted),
			},
			Primary: ColourSet{
				Base:  lipgloss.Color("#60a5fa"),
				On:    lipgloss.Color(darkBase),
				Muted: lipgloss.Color("#2c4a82"),
			},
			Accent: ColourSet{
				Base:  lipgloss.Color("#fdba74"),
				On:    lipgloss.Color(darkBase),
				Muted: lipgloss.Color("#8a5a34"),
			},
			Danger: ColourSet{
				Base:  lipgloss.Color("#f87171"),
				On:    lipgloss.Color(darkBase),
				Muted: lipgloss.Color("#7a3030"),
			},
		},
	}
}

// ThemeFor returns the theme for the given mode.
func ThemeFor(mode Mode) Theme {
	if mode == ModeNight {
		return NightTheme()
	}
	return DayTheme()
}

// ThemeManager coordinates access to the active theme.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager starting in the given mode.
func NewThemeManager(mode Mode) *ThemeManager {
	return &ThemeManager{theme: ThemeFor(mode)}
}

// SetMode switches the active theme unconditionally.
func (m *ThemeManager) SetMode(mode Mode) {
	m.mu.Lock()
	m.theme = ThemeFor(mode)
	m.mu.Unlock()
}

// Theme returns the active theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Mode returns the active mode.
func (m *ThemeManager) Mode() Mode {
	return m.Theme().Mode
}

var defaultThemeManager = NewThemeManager(ModeDay)

// SetMode switches the global theme.
func SetMode(mode Mode) {
	defaultThemeManager.SetMode(mode)
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}

// CurrentMode returns the current global mode.
func CurrentMode() Mode {
	return defaultThemeManager.Mode()
}
