package base

import "github.com/charmbracelet/lipgloss"

// ColorPalette is the set of colours shared by the highlighter and the
// interactive view.
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	Keyword  lipgloss.Color
	String   lipgloss.Color
	Number   lipgloss.Color
	Operator lipgloss.Color
	Punct    lipgloss.Color
	Comment  lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Accent:    lipgloss.Color("#10B981"), // Emerald
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate

	Keyword:  lipgloss.Color("#FF79C6"),
	String:   lipgloss.Color("#F1FA8C"),
	Number:   lipgloss.Color("#BD93F9"),
	Operator: lipgloss.Color("#FFB86C"),
	Punct:    lipgloss.Color("#8BE9FD"),
	Comment:  lipgloss.Color("#6272A4"),
}

// LightPalette is used when the terminal has a light background.
var LightPalette = ColorPalette{
	Primary:   lipgloss.Color("#5A56E0"),
	Secondary: lipgloss.Color("#EE6FF8"),
	Accent:    lipgloss.Color("#02BA84"),
	Error:     lipgloss.Color("#FF5F56"),
	Muted:     lipgloss.Color("#9B9B9B"),

	Keyword:  lipgloss.Color("#C2185B"),
	String:   lipgloss.Color("#8D6E00"),
	Number:   lipgloss.Color("#6A1B9A"),
	Operator: lipgloss.Color("#E65100"),
	Punct:    lipgloss.Color("#00838F"),
	Comment:  lipgloss.Color("#78909C"),
}

// Palette picks the palette matching the terminal background.
func Palette() ColorPalette {
	if lipgloss.HasDarkBackground() {
		return DarkPalette
	}
	return LightPalette
}
