package style

import "github.com/charmbracelet/lipgloss"

// Palette holds the adaptive colors every style is built from. Each
// color has a light and a dark terminal variant.
type Palette struct {
	Heading lipgloss.AdaptiveColor
	Text    lipgloss.AdaptiveColor
	Dim     lipgloss.AdaptiveColor
	Accent  lipgloss.AdaptiveColor
	Path    lipgloss.AdaptiveColor
	Good    lipgloss.AdaptiveColor
	Bad     lipgloss.AdaptiveColor
	Caution lipgloss.AdaptiveColor
	Note    lipgloss.AdaptiveColor

	// Livery and Normal mark the two settings modes
	Livery lipgloss.AdaptiveColor
	Normal lipgloss.AdaptiveColor
}

// Colors is the palette the package styles use
var Colors = Palette{
	Heading: lipgloss.AdaptiveColor{Light: "#1B1F24", Dark: "#F3F4F6"},
	Text:    lipgloss.AdaptiveColor{Light: "#3F4650", Dark: "#DCE0E5"},
	Dim:     lipgloss.AdaptiveColor{Light: "#737B86", Dark: "#9AA3AD"},
	Accent:  lipgloss.AdaptiveColor{Light: "#C8401E", Dark: "#FF7A4D"},
	Path:    lipgloss.AdaptiveColor{Light: "#5A6470", Dark: "#B3BCC6"},
	Good:    lipgloss.AdaptiveColor{Light: "#1E8E3E", Dark: "#5FD98B"},
	Bad:     lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6F6F"},
	Caution: lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6C453"},
	Note:    lipgloss.AdaptiveColor{Light: "#1479A8", Dark: "#5CC8F0"},
	Livery:  lipgloss.AdaptiveColor{Light: "#7B3FE4", Dark: "#B08CFF"},
	Normal:  lipgloss.AdaptiveColor{Light: "#0B7FA8", Dark: "#4FC3E8"},
}
