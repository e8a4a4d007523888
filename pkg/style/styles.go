package style

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(Colors.Heading).Bold(true)
	TextStyle    = lipgloss.NewStyle().Foreground(Colors.Text)
	MutedStyle   = lipgloss.NewStyle().Foreground(Colors.Dim)
	CodeStyle    = lipgloss.NewStyle().Foreground(Colors.Accent)
	PathStyle    = lipgloss.NewStyle().Foreground(Colors.Path).Italic(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Colors.Good).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Colors.Bad).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(Colors.Caution).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(Colors.Note)

	LiveryModeStyle = lipgloss.NewStyle().Foreground(Colors.Livery).Bold(true)
	NormalModeStyle = lipgloss.NewStyle().Foreground(Colors.Normal).Bold(true)
)

// Line indicators
const (
	SuccessIndicator = "✓"
	ErrorIndicator   = "✗"
	WarningIndicator = "!"
	InfoIndicator    = "•"
	SkipIndicator    = "○"
)
