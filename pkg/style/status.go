package style

import (
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// ImportStatusStyle returns the style and indicator for an import outcome
func ImportStatusStyle(status types.ImportStatus) (lipgloss.Style, string) {
	switch status {
	case types.ImportWritten, types.ImportRenamed:
		return SuccessStyle, SuccessIndicator
	case types.ImportPartial:
		return WarningStyle, WarningIndicator
	case types.ImportUpToDate:
		return InfoStyle, InfoIndicator
	case types.ImportFailed:
		return ErrorStyle, ErrorIndicator
	default:
		return MutedStyle, SkipIndicator
	}
}

// ModeStyle returns the style of a livery mode name
func ModeStyle(mode string) lipgloss.Style {
	if mode == "livery" {
		return LiveryModeStyle
	}
	return NormalModeStyle
}
