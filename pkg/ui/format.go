package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how command results are rendered
type Format int

const (
	// FormatAuto resolves to FormatTerminal or FormatText for the output
	FormatAuto Format = iota
	// FormatTerminal renders styled, colored output
	FormatTerminal
	// FormatText renders the same layout without styling
	FormatText
	// FormatJSON encodes results as indented JSON
	FormatJSON
	// FormatYAML encodes results as YAML documents
	FormatYAML
)

var formatNames = [...]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
}

// formatAliases are accepted by ParseFormat next to the canonical names.
// "table" is the config file's name for human output.
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"table":    FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
	"yml":      FormatYAML,
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "unknown"
	}
	return formatNames[f]
}

// Structured reports whether f is a machine-readable encoding
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// FormatNames returns the canonical format names in declaration order
func FormatNames() []string {
	return append([]string(nil), formatNames[:]...)
}

// ParseFormat resolves a format name or alias, ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", s).
		WithDetail("valid", FormatNames())
}

// DetectFormat picks terminal output only for a color-capable terminal
// and plain text for everything else, including NO_COLOR.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" || !IsTerminal(w) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// IsTerminal reports whether v is backed by an interactive terminal.
// Values without a file descriptor never are.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
