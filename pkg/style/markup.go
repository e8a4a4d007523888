package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type markupTag struct {
	pattern *regexp.Regexp
	style   lipgloss.Style
}

// MarkupParser renders [tag]text[/tag] markup with lipgloss styles
type MarkupParser struct {
	tags  map[string]markupTag
	plain bool
}

// NewMarkupParser creates a parser with the default tags. A plain parser
// strips the tags without styling.
func NewMarkupParser(plain bool) *MarkupParser {
	p := &MarkupParser{tags: make(map[string]markupTag), plain: plain}
	for tag, style := range map[string]lipgloss.Style{
		"title":   TitleStyle,
		"text":    TextStyle,
		"success": SuccessStyle,
		"error":   ErrorStyle,
		"warning": WarningStyle,
		"info":    InfoStyle,
		"code":    CodeStyle,
		"path":    PathStyle,
		"muted":   MutedStyle,
		"bold":    lipgloss.NewStyle().Bold(true),
		"livery":  LiveryModeStyle,
		"normal":  NormalModeStyle,
	} {
		p.AddStyle(tag, style)
	}
	return p
}

// AddStyle registers a tag
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.tags[tag] = markupTag{
		pattern: regexp.MustCompile(`\[` + regexp.QuoteMeta(tag) + `\](.*?)\[/` + regexp.QuoteMeta(tag) + `\]`),
		style:   style,
	}
}

// Render replaces every known tag pair, innermost first
func (p *MarkupParser) Render(text string) string {
	result := text
	for {
		before := result
		for _, t := range p.tags {
			result = t.pattern.ReplaceAllStringFunc(result, func(match string) string {
				content := t.pattern.FindStringSubmatch(match)[1]
				if p.plain {
					return content
				}
				return t.style.Render(content)
			})
		}
		if result == before {
			return result
		}
	}
}

// RenderTemplate substitutes {{key}} placeholders and then renders markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	result := template
	for key, value := range vars {
		result = strings.ReplaceAll(result, "{{"+key+"}}", value)
	}
	return p.Render(result)
}
