package style

import (
	"strings"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestMarkupParser_Plain(t *testing.T) {
	p := NewMarkupParser(true)

	assert.Equal(t, "Imported gt3 from a.zip", p.Render("Imported [bold]gt3[/bold] from [path]a.zip[/path]"))
	assert.Equal(t, "nested", p.Render("[success][bold]nested[/bold][/success]"))
	assert.Equal(t, "[unknown]x[/unknown]", p.Render("[unknown]x[/unknown]"))
}

func TestMarkupParser_RenderTemplate(t *testing.T) {
	p := NewMarkupParser(true)
	got := p.RenderTemplate("Mode is now [livery]{{mode}}[/livery]", map[string]string{"mode": "livery"})
	assert.Equal(t, "Mode is now livery", got)
}

func TestMarkupParser_StyledKeepsContent(t *testing.T) {
	p := NewMarkupParser(false)
	assert.Contains(t, p.Render("[error]boom[/error]"), "boom")
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"Livery", "Assets"},
		[][]string{{"gt3", "12"}, {"gt4"}},
		[]ColumnAlignment{AlignLeft, AlignRight},
		true,
	)

	lines := strings.Split(out, "\n")
	assert.Contains(t, out, "LIVERY")
	assert.Contains(t, out, "gt3")
	assert.Len(t, lines, 6)
	assert.Empty(t, RenderTable(nil, nil, nil, true))
}

func TestImportStatusStyle(t *testing.T) {
	tests := []struct {
		status    types.ImportStatus
		indicator string
	}{
		{types.ImportWritten, SuccessIndicator},
		{types.ImportRenamed, SuccessIndicator},
		{types.ImportPartial, WarningIndicator},
		{types.ImportUpToDate, InfoIndicator},
		{types.ImportSkipped, SkipIndicator},
		{types.ImportFailed, ErrorIndicator},
	}
	for _, tt := range tests {
		_, indicator := ImportStatusStyle(tt.status)
		assert.Equal(t, tt.indicator, indicator, string(tt.status))
	}
}

func TestModeStyle(t *testing.T) {
	assert.Equal(t, LiveryModeStyle.Render("x"), ModeStyle("livery").Render("x"))
	assert.Equal(t, NormalModeStyle.Render("x"), ModeStyle("normal").Render("x"))
}
