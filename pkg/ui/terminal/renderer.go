// Package terminal provides human-readable output, styled for color terminals
// or plain for pipes and NO_COLOR.
package terminal

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/arthur-debert/skinmanager/pkg/style"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Renderer writes results as text, tables and status lines
type Renderer struct {
	output io.Writer
	plain  bool
	markup *style.MarkupParser
}

// New creates a renderer. A plain renderer emits no escape sequences.
func New(w io.Writer, plain bool) *Renderer {
	return &Renderer{output: w, plain: plain, markup: style.NewMarkupParser(plain)}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) println(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderResult renders the known command results; anything else is printed as is
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ImportResult:
		return r.renderImport(v)
	case *types.ExportResult:
		return r.renderExport(v)
	case *types.ListResult:
		return r.renderList(v)
	case *types.ModeResult:
		return r.renderMode(v)
	case *types.GenConfigResult:
		return r.renderGenConfig(v)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// RenderError renders an error
func (r *Renderer) RenderError(err error) error {
	return r.println(r.paint(style.ErrorStyle, "Error: "+err.Error()))
}

// RenderMessage renders markup text
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(r.markup.Render(msg))
}

func (r *Renderer) renderImport(res *types.ImportResult) error {
	var lines []string
	for _, f := range res.FailedArchives {
		lines = append(lines, r.paint(style.ErrorStyle, style.ErrorIndicator)+" "+f.Archive+": "+f.Error)
	}
	for _, l := range res.Liveries {
		s, indicator := style.ImportStatusStyle(l.Status)
		line := fmt.Sprintf("%s %s %s", r.paint(s, indicator), r.paint(style.TitleStyle, l.Key), r.paint(style.MutedStyle, "("+l.Archive+")"))
		detail := string(l.Status)
		switch l.Status {
		case types.ImportRenamed:
			detail += " as " + l.Descriptor
		case types.ImportFailed:
			detail += ": " + l.Error
		}
		if l.Files > 0 {
			detail += fmt.Sprintf(", %d %s", l.Files, plural(l.Files, "file", "files"))
		}
		lines = append(lines, line+" "+r.paint(s, detail))
	}
	for _, s := range res.SkippedEntries {
		lines = append(lines, r.paint(style.WarningStyle, style.WarningIndicator)+" skipped "+
			r.paint(style.PathStyle, s.Archive+":"+s.Path)+" "+r.paint(style.MutedStyle, s.Reason))
	}
	if len(res.Liveries) == 0 && len(res.FailedArchives) == 0 {
		lines = append(lines, r.paint(style.MutedStyle, "No liveries found."))
	}

	written := res.Count(types.ImportWritten) + res.Count(types.ImportRenamed) + res.Count(types.ImportPartial)
	summary := fmt.Sprintf("%d written, %d up to date, %d skipped, %d failed",
		written, res.Count(types.ImportUpToDate), res.Count(types.ImportSkipped),
		res.Count(types.ImportFailed)+len(res.FailedArchives))
	lines = append(lines, "", r.paint(style.TitleStyle, summary))
	return r.println(lines...)
}

func (r *Renderer) renderExport(res *types.ExportResult) error {
	return r.println(fmt.Sprintf("%s Exported %d %s (%d files, %s) to %s",
		r.paint(style.SuccessStyle, style.SuccessIndicator),
		len(res.Liveries), plural(len(res.Liveries), "livery", "liveries"),
		res.Files, humanize.Bytes(uint64(res.Bytes)),
		r.paint(style.PathStyle, res.Output)))
}

func (r *Renderer) renderList(res *types.ListResult) error {
	if len(res.Liveries) == 0 {
		return r.println(r.paint(style.MutedStyle, "No liveries installed in "+res.Root))
	}

	rows := make([][]string, 0, len(res.Liveries))
	for _, l := range res.Liveries {
		descriptor := l.Descriptor
		if descriptor == "" {
			descriptor = "-"
		}
		rows = append(rows, []string{l.Key, descriptor, strconv.Itoa(l.Assets), humanize.Bytes(uint64(l.Size))})
	}
	table := style.RenderTable(
		[]string{"Livery", "Descriptor", "Assets", "Size"},
		rows,
		[]style.ColumnAlignment{style.AlignLeft, style.AlignLeft, style.AlignRight, style.AlignRight},
		r.plain,
	)
	return r.println(r.paint(style.MutedStyle, res.Root), table)
}

func (r *Renderer) renderMode(res *types.ModeResult) error {
	mode := r.paint(style.ModeStyle(res.Mode), res.Mode)
	heading := "Livery mode is " + mode
	switch {
	case res.Command == types.ModeCommandSwitch && res.Changed:
		heading = "Switched to " + mode + " mode"
	case res.Command == types.ModeCommandSet && res.Changed:
		heading = r.paint(style.SuccessStyle, style.SuccessIndicator) + " Livery mode values updated (mode is " + mode + ")"
	case res.Command == types.ModeCommandSet:
		heading = "Livery mode values unchanged (mode is " + mode + ")"
	}

	rows := [][]string{
		{"DDS generation", onOff(res.ModeSettings.DDSGeneration), ""},
		{"Resolution", res.ModeSettings.Resolution.String(), ""},
		{"Fullscreen", onOff(res.ModeSettings.Fullscreen), ""},
		{"Master volume", formatVolume(res.ModeSettings.MasterVolume), ""},
		{"Music volume", formatVolume(res.ModeSettings.MusicVolume), ""},
	}
	headers := []string{"Setting", "Livery mode"}
	if b := res.Backup; b != nil {
		headers = append(headers, "Restores to")
		rows[0][2] = onOff(b.DDSGeneration)
		rows[1][2] = b.Resolution.String()
		rows[2][2] = onOff(b.Fullscreen)
		rows[3][2] = formatVolume(b.MasterVolume)
		rows[4][2] = formatVolume(b.MusicVolume)
	}
	return r.println(heading, style.RenderTable(headers, rows, nil, r.plain))
}

func (r *Renderer) renderGenConfig(res *types.GenConfigResult) error {
	if len(res.FilesWritten) == 0 {
		_, err := fmt.Fprint(r.output, res.ConfigContent)
		return err
	}
	var lines []string
	for _, f := range res.FilesWritten {
		lines = append(lines, r.paint(style.SuccessStyle, style.SuccessIndicator)+" Wrote "+r.paint(style.PathStyle, f))
	}
	return r.println(lines...)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func formatVolume(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/10, 'f', -1, 64) + "%"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
