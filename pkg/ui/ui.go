// Package ui renders command results in terminal, text, JSON or YAML form.
package ui

import (
	"io"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/ui/encoded"
	"github.com/arthur-debert/skinmanager/pkg/ui/terminal"
)

// Renderer writes command results, errors and messages to one output
type Renderer interface {
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format writing to output.
// FormatAuto is resolved against output with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	if format == FormatAuto {
		format = DetectFormat(output)
	}

	switch format {
	case FormatTerminal:
		return terminal.New(output, false), nil
	case FormatText:
		return terminal.New(output, true), nil
	case FormatJSON:
		return encoded.NewJSON(output), nil
	case FormatYAML:
		return encoded.NewYAML(output), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "no renderer for format %s", format)
}
