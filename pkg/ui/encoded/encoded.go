// Package encoded renders results as JSON or YAML documents for scripts.
// Both encodings share one error and message layout.
package encoded

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Problem is the document written for a failed command
type Problem struct {
	Error   string                 `json:"error" yaml:"error"`
	Code    errors.ErrorCode       `json:"code" yaml:"code"`
	Details map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
}

// NewProblem builds the error document for err
func NewProblem(err error) Problem {
	p := Problem{Error: err.Error(), Code: errors.GetErrorCode(err)}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		p.Details = details
	}
	return p
}

// Message is the document written for an informational message
type Message struct {
	Message string `json:"message" yaml:"message"`
}

// Renderer writes each value as one document in its encoding
type Renderer struct {
	output io.Writer
	encode func(w io.Writer, v interface{}) error
}

// NewJSON creates a renderer writing two-space indented JSON
func NewJSON(output io.Writer) *Renderer {
	return &Renderer{output: output, encode: encodeJSON}
}

// NewYAML creates a renderer writing YAML documents, each opened with
// a "---" marker so consecutive renders form a valid stream
func NewYAML(output io.Writer) *Renderer {
	return &Renderer{output: output, encode: encodeYAML}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v interface{}) error {
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(r.output, result)
}

func (r *Renderer) RenderError(err error) error {
	return r.encode(r.output, NewProblem(err))
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(r.output, Message{Message: msg})
}
