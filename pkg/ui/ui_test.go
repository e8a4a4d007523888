package ui_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/arthur-debert/skinmanager/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFormatString(t *testing.T) {
	assert.Equal(t, "auto", ui.FormatAuto.String())
	assert.Equal(t, "term", ui.FormatTerminal.String())
	assert.Equal(t, "text", ui.FormatText.String())
	assert.Equal(t, "json", ui.FormatJSON.String())
	assert.Equal(t, "yaml", ui.FormatYAML.String())
	assert.Equal(t, "unknown", ui.Format(999).String())
}

func TestFormatNamesAndStructured(t *testing.T) {
	assert.Equal(t, []string{"auto", "term", "text", "json", "yaml"}, ui.FormatNames())
	assert.True(t, ui.FormatJSON.Structured())
	assert.True(t, ui.FormatYAML.Structured())
	assert.False(t, ui.FormatAuto.Structured())
	assert.False(t, ui.FormatText.Structured())
}

func TestDetectFormatWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ui.IsTerminal(&buf))
	assert.Equal(t, ui.FormatText, ui.DetectFormat(&buf))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(&buf))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"", ui.FormatAuto, false},
		{"table", ui.FormatAuto, false},
		{"TERMINAL", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yml", ui.FormatYAML, false},
		{" Yaml ", ui.FormatYAML, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewRenderer(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		r, err := ui.NewRenderer(f, &bytes.Buffer{})
		require.NoError(t, err, f.String())
		assert.NotNil(t, r)
	}

	r, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
	assert.Nil(t, r)
}

func listResult() *types.ListResult {
	return &types.ListResult{
		Root:     "/acc",
		Liveries: []types.LiveryInfo{{Key: "gt3", Folder: "gt3", Descriptor: "car.json", Assets: 2, Size: 10}},
	}
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(listResult()))

	var decoded types.ListResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *listResult(), decoded)

	buf.Reset()
	require.NoError(t, r.RenderError(errors.New(errors.ErrLiveryNotFound, "no installed livery named x")))
	var e map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, "LIVERY_NOT_FOUND", e["code"])
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatYAML, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(listResult()))

	var decoded types.ListResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *listResult(), decoded)

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.ModeResult{Mode: "normal", ModeSettings: types.DefaultLiveryModeFields()}))
	assert.Contains(t, buf.String(), "resolution: 1600x900")
}
