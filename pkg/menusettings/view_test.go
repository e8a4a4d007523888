package menusettings

import (
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	settingsPath = "/acc/Config/menuSettings.json"
	sample       = `{
	"texDDS": 1,
	"graphicOptions": {
		"resolution": { "x": 2560, "y": 1440 },
		"useFullscreen": true
	},
	"audio": { "main": 0.75, "music": 0.25, "gui": 1 }
}`
)

func newView(t *testing.T, content string) (*View, types.FS) {
	t.Helper()
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/acc/Config", 0755))
	require.NoError(t, fs.WriteFile(settingsPath, []byte(content), 0644))
	v, err := Open(fs, settingsPath)
	require.NoError(t, err)
	return v, fs
}

func TestFields(t *testing.T) {
	v, _ := newView(t, sample)

	got, err := v.Fields()
	require.NoError(t, err)
	assert.Equal(t, types.FieldSet{
		DDSGeneration: true,
		Resolution:    types.Resolution{X: 2560, Y: 1440},
		Fullscreen:    true,
		MasterVolume:  0.75,
		MusicVolume:   0.25,
	}, got)
}

func TestSetters_ReturnPreviousValue(t *testing.T) {
	v, _ := newView(t, sample)

	oldDDS, err := v.SetDDSGeneration(false)
	require.NoError(t, err)
	assert.True(t, oldDDS)

	oldRes, err := v.SetResolution(types.Resolution{X: 1600, Y: 900})
	require.NoError(t, err)
	assert.Equal(t, types.Resolution{X: 2560, Y: 1440}, oldRes)

	oldVol, err := v.SetMasterVolume(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.75, oldVol)

	// Same value still reports what was there
	oldMusic, err := v.SetMusicVolume(0.25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, oldMusic)

	got, err := v.Fields()
	require.NoError(t, err)
	assert.False(t, got.DDSGeneration)
	assert.Equal(t, types.Resolution{X: 1600, Y: 900}, got.Resolution)
	assert.Equal(t, 0.5, got.MasterVolume)
}

func TestCommit_WritesOnceOnlyWhenChanged(t *testing.T) {
	v, fs := newView(t, sample)

	prev, err := v.Apply(types.FieldSet{
		DDSGeneration: true,
		Resolution:    types.Resolution{X: 2560, Y: 1440},
		Fullscreen:    true,
		MasterVolume:  0.75,
		MusicVolume:   0.25,
	})
	require.NoError(t, err)
	assert.True(t, prev.Fullscreen)
	assert.False(t, v.Pending())

	written, err := v.Commit()
	require.NoError(t, err)
	assert.False(t, written)

	_, err = v.SetFullscreen(false)
	require.NoError(t, err)
	written, err = v.Commit()
	require.NoError(t, err)
	assert.True(t, written)

	data, err := fs.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"useFullscreen": false`)
	assert.Contains(t, string(data), `"gui": 1`)
}

func TestApply_MissingFieldLeavesDocumentUntouched(t *testing.T) {
	v, fs := newView(t, `{"texDDS": 0, "graphicOptions": {"resolution": {"x": 1, "y": 2}}, "audio": {"main": 1, "music": 1}}`)

	_, err := v.Apply(types.DefaultLiveryModeFields())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsField))
	assert.False(t, v.Pending())

	written, err := v.Commit()
	require.NoError(t, err)
	assert.False(t, written)

	data, err := fs.ReadFile(settingsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"texDDS": 0`)
}

func TestOpen_Errors(t *testing.T) {
	fs := filesystem.NewMemory()
	_, err := Open(fs, settingsPath)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	require.NoError(t, fs.MkdirAll("/acc/Config", 0755))
	require.NoError(t, fs.WriteFile(settingsPath, []byte("not json"), 0644))
	_, err = Open(fs, settingsPath)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSettingsParse))
}
