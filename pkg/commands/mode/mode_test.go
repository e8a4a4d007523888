package mode

import (
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuSettings = `{
    "texDDS": 1,
    "graphicOptions": {
        "resolution": { "x": 1920, "y": 1080 },
        "useFullscreen": true
    },
    "audio": { "main": 1, "music": 0.5 }
}`

func setup(t *testing.T) (types.FS, paths.Paths) {
	t.Helper()
	p, err := paths.New("/acc")
	require.NoError(t, err)
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll(p.GameConfigDir(), 0755))
	require.NoError(t, fs.WriteFile(p.MenuSettingsPath(), []byte(menuSettings), 0644))
	return fs, p
}

func TestSwitchMode_OnOff(t *testing.T) {
	fs, p := setup(t)

	result, err := SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: ActionOn})
	require.NoError(t, err)
	assert.Equal(t, "livery", result.Mode)
	assert.True(t, result.Changed)
	require.NotNil(t, result.Backup)
	assert.Equal(t, types.Resolution{X: 1920, Y: 1080}, result.Backup.Resolution)
	assert.Equal(t, types.DefaultLiveryModeFields(), result.ModeSettings)

	result, err = SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: ActionOn})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.NotNil(t, result.Backup)

	result, err = SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: ActionOff})
	require.NoError(t, err)
	assert.Equal(t, "normal", result.Mode)
	assert.True(t, result.Changed)
	assert.Nil(t, result.Backup)

	data, err := fs.ReadFile(p.MenuSettingsPath())
	require.NoError(t, err)
	assert.Equal(t, menuSettings, string(data))
}

func TestSwitchMode_Toggle(t *testing.T) {
	fs, p := setup(t)

	for _, want := range []string{"livery", "normal", "livery"} {
		result, err := SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: ActionToggle})
		require.NoError(t, err)
		assert.Equal(t, want, result.Mode)
		assert.True(t, result.Changed)
	}
}

func TestSwitchMode_MissingSettings(t *testing.T) {
	p, err := paths.New("/acc")
	require.NoError(t, err)

	_, err = SwitchMode(SwitchModeOptions{FileSystem: filesystem.NewMemory(), Paths: p, Action: ActionOn})
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestSwitchMode_UnknownAction(t *testing.T) {
	fs, p := setup(t)
	_, err := SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: "sideways"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestModeStatus(t *testing.T) {
	fs, p := setup(t)

	result, err := ModeStatus(ModeStatusOptions{FileSystem: fs, Paths: p})
	require.NoError(t, err)
	assert.Equal(t, "normal", result.Mode)
	assert.Nil(t, result.Backup)

	_, err = SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: ActionOn})
	require.NoError(t, err)

	result, err = ModeStatus(ModeStatusOptions{FileSystem: fs, Paths: p})
	require.NoError(t, err)
	assert.Equal(t, "livery", result.Mode)
	require.NotNil(t, result.Backup)
	assert.True(t, result.Backup.Fullscreen)
}

func TestSetModeValues(t *testing.T) {
	fs, p := setup(t)
	dds := true
	res := types.Resolution{X: 1280, Y: 720}
	volume := 0.3

	result, err := SetModeValues(SetModeValuesOptions{
		FileSystem:    fs,
		Paths:         p,
		DDSGeneration: &dds,
		Resolution:    &res,
		MasterVolume:  &volume,
	})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	want := types.DefaultLiveryModeFields()
	want.DDSGeneration = true
	want.Resolution = res
	want.MasterVolume = 0.3
	assert.Equal(t, want, result.ModeSettings)

	// The menu settings stay as they were.
	data, err := fs.ReadFile(p.MenuSettingsPath())
	require.NoError(t, err)
	assert.Equal(t, menuSettings, string(data))

	switched, err := SwitchMode(SwitchModeOptions{FileSystem: fs, Paths: p, Action: ActionOn})
	require.NoError(t, err)
	assert.Equal(t, want, switched.ModeSettings)

	again, err := SetModeValues(SetModeValuesOptions{FileSystem: fs, Paths: p, DDSGeneration: &dds})
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, "livery", again.Mode)
}

func TestSetModeValues_Validation(t *testing.T) {
	fs, p := setup(t)
	loud := 1.5
	zero := types.Resolution{X: 0, Y: 720}

	_, err := SetModeValues(SetModeValuesOptions{FileSystem: fs, Paths: p, MusicVolume: &loud})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = SetModeValues(SetModeValuesOptions{FileSystem: fs, Paths: p, Resolution: &zero})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"on", "off", "toggle"} {
		a, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, Action(s), a)
	}
	_, err := ParseAction("status")
	assert.Error(t, err)
}
