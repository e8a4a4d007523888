package appstate

import (
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statePath = "/acc/Apps/Skinmanager/settings.json"

func TestLoad_FirstRunWritesDefaults(t *testing.T) {
	fs := filesystem.NewMemory()
	store := NewStore(fs, statePath)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, types.DefaultLiveryModeFields(), state.ModeSettings)
	assert.False(t, state.Active())

	data, err := fs.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"backup_settings": null`)
	assert.Contains(t, string(data), `"resolution": [`)
}

func TestSaveLoad(t *testing.T) {
	store := NewStore(filesystem.NewMemory(), statePath)
	backup := types.FieldSet{
		DDSGeneration: true,
		Resolution:    types.Resolution{X: 2560, Y: 1440},
		Fullscreen:    true,
		MasterVolume:  0.65,
		MusicVolume:   0.8,
	}
	want := &State{ModeSettings: types.DefaultLiveryModeFields(), Backup: &backup}

	require.NoError(t, store.Save(want))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, got.Active())
}

func TestUnmarshal_ExistingLayout(t *testing.T) {
	data := []byte(`{
  // written by an older release
  "livery_mode_settings": {
    "dds_generation": false,
    "graphic": { "resolution": [1920, 1080], "fullscreen": false },
    "audio": { "master": 0.3, "music": 0.0 },
  },
  "backup_settings": {
    "dds_generation": true,
    "graphic": { "resolution": [3440, 1440], "fullscreen": true },
    "audio": { "master": 1.0, "music": 0.5 }
  }
}`)

	state, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, types.Resolution{X: 1920, Y: 1080}, state.ModeSettings.Resolution)
	assert.Equal(t, 0.3, state.ModeSettings.MasterVolume)
	require.NotNil(t, state.Backup)
	assert.True(t, state.Backup.Fullscreen)
	assert.Equal(t, types.Resolution{X: 3440, Y: 1440}, state.Backup.Resolution)
}

func TestSaveLoad_KeepsBackupVolumeLiterals(t *testing.T) {
	fs := filesystem.NewMemory()
	store := NewStore(fs, statePath)
	backup := types.FieldSet{
		Resolution:   types.Resolution{X: 2560, Y: 1440},
		MasterVolume: 0.64999997615814209,
		MusicVolume:  0.25,
	}
	want := &State{
		ModeSettings: types.DefaultLiveryModeFields(),
		Backup:       &backup,
		// a literal that no longer matches its value is not written
		BackupText: types.VolumeText{Master: "0.64999997615814209", Music: "0.30000001192092896"},
	}

	require.NoError(t, store.Save(want))
	data, err := fs.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"master": 0.64999997615814209`)
	assert.Contains(t, string(data), `"music": 0.25`)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, backup, *got.Backup)
	assert.Equal(t, types.VolumeText{Master: "0.64999997615814209"}, got.BackupText)
}

func TestUnmarshal_BadVolume(t *testing.T) {
	_, err := Unmarshal([]byte(`{"livery_mode_settings": {"audio": {"master": "loud"}}}`))
	require.Error(t, err)
}

func TestLoad_Corrupt(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/acc/Apps/Skinmanager", 0755))
	require.NoError(t, fs.WriteFile(statePath, []byte(`{"livery_mode_settings": 3}`), 0644))

	_, err := NewStore(fs, statePath).Load()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateLoad))
}
