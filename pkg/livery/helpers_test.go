package livery

import (
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/require"
)

func descriptor(name, folder string) types.RawEntry {
	data := `{"raceNumber": 7}`
	if folder != "" {
		data = `{"raceNumber": 7, "customSkinName": "` + folder + `"}`
	}
	return types.RawEntry{Placement: types.DescriptorPlacement(), Name: name, Data: []byte(data)}
}

func asset(folder, name, data string) types.RawEntry {
	return types.RawEntry{Placement: types.AssetFolderPlacement(folder), Name: name, Data: []byte(data)}
}

// installTree returns an empty in-memory install tree rooted at /acc
func installTree(t *testing.T) (types.FS, paths.Paths) {
	t.Helper()
	p, err := paths.New("/acc")
	require.NoError(t, err)
	return filesystem.NewMemory(), p
}

// install puts entries at their targets
func install(t *testing.T, fs types.FS, p paths.Paths, entries ...types.RawEntry) {
	t.Helper()
	w := NewWriter(fs, p, nil)
	for _, e := range entries {
		require.NoError(t, w.writeFile(e))
	}
}
