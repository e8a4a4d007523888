package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/archive"
	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/require"
)

// InstallRoot is the root of the in-memory install tree
const InstallRoot = "/acc"

// NewInstall returns an empty in-memory filesystem and the paths of an
// install tree rooted at InstallRoot
func NewInstall(t *testing.T) (types.FS, paths.Paths) {
	t.Helper()
	p, err := paths.New(InstallRoot)
	require.NoError(t, err)
	return filesystem.NewMemory(), p
}

// WriteFiles creates every file of files, with parent directories
func WriteFiles(t *testing.T, fs types.FS, files map[string]string) {
	t.Helper()
	for path, body := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, fs.WriteFile(path, []byte(body), 0644))
	}
}

// ReadFile returns the content of path as a string
func ReadFile(t *testing.T, fs types.FS, path string) string {
	t.Helper()
	data, err := fs.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Livery builds a livery with a descriptor pointing at folder and the given
// asset files. An empty descriptorName leaves the descriptor out.
func Livery(descriptorName, folder string, raceNumber int, assets map[string]string) types.Livery {
	l := types.Livery{Folder: folder}
	if descriptorName != "" {
		l.Descriptor = &types.RawEntry{
			Placement: types.DescriptorPlacement(),
			Name:      descriptorName,
			Data:      []byte(fmt.Sprintf(`{"raceNumber": %d, "customSkinName": %q}`, raceNumber, folder)),
		}
	}
	for name, body := range assets {
		l.Assets = append(l.Assets, types.RawEntry{
			Placement: types.AssetFolderPlacement(folder),
			Name:      name,
			Data:      []byte(body),
		})
	}
	return l
}

// Archive packs liveries into a zip and writes it to path
func Archive(t *testing.T, fs types.FS, path string, liveries ...types.Livery) string {
	t.Helper()
	data, err := archive.PackAll(liveries)
	require.NoError(t, err)
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, data, 0644))
	return path
}
