package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(t *testing.T, filesystem types.FS, dir string) []string {
	t.Helper()
	entries, err := filesystem.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func exerciseFS(t *testing.T, filesystem types.FS, root string) {
	t.Helper()

	cars := filepath.Join(root, "Customs", "Cars")
	alpha := filepath.Join(cars, "alpha.json")
	content := []byte(`{"customSkinName":"TeamA"}`)

	require.NoError(t, filesystem.MkdirAll(cars, 0755))
	require.NoError(t, filesystem.WriteFile(alpha, content, 0644))

	info, err := filesystem.Stat(alpha)
	require.NoError(t, err)
	assert.Equal(t, "alpha.json", info.Name())
	assert.Equal(t, int64(len(content)), info.Size())
	assert.Equal(t, fs.FileMode(0644), info.Mode().Perm())

	got, err := filesystem.ReadFile(alpha)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Replacing keeps a single file and no temporaries
	require.NoError(t, filesystem.WriteFile(alpha, []byte("{}"), 0644))
	require.NoError(t, filesystem.WriteFile(filepath.Join(cars, "beta.json"), []byte("{}"), 0644))
	assert.Equal(t, []string{"alpha.json", "beta.json"}, names(t, filesystem, cars))
	got, err = filesystem.ReadFile(alpha)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))

	entries, err := filesystem.ReadDir(filepath.Join(root, "Customs"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Cars", entries[0].Name())
	assert.True(t, entries[0].IsDir())

	_, err = filesystem.ReadFile(filepath.Join(root, "Customs"))
	assert.Error(t, err, "reading a directory must fail")

	_, err = filesystem.Stat(filepath.Join(root, "missing.json"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestNewOS(t *testing.T) {
	root := t.TempDir()
	filesystem := NewOS()
	exerciseFS(t, filesystem, root)

	err := filesystem.WriteFile(filepath.Join(root, "Missing", "gamma.json"), []byte("{}"), 0644)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)
}

func TestNewMemory(t *testing.T) {
	exerciseFS(t, NewMemory(), "/acc")
}
