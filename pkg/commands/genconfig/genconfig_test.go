package genconfig

import (
	"strings"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/config"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenConfig(t *testing.T) {
	t.Run("output to stdout", func(t *testing.T) {
		fs := filesystem.NewMemory()

		result, err := GenConfig(GenConfigOptions{FileSystem: fs, Path: "/cfg/config.toml"})
		require.NoError(t, err)
		assert.Empty(t, result.FilesWritten)
		assert.Contains(t, result.ConfigContent, "[import]")
		assert.Contains(t, result.ConfigContent, `# on_conflict = "ask"`)

		for _, line := range strings.Split(result.ConfigContent, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
				(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) {
				continue
			}
			assert.Fail(t, "Found uncommented configuration line", "Line: %s", line)
		}

		_, err = fs.Stat("/cfg/config.toml")
		assert.Error(t, err)
	})

	t.Run("write file", func(t *testing.T) {
		fs := filesystem.NewMemory()

		result, err := GenConfig(GenConfigOptions{FileSystem: fs, Path: "/cfg/config.toml", Write: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"/cfg/config.toml"}, result.FilesWritten)

		data, err := fs.ReadFile("/cfg/config.toml")
		require.NoError(t, err)
		assert.Equal(t, config.GenerateConfigContent(), string(data))
	})

	t.Run("existing file needs force", func(t *testing.T) {
		fs := filesystem.NewMemory()
		require.NoError(t, fs.MkdirAll("/cfg", 0755))
		require.NoError(t, fs.WriteFile("/cfg/config.toml", []byte("[import]\n"), 0644))

		_, err := GenConfig(GenConfigOptions{FileSystem: fs, Path: "/cfg/config.toml", Write: true})
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		result, err := GenConfig(GenConfigOptions{FileSystem: fs, Path: "/cfg/config.toml", Write: true, Force: true})
		require.NoError(t, err)
		assert.Len(t, result.FilesWritten, 1)
	})
}
