package skinmanager

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/filesystem"
	"github.com/arthur-debert/skinmanager/pkg/testutil"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const menuSettings = `{
    "texDDS": 0,
    "graphicOptions": {
        "resolution": { "x": 2560, "y": 1440 },
        "useFullscreen": true
    },
    "audio": { "main": 0.8, "music": 0.3 }
}`

type cli struct {
	dir  string
	root string
}

func newCLI(t *testing.T) cli {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("SKINMANAGER_LOGGING_FILE", "false")
	t.Setenv("SKINMANAGER_OUTPUT_PROGRESS", "false")
	t.Setenv("SKINMANAGER_EXPORT_DIR", filepath.Join(dir, "exports"))
	return cli{dir: dir, root: filepath.Join(dir, "acc")}
}

// run executes the root command against the test install root
func (c cli) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--root", c.root}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (c cli) archive(t *testing.T, name, skin string) string {
	t.Helper()
	return testutil.Archive(t, filesystem.NewOS(), filepath.Join(c.dir, name),
		testutil.Livery("car_1.json", "my_livery", 7, map[string]string{"decals_0.png": skin}))
}

func TestImportListExport(t *testing.T) {
	c := newCLI(t)
	zip := c.archive(t, "my_livery.zip", "paint")

	out, err := c.run(t, "import", zip)
	require.NoError(t, err)
	assert.Contains(t, out, "1 written, 0 up to date, 0 skipped, 0 failed")

	data, err := os.ReadFile(filepath.Join(c.root, "Customs", "Liveries", "my_livery", "decals_0.png"))
	require.NoError(t, err)
	assert.Equal(t, "paint", string(data))
	assert.FileExists(t, filepath.Join(c.root, "Customs", "Cars", "car_1.json"))

	out, err = c.run(t, "import", zip)
	require.NoError(t, err)
	assert.Contains(t, out, "0 written, 1 up to date")

	out, err = c.run(t, "list", "-o", "json")
	require.NoError(t, err)
	var listed types.ListResult
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed.Liveries, 1)
	assert.Equal(t, "my_livery", listed.Liveries[0].Key)
	assert.Equal(t, "car_1.json", listed.Liveries[0].Descriptor)

	out, err = c.run(t, "export", "my_livery")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 1 livery")
	assert.FileExists(t, filepath.Join(c.dir, "exports", "my_livery.zip"))

	target := filepath.Join(c.dir, "pack.zip")
	_, err = c.run(t, "export", "my_livery", "-o", target)
	require.NoError(t, err)
	assert.FileExists(t, target)
}

func TestListFormats(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(t, "import", c.archive(t, "my_livery.zip", "paint"))
	require.NoError(t, err)

	out, err := c.run(t, "list", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "key: my_livery")

	t.Setenv("SKINMANAGER_OUTPUT_FORMAT", "json")
	out, err = c.run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"key": "my_livery"`)

	_, err = c.run(t, "list", "-o", "xml")
	assert.Error(t, err)
}

func TestImportConflicts(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(t, "import", c.archive(t, "first.zip", "paint"))
	require.NoError(t, err)
	second := c.archive(t, "second.zip", "new paint")

	// Without a terminal an "ask" policy keeps the installed files.
	out, err := c.run(t, "import", second)
	require.NoError(t, err)
	assert.Contains(t, out, "0 written, 0 up to date, 1 skipped, 0 failed")

	out, err = c.run(t, "import", "--force", second)
	require.NoError(t, err)
	assert.Contains(t, out, "1 written")
	data, err := os.ReadFile(filepath.Join(c.root, "Customs", "Liveries", "my_livery", "decals_0.png"))
	require.NoError(t, err)
	assert.Equal(t, "new paint", string(data))

	_, err = c.run(t, "import", "--force", "--skip-existing", second)
	assert.Error(t, err)
}

func TestImportConflictPolicyFromEnv(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(t, "import", c.archive(t, "first.zip", "paint"))
	require.NoError(t, err)

	t.Setenv("SKINMANAGER_IMPORT_ON_CONFLICT", "override")
	out, err := c.run(t, "import", c.archive(t, "second.zip", "new paint"))
	require.NoError(t, err)
	assert.Contains(t, out, "1 written")
}

func TestImportBadArchive(t *testing.T) {
	c := newCLI(t)
	bad := filepath.Join(c.dir, "broken.zip")
	require.NoError(t, os.WriteFile(bad, []byte("not a zip"), 0644))

	out, err := c.run(t, "import", bad, c.archive(t, "good.zip", "paint"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 archives could not be read")
	assert.Contains(t, out, "broken.zip")
	assert.Contains(t, out, "1 written")
}

func TestExportUnknownLivery(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(t, "export", "missing")
	assert.Error(t, err)
}

func TestModeCommands(t *testing.T) {
	c := newCLI(t)
	menuPath := filepath.Join(c.root, "Config", "menuSettings.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(menuPath), 0755))
	require.NoError(t, os.WriteFile(menuPath, []byte(menuSettings), 0644))

	out, err := c.run(t, "mode")
	require.NoError(t, err)
	assert.Contains(t, out, "Livery mode is normal")

	out, err = c.run(t, "mode", "on")
	require.NoError(t, err)
	assert.Contains(t, out, "Switched to livery mode")
	assert.Contains(t, out, "2560x1440")

	out, err = c.run(t, "mode", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Livery mode is livery")

	out, err = c.run(t, "mode", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Switched to normal mode")

	data, err := os.ReadFile(menuPath)
	require.NoError(t, err)
	assert.Equal(t, menuSettings, string(data))

	out, err = c.run(t, "mode", "set", "--resolution", "1280x720", "--music", "0.2")
	require.NoError(t, err)
	assert.Contains(t, out, "Livery mode values updated")
	assert.Contains(t, out, "1280x720")

	_, err = c.run(t, "mode", "sideways")
	assert.Error(t, err)
	_, err = c.run(t, "mode", "set", "--master", "2")
	assert.Error(t, err)
	_, err = c.run(t, "mode", "set", "--resolution", "wide")
	assert.Error(t, err)
}

func TestConfigCommands(t *testing.T) {
	c := newCLI(t)

	out, err := c.run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "[import]")
	assert.Contains(t, out, `# on_conflict = "ask"`)

	_, err = c.run(t, "config", "init", "--write")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(c.dir, "config", "skinmanager", "config.toml"))

	_, err = c.run(t, "config", "init", "--write")
	assert.Error(t, err)
	_, err = c.run(t, "config", "init", "--write", "--force")
	assert.NoError(t, err)

	t.Setenv("SKINMANAGER_IMPORT_ON_CONFLICT", "skip")
	out, err = c.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "on_conflict")
	assert.Contains(t, out, "skip")
}

func TestBrokenConfigFails(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(c.dir, "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nformat = \"xml\"\n"), 0644))

	_, err := c.run(t, "--config", path, "list")
	assert.Error(t, err)
}

func TestVersionAndRoot(t *testing.T) {
	c := newCLI(t)

	out, err := c.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "skinmanager version dev")

	_, err = c.run(t)
	assert.Error(t, err)

	out, err = c.run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "skinmanager")
}

func TestHelpFuncsWithoutTerminal(t *testing.T) {
	funcs := helpFuncs(&bytes.Buffer{})
	boldUpper, ok := funcs["boldUpper"].(func(string) string)
	require.True(t, ok)
	assert.Equal(t, "FLAGS:", boldUpper("Flags:"))

	c := newCLI(t)
	out, err := c.run(t, "import", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "--skip-existing")
}
