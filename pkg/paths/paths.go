package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Default directories and files of the install tree.
// These are dictated by the game and are not user-configurable.
const (
	// GameDirName is the game's folder inside the user's documents directory
	GameDirName = "Assetto Corsa Competizione"

	// CustomsDirName holds the Cars and Liveries collections
	CustomsDirName = "Customs"

	// GameConfigDirName holds the game's own settings documents
	GameConfigDirName = "Config"

	// MenuSettingsFileName is the settings document touched by livery mode
	MenuSettingsFileName = "menuSettings.json"

	// StateFileName is the persisted livery mode state
	StateFileName = "settings.json"

	// LockFileName is the advisory lock guarding the install tree
	LockFileName = ".skinmanager.lock"

	// AppDirName is the directory name for skinmanager's own files
	AppDirName = "skinmanager"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// steamAppID is the game's Steam application id, used to find its Proton prefix
	steamAppID = "805550"
)

// appDataDir is where the tool keeps its state inside the install root
var appDataDir = filepath.Join("Apps", "Skinmanager")

// Paths provides centralized path management for skinmanager
type Paths interface {
	Root() string
	UsedFallback() bool
	CustomsDir() string
	CarsDir() string
	LiveriesDir() string
	LiveryDir(folder string) string
	DescriptorPath(name string) string
	AssetPath(folder, name string) string
	TargetPath(entry types.RawEntry) string
	GameConfigDir() string
	MenuSettingsPath() string
	AppDataDir() string
	StatePath() string
	LockPath() string
	ConfigDir() string
	ConfigFilePath() string
}

// paths provides centralized path management for skinmanager
type paths struct {
	// root is the game's documents folder
	root string

	// usedFallback indicates no candidate root existed on disk
	usedFallback bool

	// xdgConfig is the XDG config directory for the tool
	xdgConfig string
}

// New creates a new Paths instance with the given install root.
// If root is empty, it is discovered from the user's documents directory.
func New(root string) (Paths, error) {
	p := &paths{}

	if root == "" {
		discovered, usedFallback := discoverRoot(rootCandidates())
		p.root = discovered
		p.usedFallback = usedFallback
	} else {
		p.root = ExpandHome(root)
	}

	if p.root == "" {
		return nil, errors.New(errors.ErrNotFound, "unable to determine the install root")
	}

	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for install root")
	}
	p.root = absRoot

	p.xdgConfig = configDir()

	return p, nil
}

// configDir respects XDG_CONFIG_HOME if set, otherwise uses the xdg default
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultConfigFilePath returns the user configuration file. It does not
// depend on the install root, so it can be read before the root is known.
func DefaultConfigFilePath() string {
	return filepath.Join(configDir(), ConfigFileName)
}

// rootCandidates lists where the game folder is usually found, most likely first
func rootCandidates() []string {
	var candidates []string
	if docs := xdg.UserDirs.Documents; docs != "" {
		candidates = append(candidates, filepath.Join(docs, GameDirName))
	}
	if home := xdg.Home; home != "" {
		protonDocs := filepath.Join("steamapps", "compatdata", steamAppID, "pfx",
			"drive_c", "users", "steamuser", "Documents", GameDirName)
		candidates = append(candidates,
			filepath.Join(home, ".steam", "steam", protonDocs),
			filepath.Join(home, ".local", "share", "Steam", protonDocs),
		)
	}
	return candidates
}

// discoverRoot returns the first candidate that exists as a directory.
// When none exists the first candidate is returned and the fallback flag is set.
func discoverRoot(candidates []string) (string, bool) {
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, false
		}
	}
	if len(candidates) == 0 {
		return "", true
	}
	return candidates[0], true
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

// Root returns the install root
func (p *paths) Root() string {
	return p.root
}

// UsedFallback returns true if no candidate root existed during discovery
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) CustomsDir() string {
	return filepath.Join(p.root, CustomsDirName)
}

func (p *paths) CarsDir() string {
	return filepath.Join(p.CustomsDir(), types.CarsDir)
}

func (p *paths) LiveriesDir() string {
	return filepath.Join(p.CustomsDir(), types.LiveriesDir)
}

// LiveryDir returns the asset folder of a livery
func (p *paths) LiveryDir(folder string) string {
	return filepath.Join(p.LiveriesDir(), folder)
}

// DescriptorPath returns where a descriptor with the given file name is installed
func (p *paths) DescriptorPath(name string) string {
	return filepath.Join(p.CarsDir(), name)
}

// AssetPath returns where an asset file of the given folder is installed
func (p *paths) AssetPath(folder, name string) string {
	return filepath.Join(p.LiveryDir(folder), name)
}

// TargetPath returns the install destination of a raw entry
func (p *paths) TargetPath(entry types.RawEntry) string {
	if entry.Placement.IsDescriptor() {
		return p.DescriptorPath(entry.Name)
	}
	return p.AssetPath(entry.Placement.Folder, entry.Name)
}

func (p *paths) GameConfigDir() string {
	return filepath.Join(p.root, GameConfigDirName)
}

func (p *paths) MenuSettingsPath() string {
	return filepath.Join(p.GameConfigDir(), MenuSettingsFileName)
}

// AppDataDir returns the tool's directory inside the install root
func (p *paths) AppDataDir() string {
	return filepath.Join(p.root, appDataDir)
}

func (p *paths) StatePath() string {
	return filepath.Join(p.AppDataDir(), StateFileName)
}

func (p *paths) LockPath() string {
	return filepath.Join(p.AppDataDir(), LockFileName)
}

// ConfigDir returns the XDG config directory for skinmanager
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}
