// Package appstate persists the livery mode state: the values livery mode
// applies and, while livery mode is active, the values it replaced.
//
// The file lives in the game's Apps directory and keeps the layout older
// releases wrote, so existing installs keep their backup. Comments and
// trailing commas are tolerated on read.
package appstate

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/tidwall/jsonc"
)

// State is the persisted livery mode state.
// A non-nil Backup means livery mode is active.
type State struct {
	ModeSettings types.FieldSet
	Backup       *types.FieldSet
	// BackupText holds the backed up volumes as the menu file spelled them
	BackupText types.VolumeText
}

// Default returns the state written on first run
func Default() *State {
	return &State{ModeSettings: types.DefaultLiveryModeFields()}
}

// Active reports whether livery mode is active
func (s *State) Active() bool {
	return s.Backup != nil
}

type graphicFields struct {
	Resolution types.Resolution `json:"resolution"`
	Fullscreen bool             `json:"fullscreen"`
}

// Volumes are json.Number so a backed up literal such as
// 0.64999997615814209 is stored and read back verbatim
type audioFields struct {
	Master json.Number `json:"master"`
	Music  json.Number `json:"music"`
}

// fieldsFile is the on-disk shape of a field set
type fieldsFile struct {
	DDSGeneration bool          `json:"dds_generation"`
	Graphic       graphicFields `json:"graphic"`
	Audio         audioFields   `json:"audio"`
}

type stateFile struct {
	ModeSettings fieldsFile  `json:"livery_mode_settings"`
	Backup       *fieldsFile `json:"backup_settings"`
}

func toFile(f types.FieldSet, text types.VolumeText) fieldsFile {
	return fieldsFile{
		DDSGeneration: f.DDSGeneration,
		Graphic:       graphicFields{Resolution: f.Resolution, Fullscreen: f.Fullscreen},
		Audio: audioFields{
			Master: number(f.MasterVolume, text.Master),
			Music:  number(f.MusicVolume, text.Music),
		},
	}
}

// number encodes v, using text when it is a literal of exactly v
func number(v float64, text string) json.Number {
	if text != "" && types.MatchesText(v, text) {
		return json.Number(text)
	}
	return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
}

func parseNumber(n json.Number) (float64, string, error) {
	if n == "" {
		return 0, "", nil
	}
	v, err := n.Float64()
	if err != nil {
		return 0, "", err
	}
	return v, types.LiteralText(n.String()), nil
}

func (f fieldsFile) fields() (types.FieldSet, types.VolumeText, error) {
	var text types.VolumeText
	fields := types.FieldSet{
		DDSGeneration: f.DDSGeneration,
		Resolution:    f.Graphic.Resolution,
		Fullscreen:    f.Graphic.Fullscreen,
	}
	var err error
	if fields.MasterVolume, text.Master, err = parseNumber(f.Audio.Master); err != nil {
		return fields, text, err
	}
	if fields.MusicVolume, text.Music, err = parseNumber(f.Audio.Music); err != nil {
		return fields, text, err
	}
	return fields, text, nil
}

// Marshal encodes the state in its on-disk layout
func Marshal(s *State) ([]byte, error) {
	file := stateFile{ModeSettings: toFile(s.ModeSettings, types.VolumeText{})}
	if s.Backup != nil {
		backup := toFile(*s.Backup, s.BackupText)
		file.Backup = &backup
	}
	return json.MarshalIndent(file, "", "  ")
}

// Unmarshal decodes the on-disk layout
func Unmarshal(data []byte) (*State, error) {
	var file stateFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return nil, err
	}
	modeSettings, _, err := file.ModeSettings.fields()
	if err != nil {
		return nil, err
	}
	state := &State{ModeSettings: modeSettings}
	if file.Backup != nil {
		backup, text, err := file.Backup.fields()
		if err != nil {
			return nil, err
		}
		state.Backup = &backup
		state.BackupText = text
	}
	return state, nil
}

// Store reads and writes the state file
type Store struct {
	fs   types.FS
	path string
}

// NewStore creates a store for the state file at path
func NewStore(filesystem types.FS, path string) *Store {
	return &Store{fs: filesystem, path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the state. A missing file is created with defaults.
func (s *Store) Load() (*State, error) {
	logger := logging.GetLogger("appstate")

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, errors.ErrStateLoad, "cannot read livery mode state").
				WithDetail("path", s.path)
		}
		logger.Info().Str("path", s.path).Msg("No livery mode state found, writing defaults")
		state := Default()
		if err := s.Save(state); err != nil {
			return nil, err
		}
		return state, nil
	}

	state, err := Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStateLoad, "livery mode state is corrupt").
			WithDetail("path", s.path)
	}
	logger.Debug().Str("path", s.path).Bool("active", state.Active()).Msg("Loaded livery mode state")
	return state, nil
}

// Save writes the state, creating its directory when needed
func (s *Store) Save(state *State) error {
	data, err := Marshal(state)
	if err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "cannot encode livery mode state")
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create state directory").
			WithDetail("path", filepath.Dir(s.path))
	}
	if err := s.fs.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "cannot write livery mode state").
			WithDetail("path", s.path)
	}
	return nil
}
