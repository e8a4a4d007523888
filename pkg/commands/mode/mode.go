package mode

import (
	"github.com/arthur-debert/skinmanager/pkg/appstate"
	"github.com/arthur-debert/skinmanager/pkg/commands/internal"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/liverymode"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Action is a requested livery mode transition
type Action string

const (
	ActionOn     Action = "on"
	ActionOff    Action = "off"
	ActionToggle Action = "toggle"
)

// ParseAction accepts on, off and toggle
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionOn, ActionOff, ActionToggle:
		return a, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown mode action %q (want on, off or toggle)", s)
	}
}

// SwitchModeOptions defines the options for the SwitchMode command.
type SwitchModeOptions struct {
	FileSystem types.FS
	Paths      paths.Paths
	Action     Action
	// LockPath is the install tree lock. Empty runs without a lock.
	LockPath string
}

// SwitchMode enters, leaves or flips livery mode.
func SwitchMode(opts SwitchModeOptions) (result *types.ModeResult, err error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SwitchMode").Str("action", string(opts.Action)).Msg("Executing command")

	held, err := internal.AcquireLock(opts.LockPath)
	if err != nil {
		return nil, err
	}
	defer internal.ReleaseLock(held, &err)

	toggle := liverymode.New(opts.FileSystem, opts.Paths)
	var res liverymode.Result
	switch opts.Action {
	case ActionOn:
		res, err = toggle.Enter()
	case ActionOff:
		res, err = toggle.Exit()
	case ActionToggle:
		res, err = toggle.Switch()
	default:
		_, err = ParseAction(string(opts.Action))
	}
	if err != nil {
		return nil, err
	}

	state, err := toggle.State()
	if err != nil {
		return nil, err
	}
	result = resultOf(types.ModeCommandSwitch, res.To, res.Changed, state)

	log.Info().Str("command", "SwitchMode").Str("mode", result.Mode).Bool("changed", result.Changed).Msg("Command finished")
	return result, nil
}

// ModeStatusOptions defines the options for the ModeStatus command.
type ModeStatusOptions struct {
	FileSystem types.FS
	Paths      paths.Paths
}

// ModeStatus reports the current mode and the stored values.
func ModeStatus(opts ModeStatusOptions) (*types.ModeResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ModeStatus").Msg("Executing command")

	m, state, err := liverymode.New(opts.FileSystem, opts.Paths).Status()
	if err != nil {
		return nil, err
	}
	return resultOf(types.ModeCommandStatus, m, false, state), nil
}

// SetModeValuesOptions defines the options for the SetModeValues command.
// Nil fields keep their stored value.
type SetModeValuesOptions struct {
	FileSystem    types.FS
	Paths         paths.Paths
	DDSGeneration *bool
	Resolution    *types.Resolution
	Fullscreen    *bool
	MasterVolume  *float64
	MusicVolume   *float64
	LockPath      string
}

// SetModeValues changes the values livery mode applies on entry. The menu
// settings are not touched; while livery mode is active the new values take
// effect on the next entry.
func SetModeValues(opts SetModeValuesOptions) (result *types.ModeResult, err error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "SetModeValues").Msg("Executing command")

	for _, v := range []*float64{opts.MasterVolume, opts.MusicVolume} {
		if v != nil && (*v < 0 || *v > 1) {
			return nil, errors.Newf(errors.ErrInvalidInput, "volume %v out of range 0..1", *v)
		}
	}
	if opts.Resolution != nil && (opts.Resolution.X == 0 || opts.Resolution.Y == 0) {
		return nil, errors.Newf(errors.ErrInvalidInput, "invalid resolution %s", opts.Resolution)
	}

	held, err := internal.AcquireLock(opts.LockPath)
	if err != nil {
		return nil, err
	}
	defer internal.ReleaseLock(held, &err)

	toggle := liverymode.New(opts.FileSystem, opts.Paths)
	state, err := toggle.State()
	if err != nil {
		return nil, err
	}

	fields := state.ModeSettings
	if opts.DDSGeneration != nil {
		fields.DDSGeneration = *opts.DDSGeneration
	}
	if opts.Resolution != nil {
		fields.Resolution = *opts.Resolution
	}
	if opts.Fullscreen != nil {
		fields.Fullscreen = *opts.Fullscreen
	}
	if opts.MasterVolume != nil {
		fields.MasterVolume = *opts.MasterVolume
	}
	if opts.MusicVolume != nil {
		fields.MusicVolume = *opts.MusicVolume
	}

	changed := fields != state.ModeSettings
	if changed {
		if err := toggle.SetModeSettings(fields); err != nil {
			return nil, err
		}
		state.ModeSettings = fields
	}

	log.Info().Str("command", "SetModeValues").Bool("changed", changed).Msg("Command finished")
	return resultOf(types.ModeCommandSet, liverymode.ModeOf(state), changed, state), nil
}

func resultOf(cmd types.ModeCommand, m liverymode.Mode, changed bool, state *appstate.State) *types.ModeResult {
	return &types.ModeResult{
		Command:      cmd,
		Mode:         m.String(),
		Changed:      changed,
		ModeSettings: state.ModeSettings,
		Backup:       state.Backup,
	}
}
