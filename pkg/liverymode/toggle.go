package liverymode

import (
	"github.com/arthur-debert/skinmanager/pkg/appstate"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/menusettings"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Result describes a finished transition
type Result struct {
	From    Mode
	To      Mode
	Changed bool
	// Backup holds the values that will be restored on exit, nil when normal
	Backup *types.FieldSet
}

// Toggle runs transitions against the files of one install tree
type Toggle struct {
	fs           types.FS
	settingsPath string
	store        *appstate.Store
}

// New creates a toggle for the install tree described by p
func New(filesystem types.FS, p paths.Paths) *Toggle {
	return &Toggle{
		fs:           filesystem,
		settingsPath: p.MenuSettingsPath(),
		store:        appstate.NewStore(filesystem, p.StatePath()),
	}
}

// State loads the persisted state, creating it on first run
func (t *Toggle) State() (*appstate.State, error) {
	return t.store.Load()
}

// Status reports the current mode
func (t *Toggle) Status() (Mode, *appstate.State, error) {
	state, err := t.store.Load()
	if err != nil {
		return Normal, nil, err
	}
	return ModeOf(state), state, nil
}

// Enter switches to livery mode
func (t *Toggle) Enter() (Result, error) {
	return t.transition(Active)
}

// Exit switches back to the normal settings
func (t *Toggle) Exit() (Result, error) {
	return t.transition(Normal)
}

// Switch flips the current mode
func (t *Toggle) Switch() (Result, error) {
	mode, _, err := t.Status()
	if err != nil {
		return Result{}, err
	}
	if mode == Active {
		return t.transition(Normal)
	}
	return t.transition(Active)
}

// SetModeSettings replaces the values livery mode applies. It does not
// touch the menu settings, even while livery mode is active.
func (t *Toggle) SetModeSettings(fields types.FieldSet) error {
	state, err := t.store.Load()
	if err != nil {
		return err
	}
	state.ModeSettings = fields
	return t.store.Save(state)
}

func (t *Toggle) transition(to Mode) (Result, error) {
	logger := logging.GetLogger("liverymode")

	state, err := t.store.Load()
	if err != nil {
		return Result{}, err
	}
	from := ModeOf(state)
	result := Result{From: from, To: from, Backup: state.Backup}
	if from == to {
		logger.Debug().Str("mode", from.String()).Msg("Already in requested mode")
		return result, nil
	}

	view, err := menusettings.Open(t.fs, t.settingsPath)
	if err != nil {
		return result, err
	}

	before := *state
	if to == Active {
		_, err = Enter(state, view)
	} else {
		_, err = Exit(state, view)
	}
	if err != nil {
		logger.Warn().Err(err).Str("from", from.String()).Msg("Livery mode transition failed, state unchanged")
		return result, err
	}

	if err := t.store.Save(state); err != nil {
		// The menu settings already moved; put them back so file and state agree.
		if back, openErr := menusettings.Open(t.fs, t.settingsPath); openErr == nil {
			var applyErr error
			if to == Active {
				applyErr = restore(back, *state.Backup, state.BackupText)
			} else if before.Backup != nil {
				_, applyErr = back.Apply(before.ModeSettings)
			}
			if applyErr != nil {
				logger.Error().Err(applyErr).Msg("Failed to apply rollback values to menu settings")
			} else if _, commitErr := back.Commit(); commitErr != nil {
				logger.Error().Err(commitErr).Msg("Failed to roll back menu settings")
			}
		} else {
			logger.Error().Err(openErr).Msg("Failed to reopen menu settings for rollback")
		}
		return result, err
	}

	logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("Livery mode switched")
	return Result{From: from, To: to, Changed: true, Backup: state.Backup}, nil
}
