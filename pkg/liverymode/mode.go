package liverymode

import (
	"github.com/arthur-debert/skinmanager/pkg/appstate"
	"github.com/arthur-debert/skinmanager/pkg/menusettings"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Mode is one of the two toggle states
type Mode int

const (
	Normal Mode = iota
	Active
)

func (m Mode) String() string {
	if m == Active {
		return "livery"
	}
	return "normal"
}

// ModeOf returns the mode a state is in
func ModeOf(state *appstate.State) Mode {
	if state.Active() {
		return Active
	}
	return Normal
}

// Enter applies the livery mode values to the view and records the replaced
// values as the backup. It reports whether the transition happened; entering
// while already active does nothing, so the original backup is never lost.
// On error the state is unchanged and the view holds no committed edits.
func Enter(state *appstate.State, view *menusettings.View) (bool, error) {
	if state.Active() {
		return false, nil
	}
	text, err := view.VolumeText()
	if err != nil {
		return false, err
	}
	prev, err := view.Apply(state.ModeSettings)
	if err != nil {
		return false, err
	}
	if _, err := view.Commit(); err != nil {
		return false, err
	}
	state.Backup = &prev
	state.BackupText = text
	return true, nil
}

// Exit restores the backup and clears it. Exiting while normal does nothing.
// On error the backup is kept so the transition can be retried.
func Exit(state *appstate.State, view *menusettings.View) (bool, error) {
	if !state.Active() {
		return false, nil
	}
	if err := restore(view, *state.Backup, state.BackupText); err != nil {
		return false, err
	}
	if _, err := view.Commit(); err != nil {
		return false, err
	}
	state.Backup = nil
	state.BackupText = types.VolumeText{}
	return true, nil
}

// restore applies backed up fields, keeping the literal volume text the
// file had when the backup was taken
func restore(view *menusettings.View, fields types.FieldSet, text types.VolumeText) error {
	if _, err := view.Apply(fields); err != nil {
		return err
	}
	return view.RestoreVolumeText(text)
}

// Current returns the field values livery mode would restore on exit, or
// the live values when normal.
func Current(state *appstate.State, view *menusettings.View) (types.FieldSet, error) {
	if state.Active() {
		return *state.Backup, nil
	}
	return view.Fields()
}
