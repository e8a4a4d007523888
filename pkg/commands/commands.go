// Package commands provides high-level command implementations for skinmanager.
//
// This package contains the orchestration layer that coordinates between the
// CLI and the core packages (archive, livery, installtree, liverymode).
//
// Each command is implemented in its own subdirectory:
//   - install/   - ImportArchives command and FixedResolver
//   - export/    - ExportLiveries command
//   - list/      - ListLiveries command
//   - mode/      - SwitchMode, ModeStatus and SetModeValues commands
//   - genconfig/ - GenConfig command
//   - internal/  - Shared locking helpers
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/skinmanager/pkg/commands/export"
	"github.com/arthur-debert/skinmanager/pkg/commands/genconfig"
	"github.com/arthur-debert/skinmanager/pkg/commands/install"
	"github.com/arthur-debert/skinmanager/pkg/commands/list"
	"github.com/arthur-debert/skinmanager/pkg/commands/mode"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// ImportArchives installs the liveries of one or more archives.
type ImportArchivesOptions = install.ImportArchivesOptions

// FixedResolver answers every import conflict the same way.
type FixedResolver = install.FixedResolver

func ImportArchives(opts ImportArchivesOptions) (*types.ImportResult, error) {
	return install.ImportArchives(opts)
}

// ExportLiveries packs installed liveries into an archive.
type ExportLiveriesOptions = export.ExportLiveriesOptions

func ExportLiveries(opts ExportLiveriesOptions) (*types.ExportResult, error) {
	return export.ExportLiveries(opts)
}

// ListLiveries reports the installed liveries.
type ListLiveriesOptions = list.ListLiveriesOptions

func ListLiveries(opts ListLiveriesOptions) (*types.ListResult, error) {
	return list.ListLiveries(opts)
}

// SwitchMode enters, leaves or flips livery mode.
type SwitchModeOptions = mode.SwitchModeOptions
type ModeAction = mode.Action

// ParseModeAction accepts on, off and toggle.
func ParseModeAction(s string) (ModeAction, error) {
	return mode.ParseAction(s)
}

func SwitchMode(opts SwitchModeOptions) (*types.ModeResult, error) {
	return mode.SwitchMode(opts)
}

// ModeStatus reports the current livery mode.
type ModeStatusOptions = mode.ModeStatusOptions

func ModeStatus(opts ModeStatusOptions) (*types.ModeResult, error) {
	return mode.ModeStatus(opts)
}

// SetModeValues changes the values livery mode applies.
type SetModeValuesOptions = mode.SetModeValuesOptions

func SetModeValues(opts SetModeValuesOptions) (*types.ModeResult, error) {
	return mode.SetModeValues(opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
