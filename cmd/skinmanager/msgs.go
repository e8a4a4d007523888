package skinmanager

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Manage Assetto Corsa Competizione liveries"
	MsgImportShort     = "Install the liveries of zip archives"
	MsgExportShort     = "Pack installed liveries into a zip archive"
	MsgListShort       = "List installed liveries"
	MsgListLong        = "List shows every livery found in Customs/Cars and Customs/Liveries."
	MsgModeShort       = "Enter, leave or show livery mode"
	MsgModeSetShort    = "Change the settings livery mode applies"
	MsgModeSetLong     = "Set changes the values written to menuSettings.json when entering livery mode.\nOnly the given flags are changed."
	MsgConfigShort     = "Manage the skinmanager configuration"
	MsgConfigInitShort = "Output or write the default configuration"
	MsgConfigShowShort = "Show the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrInitPaths     = "failed to initialize paths: %w"
	MsgErrImportFailed  = "%d of %d liveries could not be imported"
	MsgErrArchiveFailed = "%d archives could not be read"
	MsgErrUnknownFormat = "invalid output format: %w"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot         = "Game documents folder (default: discovered)"
	MsgFlagConfig       = "Config file (default: $XDG_CONFIG_HOME/skinmanager/config.toml)"
	MsgFlagForce        = "Override installed files on every conflict"
	MsgFlagSkipExisting = "Keep installed files on every conflict"
	MsgFlagExportOutput = "Archive to write (default: <livery>.zip or liveries.zip)"
	MsgFlagListOutput   = "Output format: table, json or yaml"
	MsgFlagWrite        = "Write the config file instead of printing it"
	MsgFlagForceConfig  = "Replace an existing config file"
	MsgFlagDDS          = "Generate DDS textures"
	MsgFlagResolution   = "Resolution as WIDTHxHEIGHT"
	MsgFlagFullscreen   = "Run fullscreen"
	MsgFlagMaster       = "Master volume, 0.0 to 1.0"
	MsgFlagMusic        = "Music volume, 0.0 to 1.0"

	// Status messages
	MsgVersionFormat = "skinmanager version %s\n  commit: %s\n  built:  %s\n"
	MsgNoTerminal    = "Input is not a terminal, conflicting liveries are skipped"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/import-long.txt
	msgImportLongRaw string
	MsgImportLong    = strings.TrimSpace(msgImportLongRaw)

	//go:embed msgs/import-example.txt
	msgImportExampleRaw string
	MsgImportExample    = strings.TrimRight(msgImportExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/mode-long.txt
	msgModeLongRaw string
	MsgModeLong    = strings.TrimSpace(msgModeLongRaw)

	//go:embed msgs/mode-example.txt
	msgModeExampleRaw string
	MsgModeExample    = strings.TrimRight(msgModeExampleRaw, "\n")

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
