// Package paths provides centralized path handling for skinmanager.
//
// Every component receives a Paths value built from an explicit install
// root, so tests can point the whole tool at a temporary directory. The
// layout below the root is fixed by the game:
//
//	<root>/Customs/Cars/<descriptor>.json
//	<root>/Customs/Liveries/<folder>/<asset files...>
//	<root>/Config/menuSettings.json
//	<root>/Apps/Skinmanager/settings.json
//
// # Root Discovery
//
// When no root is given, New looks for the game folder in the user's
// documents directory (resolved through XDG user dirs) and then inside the
// Proton prefix of a Steam install. If none exists the documents location
// is used anyway and UsedFallback reports true so callers can warn.
//
// # Tool Directories
//
// The tool's own configuration and log file live under the XDG config and
// state homes, in a "skinmanager" directory.
package paths
