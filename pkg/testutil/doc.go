// Package testutil provides fixtures for testing skinmanager components.
//
// Key components:
//   - NewInstall: an in-memory install tree rooted at /acc
//   - WriteFiles: declarative file setup from a path to content map
//   - FaultyFS: a types.FS wrapper that fails chosen paths
//   - Livery / Archive: livery values and packed zip archives
//
// All test data is defined inline; tests share no state.
package testutil
