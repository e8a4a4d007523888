// Package filesystem provides the types.FS implementations used by skinmanager.
//
// Both the real filesystem and the in-memory one used by tests are afero
// backends behind the same adapter, so they share one WriteFile: data is
// written to a temporary sibling and renamed over the target, and a failed
// write never leaves a truncated descriptor or settings document behind.
package filesystem
