// Package types defines the core data model shared by skinmanager packages.
//
// RawEntry is a single file pulled out of an archive or the install tree,
// tagged with its Placement. Livery groups one optional descriptor with the
// files of its asset folder. ConflictVerdict classifies what writing a livery
// would overwrite. FieldSet holds the five menu settings managed by livery
// mode. FS is the filesystem interface every component takes, so tests can
// run against an in-memory tree.
package types
