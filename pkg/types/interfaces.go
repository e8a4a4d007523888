package types

import (
	"io/fs"
)

// ReadFS is the read side of the filesystem: enough to inspect archives and
// the install tree
type ReadFS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}

// FS is the filesystem every skinmanager component works through. Paths are
// absolute; WriteFile expects the parent directory to exist.
type FS interface {
	ReadFS
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}
