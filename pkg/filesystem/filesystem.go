package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS adapts an afero.Fs to types.FS
type aferoFS struct {
	fs afero.Fs
}

// NewOS returns the real filesystem
func NewOS() types.FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() types.FS {
	return New(afero.NewMemMapFs())
}

// New wraps any afero backend
func New(backend afero.Fs) types.FS {
	return &aferoFS{fs: backend}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// WriteFile replaces name atomically. The parent directory must exist.
func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	tmp, err := afero.TempFile(a.fs, filepath.Dir(name), "."+filepath.Base(name)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = a.fs.Chmod(tmpName, perm)
	}
	if err == nil {
		err = a.fs.Rename(tmpName, name)
	}
	if err != nil {
		_ = a.fs.Remove(tmpName)
		return err
	}
	return nil
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

// ReadDir returns the entries of name sorted by file name
func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}
