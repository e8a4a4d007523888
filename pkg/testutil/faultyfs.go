package testutil

import (
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/skinmanager/pkg/types"
)

// FaultyFS wraps a types.FS and returns configured errors for chosen paths
type FaultyFS struct {
	types.FS

	mu         sync.Mutex
	errorPaths map[string]error

	// Statistics
	readCount  int
	writeCount int
}

// NewFaultyFS wraps inner
func NewFaultyFS(inner types.FS) *FaultyFS {
	return &FaultyFS{FS: inner, errorPaths: make(map[string]error)}
}

// WithError makes every operation on path fail with err
func (f *FaultyFS) WithError(path string, err error) *FaultyFS {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errorPaths[filepath.Clean(path)] = err
	return f
}

// Stats returns the number of reads and writes that reached the wrapped filesystem
func (f *FaultyFS) Stats() (reads, writes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readCount, f.writeCount
}

func (f *FaultyFS) fault(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorPaths[filepath.Clean(path)]
}

func (f *FaultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fault(name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *FaultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.fault(name); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.readCount++
	f.mu.Unlock()
	return f.FS.ReadFile(name)
}

func (f *FaultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.fault(name); err != nil {
		return err
	}
	f.mu.Lock()
	f.writeCount++
	f.mu.Unlock()
	return f.FS.WriteFile(name, data, perm)
}

func (f *FaultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fault(path); err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fault(name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
