// Package installtree reads the customs files already installed in the game
// folder as raw entries, so installed liveries go through the same grouping
// as imported ones.
package installtree

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/livery"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Reader reads entries from one install tree
type Reader struct {
	fs    types.ReadFS
	paths paths.Paths
}

// NewReader creates a reader for the install tree described by p
func NewReader(filesystem types.ReadFS, p paths.Paths) *Reader {
	return &Reader{fs: filesystem, paths: p}
}

// Entries returns every installed descriptor followed by the files of each
// livery folder. Missing collections yield no entries. Nested directories
// inside a livery folder are not part of the layout and are skipped.
func (r *Reader) Entries() ([]types.RawEntry, error) {
	logger := logging.GetLogger("installtree")

	descriptors, err := r.readFiles(r.paths.CarsDir(), types.DescriptorPlacement())
	if err != nil {
		return nil, err
	}
	entries := descriptors

	folders, err := r.readDir(r.paths.LiveriesDir())
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		if !folder.IsDir() {
			logger.Debug().Str("name", folder.Name()).Msg("Ignoring loose file in liveries directory")
			continue
		}
		files, err := r.readFiles(r.paths.LiveryDir(folder.Name()), types.AssetFolderPlacement(folder.Name()))
		if err != nil {
			return nil, err
		}
		entries = append(entries, files...)
	}

	logger.Debug().Int("entries", len(entries)).Msg("Read install tree")
	return entries, nil
}

// Liveries groups the installed entries
func (r *Reader) Liveries() ([]types.Livery, error) {
	entries, err := r.Entries()
	if err != nil {
		return nil, err
	}
	return livery.Group(entries), nil
}

// Find returns the installed liveries matching keys, in key order. A key
// matches a livery folder or a descriptor file name with or without its
// extension.
func (r *Reader) Find(keys ...string) ([]types.Livery, error) {
	installed, err := r.Liveries()
	if err != nil {
		return nil, err
	}

	var found []types.Livery
	for _, key := range keys {
		match := -1
		for i, l := range installed {
			if matches(l, key) {
				match = i
				break
			}
		}
		if match < 0 {
			return nil, errors.Newf(errors.ErrLiveryNotFound, "no installed livery named %s", key).
				WithDetail("key", key)
		}
		found = append(found, installed[match])
	}
	return found, nil
}

func matches(l types.Livery, key string) bool {
	if l.Folder == key || l.Key() == key {
		return true
	}
	return l.Descriptor != nil && l.Descriptor.Name == key
}

func (r *Reader) readDir(dir string) ([]fs.DirEntry, error) {
	items, err := r.fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot list %s", dir).
			WithDetail("path", dir)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name() < items[j].Name() })
	return items, nil
}

func (r *Reader) readFiles(dir string, placement types.Placement) ([]types.RawEntry, error) {
	items, err := r.readDir(dir)
	if err != nil {
		return nil, err
	}
	var entries []types.RawEntry
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		path := filepath.Join(dir, item.Name())
		data, err := r.fs.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
				WithDetail("path", path)
		}
		entries = append(entries, types.RawEntry{Placement: placement, Name: item.Name(), Data: data})
	}
	return entries, nil
}
