package types

import (
	"path"
	"strings"

	"github.com/arthur-debert/skinmanager/pkg/errors"
)

// Directory names of the customs tree, shared by the archive and install layouts
const (
	CarsDir     = "Cars"
	LiveriesDir = "Liveries"
)

// PlacementKind tells where a raw entry belongs in the customs tree
type PlacementKind int

const (
	// PlacementDescriptor entries belong in the flat descriptor collection
	PlacementDescriptor PlacementKind = iota
	// PlacementAssetFolder entries belong under a named livery folder
	PlacementAssetFolder
)

// Placement is the logical location of a raw entry.
// Folder is only set for PlacementAssetFolder and is never empty there.
type Placement struct {
	Kind   PlacementKind
	Folder string
}

// DescriptorPlacement returns the placement of a car descriptor
func DescriptorPlacement() Placement {
	return Placement{Kind: PlacementDescriptor}
}

// AssetFolderPlacement returns the placement of a file inside the given livery folder
func AssetFolderPlacement(folder string) Placement {
	return Placement{Kind: PlacementAssetFolder, Folder: folder}
}

// IsDescriptor reports whether the placement is the descriptor collection
func (p Placement) IsDescriptor() bool {
	return p.Kind == PlacementDescriptor
}

// String returns the relative directory of the placement: "Cars" or "Liveries/<folder>"
func (p Placement) String() string {
	if p.Kind == PlacementAssetFolder {
		return LiveriesDir + "/" + p.Folder
	}
	return CarsDir
}

// RawEntry is one file pulled out of an archive or the install tree
type RawEntry struct {
	Placement Placement
	Name      string
	Data      []byte
}

// Path returns the entry path relative to the customs root, always with forward slashes
func (e RawEntry) Path() string {
	return e.Placement.String() + "/" + e.Name
}

// Livery groups one optional descriptor with the files of its asset folder.
// An empty Folder means the livery has no resolved folder key.
type Livery struct {
	Folder     string
	Descriptor *RawEntry
	Assets     []RawEntry
}

// HasFolder reports whether the livery has a resolved folder key
func (l Livery) HasFolder() bool {
	return l.Folder != ""
}

// IsEmpty reports whether the livery holds neither a descriptor nor any folder content
func (l Livery) IsEmpty() bool {
	return l.Descriptor == nil && l.Folder == "" && len(l.Assets) == 0
}

// Validate checks the livery invariant
func (l Livery) Validate() error {
	if l.IsEmpty() {
		return errors.New(errors.ErrLiveryInvalid, "livery has neither a descriptor nor an asset folder")
	}
	if l.HasFolder() && !SafeName(l.Folder) {
		return errors.Newf(errors.ErrLiveryInvalid, "unusable livery folder %q", l.Folder).
			WithDetail("folder", l.Folder)
	}
	for _, entry := range l.Entries() {
		if !SafeName(entry.Name) {
			return errors.Newf(errors.ErrLiveryInvalid, "unusable file name %q", entry.Name).
				WithDetail("livery", l.Key())
		}
	}
	return nil
}

// SafeName reports whether name can be used as a single path segment in the
// customs tree
func SafeName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

// Key returns a display key: the folder when resolved, else the descriptor stem
func (l Livery) Key() string {
	if l.Folder != "" {
		return l.Folder
	}
	if l.Descriptor != nil {
		return strings.TrimSuffix(l.Descriptor.Name, path.Ext(l.Descriptor.Name))
	}
	return ""
}

// Entries returns every raw entry owned by the livery, descriptor first
func (l Livery) Entries() []RawEntry {
	entries := make([]RawEntry, 0, len(l.Assets)+1)
	if l.Descriptor != nil {
		entries = append(entries, *l.Descriptor)
	}
	return append(entries, l.Assets...)
}

// WithDescriptorName returns a copy of the livery whose descriptor is stored under name
func (l Livery) WithDescriptorName(name string) Livery {
	if l.Descriptor == nil {
		return l
	}
	renamed := *l.Descriptor
	renamed.Name = name
	l.Descriptor = &renamed
	return l
}

// WithoutAssets returns a copy of the livery that leaves its asset folder untouched
func (l Livery) WithoutAssets() Livery {
	l.Folder = ""
	l.Assets = nil
	return l
}

// WithoutDescriptor returns a copy of the livery that leaves its descriptor untouched
func (l Livery) WithoutDescriptor() Livery {
	l.Descriptor = nil
	return l
}
