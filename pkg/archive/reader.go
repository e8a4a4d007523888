package archive

import (
	"bytes"
	"io"
	"path"
	"strings"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/types"
	"github.com/klauspost/compress/zip"
)

// DuplicateEntry is the skip reason of a member whose path an earlier member
// already used
const DuplicateEntry = "duplicate entry"

// Skipped is an archive member that could not be turned into an entry
type Skipped struct {
	Path   string
	Reason string
}

// Extraction is the result of reading every member of an archive
type Extraction struct {
	Entries []types.RawEntry
	Skipped []Skipped
}

// Reader gives access to the members of one archive
type Reader struct {
	name  string
	names []string
	files map[string]*zip.File
	// later members repeating an earlier path; the first one wins
	duplicates []string
}

// Open reads an archive held in memory. archiveName is used to name the
// folder of top-level files; only its base name matters.
func Open(data []byte, archiveName string) (*Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchiveInvalid, "cannot read archive %s", archiveName).
			WithDetail("archive", archiveName)
	}

	r := &Reader{
		name:  archiveName,
		files: make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		p := normalize(f.Name)
		if f.FileInfo().IsDir() || strings.HasSuffix(p, "/") {
			continue
		}
		if _, dup := r.files[p]; dup {
			r.duplicates = append(r.duplicates, p)
			continue
		}
		r.files[p] = f
		r.names = append(r.names, p)
	}
	return r, nil
}

// OpenFile reads the archive at path
func OpenFile(filesystem types.ReadFS, archivePath string) (*Reader, error) {
	data, err := filesystem.ReadFile(archivePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", archivePath).
			WithDetail("path", archivePath)
	}
	return Open(data, archivePath)
}

// Name returns the archive name given to Open
func (r *Reader) Name() string {
	return r.name
}

// Names returns the path of every file in the archive, in archive order
func (r *Reader) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// ReadEntry returns the content of the file at entryPath
func (r *Reader) ReadEntry(entryPath string) ([]byte, error) {
	f, ok := r.files[normalize(entryPath)]
	if !ok {
		return nil, errors.Newf(errors.ErrEntryNotFound, "no entry %s in archive", entryPath).
			WithDetail("entry", entryPath)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEntryRead, "cannot open entry %s", entryPath).
			WithDetail("entry", entryPath)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEntryRead, "cannot extract entry %s", entryPath).
			WithDetail("entry", entryPath)
	}
	return data, nil
}

// Entries extracts every file with its placement. Files that cannot be
// extracted or placed are reported in Skipped and do not stop the extraction.
func (r *Reader) Entries() Extraction {
	logger := logging.GetLogger("archive")
	var out Extraction

	for _, p := range r.names {
		placement, name, err := PlacementOf(p, r.name)
		if err != nil {
			logger.Warn().Str("archive", r.name).Str("entry", p).Err(err).Msg("Skipping archive entry")
			out.Skipped = append(out.Skipped, Skipped{Path: p, Reason: err.Error()})
			continue
		}
		data, err := r.ReadEntry(p)
		if err != nil {
			logger.Warn().Str("archive", r.name).Str("entry", p).Err(err).Msg("Skipping unreadable archive entry")
			out.Skipped = append(out.Skipped, Skipped{Path: p, Reason: err.Error()})
			continue
		}
		out.Entries = append(out.Entries, types.RawEntry{Placement: placement, Name: name, Data: data})
	}
	for _, p := range r.duplicates {
		logger.Warn().Str("archive", r.name).Str("entry", p).Msg("Skipping duplicate archive entry")
		out.Skipped = append(out.Skipped, Skipped{Path: p, Reason: DuplicateEntry})
	}

	logger.Debug().
		Str("archive", r.name).
		Int("entries", len(out.Entries)).
		Int("skipped", len(out.Skipped)).
		Msg("Archive extracted")
	return out
}

// PlacementOf derives the placement and file name of an archive member
func PlacementOf(entryPath, archiveName string) (types.Placement, string, error) {
	segments := strings.Split(strings.Trim(normalize(entryPath), "/"), "/")
	name := segments[len(segments)-1]
	if !types.SafeName(name) {
		return types.Placement{}, "", errors.Newf(errors.ErrInvalidInput, "unusable file name %q", name)
	}

	folder := ""
	if len(segments) > 1 {
		folder = strings.TrimSpace(segments[len(segments)-2])
	}
	if folder == "" {
		folder = Stem(archiveName)
	} else if strings.EqualFold(folder, types.CarsDir) {
		return types.DescriptorPlacement(), name, nil
	}

	if !types.SafeName(folder) {
		return types.Placement{}, "", errors.Newf(errors.ErrInvalidInput, "unusable livery folder %q", folder)
	}
	return types.AssetFolderPlacement(folder), name, nil
}

// Stem returns the archive's base name without extension
func Stem(archiveName string) string {
	base := path.Base(normalize(archiveName))
	if base == "." || base == "/" {
		return ""
	}
	return strings.TrimSpace(strings.TrimSuffix(base, path.Ext(base)))
}

func normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
