package livery

import (
	"path/filepath"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// Progress is called after each file a Writer puts on disk
type Progress func(done, total int, path string)

// Writer installs liveries into the install tree
type Writer struct {
	fs       types.FS
	paths    paths.Paths
	progress Progress
}

// NewWriter creates a writer for the install tree described by p.
// progress may be nil.
func NewWriter(filesystem types.FS, p paths.Paths, progress Progress) *Writer {
	return &Writer{fs: filesystem, paths: p, progress: progress}
}

// Write puts the descriptor and every asset of l on disk, overwriting
// existing files. The first failure stops the write; files already written
// stay in place. It returns the number of files written.
func (w *Writer) Write(l types.Livery) (int, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	logger := logging.GetLogger("livery.writer")
	total := len(l.Assets)
	if l.Descriptor != nil {
		total++
	}
	done := 0

	if l.Descriptor != nil {
		if err := w.writeFile(*l.Descriptor); err != nil {
			return done, err
		}
		done++
		w.report(done, total, *l.Descriptor)
	}

	if l.HasFolder() {
		dir := w.paths.LiveryDir(l.Folder)
		if err := w.fs.MkdirAll(dir, 0755); err != nil {
			return done, errors.Wrapf(err, errors.ErrDirCreate, "cannot create livery folder %s", l.Folder).
				WithDetail("path", dir)
		}
	}

	for _, asset := range l.Assets {
		if err := w.writeFile(asset); err != nil {
			return done, err
		}
		done++
		w.report(done, total, asset)
	}

	logger.Info().Str("livery", l.Key()).Int("files", done).Msg("Livery written")
	return done, nil
}

func (w *Writer) writeFile(entry types.RawEntry) error {
	target := w.paths.TargetPath(entry)
	dir := filepath.Dir(target)
	if err := w.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir).
			WithDetail("path", dir)
	}
	if err := w.fs.WriteFile(target, entry.Data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
			WithDetail("path", target)
	}
	return nil
}

func (w *Writer) report(done, total int, entry types.RawEntry) {
	if w.progress != nil {
		w.progress(done, total, entry.Path())
	}
}
