// Package lock keeps two skinmanager processes from changing the same
// install tree at once.
package lock

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/gofrs/flock"
)

// Lock is a held advisory lock
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes the lock at path without waiting. A lock held by another
// process fails with ErrLocked.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create lock directory").
			WithDetail("path", path)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot acquire lock").
			WithDetail("path", path)
	}
	if !ok {
		return nil, errors.New(errors.ErrLocked, "another skinmanager process is working on this install").
			WithDetail("path", path)
	}

	logger := logging.GetLogger("lock")
	logger.Debug().Str("path", path).Msg("Lock acquired")
	return &Lock{path: path, fl: fl}, nil
}

// Path returns the lock file path
func (l *Lock) Path() string {
	return l.path
}

// Release gives the lock up. Releasing a nil lock does nothing.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := l.fl.Unlock(); err != nil {
		return errors.Wrap(err, errors.ErrFileAccess, "cannot release lock").
			WithDetail("path", l.path)
	}
	logger := logging.GetLogger("lock")
	logger.Debug().Str("path", l.path).Msg("Lock released")
	return nil
}
