// Package internal holds helpers shared by the command implementations.
package internal

import (
	"github.com/arthur-debert/skinmanager/pkg/lock"
)

// AcquireLock takes the install tree lock. An empty path means the caller
// runs without a lock, which is what in-memory tests do.
func AcquireLock(path string) (*lock.Lock, error) {
	if path == "" {
		return nil, nil
	}
	return lock.Acquire(path)
}

// ReleaseLock releases l and folds a release failure into err
func ReleaseLock(l *lock.Lock, err *error) {
	if releaseErr := l.Release(); releaseErr != nil && *err == nil {
		*err = releaseErr
	}
}
