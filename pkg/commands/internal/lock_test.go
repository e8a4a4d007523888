package internal

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLockEmptyPath(t *testing.T) {
	l, err := AcquireLock("")
	require.NoError(t, err)
	assert.Nil(t, l)

	var runErr error
	ReleaseLock(l, &runErr)
	assert.NoError(t, runErr)
}

func TestAcquireLockHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", ".lock")

	first, err := AcquireLock(path)
	require.NoError(t, err)
	require.NotNil(t, first)

	_, err = AcquireLock(path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrLocked))

	var runErr error
	ReleaseLock(first, &runErr)
	require.NoError(t, runErr)

	again, err := AcquireLock(path)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
