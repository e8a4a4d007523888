package errors_test

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *errors.SkinError
		want string
	}{
		{
			name: "plain",
			err:  errors.New(errors.ErrLiveryNotFound, "no installed livery named gt3"),
			want: "[LIVERY_NOT_FOUND] no installed livery named gt3",
		},
		{
			name: "formatted",
			err:  errors.Newf(errors.ErrSettingsField, "field %s is not a number", "audio.main"),
			want: "[SETTINGS_FIELD] field audio.main is not a number",
		},
		{
			name: "wrapped",
			err:  errors.Wrap(fs.ErrNotExist, errors.ErrArchiveInvalid, "cannot open pack.zip"),
			want: "[ARCHIVE_INVALID] cannot open pack.zip: file does not exist",
		},
		{
			name: "wrapped formatted",
			err:  errors.Wrapf(fs.ErrPermission, errors.ErrFileWrite, "cannot write %s", "car.json"),
			want: "[FILE_WRITE] cannot write car.json: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.NotNil(t, tt.err.Details)
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLocked, "install tree busy").
		WithDetail("path", "/acc/.skinmanager.lock").
		WithDetail("attempts", 3)

	assert.Equal(t, map[string]interface{}{"path": "/acc/.skinmanager.lock", "attempts": 3}, errors.GetErrorDetails(err))

	bare := &errors.SkinError{Code: errors.ErrUnknown}
	bare.WithDetail("k", "v")
	assert.Equal(t, "v", bare.Details["k"])
}

func TestCodesThroughChains(t *testing.T) {
	inner := errors.Wrap(fs.ErrNotExist, errors.ErrStateLoad, "cannot read state")
	outer := fmt.Errorf("mode status: %w", inner)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrStateLoad))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrStateSave))
	assert.Equal(t, errors.ErrStateLoad, errors.GetErrorCode(outer))
	assert.True(t, errors.Is(outer, fs.ErrNotExist))

	// Is matches on code alone
	assert.True(t, stderrors.Is(outer, errors.New(errors.ErrStateLoad, "other message")))
	assert.False(t, stderrors.Is(outer, errors.New(errors.ErrStateSave, "cannot read state")))
}

func TestPlainErrors(t *testing.T) {
	plain := stderrors.New("boom")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
	assert.False(t, errors.IsErrorCode(plain, errors.ErrUnknown))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
}

func TestUnwrap(t *testing.T) {
	err := errors.Wrap(fs.ErrClosed, errors.ErrEntryRead, "read entry")
	assert.Same(t, fs.ErrClosed, stderrors.Unwrap(err))
	assert.Nil(t, stderrors.Unwrap(errors.New(errors.ErrEntryRead, "read entry")))
}

func TestMarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	err := errors.Wrap(fs.ErrNotExist, errors.ErrEntryNotFound, "missing entry").WithDetail("entry", "cars/a.json")
	logger.Info().Object("error", err).Msg("")

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"code":"ENTRY_NOT_FOUND"`)
	assert.Contains(t, out, `"message":"missing entry"`)
	assert.Contains(t, out, `"entry":"cars/a.json"`)
	assert.Contains(t, out, `"cause":"file does not exist"`)
}
