package genconfig

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/skinmanager/pkg/config"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// GenConfigOptions holds options for the config init command
type GenConfigOptions struct {
	FileSystem types.FS
	// Path is where the config file is written
	Path string
	// Write puts the file on disk; otherwise the content is only returned
	Write bool
	// Force replaces an existing config file
	Force bool
}

// GenConfig outputs or writes the default configuration
func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &types.GenConfigResult{
		ConfigContent: config.GenerateConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	if _, err := opts.FileSystem.Stat(opts.Path); err == nil {
		if !opts.Force {
			return result, errors.Newf(errors.ErrAlreadyExists, "config file %s already exists", opts.Path).
				WithDetail("path", opts.Path)
		}
		logger.Warn().Str("path", opts.Path).Msg("Replacing existing config file")
	} else if !errors.Is(err, fs.ErrNotExist) {
		return result, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", opts.Path)
	}

	dir := filepath.Dir(opts.Path)
	if err := opts.FileSystem.MkdirAll(dir, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}
	if err := opts.FileSystem.WriteFile(opts.Path, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", opts.Path)
	}

	logger.Info().Str("path", opts.Path).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, opts.Path)
	return result, nil
}
