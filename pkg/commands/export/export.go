package export

import (
	"path/filepath"

	"github.com/arthur-debert/skinmanager/pkg/archive"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/installtree"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// DefaultArchiveName is used when several liveries go into one archive
const DefaultArchiveName = "liveries.zip"

// ExportLiveriesOptions defines the options for the ExportLiveries command.
type ExportLiveriesOptions struct {
	FileSystem types.FS
	Paths      paths.Paths
	// Keys select installed liveries by folder or descriptor name.
	Keys []string
	// Output is the archive to write. When empty the archive is named after
	// the single exported livery, or DefaultArchiveName, inside Dir.
	Output string
	Dir    string
}

// ExportLiveries packs installed liveries into one archive that ImportArchives
// can read back.
func ExportLiveries(opts ExportLiveriesOptions) (*types.ExportResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ExportLiveries").Strs("keys", opts.Keys).Msg("Executing command")
	defer logging.LogOperationStart(log, "ExportLiveries")()

	if len(opts.Keys) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no liveries to export")
	}

	liveries, err := installtree.NewReader(opts.FileSystem, opts.Paths).Find(opts.Keys...)
	if err != nil {
		return nil, err
	}

	data, err := archive.PackAll(liveries)
	if err != nil {
		return nil, err
	}

	output := OutputPath(opts.Output, opts.Dir, liveries)
	if err := opts.FileSystem.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(output))
	}
	if err := opts.FileSystem.WriteFile(output, data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", output).
			WithDetail("path", output)
	}

	result := &types.ExportResult{Output: output, Bytes: len(data)}
	for _, l := range liveries {
		result.Liveries = append(result.Liveries, l.Key())
		result.Files += len(l.Entries())
	}

	log.Info().Str("command", "ExportLiveries").Str("output", output).Int("liveries", len(liveries)).Msg("Command finished")
	return result, nil
}

// OutputPath picks the archive path for liveries
func OutputPath(output, dir string, liveries []types.Livery) string {
	if output != "" {
		return output
	}
	name := DefaultArchiveName
	if len(liveries) == 1 && liveries[0].Key() != "" {
		name = liveries[0].Key() + ".zip"
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, name)
}
