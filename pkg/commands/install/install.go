package install

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/skinmanager/pkg/archive"
	"github.com/arthur-debert/skinmanager/pkg/commands/internal"
	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/livery"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// ImportArchivesOptions defines the options for the ImportArchives command.
type ImportArchivesOptions struct {
	// FileSystem is used both to read archives and to write the install tree.
	FileSystem types.FS
	// Paths describes the install tree.
	Paths paths.Paths
	// Archives are the zip files to import, in order.
	Archives []string
	// Resolver decides conflicting imports. Nil skips every conflict.
	Resolver types.ConflictResolver
	// Progress is called for each file written. May be nil.
	Progress livery.Progress
	// LockPath is the install tree lock. Empty runs without a lock.
	LockPath string
}

// ImportArchives installs the liveries found in each archive. An archive that
// cannot be opened is reported and the run continues with the next one; a
// livery that fails to write is reported and does not stop its archive.
func ImportArchives(opts ImportArchivesOptions) (result *types.ImportResult, err error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ImportArchives").Int("archives", len(opts.Archives)).Msg("Executing command")
	defer logging.LogOperationStart(log, "ImportArchives")()

	if len(opts.Archives) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no archives to import")
	}
	resolver := opts.Resolver
	if resolver == nil {
		resolver = FixedResolver{}
	}

	held, err := internal.AcquireLock(opts.LockPath)
	if err != nil {
		return nil, err
	}
	defer internal.ReleaseLock(held, &err)

	imp := &importer{
		detector: livery.NewDetector(opts.FileSystem, opts.Paths),
		writer:   livery.NewWriter(opts.FileSystem, opts.Paths, opts.Progress),
		fs:       opts.FileSystem,
		paths:    opts.Paths,
		resolver: resolver,
	}
	result = &types.ImportResult{Liveries: []types.LiveryImport{}}

	for _, archivePath := range opts.Archives {
		name := filepath.Base(archivePath)
		reader, openErr := archive.OpenFile(opts.FileSystem, archivePath)
		if openErr != nil {
			log.Warn().Err(openErr).Str("archive", archivePath).Msg("Cannot read archive")
			result.FailedArchives = append(result.FailedArchives, types.ArchiveFailure{
				Archive: name,
				Error:   openErr.Error(),
			})
			continue
		}

		extraction := reader.Entries()
		for _, s := range extraction.Skipped {
			result.SkippedEntries = append(result.SkippedEntries, types.SkippedEntry{
				Archive: name,
				Path:    s.Path,
				Reason:  s.Reason,
			})
		}

		for _, l := range livery.Group(extraction.Entries) {
			outcome, resolveErr := imp.importLivery(name, l)
			if resolveErr != nil {
				return result, resolveErr
			}
			result.Liveries = append(result.Liveries, outcome)
		}
	}

	log.Info().
		Str("command", "ImportArchives").
		Int("written", result.Count(types.ImportWritten)+result.Count(types.ImportRenamed)+result.Count(types.ImportPartial)).
		Int("upToDate", result.Count(types.ImportUpToDate)).
		Int("skipped", result.Count(types.ImportSkipped)).
		Int("failed", result.Count(types.ImportFailed)+len(result.FailedArchives)).
		Msg("Command finished")
	return result, nil
}

type importer struct {
	detector *livery.Detector
	writer   *livery.Writer
	fs       types.FS
	paths    paths.Paths
	resolver types.ConflictResolver
}

// importLivery classifies l, applies the resolver's decisions and writes what
// is left. Only resolver errors are returned; everything else lands in the outcome.
func (imp *importer) importLivery(archiveName string, l types.Livery) (types.LiveryImport, error) {
	log := logging.GetLogger("core.commands")
	outcome := types.LiveryImport{Archive: archiveName, Key: l.Key()}
	if l.Descriptor != nil {
		outcome.Descriptor = l.Descriptor.Name
	}

	report, err := imp.detector.Report(l)
	if err != nil {
		return fail(outcome, err), nil
	}
	outcome.Verdict = report.Verdict.String()

	switch report.Verdict {
	case types.VerdictIdentical:
		outcome.Status = types.ImportUpToDate
		return outcome, nil
	case types.VerdictNone:
		return imp.write(outcome, l, types.ImportWritten), nil
	}

	req := types.ConflictRequest{
		Archive:   archiveName,
		Livery:    l,
		Verdict:   report.Verdict,
		Differing: report.Differing,
	}
	toWrite := l
	status := types.ImportWritten
	dropped := false

	if report.Verdict.DescriptorConflict() {
		decision, err := imp.resolver.ResolveDescriptor(req)
		if err != nil {
			return outcome, err
		}
		switch decision.Action {
		case types.DescriptorRename:
			name, err := imp.renameTarget(decision.NewName)
			if err != nil {
				return fail(outcome, err), nil
			}
			toWrite = toWrite.WithDescriptorName(name)
			outcome.Descriptor = name
			status = types.ImportRenamed
		case types.DescriptorSkip:
			toWrite = toWrite.WithoutDescriptor()
			outcome.Descriptor = ""
			dropped = true
		}
	}

	if report.Verdict.AssetsConflict() {
		action, err := imp.resolver.ResolveAssets(req)
		if err != nil {
			return outcome, err
		}
		if action == types.AssetsSkip {
			toWrite = toWrite.WithoutAssets()
			dropped = true
		}
	}

	if toWrite.IsEmpty() {
		log.Debug().Str("livery", l.Key()).Msg("Conflicting livery left untouched")
		outcome.Status = types.ImportSkipped
		return outcome, nil
	}
	if dropped && status == types.ImportWritten {
		status = types.ImportPartial
	}
	return imp.write(outcome, toWrite, status), nil
}

func (imp *importer) write(outcome types.LiveryImport, l types.Livery, status types.ImportStatus) types.LiveryImport {
	n, err := imp.writer.Write(l)
	outcome.Files = n
	if err != nil {
		return fail(outcome, err)
	}
	outcome.Status = status
	return outcome
}

// renameTarget validates a new descriptor name, adding the .json extension
// when it is missing. The name must not collide with an installed descriptor.
func (imp *importer) renameTarget(newName string) (string, error) {
	name := strings.TrimSpace(newName)
	if !strings.EqualFold(path.Ext(name), ".json") {
		name += ".json"
	}
	stem := strings.TrimSuffix(name, path.Ext(name))
	if stem == "" || stem == "." || stem == ".." || strings.ContainsAny(name, `/\`) {
		return "", errors.Newf(errors.ErrInvalidInput, "invalid descriptor name %q", newName)
	}

	target := imp.paths.DescriptorPath(name)
	if _, err := imp.fs.Stat(target); err == nil {
		return "", errors.Newf(errors.ErrAlreadyExists, "descriptor %s already exists", name).
			WithDetail("path", target)
	}
	return name, nil
}

func fail(outcome types.LiveryImport, err error) types.LiveryImport {
	logger := logging.GetLogger("core.commands")
	logger.Warn().Err(err).Str("livery", outcome.Key).Msg("Livery import failed")
	outcome.Status = types.ImportFailed
	outcome.Error = err.Error()
	return outcome
}
