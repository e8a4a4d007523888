package livery

import (
	"bytes"
	"io/fs"
	"strings"

	"github.com/arthur-debert/skinmanager/pkg/errors"
	"github.com/arthur-debert/skinmanager/pkg/logging"
	"github.com/arthur-debert/skinmanager/pkg/paths"
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// ignoredAssets are regenerated by the game or carry no livery data, so an
// existing copy never counts as a conflict.
var ignoredAssets = []string{
	"decals.json",
	"sponsors.json",
	"README.txt",
	"awesome.txt",
}

// IsIgnored reports whether an asset file name is left out of conflict checks
func IsIgnored(name string) bool {
	for _, ignored := range ignoredAssets {
		if strings.EqualFold(name, ignored) {
			return true
		}
	}
	return false
}

// Target is the state of one install target compared to a candidate file
type Target int

const (
	Missing Target = iota
	Same
	Differs
)

// Fold combines target states into a verdict. descriptor is Missing when
// the livery has no descriptor.
func Fold(descriptor Target, assets []Target) types.ConflictVerdict {
	verdict := types.VerdictNone
	descriptorConflict := false

	switch descriptor {
	case Same:
		verdict = types.VerdictIdentical
		descriptorConflict = true
	case Differs:
		verdict = types.VerdictDescriptorOnly
		descriptorConflict = true
	}

	for _, asset := range assets {
		switch asset {
		case Same:
			if verdict == types.VerdictNone {
				verdict = types.VerdictIdentical
			}
		case Differs:
			switch verdict {
			case types.VerdictNone:
				return types.VerdictAssetsOnly
			case types.VerdictDescriptorOnly:
				return types.VerdictBoth
			case types.VerdictIdentical:
				if descriptorConflict {
					return types.VerdictBoth
				}
				return types.VerdictAssetsOnly
			default:
				return verdict
			}
		}
	}
	return verdict
}

// Report is a full comparison of a livery against the install tree
type Report struct {
	Verdict types.ConflictVerdict
	// Differing lists existing targets whose content differs, descriptor first
	Differing []string
	// Ignored lists existing asset targets left out of the comparison
	Ignored []string
}

// Detector compares liveries with the install tree
type Detector struct {
	fs    types.ReadFS
	paths paths.Paths
}

// NewDetector creates a detector for the install tree described by p
func NewDetector(filesystem types.ReadFS, p paths.Paths) *Detector {
	return &Detector{fs: filesystem, paths: p}
}

// Classify returns the verdict for writing l, stopping at the first
// comparison that settles it.
func (d *Detector) Classify(l types.Livery) (types.ConflictVerdict, error) {
	descriptor := Missing
	if l.Descriptor != nil {
		state, err := d.compare(*l.Descriptor)
		if err != nil {
			return types.VerdictNone, err
		}
		descriptor = state
	}

	assets := make([]Target, 0, len(l.Assets))
	for _, asset := range l.Assets {
		if IsIgnored(asset.Name) {
			continue
		}
		state, err := d.compare(asset)
		if err != nil {
			return types.VerdictNone, err
		}
		assets = append(assets, state)
		if state == Differs {
			break
		}
	}
	return Fold(descriptor, assets), nil
}

// Report compares every target of l
func (d *Detector) Report(l types.Livery) (Report, error) {
	var report Report

	descriptor := Missing
	if l.Descriptor != nil {
		state, err := d.compare(*l.Descriptor)
		if err != nil {
			return report, err
		}
		descriptor = state
		if state == Differs {
			report.Differing = append(report.Differing, d.paths.TargetPath(*l.Descriptor))
		}
	}

	var assets []Target
	for _, asset := range l.Assets {
		state, err := d.compare(asset)
		if err != nil {
			return report, err
		}
		target := d.paths.TargetPath(asset)
		if IsIgnored(asset.Name) {
			if state != Missing {
				report.Ignored = append(report.Ignored, target)
			}
			continue
		}
		if state == Differs {
			report.Differing = append(report.Differing, target)
		}
		assets = append(assets, state)
	}

	report.Verdict = Fold(descriptor, assets)
	logger := logging.GetLogger("livery.conflict")
	logger.Debug().
		Str("livery", l.Key()).
		Str("verdict", report.Verdict.String()).
		Int("differing", len(report.Differing)).
		Msg("Classified livery")
	return report, nil
}

// compare checks the install target of entry: length first, then bytes
func (d *Detector) compare(entry types.RawEntry) (Target, error) {
	target := d.paths.TargetPath(entry)

	info, err := d.fs.Stat(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Missing, nil
		}
		return Missing, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", target).
			WithDetail("path", target)
	}
	if info.IsDir() || info.Size() != int64(len(entry.Data)) {
		return Differs, nil
	}

	existing, err := d.fs.ReadFile(target)
	if err != nil {
		return Missing, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", target).
			WithDetail("path", target)
	}
	if bytes.Equal(existing, entry.Data) {
		return Same, nil
	}
	return Differs, nil
}
