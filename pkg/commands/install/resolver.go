package install

import (
	"github.com/arthur-debert/skinmanager/pkg/types"
)

// FixedResolver answers every conflict the same way. It backs --force,
// --skip-existing and the non-interactive policies of the config file.
type FixedResolver struct {
	Override bool
}

// ResolveDescriptor overrides or skips, it never renames
func (r FixedResolver) ResolveDescriptor(types.ConflictRequest) (types.DescriptorDecision, error) {
	if r.Override {
		return types.DescriptorDecision{Action: types.DescriptorOverride}, nil
	}
	return types.DescriptorDecision{Action: types.DescriptorSkip}, nil
}

// ResolveAssets overrides or skips
func (r FixedResolver) ResolveAssets(types.ConflictRequest) (types.AssetsAction, error) {
	if r.Override {
		return types.AssetsOverride, nil
	}
	return types.AssetsSkip, nil
}
