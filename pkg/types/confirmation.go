package types

// ConflictRequest describes a livery whose import would overwrite installed files
type ConflictRequest struct {
	// Archive is the archive the livery came from
	Archive string

	// Livery is the candidate livery
	Livery Livery

	// Verdict is the conflict classification of the candidate
	Verdict ConflictVerdict

	// Differing lists the installed files whose content would change
	Differing []string
}

// DescriptorAction is the decision taken for a conflicting descriptor
type DescriptorAction int

const (
	// DescriptorOverride replaces the installed descriptor
	DescriptorOverride DescriptorAction = iota
	// DescriptorRename installs the descriptor under a new file name
	DescriptorRename
	// DescriptorSkip leaves the installed descriptor untouched
	DescriptorSkip
)

// DescriptorDecision answers a descriptor conflict.
// NewName is only read for DescriptorRename.
type DescriptorDecision struct {
	Action  DescriptorAction
	NewName string
}

// AssetsAction is the decision taken for a conflicting asset folder
type AssetsAction int

const (
	// AssetsOverride replaces the installed asset files
	AssetsOverride AssetsAction = iota
	// AssetsSkip leaves the installed asset folder untouched
	AssetsSkip
)

// ConflictResolver decides how conflicting imports are written.
// ResolveDescriptor is asked for DescriptorOnly and Both verdicts,
// ResolveAssets for AssetsOnly and Both.
type ConflictResolver interface {
	ResolveDescriptor(req ConflictRequest) (DescriptorDecision, error)
	ResolveAssets(req ConflictRequest) (AssetsAction, error)
}
