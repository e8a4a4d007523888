package types

// ConflictVerdict classifies what writing a livery would overwrite
type ConflictVerdict int

const (
	// VerdictNone means nothing exists at any target
	VerdictNone ConflictVerdict = iota
	// VerdictDescriptorOnly means only the descriptor would be overwritten
	VerdictDescriptorOnly
	// VerdictAssetsOnly means only asset files would be overwritten
	VerdictAssetsOnly
	// VerdictBoth means the descriptor and asset files would be overwritten
	VerdictBoth
	// VerdictIdentical means every existing target already holds the same bytes
	VerdictIdentical
)

// String returns the string representation of the verdict
func (v ConflictVerdict) String() string {
	switch v {
	case VerdictNone:
		return "none"
	case VerdictDescriptorOnly:
		return "descriptor"
	case VerdictAssetsOnly:
		return "assets"
	case VerdictBoth:
		return "both"
	case VerdictIdentical:
		return "identical"
	default:
		return "unknown"
	}
}

// DescriptorConflict reports whether the descriptor needs a rename-or-override decision
func (v ConflictVerdict) DescriptorConflict() bool {
	return v == VerdictDescriptorOnly || v == VerdictBoth
}

// AssetsConflict reports whether the asset folder needs an override-or-skip decision
func (v ConflictVerdict) AssetsConflict() bool {
	return v == VerdictAssetsOnly || v == VerdictBoth
}
