// Package livery turns loose customs files into liveries and decides how
// they meet the install tree.
//
// Group associates car descriptors with asset folders through the
// descriptor's customSkinName field. A Detector classifies what writing a
// livery would overwrite, and a Writer puts a livery on disk.
//
// Grouping is deterministic: entries are processed in input order and the
// first descriptor naming a folder claims it. A later descriptor naming the
// same folder gets a livery of its own with no assets.
package livery
