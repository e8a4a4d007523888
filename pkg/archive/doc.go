// Package archive reads livery archives into raw entries and packs
// liveries back into archives.
//
// An entry's placement comes from its immediate parent directory: "Cars"
// (any case) marks a car descriptor, any other directory names the livery
// folder the file belongs to. Files at the top level of an archive belong
// to a folder named after the archive itself. Deeper prefixes are ignored,
// so "MyPack/Liveries/TeamA/decals.png" lands in the TeamA folder.
//
// Packing writes the install layout: "Cars/<name>" for descriptors and
// "Liveries/<folder>/<name>" for assets. A packed archive reads back to
// the same entries.
package archive
