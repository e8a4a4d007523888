// Package jsondoc edits single values inside a JSON document without
// disturbing the rest of it.
//
// A Document keeps the decoded source text and applies every edit in place,
// so key order, whitespace and unrelated values stay byte-identical. The
// text encoding of the source (UTF-8 with or without a byte order mark,
// UTF-16 little or big endian) is detected on Parse and reproduced by Bytes.
// The game writes its settings as UTF-16LE, which is why this matters.
//
// Paths use gjson syntax ("graphicOptions.resolution.x").
package jsondoc
