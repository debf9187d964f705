// Package conf parses, edits, and re-serializes bitcoin.conf-style files.
//
// # Two layers
//
// The package deliberately splits the untyped file from typed access:
//
//	file text → Parse → Document (ordered, verbatim) → Model (typed view)
//	Model edits → Document mutated in place → Serialize → file text
//
// The Document records every physical line (key=value pairs, comments,
// blank lines, and lines that fit no grammar at all) in original order,
// grouped under [section] headers with entries before the first header in
// the implicit "default" section. Parsing is total: no input text fails,
// and anything unrecognized is carried as an Unparseable entry rather than
// dropped. Advisory Issues flag oddities (ambiguous inline '#', duplicate
// section headers) without blocking.
//
// The Model layers the option catalog on top, decoding known keys lazily on
// read (Bool/Int/Str/MultiStr) and editing through a per-section key index.
// Unknown keys stay visible through UnknownEntries and untouched on disk.
// This split means a real-world file never has to validate fully before a
// single field can be edited.
//
// # Round-trip fidelity
//
// Serializing an unmodified Document reproduces the original text
// byte-for-byte: each untouched entry remembers its source line. Only
// entries added or edited in memory are rendered canonically, quoting a
// value just when it contains '#' or edge whitespace so it survives a
// reparse.
//
// Everything here is synchronous, in-memory, and single-caller; only
// LoadFile and SaveFile touch the filesystem, and SaveFile replaces the
// destination atomically via a temp file and rename.
package conf
