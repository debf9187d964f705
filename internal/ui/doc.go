// Package ui provides the Bubble Tea terminal interface for nodeglass.
//
// The root Model owns four views:
//
//   - Options: the catalog-driven option browser and editor. Sections come
//     from the option catalog; values are read and written through the typed
//     conf.Model against the file's default section.
//   - Unknown: key=value entries the catalog does not recognize, plus
//     unparseable lines and advisory parse notes. Shown read-only so the
//     operator knows what the editor is preserving verbatim.
//   - Logs: a tail of the node's debug.log, re-read on every poll tick while
//     visible.
//   - Picker: a file picker for choosing the bitcoin.conf to edit. This is
//     the start view when no config path is known.
//
// Node health arrives through state.Store snapshots written by the
// background poller; the UI never probes the pid file itself. After a load
// or save the UI re-points the shared health.Target at the file's pid path
// so the next poll reflects the new document.
//
// Edits happen in memory on the conf.Model and are written back only on an
// explicit save. The header shows a dirty marker while unsaved edits exist.
package ui
