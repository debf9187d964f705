// Package app provides the orchestration layer for nodeglass.
//
// Run is the single entry point: it loads user preferences, parses the
// chosen bitcoin.conf into a typed model, starts the background health
// poller, and hands everything to the UI. The app layer owns the pieces
// the UI and poller share (the snapshot store and the health target), so
// neither of those packages needs to know about the other.
package app
