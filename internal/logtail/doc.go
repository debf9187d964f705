// Package logtail reads the tail of the node's debug.log for display.
//
// Read extracts the last N lines with a ring buffer: one sequential pass,
// O(N) memory regardless of file size, lines returned in chronological
// order. There is no streaming or rotation handling; the UI re-reads on its
// refresh tick, which is plenty for an operator-facing view.
//
// DebugLogPath mirrors bitcoind's own resolution: an explicit debuglogfile
// wins (relative paths land under datadir), otherwise debug.log inside the
// configured or stock data directory.
package logtail
