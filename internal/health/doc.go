// Package health answers "is the node alive?" by correlating the configured
// pid file with operating-system process state.
//
// The check is a chain of expected, routine outcomes rather than errors:
// no pid file configured, pid file missing, pid file unreadable, process
// dead, process alive. Each outcome is a Status variant the UI can display
// directly; nothing here raises an error for a stopped node.
//
// The probe is inherently racy: a pid can be recycled between reading the
// file and signalling the process, and that is not fixable given pid
// reuse. The interface makes the best-effort nature explicit: a Status is
// derived fresh per check, never cached, and callers re-check on demand
// (the app's poller does so on a fixed cadence).
package health
