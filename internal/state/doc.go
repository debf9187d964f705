// Package state provides the thread-safe snapshot store that connects the
// background health poller to the UI.
//
// The poller is the single writer: each completed check replaces the whole
// snapshot under a write lock. The UI reads snapshots on its own refresh
// schedule under a read lock. Snapshots are plain values, so a returned
// copy can never change out from under a render.
//
// The zero Store is ready to use; before the first update a snapshot has
// HasHealth false, which the UI renders as a pending check.
package state
