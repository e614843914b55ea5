// Package state holds the API health shared between the background poller and
// the UI.
//
// The poller is the single writer and calls Store.Update after every health
// check. The UI reads Store.Snapshot on its refresh tick. Snapshots are copies,
// so the UI never observes a half-written value.
//
// One failed check only marks the API as not online. Two or more in a row make
// Snapshot.IsOffline report true, which the header renders as OFFLINE. The zero
// Store is ready to use.
package state
