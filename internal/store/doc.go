// Package store provides the thread-safe container for the book collection.
//
// # Overview
//
// The Store is the single source of truth for everything the UI renders. It
// keeps an ordered mapping from id to record and exposes exactly three
// mutations — Load, Upsert, and Delete — each of which replaces an entry (or
// the whole collection) atomically. There are no partial in-place field
// edits, which rules out interleaved-write corruption within one mutation.
//
// # Confirmed State Only
//
// A record's presence in the store implies the remote resource has confirmed
// it. The command layer only calls a mutation after a successful round trip
// and always with the server-returned record, so the visible collection is
// always consistent with the last known server state. There is no optimistic
// insertion and no rollback machinery, because nothing speculative ever
// lands here.
//
// # Concurrency Model
//
// Access is guarded by a sync.RWMutex: operations completing off the UI
// goroutine write through the same three mutations the UI-driven paths use,
// and reads return defensive copies. Effects apply in completion order, not
// initiation order; cross-operation races on the same id are an accepted
// limitation of the design.
package store
