// Package store implements the msgtrail record store: an in-memory
// most-recent-first collection of unique tracked messages with
// crash-safe two-tier persistence.
//
// # Collection
//
//   - Records are keyed by MessageID; the key is unique at all times
//   - The front of the collection is the most recently added record
//   - Rotation reorders for sequential browsing without changing membership
//   - Group is the only field mutated after insertion
//
// # Persistence
//
// Two tiers share one JSON record codec:
//
//   - Snapshot: the whole ordered collection in one file, written
//     atomically by Save; the source of truth right after a save
//   - Crumbs: one file per mutation between snapshots, appended by
//     Insert/UpdateLocation/Remove and replayed by Load
//
// Save compacts: once a fresh snapshot holds the crumbs' effects, Save
// deletes them. Load recovers: snapshot first, then leftover crumbs in
// chronological filename order, then an immediate re-save if anything
// was recovered. A mutation whose crumb write fails stays applied in
// memory; durability is best-effort until the next successful Save.
//
// # Concurrency
//
// None. The store expects a single logical caller and runs every
// operation to completion. The snapshot path and crumb directory belong
// to one process at a time; nothing here locks files.
package store
