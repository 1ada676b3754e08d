// Package crumb implements the per-mutation journal for msgtrail.
//
// A crumb is one file recording one store mutation. Its body is the full
// JSON record state at mutation time (never a diff); its filename encodes
// when the mutation happened and what kind it was:
//
//	cr-<sec>.<nsec>-<kind>.json    kind ∈ {new, update, del}
//
// The sec and nsec fields are fixed-width zero-padded decimals, so
// lexicographic filename order equals chronological order. The journal
// additionally enforces strictly increasing timestamps across appends,
// which makes the order total even when the clock does not advance
// between mutations. Replay depends on both properties: a record created
// and then deleted before any snapshot must be replayed in that order or
// it would be resurrected.
//
// Crumbs are transient. They exist only between snapshots: replay
// consumes them on load, compaction deletes them on save.
package crumb
