package store

import (
	"io"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/msgtrail/msgtrail/internal/crumb"
	"github.com/msgtrail/msgtrail/internal/record"
)

// Store owns the in-memory ordered collection of tracked records and
// coordinates its two persistence tiers: the snapshot file and the
// crumb journal.
//
// The collection is exclusively owned; callers only see copies. It
// starts empty, is populated by Load, and is mutated solely through the
// methods here.
type Store struct {
	records      []record.Record // front = most recently added
	journal      *crumb.Journal
	snapshotPath string
	log          *bolt.Logger
}

// New creates a store persisting to snapshotPath, with per-mutation
// crumbs going through journal. The collection starts empty; call Load
// to populate it from disk.
func New(snapshotPath string, journal *crumb.Journal, log *bolt.Logger) *Store {
	if log == nil {
		log = bolt.New(bolt.NewConsoleHandler(io.Discard))
	}
	return &Store{
		journal:      journal,
		snapshotPath: snapshotPath,
		log:          log,
	}
}

// Len returns the number of records in the collection.
func (s *Store) Len() int {
	return len(s.records)
}

// SnapshotPath returns the snapshot file path the store persists to.
func (s *Store) SnapshotPath() string {
	return s.snapshotPath
}

// Journal returns the crumb journal the store writes through.
func (s *Store) Journal() *crumb.Journal {
	return s.journal
}

// Records returns a copy of the collection in order, most recent first.
func (s *Store) Records() []record.Record {
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Find returns the record with the given message ID.
// Linear scan: the collection is small and has a single unique key, so
// no index is kept.
func (s *Store) Find(messageID string) (record.Record, bool) {
	if i := s.indexOf(messageID); i >= 0 {
		return s.records[i], true
	}
	return record.Record{}, false
}

// FindAll returns the records matching pred, preserving collection
// order. A nil predicate matches everything.
func (s *Store) FindAll(pred func(record.Record) bool) []record.Record {
	var out []record.Record
	for _, r := range s.records {
		if pred == nil || pred(r) {
			out = append(out, r)
		}
	}
	// Return empty slice instead of nil
	if out == nil {
		out = []record.Record{}
	}
	return out
}

// indexOf returns the position of the record with the given message ID,
// or -1. By the uniqueness invariant the first match is the only one.
func (s *Store) indexOf(messageID string) int {
	for i, r := range s.records {
		if r.MessageID == messageID {
			return i
		}
	}
	return -1
}
