package store

import (
	"fmt"

	"github.com/msgtrail/msgtrail/internal/crumb"
	"github.com/msgtrail/msgtrail/internal/record"
)

// Insert adds rec at the front of the collection. A record whose
// message ID is already tracked is silently ignored. When persist is
// set, a "new" crumb is written; if that write fails the record stays
// in the collection and the error is returned.
func (s *Store) Insert(rec record.Record, persist bool) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	rec = rec.Normalized()
	if s.indexOf(rec.MessageID) >= 0 {
		s.log.Debug().Str("message_id", rec.MessageID).Msg("already tracked")
		return nil
	}
	s.records = append([]record.Record{rec}, s.records...)
	if persist {
		if _, err := s.journal.Append(crumb.KindNew, rec); err != nil {
			return fmt.Errorf("insert %s: %w", rec.MessageID, err)
		}
	}
	return nil
}

// UpdateLocation moves the record with the given message ID to a new
// group, leaving its position in the collection unchanged. An untracked
// message ID is silently ignored. When persist is set, an "update"
// crumb carrying the full record is written.
func (s *Store) UpdateLocation(messageID, newGroup string, persist bool) error {
	i := s.indexOf(messageID)
	if i < 0 {
		s.log.Debug().Str("message_id", messageID).Msg("update for untracked message")
		return nil
	}
	s.records[i].Group = record.NormalizeGroup(newGroup)
	if persist {
		if _, err := s.journal.Append(crumb.KindUpdate, s.records[i]); err != nil {
			return fmt.Errorf("update %s: %w", messageID, err)
		}
	}
	return nil
}

// Remove deletes the record with the given message ID from the
// collection. It reports whether a record was removed; an untracked
// message ID is not an error. When persist is set, a "del" crumb is
// written; if that write fails the removal stays applied in memory.
func (s *Store) Remove(messageID string, persist bool) (bool, error) {
	i := s.indexOf(messageID)
	if i < 0 {
		return false, nil
	}
	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	if persist {
		if _, err := s.journal.Append(crumb.KindDelete, removed); err != nil {
			return true, fmt.Errorf("remove %s: %w", messageID, err)
		}
	}
	return true, nil
}

// RemoveAll empties the collection and discards any pending crumbs.
// No crumbs are written; the snapshot still holds the old records until
// the next Save.
func (s *Store) RemoveAll() error {
	s.records = nil
	if err := s.journal.Clear(); err != nil {
		return fmt.Errorf("remove all: %w", err)
	}
	return nil
}
