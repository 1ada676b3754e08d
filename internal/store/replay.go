package store

import (
	"fmt"
	"path/filepath"

	"github.com/msgtrail/msgtrail/internal/crumb"
)

// replayCrumbs applies every journaled mutation to the collection in
// chronological order, consuming each crumb as it goes, and returns how
// many were applied. Crumbs with malformed names are discarded with a
// warning; a crumb whose body fails to decode stops the replay with a
// CorruptError.
func (s *Store) replayCrumbs() (int, error) {
	entries, malformed, err := s.journal.List()
	if err != nil {
		return 0, fmt.Errorf("replay: %w", err)
	}
	for _, name := range malformed {
		s.log.Warn().Str("file", name).Msg("discarding malformed crumb")
		if err := s.journal.Remove(name); err != nil {
			return 0, fmt.Errorf("replay: %w", err)
		}
	}
	applied := 0
	for _, e := range entries {
		rec, err := s.journal.Read(e.Name)
		if err != nil {
			return applied, &CorruptError{Path: filepath.Join(s.journal.Dir(), e.Name), Err: err}
		}
		switch e.Kind {
		case crumb.KindNew:
			err = s.Insert(rec, false)
		case crumb.KindUpdate:
			err = s.UpdateLocation(rec.MessageID, rec.Group, false)
		case crumb.KindDelete:
			_, err = s.Remove(rec.MessageID, false)
		}
		if err != nil {
			return applied, fmt.Errorf("replay %s: %w", e.Name, err)
		}
		if err := s.journal.Remove(e.Name); err != nil {
			return applied, fmt.Errorf("replay: %w", err)
		}
		applied++
	}
	return applied, nil
}
