package store

import (
	"fmt"

	"github.com/msgtrail/msgtrail/internal/snapshot"
)

// Save writes the full collection to the snapshot file atomically, then
// compacts the journal by discarding every crumb. After a successful
// Save the snapshot alone reproduces the collection.
func (s *Store) Save() error {
	if err := snapshot.Write(s.snapshotPath, s.records); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := s.journal.Clear(); err != nil {
		return fmt.Errorf("save: compact crumbs: %w", err)
	}
	s.log.Debug().Int("records", len(s.records)).Msg("snapshot saved")
	return nil
}

// Load rebuilds the collection from disk: the snapshot first, then any
// crumbs left by mutations after the last Save, replayed in the order
// they were written. A missing snapshot is not an error; the store
// starts empty and replay still runs. When crumbs were applied, Load
// saves immediately so the recovered state is captured in the snapshot.
func (s *Store) Load() error {
	recs, found, err := snapshot.Read(s.snapshotPath)
	if err != nil {
		if found {
			return &CorruptError{Path: s.snapshotPath, Err: err}
		}
		return fmt.Errorf("load: %w", err)
	}
	s.records = recs
	applied, err := s.replayCrumbs()
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if applied > 0 {
		s.log.Info().Int("crumbs", applied).Msg("recovered mutations from journal")
		if err := s.Save(); err != nil {
			return fmt.Errorf("load: %w", err)
		}
	}
	return nil
}
