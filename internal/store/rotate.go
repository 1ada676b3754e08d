package store

import "github.com/msgtrail/msgtrail/internal/record"

// RotateForward moves the front record to the back and returns it.
// On a single-record collection the order is unchanged and the record
// is still returned. Rotation is never journaled; hosts that want the
// new order to survive a crash call Save afterwards.
func (s *Store) RotateForward() (record.Record, error) {
	if len(s.records) == 0 {
		return record.Record{}, ErrEmpty
	}
	front := s.records[0]
	s.records = append(s.records[1:], front)
	return front, nil
}

// RotateBackward moves the back record to the front and returns it.
// The inverse of RotateForward.
func (s *Store) RotateBackward() (record.Record, error) {
	if len(s.records) == 0 {
		return record.Record{}, ErrEmpty
	}
	last := len(s.records) - 1
	back := s.records[last]
	s.records = append([]record.Record{back}, s.records[:last]...)
	return back, nil
}
