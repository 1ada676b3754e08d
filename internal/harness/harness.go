package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/msgtrail/msgtrail/internal/crumb"
	"github.com/msgtrail/msgtrail/internal/record"
	"github.com/msgtrail/msgtrail/internal/store"
	"github.com/msgtrail/msgtrail/internal/testutil"
)

// session holds the store under test and the pieces needed to rebuild
// it after a simulated crash.
type session struct {
	dir   string
	clock *testutil.Clock
	store *store.Store
}

// Run executes a scenario and returns the result.
//
// Each scenario runs against a fresh store in its own temp directory,
// deleted when the run finishes. A deterministic clock makes crumb
// filenames, and with them replay order, reproducible across runs.
//
// Execution flow:
//  1. Create a temp dir holding the snapshot file and crumb directory
//  2. Execute the steps in order, recording a trace entry per step
//  3. Capture the final collection and crumb count
//  4. Evaluate the expectation and return pass/fail with any mismatches
func Run(scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "msgtrail-harness-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scenario dir: %w", err)
	}
	defer os.RemoveAll(dir)

	sess := newSession(dir)
	result := NewResult()

	for i, step := range scenario.Steps {
		if err := sess.execute(step, result); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
	}

	result.Final = collectionState(sess.store)
	crumbs, err := sess.store.Journal().Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count crumbs: %w", err)
	}
	result.Crumbs = crumbs

	for _, msg := range EvaluateExpectation(result, scenario.Expect) {
		result.AddError(msg)
	}

	return result, nil
}

func newSession(dir string) *session {
	s := &session{
		dir:   dir,
		clock: testutil.NewClock(testutil.Base, time.Second),
	}
	s.reopen()
	return s
}

// reopen builds a fresh store over the session's files. The previous
// in-memory state, if any, is discarded; the files stay. The clock
// keeps advancing across reopens the way a wall clock keeps running
// across a process restart.
func (s *session) reopen() {
	journal := crumb.NewWithClock(filepath.Join(s.dir, "crumbs"), testutil.QuietLogger(), s.clock.Now)
	s.store = store.New(filepath.Join(s.dir, "snapshot.json"), journal, testutil.QuietLogger())
}

// execute runs one step and appends its trace entry.
//
// Soft store conditions (duplicate insert, untracked update or remove)
// are no-ops by design and leave a trace entry whose After matches the
// step before; hard failures abort the run.
func (s *session) execute(step Step, result *Result) error {
	trace := StepTrace{Op: step.Op}

	switch step.Op {
	case OpInsert:
		rec := record.Record{
			MessageID: step.MessageID,
			Group:     step.Group,
			Subject:   step.Subject,
			Sender:    step.Sender,
			Date:      step.Date,
		}
		if err := s.store.Insert(rec, true); err != nil {
			return err
		}
		trace.MessageID = step.MessageID
		trace.Group = record.NormalizeGroup(step.Group)

	case OpUpdateLocation:
		if err := s.store.UpdateLocation(step.MessageID, step.Group, true); err != nil {
			return err
		}
		trace.MessageID = step.MessageID
		trace.Group = record.NormalizeGroup(step.Group)

	case OpRemove:
		if _, err := s.store.Remove(step.MessageID, true); err != nil {
			return err
		}
		trace.MessageID = step.MessageID

	case OpRemoveAll:
		if err := s.store.RemoveAll(); err != nil {
			return err
		}

	case OpRotateForward:
		rec, err := s.store.RotateForward()
		if err != nil {
			return err
		}
		trace.Rotated = rec.MessageID

	case OpRotateBackward:
		rec, err := s.store.RotateBackward()
		if err != nil {
			return err
		}
		trace.Rotated = rec.MessageID

	case OpSave:
		if err := s.store.Save(); err != nil {
			return err
		}

	case OpLoad:
		if err := s.store.Load(); err != nil {
			return err
		}

	case OpCrash:
		// Drop the in-memory store, keep the files. The next load
		// replays whatever crumbs the crash left behind.
		s.reopen()

	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}

	trace.After = messageIDs(s.store)
	result.Trace = append(result.Trace, trace)
	return nil
}

// messageIDs returns the collection's keys, front first.
func messageIDs(st *store.Store) []string {
	recs := st.Records()
	ids := make([]string, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.MessageID)
	}
	return ids
}

// collectionState returns the collection as (message_id, group) pairs,
// front first.
func collectionState(st *store.Store) []RecordState {
	recs := st.Records()
	state := make([]RecordState, 0, len(recs))
	for _, r := range recs {
		state = append(state, RecordState{MessageID: r.MessageID, Group: r.Group})
	}
	return state
}
