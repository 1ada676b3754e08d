package store

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/msgtrail/msgtrail/internal/crumb"
	"github.com/msgtrail/msgtrail/internal/testutil"
)

// newTestStore returns a store over a fresh temp directory, with a
// deterministic journal clock ticking one second per crumb.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	clk := testutil.NewClock(testutil.Base, time.Second)
	j := crumb.NewWithClock(filepath.Join(dir, "crumbs"), testutil.QuietLogger(), clk.Now)
	return New(filepath.Join(dir, "snapshot.json"), j, testutil.QuietLogger())
}

// reopen builds a second store over the same snapshot file and crumb
// directory, simulating a process restart. Nothing from the first
// store's memory carries over.
func reopen(t *testing.T, s *Store) *Store {
	t.Helper()
	clk := testutil.NewClock(testutil.Base.Add(time.Hour), time.Second)
	j := crumb.NewWithClock(s.journal.Dir(), testutil.QuietLogger(), clk.Now)
	return New(s.snapshotPath, j, testutil.QuietLogger())
}

// ids returns the message IDs of the collection in order.
func ids(s *Store) []string {
	recs := s.Records()
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.MessageID
	}
	return out
}

// wantIDs fails the test unless the collection holds exactly the given
// message IDs in the given order.
func wantIDs(t *testing.T, s *Store, want ...string) {
	t.Helper()
	got := ids(s)
	if len(got) == 0 && len(want) == 0 {
		return
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("collection order = %v, want %v", got, want)
	}
}

// crumbCount returns the number of files in the store's journal
// directory.
func crumbCount(t *testing.T, s *Store) int {
	t.Helper()
	n, err := s.journal.Count()
	if err != nil {
		t.Fatalf("Count() failed: %v", err)
	}
	return n
}
