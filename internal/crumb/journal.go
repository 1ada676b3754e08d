package crumb

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/msgtrail/msgtrail/internal/record"
)

// Entry describes one crumb file, classified by filename alone.
type Entry struct {
	Name  string // filename within the journal directory
	Kind  Kind
	Stamp time.Time
}

// Journal writes and manages crumb files in a breadcrumb directory.
//
// The journal holds no collection state; it only appends, lists, reads,
// and deletes files. The directory is exclusively owned: no other
// process may write to it while a journal is active.
//
// Not safe for concurrent use. The store serializes all calls.
type Journal struct {
	dir  string
	log  *bolt.Logger
	now  func() time.Time
	last time.Time
}

// New creates a journal over dir using the wall clock.
// The directory is created on first append if missing.
func New(dir string, log *bolt.Logger) *Journal {
	return NewWithClock(dir, log, time.Now)
}

// NewWithClock creates a journal with an injected time source.
// Used by tests for reproducible crumb filenames.
func NewWithClock(dir string, log *bolt.Logger, now func() time.Time) *Journal {
	if log == nil {
		log = bolt.New(bolt.NewConsoleHandler(io.Discard))
	}
	return &Journal{dir: dir, log: log, now: now}
}

// Dir returns the breadcrumb directory path.
func (j *Journal) Dir() string {
	return j.dir
}

// Append writes one crumb recording a mutation of rec and returns the
// filename created.
//
// Timestamps are strictly increasing across appends: if the clock reads
// a time at or before the previous crumb's, it is bumped by one
// nanosecond. Two crumbs from one journal can therefore never share a
// filename, and filename order stays chronological under rapid
// successive mutations.
func (j *Journal) Append(kind Kind, rec record.Record) (string, error) {
	if !kind.valid() {
		return "", fmt.Errorf("append crumb: invalid kind %d", int(kind))
	}
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return "", fmt.Errorf("append crumb: %w", err)
	}

	ts := j.now()
	if !ts.After(j.last) {
		ts = j.last.Add(time.Nanosecond)
	}
	j.last = ts

	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("append crumb: %w", err)
	}

	name := Filename(ts, kind)
	f, err := os.OpenFile(filepath.Join(j.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("append crumb: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", fmt.Errorf("append crumb %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("append crumb %s: %w", name, err)
	}

	j.log.Debug().Str("file", name).Str("message_id", rec.MessageID).Msg("crumb written")
	return name, nil
}

// List returns all well-formed crumb entries in chronological order,
// plus the filenames that failed classification. Malformed names are
// the caller's to log and discard; they never touch the collection.
//
// A missing directory is an empty journal, not an error.
func (j *Journal) List() ([]Entry, []string, error) {
	dirents, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("list crumbs: %w", err)
	}

	var entries []Entry
	var malformed []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		kind, stamp, err := ParseFilename(de.Name())
		if err != nil {
			malformed = append(malformed, de.Name())
			continue
		}
		entries = append(entries, Entry{Name: de.Name(), Kind: kind, Stamp: stamp})
	}

	// os.ReadDir returns names sorted; fixed-width timestamps make that
	// order chronological.
	return entries, malformed, nil
}

// Read decodes the record body of a crumb file.
func (j *Journal) Read(name string) (record.Record, error) {
	data, err := os.ReadFile(filepath.Join(j.dir, name))
	if err != nil {
		return record.Record{}, fmt.Errorf("read crumb %s: %w", name, err)
	}
	var rec record.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return record.Record{}, fmt.Errorf("decode crumb %s: %w", name, err)
	}
	return rec, nil
}

// Remove deletes one crumb file. A missing file is not an error; a
// crumb is consumed at most once.
func (j *Journal) Remove(name string) error {
	if err := os.Remove(filepath.Join(j.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove crumb %s: %w", name, err)
	}
	return nil
}

// Clear deletes every file in the journal directory, well-formed or
// not. Called after a successful snapshot write (compaction) and on
// full reset.
func (j *Journal) Clear() error {
	dirents, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear crumbs: %w", err)
	}
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(j.dir, de.Name())); err != nil {
			return fmt.Errorf("clear crumbs: %w", err)
		}
	}
	return nil
}

// Count returns the number of files currently in the journal directory,
// malformed ones included.
func (j *Journal) Count() (int, error) {
	dirents, err := os.ReadDir(j.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("count crumbs: %w", err)
	}
	n := 0
	for _, de := range dirents {
		if !de.IsDir() {
			n++
		}
	}
	return n, nil
}
