// Package snapshot persists the full record collection to one file.
//
// The snapshot is the durable source of truth immediately after a save.
// Writes are atomic: the envelope goes to a temp file in the destination
// directory and is renamed over the target, so a crash mid-write leaves
// the previous snapshot intact. The envelope carries a format version;
// Read rejects versions it does not know.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/msgtrail/msgtrail/internal/record"
)

// Version is the current snapshot format version.
const Version = 1

// envelope is the on-disk snapshot shape.
type envelope struct {
	Version int             `json:"version"`
	Records []record.Record `json:"records"`
}

// Write atomically replaces the snapshot at path with the given
// collection. The parent directory is created if missing. On any error
// the previous snapshot, if one existed, is untouched.
func Write(path string, recs []record.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	env := envelope{Version: Version, Records: recs}
	if env.Records == nil {
		env.Records = []record.Record{}
	}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read loads the collection from the snapshot at path.
//
// A missing file returns found=false with no error; the caller starts
// with an empty collection. Decode failures and unknown versions are
// returned with found=true so the caller can tell a damaged snapshot
// from an absent one.
func Read(path string) (recs []record.Record, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read snapshot: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, true, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	if env.Version != Version {
		return nil, true, fmt.Errorf("snapshot %s: unsupported version %d", path, env.Version)
	}
	return env.Records, true, nil
}
