package snapshot

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/msgtrail/msgtrail/internal/record"
	"github.com/msgtrail/msgtrail/internal/testutil"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	recs := []record.Record{
		testutil.RecFull("<a2@example.com>", "INBOX"),
		testutil.Rec("<a1@example.com>", "Archive"),
	}

	if err := Write(path, recs); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got, found, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if !found {
		t.Fatal("Read() found = false, want true")
	}
	if !reflect.DeepEqual(got, recs) {
		t.Errorf("Read() = %+v, want %+v", got, recs)
	}
}

func TestWrite_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "snapshot.json")

	if err := Write(path, nil); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot file missing: %v", err)
	}
}

func TestWrite_EmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := Write(path, nil); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	got, found, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if !found {
		t.Fatal("Read() found = false, want true")
	}
	if len(got) != 0 {
		t.Errorf("Read() = %+v, want empty", got)
	}

	// An empty collection still serializes as an explicit array
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), `"records": []`) {
		t.Errorf("snapshot body missing empty records array:\n%s", data)
	}
}

func TestWrite_OverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := Write(path, []record.Record{testutil.Rec("<old@example.com>", "INBOX")}); err != nil {
		t.Fatalf("first Write() failed: %v", err)
	}
	if err := Write(path, []record.Record{testutil.Rec("<new@example.com>", "INBOX")}); err != nil {
		t.Fatalf("second Write() failed: %v", err)
	}

	got, _, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}
	if len(got) != 1 || got[0].MessageID != "<new@example.com>" {
		t.Errorf("Read() = %+v, want the second write only", got)
	}

	// No temp files left behind
	dirents, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(dirents) != 1 {
		t.Errorf("snapshot dir has %d files, want 1", len(dirents))
	}
}

func TestWrite_PreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	recs := []record.Record{
		testutil.Rec("<c@example.com>", "INBOX"),
		testutil.Rec("<b@example.com>", "INBOX"),
		testutil.Rec("<a@example.com>", "Archive"),
	}

	if err := Write(path, recs); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	got, _, err := Read(path)
	if err != nil {
		t.Fatalf("Read() failed: %v", err)
	}

	for i := range recs {
		if got[i].MessageID != recs[i].MessageID {
			t.Errorf("record %d = %q, want %q", i, got[i].MessageID, recs[i].MessageID)
		}
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, found, err := Read(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Read() of missing file failed: %v", err)
	}
	if found {
		t.Error("Read() found = true, want false")
	}
}

func TestRead_CorruptBody(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte("{truncated"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, found, err := Read(path)
	if err == nil {
		t.Fatal("Read() of corrupt snapshot succeeded, want error")
	}
	if !found {
		t.Error("Read() found = false, want true for an existing corrupt file")
	}
}

func TestRead_UnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := os.WriteFile(path, []byte(`{"version": 99, "records": []}`), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, found, err := Read(path)
	if err == nil {
		t.Fatal("Read() of future version succeeded, want error")
	}
	if !found {
		t.Error("Read() found = false, want true")
	}
	if !strings.Contains(err.Error(), "version") {
		t.Errorf("error %q does not mention version", err)
	}
}
