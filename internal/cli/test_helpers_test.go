package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/msgtrail/msgtrail/internal/crumb"
	"github.com/msgtrail/msgtrail/internal/record"
	"github.com/msgtrail/msgtrail/internal/store"
	"github.com/msgtrail/msgtrail/internal/testutil"
)

// newCLIOptions returns root options resolved against a fresh temp
// directory, the way PersistentPreRunE would leave them.
func newCLIOptions(t *testing.T) *RootOptions {
	t.Helper()
	dir := t.TempDir()
	return &RootOptions{
		Snapshot: filepath.Join(dir, "snapshot.json"),
		CrumbDir: filepath.Join(dir, "crumbs"),
		Format:   "text",
		Log:      testutil.QuietLogger(),
	}
}

// seedStore populates the options' store directly and saves a
// snapshot, bypassing the CLI.
func seedStore(t *testing.T, opts *RootOptions, recs ...record.Record) {
	t.Helper()
	clk := testutil.NewClock(testutil.Base, time.Second)
	j := crumb.NewWithClock(opts.CrumbDir, testutil.QuietLogger(), clk.Now)
	s := store.New(opts.Snapshot, j, testutil.QuietLogger())
	for _, r := range recs {
		require.NoError(t, s.Insert(r, false))
	}
	require.NoError(t, s.Save())
}

// loadStore reopens the options' store from disk.
func loadStore(t *testing.T, opts *RootOptions) *store.Store {
	t.Helper()
	j := crumb.New(opts.CrumbDir, testutil.QuietLogger())
	s := store.New(opts.Snapshot, j, testutil.QuietLogger())
	require.NoError(t, s.Load())
	return s
}

// captureOutput redirects a command's output into a buffer.
func captureOutput(cmd *cobra.Command) *bytes.Buffer {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return buf
}

// execute runs a command with the given args, capturing combined
// stdout and stderr.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

// decodeResponse parses a JSON-mode output envelope.
func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	return resp
}

// sampleRecords returns two fixed records for output tests, alice
// first into the collection and bob second.
func sampleRecords() []record.Record {
	alice := record.Record{
		DisplayLine: "2026-01-02 03:04  alice@example.com  Quarterly numbers",
		Group:       "INBOX",
		MessageID:   "<a1@example.com>",
		Date:        "2026-01-02 03:04",
		Subject:     "Quarterly numbers",
		Sender:      "alice@example.com",
	}
	bob := record.Record{
		DisplayLine: "2026-01-03 09:15  bob@example.com  Re: lunch",
		Group:       "Sent",
		MessageID:   "<a2@example.com>",
		Date:        "2026-01-03 09:15",
		Subject:     "Re: lunch",
		Sender:      "bob@example.com",
	}
	return []record.Record{alice, bob}
}
