package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearCommandRefusesWithoutYes(t *testing.T) {
	opts := newCLIOptions(t)
	seedStore(t, opts, sampleRecords()...)

	_, err := execute(t, NewClearCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "--yes")

	// Nothing was touched.
	s := loadStore(t, opts)
	assert.Equal(t, 2, s.Len())
}

func TestClearCommandDropsEverything(t *testing.T) {
	opts := newCLIOptions(t)
	seedStore(t, opts, sampleRecords()...)

	out, err := execute(t, NewClearCommand(opts), "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 tracked message(s)")

	s := loadStore(t, opts)
	assert.Equal(t, 0, s.Len())
}

func TestClearCommandJSON(t *testing.T) {
	opts := newCLIOptions(t)
	seedStore(t, opts, sampleRecords()...)
	opts.Format = "json"

	out, err := execute(t, NewClearCommand(opts), "--yes")
	require.NoError(t, err)

	resp := decodeResponse(t, out)
	assert.Equal(t, "ok", resp.Status)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(2), data["cleared"])
}
