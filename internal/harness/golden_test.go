package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioGoldens runs every checked-in scenario and compares its
// state snapshot against the matching golden file.
func TestScenarioGoldens(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths, "no scenario files found")

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".yaml")
		t.Run(name, func(t *testing.T) {
			scenario, err := LoadScenario(path)
			require.NoError(t, err)
			require.NoError(t, RunWithGolden(t, scenario))
		})
	}
}

func TestMarshalSnapshot_Deterministic(t *testing.T) {
	snapshot := StateSnapshot{
		Scenario: "determinism",
		Trace: []StepTrace{
			{Op: OpInsert, MessageID: "<a1@example.com>", Group: "INBOX", After: []string{"<a1@example.com>"}},
			{Op: OpRotateForward, Rotated: "<a1@example.com>", After: []string{"<a1@example.com>"}},
		},
		Final:  []RecordState{{MessageID: "<a1@example.com>", Group: "INBOX"}},
		Crumbs: 1,
	}

	first, err := marshalSnapshot(snapshot)
	require.NoError(t, err)
	second, err := marshalSnapshot(snapshot)
	require.NoError(t, err)

	require.Equal(t, first, second, "snapshot marshaling must be deterministic")
}

func TestMarshalSnapshot_KeepsAngleBrackets(t *testing.T) {
	snapshot := StateSnapshot{
		Scenario: "escaping",
		Trace:    []StepTrace{},
		Final:    []RecordState{{MessageID: "<a1@example.com>", Group: "INBOX"}},
	}

	data, err := marshalSnapshot(snapshot)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"<a1@example.com>"`)
	assert.NotContains(t, string(data), `\u003c`)
}

func TestRunDir_AllScenariosPass(t *testing.T) {
	suite, err := RunDir(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	assert.Greater(t, suite.Total, 0)
	assert.Equal(t, suite.Total, suite.Passed, "failures: %v", suite.Failures)
	assert.Zero(t, suite.Failed)
	assert.Empty(t, suite.Failures)
}

func TestRunDir_ReportsExpectationFailure(t *testing.T) {
	dir := t.TempDir()
	content := `
name: doomed
description: "Expectation cannot hold"
steps:
  - op: insert
    message_id: "<a1@example.com>"
    group: INBOX
expect:
  collection:
    - message_id: "<a2@example.com>"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doomed.yaml"), []byte(content), 0o644))

	suite, err := RunDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, suite.Total)
	assert.Equal(t, 1, suite.Failed)
	require.Len(t, suite.Failures, 1)
	assert.Equal(t, "doomed", suite.Failures[0].Scenario)
	assert.Contains(t, suite.Failures[0].Error, "expectation failed")
}

func TestRunDir_ReportsLoadFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: [unclosed"), 0o644))

	suite, err := RunDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, suite.Total)
	assert.Equal(t, 1, suite.Failed)
	require.Len(t, suite.Failures, 1)
	assert.Contains(t, suite.Failures[0].Error, "failed to load scenario")
}
