package harness

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// StateSnapshot captures a scenario execution for golden comparison:
// the step trace plus the final collection and crumb count.
type StateSnapshot struct {
	Scenario string        `json:"scenario"`
	Trace    []StepTrace   `json:"trace"`
	Final    []RecordState `json:"final"`
	Crumbs   int           `json:"crumbs"`
}

// marshalSnapshot renders a snapshot as indented JSON. HTML escaping is
// off so message IDs keep their angle brackets in golden files.
func marshalSnapshot(s StateSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RunWithGolden executes a scenario, reports any expectation mismatch
// as a test failure, and compares the state snapshot against a golden
// file. The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error only when the scenario itself fails to execute.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	snapshot := StateSnapshot{
		Scenario: scenario.Name,
		Trace:    result.Trace,
		Final:    result.Final,
		Crumbs:   result.Crumbs,
	}
	data, err := marshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
