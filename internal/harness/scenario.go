package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario scripts one store session.
// Scenarios validate durability and ordering properties by executing a
// sequence of operations and asserting on the final collection.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario exercises.
	Description string `yaml:"description"`

	// Steps contains the operations to execute, in order.
	Steps []Step `yaml:"steps"`

	// Expect describes the collection after the last step.
	Expect Expectation `yaml:"expect"`
}

// Step represents a single store operation.
// Op selects the operation; the remaining fields are its arguments.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op"`

	// MessageID keys insert, update_location, and remove steps.
	MessageID string `yaml:"message_id,omitempty"`

	// Group is the target container for insert and update_location.
	Group string `yaml:"group,omitempty"`

	// Subject, Sender, and Date fill optional record fields on insert.
	Subject string `yaml:"subject,omitempty"`
	Sender  string `yaml:"sender,omitempty"`
	Date    string `yaml:"date,omitempty"`
}

// Expectation describes the state asserted after the last step.
type Expectation struct {
	// Collection is the expected final collection, front first.
	// An explicit empty list asserts an empty collection.
	Collection []ExpectedRecord `yaml:"collection"`

	// Crumbs, when set, is the expected number of crumb files left on
	// disk after the last step.
	Crumbs *int `yaml:"crumbs,omitempty"`
}

// ExpectedRecord is one expected collection entry.
type ExpectedRecord struct {
	// MessageID is the expected key at this position.
	MessageID string `yaml:"message_id"`

	// Group is the expected container. Checked only when non-empty
	// (subset match).
	Group string `yaml:"group,omitempty"`
}

// Step operation constants.
const (
	OpInsert         = "insert"
	OpUpdateLocation = "update_location"
	OpRemove         = "remove"
	OpRemoveAll      = "remove_all"
	OpRotateForward  = "rotate_forward"
	OpRotateBackward = "rotate_backward"
	OpSave           = "save"
	OpLoad           = "load"
	OpCrash          = "crash"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "step:" vs "steps:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, &step); err != nil {
			return err
		}
	}

	// An omitted collection and an empty one differ: only the explicit
	// empty list asserts emptiness.
	if s.Expect.Collection == nil {
		return fmt.Errorf("expect.collection is required (use an empty list for an empty collection)")
	}

	for i, want := range s.Expect.Collection {
		if want.MessageID == "" {
			return fmt.Errorf("expect.collection[%d]: message_id is required", i)
		}
	}

	if s.Expect.Crumbs != nil && *s.Expect.Crumbs < 0 {
		return fmt.Errorf("expect.crumbs must be non-negative")
	}

	return nil
}

// validateStep validates a single step based on its op.
func validateStep(index int, step *Step) error {
	if step.Op == "" {
		return fmt.Errorf("steps[%d]: op is required", index)
	}

	switch step.Op {
	case OpInsert:
		if step.MessageID == "" {
			return fmt.Errorf("steps[%d]: message_id is required for insert", index)
		}
	case OpUpdateLocation:
		if step.MessageID == "" {
			return fmt.Errorf("steps[%d]: message_id is required for update_location", index)
		}
		if step.Group == "" {
			return fmt.Errorf("steps[%d]: group is required for update_location", index)
		}
	case OpRemove:
		if step.MessageID == "" {
			return fmt.Errorf("steps[%d]: message_id is required for remove", index)
		}
	case OpRemoveAll, OpRotateForward, OpRotateBackward, OpSave, OpLoad, OpCrash:
		// No arguments.
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, step.Op)
	}

	return nil
}
