package harness

// StepTrace records one executed step and the collection order it left
// behind.
type StepTrace struct {
	Op        string   `json:"op"`
	MessageID string   `json:"message_id,omitempty"`
	Group     string   `json:"group,omitempty"`
	Rotated   string   `json:"rotated,omitempty"`
	After     []string `json:"after"`
}

// RecordState is the (message_id, group) pair of one stored record.
type RecordState struct {
	MessageID string `json:"message_id"`
	Group     string `json:"group"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if the final state matches the scenario's expectation.
	Pass bool `json:"pass"`

	// Trace contains one entry per executed step, in order.
	Trace []StepTrace `json:"trace"`

	// Errors contains expectation failure messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Final is the collection after the last step, front first.
	Final []RecordState `json:"final"`

	// Crumbs is the number of crumb files left on disk.
	Crumbs int `json:"crumbs"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:  true,
		Trace: []StepTrace{},
		Final: []RecordState{},
	}
}

// AddError adds an expectation failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
