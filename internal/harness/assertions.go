package harness

import "fmt"

// EvaluateExpectation checks the result's final state against the
// scenario's expectation. Returns one message per mismatch; an empty
// slice means the expectation holds.
//
// Collection entries are matched positionally, front first. Group uses
// subset semantics: it is checked only when the expectation names one.
func EvaluateExpectation(result *Result, expect Expectation) []string {
	var errors []string

	if len(result.Final) != len(expect.Collection) {
		errors = append(errors, fmt.Sprintf(
			"expected %d record(s) in final collection, got %d",
			len(expect.Collection), len(result.Final)))
	} else {
		for i, want := range expect.Collection {
			got := result.Final[i]
			if got.MessageID != want.MessageID {
				errors = append(errors, fmt.Sprintf(
					"collection[%d]: expected message_id %s, got %s",
					i, want.MessageID, got.MessageID))
				continue
			}
			if want.Group != "" && got.Group != want.Group {
				errors = append(errors, fmt.Sprintf(
					"collection[%d] (%s): expected group %q, got %q",
					i, want.MessageID, want.Group, got.Group))
			}
		}
	}

	if expect.Crumbs != nil && result.Crumbs != *expect.Crumbs {
		errors = append(errors, fmt.Sprintf(
			"expected %d crumb file(s) on disk, got %d",
			*expect.Crumbs, result.Crumbs))
	}

	return errors
}
