// Package harness runs YAML-scripted store scenarios.
//
// A scenario names a sequence of store operations plus the collection
// state expected once the sequence has run. The runner executes the
// steps against a fresh store in its own temp directory and records a
// trace entry per step; tests compare trace and final state against
// golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario exercises"
//	steps:
//	  - op: insert
//	    message_id: "<a1@example.com>"
//	    group: INBOX
//	  - op: crash
//	  - op: load
//	expect:
//	  collection:
//	    - message_id: "<a1@example.com>"
//	      group: INBOX
//	  crumbs: 0
//
// # Operations
//
// The following ops are supported:
//
//   - insert: add a record (message_id, group, optional subject/sender/date)
//   - update_location: move a tracked record to another group
//   - remove: delete a record by message_id
//   - remove_all: drop the whole collection and its crumbs
//   - rotate_forward / rotate_backward: circular reorder of the collection
//   - save: write the snapshot and compact crumbs
//   - load: read the snapshot and replay outstanding crumbs
//   - crash: discard the in-memory store, keep the files
//
// # Deterministic Testing
//
// Scenarios execute with a deterministic clock so crumb filenames, and
// with them replay order, are identical across runs. The clock survives
// a crash step the way a wall clock survives a process restart.
//
// # Usage
//
// Load and run a scenario:
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/crumb_round_trip.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
