package testutil

import "fmt"

// SeqIDGenerator yields message IDs in a fixed sequence.
//
// This enables deterministic test execution and golden comparison: the
// same test run always tracks the same generated IDs. The production
// generator draws random UUIDs instead.
//
// Implements the cli.MessageIDGenerator interface.
type SeqIDGenerator struct {
	n int
}

// NewSeqIDGenerator creates a generator starting at one.
func NewSeqIDGenerator() *SeqIDGenerator {
	return &SeqIDGenerator{}
}

// Generate returns the next ID in the sequence:
// "<test-000001@msgtrail.local>", "<test-000002@msgtrail.local>", ...
func (g *SeqIDGenerator) Generate() string {
	g.n++
	return fmt.Sprintf("<test-%06d@msgtrail.local>", g.n)
}
