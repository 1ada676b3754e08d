package testutil

import (
	"io"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/msgtrail/msgtrail/internal/record"
)

// Rec builds a minimal valid record for tests.
//
// The non-key fields are derived from the id so two records built from
// different ids never compare equal by accident.
func Rec(id, group string) record.Record {
	return record.Record{
		DisplayLine: "2026-01-02 03:04  sender@example.com  subject " + id,
		Group:       group,
		MessageID:   id,
		Date:        "2026-01-02 03:04",
		Subject:     "subject " + id,
		Sender:      "sender@example.com",
	}
}

// RecFull builds a record with every field populated, for round-trip
// and serialization tests.
func RecFull(id, group string) record.Record {
	rec := Rec(id, group)
	rec.Recipients = []record.Recipient{
		{Role: "To", Addresses: []string{"to@example.com", "second@example.com"}},
		{Role: "Cc", Addresses: []string{"cc@example.com"}},
	}
	rec.References = "<parent@example.com>"
	rec.InReplyTo = "<parent@example.com>"
	return rec
}

// QuietLogger returns a logger that discards everything.
//
// Store and journal construction require a logger; tests that do not
// assert on log output use this one.
func QuietLogger() *bolt.Logger {
	return bolt.New(bolt.NewConsoleHandler(io.Discard))
}
