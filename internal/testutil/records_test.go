package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRec_Distinct(t *testing.T) {
	a := Rec("<a@example.com>", "INBOX")
	b := Rec("<b@example.com>", "INBOX")

	require.NoError(t, a.Validate())
	require.NoError(t, b.Validate())
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a.Subject, b.Subject)
}

func TestRecFull_AllFieldsSet(t *testing.T) {
	rec := RecFull("<a@example.com>", "Archive")

	require.NoError(t, rec.Validate())
	assert.NotEmpty(t, rec.Recipients)
	assert.NotEmpty(t, rec.References)
	assert.NotEmpty(t, rec.InReplyTo)
	assert.Equal(t, "Archive", rec.Group)
}

func TestSeqIDGenerator_Sequence(t *testing.T) {
	g := NewSeqIDGenerator()

	assert.Equal(t, "<test-000001@msgtrail.local>", g.Generate())
	assert.Equal(t, "<test-000002@msgtrail.local>", g.Generate())
	assert.Equal(t, "<test-000003@msgtrail.local>", g.Generate())
}
