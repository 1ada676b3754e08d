package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msgtrail/msgtrail/internal/testutil"
)

func TestCompileWhereMatchesFields(t *testing.T) {
	rec := testutil.Rec("<a1@example.com>", "INBOX")

	cases := []struct {
		name string
		expr string
		want bool
	}{
		{"message_id", `message_id == "<a1@example.com>"`, true},
		{"group", `group == "INBOX"`, true},
		{"sender", `sender == "sender@example.com"`, true},
		{"subject substring", `subject contains "a1"`, true},
		{"date prefix", `date startsWith "2026-"`, true},
		{"no match", `group == "Archive"`, false},
		{"boolean combination", `group == "INBOX" && sender != ""`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pred, err := compileWhere(tc.expr)
			require.NoError(t, err)
			got, err := pred(rec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompileWhereSyntaxError(t *testing.T) {
	_, err := compileWhere(`group ==`)
	require.Error(t, err)
}

func TestCompileWhereUndefinedIdentifier(t *testing.T) {
	// Unknown names resolve to nil, so equality against them is false
	// rather than an error.
	pred, err := compileWhere(`grup == "INBOX"`)
	require.NoError(t, err)

	got, err := pred(testutil.Rec("<a1@example.com>", "INBOX"))
	require.NoError(t, err)
	assert.False(t, got)
}

func TestCompileWhereNonBooleanResult(t *testing.T) {
	pred, err := compileWhere(`subject`)
	if err != nil {
		// Rejected at compile time is equally acceptable.
		return
	}
	_, err = pred(testutil.Rec("<a1@example.com>", "INBOX"))
	require.Error(t, err)
}
