package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msgtrail/msgtrail/internal/record"
)

// MessageIDGenerator produces message IDs for messages tracked without
// one.
type MessageIDGenerator interface {
	Generate() string
}

// UUIDGenerator generates message IDs from random UUIDs, in angle
// bracket address form.
type UUIDGenerator struct{}

// Generate returns a fresh "<uuid@msgtrail.local>" message ID.
func (UUIDGenerator) Generate() string {
	return fmt.Sprintf("<%s@msgtrail.local>", uuid.NewString())
}

// TrackOptions holds flags for the track command.
type TrackOptions struct {
	*RootOptions
	ID         string
	Group      string
	Subject    string
	From       string
	To         []string
	CC         []string
	Date       string
	References string
	InReplyTo  string

	// IDGenerator allows overriding the message ID generator (for
	// testing). If nil, defaults to UUIDGenerator.
	IDGenerator MessageIDGenerator
}

// NewTrackCommand creates the track command.
func NewTrackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TrackOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Start tracking a message",
		Long: `Start tracking a mail message.

The record is keyed by its message ID; tracking an ID twice leaves the
first record untouched. A message without an ID gets a generated one.

Example:
  msgtrail track --id "<x1@example.com>" --group INBOX --subject "Q3 report" --from alice@example.com
  msgtrail track --group Sent --subject "lunch?" --from me@example.com --to bob@example.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "message ID (generated when empty)")
	cmd.Flags().StringVar(&opts.Group, "group", "INBOX", "group the message lives in")
	cmd.Flags().StringVar(&opts.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&opts.From, "from", "", "sender address")
	cmd.Flags().StringArrayVar(&opts.To, "to", nil, "To recipient (repeatable)")
	cmd.Flags().StringArrayVar(&opts.CC, "cc", nil, "Cc recipient (repeatable)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "message date, kept verbatim")
	cmd.Flags().StringVar(&opts.References, "references", "", "References header")
	cmd.Flags().StringVar(&opts.InReplyTo, "in-reply-to", "", "In-Reply-To header")

	return cmd
}

// trackResult is the JSON payload of a track invocation.
type trackResult struct {
	Tracked bool          `json:"tracked"` // false when the ID was already tracked
	Record  record.Record `json:"record"`
}

func runTrack(opts *TrackOptions, cmd *cobra.Command) error {
	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}

	gen := opts.IDGenerator
	if gen == nil {
		gen = UUIDGenerator{}
	}

	rec := buildRecord(opts, gen)
	_, existed := s.Find(rec.MessageID)
	if !existed {
		if err := s.Insert(rec, true); err != nil {
			return WrapExitError(ExitFailure, ErrCodeIO, "failed to track message", err)
		}
	}
	stored, _ := s.Find(rec.MessageID)

	if opts.Format == "json" {
		return newFormatter(opts.RootOptions, cmd).Success(trackResult{
			Tracked: !existed,
			Record:  stored,
		})
	}

	w := cmd.OutOrStdout()
	if existed {
		fmt.Fprintf(w, "Already tracking %s\n", stored.MessageID)
		return nil
	}
	fmt.Fprintf(w, "Tracking %s in %s\n", stored.MessageID, stored.Group)
	return nil
}

// buildRecord assembles a record from the track flags, generating a
// message ID when none was given.
func buildRecord(opts *TrackOptions, gen MessageIDGenerator) record.Record {
	id := opts.ID
	if id == "" {
		id = gen.Generate()
	}
	rec := record.Record{
		Group:      opts.Group,
		MessageID:  id,
		Date:       opts.Date,
		Subject:    opts.Subject,
		Sender:     opts.From,
		References: opts.References,
		InReplyTo:  opts.InReplyTo,
	}
	if len(opts.To) > 0 {
		rec.Recipients = append(rec.Recipients, record.Recipient{Role: "To", Addresses: opts.To})
	}
	if len(opts.CC) > 0 {
		rec.Recipients = append(rec.Recipients, record.Recipient{Role: "Cc", Addresses: opts.CC})
	}
	rec.DisplayLine = displayLine(rec)
	return rec
}

// displayLine renders the one-line listing summary: date, sender and
// subject, two spaces apart, empty fields skipped.
func displayLine(rec record.Record) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{rec.Date, rec.Sender, rec.Subject} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "  ")
}
