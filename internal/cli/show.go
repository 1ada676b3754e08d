package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msgtrail/msgtrail/internal/record"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <message-id>",
		Short: "Show one tracked message",
		Long: `Show every stored field of one tracked message.

Example:
  msgtrail show "<x1@example.com>"
  msgtrail show "<x1@example.com>" --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, messageID string, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}

	rec, ok := s.Find(messageID)
	if !ok {
		return fail(opts, cmd, ExitFailure, ErrCodeNotFound,
			fmt.Sprintf("message %s is not tracked", messageID))
	}

	if opts.Format == "json" {
		return newFormatter(opts, cmd).Success(rec)
	}
	printRecord(cmd.OutOrStdout(), rec)
	return nil
}

// printRecord renders a record as header-style lines, skipping fields
// that were never captured.
func printRecord(w io.Writer, rec record.Record) {
	fmt.Fprintf(w, "Message-ID:  %s\n", rec.MessageID)
	fmt.Fprintf(w, "Group:       %s\n", rec.Group)
	if rec.Date != "" {
		fmt.Fprintf(w, "Date:        %s\n", rec.Date)
	}
	if rec.Sender != "" {
		fmt.Fprintf(w, "From:        %s\n", rec.Sender)
	}
	if rec.Subject != "" {
		fmt.Fprintf(w, "Subject:     %s\n", rec.Subject)
	}
	for _, rcpt := range rec.Recipients {
		fmt.Fprintf(w, "%-12s %s\n", rcpt.Role+":", strings.Join(rcpt.Addresses, ", "))
	}
	if rec.References != "" {
		fmt.Fprintf(w, "References:  %s\n", rec.References)
	}
	if rec.InReplyTo != "" {
		fmt.Fprintf(w, "In-Reply-To: %s\n", rec.InReplyTo)
	}
}
