package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ForgetOptions holds flags for the forget command.
type ForgetOptions struct {
	*RootOptions
	Where string
}

// NewForgetCommand creates the forget command.
func NewForgetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ForgetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "forget [message-id]",
		Short: "Stop tracking messages",
		Long: `Stop tracking a message by ID, or every message matching a --where
expression. Forgetting an ID that is not tracked is a no-op.

Example:
  msgtrail forget "<x1@example.com>"
  msgtrail forget --where 'group == "Spam"'`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForget(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Where, "where", "", "forget every record matching this expression")

	return cmd
}

// forgetResult is the JSON payload of a forget invocation.
type forgetResult struct {
	Forgotten  int      `json:"forgotten"`
	MessageIDs []string `json:"message_ids"`
}

func runForget(opts *ForgetOptions, args []string, cmd *cobra.Command) error {
	if (len(args) == 0) == (opts.Where == "") {
		return NewExitError(ExitCommandError, ErrCodeBadInput,
			"provide a message ID or --where, not both")
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}

	var doomed []string
	if len(args) == 1 {
		if _, ok := s.Find(args[0]); ok {
			doomed = []string{args[0]}
		}
	} else {
		matches, err := filterRecords(s.Records(), "", opts.Where)
		if err != nil {
			return WrapExitError(ExitCommandError, ErrCodeBadInput, "invalid --where expression", err)
		}
		for _, r := range matches {
			doomed = append(doomed, r.MessageID)
		}
	}

	for _, id := range doomed {
		if _, err := s.Remove(id, true); err != nil {
			return WrapExitError(ExitFailure, ErrCodeIO, "failed to record removal", err)
		}
	}

	if opts.Format == "json" {
		if doomed == nil {
			doomed = []string{}
		}
		return newFormatter(opts.RootOptions, cmd).Success(forgetResult{
			Forgotten:  len(doomed),
			MessageIDs: doomed,
		})
	}

	w := cmd.OutOrStdout()
	switch len(doomed) {
	case 0:
		fmt.Fprintln(w, "Nothing to forget.")
	case 1:
		fmt.Fprintf(w, "Forgot %s\n", doomed[0])
	default:
		fmt.Fprintf(w, "Forgot %d messages\n", len(doomed))
	}
	return nil
}
