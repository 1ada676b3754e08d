package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msgtrail/msgtrail/internal/record"
)

// NewMoveCommand creates the move command.
func NewMoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <message-id> <group>",
		Short: "Move a tracked message to another group",
		Long: `Record that a tracked message now lives in another group.

Moving a message that is not tracked is a no-op, not a failure: the
message may simply have left the tracked set already.

Example:
  msgtrail move "<x1@example.com>" Archive`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

// moveResult is the JSON payload of a move invocation.
type moveResult struct {
	Moved     bool   `json:"moved"` // false when the ID was not tracked
	MessageID string `json:"message_id"`
	Group     string `json:"group"`
}

func runMove(opts *RootOptions, messageID, group string, cmd *cobra.Command) error {
	s, err := openStore(opts)
	if err != nil {
		return err
	}

	_, tracked := s.Find(messageID)
	if err := s.UpdateLocation(messageID, group, true); err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to record move", err)
	}

	group = record.NormalizeGroup(group)
	if opts.Format == "json" {
		return newFormatter(opts, cmd).Success(moveResult{
			Moved:     tracked,
			MessageID: messageID,
			Group:     group,
		})
	}

	w := cmd.OutOrStdout()
	if !tracked {
		fmt.Fprintf(w, "Not tracking %s; nothing to move.\n", messageID)
		return nil
	}
	fmt.Fprintf(w, "Moved %s to %s\n", messageID, group)
	return nil
}
