package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Yes bool
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Stop tracking everything",
		Long: `Drop every tracked message, the crumbs, and the snapshot contents.

Destructive and not recoverable, so it refuses to run without --yes.

Example:
  msgtrail clear --yes`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm dropping all tracked messages")

	return cmd
}

// clearResult is the JSON payload of a clear invocation.
type clearResult struct {
	Cleared int `json:"cleared"`
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	if !opts.Yes {
		return NewExitError(ExitCommandError, ErrCodeBadInput,
			"refusing to drop all tracked messages without --yes")
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}

	n := s.Len()
	if err := s.RemoveAll(); err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to clear crumbs", err)
	}
	if err := s.Save(); err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to write empty snapshot", err)
	}

	if opts.Format == "json" {
		return newFormatter(opts.RootOptions, cmd).Success(clearResult{Cleared: n})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d tracked message(s)\n", n)
	return nil
}
