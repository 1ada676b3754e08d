package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCompactCommand creates the compact command.
func NewCompactCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Fold crumbs into a fresh snapshot",
		Long: `Write a fresh snapshot and delete every crumb.

Ordinary commands already compact as a side effect of recovery; this
makes the compaction explicit, for cron jobs or before backing up the
state directory.

Example:
  msgtrail compact`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompact(rootOpts, cmd)
		},
	}

	return cmd
}

// compactResult is the JSON payload of a compact invocation.
type compactResult struct {
	Records int `json:"records"`
	Folded  int `json:"folded"` // crumbs folded into the snapshot
}

func runCompact(opts *RootOptions, cmd *cobra.Command) error {
	s := newStore(opts)

	pending, err := s.Journal().Count()
	if err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to inspect crumbs", err)
	}
	if err := s.Load(); err != nil {
		return mapLoadError(err)
	}
	if err := s.Save(); err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to write snapshot", err)
	}

	if opts.Format == "json" {
		return newFormatter(opts, cmd).Success(compactResult{
			Records: s.Len(),
			Folded:  pending,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Snapshot holds %d record(s); folded %d crumb(s)\n", s.Len(), pending)
	return nil
}
