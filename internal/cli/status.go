package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show store state and persistence paths",
		Long: `Show how many messages are tracked, where the snapshot and crumb
files live, and whether this invocation had to recover crumbs left by
an unclean shutdown.

Example:
  msgtrail status
  msgtrail status --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd)
		},
	}

	return cmd
}

// statusResult is the JSON payload of a status invocation.
type statusResult struct {
	Records       int    `json:"records"`
	Snapshot      string `json:"snapshot"`
	SnapshotFound bool   `json:"snapshot_found"`
	CrumbDir      string `json:"crumb_dir"`
	Recovered     int    `json:"recovered"` // crumbs replayed by this invocation
}

func runStatus(opts *RootOptions, cmd *cobra.Command) error {
	s := newStore(opts)

	pending, err := s.Journal().Count()
	if err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to inspect crumbs", err)
	}
	if err := s.Load(); err != nil {
		return mapLoadError(err)
	}

	_, statErr := os.Stat(opts.Snapshot)
	result := statusResult{
		Records:       s.Len(),
		Snapshot:      opts.Snapshot,
		SnapshotFound: statErr == nil,
		CrumbDir:      opts.CrumbDir,
		Recovered:     pending,
	}

	if opts.Format == "json" {
		return newFormatter(opts, cmd).Success(result)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Tracked messages: %d\n", result.Records)
	if result.SnapshotFound {
		fmt.Fprintf(w, "Snapshot:         %s\n", result.Snapshot)
	} else {
		fmt.Fprintf(w, "Snapshot:         %s (missing)\n", result.Snapshot)
	}
	fmt.Fprintf(w, "Crumb directory:  %s\n", result.CrumbDir)
	if result.Recovered > 0 {
		fmt.Fprintf(w, "Recovered crumbs: %d\n", result.Recovered)
	}
	return nil
}
