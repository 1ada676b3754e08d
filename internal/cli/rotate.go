package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msgtrail/msgtrail/internal/record"
	"github.com/msgtrail/msgtrail/internal/store"
)

// RotateOptions holds flags for the rotate command.
type RotateOptions struct {
	*RootOptions
	Backward bool
	Count    int
}

// NewRotateCommand creates the rotate command.
func NewRotateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RotateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Rotate the collection and surface the next message",
		Long: `Rotate the collection circularly: each forward step moves the front
record to the back and surfaces it; --backward inverts the direction.
The rotated order is saved so it survives the next invocation.

Example:
  msgtrail rotate
  msgtrail rotate -n 3
  msgtrail rotate --backward`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRotate(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Backward, "backward", false, "rotate toward the back")
	cmd.Flags().IntVarP(&opts.Count, "count", "n", 1, "number of rotation steps")

	return cmd
}

// rotateResult is the JSON payload of a rotate invocation.
type rotateResult struct {
	Steps []record.Record `json:"steps"` // record surfaced by each step
}

func runRotate(opts *RotateOptions, cmd *cobra.Command) error {
	if opts.Count < 1 {
		return NewExitError(ExitCommandError, ErrCodeBadInput, "count must be at least 1")
	}

	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}

	steps := make([]record.Record, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		var rec record.Record
		var rotErr error
		if opts.Backward {
			rec, rotErr = s.RotateBackward()
		} else {
			rec, rotErr = s.RotateForward()
		}
		if rotErr != nil {
			if errors.Is(rotErr, store.ErrEmpty) {
				return fail(opts.RootOptions, cmd, ExitFailure, ErrCodeEmpty,
					"no tracked messages to rotate")
			}
			return WrapExitError(ExitFailure, ErrCodeIO, "rotation failed", rotErr)
		}
		steps = append(steps, rec)
	}

	// Rotation is never journaled; only the snapshot carries the new
	// order.
	if err := s.Save(); err != nil {
		return WrapExitError(ExitFailure, ErrCodeIO, "failed to save rotated order", err)
	}

	if opts.Format == "json" {
		return newFormatter(opts.RootOptions, cmd).Success(rotateResult{Steps: steps})
	}

	w := cmd.OutOrStdout()
	for _, rec := range steps {
		fmt.Fprintf(w, "%-12s  %s\n", rec.Group, summaryLine(rec))
	}
	return nil
}
