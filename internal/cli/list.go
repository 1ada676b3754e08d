package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msgtrail/msgtrail/internal/record"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Group string
	Where string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracked messages",
		Long: `List tracked messages, most recently tracked first.

Filters combine: --group keeps records whose group matches case
insensitively, --where keeps records matching an expression over the
fields message_id, group, subject, sender and date.

Example:
  msgtrail list
  msgtrail list --group inbox
  msgtrail list --where 'sender == "alice@example.com"'
  msgtrail list --where 'group in ["INBOX", "Sent"]' --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Group, "group", "", "filter by group (case insensitive)")
	cmd.Flags().StringVar(&opts.Where, "where", "", "filter by expression")

	return cmd
}

// listResult is the JSON payload of a list invocation.
type listResult struct {
	Count   int             `json:"count"`
	Records []record.Record `json:"records"`
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	s, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}

	matches, err := filterRecords(s.Records(), opts.Group, opts.Where)
	if err != nil {
		return WrapExitError(ExitCommandError, ErrCodeBadInput, "invalid --where expression", err)
	}

	if opts.Format == "json" {
		return newFormatter(opts.RootOptions, cmd).Success(listResult{
			Count:   len(matches),
			Records: matches,
		})
	}

	w := cmd.OutOrStdout()
	if len(matches) == 0 {
		fmt.Fprintln(w, "No tracked messages.")
		return nil
	}
	for _, r := range matches {
		fmt.Fprintf(w, "%-12s  %s\n", r.Group, summaryLine(r))
	}
	return nil
}

// filterRecords applies the group and where filters, preserving order.
func filterRecords(recs []record.Record, group, where string) ([]record.Record, error) {
	var pred func(record.Record) (bool, error)
	if where != "" {
		var err error
		pred, err = compileWhere(where)
		if err != nil {
			return nil, err
		}
	}

	matches := []record.Record{}
	for _, r := range recs {
		if group != "" && !record.FoldEqual(r.Group, group) {
			continue
		}
		if pred != nil {
			ok, err := pred(r)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		matches = append(matches, r)
	}
	return matches, nil
}

// summaryLine returns the record's display line, composing one for
// records persisted before the line was stored.
func summaryLine(r record.Record) string {
	if r.DisplayLine != "" {
		return r.DisplayLine
	}
	return displayLine(r)
}
