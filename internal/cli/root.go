package cli

import (
	"fmt"
	"os"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/msgtrail/msgtrail/internal/config"
)

// RootOptions holds global flags for all commands. Path and format
// fields are resolved against the configuration file before any
// command body runs; flags win over the file.
type RootOptions struct {
	Config   string // config file path ("" = default location)
	Snapshot string // snapshot file path
	CrumbDir string // crumb directory
	Verbose  bool
	Format   string // "json" | "text"

	// Log is the diagnostic logger, built from Verbose unless a test
	// injects its own.
	Log *bolt.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the msgtrail CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "msgtrail",
		Short: "msgtrail - track mail messages across groups",
		Long: `Track mail messages as they move between groups.

State lives in a JSON snapshot plus a directory of crumb files, one
file per mutation since the last snapshot. Every invocation replays
outstanding crumbs before running its command, so a crash never loses
an acknowledged change.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.Config)
			if err != nil {
				return WrapExitError(ExitCommandError, ErrCodeBadInput, "failed to load config", err)
			}
			if opts.Snapshot == "" {
				opts.Snapshot = cfg.Snapshot
			}
			if opts.CrumbDir == "" {
				opts.CrumbDir = cfg.CrumbDir
			}
			if opts.Format == "" {
				opts.Format = cfg.Format
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, ErrCodeBadInput,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Log == nil {
				opts.Log = newLogger(opts.Verbose)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text, default from config)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default ~/.config/msgtrail/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Snapshot, "snapshot", "", "snapshot file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.CrumbDir, "crumb-dir", "", "crumb directory (overrides config)")

	// Add subcommands
	cmd.AddCommand(NewTrackCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewMoveCommand(opts))
	cmd.AddCommand(NewForgetCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewRotateCommand(opts))
	cmd.AddCommand(NewCompactCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))

	return cmd
}

// newLogger builds the stderr diagnostic logger. Warnings and errors
// only, unless verbose mode lowers the threshold to debug.
func newLogger(verbose bool) *bolt.Logger {
	l := bolt.New(bolt.NewConsoleHandler(os.Stderr))
	if verbose {
		l.SetLevel(bolt.DEBUG)
	} else {
		l.SetLevel(bolt.WARN)
	}
	return l
}

// newFormatter builds the output formatter for one command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// fail reports a command failure and returns the matching ExitError.
// JSON mode writes the error envelope to stdout; in text mode the
// ExitError message reaches stderr through main.
func fail(opts *RootOptions, cmd *cobra.Command, exitCode int, eCode, message string) error {
	if opts.Format == "json" {
		_ = newFormatter(opts, cmd).Error(eCode, message, nil)
	}
	return NewExitError(exitCode, eCode, message)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
