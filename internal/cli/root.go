package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-stripe/internal/debug"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the stripe CLI with ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Logs go to stderr at info level, or
// debug with --verbose. --debug-log traces layout passes to a file.
func NewRootCmd() *cobra.Command {
	var (
		verbose  bool
		debugLog string
	)

	root := &cobra.Command{
		Use:           "stripe",
		Short:         "Lay out and inspect stripe scenes",
		Long:          `stripe builds frame trees from scene files, lays them out and reports positions, sizes and bookkeeping errors.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
			if debugLog != "" {
				return debug.Init(debugLog)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if debugLog != "" {
				return debug.Close()
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("stripe %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&debugLog, "debug-log", "", "append layout traces to this file (also $"+debug.EnvVar+")")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())

	return root
}
