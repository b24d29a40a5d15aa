package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var vp viewportOpts

	cmd := &cobra.Command{
		Use:   "check [scene...]",
		Short: "Verify the layout bookkeeping of each scene",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range args {
				err := checkScene(ctx, path, vp)
				if err != nil {
					failed++
					printError(out, "%s", path)
					printDetail(out, "%v", err)
					logger.Debug("check failed", "path", path, "err", err)
					continue
				}
				printSuccess(out, "%s", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d scenes failed", failed, len(args))
			}
			return nil
		},
	}
	vp.register(cmd)

	return cmd
}

// checkScene loads and lays out path, then verifies its tracking against a
// full recompute.
func checkScene(ctx context.Context, path string, vp viewportOpts) error {
	sc, err := loadScene(ctx, path, vp)
	if err != nil {
		return err
	}
	return sc.Check()
}
