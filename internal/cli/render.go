package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/render"
	"github.com/grindlemire/go-stripe/internal/scene"
)

const (
	defaultColumns = 80 // terminal width when stdout is not a terminal
	defaultRows    = 24 // terminal height when stdout is not a terminal
)

// drawOpts holds the flags controlling how a scene is drawn.
type drawOpts struct {
	scale    float64 // cells per layout unit horizontally
	scaleY   float64 // cells per layout unit vertically; 0 means scale
	border   string  // border style name
	noLabels bool    // omit frame names from the top borders
}

func (o *drawOpts) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.scale, "scale", 1, "cells per layout unit")
	cmd.Flags().Float64Var(&o.scaleY, "scale-y", 0, "vertical cells per layout unit (default: --scale)")
	cmd.Flags().StringVar(&o.border, "border", "single", "border style: single, double, rounded, ascii, none")
	cmd.Flags().BoolVar(&o.noLabels, "no-labels", false, "do not write frame names")
}

// options validates the flags and converts them to render options.
func (o drawOpts) options() (render.Options, error) {
	border, ok := render.ParseBorder(o.border)
	if !ok {
		return render.Options{}, fmt.Errorf("invalid border: %s (must be 'single', 'double', 'rounded', 'ascii' or 'none')", o.border)
	}
	if o.scale <= 0 || o.scaleY < 0 {
		return render.Options{}, fmt.Errorf("invalid scale: %g", o.scale)
	}
	scaleY := o.scaleY
	if scaleY == 0 {
		scaleY = o.scale
	}
	return render.Options{ScaleX: o.scale, ScaleY: scaleY, Border: border, Labels: !o.noLabels}, nil
}

func newRenderCmd() *cobra.Command {
	var (
		vp   viewportOpts
		draw drawOpts
	)

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Draw a laid-out scene as box outlines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := draw.options()
			if err != nil {
				return err
			}
			sc, err := loadScene(cmd.Context(), args[0], vp)
			if err != nil {
				return err
			}
			fitTerminal(sc, opts, int(os.Stdout.Fd()), 0)

			c := render.CanvasFor(&sc.Root.Frame, opts)
			render.Draw(c, &sc.Root.Frame, opts)
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}
	vp.register(cmd)
	draw.register(cmd)

	return cmd
}

// fitTerminal gives the dimensions of an empty viewport the size of the
// terminal behind fd, minus reserved rows, and lays the scene out again.
func fitTerminal(sc *scene.Scene, opts render.Options, fd int, reserved int) {
	vp := sc.Viewport()
	if vp[layout.DimX] > 0 && vp[layout.DimY] > 0 {
		return
	}
	cols, rows, err := terminalSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		cols, rows = defaultColumns, defaultRows
	}
	rows = max(rows-reserved, 1)
	if vp[layout.DimX] <= 0 {
		vp[layout.DimX] = float64(cols) / opts.ScaleX
	}
	if vp[layout.DimY] <= 0 {
		vp[layout.DimY] = float64(rows) / opts.ScaleY
	}
	sc.Resize(vp[layout.DimX], vp[layout.DimY])
	sc.Tick()
}
