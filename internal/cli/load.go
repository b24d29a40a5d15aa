package cli

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/scene"
)

// viewportOpts holds the viewport flags shared by every command.
type viewportOpts struct {
	width  float64 // overrides the scene width when positive
	height float64 // overrides the scene height when positive
}

func (o *viewportOpts) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&o.width, "width", 0, "viewport width (default: from the scene)")
	cmd.Flags().Float64Var(&o.height, "height", 0, "viewport height (default: from the scene)")
}

// apply resizes sc with the flag values that are set.
func (o viewportOpts) apply(sc *scene.Scene) {
	if o.width <= 0 && o.height <= 0 {
		return
	}
	vp := sc.Viewport()
	if o.width > 0 {
		vp[layout.DimX] = o.width
	}
	if o.height > 0 {
		vp[layout.DimY] = o.height
	}
	sc.Resize(vp[layout.DimX], vp[layout.DimY])
}

// loadScene loads path, applies the viewport flags and runs one layout tick.
func loadScene(ctx context.Context, path string, vp viewportOpts) (*scene.Scene, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	vp.apply(sc)
	sc.Tick()

	prog.done("laid out scene", "path", path, "frames", len(sc.Entries()), "viewport", sc.Viewport())
	return sc, nil
}

// loadScenes loads every path in parallel. Each tree is built and laid out
// by a single goroutine; the results are returned in argument order.
func loadScenes(ctx context.Context, paths []string, vp viewportOpts) ([]*scene.Scene, error) {
	scenes := make([]*scene.Scene, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := loadScene(ctx, path, vp)
			if err != nil {
				return err
			}
			scenes[i] = sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scenes, nil
}
