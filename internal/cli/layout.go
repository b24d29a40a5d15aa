package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/scene"
)

// headerRow is the row index lipgloss tables pass for the header.
const headerRow = -1

func newLayoutCmd() *cobra.Command {
	var vp viewportOpts

	cmd := &cobra.Command{
		Use:   "layout [scene...]",
		Short: "Print the geometry of every frame",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenes, err := loadScenes(cmd.Context(), args, vp)
			if err != nil {
				return err
			}
			for i, sc := range scenes {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printLayout(cmd.OutOrStdout(), sc)
			}
			return nil
		},
	}
	vp.register(cmd)

	return cmd
}

// printLayout writes a table of every frame of sc with its absolute
// position, size and span.
func printLayout(w io.Writer, sc *scene.Scene) {
	vp := sc.Viewport()
	fmt.Fprintln(w, StyleTitle.Render(sc.Name)+" "+StyleDim.Render(fmt.Sprintf("(%gx%g)", vp[layout.DimX], vp[layout.DimY])))

	rows := make([][]string, 0, len(sc.Entries()))
	for _, e := range sc.Entries() {
		rows = append(rows, layoutRow(e))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Kind", "Position", "Size", "Span").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col >= 2:
				return StyleNumber
			default:
				return StyleValue
			}
		})

	fmt.Fprintln(w, t.Render())
}

func layoutRow(e scene.Entry) []string {
	f := e.Frame
	path := e.Path
	if f.Hidden() {
		path += " (hidden)"
	}
	p := f.Absolute()
	size, span := f.Size(), f.Span()
	return []string{
		path,
		f.Kind().String(),
		pair(p.X, p.Y),
		pair(size[layout.DimX], size[layout.DimY]),
		pair(span[layout.DimX], span[layout.DimY]),
	}
}
