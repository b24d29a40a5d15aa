package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/render"
	"github.com/grindlemire/go-stripe/internal/scene"
)

// statusRows is the number of terminal rows below the canvas.
const statusRows = 2

func newViewCmd() *cobra.Command {
	var (
		vp   viewportOpts
		draw drawOpts
	)

	cmd := &cobra.Command{
		Use:   "view [scene]",
		Short: "Scroll and probe a scene interactively",
		Long: `view draws a scene and lets you scroll its root stripe and probe frames.

Keys: j/k or up/down scroll, h/l or left/right move the probe horizontally,
J/K move it vertically, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := draw.options()
			if err != nil {
				return err
			}
			sc, err := loadScene(cmd.Context(), args[0], vp)
			if err != nil {
				return err
			}
			fitTerminal(sc, opts, int(os.Stdout.Fd()), statusRows)

			m := newViewModel(sc, opts, vp.width > 0 && vp.height > 0)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	vp.register(cmd)
	draw.register(cmd)

	return cmd
}

// viewModel is the bubbletea model of the interactive viewer.
type viewModel struct {
	scene *scene.Scene
	opts  render.Options
	fixed bool // viewport set by flags; window resizes are ignored

	probe  layout.Point // in root coordinates
	width  int
	height int
}

func newViewModel(sc *scene.Scene, opts render.Options, fixed bool) *viewModel {
	return &viewModel{scene: sc, opts: opts, fixed: fixed}
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			m.scene.Root.CursorDown()
		case "up", "k":
			m.scene.Root.CursorUp()
		case "left", "h":
			m.moveProbe(layout.DimX, -1)
		case "right", "l":
			m.moveProbe(layout.DimX, 1)
		case "K":
			m.moveProbe(layout.DimY, -1)
		case "J":
			m.moveProbe(layout.DimY, 1)
		}
		m.scene.Tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.fixed {
			m.scene.Resize(float64(msg.Width)/m.opts.ScaleX, float64(max(msg.Height-statusRows, 1))/m.opts.ScaleY)
			m.scene.Tick()
		}
	}
	return m, nil
}

// moveProbe moves the probe one cell along d, staying within the root.
func (m *viewModel) moveProbe(d layout.Dim, dir float64) {
	step := 1 / m.opts.ScaleX
	if d == layout.DimY {
		step = 1 / m.opts.ScaleY
	}
	size := m.scene.Root.Size()
	v := m.probe.Dim(d)
	v = math.Max(0, math.Min(v+dir*step, size[d]-step))
	if d == layout.DimX {
		m.probe.X = v
	} else {
		m.probe.Y = v
	}
}

// target returns the frame under the probe.
func (m *viewModel) target() *layout.Frame {
	return m.scene.Root.Pinpoint(m.probe.X, m.probe.Y, true)
}

func (m *viewModel) View() string {
	root := &m.scene.Root.Frame
	c := render.CanvasFor(root, m.opts)
	render.Draw(c, root, m.opts)

	px := int(math.Round(m.probe.X * m.opts.ScaleX))
	py := int(math.Round(m.probe.Y * m.opts.ScaleY))
	c.SetRune(px, py, '◆')

	lines := c.Lines()
	if m.height > statusRows && len(lines) > m.height-statusRows {
		lines = lines[:m.height-statusRows]
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("j/k scroll  h/l/J/K probe  q quit"))
	return b.String()
}

// status describes the cursor and the frame under the probe.
func (m *viewModel) status() string {
	path := "none"
	if f := m.target(); f != nil {
		path = m.scene.PathOf(f)
	}
	return fmt.Sprintf("%s %s %s  %s",
		StyleDim.Render(fmt.Sprintf("cursor %s  probe (%s)", num(m.scene.Root.Cursor()), pair(m.probe.X, m.probe.Y))),
		StyleDim.Render(iconArrow),
		styleProbe.Render(path),
		StyleDim.Render(m.scene.Name))
}
