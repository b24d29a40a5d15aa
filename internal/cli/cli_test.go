package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/render"
	"github.com/grindlemire/go-stripe/internal/scene"
	"github.com/grindlemire/go-stripe/internal/style"
)

const toolbarScene = `
width = 300
height = 100

[styles.button]
size = [50, 20]

[root]
name = "toolbar"
layout_dim = "x"
spacing = [10, 0]

[[root.children]]
name = "open"
style = "button"

[[root.children]]
name = "save"
style = "button"

[[root.children]]
style = "button"
size = [80, 20]
`

const listScene = `
width: 100
height: 60
root:
  name: list
  layout_dim: y
  align: [left, left]
  children:
    - {name: a, size: [50, 20]}
    - {name: b, size: [50, 20]}
    - {name: c, size: [50, 20]}
    - {name: d, size: [50, 20]}
    - {name: e, size: [50, 20]}
`

func writeScene(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLayoutCmd(t *testing.T) {
	path := writeScene(t, "toolbar.toml", toolbarScene)

	out, err := run(t, "layout", path)
	require.NoError(t, err)

	assert.Contains(t, out, "toolbar/save")
	assert.Contains(t, out, "60, 40")
	assert.Contains(t, out, "toolbar/leaf#2")
	assert.Contains(t, out, "80, 20")
	assert.Contains(t, out, "(300x100)")
}

func TestLayoutCmd_ViewportFlags(t *testing.T) {
	path := writeScene(t, "toolbar.toml", toolbarScene)

	out, err := run(t, "layout", "--height", "60", path)
	require.NoError(t, err)

	assert.Contains(t, out, "(300x60)")
	assert.Contains(t, out, "60, 20")
}

func TestLayoutCmd_MultipleScenesInOrder(t *testing.T) {
	first := writeScene(t, "toolbar.toml", toolbarScene)
	second := writeScene(t, "list.yaml", listScene)

	out, err := run(t, "layout", first, second)
	require.NoError(t, err)

	i, j := strings.Index(out, "toolbar/open"), strings.Index(out, "list/a")
	require.GreaterOrEqual(t, i, 0)
	require.GreaterOrEqual(t, j, 0)
	assert.Less(t, i, j)
}

func TestLayoutCmd_Errors(t *testing.T) {
	type tc struct {
		args func(dir string) []string
		code errors.Code
	}

	tests := map[string]tc{
		"missing file": {
			args: func(dir string) []string { return []string{"layout", filepath.Join(dir, "nope.toml")} },
			code: errors.ErrCodeFileNotFound,
		},
		"unknown extension": {
			args: func(dir string) []string {
				path := filepath.Join(dir, "scene.json")
				require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
				return []string{"layout", path}
			},
			code: errors.ErrCodeInvalidFormat,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args(t.TempDir())...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestCheckCmd(t *testing.T) {
	good := writeScene(t, "toolbar.toml", toolbarScene)
	bad := writeScene(t, "bad.toml", "[root]\nstyle = \"missing\"\n")

	out, err := run(t, "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, iconSuccess+" "+good)

	out, err = run(t, "check", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 scenes failed")
	assert.Contains(t, out, iconError+" "+bad)
}

func TestRenderCmd(t *testing.T) {
	path := writeScene(t, "toolbar.toml", toolbarScene)

	out, err := run(t, "render", "--scale", "0.1", "--border", "ascii", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "+toolbar-"), "got %q", lines[0])
	assert.Contains(t, out, "+ope+")
	assert.Contains(t, out, "+leaf#2+")
}

func TestRenderCmd_InvalidFlags(t *testing.T) {
	path := writeScene(t, "toolbar.toml", toolbarScene)

	_, err := run(t, "render", "--border", "dotted", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid border")

	_, err = run(t, "render", "--scale", "0", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scale")
}

func parseScene(t *testing.T, data string, format style.Format) *scene.Scene {
	t.Helper()
	sc, err := scene.Parse([]byte(data), format, ".")
	require.NoError(t, err)
	sc.Tick()
	return sc
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewModel_Scroll(t *testing.T) {
	sc := parseScene(t, listScene, style.FormatYAML)
	m := newViewModel(sc, render.Options{ScaleX: 1, ScaleY: 1}, true)

	steps := []struct {
		key  string
		want float64
	}{
		{"j", 20},
		{"down", 40},
		{"j", 40},
		{"k", 20},
		{"up", 0},
		{"k", 0},
	}
	for _, step := range steps {
		m.Update(key(step.key))
		assert.Equal(t, step.want, sc.Root.Cursor(), "after %s", step.key)
	}

	a, ok := sc.Lookup("list/a")
	require.True(t, ok)
	m.Update(key("j"))
	assert.Equal(t, -20.0, a.Position()[layout.DimY])
}

func TestViewModel_ScrollCentered(t *testing.T) {
	sc := parseScene(t, strings.Replace(listScene, "  align: [left, left]\n", "", 1), style.FormatYAML)
	m := newViewModel(sc, render.Options{ScaleX: 1, ScaleY: 1}, true)

	for range 3 {
		m.Update(key("j"))
	}
	require.Equal(t, 40.0, sc.Root.Cursor())

	a, ok := sc.Lookup("list/a")
	require.True(t, ok)
	e, ok := sc.Lookup("list/e")
	require.True(t, ok)
	assert.Equal(t, -60.0, a.Position()[layout.DimY])
	assert.Equal(t, 20.0, e.Position()[layout.DimY])
}

func TestViewModel_Probe(t *testing.T) {
	sc := parseScene(t, toolbarScene, style.FormatTOML)
	m := newViewModel(sc, render.Options{ScaleX: 0.1, ScaleY: 0.1}, true)

	assert.Equal(t, "toolbar", sc.PathOf(m.target()))

	m.probe = layout.Point{X: 60, Y: 40}
	m.Update(key("l"))
	m.Update(key("J"))
	assert.Equal(t, layout.Point{X: 70, Y: 50}, m.probe)
	assert.Equal(t, "toolbar/save", sc.PathOf(m.target()))
	assert.Contains(t, m.View(), "toolbar/save")
	assert.Contains(t, m.View(), "◆")

	m.probe = layout.Point{}
	m.Update(key("h"))
	m.Update(key("K"))
	assert.Equal(t, layout.Point{}, m.probe)
}

func TestViewModel_WindowSize(t *testing.T) {
	sc := parseScene(t, toolbarScene, style.FormatTOML)

	m := newViewModel(sc, render.Options{ScaleX: 0.5, ScaleY: 0.25}, false)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	assert.Equal(t, layout.Dims(80, 40), sc.Viewport())
	assert.Equal(t, layout.Dims(80, 40), sc.Root.Size())

	fixed := newViewModel(sc, render.Options{ScaleX: 0.5, ScaleY: 0.25}, true)
	fixed.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.Equal(t, layout.Dims(80, 40), sc.Viewport())
}

func TestViewModel_Quit(t *testing.T) {
	sc := parseScene(t, toolbarScene, style.FormatTOML)
	m := newViewModel(sc, render.Options{ScaleX: 1, ScaleY: 1}, true)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestLoggerFromContext(t *testing.T) {
	assert.Equal(t, log.Default(), loggerFromContext(context.Background()))

	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)
	ctx := withLogger(context.Background(), l)
	require.Same(t, l, loggerFromContext(ctx))

	newProgress(l).done("laid out", "frames", 3)
	assert.Contains(t, buf.String(), "laid out")
	assert.Contains(t, buf.String(), "frames=3")
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "stripe 1.0.0")
	assert.Contains(t, out, "commit: abc123")
}

func TestDebugLogFlag(t *testing.T) {
	path := writeScene(t, "toolbar.toml", toolbarScene)
	logPath := filepath.Join(t.TempDir(), "trace.log")

	_, err := run(t, "layout", "--debug-log", logPath, path)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "relayout")
}
