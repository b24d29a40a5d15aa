package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/style"
)

const toolbarTOML = `
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

const toolbarYAML = `
width: 300
height: 100
styles:
  button:
    size: [50, 20]
root:
  name: toolbar
  layout_dim: x
  spacing: [10, 0]
  children:
    - name: open
      style: button
    - name: save
      style: button
    - style: button
      size: [80, 20]
`

func TestParse(t *testing.T) {
	type tc struct {
		data   string
		format style.Format
	}

	tests := map[string]tc{
		"toml": {data: toolbarTOML, format: style.FormatTOML},
		"yaml": {data: toolbarYAML, format: style.FormatYAML},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sc, err := Parse([]byte(tt.data), tt.format, ".")
			require.NoError(t, err)
			sc.Tick()
			require.NoError(t, sc.Check())

			paths := make([]string, 0, len(sc.Entries()))
			for _, e := range sc.Entries() {
				paths = append(paths, e.Path)
			}
			assert.Equal(t, []string{"toolbar", "toolbar/open", "toolbar/save", "toolbar/leaf#2"}, paths)

			assert.Equal(t, layout.Dims(300, 100), sc.Root.Size())
			assert.Equal(t, layout.KindStripe, sc.Root.Kind())

			save, ok := sc.Lookup("toolbar/save")
			require.True(t, ok)
			assert.Equal(t, layout.Dims(60, 40), save.Position())

			last, ok := sc.Lookup("toolbar/leaf#2")
			require.True(t, ok)
			assert.Equal(t, layout.Dims(80, 20), last.Size(), "inline size overrides the style")
			assert.Equal(t, "toolbar/leaf#2", sc.PathOf(last))
			assert.Equal(t, "leaf#2", last.Name())
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	doc := `
width = 100
height = 100

[root]
kind = "layer"

[[root.children]]
name = "scene3d"
kind = "layer3d"
flow = "overlay"

[[root.children]]
name = "group"
kind = "stripe"
hidden = true
`
	sc, err := Parse([]byte(doc), style.FormatTOML, ".")
	require.NoError(t, err)

	assert.Equal(t, layout.KindLayer, sc.Root.Kind())
	scene3d, _ := sc.Lookup("layer#0/scene3d")
	require.NotNil(t, scene3d)
	assert.Equal(t, layout.KindLayer3D, scene3d.Kind())
	assert.False(t, scene3d.Flow())

	group, _ := sc.Lookup("layer#0/group")
	require.NotNil(t, group)
	assert.True(t, group.Hidden())
	assert.Same(t, sc.Root, group.Layer())
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		data string
		code errors.Code
	}

	tests := map[string]tc{
		"negative viewport": {data: "width = -1\n[root]\n", code: errors.ErrCodeInvalidScene},
		"unknown kind":      {data: "[root]\n[[root.children]]\nkind = \"blob\"\n", code: errors.ErrCodeInvalidScene},
		"leaf root":         {data: "[root]\nkind = \"leaf\"\n", code: errors.ErrCodeInvalidScene},
		"leaf with children": {
			data: "[root]\n[[root.children]]\nkind = \"leaf\"\n[[root.children.children]]\n",
			code: errors.ErrCodeInvalidScene,
		},
		"duplicate names": {
			data: "[root]\n[[root.children]]\nname = \"a\"\n[[root.children]]\nname = \"a\"\n",
			code: errors.ErrCodeInvalidScene,
		},
		"unknown style": {data: "[root]\nstyle = \"ghost\"\n", code: errors.ErrCodeInvalidScene},
		"base on frame": {data: "[root]\nbase = \"x\"\n", code: errors.ErrCodeInvalidScene},
		"bad attribute": {data: "[root]\nflow = \"sideways\"\n", code: errors.ErrCodeInvalidScene},
		"unknown key":   {data: "[root]\ncolour = 1\n", code: errors.ErrCodeInvalidFormat},
		"missing sheet": {data: "sheet = \"nope.toml\"\n[root]\n", code: errors.ErrCodeFileNotFound},
		"bad inline":    {data: "[styles.a]\nbase = \"b\"\n[root]\n", code: errors.ErrCodeInvalidStyle},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), style.FormatTOML, t.TempDir())
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "error: %v", err)
		})
	}
}

func TestLoad_SheetRelativeToScene(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "themes"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "base.yaml"), []byte(`
styles:
  column:
    layout_dim: y
    padding: [5]
  item:
    size: [40, 10]
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.toml"), []byte(`
width = 100
height = 60
sheet = "themes/base.yaml"

[root]
name = "list"
style = "column"
align = ["left", "left"]

[[root.children]]
name = "first"
style = "item"

[[root.children]]
name = "second"
style = "item"
`), 0o644))

	sc, err := Load(filepath.Join(dir, "list.toml"))
	require.NoError(t, err)
	sc.Tick()

	assert.Equal(t, filepath.Join(dir, "list.toml"), sc.Name)
	assert.Equal(t, []string{"column", "item"}, sc.Sheet.Names())

	second, ok := sc.Lookup("list/second")
	require.True(t, ok)
	assert.Equal(t, layout.Dims(5, 15), second.Position())
	assert.Equal(t, 20.0, sc.Root.SequenceLength())
}

func TestScene_Resize(t *testing.T) {
	sc, err := Parse([]byte(toolbarTOML), style.FormatTOML, ".")
	require.NoError(t, err)
	sc.Tick()

	sc.Resize(200, 50)
	sc.Tick()

	assert.Equal(t, layout.Dims(200, 50), sc.Viewport())
	assert.Equal(t, layout.Dims(200, 50), sc.Root.Size())
	save, _ := sc.Lookup("toolbar/save")
	assert.Equal(t, 15.0, save.Position()[layout.DimY])
	require.NoError(t, sc.Check())
}
