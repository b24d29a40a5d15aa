package scene

import (
	"path/filepath"

	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/style"
)

// Document is the top level of a scene file.
type Document struct {
	Width  float64               `toml:"width" yaml:"width"`
	Height float64               `toml:"height" yaml:"height"`
	Sheet  string                `toml:"sheet" yaml:"sheet"`
	Styles map[string]style.Decl `toml:"styles" yaml:"styles"`
	Root   Node                  `toml:"root" yaml:"root"`
}

// Entry is one frame of a built scene.
type Entry struct {
	Path  string
	Depth int
	Frame *layout.Frame
}

// Scene is a live layout tree built from a document.
type Scene struct {
	Name  string
	Sheet *style.Sheet
	Root  *layout.Stripe

	viewport layout.DimFloat
	frames   map[string]*layout.Frame
	entries  []Entry
}

// Load reads and builds the scene at path. A sheet path in the document is
// resolved relative to the scene file.
func Load(path string) (*Scene, error) {
	var doc Document
	if err := style.ReadFile(path, &doc); err != nil {
		return nil, err
	}
	sc, err := Build(doc, filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	sc.Name = path
	return sc, nil
}

// Parse decodes and builds a scene document. Sheet paths are resolved
// relative to dir.
func Parse(data []byte, format style.Format, dir string) (*Scene, error) {
	var doc Document
	if err := style.Decode(data, format, &doc); err != nil {
		return nil, err
	}
	return Build(doc, dir)
}

// Build creates the layout tree described by doc.
func Build(doc Document, dir string) (*Scene, error) {
	if doc.Width < 0 || doc.Height < 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "negative viewport %gx%g", doc.Width, doc.Height)
	}

	sheet := style.NewSheet()
	if doc.Sheet != "" {
		path := doc.Sheet
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		loaded, err := style.LoadSheet(path)
		if err != nil {
			return nil, err
		}
		sheet.Merge(loaded)
	}
	if len(doc.Styles) > 0 {
		inline, err := style.FromDecls(doc.Styles)
		if err != nil {
			return nil, err
		}
		sheet.Merge(inline)
		if err := sheet.Validate(); err != nil {
			return nil, err
		}
	}

	kind, err := doc.Root.kind()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "root")
	}
	if kind == layout.KindLeaf {
		if doc.Root.Kind != "" {
			return nil, errors.New(errors.ErrCodeInvalidScene, "root must be a container")
		}
		kind = layout.KindStripe
	}

	b := &builder{sheet: sheet, frames: map[string]*layout.Frame{}}
	label := doc.Root.label(0, kind)
	root, err := b.build(doc.Root, label, label, 0, kind)
	if err != nil {
		return nil, err
	}

	sc := &Scene{
		Sheet:   sheet,
		Root:    root.Container(),
		frames:  b.frames,
		entries: b.order,
	}
	sc.Resize(doc.Width, doc.Height)
	return sc, nil
}

// Resize sets the viewport. Root dimensions that expand take its size.
func (s *Scene) Resize(width, height float64) {
	s.viewport = layout.Dims(width, height)
	for _, d := range []layout.Dim{layout.DimX, layout.DimY} {
		if s.Root.Sizing(d) == layout.SizingExpand {
			s.Root.SetSizeDim(d, s.viewport[d])
		}
	}
}

// Viewport returns the size the scene is laid out in.
func (s *Scene) Viewport() layout.DimFloat {
	return s.viewport
}

// Tick runs one layout pass.
func (s *Scene) Tick() {
	layout.NextFrame(&s.Root.Frame)
}

// Check verifies the layout bookkeeping of the whole tree.
func (s *Scene) Check() error {
	if err := layout.Check(&s.Root.Frame); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "%s", s.label())
	}
	return nil
}

// Lookup returns the frame at path, such as "window/toolbar/open".
func (s *Scene) Lookup(path string) (*layout.Frame, bool) {
	f, ok := s.frames[path]
	return f, ok
}

// Entries returns every frame in document order.
func (s *Scene) Entries() []Entry {
	return s.entries
}

// PathOf returns the path of f, or "" when f is not part of the scene.
func (s *Scene) PathOf(f *layout.Frame) string {
	for _, e := range s.entries {
		if e.Frame == f {
			return e.Path
		}
	}
	return ""
}

func (s *Scene) label() string {
	if s.Name != "" {
		return s.Name
	}
	return "scene"
}
