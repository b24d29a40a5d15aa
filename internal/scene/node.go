package scene

import (
	"strconv"
	"strings"

	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
	"github.com/grindlemire/go-stripe/internal/style"
)

// Node is the document form of one frame.
type Node struct {
	style.Decl `yaml:",inline"`

	Name      string `toml:"name" yaml:"name"`
	Kind      string `toml:"kind" yaml:"kind"`
	StyleName string `toml:"style" yaml:"style"`
	Hidden    bool   `toml:"hidden" yaml:"hidden"`
	Children  []Node `toml:"children" yaml:"children"`
}

var kindNames = map[string]layout.Kind{
	"leaf":    layout.KindLeaf,
	"stripe":  layout.KindStripe,
	"layer":   layout.KindLayer,
	"layer3d": layout.KindLayer3D,
}

// kind resolves the node kind. Nodes with children default to stripes.
func (n Node) kind() (layout.Kind, error) {
	if n.Kind == "" {
		if len(n.Children) > 0 {
			return layout.KindStripe, nil
		}
		return layout.KindLeaf, nil
	}
	k, ok := kindNames[strings.ToLower(n.Kind)]
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidScene, "unknown kind %q", n.Kind)
	}
	return k, nil
}

// label names the node within its parent.
func (n Node) label(index int, kind layout.Kind) string {
	if n.Name != "" {
		return n.Name
	}
	return kind.String() + "#" + strconv.Itoa(index)
}

// builder turns nodes into frames.
type builder struct {
	sheet  *style.Sheet
	frames map[string]*layout.Frame
	order  []Entry
}

func (b *builder) build(n Node, name, path string, depth int, kind layout.Kind) (*layout.Frame, error) {
	if n.Base != "" {
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s: frames name their style with style, not base", path)
	}
	if kind == layout.KindLeaf && len(n.Children) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s: leaf frames cannot have children", path)
	}
	if _, dup := b.frames[path]; dup {
		return nil, errors.New(errors.ErrCodeInvalidScene, "%s: duplicate frame path", path)
	}

	st, err := b.resolve(n, name, path)
	if err != nil {
		return nil, err
	}
	opts := append(st.Options(), layout.WithName(name))
	if n.Hidden {
		opts = append(opts, layout.WithHidden())
	}

	var f *layout.Frame
	var s *layout.Stripe
	switch kind {
	case layout.KindLeaf:
		f = layout.NewFrame(opts...)
	case layout.KindLayer:
		s = layout.NewLayer(opts...)
	case layout.KindLayer3D:
		s = layout.NewLayer3D(opts...)
	default:
		s = layout.NewStripe(opts...)
	}
	if s != nil {
		f = &s.Frame
	}

	b.frames[path] = f
	b.order = append(b.order, Entry{Path: path, Depth: depth, Frame: f})

	for i, child := range n.Children {
		ck, err := child.kind()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", path)
		}
		label := child.label(i, ck)
		cf, err := b.build(child, label, path+"/"+label, depth+1, ck)
		if err != nil {
			return nil, err
		}
		s.Append(cf)
	}
	return f, nil
}

// resolve merges the node's inline attributes over its named style.
func (b *builder) resolve(n Node, name, path string) (style.Style, error) {
	inline, err := n.Decl.Style(name)
	if err != nil {
		return style.Style{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", path)
	}
	if n.StyleName == "" {
		return inline, nil
	}
	named, err := b.sheet.Cascade(n.StyleName)
	if err != nil {
		return style.Style{}, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", path)
	}
	return style.Merge(named, inline), nil
}
