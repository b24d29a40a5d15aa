package style

import (
	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
)

// Decl is the document form of a style. Every field is optional.
//
// Dimension pairs take one value for both dimensions or an x, y pair.
// Padding takes one value, an x, y pair, or the four edges x0, y0, x1, y1.
type Decl struct {
	Base      string    `toml:"base" yaml:"base"`
	Flow      string    `toml:"flow" yaml:"flow"`
	Clipping  string    `toml:"clipping" yaml:"clipping"`
	Opacity   string    `toml:"opacity" yaml:"opacity"`
	Space     string    `toml:"space" yaml:"space"`
	LayoutDim string    `toml:"layout_dim" yaml:"layout_dim"`
	Span      []float64 `toml:"span" yaml:"span"`
	Size      []float64 `toml:"size" yaml:"size"`
	Padding   []float64 `toml:"padding" yaml:"padding"`
	Margin    []float64 `toml:"margin" yaml:"margin"`
	Spacing   []float64 `toml:"spacing" yaml:"spacing"`
	Pivot     []string  `toml:"pivot" yaml:"pivot"`
	Weight    string    `toml:"weight" yaml:"weight"`
	Weights   []float64 `toml:"weights" yaml:"weights"`
	Align     []string  `toml:"align" yaml:"align"`
}

// Style converts the declaration into a Style called name.
func (d Decl) Style(name string) (Style, error) {
	st := Style{Name: name, Base: d.Base}
	l := &st.Layout

	var err error
	set := func(apply func() error) {
		if err == nil {
			err = apply()
		}
	}

	set(func() error { return enumAttr(&l.Flow, flowNames, "flow", d.Flow) })
	set(func() error { return enumAttr(&l.Clipping, clippingNames, "clipping", d.Clipping) })
	set(func() error { return enumAttr(&l.Opacity, opacityNames, "opacity", d.Opacity) })
	set(func() error { return enumAttr(&l.Space, spaceNames, "space", d.Space) })
	set(func() error { return enumAttr(&l.LayoutDim, dimNames, "layout_dim", d.LayoutDim) })
	set(func() error { return enumAttr(&l.Weight, weightNames, "weight", d.Weight) })
	set(func() error { return dimAttr(&l.Span, "span", d.Span) })
	set(func() error { return dimAttr(&l.Size, "size", d.Size) })
	set(func() error { return dimAttr(&l.Margin, "margin", d.Margin) })
	set(func() error { return dimAttr(&l.Spacing, "spacing", d.Spacing) })
	set(func() error { return boxAttr(&l.Padding, "padding", d.Padding) })
	set(func() error { return pairAttr(&l.Pivot, pivotNames, "pivot", d.Pivot) })
	set(func() error { return pairAttr(&st.Ink.Align, alignNames, "align", d.Align) })
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "style %q", name)
	}

	if d.Weights != nil {
		l.Weights = Of(append([]float64(nil), d.Weights...))
	}
	return st, nil
}

func enumAttr[T any](a *Attr[T], names map[string]T, attr, name string) error {
	if name == "" {
		return nil
	}
	v, err := lookup(names, attr, name)
	if err != nil {
		return err
	}
	*a = Of(v)
	return nil
}

func dimAttr(a *Attr[layout.DimFloat], attr string, vs []float64) error {
	switch len(vs) {
	case 0:
	case 1:
		*a = Of(layout.Dims(vs[0], vs[0]))
	case 2:
		*a = Of(layout.Dims(vs[0], vs[1]))
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "%s: want 1 or 2 values, got %d", attr, len(vs))
	}
	return nil
}

func boxAttr(a *Attr[layout.BoxFloat], attr string, vs []float64) error {
	switch len(vs) {
	case 0:
	case 1:
		*a = Of(layout.BoxAll(vs[0]))
	case 2:
		*a = Of(layout.BoxFloat{vs[0], vs[1], vs[0], vs[1]})
	case 4:
		*a = Of(layout.BoxFloat{vs[0], vs[1], vs[2], vs[3]})
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "%s: want 1, 2 or 4 values, got %d", attr, len(vs))
	}
	return nil
}

func pairAttr[T any](a *Attr[[2]T], names map[string]T, attr string, vs []string) error {
	var pair [2]T
	switch len(vs) {
	case 0:
		return nil
	case 1, 2:
		for i := range pair {
			v, err := lookup(names, attr, vs[min(i, len(vs)-1)])
			if err != nil {
				return err
			}
			pair[i] = v
		}
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "%s: want 1 or 2 values, got %d", attr, len(vs))
	}
	*a = Of(pair)
	return nil
}

// document is the top level of a style sheet file.
type document struct {
	Styles map[string]Decl `toml:"styles" yaml:"styles"`
}

// ParseSheet decodes a style sheet document.
func ParseSheet(data []byte, format Format) (*Sheet, error) {
	var doc document
	if err := Decode(data, format, &doc); err != nil {
		return nil, err
	}
	return FromDecls(doc.Styles)
}

// LoadSheet reads a style sheet file, picking the format from its extension.
func LoadSheet(path string) (*Sheet, error) {
	var doc document
	if err := ReadFile(path, &doc); err != nil {
		return nil, err
	}
	sheet, err := FromDecls(doc.Styles)
	if err != nil {
		return nil, inFile(path, err)
	}
	return sheet, nil
}

// FromDecls builds a sheet from named declarations and validates its base
// chains.
func FromDecls(decls map[string]Decl) (*Sheet, error) {
	sheet := NewSheet()
	for name, d := range decls {
		st, err := d.Style(name)
		if err != nil {
			return nil, err
		}
		sheet.Add(st)
	}
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return sheet, nil
}
