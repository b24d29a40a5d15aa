package style

import (
	"slices"

	"github.com/grindlemire/go-stripe/internal/layout"
)

// Layout holds the optional layout attributes of a style.
type Layout struct {
	Flow      Attr[layout.Flow]
	Clipping  Attr[layout.Clipping]
	Opacity   Attr[layout.Opacity]
	Space     Attr[layout.Space]
	LayoutDim Attr[layout.Dim]
	Span      Attr[layout.DimFloat]
	Size      Attr[layout.DimFloat]
	Padding   Attr[layout.BoxFloat]
	Margin    Attr[layout.DimFloat]
	Spacing   Attr[layout.DimFloat]
	Pivot     Attr[[2]layout.Pivot]
	Weight    Attr[layout.Weight]
	Weights   Attr[[]float64]
}

// Ink holds the optional ink attributes of a style.
type Ink struct {
	Align Attr[[2]layout.Align]
}

// Style is a named set of attributes with an optional base style.
type Style struct {
	Name   string
	Base   string
	Layout Layout
	Ink    Ink
}

// Override replaces the attributes of l that over sets.
func (l *Layout) Override(over Layout) {
	l.Flow.Override(over.Flow)
	l.Clipping.Override(over.Clipping)
	l.Opacity.Override(over.Opacity)
	l.Space.Override(over.Space)
	l.LayoutDim.Override(over.LayoutDim)
	l.Span.Override(over.Span)
	l.Size.Override(over.Size)
	l.Padding.Override(over.Padding)
	l.Margin.Override(over.Margin)
	l.Spacing.Override(over.Spacing)
	l.Pivot.Override(over.Pivot)
	l.Weight.Override(over.Weight)
	l.Weights.Override(over.Weights)
	l.Weights.Value = slices.Clone(l.Weights.Value)
}

// Override replaces the attributes of i that over sets.
func (i *Ink) Override(over Ink) {
	i.Align.Override(over.Align)
}

// Merge returns base with every attribute set in over replaced. Attributes
// set in either keep their set flag. Name and Base come from over.
func Merge(base, over Style) Style {
	out := base
	out.Name, out.Base = over.Name, over.Base
	out.Layout.Override(over.Layout)
	out.Ink.Override(over.Ink)
	return out
}

// Snapshot converts the style into the snapshots the layout engine reads.
// Unset attributes take the engine defaults.
func (s Style) Snapshot() (layout.LayoutStyle, layout.InkStyle) {
	ls := layout.DefaultLayoutStyle()
	l := s.Layout
	ls.Flow = l.Flow.Or(ls.Flow)
	ls.Clipping = l.Clipping.Or(ls.Clipping)
	ls.Opacity = l.Opacity.Or(ls.Opacity)
	ls.Space = l.Space.Or(ls.Space)
	ls.LayoutDim = l.LayoutDim.Or(ls.LayoutDim)
	ls.Span = l.Span.Or(ls.Span)
	ls.Size = l.Size.Or(ls.Size)
	ls.Padding = l.Padding.Or(ls.Padding)
	ls.Margin = l.Margin.Or(ls.Margin)
	ls.Spacing = l.Spacing.Or(ls.Spacing)
	ls.Pivot = l.Pivot.Or(ls.Pivot)
	ls.Weight = l.Weight.Or(ls.Weight)
	ls.Weights = slices.Clone(l.Weights.Or(ls.Weights))

	ink := layout.DefaultInkStyle()
	ink.Align = s.Ink.Align.Or(ink.Align)
	return ls, ink
}

// Options returns construction options applying the style snapshot.
func (s Style) Options() []layout.Option {
	ls, ink := s.Snapshot()
	return []layout.Option{layout.WithStyle(ls), layout.WithInk(ink)}
}
