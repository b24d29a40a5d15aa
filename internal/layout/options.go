package layout

// Option configures a Frame or a Stripe at construction.
type Option func(*Frame)

// WithName sets the frame name.
func WithName(name string) Option {
	return func(f *Frame) {
		f.name = name
	}
}

// WithStyle replaces the whole layout style.
func WithStyle(style LayoutStyle) Option {
	return func(f *Frame) {
		f.layout = style
		f.span = style.Span
	}
}

// WithInk replaces the whole ink style.
func WithInk(ink InkStyle) Option {
	return func(f *Frame) {
		f.ink = ink
	}
}

// WithSize fixes both dimensions. A zero value leaves that dimension unset.
func WithSize(width, height float64) Option {
	return func(f *Frame) {
		f.layout.Size = DimFloat{width, height}
	}
}

// WithSpace sets the space class.
func WithSpace(space Space) Option {
	return func(f *Frame) {
		f.layout.Space = space
	}
}

// WithFlow sets the flow mode.
func WithFlow(flow Flow) Option {
	return func(f *Frame) {
		f.layout.Flow = flow
	}
}

// WithLayoutDim sets the length dimension of a Stripe.
func WithLayoutDim(d Dim) Option {
	return func(f *Frame) {
		f.layout.LayoutDim = d
	}
}

// WithSpan sets the span on both dimensions.
func WithSpan(x, y float64) Option {
	return func(f *Frame) {
		f.layout.Span = DimFloat{x, y}
		f.span = f.layout.Span
	}
}

// WithPadding sets the padding box.
func WithPadding(padding BoxFloat) Option {
	return func(f *Frame) {
		f.layout.Padding = padding
	}
}

// WithMargin sets the total margin per dimension.
func WithMargin(x, y float64) Option {
	return func(f *Frame) {
		f.layout.Margin = DimFloat{x, y}
	}
}

// WithSpacing sets the spacing between sequenced children.
func WithSpacing(x, y float64) Option {
	return func(f *Frame) {
		f.layout.Spacing = DimFloat{x, y}
	}
}

// WithAlign sets the alignment on both dimensions.
func WithAlign(x, y Align) Option {
	return func(f *Frame) {
		f.ink.Align = [2]Align{x, y}
	}
}

// WithPivot sets the sequencing order on both dimensions.
func WithPivot(x, y Pivot) Option {
	return func(f *Frame) {
		f.layout.Pivot = [2]Pivot{x, y}
	}
}

// WithOpacity sets how the frame answers opaque hit tests.
func WithOpacity(opacity Opacity) Option {
	return func(f *Frame) {
		f.layout.Opacity = opacity
	}
}

// WithClipping sets whether a container bounds its children.
func WithClipping(clipping Clipping) Option {
	return func(f *Frame) {
		f.layout.Clipping = clipping
	}
}

// WithWeights sets the weight mode and table of a Stripe.
func WithWeights(mode Weight, weights ...float64) Option {
	return func(f *Frame) {
		f.layout.Weight = mode
		f.layout.Weights = append([]float64(nil), weights...)
	}
}

// WithHidden creates the frame out of flow.
func WithHidden() Option {
	return func(f *Frame) {
		f.hidden = true
	}
}
