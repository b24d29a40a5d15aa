package layout

// Kind distinguishes leaf frames from the container kinds.
type Kind uint8

const (
	KindLeaf    Kind = iota // No children
	KindStripe              // Sequencing container
	KindLayer               // Container drawn on its own layer
	KindLayer3D             // Layer holding 3D content, skipped by 2D hit tests
)

func (k Kind) String() string {
	switch k {
	case KindStripe:
		return "stripe"
	case KindLayer:
		return "layer"
	case KindLayer3D:
		return "layer3d"
	default:
		return "leaf"
	}
}

// Dirty records how much of a frame must be redrawn.
// Levels are ordered; marking a frame keeps the highest level seen.
type Dirty uint8

const (
	DirtyClean    Dirty = iota // Nothing changed
	DirtyPosition              // Moved
	DirtyClip                  // Clip rectangle changed
	DirtyFrame                 // Resized or restyled
)

// Frame holds the laid-out geometry of one widget.
// Frames are owned by the Stripe they are inserted in; the parent pointer
// is only used to notify it of changes.
type Frame struct {
	kind      Kind
	container *Stripe // Set for every container kind
	parent    *Stripe
	layer     *Stripe // Nearest enclosing layer
	index     int
	name      string

	position DimFloat
	size     DimFloat
	span     DimFloat

	layout LayoutStyle
	ink    InkStyle
	class  Space
	sizing [2]Sizing

	hidden    bool // Removed from flow
	visible   bool // Drawn and hit-testable
	sequenced bool // Counted in the parent's tracked length and depth
	dirty     Dirty
}

// NewFrame creates a leaf frame with the given options.
// By default a leaf shrinks to the size its owner measures for it.
func NewFrame(opts ...Option) *Frame {
	f := &Frame{}
	f.init(KindLeaf, nil)
	for _, opt := range opts {
		opt(f)
	}
	f.updateStyle()
	return f
}

func (f *Frame) init(kind Kind, container *Stripe) {
	f.kind = kind
	f.container = container
	f.layout = DefaultLayoutStyle()
	f.ink = DefaultInkStyle()
	f.span = f.layout.Span
	f.visible = true
	f.dirty = DirtyFrame
}

// Kind returns the frame kind.
func (f *Frame) Kind() Kind { return f.kind }

// Container returns the Stripe behind a container frame, or nil for leaves.
func (f *Frame) Container() *Stripe { return f.container }

// Parent returns the owning Stripe, or nil for a root.
func (f *Frame) Parent() *Stripe { return f.parent }

// Layer returns the nearest enclosing layer, or nil when there is none.
func (f *Frame) Layer() *Stripe { return f.layer }

// Index returns the frame's position in its parent's contents.
func (f *Frame) Index() int { return f.index }

// Name returns the frame's name.
func (f *Frame) Name() string { return f.name }

// SetName sets the name used by logs and inspection tools.
func (f *Frame) SetName(name string) { f.name = name }

// Position returns the position relative to the parent's origin.
func (f *Frame) Position() DimFloat { return f.position }

// Size returns the frame size.
func (f *Frame) Size() DimFloat { return f.size }

// Span returns the frame span.
func (f *Frame) Span() DimFloat { return f.span }

// Style returns the layout style snapshot.
func (f *Frame) Style() LayoutStyle { return f.layout }

// Ink returns the ink style snapshot.
func (f *Frame) Ink() InkStyle { return f.ink }

// Space returns the resolved space class.
func (f *Frame) Space() Space { return f.class }

// Sizing returns the sizing policy on d.
func (f *Frame) Sizing(d Dim) Sizing { return f.sizing[d] }

// Flow reports whether the frame is sequenced by its parent.
func (f *Frame) Flow() bool { return f.layout.Flow == FlowFlow }

// Hidden reports whether the frame has been taken out of flow.
func (f *Frame) Hidden() bool { return f.hidden }

// Visible reports whether the frame is drawn and answers hit tests.
func (f *Frame) Visible() bool { return f.visible && !f.hidden }

// DirtyLevel returns the pending redraw level.
func (f *Frame) DirtyLevel() Dirty { return f.dirty }

// ClearDirty resets the redraw level once the frame has been drawn.
func (f *Frame) ClearDirty() { f.dirty = DirtyClean }

func (f *Frame) expands(d Dim) bool { return f.sizing[d] == SizingExpand }

func (f *Frame) shrinks(d Dim) bool { return f.sizing[d] == SizingShrink }

// Extent returns the space the frame takes in its parent along d: its size
// plus its margin.
func (f *Frame) Extent(d Dim) float64 {
	return f.size[d] + f.layout.Margin[d]
}

// Rect returns the frame bounds in its parent's coordinates.
func (f *Frame) Rect() Rect {
	return NewRect(f.position[DimX], f.position[DimY], f.size[DimX], f.size[DimY])
}

// Absolute returns the frame position in root coordinates.
func (f *Frame) Absolute() Point {
	return f.origin().Add(Point{X: f.position[DimX], Y: f.position[DimY]})
}

// AbsoluteRect returns the frame bounds in root coordinates.
func (f *Frame) AbsoluteRect() Rect {
	o := f.origin()
	return f.Rect().Translate(o.X, o.Y)
}

// origin returns the root coordinates of the parent's coordinate space.
func (f *Frame) origin() Point {
	var p Point
	for s := f.parent; s != nil; s = s.parent {
		p = p.Add(Point{X: s.position[DimX], Y: s.position[DimY]})
	}
	return p
}

// Inside reports whether (x, y), in the parent's coordinates, falls within the frame.
func (f *Frame) Inside(x, y float64) bool {
	return f.Rect().Contains(x, y)
}

// SetSize sets both dimensions of the frame size.
func (f *Frame) SetSize(width, height float64) {
	f.SetSizeDim(DimX, width)
	f.SetSizeDim(DimY, height)
}

// SetSizeDim sets the size along d.
//
// A sequenced, visible child that does not expand on d reports the change
// to its parent, which adjusts its tracked extent and resizes itself when it
// shrinks to content. A container reacts to its own new size by
// redistributing space to its expanding children.
func (f *Frame) SetSizeDim(d Dim, size float64) {
	delta := size - f.size[d]
	if delta == 0 {
		return
	}
	f.size[d] = size
	f.MarkDirty(DirtyFrame)

	if f.parent != nil && f.sequenced && !f.hidden && !f.expands(d) {
		f.parent.flowSized(f, d, delta)
	}
	if s := f.container; s != nil {
		s.resized(d)
	}
}

// SetPosition sets both coordinates of the frame position.
func (f *Frame) SetPosition(x, y float64) {
	f.SetPositionDim(DimX, x)
	f.SetPositionDim(DimY, y)
}

// SetPositionDim sets the position along d, relative to the parent.
func (f *Frame) SetPositionDim(d Dim, pos float64) {
	if f.position[d] == pos {
		return
	}
	f.position[d] = pos
	f.MarkDirty(DirtyPosition)
}

// SetSpanDim sets the span along d and schedules a relayout of the parent
// when the value changes.
func (f *Frame) SetSpanDim(d Dim, span float64) {
	if f.span[d] == span {
		return
	}
	f.span[d] = span
	if f.parent != nil {
		f.parent.relayout = true
	}
}

// setSpanDirect changes the span without notifying the parent.
// Used by the parent itself while it lays out.
func (f *Frame) setSpanDirect(d Dim, span float64) {
	f.span[d] = span
}

// SetStyle replaces the style snapshots and re-derives sizing.
// The frame's Stripe, if any, and its parent recompute their tracking.
func (f *Frame) SetStyle(layout LayoutStyle, ink InkStyle) {
	wasFlow := f.Flow()
	f.layout = layout
	f.ink = ink
	f.span = layout.Span
	f.updateStyle()
	f.MarkDirty(DirtyFrame)

	p := f.parent
	if p == nil {
		return
	}
	switch {
	case wasFlow && !f.Flow() && f.sequenced:
		p.removeFlow(f)
	case !wasFlow && f.Flow() && !f.sequenced:
		p.insertFlow(f)
	}
	p.invalidateSequence()
	p.RecomputeLength()
	p.RecomputeDepth()
	p.relayout = true
}

// updateStyle re-derives everything that depends on the style snapshot.
func (f *Frame) updateStyle() {
	if s := f.container; s != nil {
		s.updateStyle()
		return
	}
	f.updateSizing()
}

// updateSizing resolves the space class and the per-dimension sizing, and
// applies style-fixed sizes.
func (f *Frame) updateSizing() {
	f.class = resolveSpace(f)
	parentLength := DimX
	if f.parent != nil {
		parentLength = f.parent.length
	}
	f.sizing = sizingFor(f.class, parentLength, f.layout.Size)
	for _, d := range []Dim{DimX, DimY} {
		if f.sizing[d] == SizingFixed {
			f.SetSizeDim(d, f.layout.Size[d])
		}
	}
}

// Show puts a hidden frame back into its parent's flow.
func (f *Frame) Show() {
	if !f.hidden {
		return
	}
	f.hidden = false
	f.MarkDirty(DirtyFrame)
	if f.parent != nil && f.sequenced {
		f.parent.flowShown(f)
	}
}

// Hide takes the frame out of its parent's flow.
func (f *Frame) Hide() {
	if f.hidden {
		return
	}
	f.hidden = true
	f.MarkDirty(DirtyFrame)
	if f.parent != nil && f.sequenced {
		f.parent.flowHidden(f)
	}
}

// SetVisible sets whether the frame is drawn, cascading into containers.
// Unlike Hide, it leaves the flow untouched.
func (f *Frame) SetVisible(visible bool) {
	f.visible = visible
	f.MarkDirty(DirtyFrame)
	if s := f.container; s != nil {
		for _, c := range s.contents {
			c.SetVisible(visible)
		}
	}
}

// MarkDirty raises the frame's redraw level, cascading into containers.
func (f *Frame) MarkDirty(dirty Dirty) {
	if dirty > f.dirty {
		f.dirty = dirty
	}
	if s := f.container; s != nil {
		for _, c := range s.contents {
			c.MarkDirty(dirty)
		}
	}
}

// bind attaches the frame to parent and re-derives what depends on it.
func (f *Frame) bind(parent *Stripe) {
	f.parent = parent
	if parent.kind >= KindLayer {
		f.migrate(parent)
	} else {
		f.migrate(parent.layer)
	}
	f.updateStyle()
}

// unbind detaches the frame from its parent.
func (f *Frame) unbind() {
	f.parent = nil
	f.migrate(nil)
}

// migrate moves the frame and its non-layer descendants onto layer.
// Nested layers keep their own contents.
func (f *Frame) migrate(layer *Stripe) {
	f.layer = layer
	f.MarkDirty(DirtyFrame)
	s := f.container
	if s == nil || f.kind >= KindLayer {
		return
	}
	for _, c := range s.contents {
		c.migrate(layer)
	}
}

// Pinpoint returns the deepest visible frame containing (x, y), expressed in
// the parent's coordinates, or nil. With opaque set only Opaque frames answer.
func (f *Frame) Pinpoint(x, y float64, opaque bool) *Frame {
	if s := f.container; s != nil {
		return s.pinpoint(x, y, opaque)
	}
	return f.pinpointSelf(x, y, opaque)
}

func (f *Frame) pinpointSelf(x, y float64, opaque bool) *Frame {
	if !f.Inside(x, y) {
		return nil
	}
	if opaque && f.layout.Opacity != Opaque {
		return nil
	}
	return f
}

// offset returns the distance from this frame's start to its next sibling's
// start along d.
func (f *Frame) offset(d Dim) float64 {
	o := f.Extent(d)
	if f.parent != nil {
		o += f.parent.layout.Spacing[d]
	}
	return o
}

// nextOffset advances pos past this frame and reports whether the frame ends
// beyond threshold.
func (f *Frame) nextOffset(d Dim, pos *float64, threshold float64) bool {
	if s := f.container; s != nil {
		return s.nextOffset(d, pos, threshold, false)
	}
	return f.nextOffsetSelf(d, pos, threshold)
}

func (f *Frame) nextOffsetSelf(d Dim, pos *float64, threshold float64) bool {
	*pos += f.offset(d)
	return *pos > threshold
}

// prevOffset reports whether this frame reaches threshold. When it does, pos
// is left on the frame's start; otherwise pos advances past the frame.
func (f *Frame) prevOffset(d Dim, pos *float64, threshold float64) bool {
	if s := f.container; s != nil {
		return s.prevOffset(d, pos, threshold, false)
	}
	return f.prevOffsetSelf(d, pos, threshold)
}

func (f *Frame) prevOffsetSelf(d Dim, pos *float64, threshold float64) bool {
	end := *pos + f.offset(d)
	if end >= threshold {
		return true
	}
	*pos = end
	return false
}
