// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package stripe

import "github.com/grindlemire/go-stripe/internal/layout"

// Dim names one of the two dimensions.
type Dim = layout.Dim

const (
	DimX = layout.DimX
	DimY = layout.DimY
)

// Axis names a dimension relative to a Stripe.
type Axis = layout.Axis

const (
	Primary = layout.Primary
	Cross   = layout.Cross
)

// DimFloat holds one value per dimension.
type DimFloat = layout.DimFloat

// BoxFloat holds one value per edge: x0, y0, x1, y1.
type BoxFloat = layout.BoxFloat

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Frame holds the laid-out geometry of one widget.
type Frame = layout.Frame

// Stripe is a Frame that sequences its flow children along one dimension.
type Stripe = layout.Stripe

// Option configures a Frame or a Stripe at construction.
type Option = layout.Option

// Kind distinguishes leaf frames from the container kinds.
type Kind = layout.Kind

const (
	KindLeaf    = layout.KindLeaf
	KindStripe  = layout.KindStripe
	KindLayer   = layout.KindLayer
	KindLayer3D = layout.KindLayer3D
)

// Dirty records how much of a frame must be redrawn.
type Dirty = layout.Dirty

const (
	DirtyClean    = layout.DirtyClean
	DirtyPosition = layout.DirtyPosition
	DirtyClip     = layout.DirtyClip
	DirtyFrame    = layout.DirtyFrame
)

// LayoutStyle is the snapshot of layout properties a frame is laid out with.
type LayoutStyle = layout.LayoutStyle

// InkStyle is the snapshot of drawing properties that affect layout.
type InkStyle = layout.InkStyle

// Flow specifies whether a frame takes part in its parent's sequence.
type Flow = layout.Flow

const (
	FlowFlow    = layout.FlowFlow
	FlowOverlay = layout.FlowOverlay
	FlowFree    = layout.FlowFree
)

// Clipping specifies whether a container bounds its children.
type Clipping = layout.Clipping

const (
	Clip   = layout.Clip
	NoClip = layout.NoClip
)

// Opacity specifies how a frame answers opaque hit tests.
type Opacity = layout.Opacity

const (
	Opaque = layout.Opaque
	Void   = layout.Void
	Hollow = layout.Hollow
)

// Space classifies how a frame consumes the space of its parent.
type Space = layout.Space

const (
	SpaceAuto  = layout.SpaceAuto
	SpaceBoard = layout.SpaceBoard
	SpaceBlock = layout.SpaceBlock
	SpaceSpace = layout.SpaceSpace
	SpaceDiv   = layout.SpaceDiv
)

// Sizing specifies how a frame's size along one dimension is determined.
type Sizing = layout.Sizing

const (
	SizingShrink = layout.SizingShrink
	SizingExpand = layout.SizingExpand
	SizingFixed  = layout.SizingFixed
)

// Pivot specifies the order in which a sequence is laid out.
type Pivot = layout.Pivot

const (
	Forward = layout.Forward
	Reverse = layout.Reverse
)

// Weight selects how a Stripe's weight table is dispatched.
type Weight = layout.Weight

const (
	WeightNone  = layout.WeightNone
	WeightList  = layout.WeightList
	WeightTable = layout.WeightTable
)

// Align specifies where content sits within free space.
type Align = layout.Align

const (
	AlignLeft   = layout.AlignLeft
	AlignCenter = layout.AlignCenter
	AlignRight  = layout.AlignRight
)

// NewFrame creates a leaf frame.
func NewFrame(opts ...Option) *Frame {
	return layout.NewFrame(opts...)
}

// NewStripe creates a sequencing container.
func NewStripe(opts ...Option) *Stripe {
	return layout.NewStripe(opts...)
}

// NewLayer creates a container drawn on its own layer.
func NewLayer(opts ...Option) *Stripe {
	return layout.NewLayer(opts...)
}

// NewLayer3D creates a layer of 3D content, skipped by Pinpoint.
func NewLayer3D(opts ...Option) *Stripe {
	return layout.NewLayer3D(opts...)
}

// NextFrame runs one layout tick over the tree rooted at root.
func NextFrame(root *Frame) {
	layout.NextFrame(root)
}

// Walk visits root and every frame below it, depth first.
func Walk(root *Frame, fn func(f *Frame, depth int) bool) {
	layout.Walk(root, fn)
}

// Check verifies the incremental bookkeeping of every Stripe below root.
func Check(root *Frame) error {
	return layout.Check(root)
}

// DefaultLayoutStyle returns the layout style frames start with.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultLayoutStyle()
}

// DefaultInkStyle returns the ink style frames start with.
func DefaultInkStyle() InkStyle {
	return layout.DefaultInkStyle()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Dims creates a DimFloat from its x and y values.
func Dims(x, y float64) DimFloat {
	return layout.Dims(x, y)
}

// BoxAll creates a BoxFloat with the same value on every edge.
func BoxAll(v float64) BoxFloat {
	return layout.BoxAll(v)
}

// Construction options, see internal/layout for details.
var (
	WithName      = layout.WithName
	WithStyle     = layout.WithStyle
	WithInk       = layout.WithInk
	WithSize      = layout.WithSize
	WithSpace     = layout.WithSpace
	WithFlow      = layout.WithFlow
	WithLayoutDim = layout.WithLayoutDim
	WithSpan      = layout.WithSpan
	WithPadding   = layout.WithPadding
	WithMargin    = layout.WithMargin
	WithSpacing   = layout.WithSpacing
	WithAlign     = layout.WithAlign
	WithPivot     = layout.WithPivot
	WithOpacity   = layout.WithOpacity
	WithClipping  = layout.WithClipping
	WithWeights   = layout.WithWeights
	WithHidden    = layout.WithHidden
)
