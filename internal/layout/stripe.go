package layout

import "slices"

// Stripe is a Frame that sequences its flow children along one dimension.
//
// contents holds every child in insertion order; the sequence is the
// subsequence of flow children. The Stripe tracks the extent its visible
// flow children take along its length (sequenceLength) and the largest
// extent across it (maxDepth), and uses them to shrink to content and to
// compute the free space expanding children share.
type Stripe struct {
	Frame

	length Dim
	depth  Dim

	contents []*Frame
	sequence []*Frame // Cached view of the flow children of contents
	stale    bool     // sequence must be rebuilt

	shown          int // Visible sequenced children
	sequenceLength float64
	maxDepth       float64
	freeSpace      float64
	cursor         float64

	relayout bool
	weights  []float64 // Pending weight table
}

// NewStripe creates a container with the given options.
func NewStripe(opts ...Option) *Stripe {
	return newStripe(KindStripe, opts)
}

// NewLayer creates a container whose subtree is drawn on its own layer.
func NewLayer(opts ...Option) *Stripe {
	return newStripe(KindLayer, opts)
}

// NewLayer3D creates a layer of 3D content. Its subtree is skipped by Pinpoint.
func NewLayer3D(opts ...Option) *Stripe {
	return newStripe(KindLayer3D, opts)
}

func newStripe(kind Kind, opts []Option) *Stripe {
	s := &Stripe{relayout: true}
	s.Frame.init(kind, s)
	for _, opt := range opts {
		opt(&s.Frame)
	}
	s.updateStyle()
	return s
}

// Length returns the dimension flow children are sequenced along.
func (s *Stripe) Length() Dim { return s.length }

// Depth returns the dimension across the sequence.
func (s *Stripe) Depth() Dim { return s.depth }

// Dim resolves a container-relative axis to a concrete dimension.
func (s *Stripe) Dim(a Axis) Dim {
	if a == Primary {
		return s.length
	}
	return s.depth
}

// Contents returns every child in order. The slice must not be modified.
func (s *Stripe) Contents() []*Frame { return s.contents }

// Sequence returns the flow children in order. The slice must not be modified.
func (s *Stripe) Sequence() []*Frame { return s.seq() }

// SequenceLength returns the tracked extent of the visible flow children
// along the length, spacing included.
func (s *Stripe) SequenceLength() float64 { return s.sequenceLength }

// MaxDepth returns the tracked largest depth extent among children that do
// not expand across the sequence.
func (s *Stripe) MaxDepth() float64 { return s.maxDepth }

// FreeSpace returns the length left over by the last relayout.
func (s *Stripe) FreeSpace() float64 { return s.freeSpace }

// Cursor returns the scroll offset along the length.
func (s *Stripe) Cursor() float64 { return s.cursor }

// SetCursor sets the scroll offset along the length.
func (s *Stripe) SetCursor(cursor float64) {
	if s.cursor == cursor {
		return
	}
	s.cursor = cursor
	s.relayout = true
}

// NeedsRelayout reports whether the next tick will relayout this Stripe.
func (s *Stripe) NeedsRelayout() bool { return s.relayout }

// PendingWeights returns the weight table waiting to be dispatched.
func (s *Stripe) PendingWeights() []float64 { return s.weights }

// SetWeights replaces the pending weight table.
func (s *Stripe) SetWeights(weights []float64) {
	s.weights = append([]float64(nil), weights...)
	s.relayout = true
}

// available returns the content space along d: the size minus padding.
func (s *Stripe) available(d Dim) float64 {
	return s.size[d] - s.layout.Padding.Sum(d)
}

func (s *Stripe) updateStyle() {
	s.length = s.layout.LayoutDim
	s.depth = s.length.Other()
	s.Frame.updateSizing()
	if len(s.layout.Weights) > 0 {
		s.weights = append([]float64(nil), s.layout.Weights...)
	}
	s.RecomputeLength()
	s.RecomputeDepth()
	s.relayout = true
}

func (s *Stripe) seq() []*Frame {
	if s.stale {
		sequence := make([]*Frame, 0, len(s.contents))
		for _, f := range s.contents {
			if f.Flow() {
				sequence = append(sequence, f)
			}
		}
		s.sequence = sequence
		s.stale = false
	}
	return s.sequence
}

func (s *Stripe) invalidateSequence() {
	s.stale = true
}

// Append inserts frame at the end of the sequence if it flows, or at the end
// of the contents otherwise.
func (s *Stripe) Append(frame *Frame) {
	index := len(s.contents)
	if frame.Flow() {
		index = len(s.seq())
	}
	s.Insert(frame, index)
}

// Insert binds frame to this Stripe at index. The index is clamped to the
// contents, and to the sequence when the frame flows.
func (s *Stripe) Insert(frame *Frame, index int) {
	if frame.parent != nil {
		frame.parent.Remove(frame)
	}
	flowBound := len(s.seq())

	frame.bind(s)

	index = max(0, min(index, len(s.contents)))
	if frame.Flow() {
		index = min(index, flowBound)
	}
	s.contents = slices.Insert(s.contents, index, frame)
	s.reindex(index)
	s.invalidateSequence()

	if frame.Flow() {
		s.insertFlow(frame)
	}
	s.relayout = true
}

// Remove unbinds frame. Frames owned by another Stripe are ignored.
func (s *Stripe) Remove(frame *Frame) {
	if frame.parent != s || frame.index >= len(s.contents) || s.contents[frame.index] != frame {
		return
	}
	index := frame.index
	frame.unbind()
	s.contents = slices.Delete(s.contents, index, index+1)
	s.reindex(index)
	s.invalidateSequence()

	if frame.sequenced {
		s.removeFlow(frame)
	}
	s.relayout = true
}

// Move swaps the children at from and to.
func (s *Stripe) Move(from, to int) {
	if from < 0 || to < 0 || from >= len(s.contents) || to >= len(s.contents) || from == to {
		return
	}
	s.contents[from], s.contents[to] = s.contents[to], s.contents[from]
	s.reindex(min(from, to))
	s.invalidateSequence()
	s.relayout = true
}

// Clear drops every child at once, without running the per-child flow
// updates. Dropped frames are detached and may be inserted elsewhere.
func (s *Stripe) Clear() {
	for _, f := range s.contents {
		f.parent = nil
		f.sequenced = false
		f.index = 0
	}
	s.contents = nil
	s.sequence = nil
	s.stale = false
	s.shown = 0
	s.sequenceLength = 0
	s.maxDepth = 0
	s.updateLength()
	s.updateDepth()
	s.relayout = true
}

func (s *Stripe) reindex(from int) {
	for i := from; i < len(s.contents); i++ {
		s.contents[i].index = i
	}
}

func (s *Stripe) insertFlow(frame *Frame) {
	frame.sequenced = true
	s.relayout = true
	if !frame.hidden {
		s.flowShown(frame)
	}
}

func (s *Stripe) removeFlow(frame *Frame) {
	frame.sequenced = false
	s.relayout = true
	if !frame.hidden {
		s.flowHidden(frame)
	}
}

// DeepRelayout schedules a relayout of this Stripe and every container below it.
func (s *Stripe) DeepRelayout() {
	s.relayout = true
	for _, f := range s.contents {
		if c := f.container; c != nil {
			c.DeepRelayout()
		}
	}
}

// pinpoint tests children last to first, so that frames inserted later,
// which are drawn on top, win. Points outside the Stripe never reach its
// children. A non-opaque Stripe still lets its children answer.
func (s *Stripe) pinpoint(x, y float64, opaque bool) *Frame {
	if !s.Inside(x, y) {
		return nil
	}

	lx, ly := x-s.position[DimX], y-s.position[DimY]
	for i := len(s.contents) - 1; i >= 0; i-- {
		f := s.contents[i]
		if !f.Visible() || f.kind == KindLayer3D {
			continue
		}
		if target := f.Pinpoint(lx, ly, opaque); target != nil {
			return target
		}
	}

	return s.pinpointSelf(x, y, opaque)
}
