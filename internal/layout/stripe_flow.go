package layout

// depthTolerance absorbs rounding when comparing a child's former extent
// with the tracked maximum.
const depthTolerance = 1e-9

// flowShown accounts for a sequenced child that became visible.
func (s *Stripe) flowShown(child *Frame) {
	if s.shown > 0 {
		s.sequenceLength += s.layout.Spacing[s.length]
	}
	s.shown++

	if !child.expands(s.length) {
		s.adjustLength(child.Extent(s.length))
	}
	if !child.expands(s.depth) {
		s.adjustDepth(0, child.Extent(s.depth))
	}
	s.updateLength()
	s.relayout = true
}

// flowHidden is the exact inverse of flowShown.
func (s *Stripe) flowHidden(child *Frame) {
	s.shown--
	if s.shown > 0 {
		s.sequenceLength -= s.layout.Spacing[s.length]
	}

	if !child.expands(s.length) {
		s.adjustLength(-child.Extent(s.length))
	}
	if !child.expands(s.depth) {
		s.adjustDepth(child.Extent(s.depth), 0)
	}
	s.updateLength()
	s.relayout = true
}

// flowSized accounts for a visible sequenced child whose size changed by
// delta along d.
func (s *Stripe) flowSized(child *Frame, d Dim, delta float64) {
	if child.hidden {
		return
	}
	if d == s.length {
		s.adjustLength(delta)
		s.updateLength()
	} else {
		extent := child.Extent(d)
		s.adjustDepth(extent-delta, extent)
	}
	s.relayout = true
}

// resized reacts to a change of this Stripe's own size along d.
func (s *Stripe) resized(d Dim) {
	if d == s.length {
		s.expandLength()
	} else {
		s.expandDepth()
	}
	s.relayout = true
}

// adjustLength moves the tracked sequence length by delta.
func (s *Stripe) adjustLength(delta float64) {
	s.sequenceLength += delta
}

// adjustDepth updates the tracked maximum depth for one child whose depth
// extent went from before to after. A full scan is only needed when the child
// that shrank was the one defining the maximum.
func (s *Stripe) adjustDepth(before, after float64) {
	switch {
	case after > s.maxDepth:
		s.maxDepth = after
		s.updateDepth()
	case after < before && before >= s.maxDepth-depthTolerance:
		s.RecomputeDepth()
	}
}

// RecomputeLength rebuilds the tracked sequence length from scratch.
func (s *Stripe) RecomputeLength() {
	s.sequenceLength, s.shown = s.measureLength()
	s.updateLength()
}

// RecomputeDepth rebuilds the tracked maximum depth from scratch.
func (s *Stripe) RecomputeDepth() {
	s.maxDepth = s.measureDepth()
	s.updateDepth()
}

// measureLength sums the length extents of visible, non-expanding flow
// children plus the spacing between every visible flow child.
func (s *Stripe) measureLength() (length float64, shown int) {
	for _, f := range s.seq() {
		if f.hidden || !f.sequenced {
			continue
		}
		if shown > 0 {
			length += s.layout.Spacing[s.length]
		}
		shown++
		if !f.expands(s.length) {
			length += f.Extent(s.length)
		}
	}
	return length, shown
}

// measureDepth returns the largest depth extent among visible flow children
// that do not expand across the sequence.
func (s *Stripe) measureDepth() float64 {
	depth := 0.0
	for _, f := range s.seq() {
		if f.hidden || !f.sequenced || f.expands(s.depth) {
			continue
		}
		depth = max(depth, f.Extent(s.depth))
	}
	return depth
}

// updateLength resizes the Stripe along its length when it shrinks to content.
func (s *Stripe) updateLength() {
	if s.shrinks(s.length) {
		s.SetSizeDim(s.length, s.sequenceLength+s.layout.Padding.Sum(s.length))
	}
}

// updateDepth resizes the Stripe across its length when it shrinks to content.
func (s *Stripe) updateDepth() {
	if s.shrinks(s.depth) {
		s.SetSizeDim(s.depth, s.maxDepth+s.layout.Padding.Sum(s.depth))
	}
}
