package layout

import "github.com/grindlemire/go-stripe/internal/debug"

// Relayout expands and positions the children of a dirty Stripe.
// It is a no-op when nothing changed since the last pass.
//
// Layouting consists of:
//  0. Shrinking the tree from leaves to root, done eagerly each time a
//     frame size changes (see SetSizeDim).
//  1. Expanding the tree from root to leaves so that it occupies all space,
//     then positioning each sequence once its sizes are final.
func (s *Stripe) Relayout() {
	if !s.relayout {
		return
	}
	// Cleared first: a re-entrant call sees a clean Stripe and returns.
	s.relayout = false

	s.normalizeSpan()

	switch {
	case s.layout.Weight == WeightList && len(s.weights) > 0:
		if s.dispatchWeights() {
			s.normalizeSpan()
		}
	case s.layout.Weight == WeightTable:
		s.dispatchTableWeights()
	}

	s.expandDepth()
	s.expandLength()

	s.positionSequence()

	debug.Log("relayout", "stripe", s.name, "size", s.size, "free", s.freeSpace)
}

// normalizeSpan rescales the spans of visible flow children that expand
// along the length so that they sum to 1.
func (s *Stripe) normalizeSpan() {
	total := 0.0
	for _, f := range s.seq() {
		if f.expands(s.length) && !f.hidden {
			total += f.span[s.length]
		}
	}
	if total <= 0 {
		return
	}
	for _, f := range s.seq() {
		if f.expands(s.length) && !f.hidden {
			f.setSpanDirect(s.length, f.span[s.length]/total)
		}
	}
}

// dispatchWeights applies the pending table to the spans of the children at
// each index, then clears it. Negative entries are skipped. It reports
// whether any span was set.
func (s *Stripe) dispatchWeights() bool {
	applied := false
	for index, weight := range s.weights {
		if index >= len(s.contents) {
			break
		}
		if weight >= 0 {
			s.contents[index].setSpanDirect(s.length, weight)
			applied = true
		}
	}
	debug.Log("dispatch weights", "stripe", s.name, "weights", s.weights)
	s.weights = s.weights[:0]
	return applied
}

// dispatchTableWeights sets the column spans of every row in the sequence
// whose own sequence has exactly as many children as the table has entries.
// Other rows are skipped. The table stays pending.
func (s *Stripe) dispatchTableWeights() {
	if len(s.weights) == 0 {
		return
	}
	for _, f := range s.seq() {
		row := f.container
		if row == nil {
			continue
		}
		columns := row.seq()
		if len(columns) != len(s.weights) {
			continue
		}
		for index, weight := range s.weights {
			if weight >= 0 {
				columns[index].SetSpanDim(s.depth, weight)
			}
		}
	}
}

// expandDepth gives every child that expands across the sequence the full
// available depth.
func (s *Stripe) expandDepth() {
	space := s.available(s.depth)
	for _, f := range s.contents {
		if f.expands(s.depth) {
			f.SetSizeDim(s.depth, space)
		}
	}
}

// expandLength shares the free length between the expanding flow children in
// proportion to their span. Expanding non-flow children overlay the full
// length. Any expanding child leaves no free space for alignment.
// Over-constrained sequences yield a negative free space, which flows through.
func (s *Stripe) expandLength() {
	space := s.available(s.length) - s.sequenceLength
	s.freeSpace = space

	for _, f := range s.contents {
		if !f.expands(s.length) || f.hidden {
			continue
		}
		if f.Flow() {
			f.SetSizeDim(s.length, space*f.span[s.length])
		} else {
			f.SetSizeDim(s.length, s.available(s.length))
		}
		s.freeSpace = 0
	}
}

// positionSequence places the visible flow children one after the other
// along the length, starting at the padding minus the cursor, and aligns them
// across it.
//
// The depth offset checks CENTER on the depth alignment but RIGHT on the
// length alignment. Downstream output depends on that precedence.
func (s *Stripe) positionSequence() {
	length, depth := s.length, s.depth
	align := s.ink.Align
	spacing := s.layout.Spacing[length]

	offset := -s.cursor + s.layout.Padding.Start(length)
	switch align[length] {
	case AlignCenter:
		offset += s.freeSpace / 2
	case AlignRight:
		offset += s.freeSpace
	}

	space := s.available(depth)
	perp := 0.0

	var prev *Frame
	place := func(f *Frame) {
		if f.hidden {
			return
		}
		if align[depth] == AlignCenter {
			perp = (space - f.Extent(depth)) / 2
		} else if align[length] == AlignRight {
			perp = space - f.Extent(depth)
		}

		pos := offset + f.layout.Margin[length]/2
		if prev != nil {
			pos = prev.position[length] + prev.size[length] + prev.layout.Margin[length]/2 +
				spacing + f.layout.Margin[length]/2
		}
		f.SetPositionDim(length, pos)
		f.SetPositionDim(depth, perp+s.layout.Padding.Start(depth)+f.layout.Margin[depth]/2)
		prev = f
	}

	sequence := s.seq()
	if s.layout.Pivot[length] == Reverse {
		for i := len(sequence) - 1; i >= 0; i-- {
			place(sequence[i])
		}
		return
	}
	for _, f := range sequence {
		place(f)
	}
}
