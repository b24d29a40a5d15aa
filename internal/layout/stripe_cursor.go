package layout

// CursorUp scrolls back to the start of the item before the cursor.
func (s *Stripe) CursorUp() {
	pos := 0.0
	s.prevOffset(s.length, &pos, s.cursor, true)
	s.cursor = max(0, pos)
	s.relayout = true
}

// CursorDown scrolls forward to the end of the item under the cursor,
// without scrolling past the end of the sequence.
func (s *Stripe) CursorDown() {
	pos := 0.0
	s.nextOffset(s.length, &pos, s.cursor, true)
	s.cursor = max(0, min(s.sequenceLength-s.available(s.length), pos))
	s.relayout = true
}

// nextOffset walks the sequence for the first item boundary past threshold.
// Positions are measured from the start of the top Stripe's sequence.
// Nested Stripes sequenced along the same dimension are walked into, so that
// paging steps through their items rather than over them.
func (s *Stripe) nextOffset(d Dim, pos *float64, threshold float64, top bool) bool {
	if d != s.length {
		return s.nextOffsetSelf(d, pos, threshold)
	}

	start := *pos
	if !top {
		if end := start + s.offset(d); end <= threshold {
			*pos = end
			return false
		}
		*pos += s.layout.Padding.Start(d)
	}

	for _, f := range s.seq() {
		if f.hidden {
			continue
		}
		if f.nextOffset(d, pos, threshold) {
			return true
		}
	}

	if top {
		return false
	}
	*pos = start
	return s.nextOffsetSelf(d, pos, threshold)
}

// prevOffset walks the sequence for the start of the item that reaches
// threshold. See nextOffset.
func (s *Stripe) prevOffset(d Dim, pos *float64, threshold float64, top bool) bool {
	if d != s.length {
		return s.prevOffsetSelf(d, pos, threshold)
	}

	start := *pos
	if !top {
		if end := start + s.offset(d); end < threshold {
			*pos = end
			return false
		}
		*pos += s.layout.Padding.Start(d)
	}

	for _, f := range s.seq() {
		if f.hidden {
			continue
		}
		if f.prevOffset(d, pos, threshold) {
			return true
		}
	}

	if top {
		return false
	}
	*pos = start
	return true
}
