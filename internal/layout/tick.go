package layout

// NextFrame runs one layout tick over the tree rooted at root.
// Stripes are relaid out top-down, so that a child's relayout always sees
// the sizes its parent has just given it. Clean Stripes are skipped.
func NextFrame(root *Frame) {
	if root == nil {
		return
	}
	s := root.container
	if s == nil {
		return
	}
	s.Relayout()
	for _, f := range s.contents {
		NextFrame(f)
	}
}

// NextFrame runs one layout tick over the tree rooted at s.
func (s *Stripe) NextFrame() {
	NextFrame(&s.Frame)
}

// Walk calls fn for f and every frame below it, depth first, in content
// order. Returning false from fn skips the frame's children.
func Walk(f *Frame, fn func(f *Frame, depth int) bool) {
	walk(f, 0, fn)
}

func walk(f *Frame, depth int, fn func(*Frame, int) bool) {
	if !fn(f, depth) {
		return
	}
	if s := f.container; s != nil {
		for _, c := range s.contents {
			walk(c, depth+1, fn)
		}
	}
}
