package style

import (
	"slices"

	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
)

// Sheet is a set of named styles.
type Sheet struct {
	styles map[string]Style
}

// NewSheet creates a sheet holding styles. Later styles replace earlier
// ones with the same name.
func NewSheet(styles ...Style) *Sheet {
	s := &Sheet{styles: make(map[string]Style, len(styles))}
	for _, st := range styles {
		s.Add(st)
	}
	return s
}

// Add stores st under its name.
func (s *Sheet) Add(st Style) {
	s.styles[st.Name] = st
}

// Get returns the style stored under name, without its base applied.
func (s *Sheet) Get(name string) (Style, bool) {
	st, ok := s.styles[name]
	return st, ok
}

// Len returns the number of styles.
func (s *Sheet) Len() int {
	return len(s.styles)
}

// Names returns the style names in sorted order.
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Merge adds every style of other, replacing styles with the same name.
func (s *Sheet) Merge(other *Sheet) {
	for _, st := range other.styles {
		s.Add(st)
	}
}

// Cascade returns the style name merged over its base chain: attributes it
// leaves unset come from the nearest base that sets them.
func (s *Sheet) Cascade(name string) (Style, error) {
	st, ok := s.styles[name]
	if !ok {
		return Style{}, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q", name)
	}

	chain := []Style{st}
	seen := map[string]bool{name: true}
	for base := st.Base; base != ""; {
		if seen[base] {
			return Style{}, errors.New(errors.ErrCodeInvalidStyle, "style %q: base cycle through %q", name, base)
		}
		seen[base] = true

		b, ok := s.styles[base]
		if !ok {
			return Style{}, errors.New(errors.ErrCodeInvalidStyle, "style %q: unknown base %q", name, base)
		}
		chain = append(chain, b)
		base = b.Base
	}

	out := chain[len(chain)-1]
	for i := len(chain) - 2; i >= 0; i-- {
		out = Merge(out, chain[i])
	}
	return out, nil
}

// Snapshot cascades name and converts it into layout snapshots.
func (s *Sheet) Snapshot(name string) (layout.LayoutStyle, layout.InkStyle, error) {
	st, err := s.Cascade(name)
	if err != nil {
		return layout.LayoutStyle{}, layout.InkStyle{}, err
	}
	ls, ink := st.Snapshot()
	return ls, ink, nil
}

// Validate cascades every style, reporting the first broken chain.
func (s *Sheet) Validate() error {
	for _, name := range s.Names() {
		if _, err := s.Cascade(name); err != nil {
			return err
		}
	}
	return nil
}
