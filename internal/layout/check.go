package layout

import (
	"errors"
	"fmt"
	"math"
)

// checkTolerance bounds the drift allowed between tracked and recomputed values.
const checkTolerance = 1e-6

// Check verifies the bookkeeping of every Stripe below root: each child's
// index matches its position, cached sequences match the flow children of
// the contents, and the incrementally tracked length and depth agree with a
// full recompute. It changes neither geometry nor tracking.
func Check(root *Frame) error {
	var errs []error
	Walk(root, func(f *Frame, _ int) bool {
		if s := f.container; s != nil {
			errs = append(errs, s.check()...)
		}
		return true
	})
	return errors.Join(errs...)
}

func (s *Stripe) check() []error {
	var errs []error
	label := s.name
	if label == "" {
		label = s.kind.String()
	}

	flow := 0
	for i, f := range s.contents {
		if f.index != i {
			errs = append(errs, fmt.Errorf("%s: child %d has index %d", label, i, f.index))
		}
		if f.parent != s {
			errs = append(errs, fmt.Errorf("%s: child %d is bound elsewhere", label, i))
		}
		if f.Flow() {
			flow++
		}
	}

	// Compare against the cache as it stands; seq() would rebuild it.
	if !s.stale {
		if len(s.sequence) != flow {
			errs = append(errs, fmt.Errorf("%s: sequence has %d frames, contents %d flow frames", label, len(s.sequence), flow))
		} else {
			j := 0
			for _, f := range s.contents {
				if !f.Flow() {
					continue
				}
				if s.sequence[j] != f {
					errs = append(errs, fmt.Errorf("%s: sequence diverges at %d", label, j))
					break
				}
				j++
			}
		}
	}

	length, shown := s.measureLength()
	if shown != s.shown {
		errs = append(errs, fmt.Errorf("%s: tracks %d visible flow frames, counted %d", label, s.shown, shown))
	}
	if math.Abs(length-s.sequenceLength) > checkTolerance {
		errs = append(errs, fmt.Errorf("%s: tracked length %g, recomputed %g", label, s.sequenceLength, length))
	}
	if depth := s.measureDepth(); math.Abs(depth-s.maxDepth) > checkTolerance {
		errs = append(errs, fmt.Errorf("%s: tracked depth %g, recomputed %g", label, s.maxDepth, depth))
	}
	return errs
}
