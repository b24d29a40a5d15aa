package style

// Attr is a style value with a flag recording whether it was set explicitly.
type Attr[T any] struct {
	Value T
	Set   bool
}

// Of returns an explicitly set attribute.
func Of[T any](v T) Attr[T] {
	return Attr[T]{Value: v, Set: true}
}

// Or returns the value when set, def otherwise.
func (a Attr[T]) Or(def T) T {
	if a.Set {
		return a.Value
	}
	return def
}

// Override replaces a with from when from is set.
func (a *Attr[T]) Override(from Attr[T]) {
	if from.Set {
		*a = from
	}
}
