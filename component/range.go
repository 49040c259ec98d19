package component

import "cmp"

// Range is an inclusive [Min, Max] bound with a Default inside it
type Range[T cmp.Ordered] struct {
	Min     T
	Max     T
	Default T
}

// NewRange builds a normalized range
func NewRange[T cmp.Ordered](lo, hi, def T) Range[T] {
	r := Range[T]{Min: lo, Max: hi, Default: def}
	r.Normalize()
	return r
}

// Clamp bounds v to the range
func (r Range[T]) Clamp(v T) T {
	return min(max(v, r.Min), r.Max)
}

// Contains reports whether v lies inside the range
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Normalize swaps an inverted pair and pulls Default inside
// Returns true when anything had to be corrected
func (r *Range[T]) Normalize() bool {
	corrected := false
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
		corrected = true
	}
	if d := r.Clamp(r.Default); d != r.Default {
		r.Default = d
		corrected = true
	}
	return corrected
}
