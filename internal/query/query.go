// Package query is the derived-view engine: pure projection of a store
// collection through transient filter and sort configuration. Projections
// never mutate their input and are fully determined by it, so callers may
// recompute them on demand or cache them freely.
package query

// Direction orders a sort ascending or descending.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// apply negates a comparison for descending sorts.
func (d Direction) apply(cmp int) int {
	if d == Desc {
		return -cmp
	}
	return cmp
}

// matchAny reports whether value is one of the wanted values. An empty
// wanted set matches everything (the dimension is inactive).
func matchAny[T comparable](wanted []T, value T) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		if w == value {
			return true
		}
	}
	return false
}
