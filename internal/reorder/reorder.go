// Package reorder moves one item of an ordered collection to a new position.
package reorder

// Move returns a copy of items with the element at source removed and
// reinserted at target. An index outside the slice counts as absent, and
// absent or equal indexes return the items unchanged.
func Move[T any](items []T, source, target int) []T {
	if source == target || !inRange(len(items), source) || !inRange(len(items), target) {
		return items
	}
	out := make([]T, 0, len(items))
	out = append(out, items[:source]...)
	out = append(out, items[source+1:]...)

	moved := items[source]
	out = append(out, moved) // grow by one, then shift the tail right
	copy(out[target+1:], out[target:])
	out[target] = moved
	return out
}

func inRange(n, i int) bool {
	return i >= 0 && i < n
}
