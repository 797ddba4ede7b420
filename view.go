package rangesum

import "iter"

// View is the borrowed-view storage variant.
//
// A view keeps the caller's slice as its source without copying and owns
// only the freshly built prefix table. Queries never re-read the source,
// only the table, so mutating the underlying buffer after construction
// cannot corrupt query results; it does make diagnostic accessors (At,
// Values, Decompose) reflect the new contents, which then disagree with
// the sums computed at construction time. The view must not be read after
// the underlying buffer is freed for reuse.
type View[T Numeric] struct {
	data   []T // borrowed, caller-owned
	prefix []T // owned
}

// FromSlice builds a view over the caller's slice, zero-copy.
func FromSlice[T Numeric](values []T) View[T] {
	prefix := make([]T, len(values))
	fillPrefix(prefix, values)
	return View[T]{data: values, prefix: prefix}
}

// Len returns the number of elements in the sequence.
func (v View[T]) Len() int {
	return len(v.data)
}

// IsVoid reports whether the view spans no elements.
func (v View[T]) IsVoid() bool {
	return len(v.data) == 0
}

// Query returns the sum of elements in the inclusive range [start, end].
func (v View[T]) Query(start, end int) T {
	return queryPrefix(v.prefix, start, end)
}

// QueryInterior is Query for ranges with start >= 1; see Table.
func (v View[T]) QueryInterior(start, end int) T {
	return queryInterior(v.prefix, start, end)
}

// Sum returns the sum over the complete sequence, zero when empty.
func (v View[T]) Sum() T {
	return totalOf(v.prefix)
}

// At returns the source element at position i, read through the borrow.
func (v View[T]) At(i int) T {
	return elementAt(v.data, i)
}

// Prefix returns the running total of elements 0..i inclusive.
func (v View[T]) Prefix(i int) T {
	return elementAt(v.prefix, i)
}

// Values returns an iterator over positions and borrowed elements in order.
func (v View[T]) Values() iter.Seq2[int, T] {
	return rangeOver(v.data)
}

// Prefixes returns an iterator over positions and running totals in order.
func (v View[T]) Prefixes() iter.Seq2[int, T] {
	return rangeOver(v.prefix)
}

// Decompose returns the view's two parts: the borrowed source slice and
// the owned table. The borrow ends with the view; the table is handed over
// without copying.
func (v View[T]) Decompose() (source []T, table []T) {
	return v.data, v.prefix
}

var _ Table[int] = View[int]{}
