package rangesum

import "iter"

// Index is the owned, heap-resident storage variant.
//
// An index created by
//
//	Index[int]{}
//
// is a valid object and behaves like the empty sequence. Construction
// copies the input, so later mutation of the caller's slice cannot reach
// the index.
//
// Performance characteristics:
//
//	Operation     |   Index         |  naive slice
//	--------------+-----------------+-------------
//	Construct     |   O(n)          |   O(1)
//	Range sum     |   O(1)          |   O(n)
//	Element       |   O(1)          |   O(1)
//
// For workloads with many range queries over stable data, the one-time
// construction pass amortizes immediately.
type Index[T Numeric] struct {
	data   []T
	prefix []T
}

// New builds an index over a copy of the given values.
func New[T Numeric](values []T) Index[T] {
	data := make([]T, len(values))
	copy(data, values)
	prefix := make([]T, len(data))
	fillPrefix(prefix, data)
	if len(data) == 0 {
		tracer().Debugf("sum index: empty sequence")
	}
	return Index[T]{data: data, prefix: prefix}
}

// Of builds an index over the given values.
func Of[T Numeric](values ...T) Index[T] {
	return New(values)
}

// Len returns the number of elements in the sequence.
func (ix Index[T]) Len() int {
	return len(ix.data)
}

// IsVoid reports whether the index holds no elements.
func (ix Index[T]) IsVoid() bool {
	return len(ix.data) == 0
}

// Query returns the sum of elements in the inclusive range [start, end].
func (ix Index[T]) Query(start, end int) T {
	return queryPrefix(ix.prefix, start, end)
}

// QueryInterior is Query for ranges with start >= 1; see Table.
func (ix Index[T]) QueryInterior(start, end int) T {
	return queryInterior(ix.prefix, start, end)
}

// Sum returns the sum over the complete sequence, zero when empty.
func (ix Index[T]) Sum() T {
	return totalOf(ix.prefix)
}

// At returns the source element at position i.
func (ix Index[T]) At(i int) T {
	return elementAt(ix.data, i)
}

// Prefix returns the running total of elements 0..i inclusive.
func (ix Index[T]) Prefix(i int) T {
	return elementAt(ix.prefix, i)
}

// Values returns an iterator over positions and source elements in order.
func (ix Index[T]) Values() iter.Seq2[int, T] {
	return rangeOver(ix.data)
}

// Prefixes returns an iterator over positions and running totals in order.
func (ix Index[T]) Prefixes() iter.Seq2[int, T] {
	return rangeOver(ix.prefix)
}

// Decompose returns the index's two parts, source first, table second.
//
// The returned slices are the index's backing storage, handed over without
// copying. The index must not be used afterwards.
func (ix Index[T]) Decompose() (source []T, table []T) {
	return ix.data, ix.prefix
}

var _ Table[int] = Index[int]{}
