package rangesum

import "iter"

const (
	// fixedBase is the sizing base for inline table storage.
	fixedBase = 16
	// FixedCapacity is the maximum element count a Fixed table can hold.
	FixedCapacity = 2 * fixedBase
)

// Fixed is the allocation-free storage variant.
//
// Sequence and prefix table live in inline arrays bounded by FixedCapacity,
// so a Fixed is a plain value: it can sit on the stack, be embedded in
// larger value types and be copied freely. Copies are independent and
// answer identical queries.
type Fixed[T Numeric] struct {
	// n is the logical element count; valid elements are store[:n].
	n uint8
	// store is the fixed backing storage for source elements.
	store [FixedCapacity]T
	// prefixStore is the fixed backing storage for running totals.
	prefixStore [FixedCapacity]T
}

// NewFixed builds a fixed table over a copy of the given values.
// Inputs longer than FixedCapacity are rejected with ErrCapacityExceeded.
func NewFixed[T Numeric](values []T) (Fixed[T], error) {
	if len(values) > FixedCapacity {
		tracer().Errorf("fixed table: %d values exceed inline capacity %d", len(values), FixedCapacity)
		return Fixed[T]{}, ErrCapacityExceeded
	}
	var f Fixed[T]
	f.n = uint8(len(values))
	copy(f.store[:], values)
	fillPrefix(f.prefixStore[:f.n], f.store[:f.n])
	return f, nil
}

// Len returns the number of elements in the sequence.
func (f Fixed[T]) Len() int {
	return int(f.n)
}

// IsVoid reports whether the table holds no elements.
func (f Fixed[T]) IsVoid() bool {
	return f.n == 0
}

// Query returns the sum of elements in the inclusive range [start, end].
func (f Fixed[T]) Query(start, end int) T {
	return queryPrefix(f.prefixStore[:f.n], start, end)
}

// QueryInterior is Query for ranges with start >= 1; see Table.
func (f Fixed[T]) QueryInterior(start, end int) T {
	return queryInterior(f.prefixStore[:f.n], start, end)
}

// Sum returns the sum over the complete sequence, zero when empty.
func (f Fixed[T]) Sum() T {
	return totalOf(f.prefixStore[:f.n])
}

// At returns the source element at position i.
func (f Fixed[T]) At(i int) T {
	return elementAt(f.store[:f.n], i)
}

// Prefix returns the running total of elements 0..i inclusive.
func (f Fixed[T]) Prefix(i int) T {
	return elementAt(f.prefixStore[:f.n], i)
}

// Values returns an iterator over positions and source elements in order.
func (f Fixed[T]) Values() iter.Seq2[int, T] {
	return rangeOver(f.store[:f.n])
}

// Prefixes returns an iterator over positions and running totals in order.
func (f Fixed[T]) Prefixes() iter.Seq2[int, T] {
	return rangeOver(f.prefixStore[:f.n])
}

// Decompose returns the table's two parts, source first, table second.
//
// Since a Fixed is a value, the returned slices are backed by the receiver
// copy, detached from the original.
func (f Fixed[T]) Decompose() (source []T, table []T) {
	return f.store[:f.n], f.prefixStore[:f.n]
}

var _ Table[int] = Fixed[int]{}
