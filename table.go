package rangesum

/*
BSD 3-Clause License

Copyright (c) 2026, Nicolas Hofer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Numeric constrains table elements to types with native addition,
// subtraction and an additive zero value.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Table is the query contract shared by all storage variants.
//
// A table is immutable once constructed. Query positions are 0-based and
// inclusive on both ends; callers must validate positions against Len
// before querying, as out-of-contract positions panic (see package doc).
type Table[T Numeric] interface {
	// Len returns the number of elements in the underlying sequence.
	Len() int
	// Query returns the sum of elements in the inclusive range [start, end].
	// Requires 0 <= start <= end < Len().
	Query(start, end int) T
	// QueryInterior is Query restricted to start >= 1. It unconditionally
	// takes the subtraction path, for callers that can guarantee the range
	// never touches position 0.
	QueryInterior(start, end int) T
	// Sum returns the sum over the complete sequence, zero when empty.
	Sum() T
	// At returns the source element at position i.
	At(i int) T
	// Prefix returns the running total of elements 0..i inclusive.
	Prefix(i int) T
}

// fillPrefix writes the running totals of src into dst in one forward pass.
// Both slices must have equal length.
func fillPrefix[T Numeric](dst, src []T) {
	for i, v := range src {
		if i == 0 {
			dst[i] = v
		} else {
			dst[i] = dst[i-1] + v
		}
	}
}

// queryPrefix answers an inclusive range-sum [start, end] from a prefix table.
func queryPrefix[T Numeric](prefix []T, start, end int) T {
	assert(start >= 0, "query start position must not be negative")
	assert(end >= start, "query end position must not precede start")
	assert(end < len(prefix), "query end position out of bounds")
	if start == 0 {
		return prefix[end]
	}
	return prefix[end] - prefix[start-1]
}

// queryInterior is queryPrefix for ranges known not to touch position 0.
func queryInterior[T Numeric](prefix []T, start, end int) T {
	assert(start >= 1, "interior query start position must be positive")
	assert(end >= start, "query end position must not precede start")
	assert(end < len(prefix), "query end position out of bounds")
	return prefix[end] - prefix[start-1]
}

// totalOf reads the full-sequence sum off a prefix table.
func totalOf[T Numeric](prefix []T) T {
	if len(prefix) == 0 {
		var zero T
		return zero
	}
	return prefix[len(prefix)-1]
}

// elementAt asserts bounds and returns data[i].
func elementAt[T Numeric](data []T, i int) T {
	assert(i >= 0 && i < len(data), "element position out of bounds")
	return data[i]
}

// rangeOver returns an iterator over positions and values of data.
func rangeOver[T Numeric](data []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether two tables hold the same logical sequence of values,
// regardless of their storage variant.
func Equal[T Numeric](a, b Table[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}
