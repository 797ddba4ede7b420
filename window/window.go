package window

import (
	"iter"

	"github.com/nhofer/rangesum"
)

// Sums returns an iterator over all sliding-window sums of the given width.
// It yields the start position of each window together with the window's sum,
// in order, for all tab.Len()-width+1 windows.
//
// Requires 1 <= width <= tab.Len().
func Sums[T rangesum.Numeric](tab rangesum.Table[T], width int) iter.Seq2[int, T] {
	assert(width >= 1, "window width must be positive")
	assert(width <= tab.Len(), "window width exceeds sequence length")
	return func(yield func(int, T) bool) {
		last := tab.Len() - width
		for start := 0; start <= last; start++ {
			if !yield(start, tab.Query(start, start+width-1)) {
				return
			}
		}
	}
}

// MaxSum returns the start position and sum of the window of the given width
// with the largest sum. Ties resolve to the leftmost window.
func MaxSum[T rangesum.Numeric](tab rangesum.Table[T], width int) (start int, sum T) {
	first := true
	for pos, s := range Sums(tab, width) {
		if first || s > sum {
			start, sum = pos, s
			first = false
		}
	}
	return start, sum
}

// MinSum returns the start position and sum of the window of the given width
// with the smallest sum. Ties resolve to the leftmost window.
func MinSum[T rangesum.Numeric](tab rangesum.Table[T], width int) (start int, sum T) {
	first := true
	for pos, s := range Sums(tab, width) {
		if first || s < sum {
			start, sum = pos, s
			first = false
		}
	}
	return start, sum
}

// Mean returns the arithmetic mean of the inclusive range [start, end],
// answered by a single range query.
func Mean[T rangesum.Numeric](tab rangesum.Table[T], start, end int) float64 {
	sum := tab.Query(start, end)
	count := end - start + 1
	tracer().Debugf("window mean over [%d,%d]: %v / %d", start, end, sum, count)
	return float64(sum) / float64(count)
}
