/*
Package window derives sliding-window measurements from range-sum tables.

Every measurement is answered from the table's O(1) range queries, so a
full sweep over all windows of a sequence of length n costs O(n) rather
than O(n·w).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Nicolas Hofer

Please refer to the LICENSE file for details.
*/
package window

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rangesum'
func tracer() tracing.Trace {
	return tracing.Select("rangesum")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
