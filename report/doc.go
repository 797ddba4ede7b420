/*
Package report renders range-sum tables for console inspection.

The output is a debugging aid, not a persistence format: positions,
source values and running totals are printed as aligned rows, folded
into stanzas when the sequence is wider than the available line width.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2026, Nicolas Hofer

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rangesum'
func tracer() tracing.Trace {
	return tracing.Select("rangesum")
}
