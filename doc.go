/*
Package rangesum answers range-sum queries over a fixed numeric sequence
in constant time.

# Prefix sums

Given an ordered sequence S of N numbers, the classic way to answer
"what is the sum of S[start..end]?" is to walk the range and add, which
costs O(N) per query. A prefix-sum table trades a single O(N)
preprocessing pass for O(1) queries: position i of the table holds the
running total of S[0..i], so any inclusive range collapses to

	sum(S[start..end]) = table[end] - table[start-1]

with the subtraction skipped when start is zero. That is the whole
algorithmic content of this package; everything else is about where the
sequence and its table live.

# Storage variants

Three interchangeable backings implement the same query contract:

	Variant   |  Source storage      |  Table storage  |  Allocation
	----------+----------------------+-----------------+------------
	Index     |  owned slice (copy)  |  owned slice    |  heap
	Fixed     |  inline array        |  inline array   |  none
	View      |  borrowed slice      |  owned slice    |  heap (table)

Index copies its input and is the general-purpose choice. Fixed keeps
both sequence and table in inline arrays bounded by FixedCapacity,
making it a pure value that can be embedded in larger structs and
copied freely without touching the heap. View borrows the caller's
slice without copying and allocates only the table; it is the zero-copy
choice for data the caller already owns.

All variants are immutable after construction and safe for concurrent
readers without coordination. The sequence itself is never mutated and
never re-read by queries, which only consult the table.

# Contract

Query indices are 0-based and inclusive on both ends. Callers must
ensure 0 <= start <= end < N; violating this is a programming error and
trips an assertion panic rather than returning a sentinel value.
Summation is unguarded: overflow follows the native semantics of the
element type, so pick a type wide enough for the expected magnitudes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Nicolas Hofer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rangesum

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
