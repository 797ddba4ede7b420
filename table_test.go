package rangesum

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func expectPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic for %s, got none", what)
		}
	}()
	f()
}

func TestQueryContractViolations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ix := Of(1, 3, 4, 8, 6, 1, 4, 2)
	expectPanic(t, "reversed range", func() {
		ix.Query(6, 3)
	})
	expectPanic(t, "negative start", func() {
		ix.Query(-1, 3)
	})
	expectPanic(t, "end out of bounds", func() {
		ix.Query(0, ix.Len())
	})
	expectPanic(t, "element position out of bounds", func() {
		ix.At(ix.Len())
	})
	expectPanic(t, "prefix position out of bounds", func() {
		ix.Prefix(-1)
	})
	expectPanic(t, "query on empty table", func() {
		Index[int]{}.Query(0, 0)
	})
}

func TestQueryInterior(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ix := Of(1, 3, 4, 8, 6, 1, 4, 2)
	queries := []struct {
		start, end int
		want       int
	}{
		{3, 6, 19},
		{1, 6, 26},
		{2, 7, 25},
		{5, 6, 5},
		{6, 6, 4},
	}
	for _, q := range queries {
		if got := ix.QueryInterior(q.start, q.end); got != q.want {
			t.Errorf("interior query(%d,%d) = %d, should be %d", q.start, q.end, got, q.want)
		}
		if got := ix.Query(q.start, q.end); got != q.want {
			t.Errorf("query(%d,%d) disagrees with interior variant", q.start, q.end)
		}
	}
	expectPanic(t, "interior query touching position 0", func() {
		ix.QueryInterior(0, 3)
	})
}
