package rangesum

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFixedQuery(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := NewFixed([]int{1, 3, 4, 8, 6, 1, 4, 2})
	if err != nil {
		t.Fatalf("NewFixed failed: %v", err)
	}
	queries := []struct {
		start, end int
		want       int
	}{
		{3, 6, 19},
		{0, 7, 29},
		{0, 6, 27},
		{1, 6, 26},
		{2, 7, 25},
		{5, 6, 5},
		{6, 6, 4},
	}
	for _, q := range queries {
		if got := f.Query(q.start, q.end); got != q.want {
			t.Errorf("query(%d,%d) = %d, should be %d", q.start, q.end, got, q.want)
		}
	}
	want := []int{1, 4, 8, 16, 22, 23, 27, 29}
	for i, w := range want {
		if f.Prefix(i) != w {
			t.Errorf("prefix[%d] = %d, should be %d", i, f.Prefix(i), w)
		}
	}
}

func TestFixedRejectsOversizedInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	values := make([]int, FixedCapacity+1)
	_, err := NewFixed(values)
	if err == nil {
		t.Fatalf("expected capacity error for %d values", len(values))
	}
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("unexpected error: %v", err)
	}
	// exactly at capacity is legal
	f, err := NewFixed(values[:FixedCapacity])
	if err != nil {
		t.Fatalf("NewFixed at capacity failed: %v", err)
	}
	if f.Len() != FixedCapacity {
		t.Errorf("length = %d, should be %d", f.Len(), FixedCapacity)
	}
}

func TestFixedValueSemantics(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := NewFixed([]int{1, 3, 4, 8})
	if err != nil {
		t.Fatalf("NewFixed failed: %v", err)
	}
	g := f // plain value copy
	if g.Query(0, 3) != f.Query(0, 3) {
		t.Errorf("copy answers different query results")
	}
	if !Equal[int](f, g) {
		t.Errorf("copy should be logically equal to original")
	}
}

func TestFixedEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := NewFixed([]int{})
	if err != nil {
		t.Fatalf("NewFixed failed: %v", err)
	}
	if !f.IsVoid() || f.Len() != 0 || f.Sum() != 0 {
		t.Errorf("empty fixed table should be void with zero sum")
	}
	var zero Fixed[int]
	if !zero.IsVoid() || zero.Sum() != 0 {
		t.Errorf("zero-value fixed table should be void with zero sum")
	}
}

func TestFixedDecompose(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := NewFixed([]int{1, 3, 4, 8})
	if err != nil {
		t.Fatalf("NewFixed failed: %v", err)
	}
	source, table := f.Decompose()
	if len(source) != 4 || len(table) != 4 {
		t.Fatalf("decompose lengths = %d/%d, should be 4/4", len(source), len(table))
	}
	if source[3] != 8 || table[3] != 16 {
		t.Errorf("decompose returned wrong parts: source[3]=%d table[3]=%d", source[3], table[3])
	}
}
