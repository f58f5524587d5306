package staticvec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func filledInts(t *testing.T, capacity int, values ...int) *Vector[int] {
	t.Helper()
	v := MustNew[int](capacity)
	for _, x := range values {
		v.Push(x)
	}
	return v
}

func TestIterationCoversLiveRange(t *testing.T) {
	v := filledInts(t, 6, 1, 2, 3, 4)
	v.Pop()
	var fwd, bwd, idx []int
	for i, p := range v.All() {
		idx = append(idx, i)
		fwd = append(fwd, *p)
	}
	for x := range v.BackwardValues() {
		bwd = append(bwd, x)
	}
	if diff := cmp.Diff([]int{1, 2, 3}, fwd); diff != "" {
		t.Fatalf("unexpected forward iteration (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, idx); diff != "" {
		t.Fatalf("unexpected indices (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 2, 1}, bwd); diff != "" {
		t.Fatalf("unexpected backward iteration (-want +got):\n%s", diff)
	}
}

func TestIterationWritesThroughReferences(t *testing.T) {
	v := filledInts(t, 3, 1, 2, 3)
	for _, p := range v.Backward() {
		*p *= 10
	}
	if diff := cmp.Diff([]int{10, 20, 30}, v.Slice()); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

func TestIterationStopsEarly(t *testing.T) {
	v := filledInts(t, 4, 1, 2, 3, 4)
	var seen []int
	for x := range v.Values() {
		if x == 3 {
			break
		}
		seen = append(seen, x)
	}
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Fatalf("unexpected values (-want +got):\n%s", diff)
	}
	seen = seen[:0]
	v.ForEach(func(i int, p *int) bool {
		seen = append(seen, *p)
		return i < 1
	})
	if diff := cmp.Diff([]int{1, 2}, seen); diff != "" {
		t.Fatalf("unexpected ForEach values (-want +got):\n%s", diff)
	}
}

func TestCursors(t *testing.T) {
	v := filledInts(t, 4, 5, 6, 7)
	var fwd []int
	for c := v.Cursor(); c.Next(); {
		fwd = append(fwd, c.Value())
	}
	var bwd []int
	c := v.ReverseCursor()
	for c.Next() {
		bwd = append(bwd, c.Index())
	}
	if diff := cmp.Diff([]int{5, 6, 7}, fwd); diff != "" {
		t.Fatalf("unexpected cursor values (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 1, 0}, bwd); diff != "" {
		t.Fatalf("unexpected reverse cursor indices (-want +got):\n%s", diff)
	}
	if c.Next() {
		t.Fatalf("exhausted cursor must stay exhausted")
	}
	empty := MustNew[int](2)
	if empty.Cursor().Next() || empty.ReverseCursor().Next() {
		t.Fatalf("cursor on empty vector must not advance")
	}
}

func TestEmptyIteration(t *testing.T) {
	v := MustNew[string](3)
	for range v.All() {
		t.Fatalf("iteration over empty vector yielded an element")
	}
	if len(v.Slice()) != 0 {
		t.Fatalf("expected empty slice")
	}
}
