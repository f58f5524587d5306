package handle

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/staticvec"
)

type resource struct {
	name   string
	closed bool
}

func (r *resource) Close() error {
	if r.closed {
		return errors.New("closed twice")
	}
	r.closed = true
	return nil
}

func journalDeleter(journal *[]string) Deleter[*resource] {
	return DeleterFunc[*resource](func(r *resource) {
		*journal = append(*journal, r.name)
	})
}

func TestHandleDeletesOnDestroy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "staticvec")
	defer teardown()
	//
	r := &resource{name: "a"}
	h := New[*resource](r, CloseDeleter[*resource]{})
	if !h.Valid() {
		t.Fatalf("expected handle to own a resource")
	}
	if got, ok := h.Get(); !ok || got != r {
		t.Fatalf("expected Get to return the owned resource")
	}
	h.Destroy()
	if !r.closed {
		t.Fatalf("expected resource to be closed")
	}
	if h.Valid() {
		t.Fatalf("expected handle to be empty after Destroy")
	}
	h.Destroy() // must not close twice
}

func TestHandleRelease(t *testing.T) {
	var journal []string
	h := New(&resource{name: "a"}, journalDeleter(&journal))
	r, ok := h.Release()
	if !ok || r.name != "a" {
		t.Fatalf("expected Release to return the resource")
	}
	h.Destroy()
	if len(journal) != 0 {
		t.Fatalf("released resource must not be deleted, journal=%v", journal)
	}
	if _, ok := h.Release(); ok {
		t.Fatalf("expected empty handle to release nothing")
	}
}

func TestHandleReset(t *testing.T) {
	var journal []string
	h := Empty(journalDeleter(&journal))
	if h.Valid() {
		t.Fatalf("expected empty handle")
	}
	h.Reset(&resource{name: "a"})
	h.Reset(&resource{name: "b"})
	h.Drop()
	if diff := cmp.Diff([]string{"a", "b"}, journal); diff != "" {
		t.Fatalf("unexpected deletions (-want +got):\n%s", diff)
	}
}

func TestHandleMove(t *testing.T) {
	var journal []string
	h := New(&resource{name: "a"}, journalDeleter(&journal))
	moved := h.Move()
	if h.Valid() || !moved.Valid() {
		t.Fatalf("expected ownership to pass to the moved-to handle")
	}
	h.Destroy()
	if len(journal) != 0 {
		t.Fatalf("moved-from handle must not delete, journal=%v", journal)
	}
	target := New(&resource{name: "b"}, journalDeleter(&journal))
	target.MoveFrom(&moved)
	if diff := cmp.Diff([]string{"b"}, journal); diff != "" {
		t.Fatalf("expected previous resource to be deleted (-want +got):\n%s", diff)
	}
	target.MoveFrom(&target)
	if !target.Valid() {
		t.Fatalf("self-move must be a no-op")
	}
	target.Destroy()
	if diff := cmp.Diff([]string{"b", "a"}, journal); diff != "" {
		t.Fatalf("unexpected deletions (-want +got):\n%s", diff)
	}
}

func TestHandleSwap(t *testing.T) {
	a := New(&resource{name: "a"}, nil)
	b := Empty[*resource](nil)
	a.Swap(&b)
	if a.Valid() || !b.Valid() {
		t.Fatalf("expected resources to be swapped")
	}
	r, _ := b.Get()
	if r.name != "a" {
		t.Fatalf("unexpected resource after swap: %s", r.name)
	}
	b.Destroy() // nil deleter leaves resource to the GC
}

func TestVectorOfHandles(t *testing.T) {
	var journal []string
	v := staticvec.MustNew[Handle[*resource]](3)
	if v.Layout() != staticvec.Slotted {
		t.Fatalf("expected handles to use slotted storage")
	}
	for _, name := range []string{"a", "b", "c"} {
		v.Push(New(&resource{name: name}, journalDeleter(&journal)))
	}
	v.Pop()
	kept := v.PopValue()
	v.Clear()
	if diff := cmp.Diff([]string{"c", "a"}, journal); diff != "" {
		t.Fatalf("unexpected deletions (-want +got):\n%s", diff)
	}
	kept.Destroy()
	if diff := cmp.Diff([]string{"c", "a", "b"}, journal); diff != "" {
		t.Fatalf("unexpected deletions (-want +got):\n%s", diff)
	}
}

func expectPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected %s to panic", what)
		}
		if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "handle: ") {
			t.Fatalf("unexpected panic value for %s: %v", what, r)
		}
	}()
	fn()
}

func TestVectorOfHandlesRejectsCopies(t *testing.T) {
	var journal []string
	v := staticvec.MustNew[Handle[*resource]](3)
	v.Push(New(&resource{name: "a"}, journalDeleter(&journal)))
	expectPanic(t, "Clone", func() { v.Clone() })
	h := New(&resource{name: "b"}, journalDeleter(&journal))
	expectPanic(t, "ResizeWith", func() { v.ResizeWith(3, h) })
	target := staticvec.MustNew[Handle[*resource]](3)
	expectPanic(t, "CopyFrom", func() { target.CopyFrom(v) })
	if v.Len() != 1 || target.Len() != 0 {
		t.Fatalf("expected no copies, len=%d, target len=%d", v.Len(), target.Len())
	}
	if err := v.Check(); err != nil {
		t.Fatalf("vector broken after rejected copy: %v", err)
	}
	v.Clear()
	h.Destroy()
	target.Destroy()
	if diff := cmp.Diff([]string{"a", "b"}, journal); diff != "" {
		t.Fatalf("expected every resource to be deleted once (-want +got):\n%s", diff)
	}
}

func TestVectorOfHandlesMoves(t *testing.T) {
	var journal []string
	v := staticvec.MustNew[Handle[*resource]](2)
	v.Push(New(&resource{name: "a"}, journalDeleter(&journal)))
	moved := v.Take()
	v.Destroy()
	if len(journal) != 0 {
		t.Fatalf("moved-from vector must not delete, journal=%v", journal)
	}
	moved.Destroy()
	if diff := cmp.Diff([]string{"a"}, journal); diff != "" {
		t.Fatalf("unexpected deletions (-want +got):\n%s", diff)
	}
}
