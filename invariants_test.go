package staticvec

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckDetectsLengthDrift(t *testing.T) {
	v := MustNew[int](2)
	v.Push(1)
	v.n = 3 // corrupt logical length on purpose
	err := v.Check()
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for length drift, got %v", err)
	}
}

func TestCheckDetectsSlotTagDrift(t *testing.T) {
	v := MustNew[string](3)
	v.Push("a")
	v.Push("b")
	v.n = 1 // slot 1 is still tagged live
	err := v.Check()
	if err == nil {
		t.Fatalf("expected invariant error for slot tag drift")
	}
	if !strings.Contains(err.Error(), "slot 1") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckAcceptsValidVectors(t *testing.T) {
	v := MustNew[string](3)
	for _, s := range []string{"a", "b", "c"} {
		v.Push(s)
		if err := v.Check(); err != nil {
			t.Fatalf("unexpected invariant violation: %v", err)
		}
	}
	v.Resize(1)
	if err := v.Check(); err != nil {
		t.Fatalf("unexpected invariant violation: %v", err)
	}
}
