package staticvec

import "fmt"

// Check validates the storage invariants of a vector: the live count is within
// capacity, and for slotted storage exactly the slots [0,Len()) are tagged
// live.
//
// Check is meant for tests and debugging.
func (v *Vector[T]) Check() error {
	if v == nil || v.store == nil {
		return fmt.Errorf("%w: vector not initialized", ErrInvalidState)
	}
	if v.store.capacity() != v.cfg.Capacity {
		return fmt.Errorf("%w: storage size %d != capacity %d",
			ErrInvalidState, v.store.capacity(), v.cfg.Capacity)
	}
	if v.n < 0 || v.n > v.store.capacity() {
		return fmt.Errorf("%w: length %d not in [0,%d]", ErrInvalidState, v.n, v.store.capacity())
	}
	switch s := v.store.(type) {
	case *flatStore[T]:
		return nil
	case *slotStore[T]:
		return s.check(v.n)
	default:
		panic("unknown storage type")
	}
}

func (s *slotStore[T]) check(n int) error {
	for i := range s.slots {
		if live := i < n; s.slots[i].live != live {
			return fmt.Errorf("%w: slot %d live=%v, expected live=%v",
				ErrInvalidState, i, s.slots[i].live, live)
		}
	}
	return nil
}
