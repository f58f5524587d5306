package staticvec

import "iter"

// All returns an iterator over index/reference pairs of the live elements,
// first to last. Operations which change Len() invalidate the iteration.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.store.ref(i)) {
				return
			}
		}
	}
}

// Backward is like All, but iterates last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.store.ref(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over copies of the live elements, first to last.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range v.All() {
			if !yield(*p) {
				return
			}
		}
	}
}

// BackwardValues returns an iterator over copies of the live elements, last
// to first.
func (v *Vector[T]) BackwardValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, p := range v.Backward() {
			if !yield(*p) {
				return
			}
		}
	}
}

// ForEach walks the live elements in order.
//
// Iteration stops early if callback returns false.
func (v *Vector[T]) ForEach(fn func(i int, p *T) bool) {
	if v == nil || fn == nil {
		return
	}
	for i, p := range v.All() {
		if !fn(i, p) {
			return
		}
	}
}

// --- Cursors ---------------------------------------------------------------

// Cursor is an explicit iterator over the live range of a vector. A cursor
// starts before its first position; call Next to advance.
//
//	for c := v.Cursor(); c.Next(); {
//	    fmt.Println(c.Index(), c.Value())
//	}
type Cursor[T any] struct {
	v    *Vector[T]
	pos  int
	step int
}

// Cursor returns a cursor moving from the first to the last element.
func (v *Vector[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{v: v, pos: -1, step: 1}
}

// ReverseCursor returns a cursor moving from the last to the first element.
func (v *Vector[T]) ReverseCursor() *Cursor[T] {
	return &Cursor[T]{v: v, pos: v.Len(), step: -1}
}

// Next advances the cursor and reports whether it rests on a live element.
// Once Next has returned false, the cursor stays parked past the end.
func (c *Cursor[T]) Next() bool {
	next := c.pos + c.step
	if next < 0 || next >= c.v.Len() {
		if c.step > 0 {
			c.pos = c.v.Len()
		} else {
			c.pos = -1
		}
		return false
	}
	c.pos = next
	return true
}

func (c *Cursor[T]) valid() bool {
	return c.pos >= 0 && c.pos < c.v.Len()
}

// Index returns the cursor's position.
func (c *Cursor[T]) Index() int {
	return c.pos
}

// Ref returns a reference to the element under the cursor, which has to rest
// on a live element.
func (c *Cursor[T]) Ref() *T {
	assert(c.valid(), "cursor is not on a live element")
	return c.v.store.ref(c.pos)
}

// Value returns a copy of the element under the cursor.
func (c *Cursor[T]) Value() T {
	return *c.Ref()
}
