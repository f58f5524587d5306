package staticvec

import (
	"fmt"
	"reflect"
)

// Vector is a sequence of at most Cap() elements of type T, held in a storage
// block of fixed size.
//
// The zero value is not usable; create vectors with New, NewWithConfig,
// MustNew or NewFilled. A Vector must not be copied by value after first use;
// use Clone or CopyFrom.
type Vector[T any] struct {
	cfg    Config[T]
	store  storage[T]
	copyFn func(T) T
	n      int // live elements are in slots [0,n)
}

// New creates an empty vector with room for capacity elements.
func New[T any](capacity int) (*Vector[T], error) {
	return NewWithConfig(Config[T]{Capacity: capacity})
}

// NewWithConfig creates an empty vector from a validated configuration.
func NewWithConfig[T any](cfg Config[T]) (*Vector[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	v := &Vector[T]{
		cfg:    cfg,
		store:  newStorage(cfg),
		copyFn: copierFor(cfg.Copy),
	}
	tracer().Debugf("staticvec: new vector of %s, capacity=%d, layout=%s",
		reflect.TypeFor[T](), cfg.Capacity, v.store.layout())
	return v, nil
}

// MustNew is like New, but panics if capacity is invalid.
func MustNew[T any](capacity int) *Vector[T] {
	v, err := New[T](capacity)
	if err != nil {
		panic(err.Error())
	}
	return v
}

// NewFilled creates a vector with room for capacity elements and fills it with
// count copies of value. count must not exceed capacity.
func NewFilled[T any](capacity, count int, value T) (*Vector[T], error) {
	v, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	if count < 0 || count > capacity {
		return nil, fmt.Errorf("%w: cannot fill %d elements into capacity %d",
			ErrCapacityExceeded, count, capacity)
	}
	v.ResizeWith(count, value)
	return v, nil
}

// Config returns the configuration the vector has been created with.
func (v *Vector[T]) Config() Config[T] {
	return v.cfg
}

// Layout reports the storage representation chosen for T.
func (v *Vector[T]) Layout() Layout {
	return v.store.layout()
}

// --- Capacity --------------------------------------------------------------

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Cap returns the fixed capacity.
func (v *Vector[T]) Cap() int {
	if v == nil || v.store == nil {
		return 0
	}
	return v.store.capacity()
}

// MaxSize returns the largest length the vector can ever reach, which for a
// static vector is its capacity.
func (v *Vector[T]) MaxSize() int {
	return v.Cap()
}

// Available returns the number of vacant slots.
func (v *Vector[T]) Available() int {
	return v.Cap() - v.Len()
}

// IsEmpty reports whether the vector has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// IsFull reports whether every slot holds a live element.
func (v *Vector[T]) IsFull() bool {
	return v.Len() == v.Cap()
}

// --- Element access --------------------------------------------------------

// At returns a reference to the element at index i. If i is not in
// [0,Len()), At returns ErrIndexOutOfRange and leaves the vector untouched.
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.Len() {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, v.Len())
	}
	return v.store.ref(i), nil
}

// Get returns a copy of the element at index i, or ErrIndexOutOfRange.
func (v *Vector[T]) Get(i int) (T, error) {
	p, err := v.At(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Index returns a reference to the element at index i, which has to be in
// [0,Len()). No error is reported for invalid indices.
func (v *Vector[T]) Index(i int) *T {
	assert(i >= 0 && i < v.n, "index out of range")
	return v.store.ref(i)
}

// Front returns a reference to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	assert(v.n > 0, "front of empty vector")
	return v.store.ref(0)
}

// Back returns a reference to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	assert(v.n > 0, "back of empty vector")
	return v.store.ref(v.n - 1)
}

// --- Modifiers -------------------------------------------------------------

// Push appends value. The vector must not be full.
func (v *Vector[T]) Push(value T) {
	assert(v.n < v.store.capacity(), "push onto full vector")
	v.store.construct(v.n, value)
	v.n++
}

// TryPush appends value, or returns ErrCapacityExceeded if the vector is full.
func (v *Vector[T]) TryPush(value T) error {
	if v.n >= v.store.capacity() {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, v.store.capacity())
	}
	v.Push(value)
	return nil
}

// Emplace constructs a new element in place: a zero T is brought to life in
// the next vacant slot and init is called on it there. The vector must not be
// full. init may be nil.
func (v *Vector[T]) Emplace(init func(*T)) *T {
	assert(v.n < v.store.capacity(), "emplace onto full vector")
	var zero T
	v.store.construct(v.n, zero)
	p := v.store.ref(v.n)
	v.n++
	if init != nil {
		init(p)
	}
	return p
}

// Pop destroys the last element. The vector must not be empty.
func (v *Vector[T]) Pop() {
	assert(v.n > 0, "pop from empty vector")
	v.n--
	v.store.destroy(v.n)
}

// PopValue moves the last element out of the vector. The element is not
// destroyed; ownership passes to the caller. The vector must not be empty.
func (v *Vector[T]) PopValue() T {
	assert(v.n > 0, "pop from empty vector")
	v.n--
	return v.store.release(v.n)
}

// Clear destroys all elements, last to first.
func (v *Vector[T]) Clear() {
	for v.n > 0 {
		v.Pop()
	}
}

// Resize sets the length to k, which must be in [0,Cap()]. Excess elements are
// destroyed from the back, missing ones are appended as zero values.
func (v *Vector[T]) Resize(k int) {
	var zero T
	v.resize(k, func() T { return zero })
}

// ResizeWith is like Resize, but appends copies of value.
func (v *Vector[T]) ResizeWith(k int, value T) {
	v.resize(k, func() T { return v.copyFn(value) })
}

func (v *Vector[T]) resize(k int, next func() T) {
	assert(k >= 0 && k <= v.store.capacity(), "resize beyond capacity")
	for v.n > k {
		v.Pop()
	}
	for v.n < k {
		v.Push(next())
	}
}

// --- Lifetime --------------------------------------------------------------

// Destroy ends the life of all elements, in reverse order. The vector remains
// usable and empty. Destroy makes vectors of vectors destroy their elements.
func (v *Vector[T]) Destroy() {
	if v == nil || v.store == nil {
		return
	}
	if v.n > 0 && v.store.layout() == Slotted {
		tracer().Debugf("staticvec: destroying %d elements", v.n)
	}
	v.Clear()
}

// Clone returns a new vector with the same capacity and configuration,
// holding copies of all elements in order. Cloning a nil vector returns nil.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return nil
	}
	c, err := NewWithConfig(v.cfg)
	assert(err == nil, "clone of vector with invalid configuration")
	c.appendCopies(v)
	return c
}

// CopyFrom replaces the contents of v by copies of the elements of src.
// v's elements are destroyed first. src.Len() must not exceed v.Cap().
// Copying a vector onto itself does nothing.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		return
	}
	assert(src.Len() <= v.Cap(), "copy source exceeds capacity")
	tracer().Debugf("staticvec: copy-assign %d elements", src.Len())
	v.Clear()
	v.appendCopies(src)
}

func (v *Vector[T]) appendCopies(src *Vector[T]) {
	for i := 0; i < src.Len(); i++ {
		v.Push(v.copyFn(*src.store.ref(i)))
	}
}

// MoveFrom replaces the contents of v by the elements of src, which are
// transferred without copying or destroying them. v's elements are destroyed
// first. Afterwards src is empty. src.Len() must not exceed v.Cap().
// Moving a vector onto itself does nothing.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	assert(src.Len() <= v.Cap(), "move source exceeds capacity")
	tracer().Debugf("staticvec: move-assign %d elements", src.Len())
	v.Clear()
	for i := 0; i < src.n; i++ {
		v.Push(src.store.release(i))
	}
	src.n = 0
}

// Take moves all elements of v into a new vector with the same capacity and
// configuration. v is left empty.
func (v *Vector[T]) Take() *Vector[T] {
	dst, err := NewWithConfig(v.cfg)
	assert(err == nil, "take from vector with invalid configuration")
	dst.MoveFrom(v)
	return dst
}

// Slice returns copies of the live elements in order. Elements are copied by
// plain assignment.
func (v *Vector[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, *v.store.ref(i))
	}
	return out
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v", v.Slice())
}
