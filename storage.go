package staticvec

import (
	"reflect"
	"sync"
)

// Layout denotes the representation of a vector's storage block.
type Layout uint8

const (
	// Flat storage is a plain array of values, used for trivial element types.
	Flat Layout = iota
	// Slotted storage tags every slot as live or vacant.
	Slotted
)

func (l Layout) String() string {
	switch l {
	case Flat:
		return "flat"
	case Slotted:
		return "slotted"
	}
	return "unknown"
}

// storage is the fixed block of slots underneath a vector.
//
// construct and destroy are the placement primitives: construct brings a value
// to life in a vacant slot, destroy ends the life of a live slot's value.
// release ends a slot's life without running the destruction policy, handing
// the value over to the caller (move).
type storage[T any] interface {
	layout() Layout
	capacity() int
	construct(i int, value T)
	destroy(i int)
	release(i int) T
	ref(i int) *T
}

// --- Flat storage ----------------------------------------------------------

type flatStore[T any] struct {
	items []T
}

func newFlatStore[T any](capacity int) *flatStore[T] {
	return &flatStore[T]{items: make([]T, capacity)}
}

func (s *flatStore[T]) layout() Layout           { return Flat }
func (s *flatStore[T]) capacity() int            { return len(s.items) }
func (s *flatStore[T]) construct(i int, value T) { s.items[i] = value }
func (s *flatStore[T]) destroy(int)              {}
func (s *flatStore[T]) release(i int) T          { return s.items[i] }
func (s *flatStore[T]) ref(i int) *T             { return &s.items[i] }

// --- Slotted storage -------------------------------------------------------

type slot[T any] struct {
	value T
	live  bool
}

type slotStore[T any] struct {
	slots  []slot[T]
	policy func(*T) // destruction policy, may be nil
}

func newSlotStore[T any](capacity int, destroy func(*T)) *slotStore[T] {
	return &slotStore[T]{
		slots:  make([]slot[T], capacity),
		policy: destroy,
	}
}

func (s *slotStore[T]) layout() Layout { return Slotted }
func (s *slotStore[T]) capacity() int  { return len(s.slots) }

func (s *slotStore[T]) construct(i int, value T) {
	assert(!s.slots[i].live, "construct on a live slot")
	s.slots[i].value = value
	s.slots[i].live = true
}

func (s *slotStore[T]) destroy(i int) {
	assert(s.slots[i].live, "destroy on a vacant slot")
	if s.policy != nil {
		s.policy(&s.slots[i].value)
	}
	s.slots[i] = slot[T]{}
}

func (s *slotStore[T]) release(i int) T {
	assert(s.slots[i].live, "release of a vacant slot")
	value := s.slots[i].value
	s.slots[i] = slot[T]{}
	return value
}

func (s *slotStore[T]) ref(i int) *T {
	return &s.slots[i].value
}

// --- Layout selection ------------------------------------------------------

var destroyerType = reflect.TypeFor[Destroyer]()

// trivialTypes caches the trivial-predicate per element type.
var trivialTypes sync.Map // reflect.Type -> bool

// isTrivial reports whether values of T may live in flat storage: T has no
// Destroy method and holds no pointers, so ending a value's life is a no-op.
func isTrivial[T any]() bool {
	typ := reflect.TypeFor[T]()
	if trivial, ok := trivialTypes.Load(typ); ok {
		return trivial.(bool)
	}
	trivial := !implementsDestroyer(typ) && !hasPointers(typ)
	trivialTypes.Store(typ, trivial)
	return trivial
}

func implementsDestroyer(typ reflect.Type) bool {
	return typ.Implements(destroyerType) || reflect.PointerTo(typ).Implements(destroyerType)
}

func hasPointers(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typ.Len() > 0 && hasPointers(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if hasPointers(typ.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true // pointers, strings, slices, maps, chans, funcs, interfaces
}

// destroyerFor resolves the destruction policy for T, or nil if there is none.
func destroyerFor[T any](hook func(*T)) func(*T) {
	if hook != nil {
		return hook
	}
	typ := reflect.TypeFor[T]()
	if reflect.PointerTo(typ).Implements(destroyerType) {
		return func(p *T) {
			any(p).(Destroyer).Destroy()
		}
	}
	if typ.Implements(destroyerType) { // T is an interface or pointer type
		return func(p *T) {
			d, ok := any(*p).(Destroyer)
			if !ok || isNilPointer(d) {
				return
			}
			d.Destroy()
		}
	}
	return nil
}

func isNilPointer(x any) bool {
	v := reflect.ValueOf(x)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// copierFor resolves how elements of T are copied.
func copierFor[T any](hook func(T) T) func(T) T {
	if hook != nil {
		return hook
	}
	return func(value T) T {
		if c, ok := any(value).(Cloner[T]); ok && !isNilPointer(c) {
			return c.Clone()
		}
		if c, ok := any(&value).(Cloner[T]); ok {
			return c.Clone()
		}
		return value
	}
}

func newStorage[T any](cfg Config[T]) storage[T] {
	if cfg.Destroy == nil && isTrivial[T]() {
		return newFlatStore[T](cfg.Capacity)
	}
	return newSlotStore[T](cfg.Capacity, destroyerFor[T](cfg.Destroy))
}
