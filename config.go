package staticvec

import "fmt"

// MaxCapacity is the largest capacity a vector may be created with.
const MaxCapacity = 1 << 16

// Destroyer is implemented by element types which have to release resources
// when they leave a vector. Destroy is called exactly once per constructed
// element, unless the element is moved out of the vector.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types which need a deep copy when a
// vector is copied (see Clone and CopyFrom).
type Cloner[T any] interface {
	Clone() T
}

// Config configures a vector.
type Config[T any] struct {
	// Capacity is the fixed number of slots.
	Capacity int
	// Copy, if set, copies an element for Clone, CopyFrom and ResizeWith.
	// It takes precedence over a Clone method of T.
	Copy func(T) T
	// Destroy, if set, is the destruction policy for elements. It takes
	// precedence over a Destroy method of T and forces the slotted layout.
	Destroy func(*T)
}

func (cfg Config[T]) validate() error {
	if cfg.Capacity <= 0 || cfg.Capacity > MaxCapacity {
		return fmt.Errorf("%w: %d not in [1,%d]", ErrInvalidCapacity, cfg.Capacity, MaxCapacity)
	}
	return nil
}
