package staticvec

import "errors"

var (
	// ErrInvalidCapacity signals a capacity which is not in [1,MaxCapacity].
	ErrInvalidCapacity = errors.New("staticvec: invalid capacity")
	// ErrIndexOutOfRange is flagged by checked access beyond the live range.
	ErrIndexOutOfRange = errors.New("staticvec: index out of range")
	// ErrCapacityExceeded signals an insertion into a full vector.
	ErrCapacityExceeded = errors.New("staticvec: capacity exceeded")
	// ErrInvalidState signals a violated storage invariant (see Check).
	ErrInvalidState = errors.New("staticvec: invalid state")
)
