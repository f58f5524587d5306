package handle

// Handle owns a single resource of type R.
//
// The zero value is an empty handle without a deleter; resources reset into
// it are left to the garbage collector when dropped.
type Handle[R any] struct {
	res     R
	deleter Deleter[R]
	valid   bool
}

// New creates a handle owning r, to be deleted by d. d may be nil.
func New[R any](r R, d Deleter[R]) Handle[R] {
	return Handle[R]{res: r, deleter: d, valid: true}
}

// Empty creates a handle owning nothing, using d for resources it will own
// later on.
func Empty[R any](d Deleter[R]) Handle[R] {
	return Handle[R]{deleter: d}
}

// Get returns the owned resource, if any. Ownership stays with h.
func (h *Handle[R]) Get() (R, bool) {
	return h.res, h.valid
}

// Valid reports whether h owns a resource.
func (h *Handle[R]) Valid() bool {
	return h.valid
}

// Deleter returns the destruction policy of h.
func (h *Handle[R]) Deleter() Deleter[R] {
	return h.deleter
}

// Release relinquishes ownership and returns the resource, which will not be
// deleted by h. The boolean is false if h was empty.
func (h *Handle[R]) Release() (R, bool) {
	r, ok := h.res, h.valid
	var zero R
	h.res, h.valid = zero, false
	return r, ok
}

// Reset deletes the currently owned resource, if any, and takes ownership
// of r.
func (h *Handle[R]) Reset(r R) {
	h.Drop()
	h.res, h.valid = r, true
}

// Drop deletes the currently owned resource, if any. h is empty afterwards.
func (h *Handle[R]) Drop() {
	r, ok := h.Release()
	if ok && h.deleter != nil {
		h.deleter.Delete(r)
	}
}

// Destroy is Drop, called when h goes out of scope.
func (h *Handle[R]) Destroy() {
	h.Drop()
}

// Move transfers ownership to a new handle with the same deleter. h is
// empty afterwards.
func (h *Handle[R]) Move() Handle[R] {
	moved := Handle[R]{deleter: h.deleter}
	moved.res, moved.valid = h.Release()
	return moved
}

// MoveFrom deletes the resource owned by h, then takes over resource and
// deleter from src. src is empty afterwards. Moving a handle onto itself
// does nothing.
func (h *Handle[R]) MoveFrom(src *Handle[R]) {
	if h == src {
		return
	}
	h.Drop()
	h.res, h.valid = src.Release()
	h.deleter = src.deleter
}

// Clone panics: a resource has exactly one owner. Vector operations which
// copy elements (Clone, CopyFrom, ResizeWith, NewFilled) therefore fail fast
// for vectors of handles instead of deleting resources twice. Use Move.
func (h *Handle[R]) Clone() Handle[R] {
	panic("handle: handles cannot be copied")
}

// Swap exchanges resources and deleters of h and other.
func (h *Handle[R]) Swap(other *Handle[R]) {
	*h, *other = *other, *h
}
