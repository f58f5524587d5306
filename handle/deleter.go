package handle

import "io"

// Deleter is the destruction policy of a handle.
type Deleter[R any] interface {
	Delete(R)
}

// DeleterFunc adapts a function to the Deleter interface.
type DeleterFunc[R any] func(R)

// Delete calls f(r).
func (f DeleterFunc[R]) Delete(r R) {
	f(r)
}

// CloseDeleter deletes resources by closing them. Close errors are traced.
type CloseDeleter[R io.Closer] struct{}

// Delete closes r.
func (CloseDeleter[R]) Delete(r R) {
	if err := r.Close(); err != nil {
		tracer().Errorf("handle: closing resource: %v", err)
	}
}
