package handle

import "errors"

var (
	// ErrClosed signals a subscription on a closed broadcaster.
	ErrClosed = errors.New("handle: broadcaster closed")
)
