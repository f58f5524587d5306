/*
Package handle implements single-owner resource handles.

A Handle owns at most one resource and knows how to get rid of it: a Deleter
is called when the handle is reset, dropped or destroyed. Ownership is passed
on explicitly with Move, MoveFrom or Release; the handle given up is left
empty. Go cannot forbid copying a struct, so clients must not copy a Handle
which owns a resource.

	h := handle.New(f, handle.CloseDeleter[*os.File]{})
	defer h.Destroy()

Handles implement staticvec.Destroyer, so a staticvec.Vector of handles deletes
the owned resources whenever elements are popped, cleared or resized away.
Handles also implement staticvec.Cloner with a Clone which panics: vector
operations copying elements fail fast instead of creating a second owner.

Deleters may be decorated with a Broadcaster, which publishes every deleted
resource to its subscribers.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package handle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the staticvec tracer.
func tracer() tracing.Trace {
	return tracing.Select("staticvec")
}
