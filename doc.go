/*
Package staticvec offers a fixed-capacity sequence container.

Static Vectors

A static vector stores up to a fixed number of elements in one storage block
which is acquired exactly once, when the vector is created. It never grows and
it never relocates its elements, but otherwise behaves like a slice-backed
vector: random access, push and pop at the back, resize, iteration, copy and
move.

	v := staticvec.MustNew[int](4)
	v.Push(1)
	v.Push(2)
	v.Push(3)
	v.Pop()
	v.ResizeWith(4, 9) // [1 2 9 9]

Capacity is a property of the vector value, not of its type: Go generics have
no constant parameters. Once created, Cap() is immutable.

Element lifecycle

Slots [0,Len()) hold live elements, slots [Len(),Cap()) are vacant. Elements
are constructed on insertion and destroyed on removal, resize, clear, or when
the vector itself is destroyed. Destruction runs the element's destruction
policy: a Config.Destroy hook, or the Destroy method if the element type
implements Destroyer. Elements are always destroyed from the back, giving
reverse-order destruction.

The storage block is represented in one of two layouts, chosen once per
element type:

  - Flat: a plain array of values, used for trivial element types, i.e. types
    without pointers and without a destruction policy. Vacant slots may hold
    stale values, which are logically absent.
  - Slotted: every slot carries an explicit live-tag. Construction and
    destruction are checked against the tag, and destroyed slots are zeroed.

Contracts

Checked access (At, Get, TryPush) reports errors. Everything else is governed
by preconditions: popping an empty vector, pushing onto a full one, resizing
beyond capacity or unchecked access out of range are contract violations and
panic immediately. Building with tag `staticvec_noassert` removes these
assertions; violating a contract is then undefined.

Vectors are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package staticvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
