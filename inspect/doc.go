/*
Package inspect renders the storage block of static vectors for debugging.

A Snapshot captures capacity, length, layout and a textual form of every live
element. It may be rendered as Graphviz DOT (Dot), as a colored slot table
for fixed-width consoles (Console), or as an HTML table (HTML).

	snap := inspect.Capture(v)
	inspect.NewConsole(nil, nil).Print(snap)

Vacant slots are never read; they show up as empty cells.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package inspect

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the staticvec tracer.
func tracer() tracing.Trace {
	return tracing.Select("staticvec")
}
