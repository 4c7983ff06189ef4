/*
Package layout computes the geometry of a box tree.

Overview

The engine owns three pieces of state for one document: the box tree, a
layout cache parallel to it, and a dirty tracker. A layout pass walks
the tree top down: a formatting-context dispatcher selects the
algorithm owning each box's children — block flow, inline flow, or an
external flex/grid solver — and every size request goes through the
cache first, so clean subtrees are answered in O(1) without descending.

Block flow is a two-pass protocol. Pass 1 sizes each in-flow child
through the dispatcher. Pass 2 positions the children with a pen
cursor, collapsing adjoining vertical margins per CSS 2.2 §8.3.1:
empty blocks collapse through without receiving a position, and a
first or last child's margin may escape through a parent that has no
border, padding or clearance on the respective edge. Escaped margins
are explicit return values of the layout call, recorded on the box for
its ancestor to collapse further.

A pass is synchronous and exclusive to one goroutine; independent
documents with their own engines may be laid out concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame.layout")
}
