/*
Package boxtree produces and maintains a tree of render boxes from a
styled document tree.

The tree is held as an arena: boxes live in a flat slice and are
addressed by stable integer index. Parent and child links are index
lists, never pointers, so external per-node state (such as a layout
cache) can be kept in a parallel array that is resized together with
the arena and can never dangle.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame.box'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame.box")
}
