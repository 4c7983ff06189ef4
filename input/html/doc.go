/*
Package html reads HTML documents and styles them for layout.

The package bridges between a parsed DOM and the layout engine: it parses
a document with golang.org/x/net/html, collects the document's embedded
stylesheets, matches selectors with cascadia, and resolves the box-model
relevant properties of every element into a frame.Styling. The result is a
styled tree rooted at the document's body, ready for box-tree generation.

The cascade is intentionally modest: declarations apply in document order,
the style attribute of an element applies after the stylesheets, and
'!important' declarations apply last. Specificity of selectors is not
ranked. Clients needing a full CSSOM should style the DOM themselves and
hand the engine their own frame.StyledNode implementation.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.input'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.input")
}
