/*
Package frame implements the CSS box model for block-level layout.

Layout may be understood as the process of placing boxes within larger
boxes. Each box carries a content rectangle plus three rims — padding,
border and margin — and follows the CSS box model, including the
distinction between content-box and border-box sizing.

Besides the box geometry itself this package holds the resolved styling
inputs a layout pass consumes (type Styling), the display-mode flags
that decide which formatting context owns a box's children, and the
vertical margin-collapsing arithmetic of CSS 2.2 §8.3.1.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
