/*
Package monospace provides an inline-text measurer for fixed-pitch layout.

Text is sized on a character-cell grid: every grapheme occupies one or two
cells of em width, as determined by UAX#11 East Asian width. Lines are em
tall, with the baseline at 3/5 em. The measurer is deliberately dumb about
typography — no fonts, no shaping, no hyphenation — which makes it a useful
collaborator for terminal-style rendering and for exercising block flow in
tests.

# Status

Line breaking is a greedy fit of whitespace-separated words. A word wider
than the available width overflows its line instead of being broken.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.inline'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.inline")
}
