package frame

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer
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

import (
	"github.com/npillmayer/boxflow/engine/style/css"
)

// FloatMode is a type for the CSS float property.
type FloatMode uint8

// Enum values for type FloatMode
const (
	FloatNone FloatMode = iota
	FloatLeft
	FloatRight
)

// ClearMode is a type for the CSS clear property.
type ClearMode uint8

// Enum values for type ClearMode
const (
	ClearNone ClearMode = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// OverflowMode is a type for the CSS overflow property.
type OverflowMode uint8

// Enum values for type OverflowMode
const (
	OverflowVisible OverflowMode = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// WhiteSpaceMode is a type for the CSS white-space property. We only
// distinguish collapsing from preserving modes.
type WhiteSpaceMode uint8

// Enum values for type WhiteSpaceMode
const (
	WhiteSpaceNormal WhiteSpaceMode = iota
	WhiteSpacePre
)

// Styling holds the resolved box-model inputs of a box, as produced by the
// last style resolution. A layout pass reads stylings but never writes them.
type Styling struct {
	Display         DisplayMode
	Position        css.Position
	Float           FloatMode
	Clear           ClearMode
	Overflow        OverflowMode
	WhiteSpace      WhiteSpaceMode
	BorderBoxSizing bool
	Margins         [4]css.DimenT // top, right, bottom, left
	Padding         [4]css.DimenT
	BorderWidth     [4]css.DimenT
	Width, Height   css.DimenT
	MinW, MaxW      css.DimenT
	MinH, MaxH      css.DimenT
}

// DefaultStyling returns a styling with all rims zero and auto size, as an
// unstyled block-level element would have it.
func DefaultStyling() Styling {
	st := Styling{
		Display: BlockMode | InnerBlockMode,
		Width:   css.Auto(),
		Height:  css.Auto(),
	}
	for dir := Top; dir <= Left; dir++ {
		st.Margins[dir] = css.SomeDimen(0)
		st.Padding[dir] = css.SomeDimen(0)
		st.BorderWidth[dir] = css.SomeDimen(0)
	}
	return st
}

// InFlow returns true if a box with this styling participates in normal
// document flow.
func (st Styling) InFlow() bool {
	return !st.Display.Contains(DisplayNone) &&
		st.Float == FloatNone && !st.Position.OutOfFlow()
}

// EstablishesBFC returns true if a box with this styling establishes a new
// block formatting context, isolating its interior from margin collapsing
// with the outside.
func (st Styling) EstablishesBFC() bool {
	return st.Overflow != OverflowVisible ||
		st.Display.Contains(FlowRootMode) ||
		st.Float != FloatNone ||
		st.Position.OutOfFlow()
}

// SeparatesTopMargins is the consolidated collapse-blocker predicate for a
// box's top edge: a first child's top margin may only escape through a parent
// that does not separate, i.e. has no top border, no top padding, no
// clearance, and does not establish a new formatting context.
func (st Styling) SeparatesTopMargins() bool {
	return st.BorderWidth[Top].UnwrapOr(0) > 0 ||
		st.Padding[Top].UnwrapOr(0) > 0 ||
		st.Clear != ClearNone ||
		st.EstablishesBFC()
}

// SeparatesBottomMargins is the collapse-blocker predicate for a box's bottom
// edge. A definite height additionally pins the bottom edge, so a last
// child's bottom margin cannot escape either.
func (st Styling) SeparatesBottomMargins() bool {
	return st.BorderWidth[Bottom].UnwrapOr(0) > 0 ||
		st.Padding[Bottom].UnwrapOr(0) > 0 ||
		st.EstablishesBFC() ||
		st.Height.IsAbsolute()
}

// BoxFromStyling initializes a box with the rim dimensions and size
// constraints of a styling.
func BoxFromStyling(box *Box, st Styling) *Box {
	box = InitEmptyBox(box)
	box.BorderBoxSizing = st.BorderBoxSizing
	box.Padding = st.Padding
	box.BorderWidth = st.BorderWidth
	box.Margins = st.Margins
	box.W = st.Width
	box.H = st.Height
	box.Min = Size{W: st.MinW, H: st.MinH}
	box.Max = Size{W: st.MaxW, H: st.MaxH}
	return box
}

// --- Styled input trees -----------------------------------------------------

// StyledNode is the input boundary of the engine: a node of a document tree
// with styles already resolved to box-model inputs. Anything able to produce
// this interface can be laid out.
type StyledNode interface {
	Styling() Styling     // resolved box-model inputs
	Children() []StyledNode
	IsText() bool  // is this node a text run?
	Text() string  // text content for text runs
	Name() string  // element name, for diagnostics
}
