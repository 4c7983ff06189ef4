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
	"errors"
	"fmt"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style/css"
)

var errBoxDimensionsUnresolvable = errors.New("box dimensions cannot be resolved")

// Rect is a rectangle positioned by its top-left corner.
type Rect struct {
	TopL dimen.Point
	Size
}

// Size is a pair of optional dimensions.
type Size struct {
	W css.DimenT
	H css.DimenT
}

// Box type, following the CSS box model.
type Box struct {
	Rect            // either content box or border box, depending on box-sizing
	Min             Size
	Max             Size
	BorderBoxSizing bool          // box-sizing = border-box ?
	Padding         [4]css.DimenT // inside of border
	BorderWidth     [4]css.DimenT // thickness of border
	Margins         [4]css.DimenT // outside of border, maybe unknown
}

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// InitEmptyBox initializes box with all rims set to zero and size unknown.
// If box is nil, a new box is allocated.
func InitEmptyBox(box *Box) *Box {
	if box == nil {
		box = &Box{}
	}
	for _, dir := range []int{Top, Right, Bottom, Left} {
		box.Padding[dir] = css.SomeDimen(0)
		box.BorderWidth[dir] = css.SomeDimen(0)
		box.Margins[dir] = css.SomeDimen(0)
	}
	box.W = css.DimenOption("auto")
	box.H = css.DimenOption("auto")
	return box
}

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   w=%v, h=%v  (bbox-sz=%v)\n", box.W, box.H, box.BorderBoxSizing)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// --- Handling of box dimensions --------------------------------------------

// ContentWidth returns the width of the content box.
// If this box has box-sizing set to `border-box` and the width dimensions do
// not have fixed values, an unset dimension is returned.
func (box *Box) ContentWidth() css.DimenT {
	if !box.BorderBoxSizing {
		return box.W
	}
	if box.HasFixedBorderBoxWidth() {
		w := box.W.Unwrap()
		w -= innerDecorationWidth(box).Unwrap()
		return css.SomeDimen(w)
	}
	return css.Dimen()
}

// ContentHeight returns the height of the content box.
// If this box has box-sizing set to `border-box` and the height dimensions do
// not have fixed values, an unset dimension is returned.
func (box *Box) ContentHeight() css.DimenT {
	if !box.BorderBoxSizing {
		return box.H
	}
	if box.HasFixedBorderBoxHeight() {
		h := box.H.Unwrap()
		h -= innerDecorationHeight(box).Unwrap()
		return css.SomeDimen(h)
	}
	return css.Dimen()
}

// BorderBoxWidth returns the width of the border box, i.e. the content box
// plus padding and border.
func (box *Box) BorderBoxWidth() css.DimenT {
	if box.BorderBoxSizing {
		return box.W
	}
	if !box.W.IsAbsolute() {
		return css.Dimen()
	}
	deco := innerDecorationWidth(box)
	if deco.IsNone() {
		return css.Dimen()
	}
	return css.SomeDimen(box.W.Unwrap() + deco.Unwrap())
}

// BorderBoxHeight returns the height of the border box, i.e. the content box
// plus padding and border.
func (box *Box) BorderBoxHeight() css.DimenT {
	if box.BorderBoxSizing {
		return box.H
	}
	if !box.H.IsAbsolute() {
		return css.Dimen()
	}
	deco := innerDecorationHeight(box)
	if deco.IsNone() {
		return css.Dimen()
	}
	return css.SomeDimen(box.H.Unwrap() + deco.Unwrap())
}

// TotalWidth returns the overall width of a box, including margins.
func (box *Box) TotalWidth() css.DimenT {
	bbw := box.BorderBoxWidth()
	if !bbw.IsAbsolute() || !box.Margins[Left].IsAbsolute() || !box.Margins[Right].IsAbsolute() {
		return css.Dimen()
	}
	return css.SomeDimen(bbw.Unwrap() + box.Margins[Left].Unwrap() + box.Margins[Right].Unwrap())
}

// TotalHeight returns the overall height of a box, including margins.
func (box *Box) TotalHeight() css.DimenT {
	bbh := box.BorderBoxHeight()
	if !bbh.IsAbsolute() || !box.Margins[Top].IsAbsolute() || !box.Margins[Bottom].IsAbsolute() {
		return css.Dimen()
	}
	return css.SomeDimen(bbh.Unwrap() + box.Margins[Top].Unwrap() + box.Margins[Bottom].Unwrap())
}

// HasFixedBorderBoxWidth returns true if box.W, padding and border width for
// left and right have fixed (known) values.
func (box *Box) HasFixedBorderBoxWidth() bool {
	return box.W.IsAbsolute() &&
		box.Padding[Left].IsAbsolute() && box.Padding[Right].IsAbsolute() &&
		box.BorderWidth[Left].IsAbsolute() && box.BorderWidth[Right].IsAbsolute()
}

// HasFixedBorderBoxHeight returns true if box.H, padding and border width for
// top and bottom have fixed (known) values.
func (box *Box) HasFixedBorderBoxHeight() bool {
	return box.H.IsAbsolute() &&
		box.Padding[Top].IsAbsolute() && box.Padding[Bottom].IsAbsolute() &&
		box.BorderWidth[Top].IsAbsolute() && box.BorderWidth[Bottom].IsAbsolute()
}

// FixContentWidth sets a known value for the width of the content box.
func (box *Box) FixContentWidth(w dimen.Dimen) bool {
	if box.BorderBoxSizing {
		deco := innerDecorationWidth(box)
		if deco.IsNone() {
			return false
		}
		box.W = css.SomeDimen(w + deco.Unwrap())
		return true
	}
	box.W = css.SomeDimen(w)
	return true
}

// FixContentHeight sets a known value for the height of the content box.
func (box *Box) FixContentHeight(h dimen.Dimen) bool {
	if box.BorderBoxSizing {
		deco := innerDecorationHeight(box)
		if deco.IsNone() {
			return false
		}
		box.H = css.SomeDimen(h + deco.Unwrap())
		return true
	}
	box.H = css.SomeDimen(h)
	return true
}

// FixPercentages resolves %-relative rim dimensions against the width of the
// enclosing content area. Margins, padding and border widths are percentages
// of the containing block's width, even for the vertical rims.
// Returns true if afterwards all rims have fixed values.
func (box *Box) FixPercentages(enclosing dimen.Dimen) bool {
	ok := true
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = fixPercent(box.Padding[dir], enclosing)
		box.BorderWidth[dir] = fixPercent(box.BorderWidth[dir], enclosing)
		box.Margins[dir] = fixPercent(box.Margins[dir], enclosing)
		ok = ok && box.Padding[dir].IsAbsolute() && box.BorderWidth[dir].IsAbsolute() &&
			box.Margins[dir].IsAbsolute()
	}
	return ok
}

func fixPercent(d css.DimenT, enclosing dimen.Dimen) css.DimenT {
	if !d.IsPercent() {
		return d
	}
	return css.SomeDimen(dimen.Dimen(int64(enclosing) * int64(d.Unwrap()) / 100))
}

// innerDecorationWidth sums up left and right padding and border width.
func innerDecorationWidth(box *Box) css.DimenT {
	if !box.Padding[Left].IsAbsolute() || !box.Padding[Right].IsAbsolute() ||
		!box.BorderWidth[Left].IsAbsolute() || !box.BorderWidth[Right].IsAbsolute() {
		return css.Dimen()
	}
	w := box.Padding[Left].Unwrap() + box.Padding[Right].Unwrap()
	w += box.BorderWidth[Left].Unwrap() + box.BorderWidth[Right].Unwrap()
	return css.SomeDimen(w)
}

// innerDecorationHeight sums up top and bottom padding and border width.
func innerDecorationHeight(box *Box) css.DimenT {
	if !box.Padding[Top].IsAbsolute() || !box.Padding[Bottom].IsAbsolute() ||
		!box.BorderWidth[Top].IsAbsolute() || !box.BorderWidth[Bottom].IsAbsolute() {
		return css.Dimen()
	}
	h := box.Padding[Top].Unwrap() + box.Padding[Bottom].Unwrap()
	h += box.BorderWidth[Top].Unwrap() + box.BorderWidth[Bottom].Unwrap()
	return css.SomeDimen(h)
}

// --- Horizontal width resolution --------------------------------------------

// distributeHorizontalMarginSpace distributes the space left over by a box of
// known border-box width within an enclosing width onto the box's auto
// margins (CSS 2.2 §10.3.3). Two auto margins split the space evenly, a
// single auto margin takes all of it. With no auto margin the right margin
// absorbs the imbalance, negative if the box overflows.
func distributeHorizontalMarginSpace(box *Box, enclosing dimen.Dimen) bool {
	bbw := box.BorderBoxWidth()
	if !bbw.IsAbsolute() {
		return false
	}
	space := enclosing - bbw.Unwrap()
	lauto, rauto := box.Margins[Left].IsAuto(), box.Margins[Right].IsAuto()
	switch {
	case lauto && rauto:
		box.Margins[Left] = css.SomeDimen(space / 2)
		box.Margins[Right] = css.SomeDimen(space - space/2)
	case lauto:
		box.Margins[Left] = css.SomeDimen(space - box.Margins[Right].UnwrapOr(0))
	case rauto:
		box.Margins[Right] = css.SomeDimen(space - box.Margins[Left].UnwrapOr(0))
	default:
		// over-constrained: margin-right gives way
		box.Margins[Right] = css.SomeDimen(space - box.Margins[Left].UnwrapOr(0))
	}
	return true
}

// FixDimensionsFromEnclosingWidth resolves the horizontal dimensions of a box
// against the width of the enclosing content area: percentages are fixed,
// an auto width fills the remaining space, and auto margins distribute the
// leftover. Returns true if afterwards the border-box width and both
// horizontal margins are fixed.
func FixDimensionsFromEnclosingWidth(box *Box, enclosing dimen.Dimen) (bool, error) {
	box.FixPercentages(enclosing)
	if box.W.IsPercent() {
		box.W = fixPercent(box.W, enclosing)
	}
	if box.W.IsAuto() || box.W.IsNone() || box.W.IsExpand() {
		deco := innerDecorationWidth(box)
		if deco.IsNone() {
			return false, errBoxDimensionsUnresolvable
		}
		ml, mr := box.Margins[Left], box.Margins[Right]
		w := enclosing - deco.Unwrap() - ml.UnwrapOr(0) - mr.UnwrapOr(0)
		if ml.IsAuto() {
			box.Margins[Left] = css.SomeDimen(0)
		}
		if mr.IsAuto() {
			box.Margins[Right] = css.SomeDimen(0)
		}
		if !box.FixContentWidth(w) {
			return false, errBoxDimensionsUnresolvable
		}
		return true, nil
	}
	if !box.W.IsAbsolute() {
		return false, nil // content-dependent width, caller has to measure
	}
	if !distributeHorizontalMarginSpace(box, enclosing) {
		return false, errBoxDimensionsUnresolvable
	}
	return box.HasFixedBorderBoxWidth() &&
		box.Margins[Left].IsAbsolute() && box.Margins[Right].IsAbsolute(), nil
}

// --- Margin collapsing ------------------------------------------------------

// CollapseMargins collapses two adjoining vertical margins (CSS 2.2 §8.3.1):
// if both are non-negative the result is their maximum, if both are negative
// their minimum, and for mixed signs their sum.
func CollapseMargins(m1, m2 dimen.Dimen) dimen.Dimen {
	switch {
	case m1 >= 0 && m2 >= 0:
		return dimen.Max(m1, m2)
	case m1 <= 0 && m2 <= 0:
		return dimen.Min(m1, m2)
	}
	return m1 + m2
}

// CollapseAllMargins collapses a sequence of adjoining margins pairwise,
// left to right.
func CollapseAllMargins(ms ...dimen.Dimen) dimen.Dimen {
	if len(ms) == 0 {
		return 0
	}
	m := ms[0]
	for _, next := range ms[1:] {
		m = CollapseMargins(m, next)
	}
	return m
}
