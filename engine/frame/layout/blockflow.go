package layout

// Block flow: vertical stacking with CSS 2.2 margin collapsing. Two passes
// over the in-flow children of a block container. Pass 1 sizes every child
// through the dispatcher (and thereby the cache). Pass 2 positions them
// with a pen cursor and a running collapsed margin:
//
//   - empty blocks self-collapse their top and bottom margins, merge the
//     result into the running margin and receive no position;
//   - the first positioned child's top margin escapes through the
//     container's top edge when nothing separates them, collapsing into the
//     container's own top margin at the level above instead of advancing
//     the pen — transitively, since each level pre-collapses the escaped
//     value with its own contribution before exposing it upward;
//   - the symmetric rule applies to the last child's bottom margin.
//
// Escaped margins are explicit return values, recorded on the box.

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style/css"
)

func (p *pass) layoutBlock(n boxtree.NodeIndex, cnstr Constraint) (measurement, error) {
	box := p.tree.Box(n)
	st := box.Styles
	b := frame.BoxFromStyling(&frame.Box{}, st)

	unresolved := false
	contentW := dimen.Zero
	shrinkToFit := !cnstr.W.IsAbsolute()
	if !shrinkToFit {
		ok, err := frame.FixDimensionsFromEnclosingWidth(b, cnstr.W.Unwrap())
		if err != nil || !ok {
			tracer().Errorf("cannot resolve width of node %d, using zero fallback", n)
			unresolved = true
			b.FixContentWidth(0)
		}
		contentW = b.ContentWidth().UnwrapOr(0)
	} else if st.Width.IsAbsolute() {
		// a definite width needs no enclosing block to resolve
		shrinkToFit = false
		contentW = st.Width.Unwrap()
		if st.BorderBoxSizing {
			contentW -= st.Padding[frame.Left].UnwrapOr(0) + st.Padding[frame.Right].UnwrapOr(0) +
				st.BorderWidth[frame.Left].UnwrapOr(0) + st.BorderWidth[frame.Right].UnwrapOr(0)
		}
		b.FixContentWidth(contentW)
	}

	flow, err := p.flowChildren(n)
	if err != nil {
		return measurement{}, err
	}

	// Pass 1: size every in-flow child in document order
	childCnstr := WidthConstraint(contentW)
	meas := make([]measurement, len(flow))
	for i, ch := range flow {
		m, merr := p.measure(ch, childCnstr)
		if merr != nil {
			return measurement{}, merr
		}
		meas[i] = m
	}

	// Pass 2: position children, collapsing adjoining margins
	canEscTop := !st.SeparatesTopMargins() && n != p.tree.Root()
	canEscBot := !st.SeparatesBottomMargins() && n != p.tree.Root()
	// own margins, resolved against the width the container was offered;
	// escaped child margins collapse into these before traveling upward
	ownTop := resolveVMargin(st.Margins[frame.Top], cnstr.W.UnwrapOr(0))
	ownBot := resolveVMargin(st.Margins[frame.Bottom], cnstr.W.UnwrapOr(0))
	pen := dimen.Zero
	pending := dimen.Zero // collapsed margin not yet inserted into the pen
	escTop, hasEscTop := dimen.Zero, false
	escBot, hasEscBot := dimen.Zero, false
	placedAny := false
	maxChildExtent := dimen.Zero
	positions := make(map[boxtree.NodeIndex]dimen.Point, len(flow))

	for i, ch := range flow {
		cb := p.tree.Box(ch)
		m := meas[i]
		// an escaped value is already collapsed with the child's own margin
		topM := resolveVMargin(cb.Styles.Margins[frame.Top], contentW)
		if m.hasEscTop {
			topM = m.escTop
		}
		botM := resolveVMargin(cb.Styles.Margins[frame.Bottom], contentW)
		if m.hasEscBot {
			botM = m.escBot
		}
		if collapsesThrough(cb, m) {
			// no pen space, no position; both margins merge into the
			// running margin like a sibling margin would
			self := frame.CollapseMargins(topM, botM)
			pending = frame.CollapseMargins(pending, self)
			cb.Positioned = false
			continue
		}
		gap := frame.CollapseMargins(pending, topM)
		if !placedAny && canEscTop {
			escTop, hasEscTop = frame.CollapseMargins(ownTop, gap), true
		} else {
			pen += gap
		}
		placedAny = true
		x := resolveLeftMargin(cb.Styles, m.size.X, contentW)
		cb.Pos = dimen.Point{X: x, Y: pen}
		cb.Positioned = true
		positions[ch] = cb.Pos
		pen += m.size.Y
		maxChildExtent = dimen.Max(maxChildExtent, x+m.size.X)
		pending = botM
	}

	switch {
	case placedAny && canEscBot:
		escBot, hasEscBot = frame.CollapseMargins(ownBot, pending), true
	case placedAny:
		pen += pending // trailing non-escaping space
	case len(flow) > 0 && canEscTop:
		// all children collapsed through: expose their merged margin once
		escTop, hasEscTop = frame.CollapseMargins(ownTop, pending), true
	case len(flow) > 0:
		pen += pending
	}

	// own size from the pen position and the style constraints
	if shrinkToFit {
		contentW = maxChildExtent
		b.FixContentWidth(contentW)
	}
	contentH := clampHeight(st, pen, cnstr)
	b.H = css.Auto()
	b.FixContentHeight(contentH)

	size := dimen.Point{
		X: b.BorderBoxWidth().UnwrapOr(0),
		Y: b.BorderBoxHeight().UnwrapOr(0),
	}
	p.cache.StoreFull(n, cnstr, dimen.Point{X: contentW, Y: contentH}, positions)
	return measurement{
		size:       size,
		escTop:     escTop,
		escBot:     escBot,
		hasEscTop:  hasEscTop,
		hasEscBot:  hasEscBot,
		unresolved: unresolved,
	}, nil
}

// flowChildren returns the in-flow children of a container in document
// order: floated, absolutely positioned and display:none boxes are handled
// elsewhere and skipped here. A dangling child index is fatal to the pass.
func (p *pass) flowChildren(n boxtree.NodeIndex) ([]boxtree.NodeIndex, error) {
	box := p.tree.Box(n)
	var flow []boxtree.NodeIndex
	for _, ch := range box.Children {
		cb := p.tree.Box(ch)
		if cb == nil {
			return nil, core.Error(core.EINVALID, "dangling box index %d in children of %d", ch, n)
		}
		if cb.InFlow() {
			flow = append(flow, ch)
		}
	}
	return flow, nil
}

// collapsesThrough reports whether a child occupies no pen space at all:
// no border, no padding, no inline content, no positioned in-flow children,
// and zero resulting height. Such a block's margins collapse through it.
func collapsesThrough(cb *boxtree.TreeBox, m measurement) bool {
	if cb.IsText || cb.Context == boxtree.InlineContext && m.size.Y > 0 {
		return false
	}
	st := cb.Styles
	if st.BorderWidth[frame.Top].UnwrapOr(0) > 0 || st.BorderWidth[frame.Bottom].UnwrapOr(0) > 0 ||
		st.Padding[frame.Top].UnwrapOr(0) > 0 || st.Padding[frame.Bottom].UnwrapOr(0) > 0 {
		return false
	}
	return m.size.Y == 0
}

// resolveVMargin fixes a margin against the enclosing content width.
// Percentages — even on vertical margins — are relative to the containing
// block's width; auto resolves to zero.
func resolveVMargin(d css.DimenT, enclosing dimen.Dimen) dimen.Dimen {
	if d.IsPercent() {
		return dimen.Dimen(int64(enclosing) * int64(d.Unwrap()) / 100)
	}
	return d.UnwrapOr(0)
}

// resolveLeftMargin positions a child horizontally inside its containing
// block. Auto margins absorb the free space left over next to the child's
// border box: auto on both sides centers the child, auto on the left side
// alone pushes it to the right edge. Over-constrained free space is
// discarded, never made negative.
func resolveLeftMargin(st frame.Styling, childW, contentW dimen.Dimen) dimen.Dimen {
	ml := st.Margins[frame.Left]
	mr := st.Margins[frame.Right]
	if !ml.IsAuto() {
		return resolveVMargin(ml, contentW)
	}
	free := contentW - childW
	if !mr.IsAuto() {
		free -= resolveVMargin(mr, contentW)
	}
	if free < 0 {
		return 0
	}
	if mr.IsAuto() {
		return free / 2
	}
	return free
}

// clampHeight applies the style height and min/max constraints to the
// content height block flow computed. A percentage height resolves against
// a fixed available height and degrades to auto otherwise.
func clampHeight(st frame.Styling, contentH dimen.Dimen, cnstr Constraint) dimen.Dimen {
	h := contentH
	if st.Height.IsAbsolute() {
		h = st.Height.Unwrap()
		if st.BorderBoxSizing {
			h -= st.Padding[frame.Top].UnwrapOr(0) + st.Padding[frame.Bottom].UnwrapOr(0) +
				st.BorderWidth[frame.Top].UnwrapOr(0) + st.BorderWidth[frame.Bottom].UnwrapOr(0)
		}
	} else if st.Height.IsPercent() && cnstr.H.IsAbsolute() {
		h = dimen.Dimen(int64(cnstr.H.Unwrap()) * int64(st.Height.Unwrap()) / 100)
	}
	if st.MinH.IsAbsolute() {
		h = dimen.Max(h, st.MinH.Unwrap())
	}
	if st.MaxH.IsAbsolute() {
		h = dimen.Min(h, st.MaxH.Unwrap())
	}
	return h
}
