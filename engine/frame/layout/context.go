package layout

// Formatting-context dispatch. Every size request for a box funnels through
// measure(), which consults the cache first and otherwise hands the box to
// the algorithm owning its children: block flow, the inline-text
// collaborator, or an external flex/grid solver.

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// pass carries the state of one synchronous layout pass. The tree and cache
// are exclusively owned by the running pass.
type pass struct {
	tree   *boxtree.BoxTree
	cache  *Cache
	inline InlineMeasurer
	flex   FlexSolver
	grid   FlexSolver
}

// measure returns the border-box size and escaped margins of a box under a
// constraint shape. A cache hit answers in O(1) without descending into the
// subtree; a miss recursively lays the box out and populates the cache.
func (p *pass) measure(n boxtree.NodeIndex, cnstr Constraint) (measurement, error) {
	box := p.tree.Box(n)
	if box == nil {
		return measurement{}, core.Error(core.EINVALID, "dangling box index %d", n)
	}
	if m, ok := p.cache.Lookup(n, cnstr); ok {
		tracer().Debugf("cache hit for node %d under %v", n, cnstr)
		p.applyMeasurement(box, m)
		if full, okFull := p.cache.LookupFull(n, cnstr); okFull {
			p.applyPositions(full)
		}
		return m, nil
	}
	var m measurement
	var err error
	switch box.Context {
	case boxtree.InlineContext:
		m, err = p.layoutInline(n, cnstr)
	case boxtree.FlexContext:
		m, err = p.layoutWithSolver(n, cnstr, p.flex)
	case boxtree.GridContext:
		m, err = p.layoutWithSolver(n, cnstr, p.grid)
	default:
		m, err = p.layoutBlock(n, cnstr)
	}
	if err != nil {
		return measurement{}, err
	}
	p.cache.Store(n, cnstr, m)
	p.applyMeasurement(box, m)
	return m, nil
}

func (p *pass) applyMeasurement(box *boxtree.TreeBox, m measurement) {
	box.Size = frame.Size{W: css.SomeDimen(m.size.X), H: css.SomeDimen(m.size.Y)}
	box.EscTop = css.Dimen()
	box.EscBot = css.Dimen()
	if m.hasEscTop {
		box.EscTop = css.SomeDimen(m.escTop)
	}
	if m.hasEscBot {
		box.EscBot = css.SomeDimen(m.escBot)
	}
	box.SizeUnresolved = m.unresolved
}

func (p *pass) applyPositions(full layoutSlot) {
	for ch, pos := range full.positions {
		if cb := p.tree.Box(ch); cb != nil {
			cb.Pos = pos
			cb.Positioned = true
		}
	}
}

// --- Inline runs -----------------------------------------------------------

// layoutInline hands a block container spanning an inline context to the
// inline-text collaborator. The run is an opaque, always-blocking child
// contribution; it never escapes margins.
func (p *pass) layoutInline(n boxtree.NodeIndex, cnstr Constraint) (measurement, error) {
	availW := cnstr.W.UnwrapOr(0)
	if p.inline == nil {
		tracer().Errorf("no inline measurer configured, node %d falls back to zero size", n)
		return measurement{unresolved: true}, nil
	}
	res, err := p.inline.Measure(RunView{tree: p.tree, node: n}, availW)
	if err != nil {
		tracer().Errorf("inline measurement of node %d failed: %v", n, err)
		return measurement{unresolved: true}, nil
	}
	return measurement{
		size:     dimen.Point{X: availW, Y: res.Height},
		baseline: res.Baseline,
	}, nil
}

// --- External solvers ------------------------------------------------------

// layoutWithSolver hands a flex/grid container to an external solver and
// writes the placements back exactly as block flow's positioning pass
// would. A failing or missing solver degrades to an unresolved zero-size
// box; only a corrupt tree aborts the pass.
func (p *pass) layoutWithSolver(n boxtree.NodeIndex, cnstr Constraint, solver FlexSolver) (measurement, error) {
	box := p.tree.Box(n)
	if solver == nil {
		tracer().Errorf("no solver for %v context, node %d falls back to zero size", box.Context, n)
		return measurement{unresolved: true}, nil
	}
	var participating []boxtree.NodeIndex
	for _, ch := range box.Children {
		cb := p.tree.Box(ch)
		if cb == nil {
			return measurement{}, core.Error(core.EINVALID, "dangling box index %d", ch)
		}
		if cb.InFlow() {
			participating = append(participating, ch)
		}
	}
	view := ChildView{tree: p.tree, container: n, children: participating, avail: cnstr}
	measureFn := func(child boxtree.NodeIndex, cn Constraint) (dimen.Point, error) {
		m, err := p.measure(child, cn)
		return m.size, err
	}
	placements, err := solver.Solve(view, measureFn)
	if err != nil {
		tracer().Errorf("solver failed for node %d: %v", n, err)
		return measurement{unresolved: true}, nil
	}
	positions := make(map[boxtree.NodeIndex]dimen.Point, len(placements))
	var extent dimen.Point
	for _, pl := range placements {
		cb := p.tree.Box(pl.Child)
		if cb == nil {
			return measurement{}, core.Error(core.EINVALID, "solver placed dangling index %d", pl.Child)
		}
		cb.Size = frame.Size{W: css.SomeDimen(pl.Size.X), H: css.SomeDimen(pl.Size.Y)}
		cb.Pos = pl.Pos
		cb.Positioned = true
		positions[pl.Child] = pl.Pos
		extent.X = dimen.Max(extent.X, pl.Pos.X+pl.Size.X)
		extent.Y = dimen.Max(extent.Y, pl.Pos.Y+pl.Size.Y)
	}
	size := dimen.Point{
		X: cnstr.W.UnwrapOr(extent.X),
		Y: cnstr.H.UnwrapOr(extent.Y),
	}
	p.cache.StoreFull(n, cnstr, size, positions)
	return measurement{size: size}, nil
}
