package layout

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// Engine owns the layout state of one document: the box tree, the cache
// parallel to it, and the dirty tracker. One engine is exclusively owned by
// one goroutine; independent documents with separate engines may be laid
// out concurrently without locking.
type Engine struct {
	tree   *boxtree.BoxTree
	cache  *Cache
	dirty  *DirtyTracker
	inline InlineMeasurer
	flex   FlexSolver
	grid   FlexSolver
	last   *Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithInlineMeasurer installs the inline-text collaborator.
func WithInlineMeasurer(m InlineMeasurer) Option {
	return func(e *Engine) { e.inline = m }
}

// WithFlexSolver installs the external solver for flex containers.
func WithFlexSolver(s FlexSolver) Option {
	return func(e *Engine) { e.flex = s }
}

// WithGridSolver installs the external solver for grid containers.
func WithGridSolver(s FlexSolver) Option {
	return func(e *Engine) { e.grid = s }
}

// NewEngine creates a layout engine for a box tree.
func NewEngine(tree *boxtree.BoxTree, opts ...Option) *Engine {
	cache := NewCache(tree.N())
	e := &Engine{
		tree:  tree,
		cache: cache,
		dirty: newDirtyTracker(tree, cache),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of one completed layout pass. Positions are
// relative to the respective parent's content origin, never absolute.
type Result struct {
	Content    dimen.Point // border-box size of the root
	Positions  map[boxtree.NodeIndex]dimen.Point
	Unresolved []boxtree.NodeIndex // boxes that got a zero-size fallback
}

// Layout performs a pass over the whole document under a given viewport
// size, returning the root's content size and the relative-position map.
//
// A pass either completes or is discarded: on a fatal error (corrupt tree)
// the previous result is returned alongside the error, stale but
// consistent, never partially computed geometry.
func (e *Engine) Layout(view dimen.Point) (*Result, error) {
	if e.tree == nil || e.tree.Root() == boxtree.Null {
		return e.last, core.Error(core.EMISSING, "no box tree to lay out")
	}
	e.cache.Resize(e.tree.N())
	p := &pass{tree: e.tree, cache: e.cache, inline: e.inline, flex: e.flex, grid: e.grid}
	if err := e.reflowLocalRoots(p); err != nil {
		tracer().Errorf("layout pass rejected: %v", err)
		return e.last, err
	}
	tracer().Infof("layout pass over %d boxes, viewport %v x %v", e.tree.N(), view.X, view.Y)
	cnstr := FixedConstraint(view.X, view.Y)
	m, err := p.measure(e.tree.Root(), cnstr)
	if err != nil {
		tracer().Errorf("layout pass rejected: %v", err)
		return e.last, err
	}
	root := e.tree.Box(e.tree.Root())
	root.Pos = dimen.Origin
	root.Positioned = true
	res := e.collectResult(m)
	e.last = res
	e.dirty.Reset()
	return res, nil
}

// reflowLocalRoots re-measures boxes invalidated with local-reflow severity
// before the main pass. If a run's content height is unchanged the
// invalidation stays local; otherwise it escalates to sizing-only on the
// block ancestor.
func (e *Engine) reflowLocalRoots(p *pass) error {
	for _, r := range e.dirty.LayoutRoots() {
		rec, ok := e.dirty.record(r)
		if !ok || rec.severity != LocalReflow {
			continue
		}
		availW, known := e.contentWidthOf(r)
		if !known {
			// never laid out; the main pass covers it
			continue
		}
		m, err := p.measure(r, WidthConstraint(availW))
		if err != nil {
			return err
		}
		if rec.hadPrev && m.size.Y == rec.prevH {
			tracer().Debugf("local reflow of node %d kept height %v", r, rec.prevH)
			continue
		}
		parent := e.tree.Box(r).Parent
		if parent != boxtree.Null {
			e.dirty.invalidateSizing(parent)
		}
	}
	return nil
}

// contentWidthOf derives a box's content width from its last computed size
// and its rims.
func (e *Engine) contentWidthOf(n boxtree.NodeIndex) (dimen.Dimen, bool) {
	box := e.tree.Box(n)
	if box == nil || !box.Size.W.IsAbsolute() {
		return 0, false
	}
	st := box.Styles
	w := box.Size.W.Unwrap() -
		st.Padding[frame.Left].UnwrapOr(0) - st.Padding[frame.Right].UnwrapOr(0) -
		st.BorderWidth[frame.Left].UnwrapOr(0) - st.BorderWidth[frame.Right].UnwrapOr(0)
	return w, true
}

func (e *Engine) collectResult(m measurement) *Result {
	res := &Result{
		Content:   m.size,
		Positions: make(map[boxtree.NodeIndex]dimen.Point),
	}
	e.collect(e.tree.Root(), res)
	return res
}

func (e *Engine) collect(n boxtree.NodeIndex, res *Result) {
	box := e.tree.Box(n)
	if box == nil {
		return
	}
	if box.Positioned {
		res.Positions[n] = box.Pos
	}
	if box.SizeUnresolved {
		res.Unresolved = append(res.Unresolved, n)
	}
	for _, ch := range box.Children {
		e.collect(ch, res)
	}
}

// Invalidate feeds one (node, change-kind) event to the dirty tracker.
func (e *Engine) Invalidate(n boxtree.NodeIndex, k ChangeKind) {
	e.cache.Resize(e.tree.N())
	e.dirty.Invalidate(n, k)
}

// EscapedMargins returns the margins a box exposed through its own edges
// for an ancestor to collapse, already collapsed with the box's own margin
// on that edge. Unset if nothing escaped in the last pass.
func (e *Engine) EscapedMargins(n boxtree.NodeIndex) (top, bot css.DimenT) {
	box := e.tree.Box(n)
	if box == nil {
		return css.Dimen(), css.Dimen()
	}
	return box.EscTop, box.EscBot
}

// CacheStats returns the hit and miss counters of the layout cache.
func (e *Engine) CacheStats() (hits, misses uint64) {
	return e.cache.Hits(), e.cache.Misses()
}
