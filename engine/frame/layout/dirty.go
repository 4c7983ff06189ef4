package layout

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
)

// ChangeKind describes a style or content mutation reported to the engine.
// The dirty tracker consumes (node, change-kind) events; it does not itself
// observe the document.
type ChangeKind uint8

// Enum values for type ChangeKind
const (
	ChangePaint       ChangeKind = iota // color, background, visibility
	ChangeTextContent                   // text edits
	ChangeFont                          // font family/size/weight
	ChangeSize                          // width, height, min/max constraints
	ChangeBorder                        // border widths
	ChangePadding                       // padding
	ChangeDisplay                       // display mode
	ChangePosition                      // position property
	ChangeFloat                         // float/clear
	ChangeStructure                     // children added/removed/reordered
)

// Severity is the classified layout impact of a mutation, strictly ordered
// from no impact to unrestricted subtree relayout.
type Severity uint8

// Enum values for type Severity
const (
	NoImpact Severity = iota
	LocalReflow
	SizingOnly
	FullRelayout
)

func (s Severity) String() string {
	switch s {
	case NoImpact:
		return "no-impact"
	case LocalReflow:
		return "local-reflow"
	case SizingOnly:
		return "sizing-only"
	}
	return "full-relayout"
}

// Classify derives the layout impact of a change from the mutated property
// kind and from whether the box participates in inline flow.
func Classify(k ChangeKind, inlineParticipant bool) Severity {
	switch k {
	case ChangePaint:
		return NoImpact
	case ChangeTextContent, ChangeFont:
		if inlineParticipant {
			return LocalReflow
		}
		return SizingOnly
	case ChangeSize, ChangeBorder, ChangePadding:
		return SizingOnly
	case ChangeDisplay, ChangePosition, ChangeFloat, ChangeStructure:
		return FullRelayout
	}
	return FullRelayout
}

// rootRecord remembers why a box became a layout root, plus the height a
// local inline reflow has to re-verify.
type rootRecord struct {
	severity Severity
	prevH    dimen.Dimen
	hadPrev  bool
}

// DirtyTracker classifies mutations and invalidates the cache upward only
// as far as necessary. Layout roots are kept in an index-ordered set so a
// pass processes them deterministically.
type DirtyTracker struct {
	tree    *boxtree.BoxTree
	cache   *Cache
	roots   *treeset.Set
	records map[boxtree.NodeIndex]rootRecord
}

func newDirtyTracker(tree *boxtree.BoxTree, cache *Cache) *DirtyTracker {
	return &DirtyTracker{
		tree:    tree,
		cache:   cache,
		roots:   treeset.NewWithIntComparator(),
		records: make(map[boxtree.NodeIndex]rootRecord),
	}
}

// Invalidate processes one (node, change-kind) event.
func (d *DirtyTracker) Invalidate(n boxtree.NodeIndex, k ChangeKind) {
	box := d.tree.Box(n)
	if box == nil {
		return
	}
	sev := Classify(k, d.participatesInline(n))
	tracer().Debugf("invalidate node %d: %v -> %v", n, k, sev)
	switch sev {
	case NoImpact:
		return
	case LocalReflow:
		target := d.enclosingInlineContext(n)
		if target == boxtree.Null {
			d.invalidateSizing(n)
			return
		}
		rec := rootRecord{severity: LocalReflow}
		if h := d.tree.Box(target).Size.H; h.IsAbsolute() {
			rec.prevH, rec.hadPrev = h.Unwrap(), true
		}
		d.cache.ClearNode(target)
		d.markRoot(target, rec)
	case SizingOnly:
		d.invalidateSizing(n)
	case FullRelayout:
		d.clearSubtree(n)
		d.clearUpward(d.tree.Box(n).Parent)
		boundary := d.nearestLayoutBoundary(n)
		d.markRoot(boundary, rootRecord{severity: FullRelayout})
	}
}

func (d *DirtyTracker) invalidateSizing(n boxtree.NodeIndex) {
	d.cache.ClearNode(n)
	d.clearUpward(d.tree.Box(n).Parent)
	d.markRoot(n, rootRecord{severity: SizingOnly})
}

// clearUpward clears ancestor caches, stopping as soon as an ancestor whose
// cache is already empty is reached: that ancestor is already pending.
func (d *DirtyTracker) clearUpward(n boxtree.NodeIndex) {
	for n != boxtree.Null {
		if d.cache.IsEmpty(n) {
			return
		}
		d.cache.ClearNode(n)
		n = d.tree.Box(n).Parent
	}
}

func (d *DirtyTracker) clearSubtree(n boxtree.NodeIndex) {
	box := d.tree.Box(n)
	if box == nil {
		return
	}
	d.cache.ClearNode(n)
	for _, ch := range box.Children {
		d.clearSubtree(ch)
	}
}

// participatesInline returns true if the box is a text run or an
// inline-level box inside an inline context.
func (d *DirtyTracker) participatesInline(n boxtree.NodeIndex) bool {
	box := d.tree.Box(n)
	if box.IsText || box.Styles.Display.InlineLevel() {
		return true
	}
	if p := d.tree.Box(box.Parent); p != nil {
		return p.Context == boxtree.InlineContext
	}
	return false
}

// enclosingInlineContext walks up to the box spanning the inline formatting
// context the mutated box participates in.
func (d *DirtyTracker) enclosingInlineContext(n boxtree.NodeIndex) boxtree.NodeIndex {
	for n != boxtree.Null {
		box := d.tree.Box(n)
		if box.Context == boxtree.InlineContext {
			return n
		}
		n = box.Parent
	}
	return boxtree.Null
}

// nearestLayoutBoundary walks up to the closest ancestor from which layout
// can restart independently: a box establishing its own formatting context,
// or the tree root.
func (d *DirtyTracker) nearestLayoutBoundary(n boxtree.NodeIndex) boxtree.NodeIndex {
	for n != boxtree.Null {
		box := d.tree.Box(n)
		if n == d.tree.Root() || box.Styles.EstablishesBFC() {
			return n
		}
		n = box.Parent
	}
	return d.tree.Root()
}

func (d *DirtyTracker) markRoot(n boxtree.NodeIndex, rec rootRecord) {
	if old, ok := d.records[n]; ok && old.severity >= rec.severity {
		return
	}
	d.roots.Add(int(n))
	d.records[n] = rec
}

// Dirty returns true if any mutation since the last pass requires layout.
func (d *DirtyTracker) Dirty() bool {
	return !d.roots.Empty()
}

// LayoutRoots returns the pending layout roots in index order, pruned:
// a root with another pending root among its ancestors is subsumed by it
// and dropped.
func (d *DirtyTracker) LayoutRoots() []boxtree.NodeIndex {
	var roots []boxtree.NodeIndex
	for _, v := range d.roots.Values() {
		n := boxtree.NodeIndex(v.(int))
		if !d.hasAncestorRoot(n) {
			roots = append(roots, n)
		}
	}
	return roots
}

func (d *DirtyTracker) hasAncestorRoot(n boxtree.NodeIndex) bool {
	p := d.tree.Box(n).Parent
	for p != boxtree.Null {
		if d.roots.Contains(int(p)) {
			return true
		}
		p = d.tree.Box(p).Parent
	}
	return false
}

func (d *DirtyTracker) record(n boxtree.NodeIndex) (rootRecord, bool) {
	rec, ok := d.records[n]
	return rec, ok
}

// Reset forgets all pending layout roots, to be called after a completed
// pass.
func (d *DirtyTracker) Reset() {
	d.roots.Clear()
	d.records = make(map[boxtree.NodeIndex]rootRecord)
}
