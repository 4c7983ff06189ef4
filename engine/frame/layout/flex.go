package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
)

// ChildView is a read-only view of a flex/grid container's participating
// children. Children marked not-participating (display:none, out-of-flow)
// are excluded. A solver must not retain the view beyond the call.
type ChildView struct {
	tree      *boxtree.BoxTree
	container boxtree.NodeIndex
	children  []boxtree.NodeIndex
	avail     Constraint
}

// Container returns the index of the flex/grid container.
func (v ChildView) Container() boxtree.NodeIndex {
	return v.container
}

// Available returns the constraint the container is being laid out under.
func (v ChildView) Available() Constraint {
	return v.avail
}

// Len returns the number of participating children.
func (v ChildView) Len() int {
	return len(v.children)
}

// Child returns the index of the i-th participating child.
func (v ChildView) Child(i int) boxtree.NodeIndex {
	return v.children[i]
}

// Styles returns the resolved styling of the i-th participating child.
func (v ChildView) Styles(i int) frame.Styling {
	return v.tree.Box(v.children[i]).Styles
}

// MeasureFn is the measurement callback handed to an external solver. It
// recurses into the engine's cache and block-flow machinery for non-flex
// children.
type MeasureFn func(child boxtree.NodeIndex, cnstr Constraint) (dimen.Point, error)

// Placement is a solver's verdict for one child: final border-box size and
// position relative to the container's content origin.
type Placement struct {
	Child boxtree.NodeIndex
	Size  dimen.Point
	Pos   dimen.Point
}

// FlexSolver is the external flex/grid collaborator. Solve receives a
// read-only child view and a measurement callback, and returns one
// placement per participating child; the engine writes placements back
// exactly as block flow's positioning pass would.
type FlexSolver interface {
	Solve(view ChildView, measure MeasureFn) ([]Placement, error)
}
