package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/cords"
)

// RunView is a read-only view of the inline content of a block container,
// handed to the inline-text collaborator. The collaborator must not retain
// it beyond the call.
type RunView struct {
	tree *boxtree.BoxTree
	node boxtree.NodeIndex
}

// Container returns the index of the block container owning the inline run.
func (v RunView) Container() boxtree.NodeIndex {
	return v.node
}

// Text returns the concatenated text content of the run's text boxes.
func (v RunView) Text() string {
	s := ""
	for _, ch := range v.tree.Box(v.node).Children {
		c := v.tree.Box(ch)
		if c.IsText {
			s += c.Text.String()
		}
	}
	return s
}

// Cords returns the text content of the run's text boxes without copying.
func (v RunView) Cords() []cords.Cord {
	var cc []cords.Cord
	for _, ch := range v.tree.Box(v.node).Children {
		c := v.tree.Box(ch)
		if c.IsText {
			cc = append(cc, c.Text)
		}
	}
	return cc
}

// Preserved returns true if the run's whitespace is to be preserved.
func (v RunView) Preserved() bool {
	for _, ch := range v.tree.Box(v.node).Children {
		c := v.tree.Box(ch)
		if c.IsText && c.Styles.WhiteSpace == frame.WhiteSpacePre {
			return true
		}
	}
	return false
}

// InlineResult is the contribution of an inline run to block flow: total
// content height plus the baseline of the last line, both relative to the
// run's top edge.
type InlineResult struct {
	Height   dimen.Dimen
	Baseline dimen.Dimen
}

// InlineMeasurer is the inline-text collaborator. Given a block container
// whose in-flow children form a text/inline run, it returns the run's
// height and baseline for the given available width. Block flow treats the
// run as a single opaque, always-blocking child contribution.
//
// Measure is invoked synchronously from a layout pass and must not retain
// the view.
type InlineMeasurer interface {
	Measure(run RunView, avail dimen.Dimen) (InlineResult, error)
}
