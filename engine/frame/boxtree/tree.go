package boxtree

import (
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style/css"
	"github.com/npillmayer/cords"
)

// NodeIndex addresses a box within the arena of a BoxTree. Indices are
// stable for the lifetime of a node.
type NodeIndex int32

// Null is the nil value for node indices.
const Null NodeIndex = -1

// ContextKind tags the formatting context owning a box's children.
type ContextKind uint8

// Enum values for type ContextKind
const (
	NoContext ContextKind = iota
	BlockContext
	InlineContext
	FlexContext
	GridContext
)

func (k ContextKind) String() string {
	switch k {
	case BlockContext:
		return "block"
	case InlineContext:
		return "inline"
	case FlexContext:
		return "flex"
	case GridContext:
		return "grid"
	}
	return "none"
}

// TreeBox is one node of a box tree. The styling fields are written by tree
// construction and style resolution; the computed fields are written during
// a layout pass only, size exactly once per pass, before any ancestor reads
// it.
type TreeBox struct {
	Parent   NodeIndex
	Children []NodeIndex // document order

	Styles    frame.Styling
	Context   ContextKind
	Domnode   frame.StyledNode // nil for anonymous boxes
	Anonymous bool
	IsText    bool
	Text      cords.Cord // content of text runs

	// computed during a layout pass
	Size           frame.Size  // outer (border-box) size, unset before the pass
	Pos            dimen.Point // relative to the parent's content origin
	Positioned     bool
	EscTop, EscBot css.DimenT // margin not yet spent, readable by an ancestor
	SizeUnresolved bool       // zero-size fallback was substituted
}

// WhitespaceOnly returns true for text runs consisting solely of whitespace.
func (b *TreeBox) WhitespaceOnly() bool {
	return b.IsText && strings.TrimSpace(b.Text.String()) == ""
}

// InFlow returns true if this box participates in normal flow.
func (b *TreeBox) InFlow() bool {
	return b.Styles.InFlow()
}

// ResetComputed clears all computed layout results of a box.
func (b *TreeBox) ResetComputed() {
	b.Size = frame.Size{}
	b.Pos = dimen.Origin
	b.Positioned = false
	b.EscTop = css.Dimen()
	b.EscBot = css.Dimen()
	b.SizeUnresolved = false
}

// BoxTree is an arena of boxes mirroring a styled document tree.
type BoxTree struct {
	nodes []TreeBox
	root  NodeIndex
}

// NewBoxTree creates an empty box tree.
func NewBoxTree() *BoxTree {
	return &BoxTree{root: Null}
}

// Root returns the index of the root box, or Null for an empty tree.
func (t *BoxTree) Root() NodeIndex {
	return t.root
}

// N returns the number of arena slots, including detached ones.
func (t *BoxTree) N() int {
	return len(t.nodes)
}

// Valid returns true if n addresses a slot of the arena.
func (t *BoxTree) Valid(n NodeIndex) bool {
	return n >= 0 && int(n) < len(t.nodes)
}

// Box returns the box at index n, or nil if n does not address a node.
// The returned pointer stays valid until the arena grows.
func (t *BoxTree) Box(n NodeIndex) *TreeBox {
	if !t.Valid(n) {
		return nil
	}
	return &t.nodes[n]
}

// AddBox appends a new box to the arena and links it as the last child of
// parent. With parent Null the box becomes the root.
func (t *BoxTree) AddBox(parent NodeIndex, box TreeBox) NodeIndex {
	box.Parent = parent
	box.EscTop = css.Dimen()
	box.EscBot = css.Dimen()
	n := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, box)
	if parent == Null {
		if t.root == Null {
			t.root = n
		}
	} else if p := t.Box(parent); p != nil {
		p.Children = append(p.Children, n)
	}
	return n
}

// AppendChild re-links an existing box as the last child of parent.
func (t *BoxTree) AppendChild(parent, child NodeIndex) {
	c := t.Box(child)
	if c == nil {
		return
	}
	if c.Parent != Null {
		t.RemoveChild(c.Parent, child)
	}
	c.Parent = parent
	if p := t.Box(parent); p != nil {
		p.Children = append(p.Children, child)
	}
}

// RemoveChild detaches a subtree from its parent. The arena slots stay
// allocated; detached nodes are simply unreachable from the root.
func (t *BoxTree) RemoveChild(parent, child NodeIndex) {
	p := t.Box(parent)
	c := t.Box(child)
	if p == nil || c == nil || c.Parent != parent {
		return
	}
	for i, ch := range p.Children {
		if ch == child {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	c.Parent = Null
}

// ResetComputed clears the computed layout results of the whole tree.
func (t *BoxTree) ResetComputed() {
	for i := range t.nodes {
		t.nodes[i].ResetComputed()
	}
}
