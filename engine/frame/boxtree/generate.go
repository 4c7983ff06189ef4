package boxtree

// This module has knowledge about:
// - which boxes to create for each styled node
// - which anonymous boxes have to be synthesized around runs of inline content
// - which formatting context a box spans for its children

import (
	"errors"

	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style/css"
)

var ErrStyledRootIsNull = errors.New("styled root is null")
var ErrNoBoxTreeCreated = errors.New("no box tree created")

// BuildBoxTree creates a render box tree from a styled tree.
//
// Nodes with display:none do not produce boxes, nor do their descendants.
// Runs of inline-level children inside a block container get wrapped into
// anonymous block boxes, and every container is tagged with the formatting
// context owning its children.
func BuildBoxTree(styledRoot frame.StyledNode) (*BoxTree, error) {
	if styledRoot == nil {
		return nil, ErrStyledRootIsNull
	}
	tracer().Debugf("creating box tree")
	t := NewBoxTree()
	root := createBoxesForSubtree(t, Null, styledRoot)
	if root == Null {
		tracer().Errorf("no box created for root style node")
		return nil, ErrNoBoxTreeCreated
	}
	attributeContexts(t, t.Root())
	tracer().Infof("box tree with %d nodes created", t.N())
	return t, nil
}

// createBoxesForSubtree makes a box for a styled node and recurses into its
// children. Returns Null for nodes not producing a box.
func createBoxesForSubtree(t *BoxTree, parent NodeIndex, sn frame.StyledNode) NodeIndex {
	if sn.IsText() {
		return createTextBox(t, parent, sn)
	}
	styles := sn.Styling()
	if styles.Display.Contains(frame.DisplayNone) {
		tracer().Debugf("display:none for %s, suppressing subtree", sn.Name())
		return Null
	}
	if styles.Display == frame.NoMode {
		styles.Display = frame.BlockMode | frame.InnerBlockMode
	}
	idx := t.AddBox(parent, TreeBox{Styles: styles, Domnode: sn})
	for _, ch := range sn.Children() {
		createBoxesForSubtree(t, idx, ch)
	}
	return idx
}

func createTextBox(t *BoxTree, parent NodeIndex, sn frame.StyledNode) NodeIndex {
	styles := frame.DefaultStyling()
	styles.Display = frame.InlineMode | frame.InnerInlineMode
	styles.Width = css.FitContent()
	styles.Height = css.FitContent()
	if p := t.Box(parent); p != nil {
		styles.WhiteSpace = p.Styles.WhiteSpace
	}
	return t.AddBox(parent, TreeBox{
		Styles:  styles,
		Domnode: sn,
		IsText:  true,
		Text:    TextCord(sn.Text()),
	})
}

// attributeContexts decides, top-down, which formatting context each box
// spans for its children, synthesizing anonymous wrapper boxes where a block
// container holds a mix of block-level and inline-level children.
func attributeContexts(t *BoxTree, n NodeIndex) {
	box := t.Box(n)
	if box == nil || box.IsText {
		return
	}
	switch {
	case box.Styles.Display.Contains(frame.FlexMode):
		box.Context = FlexContext
	case box.Styles.Display.Contains(frame.GridMode):
		box.Context = GridContext
	default:
		// flowContext may synthesize boxes and grow the arena, so the
		// node has to be re-fetched afterwards
		ctx := flowContext(t, n)
		t.Box(n).Context = ctx
	}
	for _, ch := range t.Box(n).Children {
		attributeContexts(t, ch)
	}
}

// flowContext tags a flow container as a block or inline context. A container
// with both block-level and inline-level children stays a block context, with
// each maximal run of inline children moved into an anonymous block box.
func flowContext(t *BoxTree, n NodeIndex) ContextKind {
	box := t.Box(n)
	hasBlock, hasInline := false, false
	for _, ch := range box.Children {
		c := t.Box(ch)
		if inlineLevel(c) {
			hasInline = true
		} else {
			hasBlock = true
		}
	}
	if hasInline && !hasBlock {
		return InlineContext
	}
	if hasInline && hasBlock {
		wrapInlineRuns(t, n)
	}
	return BlockContext
}

func inlineLevel(b *TreeBox) bool {
	return b.IsText || b.Styles.Display.InlineLevel()
}

// wrapInlineRuns synthesizes the anonymous-box "mini hierarchy" for a mixed
// container: every maximal run of inline-level children is reparented under a
// fresh anonymous block box spanning an inline context. Whitespace-only runs
// between block siblings are dropped instead, unless whitespace is preserved.
func wrapInlineRuns(t *BoxTree, n NodeIndex) {
	children := t.Box(n).Children
	var rebuilt []NodeIndex
	var run []NodeIndex
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runIsDroppableWhitespace(t, run) {
			for _, ch := range run {
				t.Box(ch).Parent = Null
			}
			run = nil
			return
		}
		anon := makeAnonymousBox(t)
		for _, ch := range run {
			t.Box(ch).Parent = anon
			t.Box(anon).Children = append(t.Box(anon).Children, ch)
		}
		t.Box(anon).Parent = n
		rebuilt = append(rebuilt, anon)
		run = nil
	}
	for _, ch := range children {
		if inlineLevel(t.Box(ch)) {
			run = append(run, ch)
			continue
		}
		flush()
		rebuilt = append(rebuilt, ch)
	}
	flush()
	t.Box(n).Children = rebuilt
	tracer().Debugf("wrapped inline runs, container now has %d children", len(rebuilt))
}

func runIsDroppableWhitespace(t *BoxTree, run []NodeIndex) bool {
	for _, ch := range run {
		c := t.Box(ch)
		if !c.WhitespaceOnly() || c.Styles.WhiteSpace == frame.WhiteSpacePre {
			return false
		}
	}
	return true
}

func makeAnonymousBox(t *BoxTree) NodeIndex {
	styles := frame.DefaultStyling()
	styles.Display = frame.BlockMode | frame.InnerInlineMode
	anon := t.AddBox(Null, TreeBox{Styles: styles, Anonymous: true})
	t.Box(anon).Context = InlineContext
	return anon
}
