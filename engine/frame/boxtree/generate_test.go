package boxtree

import (
	"testing"

	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode is a minimal styled-tree fixture.
type testNode struct {
	name     string
	text     string
	styles   frame.Styling
	children []*testNode
}

func (n *testNode) Styling() frame.Styling { return n.styles }
func (n *testNode) IsText() bool           { return n.text != "" }
func (n *testNode) Text() string           { return n.text }
func (n *testNode) Name() string           { return n.name }
func (n *testNode) Children() []frame.StyledNode {
	ch := make([]frame.StyledNode, len(n.children))
	for i, c := range n.children {
		ch[i] = c
	}
	return ch
}

func element(name string, display string, children ...*testNode) *testNode {
	st := frame.DefaultStyling()
	if d, err := frame.ParseDisplay(display); err == nil {
		st.Display = d
	}
	return &testNode{name: name, styles: st, children: children}
}

func text(s string) *testNode {
	return &testNode{name: "#text", text: s}
}

func TestBuildBoxTreeNullRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	_, err := BuildBoxTree(nil)
	assert.Equal(t, ErrStyledRootIsNull, err)
}

func TestBuildBoxTreeSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	doc := element("body", "block",
		element("div", "block"),
		element("div", "block"),
	)
	tree, err := BuildBoxTree(doc)
	require.NoError(t, err)
	root := tree.Box(tree.Root())
	require.NotNil(t, root)
	assert.Equal(t, BlockContext, root.Context)
	assert.Equal(t, 2, len(root.Children))
	for _, ch := range root.Children {
		assert.Equal(t, tree.Root(), tree.Box(ch).Parent)
	}
}

func TestBuildBoxTreeDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	doc := element("body", "block",
		element("div", "none", element("p", "block")),
		element("div", "block"),
	)
	tree, err := BuildBoxTree(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, len(tree.Box(tree.Root()).Children))
	assert.Equal(t, 2, tree.N())
}

func TestBuildBoxTreeInlineContext(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	doc := element("p", "block", text("hello "), text("world"))
	tree, err := BuildBoxTree(doc)
	require.NoError(t, err)
	root := tree.Box(tree.Root())
	assert.Equal(t, InlineContext, root.Context)
	assert.Equal(t, 2, len(root.Children))
	assert.True(t, tree.Box(root.Children[0]).IsText)
	assert.Equal(t, "hello ", tree.Box(root.Children[0]).Text.String())
}

func TestBuildBoxTreeAnonymousWrapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	doc := element("body", "block",
		text("some prose"),
		element("div", "block"),
		text("more prose"),
	)
	tree, err := BuildBoxTree(doc)
	require.NoError(t, err)
	root := tree.Box(tree.Root())
	assert.Equal(t, BlockContext, root.Context)
	require.Equal(t, 3, len(root.Children))
	first, mid, last := tree.Box(root.Children[0]), tree.Box(root.Children[1]), tree.Box(root.Children[2])
	assert.True(t, first.Anonymous)
	assert.Equal(t, InlineContext, first.Context)
	assert.False(t, mid.Anonymous)
	assert.True(t, last.Anonymous)
	assert.Equal(t, 1, len(first.Children))
	assert.True(t, tree.Box(first.Children[0]).IsText)
}

func TestBuildBoxTreeWhitespaceDropped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	doc := element("body", "block",
		element("div", "block"),
		text("\n   "),
		element("div", "block"),
	)
	tree, err := BuildBoxTree(doc)
	require.NoError(t, err)
	root := tree.Box(tree.Root())
	// inter-block whitespace is no content at all
	require.Equal(t, 2, len(root.Children))
	assert.False(t, tree.Box(root.Children[0]).Anonymous)
	assert.False(t, tree.Box(root.Children[1]).Anonymous)
}

func TestBuildBoxTreePreservedWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	pre := element("pre", "block",
		element("div", "block"),
		text("\n   "),
		element("div", "block"),
	)
	pre.styles.WhiteSpace = frame.WhiteSpacePre
	tree, err := BuildBoxTree(pre)
	require.NoError(t, err)
	root := tree.Box(tree.Root())
	// preserved whitespace stays, wrapped like any inline run
	require.Equal(t, 3, len(root.Children))
	assert.True(t, tree.Box(root.Children[1]).Anonymous)
}

func TestArenaReparenting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.box")
	defer teardown()
	//
	tree := NewBoxTree()
	root := tree.AddBox(Null, TreeBox{Styles: frame.DefaultStyling()})
	a := tree.AddBox(root, TreeBox{Styles: frame.DefaultStyling()})
	b := tree.AddBox(root, TreeBox{Styles: frame.DefaultStyling()})
	assert.Equal(t, []NodeIndex{a, b}, tree.Box(root).Children)
	tree.RemoveChild(root, a)
	assert.Equal(t, []NodeIndex{b}, tree.Box(root).Children)
	assert.Equal(t, Null, tree.Box(a).Parent)
	tree.AppendChild(b, a)
	assert.Equal(t, b, tree.Box(a).Parent)
	assert.True(t, tree.Valid(a))
	assert.False(t, tree.Valid(NodeIndex(99)))
}
