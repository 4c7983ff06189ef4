package layout

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySeverity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	cases := []struct {
		kind   ChangeKind
		inline bool
		want   Severity
	}{
		{ChangePaint, false, NoImpact},
		{ChangePaint, true, NoImpact},
		{ChangeTextContent, true, LocalReflow},
		{ChangeTextContent, false, SizingOnly},
		{ChangeFont, true, LocalReflow},
		{ChangeSize, false, SizingOnly},
		{ChangeBorder, true, SizingOnly},
		{ChangePadding, false, SizingOnly},
		{ChangeDisplay, false, FullRelayout},
		{ChangePosition, true, FullRelayout},
		{ChangeFloat, false, FullRelayout},
		{ChangeStructure, true, FullRelayout},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.kind, c.inline), "kind %d inline=%v", c.kind, c.inline)
	}
}

// chain builds root -> a -> b -> c and pre-populates every cache entry.
func chainFixture() (*DirtyTracker, [4]boxtree.NodeIndex) {
	tree, root := testTree()
	a := addBlock(tree, root, nil)
	b := addBlock(tree, a, nil)
	c := addBlock(tree, b, nil)
	cache := NewCache(tree.N())
	for _, n := range []boxtree.NodeIndex{root, a, b, c} {
		cache.Store(n, WidthConstraint(px(100)), measurement{size: dimen.Point{X: px(100)}})
	}
	return newDirtyTracker(tree, cache), [4]boxtree.NodeIndex{root, a, b, c}
}

func TestNoImpactLeavesCacheAlone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	d, ns := chainFixture()
	d.Invalidate(ns[3], ChangePaint)
	assert.False(t, d.Dirty())
	for _, n := range ns {
		assert.False(t, d.cache.IsEmpty(n))
	}
}

func TestSizingInvalidationClearsUpward(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	d, ns := chainFixture()
	root, a, b, c := ns[0], ns[1], ns[2], ns[3]
	d.Invalidate(c, ChangeSize)
	assert.True(t, d.cache.IsEmpty(c))
	assert.True(t, d.cache.IsEmpty(b))
	assert.True(t, d.cache.IsEmpty(a))
	assert.True(t, d.cache.IsEmpty(root))
	assert.True(t, d.Dirty())
	assert.Equal(t, []boxtree.NodeIndex{c}, d.LayoutRoots())
}

func TestUpwardClearingStopsAtEmptyAncestor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	d, ns := chainFixture()
	root, a, _, c := ns[0], ns[1], ns[2], ns[3]
	d.cache.ClearNode(a) // a is already pending from an earlier event
	d.Invalidate(c, ChangeSize)
	assert.True(t, d.cache.IsEmpty(c))
	assert.True(t, d.cache.IsEmpty(ns[2]))
	assert.False(t, d.cache.IsEmpty(root), "clearing must stop below the empty ancestor")
}

func TestLayoutRootsPruneDescendants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	d, ns := chainFixture()
	a, c := ns[1], ns[3]
	d.Invalidate(c, ChangeSize)
	d.Invalidate(a, ChangeSize)
	roots := d.LayoutRoots()
	require.Len(t, roots, 1)
	assert.Equal(t, a, roots[0], "c is subsumed by its pending ancestor a")
}

func TestFullRelayoutStopsAtFormattingBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	bfc := addBlock(tree, root, func(st *frame.Styling) {
		st.Overflow = frame.OverflowHidden
	})
	inner := addBlock(tree, bfc, nil)
	leaf := addBlock(tree, inner, nil)
	d := newDirtyTracker(tree, NewCache(tree.N()))
	d.Invalidate(leaf, ChangeStructure)
	assert.Equal(t, []boxtree.NodeIndex{bfc}, d.LayoutRoots())
}

func TestTextEditTargetsInlineContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	para := tree.AddBox(root, boxtree.TreeBox{
		Styles:  frame.DefaultStyling(),
		Context: boxtree.InlineContext,
	})
	txt := tree.AddBox(para, boxtree.TreeBox{
		Styles: frame.DefaultStyling(),
		IsText: true,
		Text:   boxtree.TextCord("lorem ipsum"),
	})
	cache := NewCache(tree.N())
	cache.Store(root, WidthConstraint(px(100)), measurement{size: dimen.Point{X: px(100)}})
	d := newDirtyTracker(tree, cache)
	d.Invalidate(txt, ChangeTextContent)
	roots := d.LayoutRoots()
	require.Len(t, roots, 1)
	assert.Equal(t, para, roots[0], "a text edit re-flows its inline container, not the block ancestry")
	rec, ok := d.record(para)
	require.True(t, ok)
	assert.Equal(t, LocalReflow, rec.severity)
	assert.False(t, d.cache.IsEmpty(root), "local reflow must not touch the block ancestry")
}

func TestResetForgetsRoots(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	d, ns := chainFixture()
	d.Invalidate(ns[3], ChangeSize)
	require.True(t, d.Dirty())
	d.Reset()
	assert.False(t, d.Dirty())
	assert.Empty(t, d.LayoutRoots())
}
