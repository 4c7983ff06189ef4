package layout

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/frame/boxtree"
	"github.com/npillmayer/boxflow/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lineMeasurer is a stand-in inline collaborator returning a settable
// fixed run height.
type lineMeasurer struct {
	h dimen.Dimen
}

func (f *lineMeasurer) Measure(run RunView, avail dimen.Dimen) (InlineResult, error) {
	return InlineResult{Height: f.h, Baseline: f.h * 4 / 5}, nil
}

func TestLayoutEmptyTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	e := NewEngine(boxtree.NewBoxTree())
	res, err := e.Layout(viewport())
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestLayoutRepeatsFromCache(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
		st.Margins[frame.Bottom] = css.SomeDimen(px(20))
	})
	b2 := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	e := NewEngine(tree)
	first, err := e.Layout(viewport())
	require.NoError(t, err)
	_, missesAfterFirst := e.CacheStats()
	second, err := e.Layout(viewport())
	require.NoError(t, err)
	hits, misses := e.CacheStats()
	assert.Equal(t, missesAfterFirst, misses, "second pass must not recompute anything")
	assert.NotZero(t, hits)
	assert.Equal(t, first.Positions[b2], second.Positions[b2])
	assert.Equal(t, first.Content, second.Content)
}

func TestPaintChangeSkipsLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	b1 := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	e := NewEngine(tree)
	_, err := e.Layout(viewport())
	require.NoError(t, err)
	e.Invalidate(b1, ChangePaint)
	_, missesBefore := e.CacheStats()
	_, err = e.Layout(viewport())
	require.NoError(t, err)
	_, misses := e.CacheStats()
	assert.Equal(t, missesBefore, misses)
}

func TestSizeChangeRecomputesGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	b1 := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	b2 := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	e := NewEngine(tree)
	res, err := e.Layout(viewport())
	require.NoError(t, err)
	require.Equal(t, px(50), res.Positions[b2].Y)

	tree.Box(b1).Styles.Height = css.SomeDimen(px(80))
	e.Invalidate(b1, ChangeSize)
	res, err = e.Layout(viewport())
	require.NoError(t, err)
	assert.Equal(t, px(80), res.Positions[b2].Y)
}

func TestRecomputationReproducesGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
		st.Margins[frame.Bottom] = css.SomeDimen(px(20))
	})
	b2 := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
		st.Margins[frame.Top] = css.SomeDimen(px(30))
	})
	e := NewEngine(tree)
	first, err := e.Layout(viewport())
	require.NoError(t, err)

	// drop cached state without any style change; recomputation must
	// reproduce the identical geometry
	e.Invalidate(b2, ChangeSize)
	second, err := e.Layout(viewport())
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Positions, second.Positions)
}

func inlineFixture() (*boxtree.BoxTree, boxtree.NodeIndex, boxtree.NodeIndex, boxtree.NodeIndex) {
	tree, root := testTree()
	para := tree.AddBox(root, boxtree.TreeBox{
		Styles:  frame.DefaultStyling(),
		Context: boxtree.InlineContext,
	})
	txt := tree.AddBox(para, boxtree.TreeBox{
		Styles: frame.DefaultStyling(),
		IsText: true,
		Text:   boxtree.TextCord("lorem ipsum dolor"),
	})
	below := tree.AddBox(root, boxtree.TreeBox{
		Styles:  frame.DefaultStyling(),
		Context: boxtree.BlockContext,
	})
	tree.Box(below).Styles.Height = css.SomeDimen(px(40))
	return tree, para, txt, below
}

func TestLocalReflowStopsOnUnchangedHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, _, txt, below := inlineFixture()
	m := &lineMeasurer{h: px(60)}
	e := NewEngine(tree, WithInlineMeasurer(m))
	res, err := e.Layout(viewport())
	require.NoError(t, err)
	require.Equal(t, px(60), res.Positions[below].Y)

	e.Invalidate(txt, ChangeTextContent)
	res, err = e.Layout(viewport())
	require.NoError(t, err)
	assert.Equal(t, px(60), res.Positions[below].Y)
	assert.False(t, e.cache.IsEmpty(e.tree.Root()), "unchanged run height must not climb past the paragraph")
}

func TestLocalReflowEscalatesOnHeightChange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, _, txt, below := inlineFixture()
	m := &lineMeasurer{h: px(60)}
	e := NewEngine(tree, WithInlineMeasurer(m))
	_, err := e.Layout(viewport())
	require.NoError(t, err)

	m.h = px(90) // the edited text now wraps to more lines
	e.Invalidate(txt, ChangeTextContent)
	res, err := e.Layout(viewport())
	require.NoError(t, err)
	assert.Equal(t, px(90), res.Positions[below].Y, "grown paragraph pushes the following block down")
}

func TestMissingInlineMeasurerDegradesToZeroSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, para, _, below := inlineFixture()
	e := NewEngine(tree)
	res, err := e.Layout(viewport())
	require.NoError(t, err, "a missing collaborator is not fatal")
	assert.Contains(t, res.Unresolved, para)
	assert.Equal(t, px(0), res.Positions[below].Y)
}

func TestLayoutKeepsPreviousResultOnError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	e := NewEngine(tree)
	first, err := e.Layout(viewport())
	require.NoError(t, err)

	// corrupt the tree: a child index pointing past the arena
	tree.Box(root).Children = append(tree.Box(root).Children, boxtree.NodeIndex(99))
	e.Invalidate(root, ChangeStructure)
	res, err := e.Layout(viewport())
	require.Error(t, err)
	assert.Same(t, first, res, "failed pass hands back the previous result")
}

// rowSolver is a minimal flex stand-in placing children side by side.
type rowSolver struct{}

func (rowSolver) Solve(view ChildView, measure MeasureFn) ([]Placement, error) {
	var pls []Placement
	x := dimen.Zero
	for i := 0; i < view.Len(); i++ {
		ch := view.Child(i)
		sz, err := measure(ch, Constraint{W: css.FitContent(), H: css.FitContent()})
		if err != nil {
			return nil, err
		}
		pls = append(pls, Placement{Child: ch, Size: sz, Pos: dimen.Point{X: x}})
		x += sz.X
	}
	return pls, nil
}

func flexFixture() (*boxtree.BoxTree, boxtree.NodeIndex, boxtree.NodeIndex) {
	tree, root := testTree()
	flexbox := tree.AddBox(root, boxtree.TreeBox{
		Styles:  frame.DefaultStyling(),
		Context: boxtree.FlexContext,
	})
	tree.Box(flexbox).Styles.Display = frame.BlockMode | frame.FlexMode
	addBlock(tree, flexbox, func(st *frame.Styling) {
		st.Width = css.SomeDimen(px(120))
		st.Height = css.SomeDimen(px(40))
	})
	second := addBlock(tree, flexbox, func(st *frame.Styling) {
		st.Width = css.SomeDimen(px(80))
		st.Height = css.SomeDimen(px(30))
	})
	return tree, flexbox, second
}

func TestFlexSolverPlacesChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, flexbox, second := flexFixture()
	res, err := NewEngine(tree, WithFlexSolver(rowSolver{})).Layout(viewport())
	require.NoError(t, err)
	assert.Empty(t, res.Unresolved)
	assert.Equal(t, dimen.Point{X: px(120)}, res.Positions[second])
	assert.Equal(t, px(40), tree.Box(flexbox).Size.H.Unwrap(), "container height is the row extent")
}

func TestMissingFlexSolverDegradesToZeroSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, flexbox, _ := flexFixture()
	res, err := NewEngine(tree).Layout(viewport())
	require.NoError(t, err)
	assert.Contains(t, res.Unresolved, flexbox)
}

func TestOutOfFlowChildrenAreSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame.layout")
	defer teardown()
	tree, root := testTree()
	addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	floated := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
		st.Float = frame.FloatLeft
	})
	b3 := addBlock(tree, root, func(st *frame.Styling) {
		st.Height = css.SomeDimen(px(50))
	})
	res, err := NewEngine(tree).Layout(viewport())
	require.NoError(t, err)
	assert.Equal(t, px(50), res.Positions[b3].Y, "floated sibling contributes no pen space")
	_, positioned := res.Positions[floated]
	assert.False(t, positioned)
}
