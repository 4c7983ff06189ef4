package frame

import (
	"testing"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxNullbox(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{})
	assert.Equal(t, box.Padding[Top], css.SomeDimen(0))
	assert.Equal(t, css.SomeDimen(0), box.BorderWidth[Right])
	assert.Equal(t, css.SomeDimen(0), box.Margins[Left])
	assert.Equal(t, box.W, css.DimenOption("auto"))
	assert.False(t, box.HasFixedBorderBoxWidth())
	assert.False(t, box.HasFixedBorderBoxHeight())
}

func TestFixContentWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{})
	box.Padding[Left] = css.DimenOption("20pt")
	box.Padding[Right] = css.DimenOption("10pt")
	box.FixContentWidth(60 * dimen.PT)
	assert.Equal(t, css.SomeDimen(60*dimen.PT), box.ContentWidth())
	assert.True(t, box.HasFixedBorderBoxWidth())
	assert.Equal(t, css.SomeDimen(90*dimen.PT), box.BorderBoxWidth())
}

func TestFixContentBorderBoxSizing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{BorderBoxSizing: true})
	box.BorderBoxSizing = true
	box.Padding[Left] = css.DimenOption("10pt")
	box.Padding[Right] = css.DimenOption("10pt")
	box.FixContentWidth(80 * dimen.PT)
	t.Logf(box.DebugString())
	assert.Equal(t, css.SomeDimen(80*dimen.PT), box.ContentWidth())
	assert.Equal(t, css.SomeDimen(100*dimen.PT), box.BorderBoxWidth())
}

func TestFixPercentages(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{})
	box.Padding[Left] = css.DimenOption("10%")
	box.Padding[Right] = css.DimenOption("10%")
	box.W = css.SomeDimen(100 * dimen.PT)
	assert.False(t, box.HasFixedBorderBoxWidth())
	box.FixPercentages(200 * dimen.PT)
	assert.True(t, box.HasFixedBorderBoxWidth())
	assert.Equal(t, 20*dimen.PT, box.Padding[Left].Unwrap())
	assert.Equal(t, css.SomeDimen(140*dimen.PT), box.TotalWidth())
}

func TestDistributeMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{})
	box.Padding[Left] = css.SomeDimen(10 * dimen.PT)
	box.W = css.SomeDimen(100 * dimen.PT)
	assert.Equal(t, 110*dimen.PT, box.TotalWidth().Unwrap())
	box.Margins[Left] = css.DimenOption("auto")
	box.Margins[Right] = css.DimenOption("auto")
	ok := distributeHorizontalMarginSpace(box, 200*dimen.PT)
	assert.True(t, ok)
	assert.Equal(t, 45*dimen.PT, box.Margins[Left].Unwrap())
	assert.Equal(t, 45*dimen.PT, box.Margins[Right].Unwrap())
	box.Margins[Left] = css.DimenOption("auto")
	box.Margins[Right] = css.SomeDimen(10 * dimen.PT)
	ok = distributeHorizontalMarginSpace(box, 200*dimen.PT)
	assert.True(t, ok)
	assert.Equal(t, 80*dimen.PT, box.Margins[Left].Unwrap())
}

func TestConstraintsFixedWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{})
	box.Padding[Left] = css.SomeDimen(10 * dimen.PT)
	box.W = css.SomeDimen(90 * dimen.PT)
	box.Margins[Left] = css.DimenOption("auto")
	box.Margins[Right] = css.DimenOption("auto")
	//
	ok, err := FixDimensionsFromEnclosingWidth(box, 200*dimen.PT)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, ok)
	assert.Equal(t, 50*dimen.PT, box.Margins[Left].Unwrap())
	assert.Equal(t, 50*dimen.PT, box.Margins[Right].Unwrap())
}

func TestConstraintsAutoWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	box := InitEmptyBox(&Box{})
	box.Padding[Left] = css.SomeDimen(10 * dimen.PT)
	box.Padding[Right] = css.SomeDimen(10 * dimen.PT)
	box.Margins[Left] = css.DimenOption("auto")
	box.Margins[Right] = css.DimenOption("auto")
	//
	ok, err := FixDimensionsFromEnclosingWidth(box, 200*dimen.PT)
	if err != nil {
		t.Fatal(err)
	}
	assert.True(t, ok)
	assert.True(t, box.HasFixedBorderBoxWidth())
	assert.Equal(t, 180*dimen.PT, box.W.Unwrap())
}

func TestCollapseMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	assert.Equal(t, dimen.Dimen(30), CollapseMargins(20, 30))
	assert.Equal(t, dimen.Dimen(-30), CollapseMargins(-20, -30))
	assert.Equal(t, dimen.Dimen(10), CollapseMargins(-20, 30))
	assert.Equal(t, dimen.Dimen(0), CollapseMargins(0, 0))
	assert.Equal(t, dimen.Dimen(20), CollapseMargins(20, 0))
}

func TestCollapseMarginChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	assert.Equal(t, 30*dimen.PT,
		CollapseAllMargins(20*dimen.PT, 10*dimen.PT, 25*dimen.PT, 15*dimen.PT, 30*dimen.PT, 12*dimen.PT))
	assert.Equal(t, dimen.Zero, CollapseAllMargins())
}

func TestSeparationPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	st := DefaultStyling()
	assert.False(t, st.SeparatesTopMargins())
	assert.False(t, st.SeparatesBottomMargins())
	st.BorderWidth[Top] = css.SomeDimen(1 * dimen.PT)
	assert.True(t, st.SeparatesTopMargins())
	assert.False(t, st.SeparatesBottomMargins())
	st = DefaultStyling()
	st.Height = css.SomeDimen(100 * dimen.PT)
	assert.False(t, st.SeparatesTopMargins())
	assert.True(t, st.SeparatesBottomMargins())
	st = DefaultStyling()
	st.Overflow = OverflowHidden
	assert.True(t, st.SeparatesTopMargins())
	assert.True(t, st.EstablishesBFC())
}
