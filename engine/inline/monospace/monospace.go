package monospace

import (
	"strings"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame/layout"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Measurer sizes inline runs on a fixed-pitch grid.
type Measurer struct {
	em      dimen.Dimen
	context *uax11.Context
}

var _ layout.InlineMeasurer = &Measurer{}

// New creates a measurer with a given cell width. An East Asian width
// context may be given; nil selects the Latin context.
func New(em dimen.Dimen, context *uax11.Context) *Measurer {
	if context == nil {
		context = uax11.LatinContext
	}
	grapheme.SetupGraphemeClasses()
	return &Measurer{
		em:      em,
		context: context,
	}
}

// Measure returns the height and last-line baseline of an inline run,
// wrapped into the available width.
func (m *Measurer) Measure(run layout.RunView, avail dimen.Dimen) (layout.InlineResult, error) {
	if m.em <= 0 {
		return layout.InlineResult{}, core.Error(core.EINVALID, "monospace measurer needs a positive em")
	}
	var lines int
	if run.Preserved() {
		lines = m.preformattedLines(run.Text())
	} else {
		lines = m.wrappedLines(run.Text(), avail)
	}
	tracer().Debugf("run of node %d fills %d line(s)", run.Container(), lines)
	if lines == 0 {
		return layout.InlineResult{}, nil
	}
	h := dimen.Dimen(lines) * m.em
	return layout.InlineResult{
		Height:   h,
		Baseline: h - m.em + m.em*3/5,
	}, nil
}

// wrappedLines fits whitespace-separated words greedily into lines of the
// available width. Inter-word space is one cell.
func (m *Measurer) wrappedLines(text string, avail dimen.Dimen) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	lines := 1
	cur := dimen.Zero
	for _, word := range words {
		w := m.cellWidth(word)
		switch {
		case cur == 0:
			cur = w
		case cur+m.em+w <= avail:
			cur += m.em + w
		default:
			lines++
			cur = w
		}
	}
	return lines
}

// preformattedLines counts hard line breaks; nothing wraps.
func (m *Measurer) preformattedLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(text, "\n"), "\n") + 1
}

// cellWidth returns the grid width of a string: one em per narrow
// grapheme, two for wide ones.
func (m *Measurer) cellWidth(s string) dimen.Dimen {
	gstr := grapheme.StringFromString(s)
	w := dimen.Zero
	for i := 0; i < gstr.Len(); i++ {
		cells := uax11.Width([]byte(gstr.Nth(i)), m.context)
		w += dimen.Dimen(cells) * m.em
	}
	return w
}
