package layout

import (
	"fmt"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// Constraint is the shape of an available-space query: per axis either a
// fixed dimension, or a free axis asking for shrink-to-fit (fit-content) or
// fill-available sizing.
type Constraint struct {
	W css.DimenT
	H css.DimenT
}

// FixedConstraint returns a constraint with both axes fixed.
func FixedConstraint(w, h dimen.Dimen) Constraint {
	return Constraint{W: css.SomeDimen(w), H: css.SomeDimen(h)}
}

// WidthConstraint returns a constraint with a fixed width and a
// shrink-to-fit height, the everyday query of block flow.
func WidthConstraint(w dimen.Dimen) Constraint {
	return Constraint{W: css.SomeDimen(w), H: css.FitContent()}
}

func (c Constraint) String() string {
	return fmt.Sprintf("constraint{w=%v h=%v}", c.W, c.H)
}

// Sizing modes per constraint axis, used for slot addressing. An axis is
// either fixed to an absolute length, shrinking to fit its content, or
// filling whatever space the container offers. Anything not recognizably
// fixed or fit-content counts as filling.
const (
	axisFixed = iota
	axisFit
	axisFill
)

func axisMode(d css.DimenT) int {
	switch {
	case d.IsAbsolute():
		return axisFixed
	case d.IsFitContent():
		return axisFit
	}
	return axisFill
}

// slot maps a constraint shape onto a measurement-slot index. The mapping is
// a pure function of the shape, encoding the sizing mode of each axis as one
// base-3 digit, so every combination of per-axis modes owns a slot of its
// own and storing one shape can never evict a measurement for another.
func (c Constraint) slot() int {
	return axisMode(c.W)*3 + axisMode(c.H)
}

// matches compares two constraints for cache equality: equal stored
// available size on fixed axes and equal sizing mode on free axes.
func (c Constraint) matches(o Constraint) bool {
	return c.W.Equals(o.W) && c.H.Equals(o.H)
}
