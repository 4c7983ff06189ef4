package css

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/npillmayer/boxflow/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	DimenExpand     uint32 = 0x0040
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenREM     uint32 = 0x0400
	dimenPRCNT   uint32 = 0x0900
	relativeMask uint32 = 0x0f00
)

// --- DimenT ----------------------------------------------------------------

// DimenT is an option type for CSS dimensions: either an absolute fixed-point
// value, a keyword (auto, initial, inherit), a relative unit, or a
// content-dependent sizing mode. The zero value is the unset dimension.
type DimenT struct {
	d     dimen.Dimen
	flags uint32
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// Auto creates a dimension with value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Percentage creates a relative dimension of n percent.
func Percentage(n int) DimenT {
	return DimenT{d: dimen.Dimen(n), flags: dimenPRCNT}
}

// FitContent creates a content-dependent dimension: size to the content
// (shrink-to-fit).
func FitContent() DimenT {
	return DimenT{flags: DimenContentFit}
}

// FillAvailable creates a content-dependent dimension: expand into the
// available space.
func FillAvailable() DimenT {
	return DimenT{flags: DimenExpand}
}

// Unwrap returns the underlying dimension of o.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// UnwrapOr returns the underlying dimension of o, or d if o holds no
// absolute value.
func (o DimenT) UnwrapOr(d dimen.Dimen) dimen.Dimen {
	if o.IsAbsolute() {
		return o.d
	}
	return d
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsAuto returns true if o holds the keyword "auto".
func (o DimenT) IsAuto() bool {
	return o.flags&kindMask == dimenAuto
}

// IsAbsolute returns true if o represents a valid absolute dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

// IsRelative returns true if o represents a valid relative dimension
// (`%`, `em`, etc.).
func (o DimenT) IsRelative() bool {
	return o.flags&relativeMask > 0
}

// IsPercent returns true if o is a percentage dimension.
func (o DimenT) IsPercent() bool {
	return o.flags&relativeMask == dimenPRCNT
}

// IsContentDependent returns true if o is sized from content
// (fit-content, min-content, max-content) or expands into available space.
func (o DimenT) IsContentDependent() bool {
	return o.flags&contentMask > 0
}

// IsFitContent returns true for shrink-to-fit dimensions.
func (o DimenT) IsFitContent() bool {
	return o.flags&contentMask == DimenContentFit
}

// IsExpand returns true for fill-available dimensions.
func (o DimenT) IsExpand() bool {
	return o.flags&contentMask == DimenExpand
}

// Equals compares o against another dimension option or a raw dimension.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case DimenT:
		return o.d == i.d && o.flags == i.flags
	case dimen.Dimen:
		return o.IsAbsolute() && o.d == i
	case int32:
		return o.IsAbsolute() && o.d == dimen.Dimen(i)
	case int:
		return o.IsAbsolute() && o.d == dimen.Dimen(i)
	}
	return false
}

func (o DimenT) String() string {
	if o.IsNone() {
		return "DimenT.None"
	}
	switch o.flags & kindMask {
	case dimenAuto:
		return "auto"
	case dimenInitial:
		return "initial"
	case dimenInherit:
		return "inherit"
	}
	switch o.flags & contentMask {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	case DimenContentFit:
		return "fit-content"
	case DimenExpand:
		return "fill-available"
	}
	if o.IsRelative() {
		if unit, ok := relUnitMap[o.flags&relativeMask]; ok {
			return fmt.Sprintf("%d%s", o.d, unit)
		}
	}
	return fmt.Sprintf("%dsp", o.d)
}

var relUnitMap = map[uint32]string{
	dimenEM:    "em",
	dimenEX:    "ex",
	dimenREM:   "rem",
	dimenPRCNT: "%",
}

var relUnitStringMap = map[string]uint32{
	"em":  dimenEM,
	"ex":  dimenEX,
	"rem": dimenREM,
	"%":   dimenPRCNT,
}

// DimenOption returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead will
// then return an unset dimension.
func DimenOption(p string) DimenT {
	switch p {
	case "":
		return Dimen()
	case "auto":
		return DimenT{flags: dimenAuto}
	case "initial":
		return DimenT{flags: dimenInitial}
	case "inherit":
		return DimenT{flags: dimenInherit}
	case "fit-content":
		return FitContent()
	case "max-content":
		return DimenT{flags: DimenContentMax}
	case "min-content":
		return DimenT{flags: DimenContentMin}
	case "fill-available":
		return FillAvailable()
	}
	d, err := ParseDimen(p)
	if err != nil {
		return Dimen()
	}
	return d
}

var dimenPattern = regexp.MustCompile(`^([+\-]?[0-9]+)(%|[a-zA-Z]{2,4})?$`)

// ParseDimen parses a string to return an optional dimension. Syntax is CSS
// Unit. Valid dimensions are
//
//	15px
//	80%
//	-33rem
func ParseDimen(s string) (DimenT, error) {
	d := dimenPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return Dimen(), errors.New("format error parsing dimension")
	}
	scale := dimen.SP
	dim := DimenT{flags: dimenAbsolute}
	if len(d) > 2 {
		switch d[2] {
		case "pt", "PT":
			scale = dimen.PT
		case "mm", "MM":
			scale = dimen.MM
		case "bp", "px", "BP", "PX":
			scale = dimen.BP
		case "cm", "CM":
			scale = dimen.CM
		case "in", "IN":
			scale = dimen.IN
		case "", "sp", "SP":
			scale = dimen.SP
		default:
			if unit, ok := relUnitStringMap[d[2]]; ok {
				dim.flags = unit
			} else {
				return Dimen(), errors.New("format error parsing dimension")
			}
		}
	}
	n, err := strconv.Atoi(d[1])
	if err != nil { // this cannot happen
		return Dimen(), errors.New("format error parsing dimension")
	}
	if dim.IsRelative() {
		dim.d = dimen.Dimen(n)
	} else {
		dim.d = dimen.Dimen(n) * scale
	}
	return dim, nil
}

// MaxDimen returns the greater of two dimensions. An unset dimension loses
// against any set one.
func MaxDimen(d1, d2 DimenT) DimenT {
	if d1.IsNone() {
		return d2
	}
	if d2.IsNone() {
		return d1
	}
	return SomeDimen(dimen.Max(d1.Unwrap(), d2.Unwrap()))
}

// MinDimen returns the lesser of two dimensions. An unset dimension loses
// against any set one.
func MinDimen(d1, d2 DimenT) DimenT {
	if d1.IsNone() {
		return d2
	}
	if d2.IsNone() {
		return d1
	}
	return SomeDimen(dimen.Min(d1.Unwrap(), d2.Unwrap()))
}

// --- Position --------------------------------------------------------------

// Position is an enum type for the CSS position property.
type Position uint16

// Enum values for type Position
const (
	PositionUnknown  Position = iota
	PositionStatic            // CSS static (default)
	PositionRelative          // CSS relative
	PositionAbsolute          // CSS absolute
	PositionFixed             // CSS fixed
	PositionSticky            // CSS sticky, currently mapped to relative
)

var positionStringMap = map[string]Position{
	"static":   PositionStatic,
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
	"fixed":    PositionFixed,
	"sticky":   PositionSticky,
}

// ParsePosition returns the position enum for a CSS keyword, defaulting to
// static for unknown input.
func ParsePosition(s string) Position {
	if p, ok := positionStringMap[s]; ok {
		return p
	}
	return PositionStatic
}

// OutOfFlow returns true if boxes with this position do not participate in
// normal flow.
func (p Position) OutOfFlow() bool {
	return p == PositionAbsolute || p == PositionFixed
}

func (p Position) String() string {
	for s, pp := range positionStringMap {
		if pp == p {
			return s
		}
	}
	return "unknown"
}
