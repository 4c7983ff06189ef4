package frame

import (
	"bytes"
	"errors"
)

var errUnknownDisplayMode = errors.New("unknown display mode")

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	FlowMode        DisplayMode = 0x0002 // CSS inner display = flow
	BlockMode       DisplayMode = 0x0004 // CSS outer display = block
	InlineMode      DisplayMode = 0x0008 // CSS outer display = inline
	ListItemMode    DisplayMode = 0x0010 // CSS list-item display
	FlowRootMode    DisplayMode = 0x0020 // CSS flow-root display property
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	InnerBlockMode  DisplayMode = 0x0100 // children belong to a block context
	InnerInlineMode DisplayMode = 0x0200 // children belong to an inline context
)

var allDisplayModes = []DisplayMode{
	DisplayNone, FlowMode, BlockMode, InlineMode, ListItemMode, FlowRootMode,
	FlexMode, GridMode, InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	FlowMode:        "FlowMode",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	ListItemMode:    "ListItemMode",
	FlowRootMode:    "FlowRootMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
}

func (disp DisplayMode) String() string {
	if s, ok := displayModeNames[disp]; ok {
		return s
	}
	return disp.FullString()
}

// Set sets a given atomic mode within this display mode.
func (disp *DisplayMode) Set(d DisplayMode) {
	*disp = (*disp) | d
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

// Overlaps returns true if a given display mode shares at least one atomic
// mode flag with disp (excluding NoMode).
func (disp DisplayMode) Overlaps(d DisplayMode) bool {
	for _, m := range allDisplayModes {
		if disp.Contains(m) && d.Contains(m) {
			return true
		}
	}
	return false
}

// BlockLevel returns true if boxes with this mode participate in a block
// context of their parent.
func (disp DisplayMode) BlockLevel() bool {
	return disp.Contains(BlockMode) || disp.Contains(ListItemMode)
}

// InlineLevel returns true if boxes with this mode participate in an inline
// context of their parent.
func (disp DisplayMode) InlineLevel() bool {
	return disp.Contains(InlineMode)
}

// FullString returns all atomic modes set in a display mode.
func (disp DisplayMode) FullString() string {
	var b bytes.Buffer
	first := true
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if !first {
				b.WriteString(" ")
			}
			first = false
			b.WriteString(displayModeNames[m])
		}
	}
	if first {
		return "NoMode"
	}
	return b.String()
}

// Symbol returns a Unicode symbol for a mode.
func (disp DisplayMode) Symbol() string {
	if disp == FlowMode {
		return "▧"
	} else if disp.Contains(BlockMode) {
		return "▩"
	} else if disp.Contains(InlineMode) {
		return "►"
	} else if disp.Contains(FlexMode) {
		return "▤"
	} else if disp.Contains(GridMode) {
		return "◰"
	} else if disp.Contains(ListItemMode) {
		return "▣"
	}
	return "?"
}

// ParseDisplay returns a display mode for a CSS display property value.
func ParseDisplay(display string) (DisplayMode, error) {
	if display == "" {
		return NoMode, nil
	}
	switch display {
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode | InnerInlineMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "flow-root":
		return BlockMode | FlowRootMode | InnerBlockMode, nil
	case "flex":
		return BlockMode | FlexMode, nil
	case "inline-flex":
		return InlineMode | FlexMode, nil
	case "grid":
		return BlockMode | GridMode, nil
	case "inline-grid":
		return InlineMode | GridMode, nil
	}
	return NoMode, errUnknownDisplayMode
}
