package html

import (
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// applyDeclaration folds one CSS declaration into a styling. Properties
// outside the box model (colors, fonts, …) are ignored without notice,
// unparsable values of known properties are traced and dropped.
func applyDeclaration(st *frame.Styling, property, value string) {
	property = strings.ToLower(strings.TrimSpace(property))
	value = strings.TrimSpace(value)
	switch property {
	case "display":
		mode, err := frame.ParseDisplay(value)
		if err != nil {
			tracer().Infof("dropping display value %q", value)
			return
		}
		st.Display = mode
	case "position":
		st.Position = css.ParsePosition(value)
	case "float":
		st.Float = parseFloat(value)
	case "clear":
		st.Clear = parseClear(value)
	case "overflow":
		st.Overflow = parseOverflow(value)
	case "white-space":
		if value == "pre" {
			st.WhiteSpace = frame.WhiteSpacePre
		} else {
			st.WhiteSpace = frame.WhiteSpaceNormal
		}
	case "box-sizing":
		st.BorderBoxSizing = value == "border-box"
	case "width":
		st.Width = css.DimenOption(value)
	case "height":
		st.Height = css.DimenOption(value)
	case "min-width":
		st.MinW = css.DimenOption(value)
	case "max-width":
		st.MaxW = css.DimenOption(value)
	case "min-height":
		st.MinH = css.DimenOption(value)
	case "max-height":
		st.MaxH = css.DimenOption(value)
	case "margin":
		applyQuad(st.Margins[:], value)
	case "margin-top":
		st.Margins[frame.Top] = css.DimenOption(value)
	case "margin-right":
		st.Margins[frame.Right] = css.DimenOption(value)
	case "margin-bottom":
		st.Margins[frame.Bottom] = css.DimenOption(value)
	case "margin-left":
		st.Margins[frame.Left] = css.DimenOption(value)
	case "padding":
		applyQuad(st.Padding[:], value)
	case "padding-top":
		st.Padding[frame.Top] = css.DimenOption(value)
	case "padding-right":
		st.Padding[frame.Right] = css.DimenOption(value)
	case "padding-bottom":
		st.Padding[frame.Bottom] = css.DimenOption(value)
	case "padding-left":
		st.Padding[frame.Left] = css.DimenOption(value)
	case "border-width":
		applyQuad(st.BorderWidth[:], value)
	case "border-top-width":
		st.BorderWidth[frame.Top] = css.DimenOption(value)
	case "border-right-width":
		st.BorderWidth[frame.Right] = css.DimenOption(value)
	case "border-bottom-width":
		st.BorderWidth[frame.Bottom] = css.DimenOption(value)
	case "border-left-width":
		st.BorderWidth[frame.Left] = css.DimenOption(value)
	case "border":
		if w, ok := borderShorthandWidth(value); ok {
			for dir := frame.Top; dir <= frame.Left; dir++ {
				st.BorderWidth[dir] = w
			}
		}
	}
}

// applyQuad expands a 1–4 value shorthand onto the four edges, in CSS
// order top, right, bottom, left.
func applyQuad(edges []css.DimenT, value string) {
	fields := strings.Fields(value)
	var quad [4]string
	switch len(fields) {
	case 1:
		quad = [4]string{fields[0], fields[0], fields[0], fields[0]}
	case 2:
		quad = [4]string{fields[0], fields[1], fields[0], fields[1]}
	case 3:
		quad = [4]string{fields[0], fields[1], fields[2], fields[1]}
	case 4:
		quad = [4]string{fields[0], fields[1], fields[2], fields[3]}
	default:
		tracer().Infof("dropping shorthand value %q", value)
		return
	}
	for dir := frame.Top; dir <= frame.Left; dir++ {
		edges[dir] = css.DimenOption(quad[dir])
	}
}

// borderShorthandWidth extracts the width token of a 'border' shorthand
// like "1px solid black".
func borderShorthandWidth(value string) (css.DimenT, bool) {
	for _, f := range strings.Fields(value) {
		switch f {
		case "thin":
			return css.SomeDimen(1 * dimen.PX), true
		case "medium":
			return css.SomeDimen(3 * dimen.PX), true
		case "thick":
			return css.SomeDimen(5 * dimen.PX), true
		}
		if d, err := css.ParseDimen(f); err == nil {
			return d, true
		}
	}
	return css.Dimen(), false
}

func parseFloat(value string) frame.FloatMode {
	switch value {
	case "left":
		return frame.FloatLeft
	case "right":
		return frame.FloatRight
	}
	return frame.FloatNone
}

func parseClear(value string) frame.ClearMode {
	switch value {
	case "left":
		return frame.ClearLeft
	case "right":
		return frame.ClearRight
	case "both":
		return frame.ClearBoth
	}
	return frame.ClearNone
}

func parseOverflow(value string) frame.OverflowMode {
	switch value {
	case "hidden":
		return frame.OverflowHidden
	case "scroll":
		return frame.OverflowScroll
	case "auto":
		return frame.OverflowAuto
	}
	return frame.OverflowVisible
}
