package html

import (
	"strings"

	"github.com/andybalholm/cascadia"
	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxflow/engine/frame"
	"golang.org/x/net/html"
)

// ruleset is one compiled stylesheet rule.
type ruleset struct {
	sel   cascadia.Selector
	decls []*dcss.Declaration
}

// cascade holds the compiled rules of all stylesheets of a document, in
// document order.
type cascade struct {
	rules []ruleset
}

// newCascade parses and compiles stylesheet sources. Unparsable sheets and
// selectors are reported and skipped, they never fail the document.
func newCascade(sheets []string) *cascade {
	c := &cascade{}
	for _, src := range sheets {
		sheet, err := parser.Parse(src)
		if err != nil {
			tracer().Errorf("skipping unparsable stylesheet: %v", err)
			continue
		}
		for _, rule := range sheet.Rules {
			c.appendRule(rule)
		}
	}
	return c
}

func (c *cascade) appendRule(rule *dcss.Rule) {
	if rule.Kind != dcss.QualifiedRule {
		for _, nested := range rule.Rules {
			c.appendRule(nested) // media queries apply unconditionally
		}
		return
	}
	for _, s := range rule.Selectors {
		sel, err := cascadia.Compile(s)
		if err != nil {
			tracer().Infof("skipping selector %q: %v", s, err)
			continue
		}
		c.rules = append(c.rules, ruleset{sel: sel, decls: rule.Declarations})
	}
}

// stylingFor resolves the styling of one element: user-agent defaults,
// then matching rules in document order, then the element's style
// attribute, then important declarations.
func (c *cascade) stylingFor(n *html.Node, parent frame.Styling) frame.Styling {
	st := defaultStylingFor(n, parent)
	var important []*dcss.Declaration
	for _, rule := range c.rules {
		if !rule.sel.Match(n) {
			continue
		}
		for _, d := range rule.decls {
			if d.Important {
				important = append(important, d)
				continue
			}
			applyDeclaration(&st, d.Property, d.Value)
		}
	}
	for _, d := range inlineDeclarations(n) {
		applyDeclaration(&st, d.Property, d.Value)
	}
	for _, d := range important {
		applyDeclaration(&st, d.Property, d.Value)
	}
	return st
}

// inlineDeclarations parses the style attribute of an element.
func inlineDeclarations(n *html.Node) []*dcss.Declaration {
	for _, a := range n.Attr {
		if a.Key != "style" {
			continue
		}
		decls, err := parser.ParseDeclarations(a.Val)
		if err != nil {
			tracer().Infof("skipping style attribute %q: %v", a.Val, err)
			return nil
		}
		return decls
	}
	return nil
}

// unstyledElements never generate boxes.
var unstyledElements = map[string]bool{
	"head": true, "title": true, "meta": true, "link": true,
	"style": true, "script": true, "template": true,
}

// inlineElements are inline-level by default.
var inlineElements = map[string]bool{
	"a": true, "abbr": true, "b": true, "bdi": true, "bdo": true,
	"br": true, "cite": true, "code": true, "em": true, "i": true,
	"kbd": true, "mark": true, "q": true, "s": true, "samp": true,
	"small": true, "span": true, "strong": true, "sub": true,
	"sup": true, "u": true, "var": true,
}

// defaultStylingFor returns the user-agent styling of an element. Text
// nodes and layout-irrelevant inherited properties take the parent's
// values.
func defaultStylingFor(n *html.Node, parent frame.Styling) frame.Styling {
	st := frame.DefaultStyling()
	st.WhiteSpace = parent.WhiteSpace // inherited
	if n.Type == html.TextNode {
		return st
	}
	name := strings.ToLower(n.Data)
	switch {
	case unstyledElements[name]:
		st.Display = frame.DisplayNone
	case inlineElements[name]:
		st.Display = frame.InlineMode | frame.InnerInlineMode
	case name == "li":
		st.Display = frame.ListItemMode | frame.InnerBlockMode
	case name == "pre":
		st.WhiteSpace = frame.WhiteSpacePre
	}
	return st
}
