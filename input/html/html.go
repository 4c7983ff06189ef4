package html

import (
	"io"
	"strings"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/engine/frame"
	"golang.org/x/net/html"
)

// ParseDocument reads an HTML document, applies its embedded stylesheets
// and returns the styled tree rooted at the document's body.
func ParseDocument(r io.Reader) (frame.StyledNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "unable to parse HTML document")
	}
	return StyleDocument(doc)
}

// StyleDocument styles an already parsed DOM. Additional stylesheet
// sources may be given; they apply before the document's own sheets.
func StyleDocument(doc *html.Node, sheets ...string) (frame.StyledNode, error) {
	sheets = append(sheets, collectStylesheets(doc)...)
	c := newCascade(sheets)
	body := findElement(doc, "body")
	if body == nil {
		return nil, core.Error(core.EMISSING, "document has no body")
	}
	tracer().Infof("styling document with %d rule(s)", len(c.rules))
	return styleSubtree(c, body, frame.DefaultStyling()), nil
}

// styleSubtree resolves styles top-down; inherited values flow through the
// parent styling.
func styleSubtree(c *cascade, n *html.Node, parent frame.Styling) *StyNode {
	sn := &StyNode{htmlNode: n}
	switch n.Type {
	case html.TextNode:
		sn.styles = defaultStylingFor(n, parent)
	case html.ElementNode:
		sn.styles = c.stylingFor(n, parent)
	default:
		sn.styles = parent
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode && ch.Type != html.TextNode {
			continue
		}
		sn.children = append(sn.children, styleSubtree(c, ch, sn.styles))
	}
	return sn
}

// collectStylesheets gathers the text content of all style elements, in
// document order.
func collectStylesheets(doc *html.Node) []string {
	var sheets []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "style" {
			var b strings.Builder
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.TextNode {
					b.WriteString(ch.Data)
				}
			}
			sheets = append(sheets, b.String())
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(doc)
	return sheets
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && strings.ToLower(n.Data) == name {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findElement(ch, name); found != nil {
			return found
		}
	}
	return nil
}
