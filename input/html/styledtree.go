package html

import (
	"github.com/npillmayer/boxflow/engine/frame"
	"golang.org/x/net/html"
)

// StyNode is a node of the styled tree: an HTML node together with its
// resolved box-model styles.
type StyNode struct {
	htmlNode *html.Node
	styles   frame.Styling
	children []*StyNode
}

var _ frame.StyledNode = &StyNode{}

// Styling returns the resolved box-model inputs of the node.
func (sn *StyNode) Styling() frame.Styling {
	return sn.styles
}

// Children returns the styled child nodes.
func (sn *StyNode) Children() []frame.StyledNode {
	cc := make([]frame.StyledNode, len(sn.children))
	for i, ch := range sn.children {
		cc[i] = ch
	}
	return cc
}

// IsText returns true for text nodes.
func (sn *StyNode) IsText() bool {
	return sn.htmlNode.Type == html.TextNode
}

// Text returns the text content of a text node.
func (sn *StyNode) Text() string {
	if sn.htmlNode.Type != html.TextNode {
		return ""
	}
	return sn.htmlNode.Data
}

// Name returns the element name, or "#text" for text nodes.
func (sn *StyNode) Name() string {
	if sn.htmlNode.Type == html.TextNode {
		return "#text"
	}
	return sn.htmlNode.Data
}

// HTMLNode returns the underlying DOM node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}
