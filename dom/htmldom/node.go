package htmldom

import (
	"errors"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/sheets/dom"
	"golang.org/x/net/html"
)

// Node is a node of a Document. Nodes are unique per HTML node, so they may
// be compared by identity.
type Node struct {
	doc *Document
	h   *html.Node
}

var _ dom.Element = &Node{}

// HTMLNode gets the HTML DOM node corresponding to this node.
func (n *Node) HTMLNode() *html.Node {
	return n.h
}

// Document returns the document this node belongs to.
func (n *Node) Document() *Document {
	return n.doc
}

// TagName returns the element name, e.g. "div", or the empty string for
// non-element nodes.
func (n *Node) TagName() string {
	if n.h.Type != html.ElementNode {
		return ""
	}
	return n.h.Data
}

// Text returns the text content of a node and all its descendants.
func (n *Node) Text() string {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(n.h)
	return b.String()
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.ElementNode:
	default:
		return "#node"
	}
	var b strings.Builder
	b.WriteString("<" + n.h.Data)
	for _, a := range n.h.Attr {
		switch a.Key {
		case "id", "class":
			b.WriteString(" " + a.Key + "=\"" + a.Val + "\"")
		}
	}
	b.WriteString(">")
	return b.String()
}

// QuerySelectorAll returns all descendants of n matching a selector, in
// document order.
//
// Interface dom.Element
func (n *Node) QuerySelectorAll(selector string) ([]dom.Element, error) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	sel, err := n.doc.compile(selector)
	if err != nil {
		return nil, err
	}
	matches := cascadia.QueryAll(n.h, sel)
	elements := make([]dom.Element, len(matches))
	for i, h := range matches {
		elements[i] = n.doc.wrap(h)
	}
	return elements, nil
}

// Attribute returns the value of an attribute.
func (n *Node) Attribute(key string) (string, bool) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	for _, a := range n.h.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets an attribute, overwriting an existing value.
func (n *Node) SetAttribute(key, val string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	for i, a := range n.h.Attr {
		if a.Key == key {
			if a.Val == val {
				return
			}
			n.h.Attr[i].Val = val
			n.doc.record(dom.Attributes, n.h, key)
			return
		}
	}
	n.h.Attr = append(n.h.Attr, html.Attribute{Key: key, Val: val})
	n.doc.record(dom.Attributes, n.h, key)
}

// RemoveAttribute removes an attribute, if present.
func (n *Node) RemoveAttribute(key string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	for i, a := range n.h.Attr {
		if a.Key == key {
			n.h.Attr = append(n.h.Attr[:i], n.h.Attr[i+1:]...)
			n.doc.record(dom.Attributes, n.h, key)
			return
		}
	}
}

// HasClass checks for a class name in the class attribute.
func (n *Node) HasClass(class string) bool {
	v, _ := n.Attribute("class")
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Parent returns the parent node or nil.
func (n *Node) Parent() *Node {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if n.h.Parent == nil {
		return nil
	}
	return n.doc.wrap(n.h.Parent)
}

// Children returns the element children of n.
func (n *Node) Children() []*Node {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	var children []*Node
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, n.doc.wrap(ch))
		}
	}
	return children
}

// AppendChild inserts a detached node as the last child of n.
func (n *Node) AppendChild(ch *Node) error {
	if ch == nil || ch.doc != n.doc {
		return ErrForeignNode
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if ch.h.Parent != nil {
		return errors.New("cannot append child: node is still attached")
	}
	n.h.AppendChild(ch.h)
	n.doc.record(dom.ChildList, n.h, "")
	return nil
}

// RemoveChild detaches a child node from n.
func (n *Node) RemoveChild(ch *Node) error {
	if ch == nil || ch.doc != n.doc {
		return ErrForeignNode
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	if ch.h.Parent != n.h {
		return errors.New("cannot remove child: node is not a child")
	}
	n.h.RemoveChild(ch.h)
	n.doc.record(dom.ChildList, n.h, "")
	return nil
}

// Contains reports wether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if other == nil || other.doc != n.doc {
		return false
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	return contains(n.h, other.h)
}
