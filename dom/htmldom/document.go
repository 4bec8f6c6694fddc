package htmldom

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/sheets/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrForeignNode is returned if a node of another document is passed to a
// document's operations.
var ErrForeignNode = errors.New("node belongs to a different document")

// Document wraps an HTML parse tree.
type Document struct {
	mu        sync.Mutex
	root      *html.Node
	nodes     map[*html.Node]*Node
	selectors map[string]cascadia.SelectorGroup
	pending   []record
	watchers  []*watcher
}

type record struct {
	kind   dom.MutationKind
	target *html.Node
	attr   string
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return NewDocument(root), nil
}

// ParseString is a convenience variant of Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an existing HTML parse tree. The tree is managed by the
// document from now on and should not be modified directly.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:      root,
		nodes:     make(map[*html.Node]*Node),
		selectors: make(map[string]cascadia.SelectorGroup),
	}
}

// Root returns the document node.
func (d *Document) Root() *Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(d.root)
}

// Body returns the <body> element, or nil if there is none.
func (d *Document) Body() *Node {
	d.mu.Lock()
	defer d.mu.Unlock()
	body := findElement(atom.Body, d.root)
	if body == nil {
		return nil
	}
	return d.wrap(body)
}

// QuerySelector returns the first element of the document matching
// a selector, or nil.
func (d *Document) QuerySelector(selector string) (*Node, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sel, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	h := cascadia.Query(d.root, sel)
	if h == nil {
		return nil, nil
	}
	return d.wrap(h), nil
}

// CreateElement creates a detached element. Use AppendChild to insert it.
func (d *Document) CreateElement(tag string, attrs ...html.Attribute) *Node {
	h := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.wrap(h)
}

// Attr is a shortcut to create an html.Attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Pending returns the number of mutation records not yet delivered.
func (d *Document) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// wrap returns the unique Node for an HTML node. d.mu must be held.
func (d *Document) wrap(h *html.Node) *Node {
	if n, ok := d.nodes[h]; ok {
		return n
	}
	n := &Node{doc: d, h: h}
	d.nodes[h] = n
	return n
}

// compile returns a cached selector group. d.mu must be held.
func (d *Document) compile(selector string) (cascadia.SelectorGroup, error) {
	if sel, ok := d.selectors[selector]; ok {
		return sel, nil
	}
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	tracer().Debugf("compiled selector %q", selector)
	d.selectors[selector] = sel
	return sel, nil
}

// record queues a mutation. d.mu must be held.
func (d *Document) record(kind dom.MutationKind, target *html.Node, attr string) {
	if len(d.watchers) == 0 {
		return
	}
	d.pending = append(d.pending, record{kind: kind, target: target, attr: attr})
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}

// contains reports wether h is inside the subtree of root (inclusive).
func contains(root, h *html.Node) bool {
	for ; h != nil; h = h.Parent {
		if h == root {
			return true
		}
	}
	return false
}
