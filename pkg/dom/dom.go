// Package dom wraps golang.org/x/net/html nodes with the small query,
// mutation, and event surface the change tracker needs. It is deliberately
// not a browser DOM: queries are CSS selectors compiled through cascadia,
// mutation is attribute-level, and events are a synchronous bubbling shim.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Document owns a parsed node tree plus the event bindings registered against
// its elements. Instances are not safe for concurrent use; callers are
// expected to drive them from a single goroutine.
type Document struct {
	root     *html.Node
	bindings map[*html.Node][]binding
}

// Parse builds a Document from an HTML stream.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	return &Document{
		root:     root,
		bindings: make(map[*html.Node][]binding),
	}, nil
}

// ParseString builds a Document from literal markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// Root returns the document root node.
func (d *Document) Root() *html.Node {
	if d == nil {
		return nil
	}
	return d.root
}

// Query returns every element under the document root matching the compiled
// selector, in document order.
func (d *Document) Query(sel Selector) []*html.Node {
	if d == nil {
		return nil
	}
	return QueryAll(d.root, sel)
}

// QueryString compiles sel and queries the document root. Prefer Compile +
// Query when the selector is reused.
func (d *Document) QueryString(sel string) ([]*html.Node, error) {
	compiled, err := Compile(sel)
	if err != nil {
		return nil, err
	}
	return d.Query(compiled), nil
}

// Selector is a compiled CSS selector group. The zero value matches nothing.
type Selector struct {
	group cascadia.SelectorGroup
	raw   string
}

// Compile parses a CSS selector group. An empty selector is an error; use the
// zero Selector to express "no selector".
func Compile(sel string) (Selector, error) {
	trimmed := strings.TrimSpace(sel)
	if trimmed == "" {
		return Selector{}, fmt.Errorf("dom: empty selector")
	}
	group, err := cascadia.ParseGroup(trimmed)
	if err != nil {
		return Selector{}, fmt.Errorf("dom: compile selector %q: %w", trimmed, err)
	}
	return Selector{group: group, raw: trimmed}, nil
}

// MustCompile is Compile for package-level selector constants.
func MustCompile(sel string) Selector {
	compiled, err := Compile(sel)
	if err != nil {
		panic(err)
	}
	return compiled
}

// IsZero reports whether the selector was never compiled.
func (s Selector) IsZero() bool {
	return s.group == nil
}

// String returns the source text the selector was compiled from.
func (s Selector) String() string {
	return s.raw
}

// Match reports whether n matches the selector. Zero selectors and non-element
// nodes never match.
func (s Selector) Match(n *html.Node) bool {
	if s.group == nil || n == nil || n.Type != html.ElementNode {
		return false
	}
	return s.group.Match(n)
}

// QueryAll returns every element in root's subtree matching sel, in document
// order. A nil root or zero selector yields nil.
func QueryAll(root *html.Node, sel Selector) []*html.Node {
	if root == nil || sel.group == nil {
		return nil
	}
	return cascadia.QueryAll(root, sel.group)
}

// Closest walks from n toward the root and returns the first node (including
// n itself) matching sel, or nil when no ancestor matches.
func Closest(n *html.Node, sel Selector) *html.Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if sel.Match(cur) {
			return cur
		}
	}
	return nil
}

// Walk visits every element node in root's subtree in document order.
func Walk(root *html.Node, visit func(*html.Node)) {
	if root == nil || visit == nil {
		return
	}
	var descend func(*html.Node)
	descend = func(n *html.Node) {
		if n.Type == html.ElementNode {
			visit(n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			descend(child)
		}
	}
	descend(root)
}
