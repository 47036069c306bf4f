// Package dom provides a small element API over golang.org/x/net/html trees.
// It covers the subset of browser DOM operations the page renderers need:
// id lookup, selector queries, inner-HTML replacement, attribute, class and
// inline-style manipulation, and element creation and removal.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document.
type Document struct {
	root *html.Node
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses a full HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the underlying document node.
func (d *Document) Root() *html.Node { return d.root }

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Body returns the <body> element, or nil.
func (d *Document) Body() *Element {
	return wrap(findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	}))
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	return wrap(findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	}))
}

// QuerySelector returns the first element matching sel, or nil. An invalid
// selector matches nothing.
func (d *Document) QuerySelector(sel string) *Element {
	all := d.QuerySelectorAll(sel)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll returns every element matching sel in document order.
func (d *Document) QuerySelectorAll(sel string) []*Element {
	s, err := Compile(sel)
	if err != nil {
		return nil
	}
	return s.selectUnder(d.root)
}

// CreateElement returns a new detached element.
func (d *Document) CreateElement(tag string) *Element {
	return NewElement(tag)
}

// NewElement returns a new detached element with the given tag name.
func NewElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return &Element{n: &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}}
}

// Element wraps an element node.
type Element struct {
	n *html.Node
}

func wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	return &Element{n: n}
}

// Node returns the underlying node.
func (e *Element) Node() *html.Node { return e.n }

// Tag returns the lower-case tag name.
func (e *Element) Tag() string { return e.n.Data }

// ID returns the id attribute.
func (e *Element) ID() string { return attr(e.n, "id") }

// Is reports whether e and other wrap the same node.
func (e *Element) Is(other *Element) bool {
	return other != nil && e.n == other.n
}

// GetAttribute returns the attribute value, or "" when absent.
func (e *Element) GetAttribute(key string) string { return attr(e.n, key) }

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(key string) bool {
	_, ok := lookupAttr(e.n, key)
	return ok
}

// SetAttribute sets or replaces an attribute.
func (e *Element) SetAttribute(key, val string) {
	for i := range e.n.Attr {
		if e.n.Attr[i].Key == key && e.n.Attr[i].Namespace == "" {
			e.n.Attr[i].Val = val
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(key string) {
	out := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Key != key {
			out = append(out, a)
		}
	}
	e.n.Attr = out
}

// ToggleAttribute sets a boolean attribute when on, removes it otherwise.
func (e *Element) ToggleAttribute(key string, on bool) {
	if on {
		e.SetAttribute(key, "")
		return
	}
	e.RemoveAttribute(key)
}

// Classes returns the class list.
func (e *Element) Classes() []string {
	return strings.Fields(attr(e.n, "class"))
}

// HasClass reports whether the element carries class c.
func (e *Element) HasClass(c string) bool {
	for _, have := range e.Classes() {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass appends classes that are not already present.
func (e *Element) AddClass(classes ...string) {
	list := e.Classes()
	for _, c := range classes {
		if !contains(list, c) {
			list = append(list, c)
		}
	}
	e.SetAttribute("class", strings.Join(list, " "))
}

// RemoveClass drops the given classes.
func (e *Element) RemoveClass(classes ...string) {
	if !e.HasAttribute("class") {
		return
	}
	var kept []string
	for _, c := range e.Classes() {
		if !contains(classes, c) {
			kept = append(kept, c)
		}
	}
	e.SetAttribute("class", strings.Join(kept, " "))
}

// Style returns an accessor for the inline style attribute.
func (e *Element) Style() Style { return Style{el: e} }

// Parent returns the parent element, or nil at the top of the tree.
func (e *Element) Parent() *Element {
	p := e.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return wrap(p)
}

// Children returns the element children.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, wrap(c))
		}
	}
	return out
}

// FirstChild returns the first child node as an element, or nil when the
// element has no children. Text first children are skipped.
func (e *Element) FirstChild() *Element {
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return wrap(c)
		}
	}
	return nil
}

// AppendChild moves child to the end of e's children.
func (e *Element) AppendChild(child *Element) {
	detach(child.n)
	e.n.AppendChild(child.n)
}

// Prepend inserts child before every existing child node.
func (e *Element) Prepend(child *Element) {
	detach(child.n)
	if e.n.FirstChild == nil {
		e.n.AppendChild(child.n)
		return
	}
	e.n.InsertBefore(child.n, e.n.FirstChild)
}

// ReplaceWith puts other where e is and detaches e.
func (e *Element) ReplaceWith(other *Element) {
	p := e.n.Parent
	if p == nil {
		return
	}
	detach(other.n)
	p.InsertBefore(other.n, e.n)
	p.RemoveChild(e.n)
}

// Remove detaches e from its parent.
func (e *Element) Remove() {
	detach(e.n)
}

// Attached reports whether e is still part of a tree.
func (e *Element) Attached() bool {
	return e.n.Parent != nil
}

// Clear removes every child node.
func (e *Element) Clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

// SetInnerHTML replaces all children with the parsed markup.
func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return fmt.Errorf("parsing fragment for <%s>: %w", e.n.Data, err)
	}
	e.Clear()
	for _, n := range nodes {
		detach(n)
		e.n.AppendChild(n)
	}
	return nil
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// OuterHTML renders the element itself.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.n); err != nil {
		return ""
	}
	return buf.String()
}

// TextContent concatenates every descendant text node.
func (e *Element) TextContent() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return sb.String()
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(s string) {
	e.Clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// QuerySelector returns the first descendant matching sel, or nil.
func (e *Element) QuerySelector(sel string) *Element {
	all := e.QuerySelectorAll(sel)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll returns the descendants matching sel in document order.
// As in the browser, ancestors named by the selector may lie outside e.
func (e *Element) QuerySelectorAll(sel string) []*Element {
	s, err := Compile(sel)
	if err != nil {
		return nil
	}
	return s.selectUnder(e.n)
}

// Matches reports whether e matches sel.
func (e *Element) Matches(sel string) bool {
	s, err := Compile(sel)
	if err != nil {
		return false
	}
	return s.Match(e.n)
}

// Closest returns the nearest inclusive ancestor matching sel, or nil.
func (e *Element) Closest(sel string) *Element {
	s, err := Compile(sel)
	if err != nil {
		return nil
	}
	for n := e.n; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && s.Match(n) {
			return wrap(n)
		}
	}
	return nil
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

func findFirst(root *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(root) {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
