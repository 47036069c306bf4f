package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Selector is a compiled CSS selector. The supported subset:
//   - type, #id, .class, [attr] and [attr=val] simple selectors, compounded
//     freely ("a.btn.primary[href]")
//   - descendant (whitespace) and child (">") combinators
//   - :first-child and :last-child
//   - selector groups separated by ","
//
// Backslash escapes special characters in names, so Tailwind classes such
// as "text-[8px]" are written ".text-\[8px\]".
type Selector struct {
	groups []complexSelector
}

type combinator int

const (
	descendant combinator = iota
	child
)

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
	pseudos []string
}

type attrMatch struct {
	key    string
	val    string
	hasVal bool
}

// complexSelector is a chain of compounds; combs[i] joins parts[i] and parts[i+1].
type complexSelector struct {
	parts []compound
	combs []combinator
}

// Compile parses sel.
func Compile(sel string) (*Selector, error) {
	var s Selector
	for _, g := range splitGroups(sel) {
		cs, err := parseComplex(g)
		if err != nil {
			return nil, fmt.Errorf("selector %q: %w", sel, err)
		}
		s.groups = append(s.groups, cs)
	}
	if len(s.groups) == 0 {
		return nil, fmt.Errorf("selector %q: empty", sel)
	}
	return &s, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(sel string) *Selector {
	s, err := Compile(sel)
	if err != nil {
		panic(err)
	}
	return s
}

// Match reports whether n matches any selector in the group.
func (s *Selector) Match(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	for _, g := range s.groups {
		if g.match(n, len(g.parts)-1) {
			return true
		}
	}
	return false
}

// selectUnder returns the descendants of root matching s in document order.
func (s *Selector) selectUnder(root *html.Node) []*Element {
	var out []*Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if s.Match(c) {
				out = append(out, wrap(c))
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

func (cs complexSelector) match(n *html.Node, i int) bool {
	if !cs.parts[i].match(n) {
		return false
	}
	if i == 0 {
		return true
	}
	switch cs.combs[i-1] {
	case child:
		p := n.Parent
		return p != nil && p.Type == html.ElementNode && cs.match(p, i-1)
	default:
		for p := n.Parent; p != nil; p = p.Parent {
			if p.Type == html.ElementNode && cs.match(p, i-1) {
				return true
			}
		}
		return false
	}
}

func (c compound) match(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && n.Data != c.tag {
		return false
	}
	if c.id != "" && attr(n, "id") != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(attr(n, "class"))
		for _, want := range c.classes {
			if !contains(have, want) {
				return false
			}
		}
	}
	for _, a := range c.attrs {
		v, ok := lookupAttr(n, a.key)
		if !ok || (a.hasVal && v != a.val) {
			return false
		}
	}
	for _, p := range c.pseudos {
		switch p {
		case "first-child":
			if prevElement(n) != nil {
				return false
			}
		case "last-child":
			if nextElement(n) != nil {
				return false
			}
		}
	}
	return true
}

func prevElement(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

func nextElement(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// splitGroups splits on top-level commas, honouring escapes and brackets.
func splitGroups(sel string) []string {
	var groups []string
	depth, start := 0, 0
	for i := 0; i < len(sel); i++ {
		switch sel[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				groups = appendTrimmed(groups, sel[start:i])
				start = i + 1
			}
		}
	}
	return appendTrimmed(groups, sel[start:])
}

func appendTrimmed(groups []string, g string) []string {
	if g = strings.TrimSpace(g); g != "" {
		groups = append(groups, g)
	}
	return groups
}

func parseComplex(s string) (complexSelector, error) {
	var cs complexSelector
	pending := descendant
	danglingChild := false
	i := 0
	for {
		i = skipSpace(s, i)
		if i >= len(s) {
			break
		}
		if s[i] == '>' {
			if len(cs.parts) == 0 || danglingChild {
				return cs, fmt.Errorf("unexpected '>' at %d", i)
			}
			pending = child
			danglingChild = true
			i++
			continue
		}
		c, next, err := parseCompound(s, i)
		if err != nil {
			return cs, err
		}
		if len(cs.parts) > 0 {
			cs.combs = append(cs.combs, pending)
		}
		cs.parts = append(cs.parts, c)
		pending = descendant
		danglingChild = false
		i = next
	}
	if len(cs.parts) == 0 {
		return cs, fmt.Errorf("empty selector")
	}
	if danglingChild {
		return cs, fmt.Errorf("dangling '>'")
	}
	return cs, nil
}

func parseCompound(s string, i int) (compound, int, error) {
	var c compound
	start := i
	for i < len(s) && !isSpace(s[i]) && s[i] != '>' {
		switch s[i] {
		case '*':
			i++
		case '#':
			name, next := readName(s, i+1)
			if name == "" {
				return c, i, fmt.Errorf("empty id at %d", i)
			}
			c.id, i = name, next
		case '.':
			name, next := readName(s, i+1)
			if name == "" {
				return c, i, fmt.Errorf("empty class at %d", i)
			}
			c.classes = append(c.classes, name)
			i = next
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return c, i, fmt.Errorf("unterminated attribute at %d", i)
			}
			body := s[i+1 : i+end]
			var m attrMatch
			if k, v, ok := strings.Cut(body, "="); ok {
				m = attrMatch{key: strings.TrimSpace(k), val: strings.Trim(strings.TrimSpace(v), `"'`), hasVal: true}
			} else {
				m = attrMatch{key: strings.TrimSpace(body)}
			}
			if m.key == "" {
				return c, i, fmt.Errorf("empty attribute at %d", i)
			}
			c.attrs = append(c.attrs, m)
			i += end + 1
		case ':':
			name, next := readName(s, i+1)
			if name != "first-child" && name != "last-child" {
				return c, i, fmt.Errorf("unsupported pseudo-class %q", name)
			}
			c.pseudos = append(c.pseudos, name)
			i = next
		default:
			name, next := readName(s, i)
			if name == "" {
				return c, i, fmt.Errorf("unexpected %q at %d", s[i], i)
			}
			if i != start {
				return c, i, fmt.Errorf("type selector %q must come first", name)
			}
			c.tag, i = strings.ToLower(name), next
		}
	}
	return c, i, nil
}

// readName reads an identifier, resolving backslash escapes.
func readName(s string, i int) (string, int) {
	var sb strings.Builder
	for i < len(s) {
		ch := s[i]
		if ch == '\\' && i+1 < len(s) {
			sb.WriteByte(s[i+1])
			i += 2
			continue
		}
		if isSpace(ch) || strings.IndexByte(">.#[:,*", ch) >= 0 {
			break
		}
		sb.WriteByte(ch)
		i++
	}
	return sb.String(), i
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}
