package dom

import "strings"

// Style edits an element's inline style attribute. Declarations keep their
// original order; setting an existing property replaces it in place.
type Style struct {
	el *Element
}

type declaration struct {
	prop, value string
}

// Get returns the value of prop, or "".
func (s Style) Get(prop string) string {
	for _, d := range s.decls() {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// Set assigns prop. An empty value removes the declaration.
func (s Style) Set(prop, value string) {
	// Custom properties are case-sensitive.
	prop = strings.TrimSpace(prop)
	if !strings.HasPrefix(prop, "--") {
		prop = strings.ToLower(prop)
	}
	value = strings.TrimSpace(value)
	decls := s.decls()
	if value == "" {
		s.write(without(decls, prop))
		return
	}
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			s.write(decls)
			return
		}
	}
	s.write(append(decls, declaration{prop: prop, value: value}))
}

// Remove deletes prop.
func (s Style) Remove(prop string) {
	s.Set(prop, "")
}

func (s Style) decls() []declaration {
	raw := s.el.GetAttribute("style")
	var out []declaration
	for _, part := range strings.Split(raw, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.TrimSpace(prop)
		if prop == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: strings.TrimSpace(value)})
	}
	return out
}

func (s Style) write(decls []declaration) {
	if len(decls) == 0 {
		s.el.RemoveAttribute("style")
		return
	}
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	s.el.SetAttribute("style", strings.Join(parts, "; "))
}

func without(decls []declaration, prop string) []declaration {
	out := decls[:0]
	for _, d := range decls {
		if d.prop != prop {
			out = append(out, d)
		}
	}
	return out
}
