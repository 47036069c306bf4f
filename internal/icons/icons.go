// Package icons turns icon hook points left in rendered markup into real
// icon elements. Renderers emit <i data-lucide="name"> placeholders; after
// injecting markup they ask a Renderer to re-scan the affected subtree.
package icons

import (
	"github.com/ziadkadry99/folio/internal/dom"
)

// HookSelector matches unprocessed icon placeholders.
const HookSelector = "i[data-lucide]"

// Renderer re-scans a subtree and replaces icon placeholders.
type Renderer interface {
	CreateIcons(root *dom.Element) int
}

// None leaves placeholders in place for a client-side icon library.
type None struct{}

// CreateIcons implements Renderer.
func (None) CreateIcons(*dom.Element) int { return 0 }

// Sprite replaces placeholders with inline SVGs referencing a symbol sprite,
// e.g. <svg class="lucide lucide-calendar w-4 h-4"><use href="/assets/icons.svg#calendar"></use></svg>.
type Sprite struct {
	// URL of the sprite sheet; symbol ids are the icon names.
	URL string
}

// CreateIcons implements Renderer. It returns the number of icons replaced.
func (s Sprite) CreateIcons(root *dom.Element) int {
	if root == nil {
		return 0
	}
	hooks := root.QuerySelectorAll(HookSelector)
	for _, hook := range hooks {
		hook.ReplaceWith(s.build(hook))
	}
	return len(hooks)
}

func (s Sprite) build(hook *dom.Element) *dom.Element {
	name := hook.GetAttribute("data-lucide")

	svg := dom.NewElement("svg")
	svg.AddClass("lucide", "lucide-"+name)
	svg.AddClass(hook.Classes()...)
	svg.SetAttribute("data-lucide", name)
	svg.SetAttribute("xmlns", "http://www.w3.org/2000/svg")
	svg.SetAttribute("width", "24")
	svg.SetAttribute("height", "24")
	svg.SetAttribute("viewBox", "0 0 24 24")
	svg.SetAttribute("fill", "none")
	svg.SetAttribute("stroke", "currentColor")
	svg.SetAttribute("stroke-width", "2")
	svg.SetAttribute("stroke-linecap", "round")
	svg.SetAttribute("stroke-linejoin", "round")
	svg.SetAttribute("aria-hidden", "true")
	if style := hook.GetAttribute("style"); style != "" {
		svg.SetAttribute("style", style)
	}

	use := dom.NewElement("use")
	use.SetAttribute("href", s.URL+"#"+name)
	svg.AppendChild(use)
	return svg
}
