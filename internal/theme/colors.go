package theme

import (
	"github.com/ziadkadry99/folio/internal/dom"
)

// Hero custom properties read by the page stylesheet for hover states.
const (
	BadgeHoverBg       = "--badge-hover-bg"
	BadgeHoverText     = "--badge-hover-text"
	CTAHoverColor      = "--cta-hover-color"
	CTARestColor       = "--cta-rest-color"
	gradientSelector   = ".absolute.inset-0"
	statLabelSelector  = `.stat-card .text-\[8px\]`
	statNumberSelector = ".stat-card .text-3xl, .stat-card .text-4xl"
)

func setAll(root *dom.Element, sel string, props ...string) {
	for _, el := range root.QuerySelectorAll(sel) {
		setStyle(el, props...)
	}
}

func setStyle(el *dom.Element, props ...string) {
	if el == nil {
		return
	}
	s := el.Style()
	for i := 0; i+1 < len(props); i += 2 {
		s.Set(props[i], props[i+1])
	}
}

// applyColors writes the palette onto the hero region.
func applyColors(hero *dom.Element, c Tokens) {
	setStyle(hero, "background-color", c.Secondary)

	setAll(hero, ".hero-line-1", "color", c.Primary)
	setAll(hero, ".hero-line-2", "color", WithOpacity(c.Primary, 0.9))
	setAll(hero, ".hero-line-3", "color", WithOpacity(c.Primary, 0.8))

	setAll(hero, ".hero-subheading > div", "background-color", c.Primary)
	setAll(hero, ".hero-subheading span", "color", WithOpacity(c.Primary, 0.6))
	setAll(hero, ".hero-description", "color", WithOpacity(c.Primary, 0.7))

	setAll(hero, ".hero-badge",
		"background-color", WithOpacity(c.Primary, 0.05),
		"border-color", c.Primary,
		"color", c.Primary,
		BadgeHoverBg, c.Primary,
		BadgeHoverText, c.Secondary,
	)
	setAll(hero, ".hero-badge .bg-green-500", "background-color", c.Accent)

	setAll(hero, ".stat-card", "background-color", c.Primary, "color", c.Secondary)
	setAll(hero, statLabelSelector, "color", WithOpacity(c.Secondary, 0.6))
	setAll(hero, ".stat-card svg", "color", WithOpacity(c.Secondary, 0.6))
	setAll(hero, statNumberSelector, "color", c.Secondary)

	if primary := hero.QuerySelector(".hero-cta a:first-child"); primary != nil {
		setStyle(primary, "background-color", c.Primary, "color", c.Secondary)
		setStyle(primary.QuerySelector(gradientSelector),
			"background", "linear-gradient(to right, "+WithOpacity(c.Primary, 0.9)+", "+c.Primary+")")
		setStyle(primary.QuerySelector("svg"), "color", c.Secondary)
	}

	// The secondary button swaps its text and icon colour on hover; the
	// stylesheet reads both states from custom properties.
	if secondary := hero.QuerySelector(".hero-cta a:last-child"); secondary != nil {
		setStyle(secondary,
			"background-color", c.Secondary,
			"color", c.Primary,
			"border-color", c.Primary,
			CTARestColor, c.Primary,
			CTAHoverColor, c.Secondary,
		)
		setStyle(secondary.QuerySelector(gradientSelector), "background-color", c.Primary)
		setStyle(secondary.QuerySelector("span"), "color", c.Primary)
		setStyle(secondary.QuerySelector("svg"), "color", c.Primary)
	}
}
