// Package theme drives the hero region: it resolves the colour theme from
// config, applies it to the enumerated hero elements and manages the
// device-specific background video across viewport changes.
package theme

import (
	"strconv"
	"strings"
)

// Tokens is the effective three-colour palette.
type Tokens struct {
	Primary   string
	Secondary string
	Accent    string
}

// Invert swaps primary and secondary. Accent is never inverted.
func (t Tokens) Invert() Tokens {
	return Tokens{Primary: t.Secondary, Secondary: t.Primary, Accent: t.Accent}
}

// ThemeConfig is the theme block of the hero config.
type ThemeConfig struct {
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	InvertColors bool   `json:"invertColors"`
}

// Tokens derives the effective palette, applying inversion.
func (c ThemeConfig) Tokens() Tokens {
	t := Tokens{Primary: c.Primary, Secondary: c.Secondary, Accent: c.Accent}
	if c.InvertColors {
		return t.Invert()
	}
	return t
}

// WithOpacity re-encodes a hex colour (#rgb or #rrggbb) as rgba() at the
// given opacity. Any other colour is returned unchanged.
func WithOpacity(color string, opacity float64) string {
	hex, ok := strings.CutPrefix(color, "#")
	if !ok {
		return color
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color
	}
	var rgb [3]uint64
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color
		}
		rgb[i] = v
	}
	return "rgba(" + strconv.FormatUint(rgb[0], 10) + ", " +
		strconv.FormatUint(rgb[1], 10) + ", " +
		strconv.FormatUint(rgb[2], 10) + ", " +
		strconv.FormatFloat(opacity, 'f', -1, 64) + ")"
}
