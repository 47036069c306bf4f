// Package cta applies config/services-config.json to the services
// call-to-action block after it has been rendered.
package cta

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/fetch"
)

// Selectors of the CTA markup.
const (
	BlockSelector = "#services .mt-16.border-4"
	VideoID       = "services-cta-video"
	OverlayID     = "services-cta-overlay"
)

// Overlay defaults used when the config leaves them out.
const (
	DefaultOverlayOpacity = 0.85
	DefaultOverlayColor   = "#ffffff"
)

// Config is config/services-config.json.
type Config struct {
	CTA *Settings `json:"cta"`
}

// Settings is the cta block.
type Settings struct {
	Theme *Theme `json:"theme"`
	Video *Video `json:"video"`
	// Text is advisory; it is logged and otherwise unused.
	Text map[string]any `json:"text"`
}

type Theme struct {
	InvertColors bool `json:"invertColors"`
}

// Video flags are pointers so that absent flags can default to true.
type Video struct {
	Enabled  bool     `json:"enabled"`
	Src      string   `json:"src"`
	Autoplay *bool    `json:"autoplay"`
	Loop     *bool    `json:"loop"`
	Muted    *bool    `json:"muted"`
	Overlay  *Overlay `json:"overlay"`
}

type Overlay struct {
	Enabled bool     `json:"enabled"`
	Opacity *float64 `json:"opacity"`
	Color   *string  `json:"color"`
}

// Load fetches the services config. It returns false when none is
// published, in which case the rendered defaults stay as they are.
func Load(ctx context.Context, l *fetch.Loader) (Config, bool) {
	return fetch.Config(ctx, l, "services", Config{})
}

// Apply adjusts the CTA block on page. It reports whether the block was
// found.
func Apply(page *dom.Document, cfg Config, logger *slog.Logger) bool {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CTA == nil {
		return false
	}
	block := page.QuerySelector(BlockSelector)
	if cfg.CTA.Theme != nil {
		if block == nil {
			logger.Debug("services CTA block not on page")
		} else {
			applyTheme(block, *cfg.CTA.Theme)
		}
	}
	if cfg.CTA.Video != nil {
		applyVideo(page, *cfg.CTA.Video)
	}
	if cfg.CTA.Text != nil {
		logger.Info("services CTA text config loaded", "keys", len(cfg.CTA.Text))
	}
	return block != nil
}

type swap struct {
	sel    string
	first  bool
	remove []string
	add    []string
}

var darkSwaps = []swap{
	{sel: ".absolute.w-4, .absolute.w-6", remove: []string{"bg-black"}, add: []string{"bg-white"}},
	{sel: "p", first: true, remove: []string{"text-black/70"}, add: []string{"text-white/70"}},
	{sel: ".border-2.border-black", first: true, remove: []string{"border-black"}, add: []string{"border-white"}},
	{sel: `.text-black\/60`, remove: []string{"text-black/60"}, add: []string{"text-white/60"}},
	{sel: ".bg-black.rounded-full", remove: []string{"bg-black"}, add: []string{"bg-white"}},
	{sel: `.border-black\/10`, first: true, remove: []string{"border-black/10"}, add: []string{"border-white/10"}},
}

func applyTheme(block *dom.Element, t Theme) {
	if !t.InvertColors {
		block.RemoveClass("bg-black", "text-white", "border-white")
		block.AddClass("bg-white", "text-black", "border-black")
		return
	}
	block.RemoveClass("bg-white", "text-black", "border-black")
	block.AddClass("bg-black", "text-white", "border-white")
	for _, s := range darkSwaps {
		var targets []*dom.Element
		if s.first {
			if el := block.QuerySelector(s.sel); el != nil {
				targets = append(targets, el)
			}
		} else {
			targets = block.QuerySelectorAll(s.sel)
		}
		for _, el := range targets {
			el.RemoveClass(s.remove...)
			el.AddClass(s.add...)
		}
	}

	buttons := block.QuerySelectorAll("a")
	if len(buttons) > 0 {
		buttons[0].RemoveClass("bg-black", "text-white", "border-black", "hover:bg-white", "hover:text-white")
		buttons[0].AddClass("bg-white", "text-black", "border-white", "hover:bg-black", "hover:text-white")
	}
	if len(buttons) > 1 {
		buttons[1].RemoveClass("bg-white", "text-black", "border-black")
		buttons[1].AddClass("bg-black", "text-white", "border-white")
	}
}

func applyVideo(page *dom.Document, v Video) {
	video := page.GetElementByID(VideoID)
	if video == nil {
		return
	}
	overlay := page.GetElementByID(OverlayID)

	if !v.Enabled || v.Src == "" {
		video.Style().Set("display", "none")
		if overlay != nil {
			overlay.Style().Set("display", "none")
		}
		return
	}

	video.SetAttribute("src", v.Src)
	video.ToggleAttribute("autoplay", orTrue(v.Autoplay))
	video.ToggleAttribute("loop", orTrue(v.Loop))
	video.ToggleAttribute("muted", orTrue(v.Muted))
	video.Style().Set("display", "block")

	if overlay == nil || v.Overlay == nil {
		return
	}
	if !v.Overlay.Enabled {
		overlay.Style().Set("display", "none")
		return
	}
	opacity, color := DefaultOverlayOpacity, DefaultOverlayColor
	if v.Overlay.Opacity != nil {
		opacity = *v.Overlay.Opacity
	}
	if v.Overlay.Color != nil {
		color = *v.Overlay.Color
	}
	overlay.Style().Set("opacity", strconv.FormatFloat(opacity, 'f', -1, 64))
	overlay.Style().Set("background-color", color)
	overlay.Style().Set("display", "block")
}

func orTrue(b *bool) bool {
	return b == nil || *b
}
