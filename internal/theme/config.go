package theme

import (
	"encoding/json"
)

// DeviceClass is the responsive breakpoint bucket of a viewport.
type DeviceClass string

const (
	Desktop DeviceClass = "desktop"
	Tablet  DeviceClass = "tablet"
	Mobile  DeviceClass = "mobile"
)

// ClassOf maps a viewport width in CSS pixels to its device class.
func ClassOf(width int) DeviceClass {
	switch {
	case width >= 1024:
		return Desktop
	case width >= 768:
		return Tablet
	default:
		return Mobile
	}
}

// HeroConfig is config/hero-config.json.
type HeroConfig struct {
	Theme ThemeConfig `json:"theme"`
	Video VideoConfig `json:"video"`
}

// VideoConfig selects a background video per device class.
type VideoConfig struct {
	Enabled  bool         `json:"enabled"`
	Desktop  DeviceVideo  `json:"desktop"`
	Tablet   DeviceVideo  `json:"tablet"`
	Mobile   DeviceVideo  `json:"mobile"`
	Muted    bool         `json:"muted"`
	Loop     bool         `json:"loop"`
	Autoplay bool         `json:"autoplay"`
	Overlay  VideoOverlay `json:"overlay"`
}

// VideoOverlay tints the video with a theme colour.
type VideoOverlay struct {
	Enabled           bool    `json:"enabled"`
	Opacity           float64 `json:"opacity"`
	UseSecondaryColor bool    `json:"useSecondaryColor"`
}

// DeviceVideo is the source for one device class. In JSON it is either a
// bare path, which enables it, or {"enabled": bool, "path": string}.
type DeviceVideo struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DeviceVideo) UnmarshalJSON(b []byte) error {
	var path string
	if err := json.Unmarshal(b, &path); err == nil {
		*d = DeviceVideo{Enabled: true, Path: path}
		return nil
	}
	type plain DeviceVideo
	return json.Unmarshal(b, (*plain)(d))
}

// Source returns the video path for a device class, and false when video
// is disabled globally or for that device or has no path.
func (v VideoConfig) Source(device DeviceClass) (string, bool) {
	if !v.Enabled {
		return "", false
	}
	var dv DeviceVideo
	switch device {
	case Desktop:
		dv = v.Desktop
	case Tablet:
		dv = v.Tablet
	default:
		dv = v.Mobile
	}
	if !dv.Enabled || dv.Path == "" {
		return "", false
	}
	return dv.Path, true
}

// DefaultHeroConfig is used when the hero config is missing or malformed,
// and as the base that a present config is decoded over.
func DefaultHeroConfig() HeroConfig {
	return HeroConfig{
		Theme: ThemeConfig{
			Primary:   "#000000",
			Secondary: "#ffffff",
			Accent:    "#22c55e",
		},
	}
}
