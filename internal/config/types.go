package config

// ConfigFile is the default configuration file name.
const ConfigFile = ".folio.yml"

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	// SiteDir holds index.html plus the data/ and config/ documents.
	SiteDir string `yaml:"site_dir" koanf:"site_dir"`
	// Template is the page template, relative to SiteDir.
	Template  string `yaml:"template" koanf:"template"`
	OutputDir string `yaml:"output_dir" koanf:"output_dir"`
	// BaseURL, when set, is where documents are fetched from instead of
	// SiteDir.
	BaseURL             string   `yaml:"base_url" koanf:"base_url"`
	ViewportWidth       int      `yaml:"viewport_width" koanf:"viewport_width"`
	SettleAnimations    bool     `yaml:"settle_animations" koanf:"settle_animations"`
	Port                int      `yaml:"port" koanf:"port"`
	Assets              []string `yaml:"assets" koanf:"assets"`
	FetchTimeoutSeconds int      `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	// IconSprite is the URL of an SVG symbol sprite. Empty leaves icon
	// placeholders for a client-side icon library.
	IconSprite string `yaml:"icon_sprite" koanf:"icon_sprite"`
}

// DefaultAssets are copied from the site directory into the output.
var DefaultAssets = []string{
	"assets/**",
	"data/*.json",
	"config/*.json",
	"*.css",
	"*.js",
	"**/*.{mp4,webm,png,jpg,jpeg,svg,webp,ico}",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteDir:             ".",
		Template:            "index.html",
		OutputDir:           "dist",
		ViewportWidth:       1280,
		SettleAnimations:    false,
		Port:                8080,
		Assets:              DefaultAssets,
		FetchTimeoutSeconds: 15,
	}
}
