package cmd

import (
	"fmt"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/fetch"
	"github.com/ziadkadry99/folio/internal/icons"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/sections"
	"github.com/ziadkadry99/folio/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLoader fetches documents from base_url when set, else from the site
// directory.
func newLoader(cfg *config.Config) (*fetch.Loader, error) {
	var l *fetch.Loader
	if cfg.BaseURL != "" {
		var err error
		if l, err = fetch.New(cfg.BaseURL, nil, logger); err != nil {
			return nil, err
		}
	} else {
		l = fetch.NewDir(cfg.SiteDir, logger)
	}
	if t := cfg.FetchTimeout(); t > 0 {
		l.Client.Timeout = t
	}
	return l, nil
}

// newGenerator wires the loader, section renderer and page builder into a
// site generator for cfg.
func newGenerator(cfg *config.Config, onProgress page.ProgressFunc) (*site.Generator, error) {
	loader, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}
	var ic icons.Renderer = icons.None{}
	if cfg.IconSprite != "" {
		ic = icons.Sprite{URL: cfg.IconSprite}
	}
	renderer, err := sections.NewRenderer(ic, logger)
	if err != nil {
		return nil, err
	}
	return &site.Generator{
		SiteDir:   cfg.SiteDir,
		OutputDir: cfg.OutputDir,
		Template:  cfg.Template,
		Assets:    cfg.Assets,
		Builder:   page.NewBuilder(loader, renderer, logger, onProgress),
		Options: page.Options{
			Width:  cfg.ViewportWidth,
			Settle: cfg.SettleAnimations,
		},
		Logger: logger,
	}, nil
}
