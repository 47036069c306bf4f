package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// viewportPresets are offered by the wizard, one per device class.
var viewportPresets = []struct {
	Label string
	Width int
}{
	{"desktop (1280px)", 1280},
	{"tablet (800px)", 800},
	{"mobile (375px)", 375},
}

// detectSiteDir looks for an index.html in the usual places.
func detectSiteDir() string {
	for _, dir := range []string{".", "site", "public", "www"} {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			return dir
		}
	}
	return "."
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site directory.
	sitePrompt := promptui.Prompt{
		Label:   "Site directory (index.html, data/, config/)",
		Default: detectSiteDir(),
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site dir: %w", err)
	}
	cfg.SiteDir = siteDir
	if _, err := os.Stat(filepath.Join(siteDir, cfg.Template)); err != nil {
		fmt.Printf("Note: %s not found in %s yet.\n", cfg.Template, siteDir)
	}

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: cfg.OutputDir,
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. Viewport.
	labels := make([]string, len(viewportPresets))
	for i, p := range viewportPresets {
		labels[i] = p.Label
	}
	viewportPrompt := promptui.Select{
		Label: "Viewport used for static builds",
		Items: labels,
	}
	idx, _, err := viewportPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("viewport selection: %w", err)
	}
	cfg.ViewportWidth = viewportPresets[idx].Width

	// 4. Settle animations.
	settlePrompt := promptui.Select{
		Label: "Ship animations in their final state?",
		Items: []string{"no, animate in the browser", "yes, static snapshot"},
	}
	idx, _, err = settlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("settle selection: %w", err)
	}
	cfg.SettleAnimations = idx == 1

	// 5. Dev server port.
	portPrompt := promptui.Prompt{
		Label:   "Dev server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 6. Extra asset patterns.
	assetPrompt := promptui.Prompt{
		Label:   "Extra asset patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	assetStr, err := assetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	if extra := splitAndTrim(assetStr); len(extra) > 0 {
		cfg.Assets = append(append([]string{}, DefaultAssets...), extra...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
