package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/progress"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio page into the output directory",
	Long:  `Fetches every section and config document, renders the page and writes index.html, manifest.json and the site's assets.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "output directory (overrides config)")
	buildCmd.Flags().Int("width", 0, "viewport width in pixels (overrides config)")
	buildCmd.Flags().Bool("settle", false, "render animations in their final state")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	start := time.Now()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		cfg.OutputDir = out
	}
	if width, _ := cmd.Flags().GetInt("width"); width > 0 {
		cfg.ViewportWidth = width
	}
	if settle, _ := cmd.Flags().GetBool("settle"); settle {
		cfg.SettleAnimations = true
	}

	reporter := progress.NewReporter()
	if verbose {
		reporter = progress.Nop{}
	}
	var mu sync.Mutex
	reporter.Start(page.Steps())
	gen, err := newGenerator(cfg, func(done, total int, name string) {
		mu.Lock()
		defer mu.Unlock()
		reporter.Update(done, name)
	})
	if err != nil {
		return err
	}

	res, err := gen.Generate(context.Background())
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	m := res.Manifest
	fmt.Printf("Built %s (%s, %dpx) in %s\n", cfg.OutputDir, m.Device, m.Width, time.Since(start).Round(time.Millisecond))
	for _, s := range m.Sections {
		fmt.Printf("  %-12s %s\n", s.Name, s.Outcome)
	}
	fmt.Printf("  hero: %s, assets copied: %d\n", m.Hero, res.Assets)
	return nil
}
