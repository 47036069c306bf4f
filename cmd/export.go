package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the rendered sections as Markdown",
	Long:  `Renders the page with every animation settled and converts each section to Markdown, e.g. for a README or a plain-text CV.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringP("output", "o", "portfolio.md", `output file ("-" for stdout)`)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.SettleAnimations = true

	gen, err := newGenerator(cfg, nil)
	if err != nil {
		return err
	}
	doc, _, err := gen.Render(context.Background(), 0)
	if err != nil {
		return err
	}

	md, err := export.New(cfg.BaseURL).Markdown(doc)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "-" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), md)
		return err
	}
	if err := os.WriteFile(out, []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("Exported %d bytes to %s\n", len(md), out)
	return nil
}
