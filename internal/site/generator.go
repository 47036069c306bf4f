// Package site writes built pages to disk and serves them during
// development.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/page"
)

// Output file names.
const (
	IndexFile    = "index.html"
	ManifestFile = "manifest.json"
)

// Generator builds the site's page and copies its static assets into an
// output directory.
type Generator struct {
	SiteDir   string
	OutputDir string
	// Template is the page template path relative to SiteDir.
	Template string
	// Assets are doublestar patterns, relative to SiteDir, of files copied
	// verbatim.
	Assets  []string
	Builder *page.Builder
	Options page.Options
	// LiveReload injects the reload client script into the page.
	LiveReload bool
	Logger     *slog.Logger
}

// Result summarises one Generate run.
type Result struct {
	Manifest *page.Manifest
	Assets   int
}

// Render builds the page in memory for the given width. A non-positive
// width uses the generator's configured options.
func (g *Generator) Render(ctx context.Context, width int) (*dom.Document, *page.Manifest, error) {
	opts := g.Options
	if width > 0 {
		opts.Width = width
	}
	return g.render(ctx, opts)
}

func (g *Generator) render(ctx context.Context, opts page.Options) (*dom.Document, *page.Manifest, error) {
	tmpl, err := os.ReadFile(filepath.Join(g.SiteDir, g.Template))
	if err != nil {
		return nil, nil, fmt.Errorf("reading page template: %w", err)
	}
	doc, m, err := g.Builder.Build(ctx, bytes.NewReader(tmpl), opts)
	if err != nil {
		return nil, nil, err
	}
	if g.LiveReload {
		injectReloadClient(doc)
	}
	return doc, m, nil
}

// Generate writes index.html and manifest.json and copies the assets.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	logger := g.logger()

	doc, m, err := g.Render(ctx, 0)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, IndexFile), buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", IndexFile, err)
	}
	if err := m.WriteFile(filepath.Join(g.OutputDir, ManifestFile)); err != nil {
		return nil, err
	}

	n, err := g.copyAssets()
	if err != nil {
		return nil, err
	}
	logger.Info("site generated", "output", g.OutputDir, "sections", m.Rendered(), "assets", n)
	return &Result{Manifest: m, Assets: n}, nil
}

// copyAssets copies every file matching an asset pattern, skipping the
// template and anything already inside the output directory.
func (g *Generator) copyAssets() (int, error) {
	skip := g.outputPrefix()
	seen := make(map[string]bool)
	fsys := os.DirFS(g.SiteDir)

	for _, pattern := range g.Assets {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return 0, fmt.Errorf("matching assets %q: %w", pattern, err)
		}
		for _, rel := range matches {
			if seen[rel] || rel == filepath.ToSlash(g.Template) {
				continue
			}
			if skip != "" && (rel == skip || strings.HasPrefix(rel, skip+"/")) {
				continue
			}
			seen[rel] = true
			if err := copyFile(fsys, rel, filepath.Join(g.OutputDir, filepath.FromSlash(rel))); err != nil {
				return 0, fmt.Errorf("copying %s: %w", rel, err)
			}
		}
	}
	return len(seen), nil
}

// outputPrefix returns the output directory relative to SiteDir in slash
// form, or "" when it lies outside.
func (g *Generator) outputPrefix() string {
	site, err := filepath.Abs(g.SiteDir)
	if err != nil {
		return ""
	}
	out, err := filepath.Abs(g.OutputDir)
	if err != nil {
		return ""
	}
	rel, err := filepath.Rel(site, out)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

// copyFile copies a single file.
func copyFile(fsys fs.FS, src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	srcFile, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
