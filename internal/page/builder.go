// Package page assembles a complete portfolio page from an HTML template and
// the site's data and config documents.
package page

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ziadkadry99/folio/internal/animate"
	"github.com/ziadkadry99/folio/internal/cta"
	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/fetch"
	"github.com/ziadkadry99/folio/internal/sections"
	"github.com/ziadkadry99/folio/internal/splash"
	"github.com/ziadkadry99/folio/internal/theme"
)

// DefaultWidth is the viewport width assumed when none is given.
const DefaultWidth = 1280

// ProgressFunc is called after each build step completes.
type ProgressFunc func(done, total int, name string)

// Options controls a single build.
type Options struct {
	// Width is the viewport width used to pick the device class.
	Width int
	// Settle plays the splash loader and every animation to its end state,
	// producing a static snapshot.
	Settle bool
	// AfterFunc schedules the hero's debounced resize handling. Nil uses
	// time.AfterFunc.
	AfterFunc func(d time.Duration, f func()) theme.Timer
}

// Builder renders pages. A Builder is safe for concurrent use as long as
// each Build gets its own template.
type Builder struct {
	loader     *fetch.Loader
	renderer   *sections.Renderer
	logger     *slog.Logger
	onProgress ProgressFunc
	now        func() time.Time
}

// NewBuilder returns a Builder that fetches documents through loader and
// renders sections with renderer.
func NewBuilder(loader *fetch.Loader, renderer *sections.Renderer, logger *slog.Logger, onProgress ProgressFunc) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		loader:     loader,
		renderer:   renderer,
		logger:     logger,
		onProgress: onProgress,
		now:        time.Now,
	}
}

// Steps is the number of progress updates one Build reports.
func Steps() int { return len(sections.All()) + len(featureSteps) }

var featureSteps = []string{"loader", "services cta", "hero", "animations"}

type fetched struct {
	doc sections.Renderable
	ok  bool
}

// Build parses template and fills it in. Only an unreadable template is an
// error; missing documents and containers are recorded in the manifest.
func (b *Builder) Build(ctx context.Context, template io.Reader, opts Options) (*dom.Document, *Manifest, error) {
	doc, err := dom.Parse(template)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing page template: %w", err)
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	m := &Manifest{
		BuildID: uuid.NewString(),
		BuiltAt: b.now().UTC(),
		Width:   width,
		Device:  theme.ClassOf(width),
		Settled: opts.Settle,
	}

	all := sections.All()
	total := Steps()
	var processed int64
	step := func(name string) {
		count := atomic.AddInt64(&processed, 1)
		if b.onProgress != nil {
			b.onProgress(int(count), total, name)
		}
	}

	// Fetch concurrently; the page itself is only touched below, on this
	// goroutine.
	results := make([]fetched, len(all))
	var wg sync.WaitGroup
	for i, s := range all {
		wg.Add(1)
		go func(i int, s sections.Section) {
			defer wg.Done()
			d, ok := s.Fetch(ctx, b.loader)
			results[i] = fetched{doc: d, ok: ok}
			step(s.Name)
		}(i, s)
	}
	wg.Wait()

	for i, s := range all {
		res := SectionResult{Name: s.Name, Outcome: OutcomeSkipped}
		if results[i].ok {
			res.Containers = results[i].doc.Render(doc, b.renderer)
			if res.Containers > 0 {
				res.Outcome = OutcomeRendered
			}
		}
		b.logger.Debug("section built", "section", s.Name, "outcome", res.Outcome, "containers", res.Containers)
		m.Sections = append(m.Sections, res)
	}

	if sp, ok := splash.Load(ctx, doc, b.loader, b.logger); ok {
		sp.Apply()
		if opts.Settle {
			sp.Finish()
		} else {
			m.splash = sp
		}
		m.Loader = true
	}
	step("loader")

	if cfg, ok := cta.Load(ctx, b.loader); ok {
		m.CTA = cta.Apply(doc, cfg, b.logger)
	}
	step("services cta")

	hero := theme.New(doc, theme.Options{Loader: b.loader, Logger: b.logger, AfterFunc: opts.AfterFunc})
	if err := hero.Init(ctx, width); err != nil {
		return nil, nil, fmt.Errorf("initializing hero: %w", err)
	}
	m.Hero = hero.State().String()
	m.hero = hero
	step("hero")

	runner := animate.NewRunner()
	m.Animations = animate.Bind(doc, runner, b.logger)
	if opts.Settle {
		runner.Settle()
	}
	step("animations")

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	b.logger.Info("page built", "build_id", m.BuildID, "device", m.Device, "rendered", m.Rendered())
	return doc, m, nil
}
