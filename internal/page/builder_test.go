package page

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/fetch"
	"github.com/ziadkadry99/folio/internal/sections"
	"github.com/ziadkadry99/folio/internal/theme"
)

const template = `<!DOCTYPE html><html><head><title>t</title></head><body>
<div id="page-loader"><div id="loader-container"><span id="loader-text">0%</span><div id="loader-progress-bar"></div></div></div>
<section id="hero-section"><h1><span class="hero-line-1">A</span></h1></section>
<section id="work"><div id="work-grid"></div></section>
<section id="experience"><div id="experience-grid"></div></section>
<section id="services">
  <div id="services-description-container"></div>
  <div id="services-grid"></div>
  <div id="services-cta-container"></div>
</section>
<section id="about">
  <div id="about-description"></div>
  <div id="about-stats"></div>
  <div id="about-skills"></div>
  <div id="about-arsenal"></div>
</section>
</body></html>`

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newBuilder(t *testing.T, dir string, onProgress ProgressFunc) *Builder {
	t.Helper()
	r, err := sections.NewRenderer(nil, quiet())
	if err != nil {
		t.Fatal(err)
	}
	b := NewBuilder(fetch.NewDir(dir, quiet()), r, quiet(), onProgress)
	b.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return b
}

var siteFiles = map[string]string{
	"data/work-data.json": `{"research":[{"severity":"HIGH","cve":"CVE-1","title":"T","description":"D","year":2025}]}`,
	"data/about-data.json": `{"description":"hi","stats":[{"label":"CVEs","value":42,"suffix":"+"}],
		"skills":[{"name":"Web","level":95}],"arsenal":[{"category":"Recon","items":["nmap"]}]}`,
	"data/experience-data.json": `not json`,
}

func TestBuildOutcomes(t *testing.T) {
	dir := writeSite(t, siteFiles)
	doc, m, err := newBuilder(t, dir, nil).Build(context.Background(), strings.NewReader(template), Options{Width: 800})
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]Outcome{
		"work":       OutcomeRendered,
		"experience": OutcomeSkipped,
		"services":   OutcomeSkipped,
		"about":      OutcomeRendered,
	}
	for name, outcome := range want {
		got, ok := m.Section(name)
		if !ok || got.Outcome != outcome {
			t.Errorf("section %s = %+v, want %s", name, got, outcome)
		}
	}
	if about, _ := m.Section("about"); about.Containers != 4 {
		t.Errorf("about containers = %d, want 4", about.Containers)
	}
	if m.Rendered() != 2 {
		t.Errorf("Rendered = %d, want 2", m.Rendered())
	}
	if m.Device != "tablet" || m.Width != 800 {
		t.Errorf("device = %s width = %d", m.Device, m.Width)
	}
	if m.Hero != "ready" {
		t.Errorf("hero state = %s", m.Hero)
	}
	if m.BuildID == "" {
		t.Error("missing build id")
	}
	if len(doc.GetElementByID("work-grid").Children()) != 1 {
		t.Error("work card not rendered")
	}
	if doc.GetElementByID("experience-grid").InnerHTML() != "" {
		t.Error("malformed experience document should leave the container alone")
	}
	if m.Animations.Counters != 1 || m.Animations.Bars != 1 {
		t.Errorf("animations = %+v", m.Animations)
	}
}

func TestBuildSettle(t *testing.T) {
	dir := writeSite(t, siteFiles)
	doc, m, err := newBuilder(t, dir, nil).Build(context.Background(), strings.NewReader(template), Options{Settle: true})
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != DefaultWidth || m.Device != "desktop" {
		t.Errorf("default width = %d device = %s", m.Width, m.Device)
	}
	if got := doc.QuerySelector(".stat-counter").TextContent(); got != "42+" {
		t.Errorf("settled counter = %q, want 42+", got)
	}
	if got := doc.QuerySelector(".skill-bar").Style().Get("width"); got != "95%" {
		t.Errorf("settled bar width = %q", got)
	}
	if !m.Loader || doc.GetElementByID("page-loader").Style().Get("display") != "none" {
		t.Error("loader not settled")
	}
	if doc.Body().HasClass("loading") {
		t.Error("body still loading")
	}
}

func TestBuildProgress(t *testing.T) {
	dir := writeSite(t, nil)
	var mu sync.Mutex
	var calls []int
	b := newBuilder(t, dir, func(done, total int, name string) {
		mu.Lock()
		defer mu.Unlock()
		if total != Steps() {
			t.Errorf("total = %d, want %d", total, Steps())
		}
		calls = append(calls, done)
	})
	_, m, err := b.Build(context.Background(), strings.NewReader(template), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != Steps() {
		t.Fatalf("got %d progress calls, want %d", len(calls), Steps())
	}
	if calls[len(calls)-1] != Steps() {
		t.Errorf("last progress = %d", calls[len(calls)-1])
	}
	if m.Rendered() != 0 {
		t.Errorf("empty site rendered %d sections", m.Rendered())
	}
}

func TestBuildWithoutHero(t *testing.T) {
	dir := writeSite(t, nil)
	_, m, err := newBuilder(t, dir, nil).Build(context.Background(),
		strings.NewReader(`<html><body><div id="work-grid"></div></body></html>`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if m.Hero != "aborted" {
		t.Errorf("hero state = %s, want aborted", m.Hero)
	}
}

func TestBuildKeepsRuntime(t *testing.T) {
	dir := writeSite(t, siteFiles)
	var scheduled int
	afterFunc := func(time.Duration, func()) theme.Timer {
		scheduled++
		return time.NewTimer(time.Hour)
	}
	opts := Options{Width: 1280, AfterFunc: afterFunc}
	_, m, err := newBuilder(t, dir, nil).Build(context.Background(), strings.NewReader(template), opts)
	if err != nil {
		t.Fatal(err)
	}
	if m.Splash() == nil {
		t.Error("unsettled build should leave the loader running")
	}
	hero := m.Controller()
	if hero == nil {
		t.Fatal("missing hero controller")
	}
	hero.HandleResize(500)
	if scheduled != 1 {
		t.Errorf("resize scheduled %d callbacks, want 1", scheduled)
	}

	_, settled, err := newBuilder(t, dir, nil).Build(context.Background(), strings.NewReader(template), Options{Settle: true})
	if err != nil {
		t.Fatal(err)
	}
	if settled.Splash() != nil {
		t.Error("settled build still exposes a running loader")
	}
}

func TestManifestWriteFile(t *testing.T) {
	dir := writeSite(t, siteFiles)
	_, m, err := newBuilder(t, dir, nil).Build(context.Background(), strings.NewReader(template), Options{})
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "manifest.json")
	if err := m.WriteFile(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["built_at"] != "2026-01-02T03:04:05Z" {
		t.Errorf("built_at = %v", got["built_at"])
	}
	if secs, _ := got["sections"].([]any); len(secs) != 4 {
		t.Errorf("sections = %v", got["sections"])
	}
}
