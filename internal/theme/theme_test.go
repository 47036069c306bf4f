package theme

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/fetch"
)

const heroPage = `<!DOCTYPE html><html><body>
<section id="hero-section">
  <h1><span class="hero-line-1">A</span><span class="hero-line-2">B</span><span class="hero-line-3">C</span></h1>
  <div class="hero-subheading"><div class="rule"></div><span>sub</span></div>
  <p class="hero-description">desc</p>
  <div class="hero-badge"><div class="bg-green-500"></div>badge</div>
  <div class="stat-card"><div class="text-[8px]">label</div><svg></svg><div class="text-3xl">12</div></div>
  <div class="hero-cta">
    <a href="#contact"><div class="absolute inset-0"></div><span>Hire</span><svg></svg></a>
    <a href="#work"><div class="absolute inset-0"></div><span>Work</span><svg></svg></a>
  </div>
</section>
</body></html>`

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInvertTwiceIsIdentity(t *testing.T) {
	tokens := []Tokens{
		{Primary: "#000000", Secondary: "#ffffff", Accent: "#22c55e"},
		{Primary: "#123456", Secondary: "#abcdef", Accent: "red"},
	}
	for _, tok := range tokens {
		inv := tok.Invert()
		if inv.Primary != tok.Secondary || inv.Secondary != tok.Primary || inv.Accent != tok.Accent {
			t.Errorf("Invert(%v) = %v", tok, inv)
		}
		if got := inv.Invert(); got != tok {
			t.Errorf("double Invert(%v) = %v", tok, got)
		}
	}

	cfg := ThemeConfig{Primary: "#000000", Secondary: "#ffffff", Accent: "#22c55e", InvertColors: true}
	if got := cfg.Tokens(); got.Primary != "#ffffff" || got.Accent != "#22c55e" {
		t.Errorf("inverted Tokens() = %v", got)
	}
}

func TestWithOpacity(t *testing.T) {
	tests := []struct {
		color   string
		opacity float64
		want    string
	}{
		{"#000000", 0.9, "rgba(0, 0, 0, 0.9)"},
		{"#ffffff", 0.05, "rgba(255, 255, 255, 0.05)"},
		{"#22C55E", 1, "rgba(34, 197, 94, 1)"},
		{"#fff", 0.5, "rgba(255, 255, 255, 0.5)"},
		{"red", 0.5, "red"},
		{"rgb(1, 2, 3)", 0.5, "rgb(1, 2, 3)"},
		{"#zzzzzz", 0.5, "#zzzzzz"},
		{"#12345", 0.5, "#12345"},
	}
	for _, tt := range tests {
		if got := WithOpacity(tt.color, tt.opacity); got != tt.want {
			t.Errorf("WithOpacity(%q, %v) = %q, want %q", tt.color, tt.opacity, got, tt.want)
		}
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		width int
		want  DeviceClass
	}{
		{0, Mobile},
		{767, Mobile},
		{768, Tablet},
		{1023, Tablet},
		{1024, Desktop},
		{2560, Desktop},
	}
	for _, tt := range tests {
		if got := ClassOf(tt.width); got != tt.want {
			t.Errorf("ClassOf(%d) = %s, want %s", tt.width, got, tt.want)
		}
	}

	rank := map[DeviceClass]int{Mobile: 0, Tablet: 1, Desktop: 2}
	prev := rank[ClassOf(0)]
	for w := 1; w <= 2000; w++ {
		r := rank[ClassOf(w)]
		if r < prev {
			t.Fatalf("ClassOf not monotonic at width %d", w)
		}
		prev = r
	}
}

func TestDeviceVideoUnmarshal(t *testing.T) {
	var v VideoConfig
	err := json.Unmarshal([]byte(`{"enabled":true,"desktop":"/d.mp4","tablet":"/t.mp4",
		"mobile":{"enabled":false,"path":"/m.mp4"}}`), &v)
	if err != nil {
		t.Fatal(err)
	}
	if v.Desktop != (DeviceVideo{Enabled: true, Path: "/d.mp4"}) {
		t.Errorf("desktop = %+v", v.Desktop)
	}
	if src, ok := v.Source(Tablet); !ok || src != "/t.mp4" {
		t.Errorf("Source(tablet) = %q, %v", src, ok)
	}
	if _, ok := v.Source(Mobile); ok {
		t.Error("mobile video should be disabled")
	}
	v.Enabled = false
	if _, ok := v.Source(Desktop); ok {
		t.Error("globally disabled video returned a source")
	}
}

type fakeTimer struct {
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

type fakeClock struct {
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(_ time.Duration, f func()) Timer {
	t := &fakeTimer{f: f}
	c.timers = append(c.timers, t)
	return t
}

// elapse fires every timer still pending.
func (c *fakeClock) elapse() {
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

type fakePlayer struct {
	attached []*dom.Element
	onError  []func()
	playErr  error
	played   int
}

func (p *fakePlayer) Attach(video *dom.Element, onError func()) {
	p.attached = append(p.attached, video)
	p.onError = append(p.onError, onError)
}

func (p *fakePlayer) Play(*dom.Element) error {
	p.played++
	return p.playErr
}

func siteWithHeroConfig(t *testing.T, cfg string) *fetch.Loader {
	t.Helper()
	dir := t.TempDir()
	if cfg != "" {
		if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config", "hero-config.json"), []byte(cfg), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return fetch.NewDir(dir, quietLogger())
}

const videoConfig = `{
	"theme":{"primary":"#000000","secondary":"#ffffff","accent":"#22c55e","invertColors":false},
	"video":{"enabled":true,"desktop":"/v/desktop.mp4","tablet":"/v/tablet.mp4",
		"mobile":{"enabled":true,"path":"/v/mobile.mp4"},
		"muted":true,"loop":true,"autoplay":true,
		"overlay":{"enabled":true,"opacity":0.4,"useSecondaryColor":true}}
}`

func newController(t *testing.T, cfg string) (*Controller, *dom.Document, *fakeClock, *fakePlayer) {
	t.Helper()
	page, err := dom.ParseString(heroPage)
	if err != nil {
		t.Fatal(err)
	}
	clock := &fakeClock{}
	player := &fakePlayer{}
	c := New(page, Options{
		Loader:    siteWithHeroConfig(t, cfg),
		Player:    player,
		Logger:    quietLogger(),
		AfterFunc: clock.AfterFunc,
	})
	return c, page, clock, player
}

func TestInitMissingConfigAppliesDefaultTheme(t *testing.T) {
	c, page, _, player := newController(t, "")
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateReady {
		t.Fatalf("state = %s, want ready", c.State())
	}
	hero := page.GetElementByID(HeroID)
	if got := hero.Style().Get("background-color"); got != "#ffffff" {
		t.Errorf("hero background = %q, want #ffffff", got)
	}
	if got := page.QuerySelector(".hero-line-2").Style().Get("color"); got != "rgba(0, 0, 0, 0.9)" {
		t.Errorf("line 2 colour = %q", got)
	}
	if got := page.QuerySelector(".hero-badge .bg-green-500").Style().Get("background-color"); got != "#22c55e" {
		t.Errorf("badge dot = %q", got)
	}
	if got := page.QuerySelector(`.stat-card .text-\[8px\]`).Style().Get("color"); got != "rgba(255, 255, 255, 0.6)" {
		t.Errorf("stat label = %q", got)
	}
	if page.QuerySelector(".hero-video-container") != nil || len(player.attached) != 0 {
		t.Error("video created without video config")
	}
	if err := c.Init(context.Background(), 1280); err == nil {
		t.Error("second Init should fail")
	}
}

func TestInitOmittedVideoKeepsDefaults(t *testing.T) {
	c, page, _, player := newController(t, `{"theme":{"primary":"#111111","secondary":"#eeeeee","accent":"#ff0000","invertColors":true}}`)
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	if got := page.GetElementByID(HeroID).Style().Get("background-color"); got != "#111111" {
		t.Errorf("inverted hero background = %q, want #111111", got)
	}
	secondary := page.QuerySelector(".hero-cta a:last-child")
	if got := secondary.Style().Get(CTAHoverColor); got != "#111111" {
		t.Errorf("secondary CTA hover colour = %q", got)
	}
	if len(player.attached) != 0 || page.QuerySelector("video") != nil {
		t.Error("video created when config omits video")
	}
}

func TestInitAbortsWithoutHero(t *testing.T) {
	page, err := dom.ParseString(`<html><body><div id="other"></div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	c := New(page, Options{Logger: quietLogger()})
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateAborted {
		t.Errorf("state = %s, want aborted", c.State())
	}
	c.HandleResize(500)
	if c.State() != StateAborted {
		t.Error("aborted controller reacted to resize")
	}
}

func TestInitSetsUpVideo(t *testing.T) {
	c, page, _, player := newController(t, videoConfig)
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	hero := page.GetElementByID(HeroID)
	container := hero.FirstChild()
	if container == nil || !container.HasClass("hero-video-container") {
		t.Fatal("video container should be the hero's first child")
	}
	video := container.QuerySelector("video.hero-video")
	if video == nil {
		t.Fatal("video element missing")
	}
	for _, a := range []string{"playsinline", "muted", "loop", "autoplay"} {
		if !video.HasAttribute(a) {
			t.Errorf("video missing %s", a)
		}
	}
	source := video.QuerySelector("source")
	if source.GetAttribute("src") != "/v/desktop.mp4" || source.GetAttribute("type") != "video/mp4" {
		t.Errorf("source = %s", source.OuterHTML())
	}
	overlay := container.QuerySelector(".hero-video-overlay")
	if overlay == nil {
		t.Fatal("overlay missing")
	}
	if got := overlay.Style().Get("background-color"); got != "rgba(255, 255, 255, 0.4)" {
		t.Errorf("overlay colour = %q, want secondary at 0.4", got)
	}
	if len(player.attached) != 1 || player.played != 1 {
		t.Errorf("attached %d, played %d; want 1, 1", len(player.attached), player.played)
	}
}

func TestResizeWithinClassDoesNotReinitialize(t *testing.T) {
	c, _, clock, player := newController(t, videoConfig)
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	for i := range 10 {
		c.HandleResize(1100 + i*10)
	}
	clock.elapse()
	if got := len(player.attached); got != 1 {
		t.Errorf("video set up %d times, want 1 (init only)", got)
	}
	if c.Snapshot().Device != Desktop {
		t.Errorf("device = %s", c.Snapshot().Device)
	}
}

func TestResizeAcrossClassReinitializesOnce(t *testing.T) {
	c, page, clock, player := newController(t, videoConfig)
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	for _, w := range []int{1200, 900, 500, 800, 900} {
		c.HandleResize(w)
	}
	clock.elapse()

	if got := len(player.attached); got != 2 {
		t.Fatalf("video set up %d times, want 2 (init + one transition)", got)
	}
	if c.State() != StateReady {
		t.Errorf("state = %s, want ready", c.State())
	}
	if got := len(page.QuerySelectorAll(".hero-video-container")); got != 1 {
		t.Errorf("got %d video containers, want 1", got)
	}
	if got := len(page.QuerySelectorAll("video")); got != 1 {
		t.Errorf("got %d videos, want 1", got)
	}
	if src := page.QuerySelector("video source").GetAttribute("src"); src != "/v/tablet.mp4" {
		t.Errorf("src = %q, want tablet video", src)
	}

	clock.elapse()
	if got := len(player.attached); got != 2 {
		t.Errorf("settled timers fired again")
	}
}

// lateTimer models a callback that has already started running when Stop
// is called, so Stop cannot cancel it.
type lateTimer struct{}

func (lateTimer) Stop() bool { return false }

func TestResizeStaleCallbackIgnored(t *testing.T) {
	page, err := dom.ParseString(heroPage)
	if err != nil {
		t.Fatal(err)
	}
	var callbacks []func()
	afterFunc := func(_ time.Duration, f func()) Timer {
		callbacks = append(callbacks, f)
		return lateTimer{}
	}
	player := &fakePlayer{}
	c := New(page, Options{
		Loader:    siteWithHeroConfig(t, videoConfig),
		Player:    player,
		Logger:    quietLogger(),
		AfterFunc: afterFunc,
	})
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	c.HandleResize(500)
	c.HandleResize(1280)
	for _, f := range callbacks {
		f()
	}

	if got := len(player.attached); got != 1 {
		t.Errorf("video set up %d times, want 1 (init only)", got)
	}
	if got := c.Snapshot().Device; got != Desktop {
		t.Errorf("device = %s, want desktop", got)
	}
	if c.State() != StateReady {
		t.Errorf("state = %s, want ready", c.State())
	}
}

func TestResizeToDisabledDeviceSkipsVideo(t *testing.T) {
	cfg := `{"video":{"enabled":true,"desktop":"/d.mp4","tablet":"/t.mp4","mobile":{"enabled":false,"path":"/m.mp4"}}}`
	c, page, clock, player := newController(t, cfg)
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	c.HandleResize(400)
	clock.elapse()
	if got := len(player.attached); got != 1 {
		t.Errorf("video set up %d times, want 1", got)
	}
	if c.Snapshot().Device != Mobile {
		t.Errorf("device = %s, want mobile", c.Snapshot().Device)
	}
	if src := page.QuerySelector("video source").GetAttribute("src"); src != "/d.mp4" {
		t.Errorf("existing video replaced: %q", src)
	}
}

func TestVideoErrorRemovesContainer(t *testing.T) {
	c, page, _, player := newController(t, videoConfig)
	player.playErr = errors.New("autoplay blocked")
	if err := c.Init(context.Background(), 1280); err != nil {
		t.Fatal(err)
	}
	if c.State() != StateReady {
		t.Fatalf("play rejection surfaced: state %s", c.State())
	}
	player.onError[0]()
	if page.QuerySelector(".hero-video-container") != nil {
		t.Error("container not removed after video error")
	}
}
