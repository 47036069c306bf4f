package theme

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/fetch"
)

// HeroID is the id of the hero region.
const HeroID = "hero-section"

// DefaultDebounce is how long viewport changes must settle before the
// device class is re-evaluated.
const DefaultDebounce = 500 * time.Millisecond

// State is the controller lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
	StateReinitializingVideo
	// StateAborted is terminal: the hero region was not on the page.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	case StateReinitializingVideo:
		return "reinitializing-video"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Snapshot is the immutable input of one video (re)initialisation.
type Snapshot struct {
	Config HeroConfig
	Device DeviceClass
}

// Player controls playback of a media element.
type Player interface {
	// Attach registers onError to run when the video fails to load.
	Attach(video *dom.Element, onError func())
	// Play requests playback. A returned error (autoplay blocked) is
	// logged by the controller and otherwise ignored.
	Play(video *dom.Element) error
}

// NopPlayer leaves playback to the browser via the autoplay attribute.
type NopPlayer struct{}

func (NopPlayer) Attach(*dom.Element, func()) {}
func (NopPlayer) Play(*dom.Element) error     { return nil }

// Timer is a pending debounce callback.
type Timer interface {
	Stop() bool
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	// Loader fetches config/hero-config.json. Nil uses DefaultHeroConfig.
	Loader   *fetch.Loader
	Player   Player
	Logger   *slog.Logger
	Debounce time.Duration
	// AfterFunc schedules debounce callbacks; defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func()) Timer
}

// Controller owns the hero region of one page.
//
// Init and the debounced resize handling mutate the page; callers must not
// read or write the page concurrently with a pending resize.
type Controller struct {
	page      *dom.Document
	loader    *fetch.Loader
	player    Player
	logger    *slog.Logger
	debounce  time.Duration
	afterFunc func(time.Duration, func()) Timer

	mu      sync.Mutex
	state   State
	snap    Snapshot
	hero    *dom.Element
	pending Timer
	// gen identifies the latest resize; older callbacks that already
	// started before Stop could cancel them see a stale value and return.
	gen uint64
}

// New returns an uninitialised controller for page.
func New(page *dom.Document, opts Options) *Controller {
	c := &Controller{
		page:      page,
		loader:    opts.Loader,
		player:    opts.Player,
		logger:    opts.Logger,
		debounce:  opts.Debounce,
		afterFunc: opts.AfterFunc,
	}
	if c.player == nil {
		c.player = NopPlayer{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.debounce <= 0 {
		c.debounce = DefaultDebounce
	}
	if c.afterFunc == nil {
		c.afterFunc = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the config and device class currently in effect.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Init loads the hero config, applies the theme for a viewport of the given
// width and sets up the background video. It may be called once.
func (c *Controller) Init(ctx context.Context, width int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUninitialized {
		return fmt.Errorf("hero controller already %s", c.state)
	}
	c.state = StateInitializing

	cfg := DefaultHeroConfig()
	if c.loader != nil {
		cfg, _ = fetch.Config(ctx, c.loader, "hero", cfg)
	}

	hero := c.page.GetElementByID(HeroID)
	if hero == nil {
		c.logger.Warn("hero section not found", "id", HeroID)
		c.state = StateAborted
		return nil
	}
	c.hero = hero
	c.snap = Snapshot{Config: cfg, Device: ClassOf(width)}

	applyColors(hero, cfg.Theme.Tokens())
	if cfg.Video.Enabled {
		c.setupVideo(c.snap)
	}
	c.state = StateReady

	c.logger.Debug("hero controller initialized",
		"device", c.snap.Device,
		"inverted", cfg.Theme.InvertColors,
		"video", cfg.Video.Enabled)
	return nil
}

// HandleResize records a viewport width change. Only the last change inside
// the debounce window is acted upon, and only a device class transition
// recreates the video.
func (c *Controller) HandleResize(width int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady && c.state != StateReinitializingVideo {
		return
	}
	if c.pending != nil {
		c.pending.Stop()
	}
	c.gen++
	gen := c.gen
	c.pending = c.afterFunc(c.debounce, func() { c.settle(width, gen) })
}

func (c *Controller) settle(width int, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return
	}
	c.pending = nil
	device := ClassOf(width)
	if device == c.snap.Device {
		return
	}
	c.logger.Info("device class changed", "from", c.snap.Device, "to", device)
	c.snap = Snapshot{Config: c.snap.Config, Device: device}

	if !c.snap.Config.Video.Enabled {
		return
	}
	c.state = StateReinitializingVideo
	c.setupVideo(c.snap)
	c.state = StateReady
}

// setupVideo replaces the hero's video container contents with a new video
// for snap.Device.
func (c *Controller) setupVideo(snap Snapshot) {
	cfg := snap.Config.Video
	src, ok := cfg.Source(snap.Device)
	if !ok {
		c.logger.Debug("video disabled for device", "device", snap.Device)
		return
	}

	container := c.hero.QuerySelector(".hero-video-container")
	if container == nil {
		container = dom.NewElement("div")
		container.AddClass("hero-video-container")
		c.hero.Prepend(container)
	} else {
		container.Clear()
	}

	video := dom.NewElement("video")
	video.AddClass("hero-video")
	video.SetAttribute("playsinline", "")
	video.ToggleAttribute("muted", cfg.Muted)
	video.ToggleAttribute("loop", cfg.Loop)
	video.ToggleAttribute("autoplay", cfg.Autoplay)

	source := dom.NewElement("source")
	source.SetAttribute("src", src)
	source.SetAttribute("type", "video/mp4")
	video.AppendChild(source)
	container.AppendChild(video)

	c.player.Attach(video, func() {
		c.logger.Warn("hero video failed to load", "src", src)
		container.Remove()
	})

	if cfg.Overlay.Enabled {
		tokens := snap.Config.Theme.Tokens()
		color := tokens.Primary
		if cfg.Overlay.UseSecondaryColor {
			color = tokens.Secondary
		}
		overlay := dom.NewElement("div")
		overlay.AddClass("hero-video-overlay")
		overlay.Style().Set("background-color", WithOpacity(color, cfg.Overlay.Opacity))
		container.AppendChild(overlay)
	}

	if err := c.player.Play(video); err != nil {
		c.logger.Warn("autoplay prevented", "src", src, "error", err)
	}
	c.logger.Debug("hero video loaded", "device", snap.Device, "src", src)
}
