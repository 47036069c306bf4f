// Package splash drives the page loader overlay: a percentage counter with
// a progress bar and an optional background video, hidden once the counter
// reaches 100%.
package splash

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/fetch"
)

// Element ids of the loader markup.
const (
	LoaderID    = "page-loader"
	TextID      = "loader-text"
	BarID       = "loader-progress-bar"
	VideoID     = "page-loader-video"
	ContainerID = "loader-container"
)

// LoadingClass is set on <body> while the loader is visible.
const LoadingClass = "loading"

// Config is config/loader-config.json.
type Config struct {
	Video       VideoConfig   `json:"video"`
	Counter     CounterConfig `json:"counter"`
	ProgressBar BarConfig     `json:"progressBar"`
}

type VideoConfig struct {
	Enabled bool    `json:"enabled"`
	Src     string  `json:"src"`
	Opacity float64 `json:"opacity"`
}

type CounterConfig struct {
	// Duration in milliseconds.
	Duration int `json:"duration"`
}

type BarConfig struct {
	Enabled      bool   `json:"enabled"`
	Color        string `json:"color"`
	Height       string `json:"height"`
	BorderRadius string `json:"borderRadius"`
}

// DefaultConfig is the loader config used when none is published.
func DefaultConfig() Config {
	return Config{
		Video:   VideoConfig{Opacity: 0.6},
		Counter: CounterConfig{Duration: 4000},
		ProgressBar: BarConfig{
			Enabled:      true,
			Color:        "#ffffff",
			Height:       "4px",
			BorderRadius: "9999px",
		},
	}
}

// Length returns the counter duration.
func (c CounterConfig) Length() time.Duration {
	return time.Duration(c.Duration) * time.Millisecond
}

// Progress is the eased counter value (easeOutQuart) after elapsed, in
// [0, 100].
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 100
	}
	if elapsed <= 0 {
		return 0
	}
	t := float64(elapsed) / float64(duration)
	return min(100*(1-math.Pow(1-t, 4)), 100)
}

// Splash is the loader overlay of one page.
type Splash struct {
	cfg       Config
	logger    *slog.Logger
	body      *dom.Element
	loader    *dom.Element
	text      *dom.Element
	bar       *dom.Element
	video     *dom.Element
	container *dom.Element
}

// New locates the loader markup. It returns false when the page has no
// loader or no counter text, in which case the splash is skipped.
func New(page *dom.Document, cfg Config, logger *slog.Logger) (*Splash, bool) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Splash{
		cfg:       cfg,
		logger:    logger,
		body:      page.Body(),
		loader:    page.GetElementByID(LoaderID),
		text:      page.GetElementByID(TextID),
		bar:       page.GetElementByID(BarID),
		video:     page.GetElementByID(VideoID),
		container: page.GetElementByID(ContainerID),
	}
	if s.loader == nil || s.text == nil {
		logger.Debug("page has no loader")
		return nil, false
	}
	return s, true
}

// Load fetches the loader config over DefaultConfig and calls New.
func Load(ctx context.Context, page *dom.Document, l *fetch.Loader, logger *slog.Logger) (*Splash, bool) {
	cfg, _ := fetch.Config(ctx, l, "loader", DefaultConfig())
	return New(page, cfg, logger)
}

// Config returns the effective config.
func (s *Splash) Config() Config { return s.cfg }

// Apply puts the page into its loading state and styles the loader.
func (s *Splash) Apply() {
	if s.body != nil {
		s.body.AddClass(LoadingClass)
	}

	v := s.cfg.Video
	if s.video != nil && v.Enabled && v.Src != "" {
		if source := s.video.QuerySelector("source"); source != nil {
			source.SetAttribute("src", v.Src)
		} else {
			s.video.SetAttribute("src", v.Src)
		}
		s.video.Style().Set("opacity", strconv.FormatFloat(v.Opacity, 'f', -1, 64))
		s.video.Style().Set("display", "block")
		s.logger.Debug("loader video enabled", "src", v.Src)
	}

	if s.container != nil {
		s.container.Style().Set("opacity", "1")
	}

	if s.bar != nil {
		b := s.cfg.ProgressBar
		if !b.Enabled {
			s.bar.Style().Set("display", "none")
		} else {
			s.bar.Style().Set("background", b.Color)
			s.bar.Style().Set("height", b.Height)
			s.bar.Style().Set("border-radius", b.BorderRadius)
		}
	}
}

// Frame renders the counter and bar at elapsed and returns the progress.
func (s *Splash) Frame(elapsed time.Duration) float64 {
	p := Progress(elapsed, s.cfg.Counter.Length())
	s.text.SetTextContent(strconv.Itoa(int(math.Floor(p))) + "%")
	if s.bar != nil {
		s.bar.Style().Set("width", strconv.FormatFloat(p, 'f', -1, 64)+"%")
	}
	return p
}

// Hide removes the overlay, stops the video and re-enables scrolling.
func (s *Splash) Hide() {
	s.loader.Style().Set("opacity", "0")
	s.loader.Style().Set("display", "none")
	if s.video != nil {
		s.video.RemoveAttribute("autoplay")
		s.video.RemoveAttribute("src")
	}
	if s.body != nil {
		s.body.RemoveClass(LoadingClass)
	}
}

// Finish renders the final frame and hides the loader.
func (s *Splash) Finish() {
	s.Frame(s.cfg.Counter.Length())
	s.Hide()
}

// Run renders one frame per elapsed time received on frames and hides the
// loader once the counter reaches 100%. If mu is not nil it is held while
// each frame touches the page.
func (s *Splash) Run(ctx context.Context, frames <-chan time.Duration, mu sync.Locker) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case elapsed, ok := <-frames:
			if !ok {
				return nil
			}
			if s.step(elapsed, mu) {
				return nil
			}
		}
	}
}

func (s *Splash) step(elapsed time.Duration, mu sync.Locker) bool {
	if mu != nil {
		mu.Lock()
		defer mu.Unlock()
	}
	if s.Frame(elapsed) < 100 {
		return false
	}
	s.Hide()
	return true
}

// Frames emits the time elapsed since the call every interval until ctx is
// done.
func Frames(ctx context.Context, interval time.Duration) <-chan time.Duration {
	out := make(chan time.Duration)
	go func() {
		defer close(out)
		start := time.Now()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case out <- now.Sub(start):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out
}
