package site

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/splash"
	"github.com/ziadkadry99/folio/internal/theme"
)

// DefaultFrameInterval is how often a live page's loader is redrawn.
const DefaultFrameInterval = 16 * time.Millisecond

// ErrNoLivePage is returned by Live operations before the first Load.
var ErrNoLivePage = errors.New("no live page loaded")

// Live keeps one built page running in memory: its loader plays in real
// time and its hero controller keeps reacting to viewport width changes.
// Every mutation of the page happens under Live's lock.
type Live struct {
	gen      *Generator
	logger   *slog.Logger
	interval time.Duration
	// schedule runs debounce callbacks; tests replace it.
	schedule func(d time.Duration, f func()) theme.Timer

	mu   sync.Mutex
	doc  *dom.Document
	m    *page.Manifest
	stop context.CancelFunc
}

// NewLive returns an empty live session for gen.
func NewLive(gen *Generator, logger *slog.Logger) *Live {
	if logger == nil {
		logger = slog.Default()
	}
	return &Live{
		gen:      gen,
		logger:   logger,
		interval: DefaultFrameInterval,
		schedule: func(d time.Duration, f func()) theme.Timer { return time.AfterFunc(d, f) },
	}
}

// Load builds a fresh page at width, replacing the previous one, and starts
// its loader. A non-positive width uses the generator's configured options.
func (l *Live) Load(ctx context.Context, width int) (*page.Manifest, error) {
	opts := l.gen.Options
	opts.Settle = false
	if width > 0 {
		opts.Width = width
	}
	opts.AfterFunc = l.afterFunc
	doc, m, err := l.gen.render(ctx, opts)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		l.stop()
	}
	playCtx, stop := context.WithCancel(context.Background())
	l.doc, l.m, l.stop = doc, m, stop
	if sp := m.Splash(); sp != nil {
		go l.play(playCtx, sp)
	}
	l.logger.Info("live page loaded", "build_id", m.BuildID, "device", m.Device)
	return m, nil
}

func (l *Live) play(ctx context.Context, sp *splash.Splash) {
	err := sp.Run(ctx, splash.Frames(ctx, l.interval), &l.mu)
	if err != nil && !errors.Is(err, context.Canceled) {
		l.logger.Warn("live loader stopped", "error", err)
	}
}

// afterFunc runs hero debounce callbacks under the page lock.
func (l *Live) afterFunc(d time.Duration, f func()) theme.Timer {
	return l.schedule(d, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		f()
	})
}

// Resize reports a viewport width change to the live page's hero and
// returns the hero's snapshot as of the call. The device class is only
// re-evaluated once the debounce window passes.
func (l *Live) Resize(width int) (theme.Snapshot, theme.State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		return theme.Snapshot{}, theme.StateUninitialized, ErrNoLivePage
	}
	hero := l.m.Controller()
	hero.HandleResize(width)
	return hero.Snapshot(), hero.State(), nil
}

// Hero returns the live hero's current snapshot and state.
func (l *Live) Hero() (theme.Snapshot, theme.State, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.m == nil {
		return theme.Snapshot{}, theme.StateUninitialized, ErrNoLivePage
	}
	hero := l.m.Controller()
	return hero.Snapshot(), hero.State(), nil
}

// Render writes the live page as it currently stands.
func (l *Live) Render(w io.Writer) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.doc == nil {
		return ErrNoLivePage
	}
	return l.doc.Render(w)
}

// Close stops the live page's loader.
func (l *Live) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop != nil {
		l.stop()
		l.stop = nil
	}
}
