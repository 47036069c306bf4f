package animate

import (
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
)

// Runner is a deterministic Engine. Nothing moves until the caller reports
// scroll positions with Scroll and advances time with Tick; Settle jumps
// every timeline to its end. A Runner is not safe for concurrent use.
type Runner struct {
	timelines []*timeline
}

// NewRunner returns an empty Runner.
func NewRunner() *Runner {
	return &Runner{}
}

type scheduled struct {
	Tween
	offset time.Duration
}

type timeline struct {
	trigger  Trigger
	tweens   []scheduled
	duration time.Duration
	elapsed  time.Duration
	inView   bool
	playing  bool
	played   bool
}

// Timeline implements Engine.
func (r *Runner) Timeline(trigger Trigger) Timeline {
	tl := &timeline{trigger: trigger}
	r.timelines = append(r.timelines, tl)
	return tl
}

// To implements Timeline.
func (tl *timeline) To(tw Tween, offset time.Duration) Timeline {
	if tw.Ease == nil {
		tw.Ease = Linear
	}
	tl.tweens = append(tl.tweens, scheduled{Tween: tw, offset: offset})
	if end := offset + tw.Duration; end > tl.duration {
		tl.duration = end
	}
	return tl
}

// Scroll evaluates every trigger for a viewport of the given height.
// topOf reports an element's top edge relative to the viewport top.
func (r *Runner) Scroll(viewportHeight float64, topOf func(*dom.Element) float64) {
	for _, tl := range r.timelines {
		if tl.trigger.Element == nil {
			continue
		}
		in := topOf(tl.trigger.Element) <= tl.trigger.Start*viewportHeight
		switch {
		case in && !tl.inView:
			tl.inView = true
			if tl.trigger.Once && tl.played {
				continue
			}
			tl.playing = true
			tl.played = true
		case !in && tl.inView:
			tl.inView = false
			if tl.trigger.ResetOnLeave && !tl.trigger.Once {
				tl.reset()
			}
		}
	}
}

// Tick advances playing timelines by dt.
func (r *Runner) Tick(dt time.Duration) {
	for _, tl := range r.timelines {
		if !tl.playing {
			continue
		}
		tl.elapsed = min(tl.elapsed+dt, tl.duration)
		tl.render()
		if tl.elapsed >= tl.duration {
			tl.playing = false
		}
	}
}

// Settle plays every timeline to its end, as if each had been triggered
// and run to completion.
func (r *Runner) Settle() {
	for _, tl := range r.timelines {
		tl.elapsed = tl.duration
		tl.render()
		tl.playing = false
		tl.played = true
	}
}

// Active returns the number of timelines currently playing.
func (r *Runner) Active() int {
	n := 0
	for _, tl := range r.timelines {
		if tl.playing {
			n++
		}
	}
	return n
}

func (tl *timeline) render() {
	for _, tw := range tl.tweens {
		local := tl.elapsed - tw.offset
		if local < 0 || tw.OnUpdate == nil {
			continue
		}
		p := 1.0
		if tw.Duration > 0 {
			p = min(float64(local)/float64(tw.Duration), 1)
		}
		tw.OnUpdate(tw.From + (tw.To-tw.From)*tw.Ease(p))
	}
}

func (tl *timeline) reset() {
	tl.playing = false
	tl.elapsed = 0
	for _, tw := range tl.tweens {
		switch {
		case tw.Reset != nil:
			tw.Reset()
		case tw.OnUpdate != nil:
			tw.OnUpdate(tw.From)
		}
	}
}
