// Package animate hands numeric progress from rendered placeholders to an
// animation engine. Engine is the narrow timeline/trigger surface the driver
// needs; Runner is a deterministic implementation driven by explicit scroll
// and tick calls.
package animate

import (
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
)

// Ease maps linear progress in [0,1] to eased progress.
type Ease func(t float64) float64

// Power2Out decelerates along a cubic curve.
func Power2Out(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Linear is the identity ease.
func Linear(t float64) float64 { return t }

// Trigger starts a timeline when Element's top edge scrolls above Start,
// a fraction of the viewport height measured from its top.
type Trigger struct {
	Element *dom.Element
	Start   float64
	// Once plays the timeline at most once.
	Once bool
	// ResetOnLeave rewinds the timeline when the element scrolls back
	// below the start line, so it replays on the next entry.
	ResetOnLeave bool
}

// Tween interpolates From to To over Duration, reporting each value.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Ease
	OnUpdate func(v float64)
	// Reset restores the pre-animation state; when nil the tween is
	// rewound by reporting From.
	Reset func()
}

// Timeline sequences tweens at absolute offsets from its start.
type Timeline interface {
	To(tw Tween, offset time.Duration) Timeline
}

// Engine creates scroll-triggered timelines.
type Engine interface {
	Timeline(trigger Trigger) Timeline
}
