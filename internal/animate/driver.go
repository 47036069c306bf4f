package animate

import (
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/ziadkadry99/folio/internal/dom"
)

// Placeholder selectors written by the about section renderer.
const (
	CounterSelector    = ".stat-counter"
	BarSelector        = ".skill-bar"
	BarItemSelector    = ".skill-bar-item"
	PercentageSelector = ".skill-percentage"
)

// Counter and bar timing.
const (
	CounterStart    = 0.95
	CounterDuration = 1200 * time.Millisecond
	CounterStagger  = 200 * time.Millisecond

	BarStart    = 0.80
	BarDuration = 800 * time.Millisecond
	BarStagger  = 150 * time.Millisecond
)

// Bound reports how many placeholders were bound to timelines.
type Bound struct {
	Counters int `json:"counters"`
	Bars     int `json:"bars"`
}

// Bind attaches the page's stat counters and skill bars to engine. Counters
// share one replayable timeline triggered by the first counter; bars share
// one play-once timeline triggered by the first bar.
func Bind(page *dom.Document, engine Engine, logger *slog.Logger) Bound {
	if logger == nil {
		logger = slog.Default()
	}
	b := Bound{
		Counters: bindCounters(page.QuerySelectorAll(CounterSelector), engine, logger),
		Bars:     bindBars(page.QuerySelectorAll(BarSelector), engine, logger),
	}
	logger.Debug("animations bound", "counters", b.Counters, "bars", b.Bars)
	return b
}

func bindCounters(counters []*dom.Element, engine Engine, logger *slog.Logger) int {
	if len(counters) == 0 {
		return 0
	}
	tl := engine.Timeline(Trigger{
		Element:      counters[0],
		Start:        CounterStart,
		ResetOnLeave: true,
	})
	n := 0
	for i, el := range counters {
		target, err := strconv.ParseFloat(el.GetAttribute("data-target"), 64)
		if err != nil {
			logger.Warn("skipping counter with invalid target", "target", el.GetAttribute("data-target"))
			continue
		}
		prefix, suffix := el.GetAttribute("data-prefix"), el.GetAttribute("data-suffix")
		initial := el.TextContent()
		tl.To(Tween{
			From:     0,
			To:       target,
			Duration: CounterDuration,
			Ease:     Power2Out,
			OnUpdate: func(v float64) {
				el.SetTextContent(prefix + strconv.Itoa(int(math.Round(v))) + suffix)
			},
			Reset: func() { el.SetTextContent(initial) },
		}, time.Duration(i)*CounterStagger)
		n++
	}
	return n
}

func bindBars(bars []*dom.Element, engine Engine, logger *slog.Logger) int {
	if len(bars) == 0 {
		return 0
	}
	tl := engine.Timeline(Trigger{
		Element: bars[0],
		Start:   BarStart,
		Once:    true,
	})
	n := 0
	for i, bar := range bars {
		width, err := strconv.ParseFloat(bar.GetAttribute("data-width"), 64)
		if err != nil {
			logger.Warn("skipping skill bar with invalid width", "width", bar.GetAttribute("data-width"))
			continue
		}
		var pct *dom.Element
		if item := bar.Closest(BarItemSelector); item != nil {
			pct = item.QuerySelector(PercentageSelector)
		}
		tl.To(Tween{
			From:     0,
			To:       width,
			Duration: BarDuration,
			Ease:     Power2Out,
			OnUpdate: func(v float64) {
				s := strconv.Itoa(int(math.Round(v))) + "%"
				bar.Style().Set("width", s)
				if pct != nil {
					pct.SetTextContent(s)
				}
			},
		}, time.Duration(i)*BarStagger)
		n++
	}
	return n
}
