package icons

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/dom"
)

func TestSpriteReplacesHooks(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><div id="grid">
		<i data-lucide="calendar" class="w-4 h-4"></i>
		<span>text</span>
		<i data-lucide="clock"></i>
	</div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	grid := doc.GetElementByID("grid")

	n := Sprite{URL: "/assets/icons.svg"}.CreateIcons(grid)
	if n != 2 {
		t.Fatalf("replaced %d icons, want 2", n)
	}
	if len(grid.QuerySelectorAll(HookSelector)) != 0 {
		t.Error("placeholders should be gone")
	}
	svgs := grid.QuerySelectorAll("svg.lucide")
	if len(svgs) != 2 {
		t.Fatalf("svg count = %d, want 2", len(svgs))
	}
	if !svgs[0].HasClass("lucide-calendar") || !svgs[0].HasClass("w-4") {
		t.Errorf("classes = %q", svgs[0].GetAttribute("class"))
	}
	if !strings.Contains(grid.InnerHTML(), `href="/assets/icons.svg#clock"`) {
		t.Errorf("missing sprite reference in %s", grid.InnerHTML())
	}

	// A second scan is a no-op.
	if n := (Sprite{URL: "/assets/icons.svg"}).CreateIcons(grid); n != 0 {
		t.Errorf("rescan replaced %d icons, want 0", n)
	}
}

func TestNone(t *testing.T) {
	el := dom.NewElement("div")
	if err := el.SetInnerHTML(`<i data-lucide="x"></i>`); err != nil {
		t.Fatal(err)
	}
	if n := (None{}).CreateIcons(el); n != 0 {
		t.Errorf("None replaced %d", n)
	}
	if el.QuerySelector(HookSelector) == nil {
		t.Error("None should leave placeholders")
	}
}

func TestSpriteNilRoot(t *testing.T) {
	if n := (Sprite{}).CreateIcons(nil); n != 0 {
		t.Errorf("nil root replaced %d", n)
	}
}
