package sections

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ziadkadry99/folio/internal/dom"
)

const page = `<!DOCTYPE html><html><body>
<div id="work-grid"><p>loading</p></div>
<div id="experience-grid"></div>
<div id="services-description-container"></div>
<div id="services-grid"></div>
<div id="services-cta-container"></div>
<div id="about-description"></div>
<div id="about-stats"></div>
<div id="about-skills"></div>
<div id="about-arsenal"></div>
</body></html>`

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(nil, nil)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func newTestPage(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return doc
}

func decode[T any](t *testing.T, src string) *T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(src), &v); err != nil {
		t.Fatalf("decoding %T: %v", v, err)
	}
	return &v
}

func TestRenderWorkCriticalCard(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	work := decode[WorkDocument](t, `{"research":[{
		"severity":"CRITICAL","cve":"CVE-2024-0001","title":"T","description":"D",
		"year":2024,"stats":[{"label":"L","value":"V"}]}]}`)

	if n := work.Render(doc, r); n != 1 {
		t.Fatalf("Render = %d, want 1", n)
	}

	grid := doc.GetElementByID(WorkContainerID)
	cards := grid.Children()
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	card := cards[0]
	if card.QuerySelector("div.bg-red-500") == nil {
		t.Error("accent element with bg-red-500 missing")
	}
	text := card.TextContent()
	for _, want := range []string{"CRITICAL", "CVE-2024-0001", "2024", "T", "D", "L", "V"} {
		if !strings.Contains(text, want) {
			t.Errorf("card text missing %q", want)
		}
	}
	if card.QuerySelector("a") != nil {
		t.Error("card without link must not contain an anchor")
	}
	if strings.Contains(grid.InnerHTML(), "loading") {
		t.Error("previous container contents not replaced")
	}
}

func TestSeverityAccent(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityCritical, "bg-red-500"},
		{SeverityHigh, "bg-orange-500"},
		{SeverityChain, "bg-purple-500"},
		{SeverityPaper, "bg-blue-500"},
		{"LOW", NeutralAccent},
		{"", NeutralAccent},
		{"critical", NeutralAccent},
	}
	for _, tt := range tests {
		if got := tt.severity.Accent(); got != tt.want {
			t.Errorf("Severity(%q).Accent() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestRenderWorkLinkDefaultsIcon(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	work := decode[WorkDocument](t, `{"research":[{"severity":"PAPER","title":"x",
		"link":{"url":"https://example.com/paper","text":"Read"}}]}`)
	work.Render(doc, r)

	a := doc.QuerySelector("#work-grid a")
	if a == nil {
		t.Fatal("link anchor missing")
	}
	if got := a.GetAttribute("href"); got != "https://example.com/paper" {
		t.Errorf("href = %q", got)
	}
	if a.QuerySelector("i[data-lucide=external-link]") == nil {
		t.Error("default external-link icon missing")
	}
}

func TestRenderWorkIdempotent(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	work := decode[WorkDocument](t, `{"research":[
		{"severity":"HIGH","cve":"CVE-1","title":"a","stats":[{"label":"x","value":1,"color":"red"},{"label":"y","value":2}]},
		{"severity":"CHAIN","title":"b"}]}`)

	work.Render(doc, r)
	first := doc.GetElementByID(WorkContainerID).InnerHTML()
	work.Render(doc, r)
	second := doc.GetElementByID(WorkContainerID).InnerHTML()
	if first != second {
		t.Error("second render differs from the first")
	}

	a, err := r.WorkMarkup(work)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := r.WorkMarkup(work)
	if a != b {
		t.Error("WorkMarkup is not deterministic")
	}
}

func TestRenderWorkStats(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	work := decode[WorkDocument](t, `{"research":[{"severity":"HIGH","stats":[
		{"label":"CVSS","value":9.8,"color":"red"},{"label":"Impact","value":"RCE"}]}]}`)
	work.Render(doc, r)

	if doc.QuerySelector("#work-grid .text-red-500") == nil {
		t.Error("coloured stat value missing")
	}
	if got := len(doc.QuerySelectorAll("#work-grid .bg-black\\/20")); got != 1 {
		t.Errorf("got %d dividers, want 1", got)
	}
}

func TestRenderWorkEscapesAndSanitises(t *testing.T) {
	r := newTestRenderer(t)
	doc := newTestPage(t, page)
	work := decode[WorkDocument](t, `{"research":[{"severity":"HIGH",
		"title":"<script>alert(1)</script>",
		"description":"Found <b>RCE</b><script>alert(2)</script>"}]}`)
	work.Render(doc, r)

	grid := doc.GetElementByID(WorkContainerID)
	if grid.QuerySelector("script") != nil {
		t.Fatal("script element injected")
	}
	if grid.QuerySelector("p b") == nil {
		t.Error("safe inline markup in description dropped")
	}
	if !strings.Contains(grid.TextContent(), "<script>alert(1)</script>") {
		t.Error("title should render as literal text")
	}
}

func TestRenderWorkSkips(t *testing.T) {
	r := newTestRenderer(t)

	t.Run("missing container", func(t *testing.T) {
		doc := newTestPage(t, `<html><body><div id="other"></div></body></html>`)
		work := decode[WorkDocument](t, `{"research":[{"severity":"HIGH"}]}`)
		if n := work.Render(doc, r); n != 0 {
			t.Errorf("Render = %d, want 0", n)
		}
	})

	t.Run("empty research", func(t *testing.T) {
		doc := newTestPage(t, page)
		work := decode[WorkDocument](t, `{}`)
		if n := work.Render(doc, r); n != 0 {
			t.Errorf("Render = %d, want 0", n)
		}
		if !strings.Contains(doc.GetElementByID(WorkContainerID).InnerHTML(), "loading") {
			t.Error("container modified for empty document")
		}
	})
}
