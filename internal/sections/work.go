package sections

import (
	"html/template"

	"github.com/ziadkadry99/folio/internal/dom"
)

// WorkContainerID is the grid that receives research cards.
const WorkContainerID = "work-grid"

// Severity classifies a research item.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityChain    Severity = "CHAIN"
	SeverityPaper    Severity = "PAPER"
)

// NeutralAccent is used for severities outside the known vocabulary.
const NeutralAccent = "bg-gray-500"

var severityAccents = map[Severity]string{
	SeverityCritical: "bg-red-500",
	SeverityHigh:     "bg-orange-500",
	SeverityChain:    "bg-purple-500",
	SeverityPaper:    "bg-blue-500",
}

// Accent returns the background class for the severity.
func (s Severity) Accent() string {
	if c, ok := severityAccents[s]; ok {
		return c
	}
	return NeutralAccent
}

// WorkDocument is data/work-data.json.
type WorkDocument struct {
	Research []ResearchItem `json:"research"`
}

// ResearchItem is one vulnerability or paper card.
type ResearchItem struct {
	Severity    Severity `json:"severity"`
	CVE         string   `json:"cve"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Year        Text     `json:"year"`
	Stats       []Stat   `json:"stats"`
	Link        *Link    `json:"link,omitempty"`
}

type researchView struct {
	Accent      string
	Severity    string
	CVE         string
	Year        string
	Title       string
	Description template.HTML
	Stats       []statView
	Link        *Link
	LinkIcon    string
}

// WorkMarkup renders the research grid.
func (r *Renderer) WorkMarkup(doc *WorkDocument) (string, error) {
	views := make([]researchView, len(doc.Research))
	for i, item := range doc.Research {
		v := researchView{
			Accent:      item.Severity.Accent(),
			Severity:    string(item.Severity),
			CVE:         item.CVE,
			Year:        item.Year.String(),
			Title:       item.Title,
			Description: r.richText(item.Description),
			Stats:       statViews(item.Stats),
			Link:        item.Link,
		}
		if item.Link != nil {
			v.LinkIcon = item.Link.Icon
			if v.LinkIcon == "" {
				v.LinkIcon = "external-link"
			}
		}
		views[i] = v
	}
	return r.execute("work-grid", views)
}

// Render implements Renderable.
func (d *WorkDocument) Render(page *dom.Document, r *Renderer) int {
	if len(d.Research) == 0 {
		return 0
	}
	if r.fillByID(page, WorkContainerID, func() (string, error) { return r.WorkMarkup(d) }) {
		return 1
	}
	return 0
}
