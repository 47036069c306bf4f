package sections

import (
	"strconv"

	"github.com/ziadkadry99/folio/internal/dom"
)

// About container ids.
const (
	AboutDescriptionID = "about-description"
	AboutStatsID       = "about-stats"
	AboutSkillsID      = "about-skills"
	AboutArsenalID     = "about-arsenal"
)

// AboutDocument is data/about-data.json. Description is Markdown.
type AboutDocument struct {
	Description string         `json:"description"`
	Stats       []AboutStat    `json:"stats"`
	Skills      []Skill        `json:"skills"`
	Arsenal     []ToolCategory `json:"arsenal"`
}

// AboutStat is an animated counter. Prefix and Suffix are shown around the
// animated value ("$", "K+").
type AboutStat struct {
	Label  string  `json:"label"`
	Value  float64 `json:"value"`
	Prefix string  `json:"prefix,omitempty"`
	Suffix string  `json:"suffix,omitempty"`
	Icon   string  `json:"icon,omitempty"`
}

// Skill is an animated proficiency bar; Level is a percentage.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ToolCategory groups tool chips under a heading.
type ToolCategory struct {
	Category string   `json:"category"`
	Icon     string   `json:"icon,omitempty"`
	Items    []string `json:"items"`
}

type aboutStatView struct {
	Label  string
	Target string
	Prefix string
	Suffix string
	Icon   string
}

type skillView struct {
	Name  string
	Width string
}

// AboutDescriptionMarkup converts the Markdown description.
func (r *Renderer) AboutDescriptionMarkup(src string) (string, error) {
	body, err := r.markdown(src)
	if err != nil {
		return "", err
	}
	return r.execute("about-description", body)
}

// AboutStatsMarkup renders zero-valued counters carrying their targets.
func (r *Renderer) AboutStatsMarkup(stats []AboutStat) (string, error) {
	views := make([]aboutStatView, len(stats))
	for i, s := range stats {
		views[i] = aboutStatView{
			Label:  s.Label,
			Target: strconv.FormatFloat(s.Value, 'f', -1, 64),
			Prefix: s.Prefix,
			Suffix: s.Suffix,
			Icon:   s.Icon,
		}
	}
	return r.execute("about-stats", views)
}

// AboutSkillsMarkup renders empty skill bars carrying their widths.
func (r *Renderer) AboutSkillsMarkup(skills []Skill) (string, error) {
	views := make([]skillView, len(skills))
	for i, s := range skills {
		level := min(max(s.Level, 0), 100)
		views[i] = skillView{Name: s.Name, Width: strconv.Itoa(level)}
	}
	return r.execute("about-skills", views)
}

// AboutArsenalMarkup renders the tool categories.
func (r *Renderer) AboutArsenalMarkup(arsenal []ToolCategory) (string, error) {
	return r.execute("about-arsenal", arsenal)
}

// Render implements Renderable.
func (d *AboutDocument) Render(page *dom.Document, r *Renderer) int {
	n := 0
	if d.Description != "" && r.fillByID(page, AboutDescriptionID, func() (string, error) {
		return r.AboutDescriptionMarkup(d.Description)
	}) {
		n++
	}
	if len(d.Stats) > 0 && r.fillByID(page, AboutStatsID, func() (string, error) {
		return r.AboutStatsMarkup(d.Stats)
	}) {
		n++
	}
	if len(d.Skills) > 0 && r.fillByID(page, AboutSkillsID, func() (string, error) {
		return r.AboutSkillsMarkup(d.Skills)
	}) {
		n++
	}
	if len(d.Arsenal) > 0 && r.fillByID(page, AboutArsenalID, func() (string, error) {
		return r.AboutArsenalMarkup(d.Arsenal)
	}) {
		n++
	}
	return n
}
