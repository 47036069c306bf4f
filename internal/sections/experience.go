package sections

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/folio/internal/dom"
)

// ExperienceContainerID is the grid that receives experience cards.
const ExperienceContainerID = "experience-grid"

// Entry is one experience card. The concrete type is one of CurrentRole,
// CommunityRole or StandardRole.
type Entry interface {
	entry()
}

// CurrentRole is the highlighted present position.
type CurrentRole struct {
	Role          string
	Description   string
	Duration      string
	DurationLabel string
	Tags          []string
	Stats         []Stat
}

// CommunityRole is a community/volunteer card with sub-items.
type CommunityRole struct {
	Role     string
	Subtitle string
	Icon     string
	Link     *Link
	Items    []CommunityItem
}

// CommunityItem is a tile inside a community card.
type CommunityItem struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StandardRole is a past position.
type StandardRole struct {
	Role        string
	Company     string
	Description string
	Duration    string
	Badge       string
	Icon        string
	Palette     Palette
	Footer      Footer
}

func (CurrentRole) entry()   {}
func (CommunityRole) entry() {}
func (StandardRole) entry()  {}

// Palette is the colour scheme of a standard role card.
type Palette int

const (
	PaletteOrange Palette = iota
	PaletteBlue
)

// FooterKind selects the footer list of a standard role card.
type FooterKind int

const (
	FooterNone FooterKind = iota
	FooterHighlights
	FooterCertifications
)

// Footer is the optional list at the bottom of a standard role card.
type Footer struct {
	Kind  FooterKind
	Lines []string
}

// ExperienceDocument is data/experience-data.json.
type ExperienceDocument struct {
	Experience []Entry
}

// rawEntry is the union of every field any variant reads.
type rawEntry struct {
	Current        bool            `json:"current"`
	Type           string          `json:"type"`
	Role           string          `json:"role"`
	Company        string          `json:"company"`
	Description    string          `json:"description"`
	Duration       string          `json:"duration"`
	DurationLabel  string          `json:"durationLabel"`
	Tags           []string        `json:"tags"`
	Stats          []Stat          `json:"stats"`
	Badge          string          `json:"badge"`
	BadgeColor     string          `json:"badgeColor"`
	Icon           string          `json:"icon"`
	Highlights     []string        `json:"highlights"`
	Certifications []string        `json:"certifications"`
	Subtitle       string          `json:"subtitle"`
	Link           *Link           `json:"link"`
	Items          []CommunityItem `json:"items"`
}

// UnmarshalJSON decodes each entry into its variant.
func (d *ExperienceDocument) UnmarshalJSON(b []byte) error {
	var raw struct {
		Experience []rawEntry `json:"experience"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	d.Experience = make([]Entry, len(raw.Experience))
	for i, e := range raw.Experience {
		d.Experience[i] = classify(e)
	}
	return nil
}

// classify picks the variant. Order matters: the current flag wins over
// the community type.
func classify(e rawEntry) Entry {
	switch {
	case e.Current:
		return CurrentRole{
			Role:          e.Role,
			Description:   e.Description,
			Duration:      e.Duration,
			DurationLabel: e.DurationLabel,
			Tags:          e.Tags,
			Stats:         e.Stats,
		}
	case e.Type == "community":
		return CommunityRole{
			Role:     e.Role,
			Subtitle: e.Subtitle,
			Icon:     e.Icon,
			Link:     e.Link,
			Items:    e.Items,
		}
	default:
		palette := PaletteOrange
		if e.BadgeColor == "blue" {
			palette = PaletteBlue
		}
		return StandardRole{
			Role:        e.Role,
			Company:     e.Company,
			Description: e.Description,
			Duration:    e.Duration,
			Badge:       e.Badge,
			Icon:        e.Icon,
			Palette:     palette,
			Footer:      footerOf(e.Highlights, e.Certifications),
		}
	}
}

// footerOf renders a list only when exactly one of the two is present.
func footerOf(highlights, certifications []string) Footer {
	hasH, hasC := highlights != nil, certifications != nil
	switch {
	case hasH && !hasC:
		return Footer{Kind: FooterHighlights, Lines: highlights}
	case hasC && !hasH:
		return Footer{Kind: FooterCertifications, Lines: certifications}
	default:
		return Footer{Kind: FooterNone}
	}
}

type paletteClasses struct {
	Gradient  string
	IconBg    string
	IconColor string
	Badge     string
}

var palettes = map[Palette]paletteClasses{
	PaletteBlue: {
		Gradient:  "from-blue-500 to-purple-500",
		IconBg:    "bg-blue-500",
		IconColor: "text-blue-500",
		Badge:     "bg-black text-white",
	},
	PaletteOrange: {
		Gradient:  "from-orange-500 to-red-500",
		IconBg:    "bg-orange-500",
		IconColor: "text-orange-500",
		Badge:     "bg-gray-200 text-black border border-black/20",
	},
}

type currentView struct {
	Role          string
	Description   template.HTML
	Duration      string
	DurationLabel string
	Tags          []string
	Stats         []statView
}

type communityView struct {
	Role     string
	Subtitle string
	Icon     string
	Link     *Link
	Items    []CommunityItem
}

type standardView struct {
	Role         string
	Company      string
	CompanyShort string
	Description  template.HTML
	Duration     string
	Badge        string
	Icon         string
	Colors       paletteClasses
	Highlights   []string
	Certs        []string
}

// cardView pairs a variant's template with its view model.
type cardView struct {
	Template string
	Data     any
}

func (r *Renderer) experienceCard(e Entry) (cardView, error) {
	switch v := e.(type) {
	case CurrentRole:
		return cardView{Template: "experience-current", Data: currentView{
			Role:          v.Role,
			Description:   r.richText(v.Description),
			Duration:      v.Duration,
			DurationLabel: v.DurationLabel,
			Tags:          v.Tags,
			Stats:         statViews(v.Stats),
		}}, nil
	case CommunityRole:
		return cardView{Template: "experience-community", Data: communityView(v)}, nil
	case StandardRole:
		view := standardView{
			Role:         v.Role,
			Company:      v.Company,
			CompanyShort: firstWord(v.Company),
			Description:  r.richText(v.Description),
			Duration:     v.Duration,
			Badge:        v.Badge,
			Icon:         v.Icon,
			Colors:       palettes[v.Palette],
		}
		switch v.Footer.Kind {
		case FooterHighlights:
			view.Highlights = v.Footer.Lines
		case FooterCertifications:
			view.Certs = v.Footer.Lines
		case FooterNone:
		}
		return cardView{Template: "experience-standard", Data: view}, nil
	default:
		return cardView{}, fmt.Errorf("unknown experience variant %T", e)
	}
}

// ExperienceMarkup renders the experience grid.
func (r *Renderer) ExperienceMarkup(doc *ExperienceDocument) (string, error) {
	var sb strings.Builder
	for _, e := range doc.Experience {
		card, err := r.experienceCard(e)
		if err != nil {
			return "", err
		}
		out, err := r.execute(card.Template, card.Data)
		if err != nil {
			return "", err
		}
		sb.WriteString(out)
	}
	return sb.String(), nil
}

// Render implements Renderable.
func (d *ExperienceDocument) Render(page *dom.Document, r *Renderer) int {
	if len(d.Experience) == 0 {
		return 0
	}
	if r.fillByID(page, ExperienceContainerID, func() (string, error) { return r.ExperienceMarkup(d) }) {
		return 1
	}
	return 0
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}
