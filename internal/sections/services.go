package sections

import (
	"html/template"
	"regexp"
	"strconv"
	"strings"

	"github.com/ziadkadry99/folio/internal/dom"
)

// Services container ids.
const (
	ServicesDescriptionID = "services-description-container"
	ServicesGridID        = "services-grid"
	ServicesCTAID         = "services-cta-container"
)

// ServicesDocument is data/services-data.json.
type ServicesDocument struct {
	Description *ServicesDescription `json:"description,omitempty"`
	Services    []Service            `json:"services"`
	CTA         *CTA                 `json:"cta,omitempty"`
}

// ServicesDescription is the intro paragraph and trust lines.
type ServicesDescription struct {
	Main      string   `json:"main"`
	TrustedBy []string `json:"trustedBy"`
}

// Service is one offering card. Featured cards use a different layout.
type Service struct {
	ID            Text     `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	Icon          string   `json:"icon"`
	Featured      bool     `json:"featured"`
	Certification string   `json:"certification,omitempty"`
}

// CTA is the call-to-action block under the services grid.
type CTA struct {
	Theme struct {
		InvertColors bool `json:"invertColors"`
	} `json:"theme"`
	Video           CTAVideo    `json:"video"`
	Badge           string      `json:"badge"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Buttons         []CTAButton `json:"buttons"`
	TrustIndicators []string    `json:"trustIndicators"`
}

// CTAVideo configures the CTA background video.
type CTAVideo struct {
	Enabled  bool       `json:"enabled"`
	Src      string     `json:"src"`
	Autoplay bool       `json:"autoplay"`
	Loop     bool       `json:"loop"`
	Muted    bool       `json:"muted"`
	Overlay  CTAOverlay `json:"overlay"`
}

// CTAOverlay tints the CTA video.
type CTAOverlay struct {
	Enabled bool    `json:"enabled"`
	Opacity float64 `json:"opacity"`
	Color   string  `json:"color"`
}

// CTAButton is a CTA link button.
type CTAButton struct {
	Text string `json:"text"`
	Link string `json:"link"`
	Icon string `json:"icon"`
}

type descriptionView struct {
	Main      template.HTML
	TrustedBy []string
}

type tagView struct {
	Text  string
	First bool
}

type serviceView struct {
	ID            string
	Title         string
	Description   template.HTML
	Icon          string
	Tags          []tagView
	Certification string
}

type ctaPalette struct {
	Container   string
	Corner      string
	BadgeBorder string
	Desc        string
	Trust       string
	Dot         string
	Divider     string
	Primary     string
	Secondary   string
}

var (
	ctaLight = ctaPalette{
		Container:   "border-white bg-white",
		Corner:      "bg-black",
		BadgeBorder: "border-black",
		Desc:        "text-black/70",
		Trust:       "text-black/60",
		Dot:         "bg-black",
		Divider:     "border-black/10",
		Primary:     "bg-black text-white border-black hover:bg-white hover:text-white hover:shadow-[6px_6px_0px_0px_rgba(0,0,0,1)]",
		Secondary:   "bg-white text-black border-black hover:shadow-[6px_6px_0px_0px_rgba(0,0,0,1)]",
	}
	ctaDark = ctaPalette{
		Container:   "border-white bg-black text-white",
		Corner:      "bg-white",
		BadgeBorder: "border-white",
		Desc:        "text-white/70",
		Trust:       "text-white/60",
		Dot:         "bg-white",
		Divider:     "border-white/10",
		Primary:     "bg-white text-black border-white hover:bg-black hover:text-white",
		Secondary:   "bg-black text-white border-white",
	}
)

type buttonView struct {
	Button *CTAButton
	Class  string
}

type ctaView struct {
	Colors          ctaPalette
	Video           CTAVideo
	OverlayStyle    template.CSS
	Badge           string
	Title           string
	Description     template.HTML
	Primary         *CTAButton
	Secondary       *CTAButton
	TrustIndicators []string
}

var cssColor = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|rgba?\([0-9.,\s%]+\)|hsla?\([0-9.,\s%deg]+\)|[a-zA-Z]+)$`)

// overlayStyle builds the overlay's inline style; colours that do not look
// like a CSS colour are dropped.
func overlayStyle(o CTAOverlay) template.CSS {
	style := ""
	if cssColor.MatchString(o.Color) {
		style += "background-color: " + o.Color + "; "
	}
	style += "opacity: " + strconv.FormatFloat(o.Opacity, 'f', -1, 64) + "; "
	if o.Enabled {
		style += "display: block"
	} else {
		style += "display: none"
	}
	return template.CSS(style)
}

// ServicesDescriptionMarkup renders the intro block.
func (r *Renderer) ServicesDescriptionMarkup(d *ServicesDescription) (string, error) {
	return r.execute("services-description", descriptionView{
		Main:      r.richText(d.Main),
		TrustedBy: d.TrustedBy,
	})
}

// ServicesGridMarkup renders the service cards, featured or standard.
func (r *Renderer) ServicesGridMarkup(services []Service) (string, error) {
	var sb strings.Builder
	for _, s := range services {
		view := serviceView{
			ID:            s.ID.String(),
			Title:         s.Title,
			Description:   r.richText(s.Description),
			Icon:          s.Icon,
			Certification: s.Certification,
		}
		for i, tag := range s.Tags {
			view.Tags = append(view.Tags, tagView{Text: tag, First: i == 0})
		}
		name := "service-standard"
		if s.Featured {
			name = "service-featured"
		}
		card, err := r.execute(name, view)
		if err != nil {
			return "", err
		}
		sb.WriteString(card)
	}
	return sb.String(), nil
}

// CTAMarkup renders the call-to-action block.
func (r *Renderer) CTAMarkup(cta *CTA) (string, error) {
	view := ctaView{
		Colors:          ctaLight,
		Video:           cta.Video,
		OverlayStyle:    overlayStyle(cta.Video.Overlay),
		Badge:           cta.Badge,
		Title:           cta.Title,
		Description:     r.richText(cta.Description),
		TrustIndicators: cta.TrustIndicators,
	}
	if cta.Theme.InvertColors {
		view.Colors = ctaDark
	}
	if len(cta.Buttons) > 0 {
		view.Primary = &cta.Buttons[0]
	}
	if len(cta.Buttons) > 1 {
		view.Secondary = &cta.Buttons[1]
	}
	return r.execute("services-cta", view)
}

// Render implements Renderable.
func (d *ServicesDocument) Render(page *dom.Document, r *Renderer) int {
	n := 0
	if d.Description != nil && r.fillByID(page, ServicesDescriptionID, func() (string, error) {
		return r.ServicesDescriptionMarkup(d.Description)
	}) {
		n++
	}
	if len(d.Services) > 0 && r.fillByID(page, ServicesGridID, func() (string, error) {
		return r.ServicesGridMarkup(d.Services)
	}) {
		n++
	}
	if d.CTA != nil && r.fillByID(page, ServicesCTAID, func() (string, error) {
		return r.CTAMarkup(d.CTA)
	}) {
		n++
	}
	return n
}
