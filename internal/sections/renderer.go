// Package sections maps section data documents to page markup.
//
// Each section document decodes into explicit variant types (the
// discriminator checks run once, at decode time) and renders through one
// html/template per variant. Rendering is a pure function of the document:
// the same input always yields byte-identical markup, and each render fully
// replaces its container's contents.
package sections

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/fetch"
	"github.com/ziadkadry99/folio/internal/icons"
)

// Renderer holds the parsed templates and the rich-text pipeline shared by
// every section.
type Renderer struct {
	tmpl   *template.Template
	policy *bluemonday.Policy
	md     goldmark.Markdown
	icons  icons.Renderer
	logger *slog.Logger
}

// NewRenderer parses the section templates. A nil icon renderer leaves icon
// placeholders untouched; a nil logger uses slog.Default().
func NewRenderer(ic icons.Renderer, logger *slog.Logger) (*Renderer, error) {
	if ic == nil {
		ic = icons.None{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	tmpl, err := template.New("sections").Funcs(template.FuncMap{
		"button": func(b *CTAButton, class string) buttonView {
			return buttonView{Button: b, Class: class}
		},
	}).Parse(sectionTemplates)
	if err != nil {
		return nil, fmt.Errorf("parsing section templates: %w", err)
	}

	policy := bluemonday.UGCPolicy()
	policy.AllowStyles("color", "background-color", "font-weight", "font-style").OnElements("span", "pre")

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)

	return &Renderer{
		tmpl:   tmpl,
		policy: policy,
		md:     md,
		icons:  ic,
		logger: logger,
	}, nil
}

// Renderable is a decoded section document that knows its containers.
type Renderable interface {
	// Render replaces the contents of each of the section's containers
	// present on the page and returns how many were rendered.
	Render(page *dom.Document, r *Renderer) int
}

// Section binds a logical section name to its document type.
type Section struct {
	Name  string
	Fetch func(ctx context.Context, l *fetch.Loader) (Renderable, bool)
}

// All returns the data-driven sections in page order.
func All() []Section {
	return []Section{
		section[WorkDocument]("work"),
		section[ExperienceDocument]("experience"),
		section[ServicesDocument]("services"),
		section[AboutDocument]("about"),
	}
}

func section[T any, PT interface {
	*T
	Renderable
}](name string) Section {
	return Section{
		Name: name,
		Fetch: func(ctx context.Context, l *fetch.Loader) (Renderable, bool) {
			doc, ok := fetch.Section[T](ctx, l, name)
			if !ok {
				return nil, false
			}
			return PT(doc), true
		},
	}
}

// execute renders a named template to a string.
func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing %s: %w", name, err)
	}
	return buf.String(), nil
}

// fill replaces a container's contents with markup and re-scans its icons.
// A nil container is a no-op.
func (r *Renderer) fill(container *dom.Element, markup string) error {
	if container == nil {
		return nil
	}
	if err := container.SetInnerHTML(markup); err != nil {
		return err
	}
	r.icons.CreateIcons(container)
	return nil
}

// fillByID renders into the element with the given id, logging and
// swallowing failures so one sub-block never blocks another.
func (r *Renderer) fillByID(page *dom.Document, id string, build func() (string, error)) bool {
	container := page.GetElementByID(id)
	if container == nil {
		r.logger.Debug("container not on page", "id", id)
		return false
	}
	markup, err := build()
	if err != nil {
		r.logger.Error("rendering section block", "id", id, "error", err)
		return false
	}
	if err := r.fill(container, markup); err != nil {
		r.logger.Error("injecting section block", "id", id, "error", err)
		return false
	}
	return true
}

// richText sanitises inline HTML supplied by a document.
func (r *Renderer) richText(s string) template.HTML {
	return template.HTML(strings.TrimSpace(r.policy.Sanitize(s)))
}

// markdown converts Markdown to sanitised HTML.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return r.richText(buf.String()), nil
}
