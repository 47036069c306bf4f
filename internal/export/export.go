// Package export converts a built page into a Markdown document.
package export

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/ziadkadry99/folio/internal/dom"
	"github.com/ziadkadry99/folio/internal/sections"
)

// Part is one exported heading and the containers rendered beneath it.
type Part struct {
	Title      string
	Containers []string
}

// Parts lists the exported section containers in page order.
var Parts = []Part{
	{Title: "About", Containers: []string{sections.AboutDescriptionID, sections.AboutStatsID, sections.AboutSkillsID, sections.AboutArsenalID}},
	{Title: "Research", Containers: []string{sections.WorkContainerID}},
	{Title: "Experience", Containers: []string{sections.ExperienceContainerID}},
	{Title: "Services", Containers: []string{sections.ServicesDescriptionID, sections.ServicesGridID, sections.ServicesCTAID}},
}

// stripSelector matches markup with no Markdown rendition.
const stripSelector = "script, style, video, svg, i[data-lucide]"

// Exporter converts page sections to Markdown.
type Exporter struct {
	conv *converter.Converter
	// Domain, when set, makes relative links absolute.
	Domain string
}

// New returns an Exporter using the CommonMark and table plugins.
func New(domain string) *Exporter {
	return &Exporter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
		Domain: domain,
	}
}

// Markdown exports every part with at least one non-empty container.
// Animated values should be settled first, or counters export as 0.
func (e *Exporter) Markdown(doc *dom.Document) (string, error) {
	var b strings.Builder
	for _, part := range Parts {
		var chunks []string
		for _, id := range part.Containers {
			el := doc.GetElementByID(id)
			if el == nil {
				continue
			}
			md, err := e.convert(el.InnerHTML())
			if err != nil {
				return "", fmt.Errorf("exporting #%s: %w", id, err)
			}
			if md != "" {
				chunks = append(chunks, md)
			}
		}
		if len(chunks) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("## " + part.Title + "\n\n")
		b.WriteString(strings.Join(chunks, "\n\n"))
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (e *Exporter) convert(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}
	frag, err := dom.ParseString("<html><body>" + fragment + "</body></html>")
	if err != nil {
		return "", err
	}
	for _, el := range frag.QuerySelectorAll(stripSelector) {
		el.Remove()
	}
	input := frag.Body().InnerHTML()
	var md string
	if e.Domain != "" {
		md, err = e.conv.ConvertString(input, converter.WithDomain(e.Domain))
	} else {
		md, err = e.conv.ConvertString(input)
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
