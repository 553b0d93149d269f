// Package renderer turns folio reports into markdown strings, rendered from
// embedded templates so the layout can evolve without touching report logic.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderValuation renders a valuation report to a markdown string.
func RenderValuation(v *ValuationView) string {
	partials := map[string]string{
		"valuation_assets":     "templates/valuation_assets.md",
		"valuation_categories": "templates/valuation_categories.md",
	}
	return renderTemplate("valuation", "templates/valuation.md", partials, v)
}

// RenderSummary renders a portfolio summary to a markdown string.
func RenderSummary(s *SummaryView) string {
	return renderTemplate("summary", "templates/summary.md", nil, s)
}

// RenderPerformance renders a performance history to a markdown string.
func RenderPerformance(p *PerformanceView) string {
	return renderTemplate("performance", "templates/performance.md", nil, p)
}

// RenderRebalance renders a rebalancing report to a markdown string.
func RenderRebalance(r *RebalanceView) string {
	partials := map[string]string{
		"rebalance_suggestions": "templates/rebalance_suggestions.md",
		"rebalance_transfers":   "templates/rebalance_transfers.md",
	}
	return renderTemplate("rebalance", "templates/rebalance.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
