// Package renderer turns simulation results into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/simfolio"
)

//go:embed *.md
var templates embed.FS

// Holdings is the rendering model of a single valuation of a portfolio.
type Holdings struct {
	Lines       []simfolio.Quote
	Total       simfolio.Money
	CatalogSize int
}

// NewHoldings builds the Holdings of quotes, totaled in currency.
func NewHoldings(quotes []simfolio.Quote, currency string) *Holdings {
	total := simfolio.M(0, currency)
	for _, q := range quotes {
		total = total.Add(q.Price)
	}
	return &Holdings{Lines: quotes, Total: total, CatalogSize: len(simfolio.Catalog())}
}

// RenderHoldings renders the Holdings struct to a markdown string.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_title": "holdings_title.md",
		"holdings_table": "holdings_table.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}

// RenderReport renders a simfolio.Report to a markdown string.
func RenderReport(r *simfolio.Report) string {
	partials := map[string]string{
		"report_title":    "report_title.md",
		"report_summary":  "report_summary.md",
		"report_holdings": "report_holdings.md",
	}
	return renderTemplate("report", "report.md", partials, r)
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
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
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
