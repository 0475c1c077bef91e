// Package export produces the printable incident report: an HTML document
// shell embedding the rendered diagram, and a headless-browser printer that
// turns it into a PDF.
package export

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aretw0/ishikawa/pkg/domain"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>{{.Title}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 32px; color: #111827; }
  h1 { font-size: 20px; border-bottom: 2px solid #991b1b; padding-bottom: 8px; }
  .meta { margin: 16px 0 24px 0; font-size: 14px; }
  .meta dt { font-weight: bold; float: left; clear: left; width: 130px; }
  .meta dd { margin-left: 140px; }
  .diagram { text-align: center; }
  .diagram svg { max-width: 100%; height: auto; }
  @media print { body { margin: 12px; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<dl class="meta">
  <dt>Incident</dt><dd>{{.Incident}}</dd>
  <dt>Category</dt><dd>{{.Category}}</dd>
  <dt>Analysis level</dt><dd>{{.Level}}</dd>
  <dt>Generated</dt><dd>{{.Generated}}</dd>
</dl>
<div class="diagram">
{{.Diagram}}
</div>
{{if .AutoPrint}}<script>window.addEventListener('load', function () { window.print(); });</script>{{end}}
</body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// BuildHTML assembles the printable report document around the rendered SVG.
// With autoPrint set, the page invokes the native print dialog as soon as it
// loads, which is the path used when the web UI opens the report in a new tab.
func BuildHTML(report *domain.Report, diagramSVG string, autoPrint bool) (string, error) {
	var sb strings.Builder
	err := reportTmpl.Execute(&sb, struct {
		Title     string
		Incident  string
		Category  domain.Category
		Level     int
		Generated string
		Diagram   template.HTML
		AutoPrint bool
	}{
		Title:     report.Title(),
		Incident:  report.Incident,
		Category:  report.Category,
		Level:     report.Level,
		Generated: report.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		Diagram:   template.HTML(diagramSVG),
		AutoPrint: autoPrint,
	})
	if err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return sb.String(), nil
}
