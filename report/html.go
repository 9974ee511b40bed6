package report

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/report.html.tmpl
var templates embed.FS

var htmlTemplate = template.Must(template.ParseFS(templates, "templates/report.html.tmpl"))

func renderHTML(doc document) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
