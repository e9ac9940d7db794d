package report

import (
	"encoding/json"
	"fmt"
	htmltemplate "html/template"
	"strings"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Validation Report</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
.valid { color: #1a7f37; font-weight: bold; }
.invalid { color: #cf222e; font-weight: bold; }
table { border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid #d0d7de; padding: 0.4rem 0.8rem; text-align: left; }
code { background: #f6f8fa; padding: 0.1rem 0.3rem; }
</style>
</head>
<body>
<h1>Validation Report</h1>
<p>Schema: <code>{{.SchemaName}}</code><br>
Document: <code>{{.DocumentName}}</code><br>
Generated: {{.Generated}}<br>
Report ID: <code>{{.ID}}</code></p>
{{if .Valid}}
<p class="valid">VALID — the document conforms to the schema.</p>
{{else}}
<p class="invalid">INVALID — {{len .Errors}} error(s) found.</p>
<table>
<tr><th>Path</th><th>Message</th><th>Value</th></tr>
{{range .Errors}}
<tr><td><code>{{.Path}}</code></td><td>{{.Message}}</td><td><code>{{.Value}}</code></td></tr>
{{end}}
</table>
{{end}}
</body>
</html>
`

var htmlTemplate = htmltemplate.Must(htmltemplate.New("report").Parse(htmlPage))

type htmlRow struct {
	Path    string
	Message string
	Value   string
}

type htmlData struct {
	ID           string
	SchemaName   string
	DocumentName string
	Generated    string
	Valid        bool
	Errors       []htmlRow
}

// HTML renders a report as a standalone HTML page.
type HTML struct{}

// Render implements Renderer.
func (HTML) Render(r *Report) (string, error) {
	data := htmlData{
		ID:           r.ID,
		SchemaName:   r.SchemaName,
		DocumentName: r.DocumentName,
		Generated:    r.GeneratedAt.Format("2006-01-02 15:04:05 UTC"),
		Valid:        r.Result == nil || r.Result.Valid,
	}
	if r.Result != nil {
		for _, e := range r.Result.Errors {
			path := e.Path
			if path == "" {
				path = "(root)"
			}
			row := htmlRow{Path: path, Message: e.Message}
			if e.Value != nil {
				if enc, err := json.Marshal(e.Value); err == nil {
					row.Value = string(enc)
				} else {
					row.Value = fmt.Sprintf("%v", e.Value)
				}
			}
			data.Errors = append(data.Errors, row)
		}
	}
	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return b.String(), nil
}
