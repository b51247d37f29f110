package bench

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
)

var htmlTemplate = template.Must(template.New("bench").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Compliance Benchmark</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 6px 10px; text-align: left; }
.pass { color: #2e7d32; }
.fail { color: #c62828; }
</style>
</head>
<body>
<h1>Compliance Benchmark</h1>
<p>{{ .Passed }}/{{ .Total }} passed ({{ printf "%.1f" .AccuracyPct }}%), generated {{ .GeneratedAt.Format "2006-01-02 15:04:05 MST" }}</p>
<table>
<tr><th>Case</th><th>Name</th><th>Category</th><th>Expected</th><th>Got</th><th>Outcome</th></tr>
{{ range .Results }}
<tr>
<td>{{ .Case.ID }}</td>
<td>{{ .Case.Name }}</td>
<td>{{ .Result.Metadata.Category }}</td>
<td>{{ .Case.Expected }}</td>
<td>{{ .Result.ComplianceStatus }}</td>
{{ if .Passed }}<td class="pass">PASS</td>{{ else }}<td class="fail">FAIL</td>{{ end }}
</tr>
{{ end }}
</table>
</body>
</html>
`))

// htmlView adapts Outcome for the template.
type htmlView struct {
	*Outcome
	AccuracyPct float64
}

// WriteHTML renders the outcome as a standalone HTML page.
func WriteHTML(outcome *Outcome, path string) error {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, htmlView{Outcome: outcome, AccuracyPct: outcome.Accuracy * 100}); err != nil {
		return fmt.Errorf("render benchmark HTML: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write benchmark HTML: %w", err)
	}
	return nil
}
