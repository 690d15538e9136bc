package quote

import (
	"fmt"
	"html/template"
)

const publicTemplateName = "public_quote"

var publicTemplate = template.Must(template.New(publicTemplateName).Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"line":  func(it Item) float64 { return round2(it.UnitPrice * it.Quantity) },
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}).Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Quote</title>
<style>
body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
<h1>Quote{{with deref .CompanyName}} for {{.}}{{end}}</h1>
<p>Status: {{.Status}}</p>
<table>
<thead><tr><th>Item</th><th>Qty</th><th>Unit price</th><th>Tax %</th><th>Line</th></tr></thead>
<tbody>
{{range .Items}}<tr><td>{{.Name}}{{with deref .Description}}<br><small>{{.}}</small>{{end}}</td><td>{{.Quantity}}</td><td>{{money .UnitPrice}}</td><td>{{.TaxRate}}</td><td>{{money (line .)}}</td></tr>
{{end}}</tbody>
</table>
<p><strong>Total: {{money .Total}} {{.Currency}}</strong></p>
</body>
</html>
`))
