package view

import (
	"html/template"
	"strings"
	"time"
)

// printTemplate is the self-contained document for the print surface.
// The hosting environment decides how to materialize it (new window,
// native print dialog, file export).
var printTemplate = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="he" dir="rtl">
<head>
<meta charset="utf-8">
<title>הדפסת פרטי לקוח - {{.Name}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, sans-serif; color: #000; background: #fff; padding: 20px 40px; direction: rtl; }
.header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 20px; margin-bottom: 30px; }
h1 { margin: 0; font-size: 24pt; }
.meta { color: #666; font-size: 10pt; margin-top: 10px; }
.section { margin-bottom: 25px; page-break-inside: avoid; }
.section-title { font-size: 14pt; font-weight: bold; border-bottom: 1px solid #ccc; padding-bottom: 5px; margin-bottom: 15px; }
.grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 15px; }
.item { border: 1px solid #eee; padding: 10px; border-radius: 4px; background-color: #f9f9f9; }
.label { color: #666; font-size: 9pt; margin-bottom: 3px; }
.value { font-weight: 600; font-size: 11pt; }
@media print { body { padding: 0.5cm; } .item, .section { break-inside: avoid; } }
</style>
</head>
<body>
<div class="header">
<h1>{{.Name}}</h1>
<div class="meta">הודפס בתאריך: {{.Date}}</div>
</div>
<div class="section">
<div class="section-title">פרטים ראשיים</div>
<div class="grid">
{{range .Core}}<div class="item"><div class="label">{{.Label}}</div><div class="value">{{.Value}}</div></div>
{{end}}</div>
</div>
{{if .Extended}}<div class="section">
<div class="section-title">מידע נוסף</div>
<div class="grid">
{{range .Extended}}<div class="item"><div class="label">{{.Field}}</div><div class="value">{{.Value}}</div></div>
{{end}}</div>
</div>
{{end}}<div class="meta" style="margin-top: 50px; text-align: center; border-top: 1px solid #eee; padding-top: 10px;">Nextis Management System</div>
</body>
</html>
`))

// RenderPrintable serializes the detail sections into a self-contained
// HTML document string for a separate print surface.
func RenderPrintable(d Details, printedAt time.Time) (string, error) {
	data := struct {
		Details
		Date string
	}{Details: d, Date: printedAt.Format("02/01/2006")}

	var b strings.Builder
	if err := printTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
