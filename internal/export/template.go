package export

import "html/template"

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} · {{.ProductLabel}}</title>
<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Merriweather:wght@400;700&family=Inter:wght@400;500;600&display=swap">
<style>
@page { size: A4; margin: 0; }
* { box-sizing: border-box; }
html, body { margin: 0; padding: 0; }
body {
  font-family: "Inter", "Helvetica Neue", Arial, sans-serif;
  color: #3f3a36;
  background: #ffffff;
  line-height: 1.65;
  font-size: 14px;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
.page { padding: 48px 56px; }
.cover { margin: -48px -56px 32px; }
.cover-color { height: 220px; width: 100%; }
.cover img { display: block; width: 100%; max-height: 320px; object-fit: cover; }
img { max-width: 100%; page-break-inside: avoid; break-inside: avoid; }
header { border-bottom: 1px solid #e6e1db; padding-bottom: 20px; margin-bottom: 28px; }
.category { font-size: 11px; letter-spacing: 0.12em; text-transform: uppercase; color: #a0968c; margin: 0 0 8px; }
h1 { font-family: "Merriweather", Georgia, serif; font-size: 30px; line-height: 1.25; color: #2b2622; margin: 0 0 10px; }
h2 { font-family: "Merriweather", Georgia, serif; font-size: 18px; color: #2b2622; margin: 0 0 14px; }
.meta { margin: 2px 0; font-size: 13px; color: #7a7068; }
.author { font-style: italic; }
.description { margin: 14px 0 0; color: #5b534c; }
.content-box {
  border-left: 4px solid #c8a46e;
  background: #faf8f5;
  padding: 18px 24px;
  border-radius: 0 6px 6px 0;
}
.content-box p { margin: 0 0 10px; }
.placeholder { color: #a0968c; font-style: italic; }
footer {
  margin-top: 40px;
  padding-top: 14px;
  border-top: 1px solid #e6e1db;
  font-size: 11px;
  color: #a0968c;
  display: flex;
  justify-content: space-between;
}
</style>
</head>
<body>
<div class="page">
{{- if .CoverColor}}
<div class="cover"><div class="cover-color" style="background-color: {{.CoverColor}}"></div></div>
{{- else if .CoverURL}}
<div class="cover"><img src="{{.CoverURL}}" alt="Cover"></div>
{{- end}}
<header>
<p class="category">{{.CategoryLabel}}</p>
<h1>{{.Title}}</h1>
{{- if .Author}}
<p class="meta author">by {{.Author}}</p>
{{- end}}
{{- if .Owner}}
<p class="meta owner">Note by: {{.Owner}}</p>
{{- end}}
{{- if .AddedOn}}
<p class="meta added-on">Added on {{.AddedOn}}</p>
{{- end}}
{{- if .Description}}
<p class="description">{{.Description}}</p>
{{- end}}
</header>
<main>
<h2>Notes &amp; Thoughts</h2>
{{- if .Content}}
<div class="content-box">{{.Content}}</div>
{{- else}}
<p class="placeholder">No notes written yet.</p>
{{- end}}
</main>
<footer>
<span>Exported on {{.ExportedOn}}</span>
<span>{{.ProductLabel}}</span>
</footer>
</div>
<script>
window.onload = function () { window.print(); };
window.onafterprint = function () { window.close(); };
</script>
</body>
</html>
`))
