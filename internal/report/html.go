package report

import "html/template"

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Segoe UI, Arial, sans-serif; margin: 2em; color: #222; }
h1 { border-bottom: 2px solid #444; padding-bottom: 0.2em; }
table { border-collapse: collapse; margin: 1em 0; width: 100%; }
th, td { border: 1px solid #bbb; padding: 0.35em 0.6em; text-align: left; font-size: 0.9em; }
th { background: #efefef; }
.summary td { font-weight: bold; }
.deviant { background: #ffe5e5; }
.error { background: #fff3cd; }
.missing { color: #b00020; }
.unexpected { color: #b05a00; }
.sentinel { color: #777; font-style: italic; }
.folder { margin-top: 1.5em; }
.folder h2 { font-size: 1.05em; margin-bottom: 0.2em; }
.meta { color: #555; font-size: 0.85em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} &mdash; run {{.Run.RunID}} &mdash; parent {{.Run.Parent}}</p>
{{if .TemplateDescription}}<p class="meta">Template: {{.TemplateDescription}}</p>{{end}}

<table class="summary">
<tr><th>Folders scanned</th><th>Deviant</th><th>Errors</th><th>Reported</th></tr>
<tr><td>{{.Run.FoldersScanned}}</td><td>{{.Run.DeviantCount}}</td><td>{{.Run.ErrorCount}}</td><td>{{len .Run.Results}}</td></tr>
</table>

{{range .Run.Results}}
<div class="folder{{if .Deviant}} deviant{{end}}{{if .Error}} error{{end}}">
<h2>{{.Path}}</h2>
{{if .Error}}
<p class="meta">ACL could not be read: {{.Error}}</p>
{{else}}
<p class="meta">Owner: {{.Owner}} &mdash; Modified: {{.LastModified.Format "2006-01-02 15:04"}} &mdash; Inheritance {{if .InheritanceEnabled}}enabled{{else}}disabled{{end}}</p>
{{if .Deviations}}
<table>
<tr><th>Principal</th><th>Right</th><th>Deviation</th></tr>
{{range .Deviations}}
<tr><td>{{.Principal}}</td><td>{{.RightName}}</td><td class="{{.Kind}}">{{.Kind}}</td></tr>
{{end}}
</table>
{{end}}
{{if .Aces}}
<table>
<tr><th>Principal</th><th>Right</th><th>Type</th><th>Applies to</th><th>Inherited from</th></tr>
{{range .Aces}}
<tr><td>{{.Ace.Principal}}</td><td>{{.Ace.RightName}}</td><td>{{.Ace.AccessType}}</td><td>{{.Ace.AppliesTo}}</td><td{{if eq .InheritedFrom "<none (this folder)>"}} class="sentinel"{{end}}>{{.InheritedFrom}}</td></tr>
{{end}}
</table>
{{end}}
{{end}}
</div>
{{end}}

{{if not .Run.Results}}
<p>No folders to report.</p>
{{end}}
</body>
</html>
`))
