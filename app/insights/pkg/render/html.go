package render

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
)

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"badgeText": metrics.BadgeTextColor,
}).Parse(pageTpl))

// WriteHTML 把页面绘制为完整的 HTML 文档
func WriteHTML(w io.Writer, p *Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// WriteHTMLFile 绘制到文件，目录不存在时自动创建
func WriteHTMLFile(path string, p *Page) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteHTML(f, p)
}

const pageTpl = `{{define "block"}}
{{- if eq .Kind "card"}}
<div class="card {{.Layout}}" style="{{if .Border}}border: {{.Border}}{{else}}border-color: {{.Color}}{{end}}">
    <div class="card-header">
        <div>
            <strong class="card-title"{{if .Tooltip}} title="{{.Tooltip}}"{{end}}>{{.Title}}</strong>
            {{if .Subtitle}}<div class="card-subtitle">{{.Subtitle}}</div>{{end}}
        </div>
        {{if .Badge}}<span class="badge" style="background: {{.Color}}; color: {{badgeText .Color}}">{{.Badge}}</span>{{end}}
    </div>
    {{if .Body}}<div class="card-body">{{.Body}}</div>{{end}}
    {{range .Children}}{{template "block" .}}{{end}}
</div>
{{- else if eq .Kind "grid"}}
<div class="grid {{.Layout}}">{{range .Children}}{{template "block" .}}{{end}}</div>
{{- else if eq .Kind "metric"}}
<div class="metric"{{if .Tooltip}} title="{{.Tooltip}}"{{end}}><strong>{{.Title}}:</strong> {{.Body}}</div>
{{- else if eq .Kind "callout"}}
<div class="callout"{{if .Tooltip}} title="{{.Tooltip}}"{{end}}><strong>{{.Title}}</strong>{{.Body}}</div>
{{- else if eq .Kind "details"}}
<details>
    <summary>{{.Title}}</summary>
    <div class="details-body">{{range .Children}}{{template "block" .}}{{end}}</div>
</details>
{{- else if eq .Kind "section"}}
<section{{if .Tooltip}} title="{{.Tooltip}}"{{end}}>
    <h4>{{.Title}}</h4>
    {{range .Children}}{{template "block" .}}{{end}}
</section>
{{- else if eq .Kind "list"}}
{{- if eq .Layout "numbered"}}
<div class="numbered">
    {{range .Children}}
    <div class="numbered-item">
        <div class="number" style="background: {{.Color}}">{{.Index}}</div>
        <div class="numbered-body">
            <div class="numbered-title" style="color: {{.Color}}">{{.Title}}</div>
            <div>{{.Body}}</div>
            <div class="muted small">{{.Subtitle}}</div>
        </div>
    </div>
    {{end}}
</div>
{{- else if eq .Layout "accent"}}
{{range .Children}}<div class="accent" style="border-left-color: {{.Color}}"><strong>{{.Title}}</strong><div>{{.Body}}</div></div>{{end}}
{{- else if eq .Layout "timeline"}}
<div class="timeline">{{range .Children}}<div class="timeline-row"><strong>{{.Title}}</strong> → {{.Body}}</div>{{end}}</div>
{{- else}}
<ul>{{range .Children}}<li>{{if .Title}}<strong>{{.Title}}:</strong> {{end}}{{.Body}}</li>{{end}}</ul>
{{- end}}
{{- else if eq .Kind "quote"}}
<blockquote>{{.Body}}{{if .Subtitle}}<footer>- {{.Subtitle}}</footer>{{end}}</blockquote>
{{- else if eq .Kind "table"}}
<table>
    <thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
    <tbody>{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}</tbody>
</table>
{{- else if eq .Kind "group"}}
<div class="group" style="border-color: {{.Color}}">
    <strong class="group-title">{{.Title}}</strong>
    {{if .Subtitle}}<p class="muted italic">{{.Subtitle}}</p>{{end}}
    {{range .Children}}{{template "block" .}}{{end}}
</div>
{{- else if eq .Kind "graph"}}
<div class="graph" data-dot="{{.DOT}}"></div>
{{- else if eq .Kind "caption"}}
<p class="caption">{{.Body}}</p>
{{- else if eq .Kind "placeholder"}}
<em class="placeholder">{{.Body}}</em>
{{- else}}
<div class="text {{.Layout}}">{{.Body}}</div>
{{- end}}
{{- end}}

{{define "tabs"}}
<div class="tabs">
    <div class="tab-bar">
        {{range $i, $t := .}}<button class="tab-btn{{if eq $i 0}} active{{end}}" data-tab="{{$t.ID}}">{{$t.Label}}</button>{{end}}
    </div>
    {{range $i, $t := .}}
    <div class="tab-panel{{if eq $i 0}} active{{end}}" data-panel="{{$t.ID}}">
        {{if $t.Caption}}<p class="caption"{{if $t.Tooltip}} title="{{$t.Tooltip}}"{{end}}>{{$t.Caption}}</p>{{end}}
        {{range $t.Blocks}}{{template "block" .}}{{end}}
        {{if $t.Tabs}}{{template "tabs" $t.Tabs}}{{end}}
    </div>
    {{end}}
</div>
{{end}}

<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.jsdelivr.net/npm/@viz-js/viz@3.2.4/lib/viz-standalone.js"></script>
    <style>
        :root {
            --primary-color: #2563eb;
            --bg-color: #f8fafc;
            --card-bg: #ffffff;
            --text-main: #1e293b;
            --text-secondary: #64748b;
            --border-color: #e2e8f0;
            --title-size: {{.TitleSize}}px;
        }
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            background-color: var(--bg-color);
            color: var(--text-main);
            line-height: 1.6;
            margin: 0;
            padding: 20px;
        }
        .container { max-width: 1100px; margin: 0 auto; }
        h1 { text-align: center; font-size: 2.2rem; margin: 0 0 24px 0; }
        .tab-bar { display: flex; flex-wrap: wrap; gap: 4px; border-bottom: 1px solid var(--border-color); margin-bottom: 12px; }
        .tab-btn { background: none; border: none; padding: 8px 14px; cursor: pointer; font-size: 1rem; color: var(--text-secondary); }
        .tab-btn.active { color: var(--primary-color); border-bottom: 2px solid var(--primary-color); }
        .tab-panel { display: none; }
        .tab-panel.active { display: block; }
        .caption { color: var(--text-secondary); font-size: 0.9rem; }
        .grid { display: grid; gap: 16px; grid-template-columns: 1fr; }
        @media (min-width: 768px) {
            .grid.columns-2 { grid-template-columns: 1fr 1fr; }
            .grid.columns-3 { grid-template-columns: 1fr 1fr 1fr; }
        }
        .grid.flex { display: flex; flex-wrap: wrap; justify-content: space-between; }
        .grid.flex > .card { flex: 1; min-width: 220px; margin: 8px; }
        .card {
            background: var(--card-bg);
            border: 2px solid var(--border-color);
            border-radius: 10px;
            padding: 16px;
            margin-bottom: 16px;
        }
        .card-header { display: flex; justify-content: space-between; align-items: flex-start; gap: 12px; margin-bottom: 8px; }
        .card-title { font-size: var(--title-size); }
        .card-subtitle { font-size: 13px; opacity: .85; font-style: italic; }
        .badge { padding: 2px 8px; border-radius: 6px; font-size: 13px; font-weight: bold; white-space: nowrap; }
        .grid > .metric { font-size: 0.95rem; }
        .callout { margin-top: 12px; padding: 8px 10px; border: 1px solid #e0e0e0; border-radius: 4px; font-size: 14px; }
        .callout strong { display: block; margin-bottom: 4px; }
        details { margin-top: 14px; }
        summary { font-weight: bold; cursor: pointer; }
        .details-body { padding: 10px 4px 0; border-top: 1px solid var(--border-color); }
        section { margin: 12px 0; }
        section h4 { margin: 0 0 4px; font-size: var(--title-size); }
        blockquote { margin: 0 0 8px; padding-left: 12px; border-left: 3px solid var(--border-color); }
        blockquote footer { font-size: 0.85em; margin-top: 4px; }
        table { border-collapse: collapse; width: 100%; margin: 8px 0; }
        th, td { border: 1px solid var(--border-color); padding: 6px 8px; text-align: left; vertical-align: top; }
        .group { border: 2px solid var(--border-color); border-radius: 8px; padding: 16px; margin-bottom: 24px; }
        .group-title { font-size: 18px; }
        .numbered { display: flex; flex-direction: column; gap: 16px; }
        .numbered-item { display: flex; align-items: flex-start; gap: 12px; }
        .number { min-width: 32px; height: 32px; border-radius: 50%; color: #fff; display: flex; align-items: center; justify-content: center; font-weight: bold; }
        .numbered-title { font-weight: bold; margin-bottom: 4px; }
        .accent { border-left: 5px solid; padding: 12px; margin-bottom: 8px; }
        .timeline { border: 1px solid #ddd; border-radius: 8px; padding: 16px; margin-bottom: 16px; }
        .timeline-row { margin-bottom: 12px; }
        .muted { color: var(--text-secondary); }
        .small { font-size: 12px; }
        .italic { font-style: italic; }
        .placeholder { color: var(--text-secondary); }
        .graph { overflow-x: auto; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        {{template "tabs" .Tabs}}
    </div>

    <script>
        document.querySelectorAll('.tab-btn').forEach(function (btn) {
            btn.addEventListener('click', function () {
                var tabs = btn.closest('.tabs');
                tabs.querySelectorAll(':scope > .tab-bar > .tab-btn').forEach(function (b) { b.classList.remove('active'); });
                tabs.querySelectorAll(':scope > .tab-panel').forEach(function (p) {
                    p.classList.toggle('active', p.dataset.panel === btn.dataset.tab);
                });
                btn.classList.add('active');
            });
        });

        // 扩散路径图
        if (window.Viz) {
            Viz.instance().then(function (viz) {
                document.querySelectorAll('.graph[data-dot]').forEach(function (el) {
                    el.appendChild(viz.renderSVGElement(el.dataset.dot));
                });
            });
        }
    </script>
</body>
</html>
`
