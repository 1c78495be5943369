package render

import (
	"html/template"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/markdown"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// StrengthColors 维度强度对应的边框色
var StrengthColors = map[string]string{
	"Emerging": "#FFA500",
	"Moderate": "#FFD700",
	"Strong":   "#00B050",
}

// FramingColumns 本地化解读表格的固定列
var FramingColumns = []string{"Country", "Cultural Framing", "Key Indicators"}

// RenderDimension 深层维度卡片
func (r *Renderer) RenderDimension(rec model.DimensionRecord) Block {
	color, ok := StrengthColors[strings.TrimSpace(rec.Strength)]
	if !ok {
		color = DefaultPersonaColor
	}
	markers := "None"
	if len(rec.KeyMarkers) > 0 {
		markers = strings.Join(rec.KeyMarkers, ", ")
	}
	return Block{
		Kind:  KindCard,
		Title: escapeHTML(rec.Axis),
		Badge: rec.Strength,
		Color: color,
		Children: []Block{
			{Kind: KindGrid, Layout: LayoutColumns2, Children: []Block{
				metric("Signal Strength", orDash(rec.Strength), ""),
				metric("Key Markers", markers, ""),
			}},
			details("Full Details", markdownOr(rec.Narrative, NoData)),
		},
	}
}

// RenderMetaphor 跨领域类比：比喻、说明和对照表
func (r *Renderer) RenderMetaphor(rec model.MetaphorRecord) Block {
	columns := rec.Columns
	if len(columns) == 0 {
		columns = rowKeys(rec.Rows)
	}
	var children []Block
	if strings.TrimSpace(rec.Metaphor) != "" {
		children = append(children, Block{Kind: KindText, Layout: LayoutItalic, Body: markdown.RenderMarkdown(rec.Metaphor)})
	}
	if strings.TrimSpace(rec.Narrative) != "" {
		children = append(children, Block{Kind: KindCaption, Body: markdown.RenderMarkdown(rec.Narrative)})
	}
	children = append(children, table(columns, rec.Rows))
	return Block{Kind: KindSection, Title: escapeHTML(rec.Title), Children: children}
}

// RenderFraming 各国解读表、证据来源和战略影响
func (r *Renderer) RenderFraming(rec model.FramingRecord) Block {
	evidence := "-"
	if len(rec.Evidence) > 0 {
		evidence = strings.Join(rec.Evidence, ", ")
	}
	return Block{
		Kind:  KindSection,
		Title: escapeHTML(rec.Title),
		Children: []Block{
			table(FramingColumns, rec.Data),
			markdownLine("Evidence Sources", evidence),
			markdownLine("Strategic Impact", orDash(rec.StrategicImpact)),
		},
	}
}

// RenderWordShift 关键词语义演变时间线
func (r *Renderer) RenderWordShift(rec model.WordShiftRecord) Block {
	timeline := entriesBlock(rec.Evolution, NoData)
	if timeline.Kind == KindList {
		timeline.Layout = LayoutTimeline
	}
	children := []Block{timeline}
	if strings.TrimSpace(rec.ShiftDriver) != "" {
		children = append(children, Block{
			Kind:  KindCallout,
			Title: "Shift driver",
			Body:  markdown.RenderMarkdown(rec.ShiftDriver),
		})
	}
	return Block{Kind: KindSection, Title: escapeHTML(rec.Title), Children: children}
}

// markdownLine 渲染 "**标签:** 内容" 形式的一行
func markdownLine(label, value string) Block {
	return text(markdown.RenderMarkdown("**" + label + ":** " + value))
}

// table 按列名从每行取值，缺失的单元格留空
func table(columns []string, rows []map[string]any) Block {
	if len(columns) == 0 || len(rows) == 0 {
		return placeholder(NoData)
	}
	cells := make([][]template.HTML, 0, len(rows))
	for _, row := range rows {
		line := make([]template.HTML, len(columns))
		for i, col := range columns {
			if v, ok := row[col]; ok && v != nil {
				line[i] = escapeHTML(cast.ToString(v))
			}
		}
		cells = append(cells, line)
	}
	return Block{Kind: KindTable, Columns: columns, Rows: cells}
}

// rowKeys 没有声明列时取所有行的键，按字母排序
func rowKeys(rows []map[string]any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}
