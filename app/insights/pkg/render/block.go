package render

import (
	"html/template"
	"strings"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/markdown"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// Kind 展示块类型
type Kind string

const (
	KindCard        Kind = "card"
	KindGrid        Kind = "grid"
	KindMetric      Kind = "metric"
	KindCallout     Kind = "callout"
	KindDetails     Kind = "details"
	KindSection     Kind = "section"
	KindList        Kind = "list"
	KindItem        Kind = "item"
	KindQuote       Kind = "quote"
	KindTable       Kind = "table"
	KindText        Kind = "text"
	KindCaption     Kind = "caption"
	KindPlaceholder Kind = "placeholder"
	KindGraph       Kind = "graph"
	KindGroup       Kind = "group"
)

// 布局提示，由绘制端解释
const (
	LayoutColumns2 = "columns-2"
	LayoutColumns3 = "columns-3"
	LayoutStack    = "stack"
	LayoutFlex     = "flex"
	LayoutNumbered = "numbered"
	LayoutAccent   = "accent"
	LayoutTimeline = "timeline"
	LayoutMuted    = "muted"
	LayoutItalic   = "italic"
)

// 缺省内容的占位文字
const (
	NoData        = "No data"
	NoStory       = "No story provided"
	NoProofPoints = "No proof points"
	NoQuotes      = "No quotes"
	NoLanguage    = "No language notes"
)

// Block 展示树节点。
// Title、Subtitle、Body 和 Rows 已经过转义或白名单过滤，可直接嵌入 HTML；
// Tooltip、Badge、Color、Border 为纯文本，由绘制端负责转义。
type Block struct {
	Kind     Kind              `json:"kind"`
	Title    template.HTML     `json:"title,omitempty"`
	Subtitle template.HTML     `json:"subtitle,omitempty"`
	Badge    string            `json:"badge,omitempty"`
	Body     template.HTML     `json:"body,omitempty"`
	Tooltip  string            `json:"tooltip,omitempty"`
	Color    string            `json:"color,omitempty"`
	Border   string            `json:"border,omitempty"`
	Layout   string            `json:"layout,omitempty"`
	Index    int               `json:"index,omitempty"`
	Columns  []string          `json:"columns,omitempty"`
	Rows     [][]template.HTML `json:"rows,omitempty"`
	DOT      string            `json:"dot,omitempty"`
	Children []Block           `json:"children,omitempty"`
}

func escapeHTML(s string) template.HTML {
	return template.HTML(markdown.Escape(s))
}

func text(body template.HTML) Block {
	return Block{Kind: KindText, Body: body}
}

func placeholder(msg string) Block {
	return Block{Kind: KindPlaceholder, Body: escapeHTML(msg)}
}

// markdownOr 渲染 markdown，内容为空时返回占位块
func markdownOr(raw, empty string) Block {
	if strings.TrimSpace(raw) == "" {
		return placeholder(empty)
	}
	return text(markdown.RenderMarkdown(raw))
}

func section(title, tooltip string, children ...Block) Block {
	return Block{Kind: KindSection, Title: escapeHTML(title), Tooltip: tooltip, Children: children}
}

func details(summary string, children ...Block) Block {
	return Block{Kind: KindDetails, Title: escapeHTML(summary), Children: children}
}

func metric(label, value, tooltip string) Block {
	return Block{Kind: KindMetric, Title: escapeHTML(label), Body: escapeHTML(value), Tooltip: tooltip}
}

// markdownList 每项按 markdown 渲染为列表项
func markdownList(items []string, empty string) Block {
	children := make([]Block, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		children = append(children, Block{Kind: KindItem, Body: markdown.RenderMarkdown(item)})
	}
	if len(children) == 0 {
		return placeholder(empty)
	}
	return Block{Kind: KindList, Children: children}
}

// pairList 渲染 "标签: 内容" 列表，标签转义，内容按 markdown 渲染
func pairList(pairs []model.Pair, empty string) Block {
	if len(pairs) == 0 {
		return placeholder(empty)
	}
	children := make([]Block, 0, len(pairs))
	for _, p := range pairs {
		children = append(children, Block{
			Kind:  KindItem,
			Title: escapeHTML(p.Key),
			Body:  markdown.RenderMarkdown(p.Value),
		})
	}
	return Block{Kind: KindList, Children: children}
}

// entriesBlock 按 Entries 的实际形态渲染
func entriesBlock(e model.Entries, empty string) Block {
	switch {
	case e.IsEmpty():
		return placeholder(empty)
	case e.Pairs != nil:
		return pairList(e.Items(), empty)
	case e.List != nil:
		return markdownList(e.List, empty)
	default:
		return markdownOr(e.Text, empty)
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
