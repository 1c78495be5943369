// Package markdown turns the free-text fields of insight records into HTML
// fragments that are safe to embed in a page.
package markdown

import (
	"bytes"
	"html"
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	converter = goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Linkify,
			extension.Footnote,
			extension.DefinitionList,
			extension.Typographer,
		),
		goldmark.WithRendererOptions(
			// 单个换行即 <br>，内嵌 HTML 交给 policy 过滤
			gmhtml.WithHardWraps(),
			gmhtml.WithUnsafe(),
		),
	)

	policy = newPolicy()

	wrapperOpen = regexp.MustCompile(`^<(p|h[1-6])>`)
	mdLink      = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// AllowedTags 渲染结果中允许保留的标签
var AllowedTags = []string{
	"p", "em", "strong", "a", "ul", "ol", "li", "br", "blockquote", "code", "pre",
	"h1", "h2", "h3", "h4", "h5", "h6", "span", "table", "thead", "tbody", "tr", "th", "td",
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(AllowedTags...)
	p.AllowAttrs("href", "title", "rel", "target").OnElements("a")
	p.AllowAttrs("title").OnElements("span")
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes("http", "https", "mailto")
	// 外链新窗口打开，target="_blank" 的链接统一补 rel="noopener"
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Sanitize 按白名单过滤 HTML，不在白名单中的标签被去掉但保留文字。
// 对已过滤的结果再次调用不会产生变化。
func Sanitize(fragment string) string {
	return policy.Sanitize(fragment)
}

// RenderMarkdown 将 markdown 转为安全的 HTML 片段。
// 整段只包在一个 <p> 或标题标签里时去掉外层标签，转换失败时退回转义后的原文。
func RenderMarkdown(raw string) (out template.HTML) {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			out = template.HTML(html.EscapeString(raw))
		}
	}()

	var buf bytes.Buffer
	if err := converter.Convert([]byte(raw), &buf); err != nil {
		return template.HTML(html.EscapeString(raw))
	}
	return template.HTML(stripSingleWrapper(Sanitize(buf.String())))
}

// stripSingleWrapper 仅当整个片段恰好是一个 <p>/<hN> 元素时去掉外层标签
func stripSingleWrapper(fragment string) string {
	s := strings.TrimSpace(fragment)
	m := wrapperOpen.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	closing := "</" + m[1] + ">"
	if !strings.HasSuffix(s, closing) {
		return s
	}
	inner := s[len(m[0]) : len(s)-len(closing)]
	if strings.Contains(inner, closing) {
		return s
	}
	return strings.TrimSpace(inner)
}

// ParseMarkdownLinks 把 [label](url) 转为新窗口打开的链接。
// text 可以是字符串或字符串切片，切片先用 <br> 连接；结果同样经过白名单过滤。
func ParseMarkdownLinks(text any) template.HTML {
	var joined string
	switch v := text.(type) {
	case nil:
		return ""
	case string:
		joined = v
	case []string:
		joined = strings.Join(v, "<br>")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
		joined = strings.Join(parts, "<br>")
	default:
		return ""
	}

	linked := mdLink.ReplaceAllStringFunc(joined, func(match string) string {
		sub := mdLink.FindStringSubmatch(match)
		return `<a href="` + html.EscapeString(strings.TrimSpace(sub[2])) + `" target="_blank">` +
			html.EscapeString(sub[1]) + `</a>`
	})
	return template.HTML(Sanitize(linked))
}

// Escape 转义纯文本，供 HTML 属性或正文使用
func Escape(s string) string {
	return html.EscapeString(s)
}
