package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/markdown"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

const (
	hypothesisBorder   = "1px solid #888"
	gapBorder          = "1px dashed #999"
	defaultCardBorder  = "1px solid #ccc"
	scenarioColor      = "#FF5722"
	recommendationEdge = "#4CAF50"
)

var cssBorder = regexp.MustCompile(`^\d+(\.\d+)?px (solid|dashed|dotted|double|groove|ridge|inset|outset) (#[0-9a-fA-F]{3,8}|[a-zA-Z]{3,20})$`)

// RenderIdeaList 按列表种类分派到五种固定布局之一
func (r *Renderer) RenderIdeaList(list model.IdeaList) Block {
	if list == nil || list.Len() == 0 {
		return placeholder(NoData)
	}
	switch l := list.(type) {
	case model.Hypotheses:
		return renderHypotheses(l)
	case model.Gaps:
		return renderGaps(l)
	case model.Playbooks:
		return renderPlaybooks(l)
	case model.Scenarios:
		return renderScenarios(l)
	case model.Recommendations:
		return renderRecommendations(l)
	default:
		return placeholder(NoData)
	}
}

func sourceLine(source string) Block {
	return Block{Kind: KindText, Layout: LayoutMuted, Body: markdown.RenderMarkdown("Source: " + orDash(source))}
}

// 假设：两列网格
func renderHypotheses(list model.Hypotheses) Block {
	cards := make([]Block, 0, len(list))
	for i, h := range list {
		cards = append(cards, Block{
			Kind:   KindCard,
			Index:  i,
			Title:  markdown.RenderMarkdown(h.Statement),
			Border: hypothesisBorder,
			Children: []Block{
				sourceLine(h.Source),
				details("Full Hypothesis", markdownOr(h.Statement, NoData)),
			},
		})
	}
	return Block{Kind: KindGrid, Layout: LayoutColumns2, Children: cards}
}

// 机会缺口：虚线边框单列
func renderGaps(list model.Gaps) Block {
	cards := make([]Block, 0, len(list))
	for i, g := range list {
		cards = append(cards, Block{
			Kind:   KindCard,
			Index:  i,
			Title:  markdown.RenderMarkdown("🎯 " + g.Title),
			Border: gapBorder,
			Children: []Block{
				markdownOr(g.Body, NoData),
				sourceLine(g.Source),
			},
		})
	}
	return Block{Kind: KindGrid, Layout: LayoutStack, Children: cards}
}

// 行动手册：整宽卡片，目标、步骤、指标分段
func renderPlaybooks(list model.Playbooks) Block {
	cards := make([]Block, 0, len(list))
	for i, p := range list {
		cards = append(cards, Block{
			Kind:   KindCard,
			Index:  i,
			Title:  markdown.RenderMarkdown(p.Title),
			Border: PlaybookBorder(p.Border),
			Children: []Block{
				section("Goal", "", markdownOr(p.Goal, NoData)),
				section("Steps", "", markdownList(p.Steps, NoData)),
				section("Metrics", "", markdownList(p.Metrics, NoData)),
				sourceLine(p.Source),
			},
		})
	}
	return Block{Kind: KindGrid, Layout: LayoutStack, Children: cards}
}

// PlaybookBorder 校验记录里的 CSS 边框声明，不合法时使用默认边框
func PlaybookBorder(raw string) string {
	raw = strings.TrimSpace(raw)
	if cssBorder.MatchString(raw) {
		return raw
	}
	return defaultCardBorder
}

// 情景：带序号的纵向列表
func renderScenarios(list model.Scenarios) Block {
	items := make([]Block, 0, len(list))
	for i, s := range list {
		items = append(items, Block{
			Kind:     KindItem,
			Index:    i + 1,
			Title:    markdown.RenderMarkdown(s.Title),
			Body:     markdown.RenderMarkdown(s.Body),
			Subtitle: escapeHTML("Source: " + orDash(s.Source)),
			Color:    scenarioColor,
		})
	}
	return Block{Kind: KindList, Layout: LayoutNumbered, Children: items}
}

// 行动建议：左侧色条，按输入顺序展示并以 priority 编号
func renderRecommendations(list model.Recommendations) Block {
	items := make([]Block, 0, len(list))
	for _, rec := range list {
		items = append(items, Block{
			Kind:  KindCard,
			Index: rec.Priority,
			Title: escapeHTML(fmt.Sprintf("%d. %s", rec.Priority, rec.Title)),
			Body:  markdown.RenderMarkdown(rec.Body),
			Color: recommendationEdge,
		})
	}
	return Block{Kind: KindList, Layout: LayoutAccent, Children: items}
}
