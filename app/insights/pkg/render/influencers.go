package render

import (
	"strings"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/markdown"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// TeaserLength 影响者叙事摘要保留的字符数
const TeaserLength = 100

// RenderInfluencerNarrative 标题和故事摘要常驻，完整故事、证据和结论放在折叠区
func (r *Renderer) RenderInfluencerNarrative(rec model.InfluencerNarrative) Block {
	color := metrics.ColorOr(rec.Color, rec.Title, r.ctx.Palette)
	return Block{
		Kind:  KindCard,
		Title: markdown.RenderMarkdown(rec.Title),
		Color: color,
		Children: []Block{
			{Kind: KindText, Layout: LayoutMuted, Body: escapeHTML(Teaser(rec.Story))},
			details("Full Details",
				section("Story", "", markdownOr(rec.Story, NoStory)),
				section("Evidence", "", markdownList(rec.Evidence, NoData)),
				section("Strategic Takeaway", "", markdownOr(rec.Takeaway, NoData)),
			),
		},
	}
}

// Teaser 取故事前 TeaserLength 个字符，截断时补省略号
func Teaser(story string) string {
	runes := []rune(strings.TrimSpace(story))
	if len(runes) <= TeaserLength {
		return string(runes)
	}
	return string(runes[:TeaserLength]) + "…"
}

// RenderBrokerGroup 按市场渲染外层容器，内部每位影响者一张小卡片
func (r *Renderer) RenderBrokerGroup(group model.BrokerGroup) Block {
	color := metrics.ColorOr(group.Color, group.Market, r.ctx.Palette)

	cards := make([]Block, 0, len(group.Brokers))
	for i, b := range group.Brokers {
		brands := "None"
		if len(b.Brands) > 0 {
			brands = strings.Join(b.Brands, ", ")
		}
		cards = append(cards, Block{
			Kind:     KindCard,
			Index:    i,
			Title:    escapeHTML(b.Name),
			Subtitle: escapeHTML(b.Role),
			Color:    color,
			Children: []Block{
				markdownOr(b.Impact, NoData),
				details("Full Details",
					metric("Followers", orDash(b.Followers.String()), ""),
					metric("Engagement", orDash(b.Engagement.String()), ""),
					metric("Specialty", orDash(b.Specialty), ""),
					metric("Brands", brands, ""),
				),
			},
		})
	}

	inner := placeholder(NoData)
	if len(cards) > 0 {
		inner = Block{Kind: KindGrid, Layout: LayoutFlex, Children: cards}
	}

	return Block{
		Kind:     KindGroup,
		Title:    escapeHTML(group.Market),
		Subtitle: markdown.RenderMarkdown(group.Description),
		Color:    color,
		Children: []Block{inner},
	}
}
