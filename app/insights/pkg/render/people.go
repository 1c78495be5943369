package render

import (
	"strings"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// DefaultPersonaColor 画像卡片未指定边框色时的颜色
const DefaultPersonaColor = "#dddddd"

// RenderPersona 画像卡片：名称、占比徽标、特征列表和折叠详情
func (r *Renderer) RenderPersona(rec model.PersonaRecord) Block {
	color := metrics.NormalizeColor(rec.BorderColor)
	if color == "" {
		color = DefaultPersonaColor
	}

	var badge string
	if share := strings.TrimSpace(rec.Share.String()); share != "" {
		badge = "Share: " + share
	}

	return Block{
		Kind:  KindCard,
		Title: escapeHTML(rec.Name),
		Badge: badge,
		Color: color,
		Children: []Block{
			section("Key Traits", "", markdownList(rec.Traits, NoData)),
			details("Full Details",
				section("Behaviors", "", markdownOr(rec.Behaviors, NoData)),
				section("Evidence", "", markdownList(rec.Evidence, NoData)),
				section("Implications", "", markdownOr(rec.Implications, NoData)),
			),
		},
	}
}

// RenderPeople 渲染全部画像，三列排布
func (r *Renderer) RenderPeople(people []model.PersonaRecord) Block {
	if len(people) == 0 {
		return placeholder(NoData)
	}
	cards := make([]Block, 0, len(people))
	for i, p := range people {
		card := r.RenderPersona(p)
		card.Index = i
		cards = append(cards, card)
	}
	return Block{Kind: KindGrid, Layout: LayoutColumns3, Children: cards}
}
