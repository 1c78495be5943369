package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// Tab 页面上的一个标签页，可以嵌套子标签页
type Tab struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Caption string  `json:"caption,omitempty"`
	Tooltip string  `json:"tooltip,omitempty"`
	Blocks  []Block `json:"blocks,omitempty"`
	Tabs    []Tab   `json:"tabs,omitempty"`
}

// Page 一个品牌/研究的完整洞察页
type Page struct {
	Title     string `json:"title"`
	Brand     string `json:"brand"`
	Study     string `json:"study"`
	TitleSize int    `json:"title_size"`
	Tabs      []Tab  `json:"tabs"`
}

// Page 组装 Stories / People / Influencers / Ideas 四个标签页
func (r *Renderer) Page(b *model.InsightBundle, brand, study string) (*Page, error) {
	if b == nil {
		b = &model.InsightBundle{}
	}
	influencers, err := r.influencerTabs(b.Influencers)
	if err != nil {
		return nil, fmt.Errorf("render influencers for %s/%s: %w", brand, study, err)
	}

	return &Page{
		Title:     TitleCase(brand) + ": " + study,
		Brand:     brand,
		Study:     study,
		TitleSize: r.ctx.TitleSize,
		Tabs: []Tab{
			{ID: "stories", Label: "Stories", Tabs: r.storyTabs(b)},
			{ID: "people", Label: "People", Blocks: []Block{r.RenderPeople(b.People)}},
			{ID: "influencers", Label: "Influencers", Tabs: influencers},
			{ID: "ideas", Label: "Ideas", Tabs: r.ideaTabs(b.Ideas)},
		},
	}, nil
}

// ThemesCaption 主题标签页的说明，带第一条主题的扫描日期
func ThemesCaption(themes []model.ThemeRecord) string {
	lastScan := "-"
	if len(themes) > 0 {
		lastScan = orDash(themes[0].LastScan.String())
	}
	return "Observable stories and behaviors shaping culture right now • Last scan: " + lastScan
}

func (r *Renderer) storyTabs(b *model.InsightBundle) []Tab {
	themes := b.AllThemes()
	s := b.Stories

	dimensions := make([]Block, 0, len(s.Dimensions))
	for _, d := range s.Dimensions {
		dimensions = append(dimensions, r.RenderDimension(d))
	}
	metaphors := make([]Block, 0, len(s.Metaphors))
	for _, m := range s.Metaphors {
		metaphors = append(metaphors, r.RenderMetaphor(m))
	}
	framing := make([]Block, 0, len(s.Framing))
	for _, f := range s.Framing {
		framing = append(framing, r.RenderFraming(f))
	}
	shifts := make([]Block, 0, len(s.Evolution))
	for _, w := range s.Evolution {
		shifts = append(shifts, r.RenderWordShift(w))
	}

	return []Tab{
		{
			ID:      "themes",
			Label:   "📖 Themes",
			Caption: ThemesCaption(themes),
			Tooltip: Tooltips["caption"],
			Blocks:  orPlaceholder(r.RenderThemes(themes)),
		},
		{
			ID:      "dimensions",
			Label:   "🔎 Deep Patterns",
			Caption: "Underlying conceptual tensions organizing meaning across domains",
			Blocks:  gridOf(LayoutColumns3, dimensions),
		},
		{
			ID:      "metaphors",
			Label:   "🔗 Shared Signals",
			Caption: "Illustrative parallels showing shared structure across domains",
			Blocks:  orPlaceholder(metaphors),
		},
		{
			ID:      "framing",
			Label:   "🌍 Local Lenses",
			Caption: "How core ideas are locally interpreted and emphasized across cultures",
			Blocks:  orPlaceholder(framing),
		},
		{
			ID:      "word-shifts",
			Label:   "🧠 Word Shifts",
			Caption: "How key terms shift meaning across contexts and time",
			Blocks:  orPlaceholder(shifts),
		},
	}
}

func (r *Renderer) influencerTabs(inf model.Influencers) ([]Tab, error) {
	narratives := make([]Block, 0, len(inf.Narratives))
	for _, n := range inf.Narratives {
		narratives = append(narratives, r.RenderInfluencerNarrative(n))
	}
	graph, err := r.RenderDiffusionGraph(inf.Pathways)
	if err != nil {
		return nil, err
	}
	brokers := make([]Block, 0, len(inf.Brokers))
	for _, g := range inf.Brokers {
		brokers = append(brokers, r.RenderBrokerGroup(g))
	}

	return []Tab{
		{
			ID:      "networks",
			Label:   "🕸️ Network Types",
			Caption: "Key influencer ecosystems shaping cultural conversations and commerce",
			Blocks:  gridOf(LayoutColumns2, narratives),
		},
		{
			ID:      "pathways",
			Label:   "🛤️ Diffusion Paths",
			Caption: "How cultural moments spread through influencer networks to drive adoption",
			Blocks:  []Block{graph},
		},
		{
			ID:      "brokers",
			Label:   "👑 Key Brokers",
			Caption: "Most influential voices shaping brand perception and cultural trends",
			Blocks:  orPlaceholder(brokers),
		},
	}, nil
}

var ideaTabMeta = map[model.IdeaVariant]struct{ label, caption string }{
	model.IdeaHypotheses:      {"🧪 Hypotheses", "Key if–then hypotheses to test."},
	model.IdeaGaps:            {"🔍 Opportunity Gaps", "Unmet opportunities—each gap is a trigger for action."},
	model.IdeaPlaybooks:       {"🎨 Culture Creation", "Activation Playbooks—frameworks distilled by AI from 50K+ cultural data points"},
	model.IdeaScenarios:       {"❓ What If", "What If Scenarios — projected outcomes"},
	model.IdeaRecommendations: {"🚀 Actions", "Next steps—priority actions."},
}

func (r *Renderer) ideaTabs(ideas model.Ideas) []Tab {
	lists := ideas.Lists()
	tabs := make([]Tab, 0, len(lists))
	for _, l := range lists {
		meta := ideaTabMeta[l.Variant()]
		tabs = append(tabs, Tab{
			ID:      string(l.Variant()),
			Label:   meta.label,
			Caption: meta.caption,
			Blocks:  []Block{r.RenderIdeaList(l)},
		})
	}
	return tabs
}

func orPlaceholder(blocks []Block) []Block {
	if len(blocks) == 0 {
		return []Block{placeholder(NoData)}
	}
	return blocks
}

func gridOf(layout string, blocks []Block) []Block {
	if len(blocks) == 0 {
		return []Block{placeholder(NoData)}
	}
	for i := range blocks {
		blocks[i].Index = i
	}
	return []Block{{Kind: KindGrid, Layout: layout, Children: blocks}}
}

// TitleCase 每个单词首字母大写，其余小写
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
