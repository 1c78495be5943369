package render

import (
	"fmt"
	"strings"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/markdown"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// RenderContext 一次渲染所需的显式上下文
type RenderContext struct {
	Palette   []string
	TitleSize int
}

// Renderer 把洞察记录转换为展示树，不做任何 I/O
type Renderer struct {
	ctx RenderContext
}

// NewRenderer 创建渲染器，未设置的字段使用默认值
func NewRenderer(ctx RenderContext) *Renderer {
	if len(ctx.Palette) == 0 {
		ctx.Palette = metrics.DefaultPalette
	}
	if ctx.TitleSize <= 0 {
		ctx.TitleSize = 20
	}
	return &Renderer{ctx: ctx}
}

var evolutionStages = []string{"early", "now", "next"}

// RenderTheme 生成主题卡片：标题、指标网格、可选摘要和折叠的详情区
func (r *Renderer) RenderTheme(rec model.ThemeRecord, index int) Block {
	color := metrics.ColorOr(rec.TrendColor, rec.Title, r.ctx.Palette)
	momentum := metrics.DeriveMomentum(rec.CurrentVolume, rec.PreviousVolume)

	also := "None"
	if len(rec.AlsoEmergingIn) > 0 {
		also = strings.Join(rec.AlsoEmergingIn, ", ")
	}

	children := []Block{{
		Kind:   KindGrid,
		Layout: LayoutColumns2,
		Children: []Block{
			metric("Growth", growthText(momentum), Tooltips["momentum"]),
			metric("Also In", also, Tooltips["also_emerging_in"]),
			metric("Stage", metrics.DeriveMaturity(rec.FirstSeen.String(), rec.LastScan.String()), Tooltips["maturity"]),
			metric("Last Scan", orDash(rec.LastScan.String()), Tooltips["last_scan"]),
		},
	}}

	if strings.TrimSpace(rec.Summary) != "" {
		children = append(children, Block{
			Kind:    KindCallout,
			Title:   "Summary",
			Body:    markdown.RenderMarkdown(rec.Summary),
			Tooltip: Tooltips["summary_box"],
		})
	}
	children = append(children, details("Full Details", themeSections(rec)...))

	return Block{
		Kind:     KindCard,
		Index:    index,
		Title:    markdown.RenderMarkdown(rec.Title),
		Subtitle: markdown.RenderMarkdown(rec.Subtitle),
		Tooltip:  Tooltips["title"],
		Color:    color,
		Children: children,
	}
}

// RenderThemes 依次渲染全部主题
func (r *Renderer) RenderThemes(themes []model.ThemeRecord) []Block {
	blocks := make([]Block, 0, len(themes))
	for i, t := range themes {
		blocks = append(blocks, r.RenderTheme(t, i))
	}
	return blocks
}

func growthText(m metrics.Momentum) string {
	if !m.Valid() {
		return metrics.Sentinel
	}
	return fmt.Sprintf("%s (%+.1f%% vs prior; %s mentions)",
		m.Label, m.GrowthPercent, metrics.FormatSignedCompact(m.Velocity))
}

func themeSections(rec model.ThemeRecord) []Block {
	language := entriesBlock(rec.Language, NoLanguage)

	return []Block{
		section("What's happening?", Tooltips["story"], markdownOr(rec.Story, NoStory)),
		section("What is the proof?", Tooltips["proof_points"], markdownList(rec.ProofPoints, NoProofPoints)),
		section("What are people saying?", Tooltips["quotes"], quoteBlocks(rec.Quotes)...),
		section("Who is driving it?", Tooltips["personas"], entriesBlock(rec.Personas, NoData)),
		section("Why now?", Tooltips["drivers"], entriesBlock(rec.Drivers, NoData)),
		section("How is it different elsewhere?", Tooltips["other_markets"], entriesBlock(rec.OtherMarkets, NoData)),
		section("How do people talk about it?", Tooltips["language"], language),
		section("How is it changing?", Tooltips["evolution"], evolutionBlock(rec.Evolution)),
		section("What should we watch for?", Tooltips["signals"], markdownList(rec.Signals, NoData)),
	}
}

func quoteBlocks(quotes []model.Quote) []Block {
	blocks := make([]Block, 0, len(quotes))
	for _, q := range quotes {
		if strings.TrimSpace(q.Text) == "" {
			continue
		}
		blocks = append(blocks, Block{
			Kind:     KindQuote,
			Body:     markdown.RenderMarkdown(q.Text),
			Subtitle: escapeHTML(q.Attribution),
		})
	}
	if len(blocks) == 0 {
		return []Block{placeholder(NoQuotes)}
	}
	return blocks
}

// evolutionBlock 先按 early / now / next 排列，缺失的阶段直接省略，其余键保持原顺序
func evolutionBlock(e model.Entries) Block {
	if e.Pairs == nil {
		return entriesBlock(e, NoData)
	}
	items := e.Items()
	used := make([]bool, len(items))
	ordered := make([]model.Pair, 0, len(items))
	for _, stage := range evolutionStages {
		for i, p := range items {
			if !used[i] && strings.EqualFold(strings.TrimSpace(p.Key), stage) {
				ordered = append(ordered, p)
				used[i] = true
				break
			}
		}
	}
	for i, p := range items {
		if !used[i] {
			ordered = append(ordered, p)
		}
	}
	return pairList(ordered, NoData)
}
