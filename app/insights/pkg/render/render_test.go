package render

import (
	"encoding/json"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

// collect 深度优先收集指定类型的块
func collect(b Block, kind Kind) []Block {
	var out []Block
	if b.Kind == kind {
		out = append(out, b)
	}
	for _, c := range b.Children {
		out = append(out, collect(c, kind)...)
	}
	return out
}

func metricValue(t *testing.T, b Block, label string) string {
	t.Helper()
	for _, m := range collect(b, KindMetric) {
		if string(m.Title) == label {
			return string(m.Body)
		}
	}
	t.Fatalf("metric %q not found", label)
	return ""
}

func sectionByTitle(t *testing.T, b Block, title string) Block {
	t.Helper()
	for _, s := range collect(b, KindSection) {
		if string(s.Title) == title {
			return s
		}
	}
	t.Fatalf("section %q not found", title)
	return Block{}
}

func placeholders(b Block) []string {
	var out []string
	for _, p := range collect(b, KindPlaceholder) {
		out = append(out, string(p.Body))
	}
	return out
}

func newTestRenderer() *Renderer {
	return NewRenderer(RenderContext{})
}

func TestRenderTheme_DerivedMetrics(t *testing.T) {
	rec := model.ThemeRecord{
		Title:          "Signature Mix",
		CurrentVolume:  float64(382000),
		PreviousVolume: "222000",
		FirstSeen:      "2024-05-15",
		LastScan:       "2025-08-08",
		AlsoEmergingIn: model.TextList{"Japan", "Brazil"},
	}
	card := newTestRenderer().RenderTheme(rec, 3)

	assert.Equal(t, KindCard, card.Kind)
	assert.Equal(t, 3, card.Index)
	assert.Equal(t, template.HTML("Signature Mix"), card.Title)
	assert.Equal(t, "Surging (+72.1% vs prior; +160k mentions)", metricValue(t, card, "Growth"))
	assert.Equal(t, "Scaling", metricValue(t, card, "Stage"))
	assert.Equal(t, "2025-08-08", metricValue(t, card, "Last Scan"))
	assert.Equal(t, "Japan, Brazil", metricValue(t, card, "Also In"))
}

func TestRenderTheme_Color(t *testing.T) {
	r := newTestRenderer()

	card := r.RenderTheme(model.ThemeRecord{Title: "Signature Mix"}, 0)
	assert.Equal(t, metrics.PickDeterministicColor("Signature Mix", metrics.DefaultPalette), card.Color)
	assert.Equal(t, card.Color, r.RenderTheme(model.ThemeRecord{Title: "Signature Mix"}, 5).Color)

	card = r.RenderTheme(model.ThemeRecord{Title: "x", TrendColor: "#ABC"}, 0)
	assert.Equal(t, "#aabbcc", card.Color)

	card = r.RenderTheme(model.ThemeRecord{Title: "x", TrendColor: "red;}"}, 0)
	assert.Contains(t, metrics.DefaultPalette, card.Color)
}

func TestRenderTheme_DegradesOnBadInput(t *testing.T) {
	card := newTestRenderer().RenderTheme(model.ThemeRecord{
		Title:          "Broken",
		CurrentVolume:  "lots",
		PreviousVolume: 10,
		FirstSeen:      "2024-01-15",
	}, 0)

	assert.Equal(t, "-", metricValue(t, card, "Growth"))
	assert.Equal(t, "-", metricValue(t, card, "Stage"))
	assert.Equal(t, "-", metricValue(t, card, "Last Scan"))
	assert.Equal(t, "None", metricValue(t, card, "Also In"))
}

func TestRenderTheme_NumericDates(t *testing.T) {
	var rec model.ThemeRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Numbers","first_seen":20240515,"last_scan":"2025-08-08"}`), &rec))

	card := newTestRenderer().RenderTheme(rec, 0)
	assert.Equal(t, "-", metricValue(t, card, "Stage"))
	assert.Equal(t, "2025-08-08", metricValue(t, card, "Last Scan"))
}

func TestRenderTheme_Placeholders(t *testing.T) {
	card := newTestRenderer().RenderTheme(model.ThemeRecord{Title: "Empty"}, 0)

	assert.Empty(t, collect(card, KindCallout), "summary callout only when summary is set")
	assert.Equal(t, []string{
		NoStory, NoProofPoints, NoQuotes, NoData, NoData, NoData, NoLanguage, NoData, NoData,
	}, placeholders(card))

	var titles []string
	for _, s := range collect(card, KindSection) {
		titles = append(titles, string(s.Title))
	}
	assert.Equal(t, []string{
		"What&#39;s happening?",
		"What is the proof?",
		"What are people saying?",
		"Who is driving it?",
		"Why now?",
		"How is it different elsewhere?",
		"How do people talk about it?",
		"How is it changing?",
		"What should we watch for?",
	}, titles)
}

func TestRenderTheme_Details(t *testing.T) {
	var rec model.ThemeRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"title": "Run Club",
		"summary": "Runs are the new **bars**",
		"story": "It started in *parks*",
		"proof_points": ["one", "two"],
		"quotes": [["It just works", "<b>@runner</b>"], "bare"],
		"personas": {"Zeta": "first", "Alpha": "second"},
		"drivers": ["cost", "speed"],
		"other_markets": {"US": "quieter"},
		"language": "Slang like **pace**",
		"evolution": {"next": "c", "extra": "x", "Early": "a", "now": "b"},
		"signals": ["watch this"]
	}`), &rec))
	card := newTestRenderer().RenderTheme(rec, 0)

	callouts := collect(card, KindCallout)
	require.Len(t, callouts, 1)
	assert.Equal(t, template.HTML("Runs are the new <strong>bars</strong>"), callouts[0].Body)
	assert.Empty(t, placeholders(card))

	quotes := collect(card, KindQuote)
	require.Len(t, quotes, 2)
	assert.Equal(t, template.HTML("It just works"), quotes[0].Body)
	assert.Equal(t, template.HTML("&lt;b&gt;@runner&lt;/b&gt;"), quotes[0].Subtitle)
	assert.Empty(t, quotes[1].Subtitle)

	personas := collect(sectionByTitle(t, card, "Who is driving it?"), KindItem)
	require.Len(t, personas, 2)
	assert.Equal(t, template.HTML("Zeta"), personas[0].Title)
	assert.Equal(t, template.HTML("Alpha"), personas[1].Title)

	drivers := collect(sectionByTitle(t, card, "Why now?"), KindItem)
	require.Len(t, drivers, 2)
	assert.Empty(t, drivers[0].Title)
	assert.Equal(t, template.HTML("cost"), drivers[0].Body)

	lang := collect(sectionByTitle(t, card, "How do people talk about it?"), KindText)
	require.Len(t, lang, 1)
	assert.Equal(t, template.HTML("Slang like <strong>pace</strong>"), lang[0].Body)

	var stages []string
	for _, it := range collect(sectionByTitle(t, card, "How is it changing?"), KindItem) {
		stages = append(stages, string(it.Title))
	}
	assert.Equal(t, []string{"Early", "now", "next", "extra"}, stages)
}

func TestEvolutionBlock_MissingStagesOmitted(t *testing.T) {
	b := evolutionBlock(model.NewEntries(model.Pair{Key: "now", Value: "b"}))
	items := collect(b, KindItem)
	require.Len(t, items, 1)
	assert.Equal(t, template.HTML("now"), items[0].Title)

	assert.Equal(t, []string{NoData}, placeholders(evolutionBlock(model.NewEntries())))
}

func TestRenderPersona(t *testing.T) {
	var rec model.PersonaRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Weekend Warriors",
		"share": "25%",
		"traits": ["social", "competitive"],
		"behaviors": "Run **together**",
		"evidence": ["[Strava](https://strava.com)"]
	}`), &rec))
	card := newTestRenderer().RenderPersona(rec)

	assert.Equal(t, DefaultPersonaColor, card.Color)
	assert.Equal(t, "Share: 25%", card.Badge)
	assert.Len(t, collect(sectionByTitle(t, card, "Key Traits"), KindItem), 2)

	evidence := collect(sectionByTitle(t, card, "Evidence"), KindItem)
	require.Len(t, evidence, 1)
	assert.Contains(t, string(evidence[0].Body), `<a href="https://strava.com"`)

	assert.Equal(t, []string{NoData}, placeholders(sectionByTitle(t, card, "Implications")))

	card = newTestRenderer().RenderPersona(model.PersonaRecord{Name: "x", BorderColor: "#00B050"})
	assert.Equal(t, "#00b050", card.Color)
	assert.Empty(t, card.Badge)
}

func TestTeaser(t *testing.T) {
	assert.Equal(t, "short story", Teaser("  short story "))

	long := strings.Repeat("é", 150)
	got := Teaser(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, TeaserLength+1, len([]rune(got)))

	exact := strings.Repeat("a", TeaserLength)
	assert.Equal(t, exact, Teaser(exact))
}

func TestRenderInfluencerNarrative(t *testing.T) {
	story := strings.Repeat("**x** ", 30)
	card := newTestRenderer().RenderInfluencerNarrative(model.InfluencerNarrative{
		Title:    "Run crews",
		Story:    story,
		Takeaway: "Partner early",
		Color:    "#60A5FA",
	})

	assert.Equal(t, "#60a5fa", card.Color)
	teaser := card.Children[0]
	assert.Equal(t, LayoutMuted, teaser.Layout)
	assert.NotContains(t, string(teaser.Body), "<strong>")
	assert.True(t, strings.HasSuffix(string(teaser.Body), "…"))

	story1 := collect(sectionByTitle(t, card, "Story"), KindText)
	require.Len(t, story1, 1)
	assert.Contains(t, string(story1[0].Body), "<strong>x</strong>")
	assert.Equal(t, []string{NoData}, placeholders(sectionByTitle(t, card, "Evidence")))
}

func TestRenderBrokerGroup(t *testing.T) {
	group := model.BrokerGroup{
		Market:      "Japan",
		Color:       "#22D3EE",
		Description: "Tokyo *street* scene",
		Brokers: []model.Broker{
			{Name: "Aki", Role: "Stylist", Followers: "1.2M", Brands: model.TextList{"Puma", "Adidas"}},
			{Name: "Ren"},
		},
	}
	b := newTestRenderer().RenderBrokerGroup(group)

	assert.Equal(t, KindGroup, b.Kind)
	assert.Equal(t, "#22d3ee", b.Color)
	assert.Equal(t, template.HTML("Tokyo <em>street</em> scene"), b.Subtitle)

	cards := collect(b, KindCard)
	require.Len(t, cards, 2)
	assert.Equal(t, "1.2M", metricValue(t, cards[0], "Followers"))
	assert.Equal(t, "Puma, Adidas", metricValue(t, cards[0], "Brands"))
	assert.Equal(t, "-", metricValue(t, cards[1], "Engagement"))
	assert.Equal(t, "None", metricValue(t, cards[1], "Brands"))

	empty := newTestRenderer().RenderBrokerGroup(model.BrokerGroup{Market: "Nowhere"})
	assert.Equal(t, []string{NoData}, placeholders(empty))
}
