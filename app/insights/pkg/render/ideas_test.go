package render

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

func TestRenderIdeaList_Layouts(t *testing.T) {
	r := newTestRenderer()
	tests := []struct {
		name   string
		list   model.IdeaList
		kind   Kind
		layout string
	}{
		{"hypotheses", model.Hypotheses{{Statement: "If A then B", Source: "survey"}}, KindGrid, LayoutColumns2},
		{"gaps", model.Gaps{{Title: "No kids line", Body: "b"}}, KindGrid, LayoutStack},
		{"playbooks", model.Playbooks{{Title: "Launch"}}, KindGrid, LayoutStack},
		{"scenarios", model.Scenarios{{Title: "s1"}, {Title: "s2"}}, KindList, LayoutNumbered},
		{"recommendations", model.Recommendations{{Priority: 1, Title: "Do it"}}, KindList, LayoutAccent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := r.RenderIdeaList(tt.list)
			assert.Equal(t, tt.kind, b.Kind)
			assert.Equal(t, tt.layout, b.Layout)
			assert.Len(t, b.Children, tt.list.Len())
		})
	}
}

func TestRenderIdeaList_Empty(t *testing.T) {
	r := newTestRenderer()
	assert.Equal(t, []string{NoData}, placeholders(r.RenderIdeaList(nil)))
	assert.Equal(t, []string{NoData}, placeholders(r.RenderIdeaList(model.Gaps(nil))))
	assert.Equal(t, []string{NoData}, placeholders(r.RenderIdeaList(model.Ideas{}.Lists()[4])))
}

func TestRenderHypotheses(t *testing.T) {
	b := newTestRenderer().RenderIdeaList(model.Hypotheses{{Statement: "If **A** then B"}})
	card := b.Children[0]
	assert.Equal(t, hypothesisBorder, card.Border)
	assert.Equal(t, template.HTML("If <strong>A</strong> then B"), card.Title)

	texts := collect(card, KindText)
	require.Len(t, texts, 2)
	assert.Equal(t, template.HTML("Source: -"), texts[0].Body)

	d := collect(card, KindDetails)
	require.Len(t, d, 1)
	assert.Equal(t, template.HTML("Full Hypothesis"), d[0].Title)
}

func TestRenderGaps(t *testing.T) {
	b := newTestRenderer().RenderIdeaList(model.Gaps{{Title: "Kids line", Body: "none yet", Source: "retail"}})
	card := b.Children[0]
	assert.Equal(t, gapBorder, card.Border)
	assert.Equal(t, template.HTML("🎯 Kids line"), card.Title)
	assert.Equal(t, template.HTML("Source: retail"), card.Children[1].Body)
}

func TestRenderPlaybooks(t *testing.T) {
	b := newTestRenderer().RenderIdeaList(model.Playbooks{{
		Title:   "Run club kit",
		Goal:    "Own Sunday mornings",
		Steps:   model.TextList{"Find crews", "Seed product"},
		Metrics: model.TextList{"Attendance"},
		Border:  "2px solid #F97316",
	}})
	card := b.Children[0]
	assert.Equal(t, "2px solid #F97316", card.Border)
	assert.Len(t, collect(sectionByTitle(t, card, "Steps"), KindItem), 2)
	assert.Len(t, collect(sectionByTitle(t, card, "Metrics"), KindItem), 1)
}

func TestPlaybookBorder(t *testing.T) {
	assert.Equal(t, "1px dashed #999", PlaybookBorder(" 1px dashed #999 "))
	assert.Equal(t, "3px solid teal", PlaybookBorder("3px solid teal"))
	assert.Equal(t, defaultCardBorder, PlaybookBorder(""))
	assert.Equal(t, defaultCardBorder, PlaybookBorder("1px solid red; background:url(x)"))
	assert.Equal(t, defaultCardBorder, PlaybookBorder("solid"))
}

func TestRenderScenarios_Numbered(t *testing.T) {
	b := newTestRenderer().RenderIdeaList(model.Scenarios{{Title: "a", Source: "s"}, {Title: "b"}})
	require.Len(t, b.Children, 2)
	assert.Equal(t, 1, b.Children[0].Index)
	assert.Equal(t, 2, b.Children[1].Index)
	assert.Equal(t, template.HTML("Source: s"), b.Children[0].Subtitle)
	assert.Equal(t, template.HTML("Source: -"), b.Children[1].Subtitle)
	assert.Equal(t, scenarioColor, b.Children[0].Color)
}

func TestRenderRecommendations_KeepInputOrder(t *testing.T) {
	b := newTestRenderer().RenderIdeaList(model.Recommendations{
		{Priority: 3, Title: "Later"},
		{Priority: 1, Title: "First <now>"},
	})
	require.Len(t, b.Children, 2)
	assert.Equal(t, template.HTML("3. Later"), b.Children[0].Title)
	assert.Equal(t, template.HTML("1. First &lt;now&gt;"), b.Children[1].Title)
}
