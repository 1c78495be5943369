package model

// IdeaVariant 想法列表的种类
type IdeaVariant string

const (
	IdeaHypotheses      IdeaVariant = "hypotheses"
	IdeaGaps            IdeaVariant = "gaps"
	IdeaPlaybooks       IdeaVariant = "playbooks"
	IdeaScenarios       IdeaVariant = "scenarios"
	IdeaRecommendations IdeaVariant = "recommendations"
)

// HypothesisRecord 待验证的假设
type HypothesisRecord struct {
	Statement string `json:"statement"`
	Source    string `json:"source,omitempty"`
}

// GapRecord 机会缺口
type GapRecord struct {
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
	Source string `json:"source,omitempty"`
}

// PlaybookRecord 行动手册
type PlaybookRecord struct {
	Title   string   `json:"title"`
	Goal    string   `json:"goal,omitempty"`
	Steps   TextList `json:"steps,omitempty"`
	Metrics TextList `json:"metrics,omitempty"`
	Source  string   `json:"source,omitempty"`
	Border  string   `json:"border,omitempty"`
}

// ScenarioRecord 假设情景
type ScenarioRecord struct {
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
	Source string `json:"source,omitempty"`
}

// RecommendationRecord 优先行动建议
type RecommendationRecord struct {
	Priority int    `json:"priority"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
}

// IdeaList 五种想法列表之一，由具体的切片类型区分
type IdeaList interface {
	Variant() IdeaVariant
	Len() int
}

type (
	Hypotheses      []HypothesisRecord
	Gaps            []GapRecord
	Playbooks       []PlaybookRecord
	Scenarios       []ScenarioRecord
	Recommendations []RecommendationRecord
)

func (l Hypotheses) Variant() IdeaVariant      { return IdeaHypotheses }
func (l Gaps) Variant() IdeaVariant            { return IdeaGaps }
func (l Playbooks) Variant() IdeaVariant       { return IdeaPlaybooks }
func (l Scenarios) Variant() IdeaVariant       { return IdeaScenarios }
func (l Recommendations) Variant() IdeaVariant { return IdeaRecommendations }

func (l Hypotheses) Len() int      { return len(l) }
func (l Gaps) Len() int            { return len(l) }
func (l Playbooks) Len() int       { return len(l) }
func (l Scenarios) Len() int       { return len(l) }
func (l Recommendations) Len() int { return len(l) }

// Ideas 想法类记录
type Ideas struct {
	Hypotheses      Hypotheses      `json:"hypotheses,omitempty"`
	Gaps            Gaps            `json:"gaps,omitempty"`
	Playbooks       Playbooks       `json:"playbooks,omitempty"`
	Scenarios       Scenarios       `json:"scenarios,omitempty"`
	Recommendations Recommendations `json:"recommendations,omitempty"`
}

// Lists 按页面展示顺序返回全部列表
func (i Ideas) Lists() []IdeaList {
	return []IdeaList{i.Hypotheses, i.Gaps, i.Playbooks, i.Scenarios, i.Recommendations}
}
