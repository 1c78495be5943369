package model

import (
	"errors"
	"fmt"
)

// ThemeRecord 一条文化叙事主题
type ThemeRecord struct {
	Title          string     `json:"title"`
	Subtitle       string     `json:"subtitle,omitempty"`
	FirstSeen      FlexString `json:"first_seen,omitempty"`
	LastScan       FlexString `json:"last_scan,omitempty"`
	CurrentVolume  any        `json:"current_volume,omitempty"`  // 当期声量，宽松解析
	PreviousVolume any        `json:"previous_volume,omitempty"` // 上期声量，宽松解析
	Story          string     `json:"story,omitempty"`
	Summary        string     `json:"summary,omitempty"`
	ProofPoints    TextList   `json:"proof_points,omitempty"`
	Quotes         []Quote    `json:"quotes,omitempty"`
	Personas       Entries    `json:"personas"`
	Drivers        Entries    `json:"drivers"`
	OtherMarkets   Entries    `json:"other_markets"`
	Evolution      Entries    `json:"evolution"`
	AlsoEmergingIn TextList   `json:"also_emerging_in,omitempty"`
	Language       Entries    `json:"language"`
	Signals        TextList   `json:"signals,omitempty"`
	TrendColor     string     `json:"trend_color,omitempty"`
}

// PersonaRecord 受众画像
type PersonaRecord struct {
	Name         string     `json:"name"`
	Share        FlexString `json:"share"`
	Traits       TextList   `json:"traits,omitempty"`
	Behaviors    string     `json:"behaviors,omitempty"`
	Evidence     TextList   `json:"evidence,omitempty"`
	Implications string     `json:"implications,omitempty"`
	BorderColor  string     `json:"border_color,omitempty"`
}

// InfluencerNarrative 影响者生态叙事
type InfluencerNarrative struct {
	Title    string   `json:"title"`
	Story    string   `json:"story"`
	Evidence TextList `json:"evidence,omitempty"`
	Takeaway string   `json:"takeaway,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// PathNode 扩散路径上的节点
type PathNode struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Tooltip string `json:"tooltip,omitempty"`
}

// DiffusionPathway 有序节点链，相邻节点构成有向边
type DiffusionPathway struct {
	Name  string     `json:"name"`
	Color string     `json:"color"`
	Nodes []PathNode `json:"nodes"`
}

// Broker 市场中的关键影响者
type Broker struct {
	Name       string     `json:"name"`
	Role       string     `json:"role,omitempty"`
	Impact     string     `json:"impact,omitempty"`
	Followers  FlexString `json:"followers,omitempty"`
	Engagement FlexString `json:"engagement,omitempty"`
	Specialty  string     `json:"specialty,omitempty"`
	Brands     TextList   `json:"brands,omitempty"`
}

// BrokerGroup 按市场分组的影响者
type BrokerGroup struct {
	Market      string   `json:"market"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`
	Brokers     []Broker `json:"brokers"`
}

// DimensionRecord 深层维度
type DimensionRecord struct {
	Axis       string   `json:"axis"`
	Strength   string   `json:"strength,omitempty"`
	KeyMarkers TextList `json:"key_markers,omitempty"`
	Narrative  string   `json:"narrative,omitempty"`
}

// MetaphorRecord 跨领域类比，rows 按列名取值
type MetaphorRecord struct {
	Title     string           `json:"title"`
	Metaphor  string           `json:"metaphor,omitempty"`
	Narrative string           `json:"narrative,omitempty"`
	Columns   []string         `json:"columns,omitempty"`
	Rows      []map[string]any `json:"rows,omitempty"`
}

// FramingRecord 各地区的本地化解读
type FramingRecord struct {
	Title           string           `json:"title"`
	Data            []map[string]any `json:"data,omitempty"`
	Evidence        TextList         `json:"evidence,omitempty"`
	StrategicImpact string           `json:"strategic_impact,omitempty"`
}

// WordShiftRecord 关键词语义演变
type WordShiftRecord struct {
	Title       string  `json:"title"`
	Evolution   Entries `json:"evolution"`
	ShiftDriver string  `json:"shift_driver,omitempty"`
}

// Stories 故事类记录
type Stories struct {
	Themes     []ThemeRecord     `json:"themes,omitempty"`
	Dimensions []DimensionRecord `json:"dimensions,omitempty"`
	Metaphors  []MetaphorRecord  `json:"metaphors,omitempty"`
	Framing    []FramingRecord   `json:"framing,omitempty"`
	Evolution  []WordShiftRecord `json:"evolution,omitempty"`
}

// Influencers 影响者类记录
type Influencers struct {
	Narratives []InfluencerNarrative `json:"narratives,omitempty"`
	Pathways   []DiffusionPathway    `json:"pathways,omitempty"`
	Brokers    []BrokerGroup         `json:"brokers,omitempty"`
}

// AIContext 助手上下文
type AIContext struct {
	SystemContext string `json:"system_context,omitempty"`
	ResearchFile  string `json:"research_file,omitempty"`
}

// InsightBundle 一个品牌/研究下的全部洞察
type InsightBundle struct {
	Stories     Stories         `json:"stories"`
	People      []PersonaRecord `json:"people,omitempty"`
	Influencers Influencers     `json:"influencers"`
	Ideas       Ideas           `json:"ideas"`
	AIContext   AIContext       `json:"ai_context"`
	Themes      []ThemeRecord   `json:"themes,omitempty"` // 旧格式的顶层 themes
}

// AllThemes 优先返回 stories.themes，否则退回顶层 themes
func (b *InsightBundle) AllThemes() []ThemeRecord {
	if len(b.Stories.Themes) > 0 {
		return b.Stories.Themes
	}
	return b.Themes
}

// Validate 检查必填字段，返回所有问题的合并错误
func (b *InsightBundle) Validate() error {
	var errs []error
	for i, t := range b.AllThemes() {
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("themes[%d]: missing title", i))
		}
	}
	for i, p := range b.People {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("people[%d]: missing name", i))
		}
	}
	for i, n := range b.Influencers.Narratives {
		if n.Title == "" {
			errs = append(errs, fmt.Errorf("influencers.narratives[%d]: missing title", i))
		}
	}
	for i, p := range b.Influencers.Pathways {
		seen := make(map[string]bool, len(p.Nodes))
		for j, n := range p.Nodes {
			if n.ID == "" {
				errs = append(errs, fmt.Errorf("influencers.pathways[%d].nodes[%d]: missing id", i, j))
				continue
			}
			if seen[n.ID] {
				errs = append(errs, fmt.Errorf("influencers.pathways[%d]: duplicate node id %q", i, n.ID))
			}
			seen[n.ID] = true
		}
	}
	for i, g := range b.Influencers.Brokers {
		if g.Market == "" {
			errs = append(errs, fmt.Errorf("influencers.brokers[%d]: missing market", i))
		}
	}
	return errors.Join(errs...)
}
