package render

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/model"
)

var (
	// ErrDuplicateNode 同一条扩散路径中出现重复节点，路径不再是简单路径
	ErrDuplicateNode = errors.New("duplicate node in diffusion pathway")
	// ErrMissingNodeID 路径节点没有 id
	ErrMissingNodeID = errors.New("diffusion node without id")
)

// pathNode 图中的一个节点，多条路径共享同一 id 时以后出现的路径样式为准
type pathNode struct {
	id      int64
	name    string
	label   string
	tooltip string
	color   string
}

func (n *pathNode) ID() int64     { return n.id }
func (n *pathNode) DOTID() string { return dotQuote(n.name) }

// Attributes 文本属性总是以带引号的字符串输出，避免被当作 HTML 标签
func (n *pathNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{
		{Key: "fillcolor", Value: n.color},
		{Key: "label", Value: dotQuote(n.label)},
	}
	if n.tooltip != "" {
		attrs = append(attrs, encoding.Attribute{Key: "tooltip", Value: dotQuote(n.tooltip)})
	}
	return attrs
}

// 只转义反斜杠和双引号，换行写成 Graphviz 的 \n，其余字符原样保留
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r\n", `\n`, "\n", `\n`)

// dotQuote 生成 DOT 双引号字符串
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

type pathEdge struct {
	from, to *pathNode
	color    string
}

func (e pathEdge) From() graph.Node { return e.from }
func (e pathEdge) To() graph.Node   { return e.to }

func (e pathEdge) ReversedEdge() graph.Edge {
	return pathEdge{from: e.to, to: e.from, color: e.color}
}

func (e pathEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "color", Value: e.color}}
}

type diffusionGraph struct {
	*simple.DirectedGraph
}

var (
	graphAttrs = encoding.Attributes{
		{Key: "rankdir", Value: "LR"},
		{Key: "bgcolor", Value: "transparent"},
		{Key: "nodesep", Value: "1.0"},
		{Key: "ranksep", Value: "1.0"},
	}
	nodeAttrs = encoding.Attributes{
		{Key: "shape", Value: "circle"},
		{Key: "fixedsize", Value: "true"},
		{Key: "width", Value: "1.2"},
		{Key: "height", Value: "1.2"},
		{Key: "style", Value: "filled"},
		{Key: "fontname", Value: "Helvetica-Bold"},
		{Key: "fontsize", Value: "10"},
		{Key: "labelloc", Value: "c"},
	}
	edgeAttrs = encoding.Attributes{
		{Key: "penwidth", Value: "2"},
	}
)

func (diffusionGraph) DOTAttributers() (g, n, e encoding.Attributer) {
	return &graphAttrs, &nodeAttrs, &edgeAttrs
}

// DiffusionDOT 把扩散路径转换为 DOT 有向图。
// 路径内相邻节点依次连边，节点填充色和边颜色取自所属路径。
func (r *Renderer) DiffusionDOT(pathways []model.DiffusionPathway) (string, error) {
	g := diffusionGraph{simple.NewDirectedGraph()}
	nodes := make(map[string]*pathNode)

	for _, p := range pathways {
		color := metrics.ColorOr(p.Color, p.Name, r.ctx.Palette)
		seen := make(map[string]bool, len(p.Nodes))

		var prev *pathNode
		for i, pn := range p.Nodes {
			id := strings.TrimSpace(pn.ID)
			if id == "" {
				return "", fmt.Errorf("pathway %q node %d: %w", p.Name, i, ErrMissingNodeID)
			}
			if seen[id] {
				return "", fmt.Errorf("pathway %q node %q: %w", p.Name, id, ErrDuplicateNode)
			}
			seen[id] = true

			n, ok := nodes[id]
			if !ok {
				n = &pathNode{id: int64(len(nodes)), name: id}
				nodes[id] = n
				g.AddNode(n)
			}
			n.label = pn.Label
			if n.label == "" {
				n.label = id
			}
			n.tooltip = pn.Tooltip
			n.color = color

			if prev != nil {
				g.SetEdge(pathEdge{from: prev, to: n, color: color})
			}
			prev = n
		}
	}

	out, err := dot.Marshal(g, "G", "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal diffusion graph: %w", err)
	}
	return string(out), nil
}

// RenderDiffusionGraph 生成扩散路径图块，没有路径时返回占位块
func (r *Renderer) RenderDiffusionGraph(pathways []model.DiffusionPathway) (Block, error) {
	if len(pathways) == 0 {
		return placeholder(NoData), nil
	}
	src, err := r.DiffusionDOT(pathways)
	if err != nil {
		return Block{}, err
	}
	return Block{Kind: KindGraph, DOT: src}, nil
}
