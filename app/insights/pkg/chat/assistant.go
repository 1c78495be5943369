package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/config"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/logger"
)

var (
	// ErrEmptyPrompt 问题为空
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrResearchUnavailable 研究文件无法读取或越出研究目录
	ErrResearchUnavailable = errors.New("research file is unavailable")
)

// SourcesHeader 研究文件中来源部分的标题
const SourcesHeader = "## Sources"

// Generator 对话补全模型，openai.ChatModel 满足该接口
type Generator interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}

// AskOptions 提问选项
type AskOptions struct {
	Deep          bool
	SystemContext string
	ResearchFile  string
	Progress      func(status string, progress int)
}

// Answer 助手的回答
type Answer struct {
	Body    string `json:"answer"`
	Sources string `json:"sources,omitempty"`
	Deep    bool   `json:"deep"`
}

// Assistant 洞察问答助手
type Assistant struct {
	gen         Generator
	llm         config.LLMConfig
	researchDir string
	limiter     *rate.Limiter
}

// NewAssistant 根据配置创建基于 OpenAI 兼容接口的助手
func NewAssistant(ctx context.Context, cfg *config.Config) (*Assistant, error) {
	if cfg.LLM.APIKey == "" {
		return nil, config.ErrMissingAPIKey
	}

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		BaseURL: cfg.LLM.BaseURL,
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		Timeout: time.Duration(cfg.LLM.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init chat model: %w", err)
	}
	return NewAssistantWithGenerator(chatModel, cfg), nil
}

// NewAssistantWithGenerator 使用给定模型创建助手
func NewAssistantWithGenerator(gen Generator, cfg *config.Config) *Assistant {
	// Limit 设置为 RPM/60，Burst 设置为 QPS
	limit := rate.Limit(float64(cfg.Concurrency.RPM) / 60.0)
	burst := cfg.Concurrency.QPS
	if burst <= 0 {
		burst = 1
	}

	return &Assistant{
		gen:         gen,
		llm:         cfg.LLM,
		researchDir: cfg.Data.ResearchDir,
		limiter:     rate.NewLimiter(limit, burst),
	}
}

// Ask 回答问题。深度模式且研究文件存在时直接返回研究内容，否则调用模型
func (a *Assistant) Ask(ctx context.Context, prompt string, opts AskOptions) (*Answer, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	progress := opts.Progress
	if progress == nil {
		progress = func(string, int) {}
	}
	progress("started", 0)

	if opts.Deep && opts.ResearchFile != "" {
		raw, err := a.readResearch(opts.ResearchFile)
		switch {
		case err == nil:
			progress("research loaded", 80)
			body, sources := SplitSources(raw)
			progress("done", 100)
			return &Answer{Body: body, Sources: sources, Deep: true}, nil
		case errors.Is(err, os.ErrNotExist):
			logger.Log.Infof("research file %s not found, falling back to model", opts.ResearchFile)
		default:
			return nil, err
		}
	}

	system := opts.SystemContext
	if strings.TrimSpace(system) == "" {
		system = a.llm.SystemPrompt
	}
	if system == "" {
		system = config.DefaultSystemPrompt
	}

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: system},
		{Role: schema.User, Content: prompt},
	}
	var modelOpts []model.Option
	if a.llm.Model != "" {
		modelOpts = append(modelOpts, model.WithModel(a.llm.Model))
	}
	if a.llm.MaxTokens > 0 {
		modelOpts = append(modelOpts, model.WithMaxTokens(a.llm.MaxTokens))
	}
	if a.llm.Temperature != nil {
		modelOpts = append(modelOpts, model.WithTemperature(*a.llm.Temperature))
	}

	resp, err := a.gen.Generate(ctx, messages, modelOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}
	progress("model answered", 90)

	progress("done", 100)
	return &Answer{Body: resp.Content}, nil
}

// readResearch 读取研究目录下的文件，拒绝越出目录的路径
func (a *Assistant) readResearch(name string) (string, error) {
	base, err := filepath.Abs(a.researchDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResearchUnavailable, err)
	}
	path := filepath.Join(base, filepath.Clean(name))
	rel, err := filepath.Rel(base, path)
	if err != nil || filepath.IsAbs(name) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is outside the research dir", ErrResearchUnavailable, name)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrResearchUnavailable, err)
	}
	return string(data), nil
}

// SplitSources 在第一个 "## Sources" 处切分，标题保留在来源部分
func SplitSources(raw string) (body, sources string) {
	i := strings.Index(raw, SourcesHeader)
	if i < 0 {
		return raw, ""
	}
	return raw[:i], raw[i:]
}
