package server

import (
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/culture_radar/app/display/internal/conf"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/config"
	insightsLogger "github.com/iWorld-y/culture_radar/app/insights/pkg/logger"
	"github.com/iWorld-y/culture_radar/app/insights/pkg/render"
)

// NewInsightsConfig 将 internal/conf 转换为 pkg/config.Config 并初始化 insights 日志
func NewInsightsConfig(d *conf.Data, c *conf.Insights, logger log.Logger) *config.Config {
	cfg := &config.Config{}
	if d != nil {
		cfg.Data = config.DataConfig{
			Dir:         d.Dir,
			ResearchDir: d.ResearchDir,
			Watch:       d.Watch,
		}
	}
	if c != nil {
		if c.Llm != nil {
			cfg.LLM = config.LLMConfig{
				BaseURL:      c.Llm.BaseUrl,
				APIKey:       c.Llm.ApiKey,
				Model:        c.Llm.Model,
				MaxTokens:    int(c.Llm.MaxTokens),
				Temperature:  c.Llm.Temperature,
				SystemPrompt: c.Llm.SystemPrompt,
				Timeout:      int(c.Llm.Timeout),
			}
		}
		if c.Log != nil {
			cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
		}
		if c.Concurrency != nil {
			cfg.Concurrency = config.ConcurrencyConfig{
				QPS: int(c.Concurrency.Qps),
				RPM: int(c.Concurrency.Rpm),
			}
		}
		if c.Render != nil {
			cfg.Render = config.RenderConfig{
				Palette:   c.Render.Palette,
				TitleSize: int(c.Render.TitleSize),
			}
		}
	}
	cfg.ApplyDefaults()

	if err := insightsLogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init insights logger: %v", err)
		_ = insightsLogger.InitLogger("info", "") // 降级处理
	}
	return cfg
}

// NewRenderer 按配置创建卡片渲染器
func NewRenderer(cfg *config.Config) *render.Renderer {
	return render.NewRenderer(render.RenderContext{
		Palette:   cfg.Render.Palette,
		TitleSize: cfg.Render.TitleSize,
	})
}
