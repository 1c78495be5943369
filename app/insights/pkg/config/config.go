package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iWorld-y/culture_radar/app/insights/pkg/metrics"
)

// ErrMissingAPIKey 未配置 LLM API Key
var ErrMissingAPIKey = errors.New("llm api key is not configured")

// DefaultSystemPrompt 助手默认的系统提示词
const DefaultSystemPrompt = "You are Kultie, an assistant for exploring market and cultural insights. " +
	"Provide clear, evidence-based recommendations."

// DefaultTemperature 未配置 temperature 时使用的采样温度
const DefaultTemperature float32 = 0.7

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Data        DataConfig        `yaml:"data"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Render      RenderConfig      `yaml:"render"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL      string   `yaml:"base_url"`
	APIKey       string   `yaml:"api_key"`
	Model        string   `yaml:"model"`
	MaxTokens    int      `yaml:"max_tokens"`
	Temperature  *float32 `yaml:"temperature"` // 未配置时为 nil，0 表示确定性输出
	SystemPrompt string   `yaml:"system_prompt"`
	Timeout      int      `yaml:"timeout"` // 秒
}

// DataConfig 数据目录配置
type DataConfig struct {
	Dir         string `yaml:"dir"`
	ResearchDir string `yaml:"research_dir"`
	Watch       bool   `yaml:"watch"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 并发控制配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// RenderConfig 渲染相关配置
type RenderConfig struct {
	Palette   []string `yaml:"palette"`
	TitleSize int      `yaml:"title_size"`
}

// Default 返回填充了默认值的配置
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults 为空字段填充默认值，api_key 为空时回退到 OPENAI_API_KEY
func (c *Config) ApplyDefaults() {
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = 800
	}
	if c.LLM.Temperature == nil {
		t := DefaultTemperature
		c.LLM.Temperature = &t
	}
	if c.LLM.SystemPrompt == "" {
		c.LLM.SystemPrompt = DefaultSystemPrompt
	}
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Data.ResearchDir == "" {
		c.Data.ResearchDir = "research"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 60
	}
	if len(c.Render.Palette) == 0 {
		c.Render.Palette = append([]string(nil), metrics.DefaultPalette...)
	}
	if c.Render.TitleSize <= 0 {
		c.Render.TitleSize = 20
	}
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// LoadConfigOrDefault 配置文件不存在时返回默认配置
func LoadConfigOrDefault(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
