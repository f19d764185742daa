package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDomains 默认的创业领域清单，配置未指定 domains 时使用
var DefaultDomains = []string{
	"AI/Machine Learning", "Biotechnology", "CleanTech",
	"FinTech", "EdTech", "SpaceTech", "Cybersecurity",
	"Robotics", "Healthcare Tech", "AgriTech",
	"Quantum Computing", "Blockchain/Web3",
	"Renewable Energy", "Climate Tech",
	"Advanced Materials", "Autonomous Vehicles",
}

// Config 项目配置结构体
type Config struct {
	LLM         LLMConfig         `yaml:"llm"`
	Search      SearchConfig      `yaml:"search"`
	Domains     []string          `yaml:"domains"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Log         LogConfig         `yaml:"log"`
	Server      ServerConfig      `yaml:"server"`
}

// LLMConfig LLM 相关配置
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// SearchConfig 搜索相关配置
type SearchConfig struct {
	Provider   string           `yaml:"provider"`
	Tavily     TavilyConfig     `yaml:"tavily"`
	DuckDuckGo DuckDuckGoConfig `yaml:"duckduckgo"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey string `yaml:"api_key"`
}

// DuckDuckGoConfig DuckDuckGo 配置
type DuckDuckGoConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// AnalysisConfig 分析选项，仅影响发给 LLM 的 Prompt 以及取材数量
type AnalysisConfig struct {
	Depth       int      `yaml:"depth"`        // 1-10，控制综述的详细程度
	FocusAreas  []string `yaml:"focus_areas"`  // 重点关注方向
	MaxSnippets int      `yaml:"max_snippets"` // 每个领域最多取用的文章数
	WindowDays  int      `yaml:"window_days"`  // 搜索时间窗口（天）
}

// ConcurrencyConfig LLM 调用节流配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig 展示服务 HTTP 配置
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	Timeout string `yaml:"timeout"`
}

// LoadConfig 从指定路径加载配置并填充默认值
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Domains) == 0 {
		c.Domains = append(c.Domains, DefaultDomains...)
	}
	if c.Analysis.Depth <= 0 {
		c.Analysis.Depth = 7
	}
	if c.Analysis.Depth > 10 {
		c.Analysis.Depth = 10
	}
	if c.Analysis.MaxSnippets <= 0 {
		c.Analysis.MaxSnippets = 6
	}
	if c.Analysis.WindowDays <= 0 {
		c.Analysis.WindowDays = 3
	}
	if c.Concurrency.QPS <= 0 {
		c.Concurrency.QPS = 1
	}
	if c.Concurrency.RPM <= 0 {
		c.Concurrency.RPM = 30
	}
}
