package model

import "time"

// Snippet 单条新闻摘要片段，作为趋势分析的上下文输入
type Snippet struct {
	Title       string
	Link        string
	Source      string
	PubDate     string
	Content     string // 临时存储用于 LLM 分析，分析结束后不保留
	RetrievedAt time.Time
}

// ScoreMin 与 ScoreMax 定义三个评分维度的合法区间
const (
	ScoreMin = 0
	ScoreMax = 10
)

// MetricAxes 雷达图/柱状图的三个评分维度，顺序与 Scores 返回值一致
var MetricAxes = []string{"Market Potential", "Innovation Score", "Investment Attractiveness"}

// TrendReport 单个领域的趋势报告
type TrendReport struct {
	DomainName               string    `json:"-"`
	Narrative                string    `json:"narrative"`                 // 领域综述
	KeyTechnologies          []string  `json:"key_technologies"`          // 关键技术
	Opportunities            []string  `json:"emerging_opportunities"`    // 新兴机会
	Challenges               []string  `json:"challenges"`                // 主要挑战
	MarketPotential          int       `json:"market_potential"`          // 市场潜力评分
	InnovationScore          int       `json:"innovation_score"`          // 创新程度评分
	InvestmentAttractiveness int       `json:"investment_attractiveness"` // 投资吸引力评分
	Snippets                 []Snippet `json:"-"`
}

// Scores 按 MetricAxes 的顺序返回三个评分
func (r *TrendReport) Scores() []int {
	return []int{r.MarketPotential, r.InnovationScore, r.InvestmentAttractiveness}
}

// ScoresInRange 判断三个评分是否都落在合法区间内
func (r *TrendReport) ScoresInRange() bool {
	for _, s := range r.Scores() {
		if s < ScoreMin || s > ScoreMax {
			return false
		}
	}
	return true
}

// Failure 单个领域的分析失败记录
type Failure struct {
	DomainName string
	Reason     string // 失败类型: search_unavailable / no_results / model_unavailable / malformed_response
	Detail     string
}

// AnalysisRun 一次完整分析的结果集，每次运行整体重建
type AnalysisRun struct {
	GeneratedAt time.Time
	Reports     []TrendReport // 按用户选择领域的顺序排列，失败领域被跳过
	Failures    []Failure
}

// FailedDomains 按失败发生顺序返回失败领域名列表
func (r *AnalysisRun) FailedDomains() []string {
	names := make([]string, 0, len(r.Failures))
	for _, f := range r.Failures {
		names = append(names, f.DomainName)
	}
	return names
}

// ChartSeries 一条图表数据序列
type ChartSeries struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

// ChartData 供展示层渲染雷达图与柱状图的结构化数据
type ChartData struct {
	Axes    []string      `json:"axes"`    // 雷达图的维度轴
	Domains []string      `json:"domains"` // 柱状图的横轴
	Radar   []ChartSeries `json:"radar"`   // 每个领域一条序列，按 Axes 顺序取值
	Bars    []ChartSeries `json:"bars"`    // 每个维度一条序列，按 Domains 顺序取值
}
