package service

import (
	"context"
	"time"

	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/startup_radar/internal/biz"
	"github.com/iWorld-y/startup_radar/pkg/export"
	dm "github.com/iWorld-y/startup_radar/pkg/model"
)

// RadarService 对外暴露趋势分析能力
type RadarService struct {
	uc  *biz.AnalysisUseCase
	log *log.Helper
}

// NewRadarService 创建服务实例
func NewRadarService(uc *biz.AnalysisUseCase, logger log.Logger) *RadarService {
	return &RadarService{uc: uc, log: log.NewHelper(logger)}
}

// AnalyzeReq 发起分析的请求体
type AnalyzeReq struct {
	Domains []string `json:"domains"`
}

// ReportReply 单个领域报告
type ReportReply struct {
	DomainName               string   `json:"domain_name"`
	Narrative                string   `json:"narrative"`
	KeyTechnologies          []string `json:"key_technologies"`
	Opportunities            []string `json:"emerging_opportunities"`
	Challenges               []string `json:"challenges"`
	MarketPotential          int      `json:"market_potential"`
	InnovationScore          int      `json:"innovation_score"`
	InvestmentAttractiveness int      `json:"investment_attractiveness"`
	Sources                  []Source `json:"sources"`
}

// Source 报告引用的文章来源
type Source struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	PubDate string `json:"pub_date"`
}

// FailureReply 单个领域的失败记录
type FailureReply struct {
	DomainName string `json:"domain_name"`
	Reason     string `json:"reason"`
	Detail     string `json:"detail,omitempty"`
}

// RunReply 一次分析的完整结果
type RunReply struct {
	GeneratedAt string         `json:"generated_at"`
	Reports     []*ReportReply `json:"reports"`
	Failures    []FailureReply `json:"failures"`
}

// Analyze 对请求中的领域执行一次完整分析
func (s *RadarService) Analyze(ctx context.Context, req *AnalyzeReq) (*RunReply, error) {
	run, err := s.uc.Analyze(ctx, req.Domains)
	if err != nil {
		return nil, err
	}
	return toRunReply(run), nil
}

// LatestRun 返回当前会话的结果集
func (s *RadarService) LatestRun(ctx context.Context) (*RunReply, error) {
	run, err := s.uc.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return toRunReply(run), nil
}

// GetReport 按领域名返回单个报告
func (s *RadarService) GetReport(ctx context.Context, domainName string) (*ReportReply, error) {
	report, err := s.uc.Report(ctx, domainName)
	if err != nil {
		return nil, err
	}
	return toReportReply(report), nil
}

// DownloadReport 返回单个领域报告的纯文本下载内容
func (s *RadarService) DownloadReport(ctx context.Context, domainName string) (string, error) {
	report, err := s.uc.Report(ctx, domainName)
	if err != nil {
		return "", err
	}
	return export.TextReport(report)
}

// Charts 返回雷达图与柱状图数据
func (s *RadarService) Charts(ctx context.Context) (*dm.ChartData, error) {
	return s.uc.Charts(ctx)
}

func toRunReply(run *dm.AnalysisRun) *RunReply {
	reply := &RunReply{
		GeneratedAt: run.GeneratedAt.Format(time.RFC3339),
		Reports:     make([]*ReportReply, 0, len(run.Reports)),
		Failures:    make([]FailureReply, 0, len(run.Failures)),
	}
	for i := range run.Reports {
		reply.Reports = append(reply.Reports, toReportReply(&run.Reports[i]))
	}
	for _, f := range run.Failures {
		reply.Failures = append(reply.Failures, FailureReply{
			DomainName: f.DomainName,
			Reason:     f.Reason,
			Detail:     f.Detail,
		})
	}
	return reply
}

func toReportReply(r *dm.TrendReport) *ReportReply {
	sources := make([]Source, 0, len(r.Snippets))
	for _, s := range r.Snippets {
		sources = append(sources, Source{Title: s.Title, Link: s.Link, PubDate: s.PubDate})
	}
	return &ReportReply{
		DomainName:               r.DomainName,
		Narrative:                r.Narrative,
		KeyTechnologies:          r.KeyTechnologies,
		Opportunities:            r.Opportunities,
		Challenges:               r.Challenges,
		MarketPotential:          r.MarketPotential,
		InnovationScore:          r.InnovationScore,
		InvestmentAttractiveness: r.InvestmentAttractiveness,
		Sources:                  sources,
	}
}
